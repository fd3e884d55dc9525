// Package shape defines the convex shapes that can be tested for overlap.
//
// The set of shapes is closed: Circle and Diamond are the only variants, and
// everything the collision code needs from them goes through Support. New
// convex shapes only have to provide a support function to plug into GJK.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/planar/geom"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrInvalidShape is returned for shapes with a non-finite center or a
	// non-positive size.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrZeroDirection is returned when a support query is made with a zero
	// (or non-finite) direction.
	ErrZeroDirection = errors.New("zero support direction")
)

// Kind identifies the variant of a Shape.
type Kind uint8

const (
	KindCircle Kind = iota
	KindDiamond
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindDiamond:
		return "diamond"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape is a Circle or a Diamond.
// The interface is sealed: it cannot be implemented outside this package.
type Shape interface {
	Kind() Kind
	isShape()
}

// Circle is a disc of the given radius.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

func (Circle) Kind() Kind { return KindCircle }
func (Circle) isShape()   {}

// Support returns Center + normalize(direction) * Radius.
// A zero direction has no farthest point; the center is returned.
func (c Circle) Support(direction mgl64.Vec2) mgl64.Vec2 {
	dir, ok := geom.Normalize(direction)
	if !ok {
		return c.Center
	}
	return c.Center.Add(dir.Mul(c.Radius))
}

// Diamond is an axis-aligned rhombus: its diagonals lie on the coordinate
// axes, and its vertices are Center ± (HalfDiagonal, 0) and
// Center ± (0, HalfDiagonal).
type Diamond struct {
	Center       mgl64.Vec2
	HalfDiagonal float64
}

func (Diamond) Kind() Kind { return KindDiamond }
func (Diamond) isShape()   {}

// Vertices returns the four vertices in counter-clockwise order, starting
// with the right one.
func (d Diamond) Vertices() [4]mgl64.Vec2 {
	h := d.HalfDiagonal
	return [4]mgl64.Vec2{
		d.Center.Add(mgl64.Vec2{h, 0}),
		d.Center.Add(mgl64.Vec2{0, h}),
		d.Center.Add(mgl64.Vec2{-h, 0}),
		d.Center.Add(mgl64.Vec2{0, -h}),
	}
}

// Support returns the vertex of the diamond farthest along direction.
//
// The direction is classified by its signed angle with the x axis into four
// 90° sectors centered on the axes. Each sector is exactly the set of
// directions for which the matching vertex maximizes the dot product, so this
// is the exact support function. On a sector boundary both vertices are
// extremal; the sectors are tested in the order left, down, right, up and the
// first match wins. A zero direction returns the center.
func (d Diamond) Support(direction mgl64.Vec2) mgl64.Vec2 {
	if geom.IsZero(direction) {
		return d.Center
	}

	angle := geom.Angle(direction, mgl64.Vec2{1, 0})
	if direction.Y() < 0 {
		angle = -angle
	}

	h := d.HalfDiagonal
	switch {
	case angle < -0.75*math.Pi || angle > 0.75*math.Pi:
		return d.Center.Add(mgl64.Vec2{-h, 0})
	case angle <= -0.25*math.Pi:
		return d.Center.Add(mgl64.Vec2{0, -h})
	case angle <= 0.25*math.Pi:
		return d.Center.Add(mgl64.Vec2{h, 0})
	default:
		return d.Center.Add(mgl64.Vec2{0, h})
	}
}

// Support returns the farthest point of s along direction.
// direction does not need to be normalized but must be nonzero; see
// SupportChecked for a validating variant.
func Support(s Shape, direction mgl64.Vec2) mgl64.Vec2 {
	switch s := s.(type) {
	case Circle:
		return s.Support(direction)
	case Diamond:
		return s.Support(direction)
	}
	panic(fmt.Sprintf("shape: unknown shape %T", s))
}

// SupportChecked validates s and direction before computing the support point.
func SupportChecked(s Shape, direction mgl64.Vec2) (mgl64.Vec2, error) {
	if err := Validate(s); err != nil {
		return mgl64.Vec2{}, err
	}
	if geom.IsZero(direction) || !geom.IsFinite(direction) {
		return mgl64.Vec2{}, fmt.Errorf("%w: %v", ErrZeroDirection, direction)
	}
	return Support(s, direction), nil
}

// Validate checks the shape parameters.
func Validate(s Shape) error {
	switch s := s.(type) {
	case Circle:
		if !geom.IsFinite(s.Center) {
			return fmt.Errorf("%w: circle center %v", ErrInvalidShape, s.Center)
		}
		if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
			return fmt.Errorf("%w: circle radius %v", ErrInvalidShape, s.Radius)
		}
	case Diamond:
		if !geom.IsFinite(s.Center) {
			return fmt.Errorf("%w: diamond center %v", ErrInvalidShape, s.Center)
		}
		if !(s.HalfDiagonal > 0) || math.IsInf(s.HalfDiagonal, 0) {
			return fmt.Errorf("%w: diamond half-diagonal %v", ErrInvalidShape, s.HalfDiagonal)
		}
	case nil:
		return fmt.Errorf("%w: nil shape", ErrInvalidShape)
	default:
		return fmt.Errorf("%w: unknown shape %T", ErrInvalidShape, s)
	}
	return nil
}

// CenterOf returns the center of s. Like Support, it panics on a nil or
// unknown shape; use Validate to get an error instead.
func CenterOf(s Shape) mgl64.Vec2 {
	switch s := s.(type) {
	case Circle:
		return s.Center
	case Diamond:
		return s.Center
	}
	panic(fmt.Sprintf("shape: unknown shape %T", s))
}

// Translate returns a copy of s moved by delta. It panics on a nil or unknown
// shape.
func Translate(s Shape, delta mgl64.Vec2) Shape {
	switch s := s.(type) {
	case Circle:
		s.Center = s.Center.Add(delta)
		return s
	case Diamond:
		s.Center = s.Center.Add(delta)
		return s
	}
	panic(fmt.Sprintf("shape: unknown shape %T", s))
}

// Boundary samples the boundary of s by querying its support function in
// samples evenly spaced directions. Consecutive duplicates are dropped, so a
// Diamond yields its four vertices.
func Boundary(s Shape, samples int) []mgl64.Vec2 {
	points := make([]mgl64.Vec2, 0, samples)
	for i := 0; i < samples; i++ {
		t := 2 * math.Pi * float64(i) / float64(samples)
		p := Support(s, mgl64.Vec2{math.Cos(t), math.Sin(t)})
		if len(points) > 0 && points[len(points)-1] == p {
			continue
		}
		points = append(points, p)
	}
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	return points
}
