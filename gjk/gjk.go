// Package gjk implements a 2D Gilbert-Johnson-Keerthi (GJK) overlap test.
//
// GJK detects whether two convex shapes overlap by testing if their Minkowski difference
// contains the origin. Shapes are only known through their support function, so any
// convex shape providing one can be tested.
//
// The solver keeps a segment (A, B) of the Minkowski difference, searches perpendicular
// to it toward the origin, and uses the new support point C to either prove separation,
// prove containment (origin inside triangle ABC), or replace A or B and search again.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/planar/geom"
	"github.com/akmonengine/planar/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxIterations is the default bound on solver iterations.
// Polygonal differences converge in a handful of steps; curved ones converge by
// bisection and reach the progress tolerance well before this bound.
const MaxIterations = 32

// ErrInconclusive is returned by Overlap when the solver ran out of iterations.
var ErrInconclusive = errors.New("gjk: no verdict within the iteration bound")

// Outcome is the state of a GJK query.
type Outcome uint8

const (
	// Searching means no verdict has been reached yet.
	Searching Outcome = iota
	// Separated means the shapes do not overlap.
	Separated
	// Overlapping means the shapes overlap or touch.
	Overlapping
	// Inconclusive means the iteration bound was reached without a verdict.
	Inconclusive
)

func (o Outcome) String() string {
	switch o {
	case Searching:
		return "searching"
	case Separated:
		return "separated"
	case Overlapping:
		return "overlapping"
	case Inconclusive:
		return "inconclusive"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Simplex holds the working points in the Minkowski difference space.
// Points[0] is A, Points[1] is B and Points[2] is C, the last support point;
// Count is the number of valid points (1 to 3).
type Simplex struct {
	Points [3]mgl64.Vec2
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

func (s *Simplex) A() mgl64.Vec2 { return s.Points[0] }
func (s *Simplex) B() mgl64.Vec2 { return s.Points[1] }
func (s *Simplex) C() mgl64.Vec2 { return s.Points[2] }

// MinkowskiSupport computes a support point in the Minkowski difference (A - B).
//
// The Minkowski difference A - B is the set of all vectors (a - b) where a ∈ A and b ∈ B.
// Its farthest point along a direction is the farthest point of A along the direction
// minus the farthest point of B along the opposite direction.
//
// Returns:
//
//	Support point: Support(A, direction) - Support(B, -direction)
func MinkowskiSupport(a, b shape.Shape, direction mgl64.Vec2) mgl64.Vec2 {
	supportA := shape.Support(a, direction)
	supportB := shape.Support(b, geom.Negate(direction))
	return supportA.Sub(supportB)
}

// TowardOrigin returns the unit direction perpendicular to segment PQ, on the side
// of the segment containing the origin.
//
// It is computed as (PQ × PO) × PQ on the z = 0 lift of the vectors. When P, Q and
// the origin are collinear this product vanishes: the second result is then false
// and a fixed fallback direction is returned instead (see PerpToward).
func TowardOrigin(p, q mgl64.Vec2) (mgl64.Vec2, bool) {
	return PerpToward(p, q, mgl64.Vec2{})
}

// PerpToward returns the unit direction perpendicular to segment PQ, on the side of
// the segment containing target.
//
// When target lies on the line PQ (or P == Q) there is no such side. The second result
// is false and the direction falls back to PQ rotated by +90°, to the direction from P
// to target when PQ is zero, and to +X when both are zero. The result is never NaN.
func PerpToward(p, q, target mgl64.Vec2) (mgl64.Vec2, bool) {
	pq := q.Sub(p)
	pt := target.Sub(p)

	// |PQ × PT| = |PQ| |PT| sin(angle): compare the sine against the tolerance
	z := geom.Cross(pq, pt).Z()
	if math.Abs(z) > geom.Epsilon*pq.Len()*pt.Len() {
		perp := geom.TripleProduct(pq, pt, pq)
		if l := perp.Len(); l > 0 && !math.IsInf(l, 0) {
			return perp.Mul(1 / l), true
		}
	}

	if dir, ok := geom.Normalize(geom.Perp(pq)); ok {
		return dir, false
	}
	if dir, ok := geom.Normalize(pt); ok {
		return dir, false
	}
	return mgl64.Vec2{1, 0}, false
}

// GJK performs an overlap test between two convex shapes.
//
// Algorithm overview:
//  1. A = support in +X, B = support toward the origin from A
//  2. Search perpendicular to AB, toward the origin, for a new support point C
//  3. If C does not reach the origin → separated
//  4. If the origin is inside triangle ABC → overlapping
//  5. Otherwise keep the edge (AC or BC) facing the origin and go back to 2
//
// Returns:
//   - Outcome: Separated, Overlapping, or Inconclusive if MaxIterations was reached
//   - error: non-nil if a shape is invalid
//
// The simplex is overwritten with the final points of the search.
func GJK(a, b shape.Shape, simplex *Simplex) (Outcome, error) {
	var solver Solver
	if err := solver.Reset(a, b, MaxIterations); err != nil {
		simplex.Reset()
		return Inconclusive, err
	}

	outcome := solver.Run()
	*simplex = solver.simplex
	return outcome, nil
}

// Overlap reports whether a and b overlap. Touching shapes overlap.
// An inconclusive search returns false and ErrInconclusive.
func Overlap(a, b shape.Shape) (bool, error) {
	var simplex Simplex
	outcome, err := GJK(a, b, &simplex)
	if err != nil {
		return false, err
	}
	if outcome == Inconclusive {
		return false, ErrInconclusive
	}
	return outcome == Overlapping, nil
}
