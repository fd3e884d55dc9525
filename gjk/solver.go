package gjk

import (
	"fmt"

	"github.com/akmonengine/planar/geom"
	"github.com/akmonengine/planar/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Solver runs GJK one iteration at a time, so the intermediate simplex can be
// inspected (or drawn) between steps. The zero value is not usable; call Reset
// or NewSolver first.
type Solver struct {
	a, b shape.Shape

	simplex   Simplex
	direction mgl64.Vec2
	support   mgl64.Vec2

	// geom.Epsilon scaled by the size of the Minkowski difference
	tolerance float64

	iterations    int
	maxIterations int
	outcome       Outcome
}

// NewSolver validates both shapes and computes the initial segment.
// A non-positive maxIterations selects MaxIterations.
func NewSolver(a, b shape.Shape, maxIterations int) (*Solver, error) {
	s := &Solver{}
	if err := s.Reset(a, b, maxIterations); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset restarts the solver on a new pair of shapes.
func (s *Solver) Reset(a, b shape.Shape, maxIterations int) error {
	if err := shape.Validate(a); err != nil {
		return fmt.Errorf("first shape: %w", err)
	}
	if err := shape.Validate(b); err != nil {
		return fmt.Errorf("second shape: %w", err)
	}
	if maxIterations <= 0 {
		maxIterations = MaxIterations
	}

	*s = Solver{a: a, b: b, maxIterations: maxIterations}
	s.tolerance = Tolerance(a, b)
	s.start()
	return nil
}

// start picks A as the support along +X and B as the support from A toward the origin.
func (s *Solver) start() {
	s.direction = mgl64.Vec2{1, 0}
	a := MinkowskiSupport(s.a, s.b, s.direction)
	s.simplex.Points[0] = a
	s.simplex.Count = 1
	s.support = a

	// The origin is on the boundary of the difference: shapes are touching
	if a.Len() <= s.tolerance {
		s.outcome = Overlapping
		return
	}

	s.direction = geom.Negate(a).Mul(1 / a.Len())
	b := MinkowskiSupport(s.a, s.b, s.direction)
	s.simplex.Points[1] = b
	s.simplex.Count = 2
	s.support = b

	// Nothing in the difference goes past the origin toward -A
	if b.Dot(s.direction) < -s.tolerance {
		s.outcome = Separated
	}
}

// Step runs one iteration and returns the resulting outcome.
// Once a verdict is reached, Step keeps returning it.
func (s *Solver) Step() Outcome {
	if s.outcome != Searching {
		return s.outcome
	}
	if s.iterations >= s.maxIterations {
		s.outcome = Inconclusive
		return s.outcome
	}
	s.iterations++

	a, b := s.simplex.Points[0], s.simplex.Points[1]

	direction, ok := TowardOrigin(a, b)
	if !ok && a.Dot(b) <= 0 {
		// A, B and the origin are collinear with the origin between A and B:
		// the segment is inside the difference, so is the origin
		s.outcome = Overlapping
		return s.outcome
	}
	s.direction = direction

	c := MinkowskiSupport(s.a, s.b, direction)
	s.support = c
	s.simplex.Points[2] = c
	s.simplex.Count = 3

	// The difference does not reach the origin along direction
	if direction.Dot(c) < -s.tolerance {
		s.outcome = Separated
		return s.outcome
	}

	// C is not past AB: AB lies on a supporting line and the origin is on it
	if direction.Dot(c.Sub(a)) <= s.tolerance {
		if projectsOnSegment(a, b, s.tolerance) {
			s.outcome = Overlapping
		} else {
			s.outcome = Separated
		}
		return s.outcome
	}

	// Origin outside edge AC: keep A and C
	if outward := edgeNormal(a, c, b); outward.Dot(geom.Negate(a)) > 0 {
		s.simplex.Points[1] = c
		s.simplex.Count = 2
		return s.outcome
	}

	// Origin outside edge BC: keep B and C
	if outward := edgeNormal(b, c, a); outward.Dot(geom.Negate(b)) > 0 {
		s.simplex.Points[0] = c
		s.simplex.Count = 2
		return s.outcome
	}

	// Inside AC, BC, and on the origin side of AB
	s.outcome = Overlapping
	return s.outcome
}

// Run steps until a verdict is reached.
func (s *Solver) Run() Outcome {
	for s.Step() == Searching {
	}
	return s.outcome
}

// Outcome returns the current state of the search.
func (s *Solver) Outcome() Outcome {
	return s.outcome
}

// Simplex returns a copy of the working simplex.
func (s *Solver) Simplex() Simplex {
	return s.simplex
}

// Direction returns the last search direction.
func (s *Solver) Direction() mgl64.Vec2 {
	return s.direction
}

// Support returns the last support point queried, C during the loop.
func (s *Solver) Support() mgl64.Vec2 {
	return s.support
}

// Tolerance returns the distance under which the solver treats points as touching.
func (s *Solver) Tolerance() float64 {
	return s.tolerance
}

// Iterations returns the number of loop iterations run so far.
func (s *Solver) Iterations() int {
	return s.iterations
}

// edgeNormal returns the normal of segment PQ pointing away from the opposite vertex.
func edgeNormal(p, q, opposite mgl64.Vec2) mgl64.Vec2 {
	inward, ok := PerpToward(p, q, opposite)
	if !ok {
		// Flat triangle, the edge has no outside
		return mgl64.Vec2{}
	}
	return geom.Negate(inward)
}

// projectsOnSegment reports whether the orthogonal projection of the origin on line AB
// falls within the segment.
func projectsOnSegment(a, b mgl64.Vec2, tolerance float64) bool {
	ab := b.Sub(a)
	l := ab.LenSqr()
	if l <= tolerance*tolerance {
		return a.Len() <= tolerance
	}
	t := geom.Negate(a).Dot(ab) / l
	return t >= -geom.Epsilon && t <= 1+geom.Epsilon
}

// Tolerance returns geom.Epsilon scaled by the half-width of the Minkowski
// difference a - b, so that verdicts do not depend on the units of the shapes.
func Tolerance(a, b shape.Shape) float64 {
	width := 0.0
	for _, axis := range []mgl64.Vec2{{1, 0}, {0, 1}} {
		hi := MinkowskiSupport(a, b, axis)
		lo := MinkowskiSupport(a, b, geom.Negate(axis))
		width = max(width, hi.Sub(lo).Dot(axis))
	}
	return geom.Epsilon * width / 2
}
