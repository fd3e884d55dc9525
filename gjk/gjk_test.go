package gjk

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/akmonengine/planar/geom"
	"github.com/akmonengine/planar/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Test helper functions

func circle(x, y, radius float64) shape.Shape {
	return shape.Circle{Center: mgl64.Vec2{x, y}, Radius: radius}
}

func diamond(x, y, halfDiagonal float64) shape.Shape {
	return shape.Diamond{Center: mgl64.Vec2{x, y}, HalfDiagonal: halfDiagonal}
}

func vec2Equal(a, b mgl64.Vec2, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance
}

func runGJK(t *testing.T, a, b shape.Shape) Outcome {
	t.Helper()
	simplex := &Simplex{}
	outcome, err := GJK(a, b, simplex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return outcome
}

// extent returns how far s reaches from its center along the unit axis.
func extent(s shape.Shape, axis mgl64.Vec2) float64 {
	return shape.Support(s, axis).Sub(shape.CenterOf(s)).Dot(axis)
}

// MinkowskiSupport tests

func TestMinkowskiSupport(t *testing.T) {
	t.Run("two separated circles along x-axis", func(t *testing.T) {
		a := circle(0, 0, 1)
		b := circle(3, 0, 1)

		support := MinkowskiSupport(a, b, mgl64.Vec2{1, 0})

		// max(A.x) - min(B.x) = 1 - 2 = -1
		expected := mgl64.Vec2{-1, 0}
		if !vec2Equal(support, expected, 1e-12) {
			t.Errorf("Expected support = %v, got %v", expected, support)
		}
	})

	t.Run("two overlapping circles", func(t *testing.T) {
		a := circle(0, 0, 1)
		b := circle(1.5, 0, 1)

		support := MinkowskiSupport(a, b, mgl64.Vec2{1, 0})

		// max(A.x) - min(B.x) = 1 - 0.5 = 0.5
		if support.X() != 0.5 {
			t.Errorf("Expected support.X = 0.5, got %v", support.X())
		}
	})

	t.Run("circle minus diamond", func(t *testing.T) {
		a := circle(1, 1, 1)
		b := diamond(2, 2, 1)

		// (2, 1) - left vertex (1, 2)
		support := MinkowskiSupport(a, b, mgl64.Vec2{1, 0})
		expected := mgl64.Vec2{1, -1}
		if !vec2Equal(support, expected, 1e-12) {
			t.Errorf("Expected support = %v, got %v", expected, support)
		}
	})

	t.Run("symmetry", func(t *testing.T) {
		pairs := []struct {
			name string
			a, b shape.Shape
		}{
			{"circle/circle", circle(0, 0, 1), circle(2, 1, 0.5)},
			{"circle/diamond", circle(1, 1, 1), diamond(2, 2, 1)},
			{"diamond/diamond", diamond(-1, 0, 2), diamond(1, 3, 1)},
		}

		for _, p := range pairs {
			t.Run(p.name, func(t *testing.T) {
				for i := 0; i < 360; i += 7 {
					angle := float64(i) * math.Pi / 180
					d := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}

					ab := MinkowskiSupport(p.a, p.b, d)
					ba := MinkowskiSupport(p.b, p.a, geom.Negate(d))
					if !vec2Equal(ab, geom.Negate(ba), 1e-12) {
						t.Fatalf("direction %v: %v != -%v", d, ab, ba)
					}
				}
			})
		}
	})
}

// TowardOrigin tests

func TestTowardOrigin(t *testing.T) {
	tests := []struct {
		name     string
		p, q     mgl64.Vec2
		expected mgl64.Vec2
	}{
		{"horizontal segment above origin", mgl64.Vec2{-1, 1}, mgl64.Vec2{1, 1}, mgl64.Vec2{0, -1}},
		{"vertical segment right of origin", mgl64.Vec2{1, -1}, mgl64.Vec2{1, 1}, mgl64.Vec2{-1, 0}},
		{"segment order does not matter", mgl64.Vec2{1, 1}, mgl64.Vec2{1, -1}, mgl64.Vec2{-1, 0}},
		{"diagonal segment", mgl64.Vec2{2, 0}, mgl64.Vec2{0, 2}, mgl64.Vec2{-math.Sqrt2 / 2, -math.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := TowardOrigin(tt.p, tt.q)
			if !ok {
				t.Fatalf("expected a regular direction")
			}
			if !vec2Equal(dir, tt.expected, 1e-12) {
				t.Errorf("TowardOrigin(%v, %v) = %v, want %v", tt.p, tt.q, dir, tt.expected)
			}
		})
	}
}

func TestTowardOrigin_PerpendicularAndOriented(t *testing.T) {
	for i := 0; i < 36; i++ {
		angle := float64(i) * 10 * math.Pi / 180
		p := mgl64.Vec2{3 * math.Cos(angle), 3 * math.Sin(angle)}
		q := p.Add(mgl64.Vec2{math.Cos(angle + 2), math.Sin(angle + 2)})

		dir, ok := TowardOrigin(p, q)
		if !ok {
			t.Fatalf("p=%v q=%v: unexpected degenerate case", p, q)
		}
		if math.Abs(dir.Len()-1) > 1e-12 {
			t.Errorf("p=%v q=%v: direction %v is not normalized", p, q, dir)
		}
		if math.Abs(dir.Dot(q.Sub(p))) > 1e-9 {
			t.Errorf("p=%v q=%v: direction %v is not perpendicular to PQ", p, q, dir)
		}
		if dir.Dot(geom.Negate(p)) <= 0 {
			t.Errorf("p=%v q=%v: direction %v does not face the origin", p, q, dir)
		}
	}
}

func TestTowardOrigin_Degenerate(t *testing.T) {
	tests := []struct {
		name     string
		p, q     mgl64.Vec2
		expected mgl64.Vec2
	}{
		{"collinear with origin", mgl64.Vec2{1, 1}, mgl64.Vec2{2, 2}, mgl64.Vec2{-math.Sqrt2 / 2, math.Sqrt2 / 2}},
		{"origin on segment", mgl64.Vec2{-1, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}},
		{"identical points", mgl64.Vec2{2, 0}, mgl64.Vec2{2, 0}, mgl64.Vec2{-1, 0}},
		{"both at origin", mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := TowardOrigin(tt.p, tt.q)
			if ok {
				t.Fatalf("expected the degenerate flag")
			}
			if !geom.IsFinite(dir) {
				t.Fatalf("fallback direction is not finite: %v", dir)
			}
			if !vec2Equal(dir, tt.expected, 1e-12) {
				t.Errorf("TowardOrigin(%v, %v) = %v, want %v", tt.p, tt.q, dir, tt.expected)
			}
		})
	}
}

// GJK collision detection tests - Circles

func TestGJK_Circles_Intersecting(t *testing.T) {
	tests := []struct {
		name string
		a, b shape.Shape
	}{
		{"overlapping circles", circle(0, 0, 1), circle(1.5, 0, 1)},
		{"touching circles on x", circle(0, 0, 1), circle(2, 0, 1)},
		{"touching circles on y", circle(0, 0, 1), circle(0, 2, 1)},
		{"identical position circles", circle(0, 0, 1), circle(0, 0, 1)},
		{"small circle inside big one", circle(0, 0, 5), circle(1, -2, 0.5)},
		{"overlapping diagonally", circle(0, 0, 1), circle(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if outcome := runGJK(t, tt.a, tt.b); outcome != Overlapping {
				t.Errorf("Expected overlap, got %v", outcome)
			}
		})
	}
}

func TestGJK_Circles_Separated(t *testing.T) {
	tests := []struct {
		name string
		a, b shape.Shape
	}{
		{"far apart circles", circle(0, 0, 1), circle(10, 0, 1)},
		{"barely separated circles", circle(0, 0, 1), circle(2.1, 0, 1)},
		{"separated on Y", circle(0, 0, 1), circle(0, 5, 1)},
		{"separated diagonally", circle(0, 0, 1), circle(3, 3, 1)},
		{"separated on negative X", circle(0, 0, 1), circle(-2.5, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if outcome := runGJK(t, tt.a, tt.b); outcome != Separated {
				t.Errorf("Expected no overlap, got %v", outcome)
			}
		})
	}
}

// GJK collision detection tests - Diamonds

func TestGJK_Diamonds(t *testing.T) {
	tests := []struct {
		name     string
		a, b     shape.Shape
		expected Outcome
	}{
		{"overlapping on x", diamond(0, 0, 1), diamond(1.5, 0, 1), Overlapping},
		{"overlapping on y", diamond(0, 0, 1), diamond(0, 1.5, 1), Overlapping},
		{"touching vertex to vertex", diamond(0, 0, 1), diamond(2, 0, 1), Overlapping},
		{"touching edge to edge", diamond(0, 0, 1), diamond(1, 1, 1), Overlapping},
		{"identical position", diamond(1, 1, 1), diamond(1, 1, 2), Overlapping},
		{"separated on x", diamond(0, 0, 1), diamond(3, 0, 1), Separated},
		{"separated diagonally", diamond(0, 0, 1), diamond(1.5, 1.5, 1), Separated},
		{"separated on negative y", diamond(0, 0, 1), diamond(0.5, -3, 1), Separated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if outcome := runGJK(t, tt.a, tt.b); outcome != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, outcome)
			}
		})
	}
}

// GJK collision detection tests - Mixed shapes

func TestGJK_CircleAndDiamond(t *testing.T) {
	tests := []struct {
		name     string
		a, b     shape.Shape
		expected Outcome
	}{
		// The demo shapes: centers √2 apart, extents 1 + √2/2 along the diagonal
		{"demo scene", circle(1, 1, 1), diamond(2, 2, 1), Overlapping},
		{"demo scene reversed", diamond(2, 2, 1), circle(1, 1, 1), Overlapping},
		{"touching on x", circle(0, 0, 1), diamond(2, 0, 1), Overlapping},
		{"coincident centers", circle(3, -1, 1), diamond(3, -1, 2), Overlapping},
		{"diamond inside circle", circle(0, 0, 5), diamond(1, 1, 1), Overlapping},
		{"separated on x", circle(0, 0, 1), diamond(3, 0, 1), Separated},
		{"separated diagonally", circle(0, 0, 1), diamond(2, 2, 1), Separated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if outcome := runGJK(t, tt.a, tt.b); outcome != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, outcome)
			}
		})
	}
}

func TestGJK_DemoSceneSupportsCross(t *testing.T) {
	c := shape.Circle{Center: mgl64.Vec2{1, 1}, Radius: 1}
	d := shape.Diamond{Center: mgl64.Vec2{2, 2}, HalfDiagonal: 1}

	// Boundary points facing each other along the line of centers
	axis := d.Center.Sub(c.Center).Normalize()
	onCircle := c.Support(axis)
	onDiamond := d.Support(geom.Negate(axis))

	// The circle reaches past the diamond's nearest boundary point
	if onCircle.Sub(c.Center).Dot(axis) < onDiamond.Sub(c.Center).Dot(axis) {
		t.Errorf("expected crossing boundaries: circle %v, diamond %v", onCircle, onDiamond)
	}

	overlap, err := Overlap(c, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !overlap {
		t.Error("Expected the demo shapes to overlap")
	}
}

// Properties

func TestGJK_SeparationProperty(t *testing.T) {
	shapes := []shape.Shape{
		circle(0, 0, 1),
		circle(0, 0, 0.25),
		diamond(0, 0, 1),
		diamond(0, 0, 2.5),
	}

	for i, a := range shapes {
		for j, b := range shapes {
			for k := 0; k < 24; k++ {
				angle := float64(k) * 15 * math.Pi / 180
				axis := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}

				reach := extent(a, axis) + extent(b, geom.Negate(axis))
				offset := axis.Mul(reach*1.2 + 0.1)
				moved := shape.Translate(b, offset)

				if outcome := runGJK(t, a, moved); outcome != Separated {
					t.Errorf("shapes %d/%d at %v°: expected separated, got %v", i, j, k*15, outcome)
				}
			}
		}
	}
}

func TestGJK_ContainmentProperty(t *testing.T) {
	centers := []mgl64.Vec2{{0, 0}, {1, 1}, {-3, 2.5}}
	for _, c := range centers {
		pairs := []struct {
			name string
			a, b shape.Shape
		}{
			{"circle/circle", circle(c.X(), c.Y(), 1), circle(c.X(), c.Y(), 0.5)},
			{"circle/diamond", circle(c.X(), c.Y(), 1), diamond(c.X(), c.Y(), 3)},
			{"diamond/circle", diamond(c.X(), c.Y(), 0.5), circle(c.X(), c.Y(), 2)},
			{"diamond/diamond", diamond(c.X(), c.Y(), 1), diamond(c.X(), c.Y(), 1)},
		}
		for _, p := range pairs {
			if outcome := runGJK(t, p.a, p.b); outcome != Overlapping {
				t.Errorf("%s at %v: expected overlap, got %v", p.name, c, outcome)
			}
		}
	}
}

// distanceToSegment returns the distance from p to segment QR.
func distanceToSegment(p, q, r mgl64.Vec2) float64 {
	qr := r.Sub(q)
	t := mgl64.Clamp(p.Sub(q).Dot(qr)/qr.LenSqr(), 0, 1)
	return p.Sub(q.Add(qr.Mul(t))).Len()
}

// distanceToDiamond returns the distance from p to the L1 ball of radius h
// around center, 0 when p is inside.
func distanceToDiamond(p, center mgl64.Vec2, h float64) float64 {
	q := p.Sub(center)
	if math.Abs(q.X())+math.Abs(q.Y()) <= h {
		return 0
	}
	vertices := [4]mgl64.Vec2{{h, 0}, {0, h}, {-h, 0}, {0, -h}}
	d := math.Inf(1)
	for i, v := range vertices {
		d = math.Min(d, distanceToSegment(q, v, vertices[(i+1)%4]))
	}
	return d
}

// exactGap returns the signed gap between two shapes: positive when they are
// apart, non-positive when they overlap.
func exactGap(a, b shape.Shape) float64 {
	switch a := a.(type) {
	case shape.Circle:
		switch b := b.(type) {
		case shape.Circle:
			return a.Center.Sub(b.Center).Len() - a.Radius - b.Radius
		case shape.Diamond:
			return distanceToDiamond(a.Center, b.Center, b.HalfDiagonal) - a.Radius
		}
	case shape.Diamond:
		switch b := b.(type) {
		case shape.Circle:
			return distanceToDiamond(b.Center, a.Center, a.HalfDiagonal) - b.Radius
		case shape.Diamond:
			// a - b is the L1 ball of radius ha + hb around the center offset
			d := distanceToDiamond(a.Center, b.Center, a.HalfDiagonal+b.HalfDiagonal)
			if d == 0 {
				return -1
			}
			return d
		}
	}
	panic(fmt.Sprintf("unexpected shapes %T, %T", a, b))
}

func TestGJK_MatchesExactGap(t *testing.T) {
	makers := map[string]func(center mgl64.Vec2, size float64) shape.Shape{
		"circle": func(c mgl64.Vec2, size float64) shape.Shape {
			return shape.Circle{Center: c, Radius: size}
		},
		"diamond": func(c mgl64.Vec2, size float64) shape.Shape {
			return shape.Diamond{Center: c, HalfDiagonal: size}
		},
	}
	kinds := []struct{ a, b string }{
		{"circle", "circle"},
		{"circle", "diamond"},
		{"diamond", "circle"},
		{"diamond", "diamond"},
	}
	scales := []float64{1e-3, 1, 1e3}

	for i, kind := range kinds {
		t.Run(kind.a+"/"+kind.b, func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(42 + i)))
			failures := 0
			checked := 0

			for n := 0; n < 3000; n++ {
				scale := scales[n%len(scales)]
				sizeA := (0.1 + 2.9*rng.Float64()) * scale
				sizeB := (0.1 + 2.9*rng.Float64()) * scale
				centerB := mgl64.Vec2{rng.Float64()*10 - 5, rng.Float64()*10 - 5}.Mul(scale)

				// Offsets up to 1.3x the largest reach, so most pairs sit near the boundary
				angle := 2 * math.Pi * rng.Float64()
				dist := 1.3 * (sizeA + sizeB) * rng.Float64()
				centerA := centerB.Add(mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(dist))

				a := makers[kind.a](centerA, sizeA)
				b := makers[kind.b](centerB, sizeB)

				gap := exactGap(a, b)
				if math.Abs(gap) < 1e-6*scale {
					continue
				}
				checked++

				want := Separated
				if gap < 0 {
					want = Overlapping
				}
				if got := runGJK(t, a, b); got != want {
					failures++
					if failures <= 10 {
						t.Errorf("%v vs %v (gap %g): expected %v, got %v", a, b, gap, want, got)
					}
				}
			}

			if failures > 0 {
				t.Errorf("%d wrong verdicts out of %d pairs", failures, checked)
			}
			if checked < 2500 {
				t.Errorf("only %d pairs checked", checked)
			}
		})
	}
}

func TestGJK_SmallShapes(t *testing.T) {
	const r = 1e-3
	origin := mgl64.Vec2{0.5e-3, -0.2e-3}

	tests := []struct {
		name string
		gap  float64
		want Outcome
	}{
		{"apart by 1e-9", 1e-9, Separated},
		{"apart by 1e-11", 1e-11, Separated},
		{"overlapping by 1e-11", -1e-11, Overlapping},
		{"overlapping by 1e-9", -1e-9, Overlapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k := 0; k < 8; k++ {
				angle := float64(k)*math.Pi/4 + 0.3
				axis := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}

				a := shape.Circle{Center: origin, Radius: r}
				b := shape.Circle{Center: origin.Add(axis.Mul(2*r + tt.gap)), Radius: r}
				if got := runGJK(t, a, b); got != tt.want {
					t.Errorf("circles at %.2f rad: expected %v, got %v", angle, tt.want, got)
				}
			}

			a := shape.Diamond{Center: origin, HalfDiagonal: r}
			b := shape.Diamond{Center: origin.Add(mgl64.Vec2{2*r + tt.gap, 0}), HalfDiagonal: r}
			if got := runGJK(t, a, b); got != tt.want {
				t.Errorf("diamonds: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTolerance(t *testing.T) {
	unit := Tolerance(circle(0, 0, 1), circle(5, 5, 1))
	if math.Abs(unit-2*geom.Epsilon) > 1e-18 {
		t.Errorf("expected tolerance %g for two unit circles, got %g", 2*geom.Epsilon, unit)
	}

	small := Tolerance(circle(0, 0, 1e-3), diamond(0, 0, 1e-3))
	if math.Abs(small-2e-3*geom.Epsilon) > 1e-21 {
		t.Errorf("expected tolerance %g, got %g", 2e-3*geom.Epsilon, small)
	}

	solver, err := NewSolver(circle(0, 0, 1e-3), diamond(0, 0, 1e-3), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if solver.Tolerance() != small {
		t.Errorf("solver tolerance %g, want %g", solver.Tolerance(), small)
	}
}

// Errors and solver state

func TestGJK_InvalidShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b shape.Shape
	}{
		{"zero radius", circle(0, 0, 0), circle(1, 0, 1)},
		{"negative half-diagonal", circle(0, 0, 1), diamond(1, 0, -1)},
		{"nil shape", nil, circle(1, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			simplex := &Simplex{}
			_, err := GJK(tt.a, tt.b, simplex)
			if !errors.Is(err, shape.ErrInvalidShape) {
				t.Errorf("Expected ErrInvalidShape, got %v", err)
			}

			overlap, err := Overlap(tt.a, tt.b)
			if overlap || err == nil {
				t.Errorf("Expected Overlap to fail, got %v, %v", overlap, err)
			}
		})
	}
}

func TestSolver_Stepwise(t *testing.T) {
	solver, err := NewSolver(circle(0, 0, 1), circle(0, 2, 1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	simplex := solver.Simplex()
	if solver.Outcome() != Searching || simplex.Count != 2 {
		t.Fatalf("expected a 2-point simplex after init, got %v with %d points", solver.Outcome(), simplex.Count)
	}

	// First iteration keeps searching: the origin sits on the circle of the difference
	if outcome := solver.Step(); outcome != Searching {
		t.Fatalf("expected the first step to keep searching, got %v", outcome)
	}
	if solver.Iterations() != 1 {
		t.Errorf("expected 1 iteration, got %d", solver.Iterations())
	}
	if math.Abs(solver.Direction().Len()-1) > 1e-12 {
		t.Errorf("expected a unit search direction, got %v", solver.Direction())
	}

	if outcome := solver.Run(); outcome != Overlapping {
		t.Errorf("expected touching circles to overlap, got %v", outcome)
	}
	if solver.Iterations() > MaxIterations {
		t.Errorf("solver ran %d iterations, bound is %d", solver.Iterations(), MaxIterations)
	}

	// Terminal outcome is sticky
	iterations := solver.Iterations()
	if outcome := solver.Step(); outcome != Overlapping || solver.Iterations() != iterations {
		t.Errorf("expected a sticky verdict, got %v after %d iterations", outcome, solver.Iterations())
	}
}

func TestSolver_IterationBound(t *testing.T) {
	solver, err := NewSolver(circle(0, 0, 1), circle(0, 2, 1), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome := solver.Run(); outcome != Inconclusive {
		t.Errorf("Expected inconclusive with a single iteration, got %v", outcome)
	}
	if solver.Iterations() != 1 {
		t.Errorf("expected 1 iteration, got %d", solver.Iterations())
	}
}

func TestSolver_InitialSeparation(t *testing.T) {
	solver, err := NewSolver(circle(0, 0, 1), circle(10, 0, 1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if solver.Outcome() != Separated {
		t.Errorf("expected separation to be found during init, got %v", solver.Outcome())
	}
	if solver.Iterations() != 0 {
		t.Errorf("expected no iteration, got %d", solver.Iterations())
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		Searching:    "searching",
		Separated:    "separated",
		Overlapping:  "overlapping",
		Inconclusive: "inconclusive",
		Outcome(42):  "Outcome(42)",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", uint8(o), got, want)
		}
	}
}

// Outline tests

func TestOutline(t *testing.T) {
	t.Run("circles give a circle of summed radius", func(t *testing.T) {
		a := circle(1, 0, 1)
		b := circle(-1, 2, 0.5)
		points := Outline(a, b, 630)
		if len(points) != 630 {
			t.Fatalf("expected 630 points, got %d", len(points))
		}

		center := mgl64.Vec2{2, -2}
		for _, p := range points {
			if d := p.Sub(center).Len(); math.Abs(d-1.5) > 1e-9 {
				t.Fatalf("point %v at distance %v from %v, want 1.5", p, d, center)
			}
		}
	})

	t.Run("points match the support of each direction", func(t *testing.T) {
		a := circle(1, 1, 1)
		b := diamond(2, 2, 1)
		points := Outline(a, b, 8)
		for i, p := range points {
			angle := 2 * math.Pi * float64(i) / 8
			expected := MinkowskiSupport(a, b, mgl64.Vec2{math.Cos(angle), math.Sin(angle)})
			if p != expected {
				t.Errorf("point %d: got %v, want %v", i, p, expected)
			}
		}
	})

	t.Run("no samples", func(t *testing.T) {
		if points := Outline(circle(0, 0, 1), circle(1, 1, 1), 0); points != nil {
			t.Errorf("expected nil, got %v", points)
		}
	})
}
