// Package geom provides the 2D vector helpers used by the collision code.
//
// Vectors are plain mgl64.Vec2 values. Addition, subtraction, scaling, dot
// product and normalization come straight from mathgl; this package adds the
// operations mathgl does not have for Vec2 (guarded normalization, unsigned
// angle, perpendiculars) and the z = 0 lift used to build perpendiculars with
// 3D cross products.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used by the geometry code for "close to zero" tests.
// It is absolute here; the GJK solver scales it by the size of the shapes.
const Epsilon = 1e-9

// Negate returns -v.
func Negate(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.X(), -v.Y()}
}

// IsZero reports whether v has a squared length below Epsilon².
func IsZero(v mgl64.Vec2) bool {
	return v.LenSqr() < Epsilon*Epsilon
}

// IsFinite reports whether both components of v are finite numbers.
func IsFinite(v mgl64.Vec2) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Normalize returns v scaled to unit length.
// The second result is false when v is zero or not finite, in which case the
// zero vector is returned. mgl64.Vec2.Normalize must never be called on such a
// vector: it divides by the length.
func Normalize(v mgl64.Vec2) (mgl64.Vec2, bool) {
	if !IsFinite(v) {
		return mgl64.Vec2{}, false
	}
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{v.X() / l, v.Y() / l}, true
}

// Angle returns the unsigned angle between v and ref, in [0, π].
// The sign is left to the caller (usually taken from v.Y() when ref is the x
// axis). Angle returns 0 when either vector is zero.
func Angle(v, ref mgl64.Vec2) float64 {
	lv, lr := v.Len(), ref.Len()
	if lv == 0 || lr == 0 {
		return 0
	}
	cos := v.Dot(ref) / (lv * lr)
	return math.Acos(mgl64.Clamp(cos, -1, 1))
}

// Perp returns v rotated by +90 degrees.
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.Y(), v.X()}
}

// Lift embeds v in 3D space with z = 0.
func Lift(v mgl64.Vec2) mgl64.Vec3 {
	return v.Vec3(0)
}

// Cross is the cross product of the lifted vectors. Only its Z component is
// nonzero.
func Cross(a, b mgl64.Vec2) mgl64.Vec3 {
	return Lift(a).Cross(Lift(b))
}

// TripleProduct returns the xy part of (a × b) × c, computed on the lifted
// vectors. With c = a it is the component of b perpendicular to a, scaled by
// |a|², which is how the perpendicular toward a point is built.
func TripleProduct(a, b, c mgl64.Vec2) mgl64.Vec2 {
	return Cross(a, b).Cross(Lift(c)).Vec2()
}

// ApproxEqual compares a and b component-wise with the given threshold.
func ApproxEqual(a, b mgl64.Vec2, eps float64) bool {
	return a.ApproxEqualThreshold(b, eps)
}
