package shape

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on both axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}

// Bounds computes the AABB of s. Both shapes are symmetric around their
// center, so the box is center ± extent.
func Bounds(s Shape) AABB {
	var extent float64
	switch s := s.(type) {
	case Circle:
		extent = s.Radius
	case Diamond:
		extent = s.HalfDiagonal
	}
	center := CenterOf(s)
	e := mgl64.Vec2{extent, extent}
	return AABB{Min: center.Sub(e), Max: center.Add(e)}
}
