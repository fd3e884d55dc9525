package gjk

import (
	"math"

	"github.com/akmonengine/planar/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Outline samples the boundary of the Minkowski difference a - b by querying
// MinkowskiSupport in samples evenly spaced directions.
// Polygonal differences yield repeated vertices; they are kept so that point i
// always matches direction i.
func Outline(a, b shape.Shape, samples int) []mgl64.Vec2 {
	if samples <= 0 {
		return nil
	}

	points := make([]mgl64.Vec2, samples)
	for i := range points {
		t := 2 * math.Pi * float64(i) / float64(samples)
		points[i] = MinkowskiSupport(a, b, mgl64.Vec2{math.Cos(t), math.Sin(t)})
	}
	return points
}
