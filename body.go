package planar

import (
	"github.com/akmonengine/planar/shape"
	"github.com/go-gl/mathgl/mgl64"
)

type BodyType uint8

const (
	BodyTypeDynamic BodyType = iota
	BodyTypeStatic
)

// Body is a shape placed in a World.
// Pairs of static bodies are never tested against each other.
type Body struct {
	Id       string
	Shape    shape.Shape
	BodyType BodyType

	aabb shape.AABB
}

func NewBody(id string, s shape.Shape, bodyType BodyType) *Body {
	b := &Body{
		Id:       id,
		Shape:    s,
		BodyType: bodyType,
	}
	b.ComputeAABB()

	return b
}

// ComputeAABB refreshes the cached bounding box from the current shape
func (b *Body) ComputeAABB() {
	b.aabb = shape.Bounds(b.Shape)
}

func (b *Body) GetAABB() shape.AABB {
	return b.aabb
}

// Translate moves the body's shape by delta
func (b *Body) Translate(delta mgl64.Vec2) {
	b.Shape = shape.Translate(b.Shape, delta)
	b.ComputeAABB()
}
