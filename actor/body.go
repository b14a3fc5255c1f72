package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// BodyType represents how a body takes part in the simulation
type BodyType int

const (
	// BodyTypeStatic bodies never move (obstacles, walls)
	// Pairs of static bodies are never tested against each other
	BodyTypeStatic BodyType = iota

	// BodyTypeKinematic bodies are moved directly by user code (the player)
	BodyTypeKinematic
)

// Body is a named shape placed in the world
type Body struct {
	ID        uuid.UUID
	Name      string
	Transform Transform
	Shape     ShapeInterface
	BodyType  BodyType
	// IsTrigger bodies report overlaps as trigger events and never count as a collision
	IsTrigger bool
}

func NewBody(name string, transform Transform, shape ShapeInterface, bodyType BodyType) *Body {
	b := &Body{
		ID:        uuid.New(),
		Name:      name,
		Transform: transform,
		Shape:     shape,
		BodyType:  bodyType,
	}
	b.Shape.ComputeAABB(b.Transform)

	return b
}

// NewBoxBody creates a body with a box of full dimensions size centered on position
func NewBoxBody(name string, position, size mgl64.Vec3, bodyType BodyType) *Body {
	return NewBody(name, NewTransformYaw(position, 0), NewBoxFromSize(size), bodyType)
}

func NewSphereBody(name string, position mgl64.Vec3, radius float64, bodyType BodyType) *Body {
	return NewBody(name, NewTransformYaw(position, 0), &Sphere{Radius: radius}, bodyType)
}

// Move translates the body and refreshes its AABB
func (b *Body) Move(delta mgl64.Vec3) {
	b.Transform.Translate(delta)
	b.Shape.ComputeAABB(b.Transform)
}

// SetPosition places the body and refreshes its AABB
func (b *Body) SetPosition(position mgl64.Vec3) {
	b.Transform.Position = position
	b.Shape.ComputeAABB(b.Transform)
}

func (b *Body) AABB() AABB {
	return b.Shape.GetAABB()
}

// IsAxisAligned reports whether the analytic AABB tests are exact for this body
func (b *Body) IsAxisAligned() bool {
	if b.Shape.Type() == ShapeTypeSphere {
		return true
	}
	return b.Transform.IsUnrotated()
}

// SupportWorld returns the furthest world-space point of the body along direction
func (b *Body) SupportWorld(direction mgl64.Vec3) mgl64.Vec3 {
	if b.Transform.IsUnrotated() {
		return b.Transform.Position.Add(b.Shape.Support(direction))
	}

	localDirection := b.Transform.InverseRotation.Rotate(direction)
	localSupport := b.Shape.Support(localDirection)
	worldSupport := b.Transform.Rotation.Rotate(localSupport)

	return b.Transform.Position.Add(worldSupport)
}
