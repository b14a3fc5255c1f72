package actor

import "github.com/go-gl/mathgl/mgl64"

// BoundingSphere is a sphere in world space, the counterpart of AABB for round volumes
type BoundingSphere struct {
	Center mgl64.Vec3
	Radius float64
}

// AABB returns the box enclosing the sphere
func (s BoundingSphere) AABB() AABB {
	radiusVec := mgl64.Vec3{s.Radius, s.Radius, s.Radius}

	return AABB{
		Min: s.Center.Sub(radiusVec),
		Max: s.Center.Add(radiusVec),
	}
}

func (s BoundingSphere) ContainsPoint(point mgl64.Vec3) bool {
	if s.Radius < 0 {
		return false
	}

	return point.Sub(s.Center).LenSqr() <= s.Radius*s.Radius
}

// Overlaps checks if two spheres touch or intersect
func (s BoundingSphere) Overlaps(other BoundingSphere) bool {
	if s.Radius < 0 || other.Radius < 0 {
		return false
	}
	sum := s.Radius + other.Radius

	return s.Center.Sub(other.Center).LenSqr() <= sum*sum
}

// OverlapsAABB is the symmetric form of AABB.OverlapsSphere
func (s BoundingSphere) OverlapsAABB(box AABB) bool {
	return box.OverlapsSphere(s)
}
