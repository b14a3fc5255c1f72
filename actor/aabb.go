package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABBFromCenter builds the box spanning center ± size/2.
// size holds the full dimensions, not the half-extents.
func NewAABBFromCenter(center, size mgl64.Vec3) AABB {
	half := size.Mul(0.5)

	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

func (a AABB) HalfExtents() mgl64.Vec3 {
	return a.Size().Mul(0.5)
}

// Union returns the smallest AABB enclosing both boxes
func (a AABB) Union(other AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min.X(), other.Min.X()),
			math.Min(a.Min.Y(), other.Min.Y()),
			math.Min(a.Min.Z(), other.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max.X(), other.Max.X()),
			math.Max(a.Max.Y(), other.Max.Y()),
			math.Max(a.Max.Z(), other.Max.Z()),
		},
	}
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// ClosestPoint clamps point into the box, axis by axis.
// For a point inside the box the point itself is returned.
func (a AABB) ClosestPoint(point mgl64.Vec3) mgl64.Vec3 {
	var closest mgl64.Vec3
	for i := 0; i < 3; i++ {
		closest[i] = math.Max(a.Min[i], math.Min(point[i], a.Max[i]))
	}

	return closest
}

// DistanceSquared is the squared distance from point to the box, zero inside.
func (a AABB) DistanceSquared(point mgl64.Vec3) float64 {
	return point.Sub(a.ClosestPoint(point)).LenSqr()
}

// OverlapsSphere checks if the sphere reaches the box
func (a AABB) OverlapsSphere(sphere BoundingSphere) bool {
	if sphere.Radius < 0 {
		return false
	}

	return a.DistanceSquared(sphere.Center) <= sphere.Radius*sphere.Radius
}

// CheckCollisionBoxes reports whether two boxes overlap on all three axes.
// Touching faces count as a collision.
func CheckCollisionBoxes(a, b AABB) bool {
	return a.Overlaps(b)
}

// CheckCollisionBoxSphere reports whether the sphere (center, radius) touches the box.
func CheckCollisionBoxSphere(box AABB, center mgl64.Vec3, radius float64) bool {
	return box.OverlapsSphere(BoundingSphere{Center: center, Radius: radius})
}
