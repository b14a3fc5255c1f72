package boxcollide

import (
	"github.com/akmonengine/boxcollide/actor"
	"github.com/akmonengine/boxcollide/gjk"
)

// BroadPhase rebuilds the grid and returns the pairs whose AABBs overlap
func BroadPhase(spatialGrid *SpatialGrid, bodies []*actor.Body) []Pair {
	spatialGrid.Clear()
	for i, body := range bodies {
		spatialGrid.Insert(i, body)
	}
	spatialGrid.SortCells()

	return spatialGrid.FindPairs(bodies)
}

// NarrowPhase keeps the candidate pairs that really overlap, in input order
func NarrowPhase(pairs []Pair, workersCount int) []Pair {
	hits := make([]bool, len(pairs))
	indices := make([]int, len(pairs))
	for i := range indices {
		indices[i] = i
	}

	task(workersCount, indices, func(i int) {
		hits[i] = Collide(pairs[i].BodyA, pairs[i].BodyB)
	})

	colliding := make([]Pair, 0, len(pairs))
	for i, hit := range hits {
		if hit {
			colliding = append(colliding, pairs[i])
		}
	}

	return colliding
}

// Collide runs the exact overlap test for two bodies.
// Axis-aligned boxes and spheres use the closed-form predicates, anything rotated goes through GJK.
func Collide(a, b *actor.Body) bool {
	if !a.IsAxisAligned() || !b.IsAxisAligned() {
		return gjk.Intersects(a, b)
	}

	switch {
	case a.Shape.Type() == actor.ShapeTypeBox && b.Shape.Type() == actor.ShapeTypeBox:
		return actor.CheckCollisionBoxes(a.AABB(), b.AABB())
	case a.Shape.Type() == actor.ShapeTypeBox && b.Shape.Type() == actor.ShapeTypeSphere:
		return a.AABB().OverlapsSphere(b.Shape.(*actor.Sphere).Bounds())
	case a.Shape.Type() == actor.ShapeTypeSphere && b.Shape.Type() == actor.ShapeTypeBox:
		return b.AABB().OverlapsSphere(a.Shape.(*actor.Sphere).Bounds())
	case a.Shape.Type() == actor.ShapeTypeSphere && b.Shape.Type() == actor.ShapeTypeSphere:
		return a.Shape.(*actor.Sphere).Bounds().Overlaps(b.Shape.(*actor.Sphere).Bounds())
	}

	return gjk.Intersects(a, b)
}
