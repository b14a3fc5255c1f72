package gjk

import (
	"math/rand"
	"testing"

	"github.com/akmonengine/boxcollide/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Test helper functions

func createBoxBody(position mgl64.Vec3, halfExtents mgl64.Vec3) *actor.Body {
	return actor.NewBody("box", actor.NewTransformYaw(position, 0), &actor.Box{HalfExtents: halfExtents}, actor.BodyTypeStatic)
}

func createRotatedBoxBody(position mgl64.Vec3, halfExtents mgl64.Vec3, yaw float64) *actor.Body {
	return actor.NewBody("box", actor.NewTransformYaw(position, yaw), &actor.Box{HalfExtents: halfExtents}, actor.BodyTypeStatic)
}

func createSphereBody(position mgl64.Vec3, radius float64) *actor.Body {
	return actor.NewSphereBody("sphere", position, radius, actor.BodyTypeStatic)
}

func TestMinkowskiSupport(t *testing.T) {
	t.Run("two separated spheres along x-axis", func(t *testing.T) {
		a := createSphereBody(mgl64.Vec3{0, 0, 0}, 1.0)
		b := createSphereBody(mgl64.Vec3{3, 0, 0}, 1.0)

		// max(A.x) - min(B.x) = 1 - 2
		support := MinkowskiSupport(a, b, mgl64.Vec3{1, 0, 0})
		if support.X() != -1.0 {
			t.Errorf("Expected support.X = -1, got %v", support.X())
		}
	})

	t.Run("box against sphere", func(t *testing.T) {
		a := createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
		b := createSphereBody(mgl64.Vec3{2, 0, 0}, 1.5)

		// max(A.x) - min(B.x) = 1 - 0.5
		support := MinkowskiSupport(a, b, mgl64.Vec3{1, 0, 0})
		if support.X() != 0.5 {
			t.Errorf("Expected support.X = 0.5, got %v", support.X())
		}
	})
}

func TestGJK(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *actor.Body
		expected bool
	}{
		{
			name:     "overlapping spheres",
			a:        createSphereBody(mgl64.Vec3{0, 0, 0}, 1),
			b:        createSphereBody(mgl64.Vec3{1.5, 0, 0}, 1),
			expected: true,
		},
		{
			name:     "spheres at the same position",
			a:        createSphereBody(mgl64.Vec3{1, 1, 1}, 1),
			b:        createSphereBody(mgl64.Vec3{1, 1, 1}, 0.5),
			expected: true,
		},
		{
			name:     "far apart spheres",
			a:        createSphereBody(mgl64.Vec3{0, 0, 0}, 1),
			b:        createSphereBody(mgl64.Vec3{10, 0, 0}, 1),
			expected: false,
		},
		{
			name:     "overlapping boxes",
			a:        createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:        createBoxBody(mgl64.Vec3{1.5, 0.5, -0.5}, mgl64.Vec3{1, 1, 1}),
			expected: true,
		},
		{
			name:     "box inside another",
			a:        createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{5, 5, 5}),
			b:        createBoxBody(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0.5, 0.5, 0.5}),
			expected: true,
		},
		{
			name:     "separated boxes",
			a:        createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:        createBoxBody(mgl64.Vec3{0, 2.5, 0}, mgl64.Vec3{1, 1, 1}),
			expected: false,
		},
		{
			name:     "sphere near a box face",
			a:        createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:        createSphereBody(mgl64.Vec3{2, 0, 0}, 1.5),
			expected: true,
		},
		{
			name:     "sphere away from a box face",
			a:        createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:        createSphereBody(mgl64.Vec3{4, 0, 0}, 1.5),
			expected: false,
		},
		{
			name:     "sphere near a box corner, outside",
			a:        createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:        createSphereBody(mgl64.Vec3{2, 2, 2}, 1.5),
			expected: false,
		},
		{
			name:     "rotated box reaches the sphere with a corner",
			a:        createRotatedBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, 45),
			b:        createSphereBody(mgl64.Vec3{2, 0, 0}, 0.7),
			expected: true,
		},
		{
			name:     "unrotated box misses the same sphere",
			a:        createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:        createSphereBody(mgl64.Vec3{2, 0, 0}, 0.7),
			expected: false,
		},
		{
			name:     "rotated box misses a box at its AABB corner",
			a:        createRotatedBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, 45),
			b:        createBoxBody(mgl64.Vec3{1.3, 0, 1.3}, mgl64.Vec3{0.2, 0.2, 0.2}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.expected {
				t.Errorf("Intersects = %v, want %v", got, tt.expected)
			}
			if got := Intersects(tt.b, tt.a); got != tt.expected {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.expected)
			}
		})
	}
}

// GJK must agree with the analytic predicates for axis-aligned shapes,
// away from exact contact where either answer is acceptable.
func TestGJK_MatchesAnalyticPredicates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randVec := func(scale float64) mgl64.Vec3 {
		return mgl64.Vec3{
			(rng.Float64()*2 - 1) * scale,
			(rng.Float64()*2 - 1) * scale,
			(rng.Float64()*2 - 1) * scale,
		}
	}
	randHalf := func() mgl64.Vec3 {
		return mgl64.Vec3{0.2 + rng.Float64()*2, 0.2 + rng.Float64()*2, 0.2 + rng.Float64()*2}
	}

	const margin = 1e-3

	for i := 0; i < 500; i++ {
		boxA := createBoxBody(randVec(4), randHalf())
		boxB := createBoxBody(randVec(4), randHalf())

		expected := boxA.AABB().Overlaps(boxB.AABB())
		shrunk := actor.AABB{Min: boxB.AABB().Min.Add(mgl64.Vec3{margin, margin, margin}), Max: boxB.AABB().Max.Sub(mgl64.Vec3{margin, margin, margin})}
		grown := actor.AABB{Min: boxB.AABB().Min.Sub(mgl64.Vec3{margin, margin, margin}), Max: boxB.AABB().Max.Add(mgl64.Vec3{margin, margin, margin})}
		if boxA.AABB().Overlaps(shrunk) != boxA.AABB().Overlaps(grown) {
			continue
		}

		if got := Intersects(boxA, boxB); got != expected {
			t.Fatalf("box/box %d: GJK = %v, analytic = %v (A=%v B=%v)", i, got, expected, boxA.AABB(), boxB.AABB())
		}
	}

	for i := 0; i < 500; i++ {
		box := createBoxBody(randVec(4), randHalf())
		center := randVec(6)
		radius := 0.2 + rng.Float64()*2

		distance := box.AABB().DistanceSquared(center)
		if d := distance - radius*radius; d > -margin && d < margin {
			continue
		}
		expected := actor.CheckCollisionBoxSphere(box.AABB(), center, radius)

		if got := Intersects(box, createSphereBody(center, radius)); got != expected {
			t.Fatalf("box/sphere %d: GJK = %v, analytic = %v", i, got, expected)
		}
	}
}

func TestSimplexPool(t *testing.T) {
	simplex := SimplexPool.Get().(*Simplex)
	simplex.Count = 3
	simplex.Reset()
	if simplex.Count != 0 {
		t.Errorf("Reset should empty the simplex, Count = %d", simplex.Count)
	}
	SimplexPool.Put(simplex)
}

func TestLine(t *testing.T) {
	t.Run("origin behind point A", func(t *testing.T) {
		simplex := &Simplex{Points: [4]mgl64.Vec3{{3, 0, 0}, {1, 0, 0}}, Count: 2}
		var direction mgl64.Vec3

		if line(simplex, &direction) {
			t.Fatal("a line cannot contain the origin here")
		}
		if simplex.Count != 1 || simplex.Points[0] != (mgl64.Vec3{1, 0, 0}) {
			t.Errorf("simplex should reduce to A, got %+v", simplex)
		}
		if direction != (mgl64.Vec3{-1, 0, 0}) {
			t.Errorf("direction = %v, want [-1 0 0]", direction)
		}
	})

	t.Run("origin on the segment", func(t *testing.T) {
		simplex := &Simplex{Points: [4]mgl64.Vec3{{-1, 0, 0}, {1, 0, 0}}, Count: 2}
		var direction mgl64.Vec3

		if !line(simplex, &direction) {
			t.Error("origin on the segment should be reported as contained")
		}
	})
}

func TestTetrahedron(t *testing.T) {
	t.Run("origin inside", func(t *testing.T) {
		simplex := &Simplex{
			Points: [4]mgl64.Vec3{{1, -1, -1}, {-1, -1, -1}, {0, -1, 1}, {0, 2, 0}},
			Count:  4,
		}
		var direction mgl64.Vec3
		if !tetrahedron(simplex, &direction) {
			t.Error("origin should be inside")
		}
	})

	t.Run("origin outside reduces to a triangle", func(t *testing.T) {
		simplex := &Simplex{
			Points: [4]mgl64.Vec3{{1, 1, 1}, {2, 1, 1}, {1, 2, 1}, {1, 1, 2}},
			Count:  4,
		}
		var direction mgl64.Vec3
		if tetrahedron(simplex, &direction) {
			t.Error("origin should be outside")
		}
		if simplex.Count > 3 {
			t.Errorf("simplex should shrink, Count = %d", simplex.Count)
		}
	})
}
