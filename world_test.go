package boxcollide

import (
	"testing"

	"github.com/akmonengine/boxcollide/actor"
	"github.com/go-gl/mathgl/mgl64"
)

func TestNewWorldDefaults(t *testing.T) {
	world := NewWorld(0, -1)

	if world.SpatialGrid.cellSize != DEFAULT_CELL_SIZE {
		t.Errorf("cell size = %v, want %v", world.SpatialGrid.cellSize, DEFAULT_CELL_SIZE)
	}
	if len(world.SpatialGrid.cells) != DEFAULT_NUM_CELLS {
		t.Errorf("cells = %d, want %d", len(world.SpatialGrid.cells), DEFAULT_NUM_CELLS)
	}
	if world.Workers != DEFAULT_WORKERS {
		t.Errorf("workers = %d, want %d", world.Workers, DEFAULT_WORKERS)
	}
}

func TestWorldStep(t *testing.T) {
	tests := []struct {
		name     string
		workers  int
		position mgl64.Vec3
		expected int
	}{
		{"apart", 1, mgl64.Vec3{0, 0, 5}, 0},
		{"touching the box", 1, mgl64.Vec3{-2.9, 0, 0}, 1},
		{"touching the sphere", 1, mgl64.Vec3{2.6, 0, 0}, 1},
		{"zero workers clamped", 0, mgl64.Vec3{2.6, 0, 0}, 1},
		{"many workers", 8, mgl64.Vec3{2.6, 0, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := NewWorld(2, 64)
			world.Workers = tt.workers
			player := actor.NewBoxBody("player", mgl64.Vec3{}, mgl64.Vec3{1, 2, 1}, actor.BodyTypeKinematic)
			world.AddBody(player)
			world.AddBody(actor.NewBoxBody("enemy-box", mgl64.Vec3{-4, 1, 0}, mgl64.Vec3{2, 2, 2}, actor.BodyTypeStatic))
			world.AddBody(actor.NewSphereBody("enemy-sphere", mgl64.Vec3{4, 0, 0}, 1.5, actor.BodyTypeStatic))

			// the step must pick up the new transform without a manual AABB refresh
			player.Transform.Position = tt.position

			pairs := world.Step()
			if len(pairs) != tt.expected {
				t.Fatalf("pairs = %d, want %d", len(pairs), tt.expected)
			}
			if world.Workers < 1 {
				t.Errorf("workers left at %d", world.Workers)
			}
			for _, p := range pairs {
				if p.BodyA != player && p.BodyB != player {
					t.Error("every pair should involve the player")
				}
			}
		})
	}
}
