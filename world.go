package boxcollide

import (
	"github.com/akmonengine/boxcollide/actor"
)

const (
	DEFAULT_WORKERS   = 1
	DEFAULT_CELL_SIZE = 2.0
	DEFAULT_NUM_CELLS = 256
)

type World struct {
	// List of all bodies in the world
	Bodies      []*actor.Body
	SpatialGrid *SpatialGrid
	Workers     int

	Events Events
}

// NewWorld creates an empty world with its broad phase grid
func NewWorld(cellSize float64, numCells int) *World {
	if cellSize <= 0 {
		cellSize = DEFAULT_CELL_SIZE
	}
	if numCells <= 0 {
		numCells = DEFAULT_NUM_CELLS
	}

	return &World{
		SpatialGrid: NewSpatialGrid(cellSize, numCells),
		Workers:     DEFAULT_WORKERS,
		Events:      NewEvents(),
	}
}

// AddBody adds a body to the world
func (w *World) AddBody(body *actor.Body) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the world
func (w *World) RemoveBody(body *actor.Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	w.Events.forget(body)
}

// Step runs one collision pass and dispatches the resulting events.
// It returns every overlapping pair, trigger pairs included.
func (w *World) Step() []Pair {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)

	for _, body := range w.Bodies {
		body.Shape.ComputeAABB(body.Transform)
	}

	pairs := w.detectCollision()

	w.Events.recordCollisions(pairs)
	w.Events.flush()

	return pairs
}

func (w *World) detectCollision() []Pair {
	return NarrowPhase(BroadPhase(w.SpatialGrid, w.Bodies), w.Workers)
}
