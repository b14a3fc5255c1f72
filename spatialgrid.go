package boxcollide

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/akmonengine/boxcollide/actor"
	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey - coordinates of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell - indices of the bodies touching a cell
type Cell struct {
	bodyIndices []int
}

// Pair - two bodies that potentially collide
type Pair struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

// SpatialGrid - uniform hashed grid used by the broad phase
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// NewSpatialGrid - numCells is rounded up to a power of two
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].bodyIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - adds the body to every cell its AABB touches
func (sg *SpatialGrid) Insert(bodyIndex int, body *actor.Body) {
	aabb := body.AABB()
	minCell := sg.worldToCell(aabb.Min)
	maxCell := sg.worldToCell(aabb.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := sg.hashCell(CellKey{x, y, z})

				// a body spanning colliding hashes must appear once per cell
				indices := sg.cells[cellIdx].bodyIndices
				if n := len(indices); n > 0 && indices[n-1] == bodyIndex {
					continue
				}
				sg.cells[cellIdx].bodyIndices = append(indices, bodyIndex)
			}
		}
	}
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].bodyIndices = sg.cells[i].bodyIndices[:0]
	}
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].bodyIndices) > 1 {
			sort.Ints(sg.cells[i].bodyIndices)
		}
	}
}

// FindPairs returns each pair of bodies whose AABBs overlap exactly once.
// Static/static pairs are skipped.
func (sg *SpatialGrid) FindPairs(bodies []*actor.Body) []Pair {
	pairs := make([]Pair, 0, len(bodies))
	seen := make([]bool, len(bodies))

	for bodyIdx := 0; bodyIdx < len(bodies); bodyIdx++ {
		bodyA := bodies[bodyIdx]
		clear(seen)

		minCell := sg.worldToCell(bodyA.AABB().Min)
		maxCell := sg.worldToCell(bodyA.AABB().Max)

		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					cellIdx := sg.hashCell(CellKey{x, y, z})

					for _, otherIdx := range sg.cells[cellIdx].bodyIndices {
						// deterministic order, avoids (A,B) and (B,A)
						if otherIdx <= bodyIdx || seen[otherIdx] {
							continue
						}
						seen[otherIdx] = true

						bodyB := bodies[otherIdx]
						if bodyA.BodyType == actor.BodyTypeStatic && bodyB.BodyType == actor.BodyTypeStatic {
							continue
						}

						if bodyA.AABB().Overlaps(bodyB.AABB()) {
							pairs = append(pairs, Pair{BodyA: bodyA, BodyB: bodyB})
						}
					}
				}
			}
		}
	}

	return pairs
}

func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell - maps a cell to a slot of the array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(key.X))
	binary.LittleEndian.PutUint64(buf[8:], uint64(key.Y))
	binary.LittleEndian.PutUint64(buf[16:], uint64(key.Z))

	return int(xxhash.Sum64(buf[:]) & uint64(sg.cellMask))
}
