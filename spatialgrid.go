package planar

import (
	"encoding/binary"
	"math"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_CELL_SIZE = 2.0
	DEFAULT_CELLS     = 256
)

// ============================================================================
// Types
// ============================================================================

// CellKey - coordinates of a cell in the plane
type CellKey struct {
	X, Y int
}

// Cell - indices of the bodies touching a cell
type Cell struct {
	bodyIndices []int
}

// Pair - two bodies whose bounding boxes overlap
type Pair struct {
	BodyA *Body
	BodyB *Body
}

// SpatialGrid - uniform hashed grid used for the broad phase
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// ============================================================================
// Constructor
// ============================================================================

// NewSpatialGrid - numCells is rounded up to a power of two
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = DEFAULT_CELL_SIZE
	}
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

// nextPowerOfTwo - rounds n up to the next power of two
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

// Insert - adds the body to every cell covered by its AABB
func (sg *SpatialGrid) Insert(bodyIndex int, body *Body) {
	aabb := body.GetAABB()
	minCell := sg.worldToCell(aabb.Min)
	maxCell := sg.worldToCell(aabb.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			cellIdx := sg.hashCell(CellKey{x, y})

			sg.cells[cellIdx].bodyIndices = append(
				sg.cells[cellIdx].bodyIndices,
				bodyIndex,
			)
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

// FindPairs - sequential version
func (sg *SpatialGrid) FindPairs(bodies []*Body) []Pair {
	pairs := make([]Pair, 0, len(bodies)/2)

	seen := make([]bool, len(bodies))
	for bodyIdx := range bodies {
		clear(seen)
		sg.visitCandidates(bodies, bodyIdx, seen, func(p Pair) {
			pairs = append(pairs, p)
		})
	}

	return pairs
}

// FindPairsParallel - parallel version, streaming the pairs on a channel
func (sg *SpatialGrid) FindPairsParallel(bodies []*Body, numWorkers int) <-chan Pair {
	var wg sync.WaitGroup
	numWorkers = max(1, numWorkers)
	pairsChan := make(chan Pair, numWorkers*10)

	chunkSize := (len(bodies) + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		start := min(w*chunkSize, len(bodies))
		end := min(start+chunkSize, len(bodies))
		if start == end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			seen := make([]bool, len(bodies))
			for bodyIdx := start; bodyIdx < end; bodyIdx++ {
				clear(seen)
				sg.visitCandidates(bodies, bodyIdx, seen, func(p Pair) {
					pairsChan <- p
				})
			}
		}(start, end)
	}

	go func() {
		wg.Wait()
		close(pairsChan)
	}()

	return pairsChan
}

// visitCandidates calls emit once for every body sharing a cell with bodies[bodyIdx],
// with a higher index, and an overlapping AABB
func (sg *SpatialGrid) visitCandidates(bodies []*Body, bodyIdx int, seen []bool, emit func(Pair)) {
	bodyA := bodies[bodyIdx]
	minCell := sg.worldToCell(bodyA.GetAABB().Min)
	maxCell := sg.worldToCell(bodyA.GetAABB().Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			cellIdx := sg.hashCell(CellKey{x, y})

			for _, otherIdx := range sg.cells[cellIdx].bodyIndices {
				// Deterministic order, avoids (A,B) and (B,A)
				if otherIdx <= bodyIdx || seen[otherIdx] {
					continue
				}
				seen[otherIdx] = true

				bodyB := bodies[otherIdx]
				if bodyA.BodyType == BodyTypeStatic && bodyB.BodyType == BodyTypeStatic {
					continue
				}
				if bodyA.GetAABB().Overlaps(bodyB.GetAABB()) {
					emit(Pair{BodyA: bodyA, BodyB: bodyB})
				}
			}
		}
	}
}

// worldToCell - converts a position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec2) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
	}
}

// hashCell - maps a cell to an index in the cells array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(int64(key.X)))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(key.Y)))

	return int(xxhash.Sum64(buf[:]) & uint64(sg.cellMask))
}
