package grid

import (
	"github.com/katalvlaran/tilemap/geom"
)

// neighborOffsets orders the four orthogonal neighbors visited by
// FillArea: left, right, up, down.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FillArea grows a region breadth-first from seed, overwriting with
// fill every reachable cell whose current value satisfies rule. The
// seed itself is set unconditionally when in bounds; an out-of-bounds
// seed is a no-op. Neighbors are examined in left, right, up, down
// order and connectivity is strictly orthogonal.
//
// Cells are written at enqueue time, so a cell is never enqueued twice
// as long as rule(fill) is false. That is the caller contract: a rule
// that matches the fill value re-enters already-filled cells and the
// fill never drains its queue.
// Complexity: O(W×H) time, O(W×H) memory worst case.
func FillArea[T any](g Grid[T], seed geom.Point, rule Rule[T], fill T) {
	if !InBounds(g, seed.X, seed.Y) {
		return
	}
	g.SetAt(seed.X, seed.Y, fill)

	queue := []geom.Point{seed}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, d := range neighborOffsets {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if !InBounds(g, nx, ny) || !rule(g.At(nx, ny)) {
				continue
			}
			// Write before enqueueing so the cell cannot qualify again.
			g.SetAt(nx, ny, fill)
			queue = append(queue, geom.Point{X: nx, Y: ny})
		}
	}
}
