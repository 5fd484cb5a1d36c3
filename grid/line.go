package grid

import (
	"math"

	"github.com/katalvlaran/tilemap/geom"
)

// DrawLine walks the straight segment from p1 to p2, invoking visit at
// each rasterized point in order from p1 to p2. The walk is an
// incremental DDA: with dx = |p2.X-p1.X| and dy = |p2.Y-p1.Y| it takes
// max(dx, dy) steps, advancing by the signed per-step deltas and
// rounding the running position at each of the max(dx, dy)+1 visits.
// When p1 == p2 the visitor is invoked exactly once.
//
// The rasterizer performs no bounds checking; a visitor that writes
// cells must guard coordinates itself (Set does so for free).
// Complexity: O(max(dx, dy)).
func DrawLine[T any](g Grid[T], p1, p2 geom.Point, visit Visitor[T]) {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)

	steps := max(dx, dy)
	if steps == 0 {
		visit(g, p1.X, p1.Y)
		return
	}

	stepX := float64(p2.X-p1.X) / float64(steps)
	stepY := float64(p2.Y-p1.Y) / float64(steps)

	curX, curY := float64(p1.X), float64(p1.Y)
	for i := 0; i <= steps; i++ {
		visit(g, int(math.Round(curX)), int(math.Round(curY)))
		curX += stepX
		curY += stepY
	}
}

// abs returns the absolute value of n.
func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
