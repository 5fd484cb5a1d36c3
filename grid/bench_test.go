package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilemap/geom"
	"github.com/katalvlaran/tilemap/grid"
)

// BenchmarkFillArea measures flood-filling an entire 512×512 grid from
// a corner seed. The grid is re-zeroed outside the timer each round.
// Complexity: O(W×H)
func BenchmarkFillArea(b *testing.B) {
	const n = 512
	d := grid.NewDense(n, n, 0)
	rule := func(v int) bool { return v == 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		d.Reset(n, n, 0)
		b.StartTimer()
		grid.FillArea[int](d, geom.Pt(0, 0), rule, 9)
	}
}

// BenchmarkRot90 measures rotating a 1024×1024 grid of random bytes
// into a reused destination.
// Complexity: O(W×H)
func BenchmarkRot90(b *testing.B) {
	const n = 1024
	rng := rand.New(rand.NewSource(42))
	cells := make([]byte, n*n)
	rng.Read(cells)
	src := grid.NewView(cells, n, n)
	dst := &grid.Dense[byte]{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grid.Rot90[byte](dst, src, i%2 == 0)
	}
}

// BenchmarkInsertChunk measures stamping a 64×64 chunk into the center
// of a 1024×1024 destination.
// Complexity: O(64×64)
func BenchmarkInsertChunk(b *testing.B) {
	dst := grid.NewDense(1024, 1024, 0)
	src := grid.NewDense(64, 64, 7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grid.InsertChunk[int](dst, src, 480, 480, geom.Rect{})
	}
}

// BenchmarkDrawLine measures walking a full-diagonal segment across a
// 1024×1024 grid with a checked-write visitor.
// Complexity: O(max(dx, dy))
func BenchmarkDrawLine(b *testing.B) {
	const n = 1024
	d := grid.NewDense(n, n, byte(0))
	visit := func(g grid.Grid[byte], x, y int) { grid.Set(g, x, y, 1) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grid.DrawLine[byte](d, geom.Pt(0, 0), geom.Pt(n-1, n-1), visit)
	}
}
