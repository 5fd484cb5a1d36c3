package grid_test

import (
	"fmt"

	"github.com/katalvlaran/tilemap/geom"
	"github.com/katalvlaran/tilemap/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FillArea
////////////////////////////////////////////////////////////////////////////////

// ExampleFillArea flood-fills raw ARGB pixel data in place, through a
// zero-copy View, without ever decoding it into an image type.
// Scenario:
//
//   - A 4×3 buffer of 0xAARRGGBB pixels; alpha 0x00 means transparent.
//   - An opaque red column walls off the rightmost pixels.
//   - Fill from (0,0) with rule "pixel is transparent" and an opaque
//     black fill: everything left of the wall turns black, the far side
//     keeps its transparency.
func ExampleFillArea() {
	const (
		clear = 0x00000000
		red   = 0xffff0000
		black = 0xff000000
	)
	pixels := []uint32{
		clear, clear, red, clear,
		clear, clear, red, clear,
		clear, clear, red, clear,
	}
	v := grid.NewView(pixels, 4, 3)

	grid.FillArea[uint32](v, geom.Pt(0, 0),
		func(c uint32) bool { return c&0xff000000 == 0 },
		black,
	)

	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			if x > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%08x", v.At(x, y))
		}
		fmt.Println()
	}

	// Output:
	// ff000000 ff000000 ffff0000 00000000
	// ff000000 ff000000 ffff0000 00000000
	// ff000000 ff000000 ffff0000 00000000
}

////////////////////////////////////////////////////////////////////////////////
// Example: DrawLine
////////////////////////////////////////////////////////////////////////////////

// ExampleDrawLine rasterizes a shallow segment onto a character grid,
// writing through the bounds-checked Set so the visitor needs no guard
// of its own.
func ExampleDrawLine() {
	canvas := grid.NewDense(6, 3, byte('.'))

	grid.DrawLine[byte](canvas, geom.Pt(0, 0), geom.Pt(5, 2),
		func(g grid.Grid[byte], x, y int) { grid.Set(g, x, y, '*') })

	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			fmt.Print(string(canvas.At(x, y)))
		}
		fmt.Println()
	}

	// Output:
	// **....
	// ..**..
	// ....**
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExtractChunk
////////////////////////////////////////////////////////////////////////////////

// ExampleExtractChunk copies a partially out-of-range chunk of a map:
// the transfer clips itself against the source and pads the rest.
func ExampleExtractChunk() {
	world := grid.DenseOf(4, 4,
		1, 1, 1, 1,
		1, 2, 2, 1,
		1, 2, 3, 1,
		1, 1, 1, 1,
	)

	chunk := &grid.Dense[int]{}
	grid.ExtractChunk[int](chunk, world, geom.RectOf(2, 2, 3, 3))

	for y := 0; y < chunk.Height(); y++ {
		for x := 0; x < chunk.Width(); x++ {
			if x > 0 {
				fmt.Print(" ")
			}
			fmt.Print(chunk.At(x, y))
		}
		fmt.Println()
	}

	// Output:
	// 3 1 0
	// 1 1 0
	// 0 0 0
}
