// Package grid defines the capability contracts and callback signatures
// shared by all grid implementations and algorithms.
package grid

// Grid is the capability contract all grid implementations satisfy:
// fixed dimensions plus direct, unchecked cell access in row-major
// order (index = x + width*y; row 0 is the top row, column 0 the
// leftmost column).
//
// At and SetAt do not check bounds; callers must guarantee
// 0 ≤ x < Width() and 0 ≤ y < Height(), or use Get/Set instead.
// Violating the contract panics or addresses the wrong cell.
type Grid[T any] interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// At returns the cell at (x, y) without bounds checking.
	At(x, y int) T
	// SetAt writes the cell at (x, y) without bounds checking.
	SetAt(x, y int, v T)
}

// Resizable is a Grid whose storage can be discarded and reallocated.
// Only owning implementations satisfy it; a View does not.
type Resizable[T any] interface {
	Grid[T]

	// Reset discards the current content, reallocates width×height
	// cells, and fills every cell with padding. Any slice previously
	// obtained from the grid's storage is invalidated.
	Reset(width, height int, padding T)
}

// Visitor is invoked by DrawLine once per rasterized point. The grid is
// passed through so the visitor can read or write cells directly; the
// rasterizer itself performs no bounds checking, so a visitor that
// mutates via At/SetAt must guard out-of-range coordinates itself.
type Visitor[T any] func(g Grid[T], x, y int)

// Rule decides whether a cell value qualifies for flood filling.
type Rule[T any] func(v T) bool
