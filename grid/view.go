package grid

// View provides 2-D access to a contiguous buffer owned by the caller,
// typically large 1-D image data, without copying it into an owning
// container. The zero View is an empty 0×0 grid.
//
// A View never frees or grows its buffer: the caller guarantees
// len(cells) ≥ width×height and must keep the slice alive for as long
// as the View is used. Mutations through the View are visible in the
// original slice and vice versa.
type View[T any] struct {
	cells []T
	w, h  int
}

// NewView wraps cells as a width×height grid. Negative dimensions are
// clamped to zero. The slice is aliased, not copied.
// Complexity: O(1) time and memory.
func NewView[T any](cells []T, width, height int) *View[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return &View[T]{cells: cells, w: width, h: height}
}

// Width returns the number of columns. Complexity: O(1).
func (v *View[T]) Width() int { return v.w }

// Height returns the number of rows. Complexity: O(1).
func (v *View[T]) Height() int { return v.h }

// At returns the cell at (x, y) without bounds checking.
func (v *View[T]) At(x, y int) T { return v.cells[x+v.w*y] }

// SetAt writes the cell at (x, y) without bounds checking.
func (v *View[T]) SetAt(x, y int, val T) { v.cells[x+v.w*y] = val }

// Data returns the backing slice the View was constructed over.
func (v *View[T]) Data() []T { return v.cells }
