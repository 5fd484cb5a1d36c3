package grid

// Dense is an owning grid backed by a flat row-major slice whose
// lifetime matches the grid instance. It satisfies Resizable and is the
// usual destination for ExtractChunk and Rot90. The zero Dense is an
// empty 0×0 grid.
type Dense[T any] struct {
	cells []T
	w, h  int
}

// NewDense allocates a width×height grid with every cell set to fill.
// Negative dimensions are clamped to zero.
// Complexity: O(W×H) time and memory.
func NewDense[T any](width, height int, fill T) *Dense[T] {
	d := &Dense[T]{}
	d.Reset(width, height, fill)

	return d
}

// DenseOf builds a width×height grid from a row-major literal sequence.
// Excess values are ignored; missing values are left as the zero value.
// Complexity: O(W×H) time and memory.
func DenseOf[T any](width, height int, cells ...T) *Dense[T] {
	var zero T
	d := NewDense(width, height, zero)
	copy(d.cells, cells)

	return d
}

// DenseFromGrid copies the contents of any grid, View or Dense alike,
// into freshly owned storage of the same dimensions.
// Complexity: O(W×H) time and memory.
func DenseFromGrid[T any](src Grid[T]) *Dense[T] {
	var zero T
	d := NewDense(src.Width(), src.Height(), zero)
	for y := 0; y < d.h; y++ {
		for x := 0; x < d.w; x++ {
			d.cells[x+d.w*y] = src.At(x, y)
		}
	}

	return d
}

// Width returns the number of columns. Complexity: O(1).
func (d *Dense[T]) Width() int { return d.w }

// Height returns the number of rows. Complexity: O(1).
func (d *Dense[T]) Height() int { return d.h }

// At returns the cell at (x, y) without bounds checking.
func (d *Dense[T]) At(x, y int) T { return d.cells[x+d.w*y] }

// SetAt writes the cell at (x, y) without bounds checking.
func (d *Dense[T]) SetAt(x, y int, val T) { d.cells[x+d.w*y] = val }

// Reset discards the current content and reallocates width×height
// cells, every one set to padding. Negative dimensions are clamped to
// zero. Slices previously returned by Data are invalidated.
// Complexity: O(W×H) time and memory.
func (d *Dense[T]) Reset(width, height int, padding T) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	d.w, d.h = width, height
	d.cells = make([]T, width*height)
	for i := range d.cells {
		d.cells[i] = padding
	}
}

// Data returns the backing slice in row-major order. The slice is
// invalidated by the next Reset.
func (d *Dense[T]) Data() []T { return d.cells }
