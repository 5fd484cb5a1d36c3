package grid

// InBounds reports whether (x, y) lies within g's boundaries.
// Complexity: O(1).
func InBounds[T any](g Grid[T], x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// Get returns the cell at (x, y), or the zero value of T when the
// coordinates are out of bounds. No error is signaled.
// Complexity: O(1).
func Get[T any](g Grid[T], x, y int) T {
	if !InBounds(g, x, y) {
		var zero T
		return zero
	}

	return g.At(x, y)
}

// Set writes v to the cell at (x, y). Out-of-bounds writes are silently
// ignored. Complexity: O(1).
func Set[T any](g Grid[T], x, y int, v T) {
	if InBounds(g, x, y) {
		g.SetAt(x, y, v)
	}
}

// Flip mirrors g in place. A horizontal flip swaps column x with column
// width-1-x across all rows; a vertical flip swaps row y with row
// height-1-y across all columns. With both flags set the passes run
// horizontal first, then vertical, which equals a 180° rotation (two
// same-direction Rot90 calls). The middle row/column of an odd
// dimension is untouched by its pass.
// Complexity: O(W×H) time, O(1) memory.
func Flip[T any](g Grid[T], horizontal, vertical bool) {
	w, h := g.Width(), g.Height()
	if horizontal {
		for x := 0; x < w/2; x++ {
			for y := 0; y < h; y++ {
				a, b := g.At(x, y), g.At(w-1-x, y)
				g.SetAt(x, y, b)
				g.SetAt(w-1-x, y, a)
			}
		}
	}
	if vertical {
		for y := 0; y < h/2; y++ {
			for x := 0; x < w; x++ {
				a, b := g.At(x, y), g.At(x, h-1-y)
				g.SetAt(x, y, b)
				g.SetAt(x, h-1-y, a)
			}
		}
	}
}
