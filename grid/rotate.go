package grid

// Rot90 rotates src 90° into dst, which is reset to swapped dimensions
// (dst width = src height, dst height = src width). rotateLeft selects
// counterclockwise rotation, otherwise clockwise. No interpolation is
// performed; every destination cell maps to exactly one source cell.
//
// dst must be a distinct grid from src: Reset runs before the copy and
// would invalidate src's storage if the two shared a buffer. Two
// same-direction rotations equal Flip(g, true, true).
// Complexity: O(W×H) time, O(1) extra memory.
func Rot90[T any](dst Resizable[T], src Grid[T], rotateLeft bool) {
	var zero T
	dst.Reset(src.Height(), src.Width(), zero)

	w, h := dst.Width(), dst.Height()
	if rotateLeft {
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				dst.SetAt(x, y, src.At(h-y-1, x))
			}
		}
	} else {
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				dst.SetAt(x, y, src.At(y, w-x-1))
			}
		}
	}
}
