package grid

import (
	"github.com/katalvlaran/tilemap/geom"
)

// ExtractChunk resets dst to srcArea's dimensions and copies the part
// of src that srcArea covers into dst's top-left corner. The source
// rectangle is first clipped against src's bounds, so where srcArea
// extends past src the corresponding dst cells keep their post-reset
// zero value. Passing srcArea anchored at (0, 0) with new target
// dimensions therefore doubles as a resize-with-padding operation.
//
// dst must not share storage with src: Reset reallocates dst before the
// copy. Complexity: O(W×H) of srcArea.
func ExtractChunk[T any](dst Resizable[T], src Grid[T], srcArea geom.Rect) {
	var zero T
	dst.Reset(srcArea.Width, srcArea.Height, zero)

	clip := srcArea.Intersection(geom.RectOf(0, 0, src.Width(), src.Height()))
	for y := 0; y < clip.Height; y++ {
		for x := 0; x < clip.Width; x++ {
			dst.SetAt(x, y, src.At(clip.X+x, clip.Y+y))
		}
	}
}

// InsertChunk copies the srcArea rectangle of src into dst with its
// top-left corner at (x, y). The zero Rect selects the whole of src.
// The source rectangle is clipped against src's bounds and the
// resulting placement clipped again against dst's bounds; only the
// doubly-clipped overlap is copied, so out-of-range destination writes
// are dropped and dst is never resized.
// Complexity: O(W×H) of the copied overlap.
func InsertChunk[T any](dst, src Grid[T], x, y int, srcArea geom.Rect) {
	if srcArea == (geom.Rect{}) {
		srcArea = geom.RectOf(0, 0, src.Width(), src.Height())
	}

	srcClip := srcArea.Intersection(geom.RectOf(0, 0, src.Width(), src.Height()))
	dstClip := geom.RectOf(x, y, srcClip.Width, srcClip.Height).
		Intersection(geom.RectOf(0, 0, dst.Width(), dst.Height()))

	// The destination clip may trim the top/left of the placement; the
	// source must advance by the same amount to stay cell-aligned.
	ox, oy := dstClip.X-x, dstClip.Y-y

	for dy := 0; dy < dstClip.Height; dy++ {
		for dx := 0; dx < dstClip.Width; dx++ {
			dst.SetAt(dstClip.X+dx, dstClip.Y+dy, src.At(srcClip.X+ox+dx, srcClip.Y+oy+dy))
		}
	}
}
