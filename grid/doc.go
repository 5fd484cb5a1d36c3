// Package grid treats a contiguous 1-D buffer as a 2-D grid of cells,
// enabling bounds-checked access, geometric transforms, region transfer,
// line rasterization, and flood fill over any cell type.
//
// What:
//
//   - Grid[T] is the capability contract: dimensions plus unchecked cell
//     access. Resizable[T] adds Reset for implementations that own storage.
//   - View[T] wraps caller-owned memory without copying it.
//   - Dense[T] owns and can resize its storage.
//   - Get/Set layer bounds checking on any Grid; Flip mirrors in place.
//   - ExtractChunk/InsertChunk move clipped sub-rectangles between grids.
//   - Rot90 rotates a grid 90° into a freshly resized destination.
//   - DrawLine walks a rasterized segment, invoking a visitor per cell.
//   - FillArea grows a region breadth-first from a seed, bounded by a
//     caller-supplied predicate.
//
// Why:
//
//   - Image processing: address raw pixel data 2-dimensionally in place.
//   - Game maps: stamp chunks, rotate tiles, fill contiguous regions.
//   - Grid logic: one algorithm set over both borrowed and owned storage.
//
// Complexity:
//
//   - Get/Set/At/SetAt: O(1).
//   - Flip, Rot90, ExtractChunk, InsertChunk: O(W×H) of the area touched.
//   - DrawLine: O(max(|dx|, |dy|)).
//   - FillArea: O(W×H), Memory: O(W×H) worst case for the queue.
//
// Errors:
//
//   - None. The package signals no errors anywhere: out-of-bounds checked
//     reads return the zero value, out-of-bounds checked writes and
//     out-of-bounds fill seeds are no-ops, and region transfers clip
//     silently to the valid overlap. Unchecked access (At/SetAt) is a
//     caller contract: coordinates must already be in bounds.
//
// Concurrency:
//
//   - None. Operations run synchronously on the caller's goroutine with
//     no internal locking. A View aliases its backing slice; the caller
//     must not mutate that slice concurrently with an operation.
package grid
