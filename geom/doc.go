// Package geom provides the integer geometry primitives shared by all
// grid operations: coordinates, rectangles, and rectangle clipping.
//
// What:
//
//   - Point is an (x, y) pair addressing a single grid cell.
//   - Rect is an axis-aligned area anchored at its top-left corner.
//   - Intersects reports strict overlap; touching edges do not count.
//   - Intersection computes the overlapping sub-rectangle, used as the
//     clip step of every region transfer in the grid package.
//
// Why:
//
//   - Region transfer: clip a requested chunk against buffer bounds.
//   - Hit testing: decide whether two areas of a map share cells.
//   - Rasterization: anchor line endpoints on the grid.
//
// Complexity:
//
//   - All operations: O(1) time, O(1) memory.
//
// Errors:
//
//   - None. A Rect with zero width or height is empty and intersects
//     nothing; degenerate inputs yield the zero Rect, never an error.
package geom
