// Package geom defines Point and Rect, the value types every grid
// operation uses to address cells and clip areas.
package geom

// Point addresses a single cell of a 2-D grid.
// X grows rightward, Y grows downward; (0,0) is the top-left cell.
// Equality is component-wise via ==.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned area of a 2-D grid, anchored at its top-left
// corner (X, Y) and extending Width cells rightward and Height cells
// downward. A Rect with Width <= 0 or Height <= 0 is empty and carries
// no area. Equality is component-wise via ==.
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectOf is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func RectOf(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
// Complexity: O(1).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
// Complexity: O(1).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle covers no cells.
// Complexity: O(1).
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether r and s overlap on both axes.
// Overlap is strict: rectangles that merely touch along an edge or at a
// corner do not intersect, and empty rectangles intersect nothing.
// Complexity: O(1).
func (r Rect) Intersects(s Rect) bool {
	return r.X < s.Right() && s.X < r.Right() &&
		r.Y < s.Bottom() && s.Y < r.Bottom()
}

// Intersection returns the overlapping sub-rectangle of r and s, or the
// zero Rect when they do not intersect. When they do, the result's
// origin is the component-wise max of the origins and its far corner the
// component-wise min of the far corners, so Width and Height are always
// positive. Complexity: O(1).
func (r Rect) Intersection(s Rect) Rect {
	if !r.Intersects(s) {
		return Rect{}
	}
	x := max(r.X, s.X)
	y := max(r.Y, s.Y)

	return Rect{
		X:      x,
		Y:      y,
		Width:  min(r.Right(), s.Right()) - x,
		Height: min(r.Bottom(), s.Bottom()) - y,
	}
}
