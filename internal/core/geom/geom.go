// Package geom holds the small amount of 2D geometry the game needs:
// world-space points, grid coordinates and axis-aligned boxes.
package geom

import "math"

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Coord represents a tile coordinate
type Coord struct {
	X, Y int
}

// ToWorld returns the top-left corner of the cell in world units.
func (c Coord) ToWorld(tileSize float64) Point {
	return Point{X: float64(c.X) * tileSize, Y: float64(c.Y) * tileSize}
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	Min  Point
	W, H float64
}

// Square returns a size x size box anchored at p.
func Square(p Point, size float64) Rect {
	return Rect{Min: p, W: size, H: size}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.W, Y: r.Min.Y + r.H}
}

// Overlaps reports whether the interiors of r and o intersect.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return r.Min.X < oMax.X && rMax.X > o.Min.X &&
		r.Min.Y < oMax.Y && rMax.Y > o.Min.Y
}

// Snap rounds p to the nearest multiple of size on both axes.
func Snap(p Point, size float64) Point {
	return Point{X: math.Round(p.X/size) * size, Y: math.Round(p.Y/size) * size}
}
