// Package geom holds the canvas-space point and rectangle types and the
// affine helpers the editor bakes into shape coordinates.
package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Point is a position on the canvas, in screen pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Near reports whether p and q differ by at most eps on both axes.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min, Max Point
}

// RectXYWH builds a Rect from an origin and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Bounds returns the axis-aligned bounding box of pts.
// An empty slice yields the zero Rect.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// PanMatrix returns the translation by d.
func PanMatrix(d Point) gg.Matrix {
	return gg.Translate(d.X, d.Y)
}

// ZoomMatrix returns the uniform scale by s about pivot:
// p -> pivot + (p - pivot) * s.
func ZoomMatrix(pivot Point, s float64) gg.Matrix {
	return gg.Translate(pivot.X, pivot.Y).
		Multiply(gg.Scale(s, s)).
		Multiply(gg.Translate(-pivot.X, -pivot.Y))
}

// Transform maps a single point through m.
func Transform(m gg.Matrix, p Point) Point {
	q := m.TransformPoint(gg.Pt(p.X, p.Y))
	return Point{X: q.X, Y: q.Y}
}

// Apply maps every point of pts through m in place.
func Apply(m gg.Matrix, pts []Point) {
	for i, p := range pts {
		pts[i] = Transform(m, p)
	}
}
