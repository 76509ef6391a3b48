// Package render draws the scene onto a Surface. It never rasterizes
// anything itself; a Surface is backed by raylib in the window and by gg
// for offscreen snapshots.
package render

import (
	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/shape"
)

// Surface is the set of drawing primitives the editor needs.
type Surface interface {
	Clear(c shape.RGB)
	FillPolygon(pts []geom.Point, c shape.RGB)
	StrokePolygon(pts []geom.Point, c shape.RGB, width float64)
	FillEllipse(center geom.Point, rx, ry float64, c shape.RGB)
	StrokeEllipse(center geom.Point, rx, ry float64, c shape.RGB, width float64)
	FillCircle(center geom.Point, r float64, c shape.RGB)
	StrokeCircle(center geom.Point, r float64, c shape.RGB, width float64)
	Line(a, b geom.Point, c shape.RGB, width float64)
	FillRect(r geom.Rect, c shape.RGB)
	StrokeRect(r geom.Rect, c shape.RGB, width float64)
	// Pixels draws a row-major block of colors, width pixels per row, with
	// its top-left corner at origin.
	Pixels(origin geom.Point, width int, pix []shape.RGB)
	Text(s string, at geom.Point, size int, c shape.RGB)
}

// Marker colors and sizes used for construction feedback.
var (
	MarkerColor  = shape.Red
	MarkerRadius = 5.0
	GridColor    = shape.RGB{R: 225, G: 225, B: 225}
)

// Scene clears s to canvas and draws shapes in order, so later shapes
// end up on top.
func Scene(s Surface, canvas shape.RGB, shapes []shape.Shape) {
	s.Clear(canvas)
	for _, sh := range shapes {
		Shape(s, sh)
	}
}

// Shape draws a single shape: fill first, then the outline if visible.
func Shape(s Surface, sh shape.Shape) {
	st := sh.Style
	width := float64(st.Width)
	switch sh.Kind {
	case shape.Triangle, shape.Rectangle:
		pts := sh.Points()
		if st.HasFill {
			s.FillPolygon(pts, st.Fill)
		}
		if st.Outlined() {
			s.StrokePolygon(pts, st.Stroke, width)
		}
	case shape.Circle:
		b := sh.Bounds()
		c, rx, ry := b.Center(), b.Width()/2, b.Height()/2
		if st.HasFill {
			s.FillEllipse(c, rx, ry, st.Fill)
		}
		if st.Outlined() {
			s.StrokeEllipse(c, rx, ry, st.Stroke, width)
		}
	}
}

// Grid draws the background grid lines across r.
func Grid(s Surface, r geom.Rect, xs, ys []float64) {
	for _, x := range xs {
		s.Line(geom.Pt(x, r.Min.Y), geom.Pt(x, r.Max.Y), GridColor, 1)
	}
	for _, y := range ys {
		s.Line(geom.Pt(r.Min.X, y), geom.Pt(r.Max.X, y), GridColor, 1)
	}
}

// Markers draws the pending construction clicks.
func Markers(s Surface, pts []geom.Point) {
	for _, p := range pts {
		s.FillCircle(p, MarkerRadius, MarkerColor)
	}
}

// Cursor draws the brush ring that follows the pointer, sized by the
// stroke width.
func Cursor(s Surface, at geom.Point, c shape.RGB, width int) {
	s.StrokeCircle(at, float64(max(width, 1)), c, 1)
}
