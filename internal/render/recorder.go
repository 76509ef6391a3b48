package render

import (
	"fmt"

	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/shape"
)

// Op is one recorded drawing call.
type Op struct {
	Name   string
	Points []geom.Point
	Color  shape.RGB
	Width  float64
	Text   string
}

func (o Op) String() string {
	return fmt.Sprintf("%s %v %s w=%v %q", o.Name, o.Points, o.Color.Hex(), o.Width, o.Text)
}

// Recorder is a Surface that records calls instead of drawing. It backs
// tests and headless draw-order checks.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) add(op Op) { r.Ops = append(r.Ops, op) }

// Named returns the recorded ops with the given name.
func (r *Recorder) Named(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) Clear(c shape.RGB) { r.add(Op{Name: "clear", Color: c}) }

func (r *Recorder) FillPolygon(pts []geom.Point, c shape.RGB) {
	r.add(Op{Name: "fill_polygon", Points: clonePts(pts), Color: c})
}

func (r *Recorder) StrokePolygon(pts []geom.Point, c shape.RGB, width float64) {
	r.add(Op{Name: "stroke_polygon", Points: clonePts(pts), Color: c, Width: width})
}

func (r *Recorder) FillEllipse(center geom.Point, rx, ry float64, c shape.RGB) {
	r.add(Op{Name: "fill_ellipse", Points: []geom.Point{center, {X: rx, Y: ry}}, Color: c})
}

func (r *Recorder) StrokeEllipse(center geom.Point, rx, ry float64, c shape.RGB, width float64) {
	r.add(Op{Name: "stroke_ellipse", Points: []geom.Point{center, {X: rx, Y: ry}}, Color: c, Width: width})
}

func (r *Recorder) FillCircle(center geom.Point, radius float64, c shape.RGB) {
	r.add(Op{Name: "fill_circle", Points: []geom.Point{center}, Color: c, Width: radius})
}

func (r *Recorder) StrokeCircle(center geom.Point, radius float64, c shape.RGB, width float64) {
	r.add(Op{Name: "stroke_circle", Points: []geom.Point{center, {X: radius}}, Color: c, Width: width})
}

func (r *Recorder) Line(a, b geom.Point, c shape.RGB, width float64) {
	r.add(Op{Name: "line", Points: []geom.Point{a, b}, Color: c, Width: width})
}

func (r *Recorder) FillRect(rect geom.Rect, c shape.RGB) {
	r.add(Op{Name: "fill_rect", Points: []geom.Point{rect.Min, rect.Max}, Color: c})
}

func (r *Recorder) StrokeRect(rect geom.Rect, c shape.RGB, width float64) {
	r.add(Op{Name: "stroke_rect", Points: []geom.Point{rect.Min, rect.Max}, Color: c, Width: width})
}

func (r *Recorder) Pixels(origin geom.Point, width int, pix []shape.RGB) {
	r.add(Op{Name: "pixels", Points: []geom.Point{origin}, Width: float64(width), Text: fmt.Sprint(len(pix))})
}

func (r *Recorder) Text(s string, at geom.Point, size int, c shape.RGB) {
	r.add(Op{Name: "text", Points: []geom.Point{at}, Color: c, Width: float64(size), Text: s})
}

func clonePts(pts []geom.Point) []geom.Point {
	return append([]geom.Point(nil), pts...)
}
