// Package raster renders the scene offscreen with gg's software
// rasterizer, for PNG snapshots and the headless CLI.
package raster

import (
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/render"
	"github.com/ha1tch/shapedraw/internal/shape"
)

// Surface is a render.Surface drawing into an in-memory gg context.
// Text is not rendered offscreen.
type Surface struct {
	dc  *gg.Context
	log *slog.Logger
}

var _ render.Surface = (*Surface)(nil)

// New returns a width x height offscreen surface.
func New(width, height int, log *slog.Logger) *Surface {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Surface{dc: gg.NewContext(max(width, 1), max(height, 1)), log: log}
}

// Close releases the gg context.
func (s *Surface) Close() error { return s.dc.Close() }

// EncodePNG writes the rendered image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

func toGG(c shape.RGB) gg.RGBA {
	return gg.RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

func (s *Surface) Clear(c shape.RGB) { s.dc.ClearWithColor(toGG(c)) }

func (s *Surface) path(pts []geom.Point) bool {
	if len(pts) < 2 {
		return false
	}
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	return true
}

func (s *Surface) fill(c shape.RGB) {
	s.dc.SetColor(c.Color())
	if err := s.dc.Fill(); err != nil {
		s.log.Warn("raster fill failed", "error", err)
	}
}

func (s *Surface) stroke(c shape.RGB, width float64) {
	s.dc.SetColor(c.Color())
	s.dc.SetLineWidth(width)
	if err := s.dc.Stroke(); err != nil {
		s.log.Warn("raster stroke failed", "error", err)
	}
}

func (s *Surface) FillPolygon(pts []geom.Point, c shape.RGB) {
	if s.path(pts) {
		s.fill(c)
	}
}

func (s *Surface) StrokePolygon(pts []geom.Point, c shape.RGB, width float64) {
	if s.path(pts) {
		s.stroke(c, width)
	}
}

func (s *Surface) FillEllipse(center geom.Point, rx, ry float64, c shape.RGB) {
	s.dc.DrawEllipse(center.X, center.Y, rx, ry)
	s.fill(c)
}

func (s *Surface) StrokeEllipse(center geom.Point, rx, ry float64, c shape.RGB, width float64) {
	s.dc.DrawEllipse(center.X, center.Y, rx, ry)
	s.stroke(c, width)
}

func (s *Surface) FillCircle(center geom.Point, r float64, c shape.RGB) {
	s.dc.DrawCircle(center.X, center.Y, r)
	s.fill(c)
}

func (s *Surface) StrokeCircle(center geom.Point, r float64, c shape.RGB, width float64) {
	s.dc.DrawCircle(center.X, center.Y, r)
	s.stroke(c, width)
}

func (s *Surface) Line(a, b geom.Point, c shape.RGB, width float64) {
	s.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	s.stroke(c, width)
}

func (s *Surface) FillRect(r geom.Rect, c shape.RGB) {
	s.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	s.fill(c)
}

func (s *Surface) StrokeRect(r geom.Rect, c shape.RGB, width float64) {
	s.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	s.stroke(c, width)
}

func (s *Surface) Pixels(origin geom.Point, width int, pix []shape.RGB) {
	if width <= 0 {
		return
	}
	for i, c := range pix {
		x, y := origin.X+float64(i%width), origin.Y+float64(i/width)
		s.FillRect(geom.RectXYWH(x, y, 1, 1), c)
	}
}

func (s *Surface) Text(string, geom.Point, int, shape.RGB) {}

// Snapshot renders shapes over canvas into a width x height PNG.
func Snapshot(w io.Writer, width, height int, canvas shape.RGB, shapes []shape.Shape, log *slog.Logger) error {
	s := New(width, height, log)
	defer s.Close()
	render.Scene(s, canvas, shapes)
	return s.EncodePNG(w)
}
