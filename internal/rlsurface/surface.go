// Package rlsurface draws through raylib and polls raylib input. It is the
// only package that talks to the window.
package rlsurface

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/render"
	"github.com/ha1tch/shapedraw/internal/shape"
)

// Surface is a render.Surface over the current raylib frame. Calls are only
// valid between rl.BeginDrawing and rl.EndDrawing.
type Surface struct {
	blocks map[blockKey]*pixelBlock
}

var _ render.Surface = (*Surface)(nil)

type blockKey struct {
	x, y  int32
	width int
}

// pixelBlock caches a texture for Pixels so an unchanged block is not
// re-uploaded every frame.
type pixelBlock struct {
	tex  rl.Texture2D
	last []shape.RGB
	buf  []rl.Color
}

func New() *Surface {
	return &Surface{blocks: make(map[blockKey]*pixelBlock)}
}

// Close unloads cached textures. Call it before rl.CloseWindow.
func (s *Surface) Close() {
	for k, b := range s.blocks {
		rl.UnloadTexture(b.tex)
		delete(s.blocks, k)
	}
}

func col(c shape.RGB) rl.Color { return rl.Color{R: c.R, G: c.G, B: c.B, A: 255} }

func vec(p geom.Point) rl.Vector2 { return rl.Vector2{X: float32(p.X), Y: float32(p.Y)} }

func (s *Surface) Clear(c shape.RGB) { rl.ClearBackground(col(c)) }

// FillPolygon fills a convex polygon as a triangle fan. Each triangle is
// drawn in both windings since raylib culls clockwise ones.
func (s *Surface) FillPolygon(pts []geom.Point, c shape.RGB) {
	if len(pts) < 3 {
		return
	}
	a := vec(pts[0])
	for i := 1; i+1 < len(pts); i++ {
		b, d := vec(pts[i]), vec(pts[i+1])
		rl.DrawTriangle(a, b, d, col(c))
		rl.DrawTriangle(a, d, b, col(c))
	}
}

func (s *Surface) StrokePolygon(pts []geom.Point, c shape.RGB, width float64) {
	for i := range pts {
		a, b := vec(pts[i]), vec(pts[(i+1)%len(pts)])
		rl.DrawLineEx(a, b, float32(width), col(c))
		rl.DrawCircleV(a, float32(width)/2, col(c))
	}
}

func (s *Surface) FillEllipse(center geom.Point, rx, ry float64, c shape.RGB) {
	rl.DrawEllipse(int32(center.X), int32(center.Y), float32(rx), float32(ry), col(c))
}

// StrokeEllipse draws width concentric one-pixel rings centered on the
// ellipse outline; raylib has no thick ellipse outline.
func (s *Surface) StrokeEllipse(center geom.Point, rx, ry float64, c shape.RGB, width float64) {
	n := max(int(width), 1)
	for i := range n {
		off := float64(i) - float64(n-1)/2
		rl.DrawEllipseLines(int32(center.X), int32(center.Y), float32(rx+off), float32(ry+off), col(c))
	}
}

func (s *Surface) FillCircle(center geom.Point, r float64, c shape.RGB) {
	rl.DrawCircleV(vec(center), float32(r), col(c))
}

func (s *Surface) StrokeCircle(center geom.Point, r float64, c shape.RGB, width float64) {
	half := float32(width) / 2
	rl.DrawRing(vec(center), float32(r)-half, float32(r)+half, 0, 360, 48, col(c))
}

func (s *Surface) Line(a, b geom.Point, c shape.RGB, width float64) {
	rl.DrawLineEx(vec(a), vec(b), float32(width), col(c))
}

func rect(r geom.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.Min.X), Y: float32(r.Min.Y), Width: float32(r.Width()), Height: float32(r.Height())}
}

func (s *Surface) FillRect(r geom.Rect, c shape.RGB) { rl.DrawRectangleRec(rect(r), col(c)) }

func (s *Surface) StrokeRect(r geom.Rect, c shape.RGB, width float64) {
	rl.DrawRectangleLinesEx(rect(r), float32(width), col(c))
}

func (s *Surface) Pixels(origin geom.Point, width int, pix []shape.RGB) {
	if width <= 0 || len(pix) < width {
		return
	}
	height := len(pix) / width
	key := blockKey{x: int32(origin.X), y: int32(origin.Y), width: width}
	b := s.blocks[key]
	if b == nil || len(b.last) != len(pix) {
		if b != nil {
			rl.UnloadTexture(b.tex)
		}
		img := rl.GenImageColor(width, height, rl.Blank)
		b = &pixelBlock{tex: rl.LoadTextureFromImage(img), buf: make([]rl.Color, width*height)}
		rl.UnloadImage(img)
		s.blocks[key] = b
	}
	if !slices.Equal(b.last, pix) {
		for i, p := range pix[:width*height] {
			b.buf[i] = col(p)
		}
		rl.UpdateTexture(b.tex, b.buf)
		b.last = append(b.last[:0], pix...)
	}
	rl.DrawTexture(b.tex, key.x, key.y, rl.White)
}

func (s *Surface) Text(text string, at geom.Point, size int, c shape.RGB) {
	rl.DrawText(text, int32(at.X), int32(at.Y), int32(size), col(c))
}
