// Package view applies pan and zoom to the scene.
//
// There is no standing view matrix: every operation is baked straight into
// shape coordinates and into the grid origin, in the same call, so the two
// never drift apart.
package view

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/ha1tch/shapedraw/internal/geom"
)

// Direction is a zoom step direction.
type Direction int

const (
	In  Direction = 1
	Out Direction = -1
)

// MinZoom is the lowest zoom level.
const MinZoom = 1

// DefaultGridSpacing is the grid spacing at zoom level 1.
const DefaultGridSpacing = 25.0

// Target is what the engine rewrites alongside the grid origin.
type Target interface {
	Transform(m gg.Matrix)
}

// Engine owns the zoom level and the grid origin.
type Engine struct {
	zoom  int
	grid  geom.Point
	pivot geom.Point
}

// New returns an engine at zoom level 1 with the grid origin at (0,0),
// zooming about pivot.
func New(pivot geom.Point) *Engine {
	return &Engine{zoom: MinZoom, pivot: pivot}
}

// Restore returns an engine with a saved zoom level and grid origin.
// Levels below MinZoom are clamped.
func Restore(pivot geom.Point, zoom int, grid geom.Point) *Engine {
	return &Engine{zoom: max(zoom, MinZoom), grid: grid, pivot: pivot}
}

// Zoom returns the current zoom level.
func (e *Engine) Zoom() int { return e.zoom }

// GridOrigin returns the current grid-origin offset.
func (e *Engine) GridOrigin() geom.Point { return e.grid }

// Pivot returns the point zoom operations scale about.
func (e *Engine) Pivot() geom.Point { return e.pivot }

// SetPivot moves the zoom pivot, e.g. after a window resize.
func (e *Engine) SetPivot(p geom.Point) { e.pivot = p }

// Pan translates t and the grid origin by d.
func (e *Engine) Pan(t Target, d geom.Point) {
	if d.X == 0 && d.Y == 0 {
		return
	}
	e.apply(t, geom.PanMatrix(d))
}

// Step changes the zoom level by one in dir and rescales t and the grid
// origin about the pivot by new/old. It returns the scale ratio applied;
// 1 means nothing changed.
func (e *Engine) Step(t Target, dir Direction) float64 {
	next := e.zoom
	switch {
	case dir > 0:
		next++
	case dir < 0:
		next--
	}
	return e.SetZoom(t, next)
}

// SetZoom moves to the given zoom level (clamped to MinZoom) and rescales
// t and the grid origin about the pivot. It returns the scale ratio applied.
func (e *Engine) SetZoom(t Target, level int) float64 {
	level = max(level, MinZoom)
	if level == e.zoom {
		return 1
	}
	s := float64(level) / float64(e.zoom)
	e.zoom = level
	e.apply(t, geom.ZoomMatrix(e.pivot, s))
	return s
}

func (e *Engine) apply(t Target, m gg.Matrix) {
	if t != nil {
		t.Transform(m)
	}
	e.grid = geom.Transform(m, e.grid)
}

// GridSpacing is the distance between grid lines at the current zoom.
func (e *Engine) GridSpacing(base float64) float64 {
	return base * float64(e.zoom)
}

// GridLines returns the x positions of vertical lines and the y positions
// of horizontal lines of a grid aligned to the grid origin that cover r.
func (e *Engine) GridLines(r geom.Rect, base float64) (xs, ys []float64) {
	step := e.GridSpacing(base)
	if step <= 0 {
		return nil, nil
	}
	return lines(e.grid.X, step, r.Min.X, r.Max.X), lines(e.grid.Y, step, r.Min.Y, r.Max.Y)
}

func lines(origin, step, lo, hi float64) []float64 {
	first := origin + math.Ceil((lo-origin)/step)*step
	var out []float64
	for v := first; v < hi; v += step {
		out = append(out, v)
	}
	return out
}
