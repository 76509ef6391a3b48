package picker

import (
	"math"

	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/shape"
	"github.com/ha1tch/shapedraw/internal/style"
)

// HueBar is a horizontal strip of fully saturated, full value hues.
// It is built once and never changes.
type HueBar struct {
	width   int
	samples []shape.RGB
}

// NewHueBar samples a bar of the given width (at least 2).
func NewHueBar(width int) *HueBar {
	width = max(width, 2)
	b := &HueBar{width: width, samples: make([]shape.RGB, width)}
	for x := range b.samples {
		b.samples[x] = HSVToRGB(b.HueAt(x), 100, 100)
	}
	return b
}

// Width returns the number of samples.
func (b *HueBar) Width() int { return b.width }

// HueAt returns the hue at local offset x: x/(W-1)*360.
// Offsets outside the bar are clamped to its ends.
func (b *HueBar) HueAt(x int) float64 {
	x = min(max(x, 0), b.width-1)
	return float64(x) / float64(b.width-1) * 360
}

// Sample returns the color drawn at local offset x.
func (b *HueBar) Sample(x int) shape.RGB {
	return b.samples[min(max(x, 0), b.width-1)]
}

// Samples returns the bar's colors, one per column. Callers must not
// modify the slice.
func (b *HueBar) Samples() []shape.RGB { return b.samples }

// SVField is the square saturation/value field for one hue.
type SVField struct {
	size    int
	hue     float64
	samples []shape.RGB
}

// NewSVField builds a size x size field (size at least 2) for hue.
func NewSVField(size int, hue float64) *SVField {
	size = max(size, 2)
	f := &SVField{size: size, samples: make([]shape.RGB, size*size)}
	f.Regenerate(hue)
	return f
}

// Size returns the side length of the field.
func (f *SVField) Size() int { return f.size }

// Hue returns the hue the field was generated for.
func (f *SVField) Hue() float64 { return f.hue }

// Regenerate recomputes every sample for hue.
func (f *SVField) Regenerate(hue float64) {
	f.hue = hue
	for y := 0; y < f.size; y++ {
		for x := 0; x < f.size; x++ {
			f.samples[y*f.size+x] = f.compute(x, y)
		}
	}
}

// Samples returns the field's colors row by row. Callers must not modify
// the slice.
func (f *SVField) Samples() []shape.RGB { return f.samples }

// SV returns the saturation and value at local (x,y):
// s = x/(S-1)*100, v = 100 - y/(S-1)*100.
func (f *SVField) SV(x, y int) (s, v float64) {
	x = min(max(x, 0), f.size-1)
	y = min(max(y, 0), f.size-1)
	d := float64(f.size - 1)
	return float64(x) / d * 100, 100 - float64(y)/d*100
}

// At returns the color at local (x,y), clamped to the field.
func (f *SVField) At(x, y int) shape.RGB {
	x = min(max(x, 0), f.size-1)
	y = min(max(y, 0), f.size-1)
	return f.samples[y*f.size+x]
}

func (f *SVField) compute(x, y int) shape.RGB {
	s, v := f.SV(x, y)
	return HSVToRGB(f.hue, s, v)
}

// Hit says which part of the picker a click landed on.
type Hit int

const (
	HitNone Hit = iota
	HitHue
	HitField
)

// Layout positions the picker on screen.
type Layout struct {
	Origin    geom.Point
	BarWidth  int
	BarHeight int
	Gap       int
	FieldSize int
}

// DefaultLayout places a 180px picker at the given origin.
func DefaultLayout(origin geom.Point) Layout {
	return Layout{Origin: origin, BarWidth: 180, BarHeight: 16, Gap: 8, FieldSize: 180}
}

// BarRect returns the on-screen rectangle of the hue bar.
func (l Layout) BarRect() geom.Rect {
	return geom.RectXYWH(l.Origin.X, l.Origin.Y, float64(l.BarWidth), float64(l.BarHeight))
}

// FieldRect returns the on-screen rectangle of the saturation/value field.
func (l Layout) FieldRect() geom.Rect {
	y := l.Origin.Y + float64(l.BarHeight+l.Gap)
	return geom.RectXYWH(l.Origin.X, y, float64(l.FieldSize), float64(l.FieldSize))
}

// Bounds returns the rectangle covering the whole picker.
func (l Layout) Bounds() geom.Rect {
	bar, field := l.BarRect(), l.FieldRect()
	return geom.Rect{
		Min: bar.Min,
		Max: geom.Pt(math.Max(bar.Max.X, field.Max.X), field.Max.Y),
	}
}

// Picker ties the hue bar and the field to their screen layout.
type Picker struct {
	layout Layout
	bar    *HueBar
	field  *SVField
}

// New builds a picker for layout, starting at hue.
func New(layout Layout, hue float64) *Picker {
	return &Picker{
		layout: layout,
		bar:    NewHueBar(layout.BarWidth),
		field:  NewSVField(layout.FieldSize, hue),
	}
}

// Layout returns the picker's screen layout.
func (p *Picker) Layout() Layout { return p.layout }

// Bar returns the hue bar.
func (p *Picker) Bar() *HueBar { return p.bar }

// Field returns the saturation/value field.
func (p *Picker) Field() *SVField { return p.field }

// HitTest reports which part of the picker contains pt.
func (p *Picker) HitTest(pt geom.Point) Hit {
	switch {
	case p.layout.BarRect().Contains(pt):
		return HitHue
	case p.layout.FieldRect().Contains(pt):
		return HitField
	}
	return HitNone
}

// Click applies a click at screen point pt to ctx. A click on the hue bar
// sets ctx.Hue and regenerates the field; a click on the field assigns the
// picked color to ctx's active target. It returns what was hit.
func (p *Picker) Click(pt geom.Point, ctx *style.Context) Hit {
	hit := p.HitTest(pt)
	switch hit {
	case HitHue:
		x := int(pt.X - p.layout.BarRect().Min.X)
		ctx.Hue = p.bar.HueAt(x)
		p.field.Regenerate(ctx.Hue)
	case HitField:
		r := p.layout.FieldRect()
		ctx.Assign(p.field.At(int(pt.X-r.Min.X), int(pt.Y-r.Min.Y)))
	}
	return hit
}

// Sync regenerates the field if ctx's hue differs from the field's, e.g.
// after a project load.
func (p *Picker) Sync(ctx *style.Context) {
	if p.field.Hue() != ctx.Hue {
		p.field.Regenerate(ctx.Hue)
	}
}
