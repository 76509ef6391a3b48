package editor

import (
	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/picker"
	"github.com/ha1tch/shapedraw/internal/shape"
	"github.com/ha1tch/shapedraw/internal/style"
)

const (
	fontSize   = 10
	panelPad   = 10
	minPanel   = 200
	rowHeight  = 24
	titleSpace = 30
)

// Panel colors, in the dark-chrome look of the side bars.
var (
	panelColor    = shape.RGB{R: 50, G: 50, B: 50}
	buttonColor   = shape.RGB{R: 70, G: 70, B: 70}
	hoverColor    = shape.RGB{R: 80, G: 80, B: 80}
	selectedColor = shape.RGB{R: 100, G: 100, B: 150}
	borderColor   = shape.RGB{R: 90, G: 90, B: 90}
	labelColor    = shape.RGB{R: 200, G: 200, B: 200}
)

type button struct {
	rect     geom.Rect
	text     string
	hover    bool
	selected bool
}

// chrome is the side panel: kind selector, color target labels, picker,
// swatches and status text.
type chrome struct {
	origin  geom.Point
	width   float64
	kind    button
	targets [3]button
	picker  *picker.Picker
	info    geom.Point
}

func panelWidth(barWidth, fieldSize int) float64 {
	return float64(max(minPanel, max(barWidth, fieldSize)+2*panelPad))
}

func newChrome(origin geom.Point, barWidth, fieldSize int, hue float64) *chrome {
	c := &chrome{origin: origin, width: panelWidth(barWidth, fieldSize)}
	inner := c.width - 2*panelPad
	x := origin.X + panelPad
	y := origin.Y + titleSpace

	c.kind = button{rect: geom.RectXYWH(x, y, inner, rowHeight)}
	y += rowHeight + panelPad

	tw := (inner - 2*4) / 3
	for i := range c.targets {
		t := style.Target(i)
		c.targets[i] = button{
			rect: geom.RectXYWH(x+float64(i)*(tw+4), y, tw, rowHeight),
			text: t.String(),
		}
	}
	y += rowHeight + panelPad

	c.picker = picker.New(picker.Layout{
		Origin:    geom.Pt(x, y),
		BarWidth:  barWidth,
		BarHeight: 16,
		Gap:       8,
		FieldSize: fieldSize,
	}, hue)
	c.info = geom.Pt(x, c.picker.Layout().Bounds().Max.Y+panelPad)
	return c
}

func (c *chrome) bounds(height float64) geom.Rect {
	return geom.RectXYWH(c.origin.X, c.origin.Y, c.width, height)
}

// sync refreshes button labels, hover and selection from ctx.
func (c *chrome) sync(ctx *style.Context, mouse geom.Point) {
	c.kind.text = "SHAPE: " + ctx.Kind.String()
	c.kind.hover = c.kind.rect.Contains(mouse)
	for i := range c.targets {
		b := &c.targets[i]
		b.hover = b.rect.Contains(mouse)
		b.selected = style.Target(i) == ctx.Target
	}
}

// click handles a primary press at p inside the panel. It reports whether
// the kind changed so the caller can reset construction.
func (c *chrome) click(p geom.Point, ctx *style.Context) (kindChanged bool) {
	if c.kind.rect.Contains(p) {
		ctx.NextKind()
		return true
	}
	for i, b := range c.targets {
		if b.rect.Contains(p) {
			ctx.SetTarget(style.Target(i))
			return false
		}
	}
	c.picker.Click(p, ctx)
	return false
}
