// Package style holds the editor's mutable drawing mode: which shape is
// being built, where picked colors go, and the style new shapes copy.
package style

import (
	"fmt"

	"github.com/ha1tch/shapedraw/internal/shape"
)

// Target selects which slot a picked color is written to.
type Target int

const (
	TargetStroke Target = iota
	TargetFill
	TargetCanvas
)

var targetNames = []string{"STROKE", "FILL", "CANVAS"}

func (t Target) String() string {
	if t >= 0 && int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "UNKNOWN"
}

// Next cycles Stroke -> Fill -> Canvas -> Stroke.
func (t Target) Next() Target {
	return (t + 1) % Target(len(targetNames))
}

// MarshalText encodes the target by name.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a target name.
func (t *Target) UnmarshalText(b []byte) error {
	for i, name := range targetNames {
		if name == string(b) {
			*t = Target(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color target %q", b)
}

// MinWidth is the smallest stroke width.
const MinWidth = 1

// Context is the session-wide drawing mode. It is created once and passed
// by pointer to everything that reads or changes it.
type Context struct {
	Kind    shape.Kind `json:"kind"`
	Target  Target     `json:"target"`
	Stroke  shape.RGB  `json:"stroke"`
	Fill    shape.RGB  `json:"fill"`
	HasFill bool       `json:"has_fill"`
	Canvas  shape.RGB  `json:"canvas"`
	Width   int        `json:"width"`
	Border  bool       `json:"border"`
	Hue     float64    `json:"hue"`
}

// NewContext returns the startup mode: triangles, black 5px visible
// outline, no fill, white canvas, colors going to the stroke.
func NewContext() *Context {
	return &Context{
		Kind:   shape.Triangle,
		Target: TargetStroke,
		Stroke: shape.Black,
		Canvas: shape.White,
		Width:  5,
		Border: true,
	}
}

// SetKind selects the kind of the next shape.
func (c *Context) SetKind(k shape.Kind) {
	if k.Valid() {
		c.Kind = k
	}
}

// NextKind cycles the active kind and returns it.
func (c *Context) NextKind() shape.Kind {
	c.Kind = c.Kind.Next()
	return c.Kind
}

// SetTarget selects where picked colors go.
func (c *Context) SetTarget(t Target) {
	if t >= TargetStroke && t <= TargetCanvas {
		c.Target = t
	}
}

// NextTarget cycles the color target and returns it.
func (c *Context) NextTarget() Target {
	c.Target = c.Target.Next()
	return c.Target
}

// IncWidth widens the stroke by one.
func (c *Context) IncWidth() int {
	c.Width++
	return c.Width
}

// DecWidth narrows the stroke by one, never below MinWidth.
func (c *Context) DecWidth() int {
	c.Width = max(c.Width-1, MinWidth)
	return c.Width
}

// SetWidth sets the stroke width, clamped to MinWidth.
func (c *Context) SetWidth(w int) {
	c.Width = max(w, MinWidth)
}

// ToggleBorder flips outline visibility and returns the new value.
func (c *Context) ToggleBorder() bool {
	c.Border = !c.Border
	return c.Border
}

// Assign writes col to the slot the active target designates.
func (c *Context) Assign(col shape.RGB) {
	switch c.Target {
	case TargetStroke:
		c.Stroke = col
	case TargetFill:
		c.Fill = col
		c.HasFill = true
	case TargetCanvas:
		c.Canvas = col
	}
}

// ClearFill makes new shapes unfilled again.
func (c *Context) ClearFill() {
	c.HasFill = false
}

// TargetColor returns the color currently held by the active target and
// whether that slot is set.
func (c *Context) TargetColor() (shape.RGB, bool) {
	switch c.Target {
	case TargetFill:
		return c.Fill, c.HasFill
	case TargetCanvas:
		return c.Canvas, true
	default:
		return c.Stroke, true
	}
}

// Snapshot copies the style a shape created now would get.
func (c *Context) Snapshot() shape.Style {
	return shape.Style{
		Stroke:  c.Stroke,
		Fill:    c.Fill,
		HasFill: c.HasFill,
		Width:   c.Width,
		Border:  c.Border,
	}
}
