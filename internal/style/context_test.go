package style

import (
	"encoding/json"
	"testing"

	"github.com/ha1tch/shapedraw/internal/shape"
)

func TestWidthFloor(t *testing.T) {
	c := NewContext()
	c.SetWidth(2)
	if w := c.DecWidth(); w != 1 {
		t.Fatalf("DecWidth() = %d, want 1", w)
	}
	if w := c.DecWidth(); w != MinWidth {
		t.Fatalf("DecWidth() at floor = %d, want %d", w, MinWidth)
	}
	if w := c.IncWidth(); w != 2 {
		t.Fatalf("IncWidth() = %d, want 2", w)
	}
	c.SetWidth(-4)
	if c.Width != MinWidth {
		t.Fatalf("SetWidth(-4) left %d", c.Width)
	}
}

func TestAssignFollowsTarget(t *testing.T) {
	tests := []struct {
		target Target
		check  func(*Context) bool
	}{
		{TargetStroke, func(c *Context) bool { return c.Stroke == shape.Red && !c.HasFill && c.Canvas == shape.White }},
		{TargetFill, func(c *Context) bool { return c.Fill == shape.Red && c.HasFill && c.Stroke == shape.Black }},
		{TargetCanvas, func(c *Context) bool { return c.Canvas == shape.Red && c.Stroke == shape.Black && !c.HasFill }},
	}
	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			c := NewContext()
			c.SetTarget(tt.target)
			c.Assign(shape.Red)
			if !tt.check(c) {
				t.Fatalf("unexpected context %+v", c)
			}
			got, ok := c.TargetColor()
			if !ok || got != shape.Red {
				t.Errorf("TargetColor() = %v, %v", got, ok)
			}
		})
	}
}

func TestCycles(t *testing.T) {
	c := NewContext()
	if c.NextTarget() != TargetFill || c.NextTarget() != TargetCanvas || c.NextTarget() != TargetStroke {
		t.Error("target cycle order wrong")
	}
	if c.NextKind() != shape.Rectangle || c.NextKind() != shape.Circle || c.NextKind() != shape.Triangle {
		t.Error("kind cycle order wrong")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	c := NewContext()
	c.SetTarget(TargetFill)
	c.Assign(shape.Green)
	snap := c.Snapshot()

	c.ToggleBorder()
	c.IncWidth()
	c.ClearFill()

	if !snap.Border || snap.Width != 5 || !snap.HasFill || snap.Fill != shape.Green {
		t.Fatalf("snapshot changed: %+v", snap)
	}
}

func TestContextJSON(t *testing.T) {
	c := NewContext()
	c.SetTarget(TargetCanvas)
	c.Kind = shape.Circle
	c.Assign(shape.RGB{R: 1, G: 2, B: 3})

	b, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var back Context
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	if back != *c {
		t.Fatalf("got %+v, want %+v", back, *c)
	}
}
