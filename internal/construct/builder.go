// Package construct turns construction clicks into finished shapes.
package construct

import (
	"time"

	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/shape"
)

// DefaultIdleTimeout abandons a partial shape after this long without a click.
const DefaultIdleTimeout = 3 * time.Second

// State is the builder's construction state.
type State int

const (
	Idle State = iota
	Collecting
)

func (s State) String() string {
	if s == Collecting {
		return "COLLECTING"
	}
	return "IDLE"
}

// Builder buffers the clicks of the shape under construction.
//
// Clicks accumulate until the active kind's click count is reached, at
// which point Click returns the finished shape and the buffer is emptied.
// Tick must be called every frame so a stale partial shape is dropped even
// when no input arrives.
type Builder struct {
	kind    shape.Kind
	pending []geom.Point
	started time.Time
	last    time.Time
	idle    time.Duration
}

// New returns an idle builder for kind k. A non-positive idle duration
// selects DefaultIdleTimeout.
func New(k shape.Kind, idle time.Duration) *Builder {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &Builder{kind: k, idle: idle}
}

// Kind returns the kind under construction.
func (b *Builder) Kind() shape.Kind { return b.kind }

// State reports whether any clicks are buffered.
func (b *Builder) State() State {
	if len(b.pending) == 0 {
		return Idle
	}
	return Collecting
}

// Pending returns a copy of the buffered clicks.
func (b *Builder) Pending() []geom.Point {
	return append([]geom.Point(nil), b.pending...)
}

// StartedAt returns when the first pending click arrived. It is the zero
// time while idle.
func (b *Builder) StartedAt() time.Time {
	if len(b.pending) == 0 {
		return time.Time{}
	}
	return b.started
}

// SetKind switches the kind under construction. Any buffered clicks are
// dropped so points of different kinds never mix.
func (b *Builder) SetKind(k shape.Kind) {
	if k == b.kind {
		return
	}
	b.kind = k
	b.Reset()
}

// Reset drops all buffered clicks.
func (b *Builder) Reset() {
	b.pending = b.pending[:0]
}

// Click buffers p. When the click completes the shape it returns the
// finished shape styled with st and true; the builder is idle again.
func (b *Builder) Click(p geom.Point, st shape.Style, now time.Time) (shape.Shape, bool, error) {
	b.Tick(now)
	if len(b.pending) == 0 {
		b.started = now
	}
	b.pending = append(b.pending, p)
	b.last = now

	if len(b.pending) < b.kind.Clicks() {
		return shape.Shape{}, false, nil
	}
	s, err := shape.FromClicks(b.kind, b.pending, st)
	b.Reset()
	if err != nil {
		return shape.Shape{}, false, err
	}
	return s, true, nil
}

// Tick drops the buffered clicks if more than the idle timeout has passed
// since the last one. It reports whether anything was dropped.
func (b *Builder) Tick(now time.Time) bool {
	if len(b.pending) == 0 || now.Sub(b.last) <= b.idle {
		return false
	}
	b.Reset()
	return true
}
