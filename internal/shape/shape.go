// Package shape defines the finished shape records kept in the scene.
//
// A Shape is a tagged value: its Kind fixes how many points it carries
// (Triangle 3, Rectangle 4, Circle 4 bounding-box corners). Shapes are
// values; geometry only changes through Transformed, which returns a new
// Shape with every point remapped.
package shape

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/google/uuid"

	"github.com/ha1tch/shapedraw/internal/geom"
)

// Kind identifies the type of a shape.
type Kind int

const (
	Triangle Kind = iota
	Rectangle
	Circle
)

var kindNames = []string{"TRIANGLE", "RECTANGLE", "CIRCLE"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= Triangle && k <= Circle
}

// Next cycles Triangle -> Rectangle -> Circle -> Triangle.
func (k Kind) Next() Kind {
	return (k + 1) % Kind(len(kindNames))
}

// Clicks is the number of construction clicks that finish a shape of kind k.
func (k Kind) Clicks() int {
	switch k {
	case Triangle, Circle:
		return 3
	case Rectangle:
		return 4
	}
	return 0
}

// Arity is the number of points a finished shape of kind k stores.
func (k Kind) Arity() int {
	switch k {
	case Triangle:
		return 3
	case Rectangle, Circle:
		return 4
	}
	return 0
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid shape kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown shape kind %q", b)
}

// Style is the per-shape styling captured when the shape is created.
type Style struct {
	Stroke  RGB  `json:"stroke"`
	Fill    RGB  `json:"fill"`
	HasFill bool `json:"has_fill"`
	Width   int  `json:"width"`
	Border  bool `json:"border"`
}

// Outlined reports whether the shape draws an outline.
func (s Style) Outlined() bool {
	return s.Border && s.Width > 0
}

// Shape is a finished shape record.
type Shape struct {
	ID    uuid.UUID
	Kind  Kind
	Style Style

	pts [4]geom.Point
}

// New builds a shape of kind k from exactly k.Arity() points.
func New(k Kind, pts []geom.Point, st Style) (Shape, error) {
	if !k.Valid() {
		return Shape{}, fmt.Errorf("invalid shape kind %d", int(k))
	}
	if len(pts) != k.Arity() {
		return Shape{}, fmt.Errorf("%s needs %d points, got %d", k, k.Arity(), len(pts))
	}
	s := Shape{ID: uuid.New(), Kind: k, Style: st}
	copy(s.pts[:], pts)
	return s, nil
}

// FromClicks builds a shape from the raw construction clicks of kind k.
// Triangles and rectangles store the clicks as given. A circle's three
// clicks become the corners of its bounding box: clicks 0 and 1 give the
// two x extents and a shared y at the midpoint of their y values, click 2's
// y gives the opposite vertical extent.
func FromClicks(k Kind, clicks []geom.Point, st Style) (Shape, error) {
	if len(clicks) != k.Clicks() {
		return Shape{}, fmt.Errorf("%s needs %d clicks, got %d", k, k.Clicks(), len(clicks))
	}
	if k != Circle {
		return New(k, clicks, st)
	}
	a, b, c := clicks[0], clicks[1], clicks[2]
	mid := (a.Y + b.Y) / 2
	return New(Circle, []geom.Point{
		{X: a.X, Y: mid},
		{X: b.X, Y: mid},
		{X: b.X, Y: c.Y},
		{X: a.X, Y: c.Y},
	}, st)
}

// Points returns a copy of the stored points.
func (s Shape) Points() []geom.Point {
	n := s.Kind.Arity()
	out := make([]geom.Point, n)
	copy(out, s.pts[:n])
	return out
}

// Bounds returns the axis-aligned bounding box of the stored points.
func (s Shape) Bounds() geom.Rect {
	return geom.Bounds(s.pts[:s.Kind.Arity()])
}

// Transformed returns a copy of s with every point mapped through m.
func (s Shape) Transformed(m gg.Matrix) Shape {
	geom.Apply(m, s.pts[:s.Kind.Arity()])
	return s
}
