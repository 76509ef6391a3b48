package shape

import (
	"testing"

	"github.com/ha1tch/shapedraw/internal/geom"
)

func TestKindArity(t *testing.T) {
	tests := []struct {
		kind          Kind
		clicks, arity int
	}{
		{Triangle, 3, 3},
		{Rectangle, 4, 4},
		{Circle, 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Clicks(); got != tt.clicks {
				t.Errorf("Clicks() = %d, want %d", got, tt.clicks)
			}
			if got := tt.kind.Arity(); got != tt.arity {
				t.Errorf("Arity() = %d, want %d", got, tt.arity)
			}
		})
	}
}

func TestKindNextCycles(t *testing.T) {
	k := Triangle
	for _, want := range []Kind{Rectangle, Circle, Triangle} {
		k = k.Next()
		if k != want {
			t.Fatalf("Next() = %v, want %v", k, want)
		}
	}
}

func TestNewRejectsWrongArity(t *testing.T) {
	if _, err := New(Triangle, []geom.Point{{0, 0}, {1, 1}}, Style{}); err == nil {
		t.Fatal("expected error for 2-point triangle")
	}
	if _, err := New(Kind(9), nil, Style{}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestFromClicksCircle(t *testing.T) {
	clicks := []geom.Point{{10, 40}, {50, 60}, {30, 90}}
	s, err := FromClicks(Circle, clicks, Style{})
	if err != nil {
		t.Fatalf("FromClicks: %v", err)
	}
	want := []geom.Point{{10, 50}, {50, 50}, {50, 90}, {10, 90}}
	got := s.Points()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if b := s.Bounds(); b != (geom.Rect{Min: geom.Pt(10, 50), Max: geom.Pt(50, 90)}) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestPointsIsACopy(t *testing.T) {
	s, err := New(Triangle, []geom.Point{{0, 0}, {1, 0}, {0, 1}}, Style{})
	if err != nil {
		t.Fatal(err)
	}
	pts := s.Points()
	pts[0] = geom.Pt(99, 99)
	if s.Points()[0] != geom.Pt(0, 0) {
		t.Fatal("mutating Points() result changed the shape")
	}
}

func TestTransformedLeavesOriginal(t *testing.T) {
	s, _ := New(Rectangle, []geom.Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, Style{})
	moved := s.Transformed(geom.PanMatrix(geom.Pt(1, 1)))
	if s.Points()[0] != geom.Pt(0, 0) {
		t.Error("original shape changed")
	}
	if moved.Points()[2] != geom.Pt(3, 3) {
		t.Errorf("moved point = %+v", moved.Points()[2])
	}
	if moved.ID != s.ID {
		t.Error("transform must keep the shape identity")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{255, 0, 0}, "#ff0000"},
		{RGB{0, 255, 0}, "#00ff00"},
		{RGB{10, 171, 205}, "#0aabcd"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
		back, err := ParseHex(tt.want)
		if err != nil || back != tt.c {
			t.Errorf("ParseHex(%q) = %v, %v", tt.want, back, err)
		}
	}
	if _, err := ParseHex("#12"); err == nil {
		t.Error("expected error for short hex")
	}
}

func TestStyleOutlined(t *testing.T) {
	if (Style{Border: true, Width: 0}).Outlined() {
		t.Error("zero width must not outline")
	}
	if (Style{Border: false, Width: 3}).Outlined() {
		t.Error("hidden border must not outline")
	}
	if !(Style{Border: true, Width: 1}).Outlined() {
		t.Error("visible border with width should outline")
	}
}
