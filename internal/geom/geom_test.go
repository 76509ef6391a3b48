package geom

import (
	"testing"
)

const eps = 1e-9

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want Rect
	}{
		{"empty", nil, Rect{}},
		{"single", []Point{{3, 4}}, Rect{Min: Point{3, 4}, Max: Point{3, 4}}},
		{"unordered", []Point{{10, 2}, {-1, 8}, {4, -3}}, Rect{Min: Point{-1, -3}, Max: Point{10, 8}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bounds(tt.pts); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestZoomMatrixAboutPivot(t *testing.T) {
	pivot := Pt(400, 300)
	m := ZoomMatrix(pivot, 2)

	if got := Transform(m, pivot); !got.Near(pivot, eps) {
		t.Errorf("pivot moved to %+v", got)
	}
	if got, want := Transform(m, Pt(410, 290)), Pt(420, 280); !got.Near(want, eps) {
		t.Errorf("Transform() = %+v, want %+v", got, want)
	}
}

func TestZoomMatrixRoundTrip(t *testing.T) {
	pivot := Pt(400, 300)
	pts := []Point{{12.5, 40}, {799, 0}, {-30, 1000}}
	orig := append([]Point(nil), pts...)

	Apply(ZoomMatrix(pivot, 2), pts)
	Apply(ZoomMatrix(pivot, 0.5), pts)

	for i := range pts {
		if !pts[i].Near(orig[i], eps) {
			t.Errorf("point %d = %+v, want %+v", i, pts[i], orig[i])
		}
	}
}

func TestPanMatrix(t *testing.T) {
	got := Transform(PanMatrix(Pt(5, -7)), Pt(1, 1))
	if want := Pt(6, -6); !got.Near(want, eps) {
		t.Errorf("Transform() = %+v, want %+v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := RectXYWH(10, 10, 20, 5)
	if !r.Contains(Pt(10, 10)) {
		t.Error("min corner should be inside")
	}
	if r.Contains(Pt(30, 12)) {
		t.Error("max edge should be exclusive")
	}
	if c := r.Center(); c != Pt(20, 12.5) {
		t.Errorf("Center() = %+v", c)
	}
}
