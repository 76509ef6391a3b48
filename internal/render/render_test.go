package render

import (
	"testing"

	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/shape"
)

func mustShape(t *testing.T, k shape.Kind, pts []geom.Point, st shape.Style) shape.Shape {
	t.Helper()
	s, err := shape.New(k, pts, st)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSceneDrawOrder(t *testing.T) {
	filled := shape.Style{Stroke: shape.Red, Fill: shape.Green, HasFill: true, Width: 2, Border: true}
	hollow := shape.Style{Stroke: shape.Blue, Width: 3, Border: true}
	borderless := shape.Style{Stroke: shape.Blue, Fill: shape.Red, HasFill: true, Width: 3}

	shapes := []shape.Shape{
		mustShape(t, shape.Rectangle, []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, filled),
		mustShape(t, shape.Triangle, []geom.Point{{0, 0}, {5, 5}, {0, 5}}, hollow),
		mustShape(t, shape.Circle, []geom.Point{{0, 0}, {20, 0}, {20, 10}, {0, 10}}, borderless),
	}
	var rec Recorder
	Scene(&rec, shape.White, shapes)

	want := []string{"clear", "fill_polygon", "stroke_polygon", "stroke_polygon", "fill_ellipse"}
	if len(rec.Ops) != len(want) {
		t.Fatalf("ops = %v", rec.Ops)
	}
	for i, name := range want {
		if rec.Ops[i].Name != name {
			t.Errorf("op %d = %s, want %s", i, rec.Ops[i].Name, name)
		}
	}
	if rec.Ops[0].Color != shape.White {
		t.Errorf("cleared to %v", rec.Ops[0].Color)
	}
	if rec.Ops[2].Width != 2 || rec.Ops[2].Color != shape.Red {
		t.Errorf("rectangle outline = %+v", rec.Ops[2])
	}
	ellipse := rec.Ops[4]
	if ellipse.Points[0] != geom.Pt(10, 5) || ellipse.Points[1] != geom.Pt(10, 5) {
		t.Errorf("ellipse center/radii = %v", ellipse.Points)
	}
}

func TestMarkersAndGrid(t *testing.T) {
	var rec Recorder
	Markers(&rec, []geom.Point{{1, 1}, {2, 2}})
	Grid(&rec, geom.RectXYWH(0, 0, 100, 50), []float64{10, 20}, []float64{5})

	if n := len(rec.Named("fill_circle")); n != 2 {
		t.Errorf("markers = %d, want 2", n)
	}
	lines := rec.Named("line")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[2].Points[0] != geom.Pt(0, 5) || lines[2].Points[1] != geom.Pt(100, 5) {
		t.Errorf("horizontal line = %v", lines[2].Points)
	}
}
