package project

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ha1tch/shapedraw/internal/blob"
	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/shape"
	"github.com/ha1tch/shapedraw/internal/style"
)

func sample(t *testing.T) Project {
	t.Helper()
	ctx := style.NewContext()
	ctx.SetKind(shape.Circle)
	ctx.Assign(shape.RGB{R: 10, G: 20, B: 30})
	ctx.Hue = 200

	tri, err := shape.New(shape.Triangle, []geom.Point{geom.Pt(1, 2), geom.Pt(3.5, 4), geom.Pt(-5, 6)}, ctx.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	circ, err := shape.FromClicks(shape.Circle, []geom.Point{geom.Pt(10, 10), geom.Pt(50, 20), geom.Pt(0, 60)},
		shape.Style{Stroke: shape.Red, Fill: shape.Blue, HasFill: true, Width: 2})
	if err != nil {
		t.Fatal(err)
	}
	return Project{
		CanvasWidth:  64,
		CanvasHeight: 48,
		Style:        *ctx,
		Zoom:         3,
		Grid:         geom.Pt(7, -2),
		Shapes:       []shape.Shape{tri, circ},
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemory()
	want := sample(t)

	if err := Save(ctx, store, "a"+Ext, want, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(ctx, store, "a"+Ext, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.CanvasWidth != 64 || got.CanvasHeight != 48 || got.Zoom != 3 || got.Grid != want.Grid {
		t.Errorf("header = %+v", got)
	}
	if got.Style != want.Style {
		t.Errorf("style = %+v, want %+v", got.Style, want.Style)
	}
	if len(got.Shapes) != len(want.Shapes) {
		t.Fatalf("shapes = %d, want %d", len(got.Shapes), len(want.Shapes))
	}
	for i := range want.Shapes {
		g, w := got.Shapes[i], want.Shapes[i]
		if g.ID != w.ID || g.Kind != w.Kind || g.Style != w.Style {
			t.Errorf("shape %d = %+v, want %+v", i, g, w)
		}
		gp, wp := g.Points(), w.Points()
		for j := range wp {
			if gp[j] != wp[j] {
				t.Errorf("shape %d point %d = %v, want %v", i, j, gp[j], wp[j])
			}
		}
	}
}

func TestArchiveHasPreview(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(t)); err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	if !names[manifestName] || !names[previewName] {
		t.Errorf("archive entries = %v", names)
	}
}

func TestReadWithoutManifest(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("layer_0.png")
	_, _ = w.Write([]byte("not really"))
	_ = zw.Close()

	_, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if !errors.Is(err, ErrNoManifest) {
		t.Fatalf("err = %v, want ErrNoManifest", err)
	}
}

func TestReadRejectsBadArity(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create(manifestName)
	_, _ = w.Write([]byte(`{"version":1,"zoom":1,"shapes":[{"kind":"RECTANGLE","points":[[0,0],[1,1]]}]}`))
	_ = zw.Close()

	if _, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len())); err == nil {
		t.Fatal("expected error for two-point rectangle")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(context.Background(), blob.NewMemory(), "nope"+Ext, nil)
	if !errors.Is(err, blob.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
