package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ha1tch/shapedraw/internal/blob"
	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/project"
	"github.com/ha1tch/shapedraw/internal/shape"
	"github.com/ha1tch/shapedraw/internal/style"
)

func writeProject(t *testing.T, dir string) string {
	t.Helper()
	store, err := blob.NewFilesystem(dir)
	if err != nil {
		t.Fatal(err)
	}
	sh, err := shape.New(shape.Rectangle,
		[]geom.Point{geom.Pt(1, 2), geom.Pt(11, 2), geom.Pt(11, 12), geom.Pt(1, 12)},
		shape.Style{Stroke: shape.Red, Width: 2, Border: true})
	if err != nil {
		t.Fatal(err)
	}
	p := project.Project{CanvasWidth: 20, CanvasHeight: 20, Style: *style.NewContext(), Zoom: 1, Shapes: []shape.Shape{sh}}
	if err := project.Save(context.Background(), store, "demo"+project.Ext, p, nil); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(dir, "demo"+project.Ext)
}

func TestRunDefaultsToTk(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir)
	if err := run(context.Background(), []string{"-project", path}); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "demo.py"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `canvas.create_rectangle(1, 2, 11, 12, outline="#ff0000", fill="", width=2)`) {
		t.Errorf("script:\n%s", b)
	}
}

func TestRunFormatFromOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir)
	out := filepath.Join(dir, "out", "demo.svg")
	if err := run(context.Background(), []string{"-project", path, "-o", out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "<svg") {
		t.Errorf("not svg: %.40s", b)
	}
}

func TestRunRequiresProject(t *testing.T) {
	if err := run(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}
}
