package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/shape"
)

func TestSnapshotDrawsFilledShape(t *testing.T) {
	rect, err := shape.New(shape.Rectangle, []geom.Point{{10, 10}, {40, 10}, {40, 30}, {10, 30}},
		shape.Style{Fill: shape.Red, HasFill: true, Width: 1})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Snapshot(&buf, 64, 48, shape.White, []shape.Shape{rect}, nil); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("bounds = %v", b)
	}

	check := func(x, y int, want shape.RGB) {
		t.Helper()
		r, g, b, _ := img.At(x, y).RGBA()
		got := shape.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		if got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
		}
	}
	check(25, 20, shape.Red)
	check(2, 2, shape.White)
	check(60, 44, shape.White)
}
