// Package export turns the scene into files: a Tk canvas script that
// redraws it, an SVG document, or a PNG snapshot.
package export

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/shape"
)

// Document is everything an export needs: the canvas and the shapes in
// draw order.
type Document struct {
	Width, Height int
	Canvas        shape.RGB
	Shapes        []shape.Shape
}

// Statement returns the Tk canvas call that draws s. Field order is
// geometry, outline, fill, width.
func Statement(s shape.Shape) string {
	var fn string
	var coords []geom.Point
	switch s.Kind {
	case shape.Triangle:
		fn = "create_polygon"
		coords = s.Points()
	case shape.Rectangle, shape.Circle:
		fn = "create_rectangle"
		if s.Kind == shape.Circle {
			fn = "create_oval"
		}
		b := s.Bounds()
		coords = []geom.Point{b.Min, b.Max}
	default:
		return ""
	}

	var buf bytes.Buffer
	buf.WriteString("canvas.")
	buf.WriteString(fn)
	buf.WriteByte('(')
	for i, p := range coords {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(num(p.X))
		buf.WriteString(", ")
		buf.WriteString(num(p.Y))
	}
	outline, width := "", 0
	if s.Style.Outlined() {
		outline, width = s.Style.Stroke.Hex(), s.Style.Width
	}
	fill := ""
	if s.Style.HasFill {
		fill = s.Style.Fill.Hex()
	}
	fmt.Fprintf(&buf, ", outline=%q, fill=%q, width=%d)", outline, fill, width)
	return buf.String()
}

// WriteTk writes a runnable Tk script that redraws doc.
func WriteTk(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "import tkinter as tk")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "root = tk.Tk()")
	fmt.Fprintf(bw, "canvas = tk.Canvas(root, width=%d, height=%d, bg=%q)\n", doc.Width, doc.Height, doc.Canvas.Hex())
	fmt.Fprintln(bw, "canvas.pack()")
	fmt.Fprintln(bw)
	for _, s := range doc.Shapes {
		if st := Statement(s); st != "" {
			fmt.Fprintln(bw, st)
		}
	}
	if len(doc.Shapes) > 0 {
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "root.mainloop()")
	return bw.Flush()
}

func num(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Script returns the Tk script for doc as a string.
func Script(doc Document) string {
	var buf bytes.Buffer
	_ = WriteTk(&buf, doc)
	return buf.String()
}
