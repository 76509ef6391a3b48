package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ha1tch/shapedraw/internal/shape"
)

// WriteSVG writes doc as an SVG document. Stroke and fill follow the same
// rules as the Tk script.
func WriteSVG(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		doc.Width, doc.Height, doc.Width, doc.Height)
	fmt.Fprintf(bw, "  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", doc.Canvas.Hex())
	for _, s := range doc.Shapes {
		if el := svgElement(s); el != "" {
			fmt.Fprintf(bw, "  %s\n", el)
		}
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func svgElement(s shape.Shape) string {
	paint := svgPaint(s.Style)
	id := s.ID.String()
	switch s.Kind {
	case shape.Triangle:
		pts := make([]string, 0, 3)
		for _, p := range s.Points() {
			pts = append(pts, num(p.X)+","+num(p.Y))
		}
		return fmt.Sprintf(`<polygon id="%s" points="%s" %s/>`, id, strings.Join(pts, " "), paint)
	case shape.Rectangle:
		b := s.Bounds()
		return fmt.Sprintf(`<rect id="%s" x="%s" y="%s" width="%s" height="%s" %s/>`,
			id, num(b.Min.X), num(b.Min.Y), num(b.Width()), num(b.Height()), paint)
	case shape.Circle:
		b := s.Bounds()
		c := b.Center()
		return fmt.Sprintf(`<ellipse id="%s" cx="%s" cy="%s" rx="%s" ry="%s" %s/>`,
			id, num(c.X), num(c.Y), num(b.Width()/2), num(b.Height()/2), paint)
	}
	return ""
}

func svgPaint(st shape.Style) string {
	fill := "none"
	if st.HasFill {
		fill = st.Fill.Hex()
	}
	if !st.Outlined() {
		return fmt.Sprintf(`fill="%s" stroke="none"`, fill)
	}
	return fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%d"`, fill, st.Stroke.Hex(), st.Width)
}
