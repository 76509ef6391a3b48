package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ha1tch/shapedraw/internal/blob"
	"github.com/ha1tch/shapedraw/internal/raster"
)

// ErrNoDestination is returned when an export has nowhere to go, e.g. the
// user cancelled the destination prompt. Nothing is written.
var ErrNoDestination = errors.New("export: no destination")

// Format selects the output encoding.
type Format int

const (
	FormatTk Format = iota
	FormatSVG
	FormatPNG
)

func (f Format) String() string {
	switch f {
	case FormatTk:
		return "tk"
	case FormatSVG:
		return "svg"
	case FormatPNG:
		return "png"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext is the conventional file extension, dot included.
func (f Format) Ext() string {
	switch f {
	case FormatSVG:
		return ".svg"
	case FormatPNG:
		return ".png"
	}
	return ".py"
}

// ContentType is the MIME type stored alongside the object.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	}
	return "text/x-python; charset=utf-8"
}

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "tk", "py", "tcl", "":
		return FormatTk, nil
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	}
	return 0, fmt.Errorf("unknown export format %q", s)
}

// Write encodes doc in format f.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatTk:
		return WriteTk(w, doc)
	case FormatSVG:
		return WriteSVG(w, doc)
	case FormatPNG:
		return WritePNG(w, doc)
	}
	return fmt.Errorf("unknown export format %v", f)
}

// WritePNG rasterizes doc offscreen and writes it as PNG.
func WritePNG(w io.Writer, doc Document) error {
	return raster.Snapshot(w, doc.Width, doc.Height, doc.Canvas, doc.Shapes, nil)
}

// Exporter writes documents to a blob store.
type Exporter struct {
	dest blob.Store
	log  *slog.Logger
}

// NewExporter returns an Exporter writing to dest.
func NewExporter(dest blob.Store, log *slog.Logger) *Exporter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Exporter{dest: dest, log: log}
}

// Export renders doc fully in memory and stores it under key with a single
// Put. Nothing is written when rendering fails, key is empty, or there is
// no store.
func (e *Exporter) Export(ctx context.Context, key string, f Format, doc Document) (blob.Info, error) {
	if strings.TrimSpace(key) == "" || e.dest == nil {
		return blob.Info{}, ErrNoDestination
	}
	var buf bytes.Buffer
	if err := Write(&buf, f, doc); err != nil {
		return blob.Info{}, fmt.Errorf("render %s: %w", f, err)
	}
	info, err := e.dest.Put(ctx, key, &buf, blob.PutOptions{ContentType: f.ContentType()})
	if err != nil {
		e.log.Warn("export aborted", "key", key, "format", f, "err", err)
		return blob.Info{}, fmt.Errorf("export %s: %w", key, err)
	}
	e.log.Info("exported", "key", key, "format", f, "shapes", len(doc.Shapes), "bytes", info.Size)
	return info, nil
}
