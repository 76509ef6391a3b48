// Package project saves and loads editor sessions. A project file is a zip
// archive holding project.json (canvas, style, view and shapes) and a
// preview.png rendering of the scene.
package project

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ha1tch/shapedraw/internal/blob"
	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/raster"
	"github.com/ha1tch/shapedraw/internal/shape"
	"github.com/ha1tch/shapedraw/internal/style"
)

const (
	manifestName = "project.json"
	previewName  = "preview.png"

	// Ext is the file extension for project archives.
	Ext = ".sdp"

	// ContentType is stored with archives written to a blob store.
	ContentType = "application/zip"

	formatVersion = 1
)

// ErrNoManifest is returned when an archive has no project.json.
var ErrNoManifest = errors.New("project: project.json not found in archive")

// Project is a saved editor session.
type Project struct {
	CanvasWidth  int
	CanvasHeight int
	Style        style.Context
	Zoom         int
	Grid         geom.Point
	Shapes       []shape.Shape
}

type projectData struct {
	Version      int           `json:"version"`
	CanvasWidth  int           `json:"canvas_width"`
	CanvasHeight int           `json:"canvas_height"`
	Style        style.Context `json:"style"`
	Zoom         int           `json:"zoom"`
	Grid         [2]float64    `json:"grid_origin"`
	Shapes       []shapeData   `json:"shapes"`
}

type shapeData struct {
	ID     uuid.UUID    `json:"id"`
	Kind   shape.Kind   `json:"kind"`
	Points [][2]float64 `json:"points"`
	Style  shape.Style  `json:"style"`
}

func toData(p Project) projectData {
	d := projectData{
		Version:      formatVersion,
		CanvasWidth:  p.CanvasWidth,
		CanvasHeight: p.CanvasHeight,
		Style:        p.Style,
		Zoom:         p.Zoom,
		Grid:         [2]float64{p.Grid.X, p.Grid.Y},
		Shapes:       make([]shapeData, len(p.Shapes)),
	}
	for i, s := range p.Shapes {
		pts := s.Points()
		sd := shapeData{ID: s.ID, Kind: s.Kind, Style: s.Style, Points: make([][2]float64, len(pts))}
		for j, pt := range pts {
			sd.Points[j] = [2]float64{pt.X, pt.Y}
		}
		d.Shapes[i] = sd
	}
	return d
}

func fromData(d projectData) (Project, error) {
	if d.Version > formatVersion {
		return Project{}, fmt.Errorf("project format version %d is newer than supported %d", d.Version, formatVersion)
	}
	p := Project{
		CanvasWidth:  d.CanvasWidth,
		CanvasHeight: d.CanvasHeight,
		Style:        d.Style,
		Zoom:         d.Zoom,
		Grid:         geom.Pt(d.Grid[0], d.Grid[1]),
		Shapes:       make([]shape.Shape, 0, len(d.Shapes)),
	}
	for i, sd := range d.Shapes {
		pts := make([]geom.Point, len(sd.Points))
		for j, xy := range sd.Points {
			pts[j] = geom.Pt(xy[0], xy[1])
		}
		s, err := shape.New(sd.Kind, pts, sd.Style)
		if err != nil {
			return Project{}, fmt.Errorf("shape %d: %w", i, err)
		}
		if sd.ID != uuid.Nil {
			s.ID = sd.ID
		}
		p.Shapes = append(p.Shapes, s)
	}
	return p, nil
}

// Write encodes p as a project archive.
func Write(w io.Writer, p Project) error {
	zw := zip.NewWriter(w)

	jsonData, err := json.MarshalIndent(toData(p), "", "  ")
	if err != nil {
		return err
	}
	jf, err := zw.Create(manifestName)
	if err != nil {
		return err
	}
	if _, err := jf.Write(jsonData); err != nil {
		return err
	}

	pf, err := zw.Create(previewName)
	if err != nil {
		return err
	}
	if err := raster.Snapshot(pf, p.CanvasWidth, p.CanvasHeight, p.Style.Canvas, p.Shapes, nil); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return zw.Close()
}

// Read decodes a project archive of the given size.
func Read(r io.ReaderAt, size int64) (Project, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Project{}, err
	}
	var manifest *zip.File
	for _, f := range zr.File {
		if f.Name == manifestName {
			manifest = f
			break
		}
	}
	if manifest == nil {
		return Project{}, ErrNoManifest
	}
	rc, err := manifest.Open()
	if err != nil {
		return Project{}, err
	}
	defer rc.Close()

	var d projectData
	if err := json.NewDecoder(rc).Decode(&d); err != nil {
		return Project{}, fmt.Errorf("decode %s: %w", manifestName, err)
	}
	return fromData(d)
}

// Save writes p to store under key. The archive is built in memory first
// so a failure never leaves a partial file.
func Save(ctx context.Context, store blob.Store, key string, p Project, log *slog.Logger) error {
	var buf bytes.Buffer
	if err := Write(&buf, p); err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	if _, err := store.Put(ctx, key, &buf, blob.PutOptions{ContentType: ContentType}); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if log != nil {
		log.Info("project saved", "key", key, "shapes", len(p.Shapes))
	}
	return nil
}

// Load reads the project stored under key.
func Load(ctx context.Context, store blob.Store, key string, log *slog.Logger) (Project, error) {
	_, rc, err := store.Get(ctx, key)
	if err != nil {
		return Project{}, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return Project{}, fmt.Errorf("read %s: %w", key, err)
	}
	p, err := Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Project{}, fmt.Errorf("load %s: %w", key, err)
	}
	if log != nil {
		log.Info("project loaded", "key", key, "shapes", len(p.Shapes))
	}
	return p, nil
}
