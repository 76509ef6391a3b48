// Command shaperender renders a saved project without opening a window.
//
//	shaperender -project scene.sdp -format svg -o scene.svg
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ha1tch/shapedraw/internal/blob"
	"github.com/ha1tch/shapedraw/internal/export"
	"github.com/ha1tch/shapedraw/internal/project"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		slog.Error("shaperender", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("shaperender", flag.ContinueOnError)
	projectPath := fs.String("project", "", "project archive to render")
	format := fs.String("format", "", "tk, svg or png (default: from -o extension, else tk)")
	out := fs.String("o", "", "output file (default: project name with the format's extension)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *projectPath == "" {
		return fmt.Errorf("-project is required")
	}
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	name := *format
	if name == "" {
		name = filepath.Ext(*out)
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	src, err := blob.NewFilesystem(filepath.Dir(*projectPath))
	if err != nil {
		return err
	}
	p, err := project.Load(ctx, src, filepath.Base(*projectPath), log)
	if err != nil {
		return err
	}

	dest := *out
	if dest == "" {
		base := filepath.Base(*projectPath)
		dest = filepath.Join(filepath.Dir(*projectPath), base[:len(base)-len(filepath.Ext(base))]+f.Ext())
	}
	dst, err := blob.NewFilesystem(filepath.Dir(dest))
	if err != nil {
		return err
	}
	doc := export.Document{Width: p.CanvasWidth, Height: p.CanvasHeight, Canvas: p.Style.Canvas, Shapes: p.Shapes}
	info, err := export.NewExporter(dst, log).Export(ctx, filepath.Base(dest), f, doc)
	if err != nil {
		return err
	}
	log.Debug("rendered", "path", dest, "bytes", info.Size)
	return nil
}
