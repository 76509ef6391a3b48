package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/shapedraw/internal/blob"
	"github.com/ha1tch/shapedraw/internal/config"
	"github.com/ha1tch/shapedraw/internal/editor"
	"github.com/ha1tch/shapedraw/internal/export"
	"github.com/ha1tch/shapedraw/internal/project"
	"github.com/ha1tch/shapedraw/internal/rlsurface"
)

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	projectKey := flag.String("project", "scene"+project.Ext, "project archive to load and save, relative to the export root")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	level := cfg.LogLevel
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx := context.Background()
	store, err := blob.Open(ctx, cfg.Blob())
	if err != nil {
		slog.Error("open export store", "driver", cfg.ExportDriver, "err", err)
		os.Exit(1)
	}

	session := editor.New(editor.Options{
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
		IdleTimeout:  cfg.IdleTimeout,
		GridSpacing:  cfg.GridSpacing,
		PickerBar:    cfg.PickerBar,
		PickerField:  cfg.PickerField,
		ExportName:   cfg.ExportName,
		ProjectKey:   *projectKey,
		Exporter:     export.NewExporter(store, slog.Default()),
		Projects:     store,
		Log:          slog.Default(),
	})
	if err := session.Load(ctx); err != nil && !errors.Is(err, blob.ErrNotFound) {
		slog.Warn("load project", "key", *projectKey, "err", err)
	}

	rl.InitWindow(int32(session.Width()), int32(session.Height()), "Shapedraw")
	rl.SetTargetFPS(int32(cfg.FPS))

	surf := rlsurface.New()
	for !rl.WindowShouldClose() {
		session.Update(ctx, rlsurface.Poll(time.Now()))

		rl.BeginDrawing()
		session.Draw(surf)
		rl.EndDrawing()
	}

	surf.Close()
	rl.CloseWindow()
}
