package rlsurface

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/shapedraw/internal/editor"
	"github.com/ha1tch/shapedraw/internal/geom"
)

type binding struct {
	key  int32
	ctrl bool
	cmd  editor.Command
}

// Bindings maps keys to editor commands. Shift is the construction
// modifier and is never part of a binding.
var bindings = []binding{
	{rl.KeyRightBracket, false, editor.CmdWidthUp},
	{rl.KeyLeftBracket, false, editor.CmdWidthDown},
	{rl.KeyZ, true, editor.CmdUndo},
	{rl.KeyB, false, editor.CmdToggleBorder},
	{rl.KeyK, false, editor.CmdNextKind},
	{rl.KeyT, false, editor.CmdNextTarget},
	{rl.KeyN, false, editor.CmdClearFill},
	{rl.KeyE, true, editor.CmdExport},
	{rl.KeyG, true, editor.CmdExportSVG},
	{rl.KeyP, true, editor.CmdSnapshot},
	{rl.KeyS, true, editor.CmdSave},
	{rl.KeyO, true, editor.CmdLoad},
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
}

// Poll reads this frame's input from raylib.
func Poll(now time.Time) editor.Input {
	m := rl.GetMousePosition()
	in := editor.Input{
		Now:      now,
		Mouse:    geom.Pt(float64(m.X), float64(m.Y)),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Down:     rl.IsMouseButtonDown(rl.MouseLeftButton),
		Released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
		Wheel:    float64(rl.GetMouseWheelMove()),
		Modifier: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
	}
	ctrl := ctrlDown()
	for _, b := range bindings {
		if b.ctrl == ctrl && rl.IsKeyPressed(b.key) {
			in.Commands = append(in.Commands, b.cmd)
		}
	}
	return in
}
