package editor

import (
	"time"

	"github.com/ha1tch/shapedraw/internal/geom"
)

// Command is a keyboard action, already decoded from raw keys by the
// window layer.
type Command int

const (
	CmdWidthUp Command = iota
	CmdWidthDown
	CmdUndo
	CmdToggleBorder
	CmdNextKind
	CmdNextTarget
	CmdClearFill
	CmdExport
	CmdExportSVG
	CmdSnapshot
	CmdSave
	CmdLoad
)

var commandNames = []string{
	"width_up", "width_down", "undo", "toggle_border", "next_kind", "next_target",
	"clear_fill", "export", "export_svg", "snapshot", "save", "load",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Input is everything the session needs from one frame of polling.
type Input struct {
	Now   time.Time
	Mouse geom.Point

	// Primary button edges and level.
	Pressed  bool
	Down     bool
	Released bool

	// Wheel is the vertical wheel movement this frame, in ticks.
	Wheel float64

	// Modifier is held to turn primary clicks into construction clicks.
	Modifier bool

	Commands []Command
}
