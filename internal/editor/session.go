// Package editor is the interactive session: it turns one frame of input
// into construction, style, and pan/zoom changes, and draws the result.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/ha1tch/shapedraw/internal/blob"
	"github.com/ha1tch/shapedraw/internal/construct"
	"github.com/ha1tch/shapedraw/internal/export"
	"github.com/ha1tch/shapedraw/internal/geom"
	"github.com/ha1tch/shapedraw/internal/project"
	"github.com/ha1tch/shapedraw/internal/render"
	"github.com/ha1tch/shapedraw/internal/scene"
	"github.com/ha1tch/shapedraw/internal/shape"
	"github.com/ha1tch/shapedraw/internal/style"
	"github.com/ha1tch/shapedraw/internal/view"
)

// Options configures a Session. Zero values pick the defaults.
type Options struct {
	CanvasWidth  int
	CanvasHeight int
	IdleTimeout  time.Duration
	GridSpacing  float64
	PickerBar    int
	PickerField  int

	// ExportName is the base key for exports; the format's extension is
	// appended.
	ExportName string
	// ProjectKey is where Save and Load keep the project archive.
	ProjectKey string

	Exporter *export.Exporter
	Projects blob.Store
	Log      *slog.Logger
}

func (o *Options) defaults() {
	if o.CanvasWidth <= 0 {
		o.CanvasWidth = 1080
	}
	if o.CanvasHeight <= 0 {
		o.CanvasHeight = 800
	}
	if o.GridSpacing <= 0 {
		o.GridSpacing = view.DefaultGridSpacing
	}
	if o.PickerBar <= 0 {
		o.PickerBar = 180
	}
	if o.PickerField <= 0 {
		o.PickerField = 180
	}
	if o.ExportName == "" {
		o.ExportName = "scene"
	}
	if o.ProjectKey == "" {
		o.ProjectKey = "scene" + project.Ext
	}
	if o.Log == nil {
		o.Log = slog.New(slog.DiscardHandler)
	}
}

// Session owns the scene, the construction buffer, the style context and
// the view. It is driven from a single frame loop and is not safe for
// concurrent use; hand Snapshot() to anything running elsewhere.
type Session struct {
	opts    Options
	log     *slog.Logger
	scene   *scene.Store
	builder *construct.Builder
	style   *style.Context
	view    *view.Engine
	chrome  *chrome

	mouse   geom.Point
	panning bool
	last    geom.Point
	status  string
}

// New returns a session with an empty scene and the default style.
func New(opts Options) *Session {
	opts.defaults()
	ctx := style.NewContext()
	s := &Session{
		opts:    opts,
		log:     opts.Log,
		scene:   scene.New(),
		builder: construct.New(ctx.Kind, opts.IdleTimeout),
		style:   ctx,
		view:    view.New(geom.Pt(float64(opts.CanvasWidth)/2, float64(opts.CanvasHeight)/2)),
	}
	s.chrome = newChrome(geom.Pt(float64(opts.CanvasWidth), 0), opts.PickerBar, opts.PickerField, ctx.Hue)
	s.chrome.sync(ctx, s.mouse)
	return s
}

// Width is the window width needed for the canvas plus the panel.
func (s *Session) Width() int { return s.opts.CanvasWidth + int(s.chrome.width) }

// Height is the window height needed to fit the canvas and the panel.
func (s *Session) Height() int { return max(s.opts.CanvasHeight, int(s.chrome.info.Y)+6*rowHeight) }

// Scene returns the scene store.
func (s *Session) Scene() *scene.Store { return s.scene }

// Style returns the style context.
func (s *Session) Style() *style.Context { return s.style }

// View returns the pan/zoom engine.
func (s *Session) View() *view.Engine { return s.view }

// Builder returns the construction buffer.
func (s *Session) Builder() *construct.Builder { return s.builder }

// Panning reports whether a pan session is in progress.
func (s *Session) Panning() bool { return s.panning }

// Status returns the last status message.
func (s *Session) Status() string { return s.status }

func (s *Session) canvasRect() geom.Rect {
	return geom.RectXYWH(0, 0, float64(s.opts.CanvasWidth), float64(s.opts.CanvasHeight))
}

func (s *Session) inPanel(p geom.Point) bool {
	return p.X >= float64(s.opts.CanvasWidth)
}

// Update applies one frame of input.
func (s *Session) Update(ctx context.Context, in Input) {
	s.mouse = in.Mouse
	if s.builder.Tick(in.Now) {
		s.log.Debug("pending shape expired", "kind", s.builder.Kind())
	}

	s.pointer(in)

	if in.Wheel != 0 && s.canvasRect().Contains(in.Mouse) && !s.panning {
		s.zoom(in.Wheel)
	}

	for _, c := range in.Commands {
		s.command(ctx, c)
	}
	s.chrome.sync(s.style, s.mouse)
}

// pointer dispatches the primary button. A press goes to exactly one of:
// the panel, construction (modifier held), or a new pan session.
func (s *Session) pointer(in Input) {
	if s.panning {
		if in.Down && !in.Released {
			s.view.Pan(s.scene, in.Mouse.Sub(s.last))
			s.last = in.Mouse
			return
		}
		s.panning = false
	}
	if !in.Pressed {
		return
	}
	switch {
	case s.inPanel(in.Mouse):
		if s.chrome.click(in.Mouse, s.style) {
			s.builder.SetKind(s.style.Kind)
		}
	case in.Modifier:
		s.construct(in.Mouse, in.Now)
	default:
		s.panning = true
		s.last = in.Mouse
	}
}

func (s *Session) construct(p geom.Point, now time.Time) {
	sh, done, err := s.builder.Click(p, s.style.Snapshot(), now)
	if err != nil {
		s.log.Warn("construct shape", "err", err)
		return
	}
	if !done {
		s.log.Debug("point buffered", "kind", s.builder.Kind(), "pending", len(s.builder.Pending()))
		return
	}
	s.scene.Append(sh)
	s.log.Debug("shape added", "id", sh.ID, "kind", sh.Kind, "shapes", s.scene.Len())
}

func (s *Session) zoom(wheel float64) {
	dir := view.In
	if wheel < 0 {
		dir = view.Out
	}
	for range max(int(math.Round(math.Abs(wheel))), 1) {
		s.view.Step(s.scene, dir)
	}
}

func (s *Session) command(ctx context.Context, c Command) {
	switch c {
	case CmdWidthUp:
		s.style.IncWidth()
	case CmdWidthDown:
		s.style.DecWidth()
	case CmdUndo:
		if sh, ok := s.scene.Undo(); ok {
			s.log.Debug("undo", "id", sh.ID, "shapes", s.scene.Len())
		}
	case CmdToggleBorder:
		s.style.ToggleBorder()
	case CmdNextKind:
		s.builder.SetKind(s.style.NextKind())
	case CmdNextTarget:
		s.style.NextTarget()
	case CmdClearFill:
		s.style.ClearFill()
	case CmdExport:
		s.report(s.Export(ctx, export.FormatTk))
	case CmdExportSVG:
		s.report(s.Export(ctx, export.FormatSVG))
	case CmdSnapshot:
		s.report(s.Export(ctx, export.FormatPNG))
	case CmdSave:
		s.reportErr("saved "+s.opts.ProjectKey, s.Save(ctx))
	case CmdLoad:
		s.reportErr("loaded "+s.opts.ProjectKey, s.Load(ctx))
	}
}

func (s *Session) report(info blob.Info, err error) {
	s.reportErr("exported "+info.Key, err)
}

func (s *Session) reportErr(ok string, err error) {
	if err != nil {
		s.log.Warn("command failed", "err", err)
		s.status = "error: " + err.Error()
		return
	}
	s.status = ok
}

// Document returns the current scene as an export document.
func (s *Session) Document() export.Document {
	return export.Document{
		Width:  s.opts.CanvasWidth,
		Height: s.opts.CanvasHeight,
		Canvas: s.style.Canvas,
		Shapes: s.scene.Shapes(),
	}
}

// Export writes the scene in format f under the configured export name.
func (s *Session) Export(ctx context.Context, f export.Format) (blob.Info, error) {
	if s.opts.Exporter == nil {
		return blob.Info{}, export.ErrNoDestination
	}
	return s.opts.Exporter.Export(ctx, s.opts.ExportName+f.Ext(), f, s.Document())
}

// Project returns the session as a saveable project.
func (s *Session) Project() project.Project {
	return project.Project{
		CanvasWidth:  s.opts.CanvasWidth,
		CanvasHeight: s.opts.CanvasHeight,
		Style:        *s.style,
		Zoom:         s.view.Zoom(),
		Grid:         s.view.GridOrigin(),
		Shapes:       s.scene.Shapes(),
	}
}

// Save stores the session under the configured project key.
func (s *Session) Save(ctx context.Context) error {
	if s.opts.Projects == nil {
		return errors.New("no project store configured")
	}
	return project.Save(ctx, s.opts.Projects, s.opts.ProjectKey, s.Project(), s.log)
}

// Load replaces the session with the project under the configured key.
func (s *Session) Load(ctx context.Context) error {
	if s.opts.Projects == nil {
		return errors.New("no project store configured")
	}
	p, err := project.Load(ctx, s.opts.Projects, s.opts.ProjectKey, s.log)
	if err != nil {
		return err
	}
	s.Restore(p)
	return nil
}

// Restore replaces the scene, style and view with p. Pending clicks and
// any pan session are dropped.
func (s *Session) Restore(p project.Project) {
	s.scene.Clear()
	for _, sh := range p.Shapes {
		s.scene.Append(sh)
	}
	*s.style = p.Style
	if s.style.Width < style.MinWidth {
		s.style.SetWidth(style.MinWidth)
	}
	s.view = view.Restore(s.view.Pivot(), p.Zoom, p.Grid)
	s.builder.SetKind(s.style.Kind)
	s.builder.Reset()
	s.chrome.picker.Sync(s.style)
	s.panning = false
}

// Draw renders the canvas, the pending clicks and the side panel.
func (s *Session) Draw(surf render.Surface) {
	canvas := s.canvasRect()
	surf.Clear(s.style.Canvas)
	xs, ys := s.view.GridLines(canvas, s.opts.GridSpacing)
	render.Grid(surf, canvas, xs, ys)
	for _, sh := range s.scene.Shapes() {
		render.Shape(surf, sh)
	}
	render.Markers(surf, s.builder.Pending())
	if canvas.Contains(s.mouse) && !s.panning {
		render.Cursor(surf, s.mouse, s.style.Stroke, s.style.Width)
	}
	s.drawPanel(surf)
}

func (s *Session) drawPanel(surf render.Surface) {
	c := s.chrome
	surf.FillRect(c.bounds(float64(s.Height())), panelColor)
	surf.Text("SHAPEDRAW", geom.Pt(c.origin.X+panelPad, c.origin.Y+panelPad), fontSize, shape.White)

	drawButton(surf, c.kind)
	for _, b := range c.targets {
		drawButton(surf, b)
	}

	l := c.picker.Layout()
	bar := c.picker.Bar().Samples()
	rows := make([]shape.RGB, 0, len(bar)*l.BarHeight)
	for range l.BarHeight {
		rows = append(rows, bar...)
	}
	surf.Pixels(l.BarRect().Min, l.BarWidth, rows)
	surf.Pixels(l.FieldRect().Min, l.FieldSize, c.picker.Field().Samples())

	y := c.info.Y
	swatch := func(label string, col shape.RGB, set bool) {
		r := geom.RectXYWH(c.info.X, y, 16, 16)
		if set {
			surf.FillRect(r, col)
		}
		surf.StrokeRect(r, shape.White, 1)
		surf.Text(label, geom.Pt(c.info.X+24, y+4), fontSize, labelColor)
		y += rowHeight
	}
	swatch("stroke "+s.style.Stroke.Hex(), s.style.Stroke, true)
	fill := "fill none"
	if s.style.HasFill {
		fill = "fill " + s.style.Fill.Hex()
	}
	swatch(fill, s.style.Fill, s.style.HasFill)
	swatch("canvas "+s.style.Canvas.Hex(), s.style.Canvas, true)

	border := "off"
	if s.style.Border {
		border = "on"
	}
	for _, line := range []string{
		fmt.Sprintf("line width: %d", s.style.Width),
		fmt.Sprintf("border: %s", border),
		fmt.Sprintf("zoom: %d", s.view.Zoom()),
		fmt.Sprintf("shapes: %d", s.scene.Len()),
		s.status,
	} {
		if line != "" {
			surf.Text(line, geom.Pt(c.info.X, y), fontSize, labelColor)
		}
		y += rowHeight / 2
	}
}

func drawButton(surf render.Surface, b button) {
	col := buttonColor
	if b.selected {
		col = selectedColor
	} else if b.hover {
		col = hoverColor
	}
	surf.FillRect(b.rect, col)
	surf.StrokeRect(b.rect, borderColor, 1)
	surf.Text(b.text, geom.Pt(b.rect.Min.X+6, b.rect.Min.Y+7), fontSize, shape.White)
}
