// seehuhn.de/go/sketch - a layered paint engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sketch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch/compose"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/history"
	"seehuhn.de/go/sketch/layer"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/selection"
	"seehuhn.de/go/sketch/shape"
)

// Pointer events are shared with the selection controller.
type (
	Event     = selection.Event
	EventKind = selection.EventKind
)

const (
	PointerDown  = selection.PointerDown
	PointerMove  = selection.PointerMove
	PointerUp    = selection.PointerUp
	PointerLeave = selection.PointerLeave
)

var (
	// ErrNoSelection is returned by property panel operations when no
	// shape is selected.
	ErrNoSelection = errors.New("no shape selected")

	// ErrInvalidSize is returned for shape sizes below one.
	ErrInvalidSize = errors.New("size must be at least 1")

	// ErrInvalidStyle is returned for out-of-range style inputs.
	ErrInvalidStyle = errors.New("invalid style value")
)

// Transition reports what a pointer event did.
type Transition struct {
	Tool Tool

	// Selection is the controller transition, for the select tool.
	Selection selection.Transition

	// Ignored is set when a gesture was rejected because the active
	// layer is hidden.
	Ignored bool

	// Snapshot is set when the event recorded a history entry.
	Snapshot bool
}

// Session is the complete state of one drawing.
//
// A Session is not safe for concurrent use.
type Session struct {
	cfg   *config.Config
	log   *slog.Logger
	store *layer.Store
	hist  *history.Manager
	sel   *selection.Controller
	r     *raster.Rasteriser
	text  *raster.Typesetter

	tool    Tool
	color   color.NRGBA
	width   int
	opacity int // percent

	preview     *image.RGBA
	showPreview bool
	out         *image.RGBA

	drawing     bool
	start, last vec.Vec2
	textAnchor  vec.Vec2
	textPending bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger.  By default log output is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a session with one white background layer and records the
// initial history entry.  A nil cfg selects the defaults.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	tool, err := ParseTool(cfg.Style.Tool)
	if err != nil {
		return nil, err
	}
	ts, err := raster.NewTypesetter()
	if err != nil {
		return nil, err
	}

	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	store := layer.New(w, h)
	s := &Session{
		cfg:   cfg,
		log:   slog.New(slog.DiscardHandler),
		store: store,
		hist: history.New(
			history.WithDepth(cfg.History.Depth),
			history.WithShapes(cfg.History.RestoreShapes),
		),
		sel:     selection.New(store),
		text:    ts,
		tool:    tool,
		preview: image.NewRGBA(image.Rect(0, 0, w, h)),
		out:     image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	s.r = raster.ForImage(s.out)
	for _, opt := range opts {
		opt(s)
	}

	s.sel.HandleTolerance = cfg.Selection.HandleTolerance
	s.sel.RotationOffset = cfg.Selection.RotationOffset
	s.sel.LineTolerance = cfg.Selection.LineTolerance
	s.sel.Logger = s.log

	if err := s.SetColor(cfg.Style.Color); err != nil {
		return nil, err
	}
	if err := s.SetLineWidth(cfg.Style.Width); err != nil {
		return nil, err
	}
	if err := s.SetOpacity(cfg.Style.Opacity); err != nil {
		return nil, err
	}

	s.render()
	s.hist.Snapshot(s.store)
	s.log.Debug("session created", "width", w, "height", h, "tool", tool)
	return s, nil
}

// Config returns the configuration the session was created with.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Store returns the layer store.
func (s *Session) Store() *layer.Store {
	return s.store
}

// History returns the undo history.
func (s *Session) History() *history.Manager {
	return s.hist
}

// Tool returns the active tool.
func (s *Session) Tool() Tool {
	return s.tool
}

// SetTool changes the active tool.  Any tool other than Select drops the
// selection, and a gesture in progress is abandoned.
func (s *Session) SetTool(t Tool) {
	if t != Select {
		s.sel.Deselect()
	}
	s.drawing = false
	s.textPending = false
	s.clearPreview()
	s.tool = t
	s.render()
}

// SetColor sets the stroke colour from a hex string like "#ff8800".
func (s *Session) SetColor(hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("colour %q: %w", hex, ErrInvalidStyle)
	}
	r, g, b := c.RGB255()
	s.color = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	return nil
}

// SetLineWidth sets the stroke width in pixels.
func (s *Session) SetLineWidth(w int) error {
	if w < 1 {
		return fmt.Errorf("line width %d: %w", w, ErrInvalidStyle)
	}
	s.width = w
	return nil
}

// SetOpacity sets the stroke opacity in percent.
func (s *Session) SetOpacity(percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("opacity %d%%: %w", percent, ErrInvalidStyle)
	}
	s.opacity = percent
	return nil
}

// Style returns the current stroke style.
func (s *Session) Style() shape.Style {
	return shape.Style{
		Color:   s.color,
		Width:   float64(s.width),
		Opacity: float64(s.opacity) / 100,
	}
}

// HandleEvent processes one pointer event with the active tool.
func (s *Session) HandleEvent(ev Event) Transition {
	tr := Transition{Tool: s.tool}

	if s.tool == Select {
		tr.Selection = s.sel.Handle(ev)
		if tr.Selection.Committed {
			s.snapshot()
			tr.Snapshot = true
		}
		s.render()
		return tr
	}

	p := ev.Pos()
	switch ev.Kind {
	case PointerDown:
		if !s.store.Active().Visible {
			s.log.Debug("gesture ignored on hidden layer", "layer", s.store.ActiveIndex(), "tool", s.tool)
			tr.Ignored = true
			return tr
		}
		s.startGesture(p)
	case PointerMove:
		if s.drawing {
			s.continueGesture(p)
		}
	case PointerUp, PointerLeave:
		if s.drawing {
			s.endGesture(p)
			tr.Snapshot = true
		}
	}
	return tr
}

func (s *Session) startGesture(p vec.Vec2) {
	s.start, s.last = p, p
	if s.tool == Text {
		s.textAnchor = p
		s.textPending = true
		return
	}
	s.drawing = true
	if _, ok := s.tool.shapeKind(); ok {
		s.clearPreview()
		s.showPreview = true
	}
}

func (s *Session) continueGesture(p vec.Vec2) {
	defer func() { s.last = p }()

	if kind, ok := s.tool.shapeKind(); ok {
		clear(s.preview.Pix)
		s.setStroke(graphics.LineCapButt, graphics.LineJoinMiter)
		pp := shape.PreviewPath(kind, s.start.X, s.start.Y, p.X, p.Y)
		s.r.Stroke(s.preview, pp, s.Style().StrokeColor(), raster.OpOver)
		s.render()
		return
	}

	l := s.store.Active()
	if !s.tool.freehand() || !l.Visible {
		return
	}
	switch s.tool {
	case Brush, Pencil:
		s.setStroke(graphics.LineCapRound, graphics.LineJoinRound)
		s.r.Stroke(l.Surface, raster.LinePath(s.last, p), s.Style().StrokeColor(), raster.OpOver)
	case Eraser:
		s.r.Disc(l.Surface, p, float64(s.width)/2, color.Transparent, raster.OpErase)
	}
	s.render()
}

func (s *Session) endGesture(p vec.Vec2) {
	s.drawing = false
	l := s.store.Active()

	if kind, ok := s.tool.shapeKind(); ok {
		s.clearPreview()
		if l.Visible {
			sh, err := shape.FromDrag(kind, s.start.X, s.start.Y, p.X, p.Y, s.Style(), s.store.ActiveIndex())
			if err == nil {
				err = s.store.AddShape(sh)
			}
			if err != nil {
				s.log.Warn("creating shape", "kind", kind, "err", err)
			} else {
				s.sel.Select(sh)
				s.log.Debug("shape created", "kind", kind, "id", sh.ID)
			}
		}
	}

	if s.tool == Fill && l.Visible {
		raster.FloodFill(l.Surface, s.last.X, s.last.Y, s.color, s.cfg.Fill.Tolerance)
	}

	s.render()
	s.snapshot()
}

// PendingText returns the anchor recorded by the text tool, if any.
func (s *Session) PendingText() (vec.Vec2, bool) {
	return s.textAnchor, s.textPending
}

// CommitText stamps text onto the active layer with its top-left corner
// near (x, y).  The font size is three times the line width.  Empty or
// blank text, or a hidden active layer, leaves the drawing unchanged and
// returns false.
func (s *Session) CommitText(text string, x, y float64) bool {
	s.textPending = false
	if strings.TrimSpace(text) == "" {
		return false
	}
	l := s.store.Active()
	if !l.Visible {
		return false
	}

	size := float64(3 * s.width)
	if err := s.text.Stamp(l.Surface, text, x, y+size, size, s.Style().StrokeColor()); err != nil {
		s.log.Warn("stamping text", "err", err)
		return false
	}
	s.render()
	s.snapshot()
	return true
}

// Undo steps back one history entry.  A selection whose shape no longer
// exists is dropped.
func (s *Session) Undo() bool {
	if !s.hist.Undo(s.store) {
		return false
	}
	s.afterRestore()
	return true
}

// Redo steps forward one history entry.
func (s *Session) Redo() bool {
	if !s.hist.Redo(s.store) {
		return false
	}
	s.afterRestore()
	return true
}

// CanUndo reports whether Undo would succeed.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

func (s *Session) afterRestore() {
	if s.sel.Selected() == nil {
		s.sel.Deselect()
	}
	s.drawing = false
	s.clearPreview()
	s.render()
}

// Frame is one composited view of the drawing.
type Frame struct {
	Image *image.RGBA

	// Overlay is the selection decoration, or nil without selection.
	Overlay *compose.Overlay
}

// Frame returns the current composited image and selection decoration,
// with the decoration in surface coordinates.  The image is owned by the
// session and changes with the next event.
func (s *Session) Frame() Frame {
	w, h := s.store.Size()
	return s.FrameAt(w, h)
}

// FrameAt is like Frame, but the decoration is scaled for showing the
// image at displayW × displayH screen units.  Non-positive sizes select
// the surface size.
func (s *Session) FrameAt(displayW, displayH int) Frame {
	f := Frame{Image: s.out}
	sh := s.sel.Selected()
	if sh == nil {
		return f
	}
	w, h := s.store.Size()
	if displayW <= 0 {
		displayW = w
	}
	if displayH <= 0 {
		displayH = h
	}
	sx := float64(displayW) / float64(w)
	sy := float64(displayH) / float64(h)
	ov := compose.NewOverlay(sh, sx, sy, s.cfg.Selection.RotationOffset)
	f.Overlay = &ov
	return f
}

func (s *Session) setStroke(cp graphics.LineCapStyle, join graphics.LineJoinStyle) {
	s.r.CTM = matrix.Identity
	s.r.Width = float64(s.width)
	s.r.Cap = cp
	s.r.Join = join
}

func (s *Session) clearPreview() {
	clear(s.preview.Pix)
	s.showPreview = false
}

func (s *Session) render() {
	var preview *image.RGBA
	if s.showPreview {
		preview = s.preview
	}
	compose.Render(s.out, s.store, preview)
}

func (s *Session) snapshot() {
	s.hist.Snapshot(s.store)
	s.log.Debug("snapshot", "entries", s.hist.Len(), "cursor", s.hist.Cursor())
}
