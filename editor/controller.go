// Package editor implements the interactive editing kernel behind the
// map and tileset authoring tools: a polygon collider editor driven by
// pointer and keyboard events, with every mutation routed through a
// snapshot-based undo history.
//
// The package owns no rendering, windowing or persistence. The embedding
// application funnels Gio pointer/key events into a Controller and
// receives committed and live-preview document values through callbacks.
package editor

import (
	"math"

	"github.com/bloodmagesoftware/forge/geom"
	"github.com/bloodmagesoftware/forge/history"
)

// Mode identifies the active tool mode. Exactly one mode is active at a
// time; entering a mode clears the transient state of the previous one.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeDraggingPoint
	ModeDraggingPolygon
	ModePanning
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModeDraggingPoint:
		return "dragging-point"
	case ModeDraggingPolygon:
		return "dragging-polygon"
	case ModePanning:
		return "panning"
	default:
		return "unknown"
	}
}

// Config holds the tunable editor settings.
type Config struct {
	// GridSnap snaps drawn and dragged points to the integer grid.
	GridSnap bool
	// MinZoom and MaxZoom clamp the zoom level (1.0 = 100%).
	MinZoom float32
	MaxZoom float32
	// ZoomStep is the zoom factor change per scroll notch.
	ZoomStep float32
	// HitThreshold is the hit-test radius in screen pixels. It is divided
	// by the current zoom before geometry queries so the radius stays
	// constant on screen.
	HitThreshold float32
	// HistoryLimit bounds the undo stack (0 uses history.DefaultLimit).
	HistoryLimit int
}

// DefaultConfig returns the editor defaults.
func DefaultConfig() Config {
	return Config{
		GridSnap:     false,
		MinZoom:      0.1,
		MaxZoom:      10.0,
		ZoomStep:     0.1,
		HitThreshold: 15.0,
		HistoryLimit: history.DefaultLimit,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MinZoom <= 0 {
		c.MinZoom = def.MinZoom
	}
	if c.MaxZoom <= c.MinZoom {
		c.MaxZoom = def.MaxZoom
	}
	if c.ZoomStep <= 0 {
		c.ZoomStep = def.ZoomStep
	}
	if c.HitThreshold <= 0 {
		c.HitThreshold = def.HitThreshold
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = def.HistoryLimit
	}
	return c
}

// propertyRename tracks an in-progress property key rename. It lives in
// interaction state, never in the document, so half-typed keys are never
// committed.
type propertyRename struct {
	colliderID string // "" renames a document-level property
	oldKey     string
	newKey     string
}

// Controller interprets pointer and keyboard events against the current
// document and tool mode. It owns all transient interaction state; the
// history manager owns the snapshot stack; the embedding UI owns nothing
// and only re-renders the values it is handed.
type Controller struct {
	cfg     Config
	history *history.Manager[Document]

	// doc is the current working value: the committed document, or the
	// live in-drag value while a batch is open.
	doc      Document
	cleanDoc Document

	mode          Mode
	selected      string // selected collider id, "" for none
	selectedPoint int    // point index within the selected collider, -1 for none

	// Drawing state
	drawing []geom.Point

	// Drag state. dragOrigin holds the point list captured at drag start;
	// move deltas are always applied to these originals so rounding error
	// never compounds across move events. dragBase is the whole document
	// at drag start, restored when the gesture is invalidated.
	dragPoint  int
	dragAnchor geom.Point
	dragOrigin []geom.Point
	dragBase   Document

	// Canvas state. The view transform is not document state and never
	// enters undo history.
	viewOffsetX float32
	viewOffsetY float32
	zoom        float32

	lastMouseX float32
	lastMouseY float32

	// panReturn is the mode to resume when a pan gesture ends. Panning is
	// view navigation, not a tool switch, so it suspends the active mode
	// instead of resetting it.
	panReturn Mode

	pendingRename *propertyRename

	onCommit  func(Document)
	onPreview func(Document)
}

// NewController creates a controller for the given document. onCommit is
// invoked with the new document value after every committed edit (and
// after undo/redo); onPreview is invoked with the live value during an
// active drag. Either callback may be nil.
func NewController(cfg Config, doc Document, onCommit, onPreview func(Document)) *Controller {
	cfg = cfg.withDefaults()
	doc = doc.Normalize()
	return &Controller{
		cfg:           cfg,
		history:       history.New(doc, Document.Equal, cfg.HistoryLimit),
		doc:           doc,
		cleanDoc:      doc,
		selectedPoint: -1,
		dragPoint:     -1,
		zoom:          1.0,
		onCommit:      onCommit,
		onPreview:     onPreview,
	}
}

// Document returns the current working document value.
func (c *Controller) Document() Document {
	return c.doc
}

// Mode returns the active tool mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SelectedCollider returns the id of the selected collider, or "".
func (c *Controller) SelectedCollider() string {
	return c.selected
}

// SelectedPoint returns the selected point index, or -1.
func (c *Controller) SelectedPoint() int {
	return c.selectedPoint
}

// DrawingPoints returns a copy of the in-progress draw points.
func (c *Controller) DrawingPoints() []geom.Point {
	return append([]geom.Point(nil), c.drawing...)
}

// Pan returns the current view offset in screen pixels.
func (c *Controller) Pan() (x, y float32) {
	return c.viewOffsetX, c.viewOffsetY
}

// Zoom returns the current zoom level.
func (c *Controller) Zoom() float32 {
	return c.zoom
}

// GridSnap reports whether grid snapping is enabled.
func (c *Controller) GridSnap() bool {
	return c.cfg.GridSnap
}

// SetGridSnap toggles grid snapping.
func (c *Controller) SetGridSnap(on bool) {
	c.cfg.GridSnap = on
}

// CanUndo reports whether an undo step is available.
func (c *Controller) CanUndo() bool {
	return c.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (c *Controller) CanRedo() bool {
	return c.history.CanRedo()
}

// Undo steps the document back one history entry. No-op mid-gesture or
// with empty history.
func (c *Controller) Undo() bool {
	if c.mode != ModeIdle {
		return false
	}
	doc, ok := c.history.Undo()
	if !ok {
		return false
	}
	c.applyHistory(doc)
	return true
}

// Redo steps the document forward one history entry.
func (c *Controller) Redo() bool {
	if c.mode != ModeIdle {
		return false
	}
	doc, ok := c.history.Redo()
	if !ok {
		return false
	}
	c.applyHistory(doc)
	return true
}

func (c *Controller) applyHistory(doc Document) {
	c.doc = doc
	// Selection may now reference entities that no longer exist; every
	// mutation path re-resolves ids, so a dangling selection is harmless.
	if _, ok := doc.ColliderIndex(c.selected); !ok {
		c.selected = ""
		c.selectedPoint = -1
	}
	if c.onCommit != nil {
		c.onCommit(doc)
	}
}

// Load replaces the edit target with a new document and discards all
// history. Undo history must never leak across unrelated documents.
func (c *Controller) Load(doc Document) {
	doc = doc.Normalize()
	c.doc = doc
	c.cleanDoc = doc
	c.history.Reset(doc)
	c.enterMode(ModeIdle)
	c.selected = ""
	c.selectedPoint = -1
	if c.onCommit != nil {
		c.onCommit(doc)
	}
}

// Select selects the collider with the given id, or clears the selection
// for an unknown id. Used by list UIs outside the canvas.
func (c *Controller) Select(id string) {
	if _, ok := c.doc.ColliderIndex(id); ok {
		c.selected = id
	} else {
		c.selected = ""
	}
	c.selectedPoint = -1
	c.pendingRename = nil
}

// Dirty reports whether the document differs from the last MarkClean.
func (c *Controller) Dirty() bool {
	return !c.doc.Equal(c.cleanDoc)
}

// MarkClean records the current document as the saved state. Called by
// the owning application after it persists the document.
func (c *Controller) MarkClean() {
	c.cleanDoc = c.doc
}

// StartDrawing begins a new polygon draw session.
func (c *Controller) StartDrawing() {
	c.enterMode(ModeDrawing)
}

// StartDrawingAt begins a draw session seeded with a first point, in
// world units. Used by the create-collider context action.
func (c *Controller) StartDrawingAt(p geom.Point) {
	c.enterMode(ModeDrawing)
	c.drawing = append(c.drawing, c.snapPoint(p))
}

// enterMode switches the active tool mode, clearing all transient state
// from the previous mode so two modes can never overlap.
func (c *Controller) enterMode(m Mode) {
	c.drawing = nil
	c.dragPoint = -1
	c.dragOrigin = nil
	c.dragBase = Document{}
	c.pendingRename = nil
	c.mode = m
}

// screenToWorld converts screen coordinates to world coordinates through
// the current pan and zoom.
func (c *Controller) screenToWorld(sx, sy float32) (float32, float32) {
	return (sx - c.viewOffsetX) / c.zoom, (sy - c.viewOffsetY) / c.zoom
}

// worldThreshold returns the hit-test threshold in world units, so the
// hit radius stays constant in screen pixels at any zoom.
func (c *Controller) worldThreshold() float32 {
	return c.cfg.HitThreshold / c.zoom
}

func (c *Controller) snapPoint(p geom.Point) geom.Point {
	if !c.cfg.GridSnap {
		return p
	}
	return geom.Point{
		X: float32(math.Round(float64(p.X))),
		Y: float32(math.Round(float64(p.Y))),
	}
}

// selectedColliderIndex resolves the current selection against the
// working document.
func (c *Controller) selectedColliderIndex() (int, bool) {
	return c.doc.ColliderIndex(c.selected)
}

// commit normalizes and records doc as a new history entry and notifies
// the owning application. Commits are whole-value replacements.
func (c *Controller) commit(doc Document) {
	doc = doc.Normalize()
	c.doc = doc
	c.history.Commit(doc)
	if c.onCommit != nil {
		c.onCommit(doc)
	}
}

// preview publishes doc as the live in-drag value. The history manager is
// batching, so this updates the deferred live value without pushing a
// snapshot.
func (c *Controller) preview(doc Document) {
	c.doc = doc
	c.history.Commit(doc)
	if c.onPreview != nil {
		c.onPreview(doc)
	}
}
