package editor

import (
	"fmt"

	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/bloodmagesoftware/forge/geom"
)

// HandlePointer processes a pointer event in screen coordinates. Events
// are interpreted strictly in arrival order; a commit caused by an
// earlier event always precedes one caused by a later event.
func (c *Controller) HandlePointer(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		c.pointerPress(ev)
	case pointer.Drag, pointer.Move:
		c.pointerMove(ev)
	case pointer.Release, pointer.Cancel:
		c.pointerRelease(ev)
	case pointer.Scroll:
		c.pointerScroll(ev)
	}
}

func (c *Controller) pointerPress(ev pointer.Event) {
	// Panning takes priority over any hit for the middle button or
	// shift+left. It suspends the active mode rather than entering it
	// through enterMode: an in-progress draw session survives the pan and
	// resumes on release.
	if ev.Buttons == pointer.ButtonTertiary ||
		(ev.Buttons == pointer.ButtonPrimary && ev.Modifiers.Contain(key.ModShift)) {
		if c.mode == ModeIdle || c.mode == ModeDrawing {
			c.panReturn = c.mode
			c.mode = ModePanning
			c.lastMouseX = ev.Position.X
			c.lastMouseY = ev.Position.Y
		}
		return
	}

	if ev.Buttons != pointer.ButtonPrimary {
		return
	}

	switch c.mode {
	case ModeDrawing:
		c.drawingPress(ev.Position.X, ev.Position.Y)
	case ModeIdle:
		c.idlePress(ev.Position.X, ev.Position.Y)
	}
}

// drawingPress appends a point to the draw session, or closes the
// polygon when the click lands near the first point.
func (c *Controller) drawingPress(sx, sy float32) {
	wx, wy := c.screenToWorld(sx, sy)
	p := c.snapPoint(geom.Point{X: wx, Y: wy})

	if geom.CanClose(c.drawing, p.X, p.Y, c.worldThreshold()) {
		c.finishDrawing()
		return
	}
	c.drawing = append(c.drawing, p)
}

// finishDrawing turns the draw session into a new collider and commits
// it. No-op below 3 points.
func (c *Controller) finishDrawing() {
	if len(c.drawing) < 3 {
		return
	}

	points := append([]geom.Point(nil), c.drawing...)
	// Store polygons with positive winding regardless of draw direction.
	if geom.SignedArea(points) < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	doc := c.doc.Clone()
	collider := Collider{
		ID:     "", // assigned by normalization
		Name:   fmt.Sprintf("Collider %d", len(doc.Colliders)+1),
		Type:   "solid",
		Points: points,
	}
	doc.Colliders = append(doc.Colliders, collider)

	c.enterMode(ModeIdle)
	c.commit(doc)
	// Normalization assigned the id; select the new collider.
	c.selected = c.doc.Colliders[len(c.doc.Colliders)-1].ID
	c.selectedPoint = -1
}

// idlePress resolves a left click in idle mode: start dragging a point or
// the whole body of the selected collider, otherwise update the
// selection.
func (c *Controller) idlePress(sx, sy float32) {
	wx, wy := c.screenToWorld(sx, sy)
	threshold := c.worldThreshold()

	// Clicks on the selected collider start a drag gesture.
	if i, ok := c.selectedColliderIndex(); ok {
		points := c.doc.Colliders[i].Points
		if len(points) >= 3 {
			if pi, ok := geom.PointAt(points, wx, wy, threshold); ok {
				c.startDrag(ModeDraggingPoint, i, pi, wx, wy)
				return
			}
			if geom.PointInPolygon(wx, wy, points) {
				c.startDrag(ModeDraggingPolygon, i, -1, wx, wy)
				return
			}
		}
	}

	// Otherwise select whatever is under the cursor: points win over
	// bodies, and colliders are scanned in document order.
	for _, collider := range c.doc.Colliders {
		if len(collider.Points) < 3 {
			continue
		}
		if pi, ok := geom.PointAt(collider.Points, wx, wy, threshold); ok {
			c.selected = collider.ID
			c.selectedPoint = pi
			return
		}
	}
	for _, collider := range c.doc.Colliders {
		if len(collider.Points) < 3 {
			continue
		}
		if geom.PointInPolygon(wx, wy, collider.Points) {
			c.selected = collider.ID
			c.selectedPoint = -1
			return
		}
	}

	c.selected = ""
	c.selectedPoint = -1
}

// startDrag opens a history batch and captures the drag baseline: the
// anchor world position and a copy of the original point list.
func (c *Controller) startDrag(mode Mode, colliderIndex, pointIndex int, wx, wy float32) {
	c.history.StartBatch()
	c.enterMode(mode)
	c.dragPoint = pointIndex
	if pointIndex >= 0 {
		c.selectedPoint = pointIndex
	}
	c.dragAnchor = geom.Point{X: wx, Y: wy}
	c.dragOrigin = append([]geom.Point(nil), c.doc.Colliders[colliderIndex].Points...)
	c.dragBase = c.doc
}

func (c *Controller) pointerMove(ev pointer.Event) {
	switch c.mode {
	case ModePanning:
		c.viewOffsetX += ev.Position.X - c.lastMouseX
		c.viewOffsetY += ev.Position.Y - c.lastMouseY
		c.lastMouseX = ev.Position.X
		c.lastMouseY = ev.Position.Y
	case ModeDraggingPoint:
		c.dragPointMove(ev.Position.X, ev.Position.Y)
	case ModeDraggingPolygon:
		c.dragPolygonMove(ev.Position.X, ev.Position.Y)
	}
}

func (c *Controller) dragPointMove(sx, sy float32) {
	i, ok := c.selectedColliderIndex()
	if !ok || c.dragPoint < 0 || c.dragPoint >= len(c.doc.Colliders[i].Points) {
		c.abortDrag()
		return
	}

	wx, wy := c.screenToWorld(sx, sy)
	doc := c.doc.Clone()
	doc.Colliders[i].Points[c.dragPoint] = c.snapPoint(geom.Point{X: wx, Y: wy})
	c.preview(doc)
}

func (c *Controller) dragPolygonMove(sx, sy float32) {
	i, ok := c.selectedColliderIndex()
	if !ok || len(c.dragOrigin) != len(c.doc.Colliders[i].Points) {
		c.abortDrag()
		return
	}

	wx, wy := c.screenToWorld(sx, sy)
	delta := geom.Point{X: wx - c.dragAnchor.X, Y: wy - c.dragAnchor.Y}
	// Snapping the delta rather than each vertex keeps the shape intact.
	delta = c.snapPoint(delta)

	doc := c.doc.Clone()
	points := doc.Colliders[i].Points
	for j, origin := range c.dragOrigin {
		points[j] = geom.Point{X: origin.X + delta.X, Y: origin.Y + delta.Y}
	}
	c.preview(doc)
}

// abortDrag handles a drag invalidated mid-gesture (the target collider
// or selection went away under it): the document returns to the value
// captured at drag start and the batch closes on that baseline, so the
// gesture degrades to a no-op with no history entry and no partial
// movement left behind.
func (c *Controller) abortDrag() {
	doc := c.dragBase
	c.doc = doc
	c.history.EndBatch(doc)
	c.enterMode(ModeIdle)
	if c.onCommit != nil {
		c.onCommit(doc)
	}
}

func (c *Controller) pointerRelease(ev pointer.Event) {
	switch c.mode {
	case ModePanning:
		c.mode = c.panReturn
		c.panReturn = ModeIdle
	case ModeDraggingPoint, ModeDraggingPolygon:
		doc := c.doc.Normalize()
		c.doc = doc
		c.history.EndBatch(doc)
		c.enterMode(ModeIdle)
		if c.onCommit != nil {
			c.onCommit(doc)
		}
	}
}

// pointerScroll zooms towards the cursor. Zoom is view state, not
// document state, so it never enters undo history.
func (c *Controller) pointerScroll(ev pointer.Event) {
	if !ev.Modifiers.Contain(key.ModCtrl) {
		return
	}

	// Scroll.Y is positive when scrolling up (zoom in), negative when
	// scrolling down (zoom out).
	factor := 1.0 + ev.Scroll.Y*c.cfg.ZoomStep
	if factor <= 0 {
		return
	}
	newZoom := c.zoom * factor
	if newZoom < c.cfg.MinZoom {
		newZoom = c.cfg.MinZoom
	}
	if newZoom > c.cfg.MaxZoom {
		newZoom = c.cfg.MaxZoom
	}
	if newZoom == c.zoom {
		return
	}

	// Adjust the offset so the world point under the cursor stays fixed
	// on screen.
	wx, wy := c.screenToWorld(ev.Position.X, ev.Position.Y)
	c.zoom = newZoom
	c.viewOffsetX = ev.Position.X - wx*newZoom
	c.viewOffsetY = ev.Position.Y - wy*newZoom
}

// HandleKey processes a keyboard event.
func (c *Controller) HandleKey(ev key.Event) {
	if ev.State != key.Press {
		return
	}

	switch ev.Name {
	case key.NameEscape:
		c.escape()
	case key.NameReturn, key.NameEnter:
		if c.mode == ModeDrawing {
			c.finishDrawing()
		}
	case key.NameDeleteForward, key.NameDeleteBackward:
		c.deleteSelectedPoint()
	}
}

// escape cancels the draw session (discarding pending points with no
// history effect) or clears the selection.
func (c *Controller) escape() {
	switch c.mode {
	case ModeDrawing:
		c.enterMode(ModeIdle)
	case ModeIdle:
		c.selected = ""
		c.selectedPoint = -1
		c.pendingRename = nil
	}
}

// deleteSelectedPoint removes the selected point as a discrete committed
// edit. A collider keeps at least 3 points while being edited; requests
// below the floor are silently ignored.
func (c *Controller) deleteSelectedPoint() {
	if c.mode != ModeIdle || c.selectedPoint < 0 {
		return
	}
	i, ok := c.selectedColliderIndex()
	if !ok {
		return
	}
	points := c.doc.Colliders[i].Points
	if len(points) <= 3 || c.selectedPoint >= len(points) {
		return
	}

	doc := c.doc.Clone()
	p := doc.Colliders[i].Points
	doc.Colliders[i].Points = append(p[:c.selectedPoint], p[c.selectedPoint+1:]...)
	c.selectedPoint = -1
	c.commit(doc)
}
