package editor

import "github.com/bloodmagesoftware/forge/geom"

// MenuActionKind enumerates the context actions a right click can offer.
type MenuActionKind int

const (
	MenuDeletePoint MenuActionKind = iota
	MenuInsertPoint
	MenuDeleteCollider
	MenuCreateCollider
)

func (k MenuActionKind) String() string {
	switch k {
	case MenuDeletePoint:
		return "delete-point"
	case MenuInsertPoint:
		return "insert-point"
	case MenuDeleteCollider:
		return "delete-collider"
	case MenuCreateCollider:
		return "create-collider"
	default:
		return "unknown"
	}
}

// MenuAction describes the context action resolved for a right click.
// The owning UI renders it as a menu entry and invokes the matching
// mutation on the controller.
type MenuAction struct {
	Kind       MenuActionKind
	ColliderID string
	// PointIndex is set for MenuDeletePoint.
	PointIndex int
	// EdgeIndex and Insert are set for MenuInsertPoint; Insert is the
	// position on the edge the new point would occupy.
	EdgeIndex int
	Insert    geom.Point
	// World is the click position in world units.
	World geom.Point
}

// ContextMenu resolves a right click at screen coordinates into a
// context action. Hit candidates are ranked point > edge > polygon body
// > empty space, scanning every collider per rank in document order.
// Returns false while a draw session is active.
func (c *Controller) ContextMenu(sx, sy float32) (MenuAction, bool) {
	if c.mode == ModeDrawing {
		return MenuAction{}, false
	}

	wx, wy := c.screenToWorld(sx, sy)
	threshold := c.worldThreshold()
	world := geom.Point{X: wx, Y: wy}

	for _, collider := range c.doc.Colliders {
		if len(collider.Points) < 3 {
			continue
		}
		if pi, ok := geom.PointAt(collider.Points, wx, wy, threshold); ok {
			return MenuAction{
				Kind:       MenuDeletePoint,
				ColliderID: collider.ID,
				PointIndex: pi,
				World:      world,
			}, true
		}
	}

	for _, collider := range c.doc.Colliders {
		if len(collider.Points) < 3 {
			continue
		}
		if hit, ok := geom.EdgeAt(collider.Points, wx, wy, threshold); ok {
			return MenuAction{
				Kind:       MenuInsertPoint,
				ColliderID: collider.ID,
				EdgeIndex:  hit.Edge,
				Insert:     hit.Insert,
				World:      world,
			}, true
		}
	}

	for _, collider := range c.doc.Colliders {
		if len(collider.Points) < 3 {
			continue
		}
		if geom.PointInPolygon(wx, wy, collider.Points) {
			return MenuAction{
				Kind:       MenuDeleteCollider,
				ColliderID: collider.ID,
				World:      world,
			}, true
		}
	}

	return MenuAction{Kind: MenuCreateCollider, World: world}, true
}

// DeletePoint removes a point from a collider as a committed edit,
// keeping the 3-point floor. Unknown ids and out-of-range indices are
// ignored.
func (c *Controller) DeletePoint(colliderID string, index int) {
	i, ok := c.doc.ColliderIndex(colliderID)
	if !ok {
		return
	}
	points := c.doc.Colliders[i].Points
	if len(points) <= 3 || index < 0 || index >= len(points) {
		return
	}

	doc := c.doc.Clone()
	p := doc.Colliders[i].Points
	doc.Colliders[i].Points = append(p[:index], p[index+1:]...)
	if c.selected == colliderID {
		c.selectedPoint = -1
	}
	c.commit(doc)
}

// InsertPoint inserts a point into a collider after edge edgeIndex, at
// the given world position (typically MenuAction.Insert).
func (c *Controller) InsertPoint(colliderID string, edgeIndex int, at geom.Point) {
	i, ok := c.doc.ColliderIndex(colliderID)
	if !ok {
		return
	}
	points := c.doc.Colliders[i].Points
	if edgeIndex < 0 || edgeIndex >= len(points) {
		return
	}

	doc := c.doc.Clone()
	p := doc.Colliders[i].Points
	inserted := make([]geom.Point, 0, len(p)+1)
	inserted = append(inserted, p[:edgeIndex+1]...)
	inserted = append(inserted, at)
	inserted = append(inserted, p[edgeIndex+1:]...)
	doc.Colliders[i].Points = inserted
	c.commit(doc)
}

// DeleteCollider removes a collider entirely.
func (c *Controller) DeleteCollider(colliderID string) {
	i, ok := c.doc.ColliderIndex(colliderID)
	if !ok {
		return
	}

	doc := c.doc.Clone()
	doc.Colliders = append(doc.Colliders[:i], doc.Colliders[i+1:]...)
	if c.selected == colliderID {
		c.selected = ""
		c.selectedPoint = -1
	}
	c.commit(doc)
}
