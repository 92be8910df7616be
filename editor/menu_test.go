package editor

import (
	"testing"

	"github.com/bloodmagesoftware/forge/geom"
)

func menuDoc() Document {
	return Document{Colliders: []Collider{{
		ID:   "c1",
		Name: "Collider 1",
		Points: []geom.Point{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 10, Y: 10},
			{X: 0, Y: 10},
		},
	}}}
}

func TestContextMenuRanking(t *testing.T) {
	h := newHarness(t, menuDoc())
	c := h.c

	tests := []struct {
		name string
		x, y float32
		kind MenuActionKind
	}{
		{"near a vertex", 0.3, 0.3, MenuDeletePoint},
		{"on an edge midpoint", 5, 0.3, MenuInsertPoint},
		{"inside the body", 5, 5, MenuDeleteCollider},
		{"empty space", 50, 50, MenuCreateCollider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := c.ContextMenu(tt.x, tt.y)
			if !ok {
				t.Fatal("expected a context action")
			}
			if action.Kind != tt.kind {
				t.Errorf("got %v, want %v", action.Kind, tt.kind)
			}
		})
	}
}

func TestContextMenuDetails(t *testing.T) {
	h := newHarness(t, menuDoc())
	c := h.c

	action, ok := c.ContextMenu(10, 10)
	if !ok || action.Kind != MenuDeletePoint {
		t.Fatalf("expected delete-point, got %v ok=%v", action.Kind, ok)
	}
	if action.ColliderID != "c1" || action.PointIndex != 2 {
		t.Errorf("got collider %q point %d, want c1 point 2", action.ColliderID, action.PointIndex)
	}

	action, ok = c.ContextMenu(5, 10.4)
	if !ok || action.Kind != MenuInsertPoint {
		t.Fatalf("expected insert-point, got %v ok=%v", action.Kind, ok)
	}
	if action.EdgeIndex != 2 {
		t.Errorf("expected edge 2 (bottom), got %d", action.EdgeIndex)
	}
	// The insert position is the projection onto the edge, not the click.
	if action.Insert != (geom.Point{X: 5, Y: 10}) {
		t.Errorf("insert position = %v, want (5, 10)", action.Insert)
	}
}

func TestContextMenuDisabledWhileDrawing(t *testing.T) {
	h := newHarness(t, menuDoc())
	c := h.c

	c.StartDrawing()
	if _, ok := c.ContextMenu(50, 50); ok {
		t.Error("no context menu during an active draw session")
	}
}

func TestContextMenuIgnoresDegenerateColliders(t *testing.T) {
	doc := Document{Colliders: []Collider{{
		ID:     "line",
		Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
	}}}
	h := newHarness(t, doc)
	c := h.c

	action, ok := c.ContextMenu(5, 0)
	if !ok || action.Kind != MenuCreateCollider {
		t.Errorf("sub-3-point colliders must not hit-test, got %v", action.Kind)
	}
}

func TestInsertPoint(t *testing.T) {
	h := newHarness(t, menuDoc())
	c := h.c

	c.InsertPoint("c1", 0, geom.Point{X: 5, Y: 0})

	got := c.Document().Colliders[0].Points
	want := []geom.Point{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if h.commits != 1 {
		t.Errorf("insert should commit once, got %d", h.commits)
	}

	c.InsertPoint("c1", 99, geom.Point{X: 1, Y: 1})
	if len(c.Document().Colliders[0].Points) != 5 {
		t.Error("out-of-range edge index must be ignored")
	}
}

func TestDeletePointViaMenu(t *testing.T) {
	h := newHarness(t, menuDoc())
	c := h.c

	c.DeletePoint("c1", 1)
	got := c.Document().Colliders[0].Points
	if len(got) != 3 || got[1] != (geom.Point{X: 10, Y: 10}) {
		t.Errorf("unexpected points after delete: %v", got)
	}

	// At the 3-point floor now.
	c.DeletePoint("c1", 0)
	if len(c.Document().Colliders[0].Points) != 3 {
		t.Error("deleting below 3 points must be ignored")
	}
	if h.commits != 1 {
		t.Errorf("only the first delete should commit, got %d", h.commits)
	}
}

func TestDeleteColliderClearsSelection(t *testing.T) {
	h := newHarness(t, menuDoc())
	c := h.c
	c.Select("c1")

	c.DeleteCollider("c1")
	if len(c.Document().Colliders) != 0 {
		t.Fatal("collider should be gone")
	}
	if c.SelectedCollider() != "" || c.SelectedPoint() != -1 {
		t.Error("deleting the selected collider must clear the selection")
	}

	c.DeleteCollider("missing")
	if h.commits != 1 {
		t.Errorf("deleting an unknown id must not commit, got %d", h.commits)
	}
}

func TestCreateColliderFromMenu(t *testing.T) {
	h := newHarness(t, Document{})
	c := h.c

	action, ok := c.ContextMenu(40, 30)
	if !ok || action.Kind != MenuCreateCollider {
		t.Fatalf("expected create-collider, got %v", action.Kind)
	}

	c.StartDrawingAt(action.World)
	if c.Mode() != ModeDrawing {
		t.Fatalf("expected drawing mode, got %v", c.Mode())
	}
	pts := c.DrawingPoints()
	if len(pts) != 1 || pts[0] != (geom.Point{X: 40, Y: 30}) {
		t.Errorf("draw session should be seeded with the click position, got %v", pts)
	}
}
