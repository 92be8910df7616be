package editor

import (
	"testing"

	"github.com/bloodmagesoftware/forge/geom"
)

func TestCloneIsDeep(t *testing.T) {
	doc := Document{
		Colliders: []Collider{{
			ID:         "a",
			Name:       "wall",
			Type:       "solid",
			Points:     []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			Properties: map[string]string{"material": "stone"},
		}},
		Sprites:    []Sprite{{ID: "s1", Name: "tree", Width: 2, Height: 3}},
		Properties: map[string]string{"biome": "forest"},
	}

	clone := doc.Clone()
	clone.Colliders[0].Points[0] = geom.Point{X: 99, Y: 99}
	clone.Colliders[0].Properties["material"] = "wood"
	clone.Properties["biome"] = "desert"
	clone.Sprites[0].Name = "rock"

	if doc.Colliders[0].Points[0].X != 0 {
		t.Error("mutating a cloned point list must not touch the original")
	}
	if doc.Colliders[0].Properties["material"] != "stone" {
		t.Error("mutating cloned collider properties must not touch the original")
	}
	if doc.Properties["biome"] != "forest" {
		t.Error("mutating cloned document properties must not touch the original")
	}
	if doc.Sprites[0].Name != "tree" {
		t.Error("mutating a cloned sprite must not touch the original")
	}
}

func TestEqual(t *testing.T) {
	base := Document{
		Colliders: []Collider{{
			ID:     "a",
			Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		}},
	}

	if !base.Equal(base.Clone()) {
		t.Error("a document should equal its clone")
	}

	moved := base.Clone()
	moved.Colliders[0].Points[1] = geom.Point{X: 2, Y: 0}
	if base.Equal(moved) {
		t.Error("moving a point should break equality")
	}

	renamed := base.Clone()
	renamed.Colliders[0].Name = "wall"
	if base.Equal(renamed) {
		t.Error("renaming a collider should break equality")
	}

	withProp := base.Clone()
	withProp.Properties = map[string]string{"k": "v"}
	if base.Equal(withProp) {
		t.Error("adding a property should break equality")
	}

	// nil and empty property maps are the same thing structurally.
	empty := base.Clone()
	empty.Properties = map[string]string{}
	if !base.Equal(empty) {
		t.Error("nil and empty property maps should compare equal")
	}
}

func TestNormalizePrunesEmptyColliders(t *testing.T) {
	doc := Document{Colliders: []Collider{
		{ID: "empty"},
		{ID: "tri", Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
	}}

	out := doc.Normalize()
	if len(out.Colliders) != 1 || out.Colliders[0].ID != "tri" {
		t.Errorf("zero-point colliders should be pruned, got %d colliders", len(out.Colliders))
	}
	if len(doc.Colliders) != 2 {
		t.Error("Normalize must not mutate its receiver")
	}
}

func TestNormalizeAssignsIDs(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	doc := Document{
		Colliders: []Collider{
			{ID: "", Points: pts},
			{ID: "dup", Points: pts},
			{ID: "dup", Points: pts},
		},
		Sprites: []Sprite{{ID: ""}, {ID: "s"}, {ID: "s"}},
	}

	out := doc.Normalize()

	seen := make(map[string]bool)
	for _, c := range out.Colliders {
		if c.ID == "" {
			t.Error("normalized collider has an empty id")
		}
		if seen[c.ID] {
			t.Errorf("duplicate collider id %q after normalization", c.ID)
		}
		seen[c.ID] = true
	}
	if out.Colliders[1].ID != "dup" {
		t.Error("the first holder of an id should keep it")
	}

	seenSprites := make(map[string]bool)
	for _, s := range out.Sprites {
		if s.ID == "" || seenSprites[s.ID] {
			t.Errorf("sprite id %q not unique after normalization", s.ID)
		}
		seenSprites[s.ID] = true
	}
}

func TestColliderIndex(t *testing.T) {
	doc := Document{Colliders: []Collider{
		{ID: "a", Points: []geom.Point{{X: 0, Y: 0}}},
		{ID: "b", Points: []geom.Point{{X: 1, Y: 1}}},
	}}

	if i, ok := doc.ColliderIndex("b"); !ok || i != 1 {
		t.Errorf("expected index 1 for id b, got %d ok=%v", i, ok)
	}
	if _, ok := doc.ColliderIndex("missing"); ok {
		t.Error("unknown id should not resolve")
	}
	if _, ok := doc.ColliderIndex(""); ok {
		t.Error("empty id should never resolve")
	}
}
