package editor

import (
	"github.com/google/uuid"

	"github.com/bloodmagesoftware/forge/geom"
)

type (
	// Document is the undo-tracked payload of one editing surface. It is
	// treated as an immutable value: every mutation works on a deep copy
	// and replaces the whole document, so stored history snapshots are
	// never aliased by live editing state.
	Document struct {
		// Colliders is the list of collision shapes (polygons).
		// Those are not visual, only for collision detection of static
		// objects like walls, buildings, trees, etc.
		Colliders []Collider `yaml:"colliders"`
		// Sprites is a list of visual objects layered on the map.
		Sprites []Sprite `yaml:"sprites,omitempty"`
		// Properties holds arbitrary document-level metadata.
		Properties map[string]string `yaml:"properties,omitempty"`
	}

	// Collider is a polygon collision shape. A collider with fewer than 3
	// points is incomplete and excluded from hit-testing and selection.
	Collider struct {
		ID     string       `yaml:"id"`
		Name   string       `yaml:"name"`
		Type   string       `yaml:"type"`
		Points []geom.Point `yaml:"points"`
		// Properties holds arbitrary per-collider metadata.
		Properties map[string]string `yaml:"properties,omitempty"`
	}

	// Sprite is a visual object placed on the map.
	// By default, 256px is 1 world unit.
	Sprite struct {
		ID      string  `yaml:"id"`
		Name    string  `yaml:"name"`
		X       float32 `yaml:"x"`
		Y       float32 `yaml:"y"`
		Width   float32 `yaml:"width"`
		Height  float32 `yaml:"height"`
		Texture string  `yaml:"texture"`
	}
)

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	out.Colliders = make([]Collider, len(d.Colliders))
	for i, c := range d.Colliders {
		out.Colliders[i] = c.Clone()
	}
	if d.Sprites != nil {
		out.Sprites = append([]Sprite(nil), d.Sprites...)
	}
	out.Properties = cloneProperties(d.Properties)
	return out
}

// Clone returns a deep copy of the collider.
func (c Collider) Clone() Collider {
	out := c
	if c.Points != nil {
		out.Points = append([]geom.Point(nil), c.Points...)
	}
	out.Properties = cloneProperties(c.Properties)
	return out
}

func cloneProperties(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Equal reports structural equality between two documents.
func (d Document) Equal(o Document) bool {
	if len(d.Colliders) != len(o.Colliders) || len(d.Sprites) != len(o.Sprites) {
		return false
	}
	for i := range d.Colliders {
		if !d.Colliders[i].Equal(o.Colliders[i]) {
			return false
		}
	}
	for i := range d.Sprites {
		if d.Sprites[i] != o.Sprites[i] {
			return false
		}
	}
	return propertiesEqual(d.Properties, o.Properties)
}

// Equal reports structural equality between two colliders.
func (c Collider) Equal(o Collider) bool {
	if c.ID != o.ID || c.Name != o.Name || c.Type != o.Type {
		return false
	}
	if len(c.Points) != len(o.Points) {
		return false
	}
	for i := range c.Points {
		if c.Points[i] != o.Points[i] {
			return false
		}
	}
	return propertiesEqual(c.Properties, o.Properties)
}

func propertiesEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// Normalize returns a copy of the document with internal invariants
// restored: colliders with no points are pruned, and missing or duplicate
// ids (on colliders and sprites) are replaced with fresh ones.
func (d Document) Normalize() Document {
	out := d.Clone()

	colliders := out.Colliders[:0]
	seen := make(map[string]bool, len(out.Colliders))
	for _, c := range out.Colliders {
		if len(c.Points) == 0 {
			continue
		}
		if c.ID == "" || seen[c.ID] {
			c.ID = uuid.NewString()
		}
		seen[c.ID] = true
		colliders = append(colliders, c)
	}
	out.Colliders = colliders

	seenSprites := make(map[string]bool, len(out.Sprites))
	for i, s := range out.Sprites {
		if s.ID == "" || seenSprites[s.ID] {
			out.Sprites[i].ID = uuid.NewString()
		}
		seenSprites[out.Sprites[i].ID] = true
	}

	return out
}

// ColliderIndex returns the index of the collider with the given id.
func (d Document) ColliderIndex(id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	for i, c := range d.Colliders {
		if c.ID == id {
			return i, true
		}
	}
	return 0, false
}
