package editor

// Metadata edits: collider rename/type and the string property bags on
// colliders and the document. All of these commit immediately; they are
// discrete edits, not gestures. A colliderID of "" targets the
// document-level properties.

// RenameCollider sets the display name of a collider.
func (c *Controller) RenameCollider(colliderID, name string) {
	i, ok := c.doc.ColliderIndex(colliderID)
	if !ok {
		return
	}
	doc := c.doc.Clone()
	doc.Colliders[i].Name = name
	c.commit(doc)
}

// SetColliderType sets the type tag of a collider.
func (c *Controller) SetColliderType(colliderID, typ string) {
	i, ok := c.doc.ColliderIndex(colliderID)
	if !ok {
		return
	}
	doc := c.doc.Clone()
	doc.Colliders[i].Type = typ
	c.commit(doc)
}

// SetProperty sets a property key to a value.
func (c *Controller) SetProperty(colliderID, key, value string) {
	if key == "" {
		return
	}
	doc, props, ok := c.cloneProperties(colliderID)
	if !ok {
		return
	}
	props[key] = value
	c.commit(doc)
}

// DeleteProperty removes a property key. Missing keys are ignored.
func (c *Controller) DeleteProperty(colliderID, key string) {
	doc, props, ok := c.cloneProperties(colliderID)
	if !ok {
		return
	}
	if _, exists := props[key]; !exists {
		return
	}
	delete(props, key)
	c.commit(doc)
}

// cloneProperties clones the working document and returns the property
// map for the target, creating it on the clone if needed.
func (c *Controller) cloneProperties(colliderID string) (Document, map[string]string, bool) {
	doc := c.doc.Clone()
	if colliderID == "" {
		if doc.Properties == nil {
			doc.Properties = make(map[string]string)
		}
		return doc, doc.Properties, true
	}
	i, ok := doc.ColliderIndex(colliderID)
	if !ok {
		return Document{}, nil, false
	}
	if doc.Colliders[i].Properties == nil {
		doc.Colliders[i].Properties = make(map[string]string)
	}
	return doc, doc.Colliders[i].Properties, true
}

// StartPropertyRename begins an in-place rename of a property key. The
// new key lives in interaction state until CommitPropertyRename, so a
// half-typed key never reaches the document or the undo history.
func (c *Controller) StartPropertyRename(colliderID, key string) {
	var props map[string]string
	if colliderID == "" {
		props = c.doc.Properties
	} else {
		i, ok := c.doc.ColliderIndex(colliderID)
		if !ok {
			return
		}
		props = c.doc.Colliders[i].Properties
	}
	if _, exists := props[key]; !exists {
		return
	}
	c.pendingRename = &propertyRename{colliderID: colliderID, oldKey: key, newKey: key}
}

// UpdatePropertyRename replaces the pending key text.
func (c *Controller) UpdatePropertyRename(newKey string) {
	if c.pendingRename == nil {
		return
	}
	c.pendingRename.newKey = newKey
}

// PendingRename returns the in-progress rename, if any.
func (c *Controller) PendingRename() (colliderID, oldKey, newKey string, ok bool) {
	if c.pendingRename == nil {
		return "", "", "", false
	}
	r := c.pendingRename
	return r.colliderID, r.oldKey, r.newKey, true
}

// CancelPropertyRename discards the pending rename with no document
// effect.
func (c *Controller) CancelPropertyRename() {
	c.pendingRename = nil
}

// CommitPropertyRename applies the pending rename as a committed edit.
// Empty keys, unchanged keys and collisions with an existing key leave
// the document untouched.
func (c *Controller) CommitPropertyRename() {
	rename := c.pendingRename
	c.pendingRename = nil
	if rename == nil || rename.newKey == "" || rename.newKey == rename.oldKey {
		return
	}

	doc, props, ok := c.cloneProperties(rename.colliderID)
	if !ok {
		return
	}
	value, exists := props[rename.oldKey]
	if !exists {
		return
	}
	if _, taken := props[rename.newKey]; taken {
		return
	}

	delete(props, rename.oldKey)
	props[rename.newKey] = value
	c.commit(doc)
}

// UpdateSprite replaces the sprite with the same id as a committed edit.
// Unknown ids are ignored.
func (c *Controller) UpdateSprite(s Sprite) {
	for i, existing := range c.doc.Sprites {
		if existing.ID == s.ID {
			doc := c.doc.Clone()
			doc.Sprites[i] = s
			c.commit(doc)
			return
		}
	}
}
