// Package history provides a generic undo/redo manager over immutable
// document snapshots. Every entry is a full snapshot of the document
// value, never a diff, and stored snapshots are never mutated.
package history

// DefaultLimit is the maximum number of snapshots kept when no explicit
// limit is configured.
const DefaultLimit = 50

// Manager tracks a bounded stack of snapshots of a document value T with
// a cursor for undo/redo. Equality between values is structural and
// supplied by the caller; committing a value equal to the current
// snapshot is a no-op so no-op edits never pollute the stack.
//
// A batch collapses a multi-event gesture (like a drag) into at most one
// snapshot: Commit calls between StartBatch and the outermost EndBatch
// only update the live value, and EndBatch compares the final value
// against the value captured when the batch began.
type Manager[T any] struct {
	equal     func(a, b T) bool
	snapshots []T
	cursor    int
	limit     int

	batchDepth int
	batchBase  T
	live       T
}

// New creates a manager seeded with an initial snapshot. limit bounds the
// number of stored snapshots; values <= 0 fall back to DefaultLimit.
func New[T any](initial T, equal func(a, b T) bool, limit int) *Manager[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Manager[T]{
		equal:     equal,
		snapshots: []T{initial},
		limit:     limit,
	}
}

// Current returns the value at the cursor, or the latest live value while
// a batch is open.
func (m *Manager[T]) Current() T {
	if m.batchDepth > 0 {
		return m.live
	}
	return m.snapshots[m.cursor]
}

// Commit records value as a new snapshot, truncating any redo entries
// beyond the cursor. Inside a batch it only updates the live value; the
// snapshot is deferred to the outermost EndBatch.
func (m *Manager[T]) Commit(value T) {
	if m.batchDepth > 0 {
		m.live = value
		return
	}
	m.push(value)
}

func (m *Manager[T]) push(value T) {
	if m.equal(value, m.snapshots[m.cursor]) {
		return
	}

	m.snapshots = append(m.snapshots[:m.cursor+1], value)
	m.cursor = len(m.snapshots) - 1

	if drop := len(m.snapshots) - m.limit; drop > 0 {
		m.snapshots = m.snapshots[drop:]
		m.cursor -= drop
	}
}

// StartBatch opens a batch. Nested calls collapse into one logical batch;
// only the transition from depth 0 captures the baseline value.
func (m *Manager[T]) StartBatch() {
	if m.batchDepth == 0 {
		m.batchBase = m.snapshots[m.cursor]
		m.live = m.batchBase
	}
	m.batchDepth++
}

// EndBatch closes one level of batching with the latest live value. When
// the outermost batch ends, final is committed as a single snapshot
// unless it equals the baseline captured at StartBatch, in which case the
// whole gesture leaves no history entry.
func (m *Manager[T]) EndBatch(final T) {
	if m.batchDepth == 0 {
		return
	}
	m.batchDepth--
	if m.batchDepth > 0 {
		m.live = final
		return
	}
	if m.equal(final, m.batchBase) {
		return
	}
	m.push(final)
}

// Undo moves the cursor back one snapshot and returns it. It returns
// false without moving when there is nothing to undo.
func (m *Manager[T]) Undo() (T, bool) {
	if m.cursor == 0 {
		var zero T
		return zero, false
	}
	m.cursor--
	return m.snapshots[m.cursor], true
}

// Redo moves the cursor forward one snapshot and returns it. It returns
// false without moving when there is nothing to redo.
func (m *Manager[T]) Redo() (T, bool) {
	if m.cursor >= len(m.snapshots)-1 {
		var zero T
		return zero, false
	}
	m.cursor++
	return m.snapshots[m.cursor], true
}

// Reset discards all history and starts over from value. Used when the
// edit target changes so undo history never leaks across documents.
func (m *Manager[T]) Reset(value T) {
	m.snapshots = []T{value}
	m.cursor = 0
	m.batchDepth = 0
}

// CanUndo reports whether Undo would move the cursor.
func (m *Manager[T]) CanUndo() bool {
	return m.cursor > 0
}

// CanRedo reports whether Redo would move the cursor.
func (m *Manager[T]) CanRedo() bool {
	return m.cursor < len(m.snapshots)-1
}

// Len returns the number of stored snapshots.
func (m *Manager[T]) Len() int {
	return len(m.snapshots)
}
