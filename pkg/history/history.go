package history

// History is a linear undo/redo stack of complete snapshots with a cursor
// on the current one. A zero limit keeps every snapshot; a positive limit
// drops the oldest ones once exceeded.
type History[T any] struct {
	snapshots []T
	cursor    int
	limit     int
}

// New creates a history holding initial as its only snapshot.
func New[T any](initial T, limit int) *History[T] {
	return &History[T]{
		snapshots: []T{initial},
		limit:     limit,
	}
}

// Push records snapshot as the new current state. Anything that had been
// undone is discarded.
func (h *History[T]) Push(snapshot T) {
	h.snapshots = append(h.snapshots[:h.cursor+1], snapshot)
	h.cursor = len(h.snapshots) - 1

	if h.limit > 0 && len(h.snapshots) > h.limit {
		drop := len(h.snapshots) - h.limit
		h.snapshots = append([]T(nil), h.snapshots[drop:]...)
		h.cursor -= drop
	}
}

// Undo moves back one snapshot. At the earliest snapshot it does nothing
// and returns false.
func (h *History[T]) Undo() (T, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Redo moves forward one snapshot. At the latest snapshot it does nothing
// and returns false.
func (h *History[T]) Redo() (T, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}

func (h *History[T]) Current() T {
	return h.snapshots[h.cursor]
}

func (h *History[T]) CanUndo() bool {
	return h.cursor > 0
}

func (h *History[T]) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

// Len is the number of stored snapshots.
func (h *History[T]) Len() int {
	return len(h.snapshots)
}

// Cursor is the index of the current snapshot.
func (h *History[T]) Cursor() int {
	return h.cursor
}
