// Package changeset records which aggregate fields were modified so repositories
// can emit update mutations that only touch those columns.
package changeset

// Tracker tracks dirty field names.
type Tracker struct {
	dirty map[string]bool
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{dirty: make(map[string]bool)}
}

// MarkDirty marks a field as modified.
func (t *Tracker) MarkDirty(field string) {
	t.dirty[field] = true
}

// Dirty reports whether a field has been modified.
func (t *Tracker) Dirty(field string) bool {
	return t.dirty[field]
}

// HasChanges reports whether any field has been modified.
func (t *Tracker) HasChanges() bool {
	return len(t.dirty) > 0
}

// Fields returns the dirty field names in no particular order.
func (t *Tracker) Fields() []string {
	fields := make([]string, 0, len(t.dirty))
	for f := range t.dirty {
		fields = append(fields, f)
	}
	return fields
}

// Clear forgets all dirty markers.
func (t *Tracker) Clear() {
	t.dirty = make(map[string]bool)
}
