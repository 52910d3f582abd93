package changeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	tr := New()
	assert.False(t, tr.HasChanges())

	tr.MarkDirty("name")
	tr.MarkDirty("name")
	tr.MarkDirty("is_active")

	assert.True(t, tr.HasChanges())
	assert.True(t, tr.Dirty("name"))
	assert.False(t, tr.Dirty("phone"))
	assert.ElementsMatch(t, []string{"name", "is_active"}, tr.Fields())

	tr.Clear()
	assert.False(t, tr.HasChanges())
	assert.Empty(t, tr.Fields())
}
