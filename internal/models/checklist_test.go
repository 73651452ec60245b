package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistToggleIsClosedSet(t *testing.T) {
	items := NewChecklistItems()

	on, err := items.Toggle(ItemWarmWater)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, 1, items.Completed())

	off, err := items.Toggle(ItemWarmWater)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Equal(t, 0, items.Completed())

	_, err = items.Toggle(ChecklistItem("bribe_the_doctor"))
	assert.Error(t, err, "unknown items are rejected, not created")
}

func TestChecklistAllDone(t *testing.T) {
	items := NewChecklistItems()
	assert.False(t, items.AllDone())

	for _, item := range ChecklistOrder {
		_, err := items.Toggle(item)
		require.NoError(t, err)
	}
	assert.True(t, items.AllDone())
	assert.Equal(t, len(ChecklistOrder), items.Completed())
}

func TestChecklistScanFillsMissingItems(t *testing.T) {
	var items ChecklistItems
	require.NoError(t, items.Scan([]byte(`{"warm_water":true}`)))

	assert.True(t, items[ItemWarmWater])
	assert.False(t, items[ItemEarlySleep])
	assert.Equal(t, 1, items.Completed())
}
