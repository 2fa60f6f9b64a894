package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryAddAndTotals(t *testing.T) {
	inv := NewInventory()
	inv.Add("a", SizeLarge, 10)
	inv.Add("b", SizeLarge, 5)
	inv.Add("a", SizeSmall, 3)

	assert.Equal(t, 10, inv.Available("a", SizeLarge))
	assert.Equal(t, 5, inv.Available("b", SizeLarge))
	assert.Equal(t, 3, inv.Available("a", SizeSmall))
	assert.Equal(t, 0, inv.Available("c", SizeLarge), "unknown species has zero stock")

	assert.Equal(t, 15, inv.TotalFor(SizeLarge))
	assert.Equal(t, 3, inv.TotalFor(SizeSmall))
}

func TestInventoryReserve(t *testing.T) {
	inv := NewInventory()
	inv.Add("a", SizeLarge, 10)

	require.True(t, inv.Reserve("a", SizeLarge, 4))
	assert.Equal(t, 6, inv.Available("a", SizeLarge))
	assert.Equal(t, 6, inv.TotalFor(SizeLarge))

	// Insufficient stock rejects the whole reservation, nothing is clamped
	assert.False(t, inv.Reserve("a", SizeLarge, 7))
	assert.Equal(t, 6, inv.Available("a", SizeLarge))
	assert.Equal(t, 6, inv.TotalFor(SizeLarge))

	require.True(t, inv.Reserve("a", SizeLarge, 6))
	assert.Equal(t, 0, inv.Available("a", SizeLarge))
	assert.False(t, inv.Reserve("a", SizeLarge, 1))
}

func TestInventoryRelease(t *testing.T) {
	inv := NewInventory()
	inv.Add("a", SizeSmall, 5)

	require.True(t, inv.Reserve("a", SizeSmall, 5))
	inv.Release("a", SizeSmall, 5)

	assert.Equal(t, 5, inv.Available("a", SizeSmall))
	assert.Equal(t, 5, inv.TotalFor(SizeSmall))
}

func TestInventorySpeciesSorted(t *testing.T) {
	inv := NewInventory()
	inv.Add("c", SizeLarge, 1)
	inv.Add("a", SizeSmall, 1)
	inv.Add("b", SizeLarge, 1)
	inv.Add("a", SizeLarge, 1)

	assert.Equal(t, []string{"a", "b", "c"}, inv.Species())
}
