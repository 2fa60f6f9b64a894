package model

import "sort"

// StockKey identifies one inventory cell: a species in a size class
type StockKey struct {
	Species string
	Size    Size
}

// Inventory holds the mutable counts of available flowers per species and
// size class, plus running totals per size class for weight calculations.
// Counts are never negative: reservations that cannot be covered are
// rejected, not clamped.
type Inventory struct {
	counts     map[StockKey]int
	sizeTotals map[Size]int
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		counts:     make(map[StockKey]int),
		sizeTotals: make(map[Size]int),
	}
}

// Add puts quantity units of (species, size) into stock. Used only while
// populating the inventory before a composition run.
func (inv *Inventory) Add(species string, size Size, quantity int) {
	inv.counts[StockKey{species, size}] += quantity
	inv.sizeTotals[size] += quantity
}

// Available returns the current stock of (species, size)
func (inv *Inventory) Available(species string, size Size) int {
	return inv.counts[StockKey{species, size}]
}

// TotalFor returns the current stock across all species of a size class
func (inv *Inventory) TotalFor(size Size) int {
	return inv.sizeTotals[size]
}

// Reserve removes quantity units of (species, size) from stock. Returns
// false, leaving stock untouched, if fewer than quantity units are
// available.
func (inv *Inventory) Reserve(species string, size Size, quantity int) bool {
	key := StockKey{species, size}
	if inv.counts[key] < quantity {
		return false
	}
	inv.counts[key] -= quantity
	inv.sizeTotals[size] -= quantity
	return true
}

// Release returns quantity units of (species, size) to stock
func (inv *Inventory) Release(species string, size Size, quantity int) {
	inv.counts[StockKey{species, size}] += quantity
	inv.sizeTotals[size] += quantity
}

// Species returns every species the inventory has ever held, in sorted
// order. Sorted iteration keeps filler distribution deterministic.
func (inv *Inventory) Species() []string {
	seen := make(map[string]bool)
	species := make([]string, 0, len(inv.counts))
	for key := range inv.counts {
		if !seen[key.Species] {
			seen[key.Species] = true
			species = append(species, key.Species)
		}
	}
	sort.Strings(species)
	return species
}
