package allocator

import (
	"fmt"

	"github.com/ameliabryce/bouquetry/pkg/core/model"
)

// reservation is one pending stock commitment: quantity units of the
// stem's species to be moved from inventory onto the stem
type reservation struct {
	stem     *model.Stem
	quantity int
}

// reserveAll commits a list of reservations against the inventory as a
// unit: either every reservation succeeds and sticks, or none of them do
// and stock is exactly as it was. Returns false on rollback.
func reserveAll(inv *model.Inventory, size model.Size, reservations []reservation) bool {
	for i, r := range reservations {
		if !inv.Reserve(r.stem.Species, size, r.quantity) {
			for _, committed := range reservations[:i] {
				inv.Release(committed.stem.Species, size, committed.quantity)
				committed.stem.Reserved -= committed.quantity
			}
			return false
		}
		r.stem.Reserved += r.quantity
	}
	return true
}

// releaseDesign returns every unit a design holds, required and filler
// alike, back to the inventory. Reserved counts are zeroed as they are
// released, so releasing a design twice is a no-op and can never credit
// stock that was not taken. Filler stems left empty are dropped; required
// stems stay so the design's shape is preserved.
func releaseDesign(inv *model.Inventory, design *model.Design) {
	kept := design.Stems[:0]
	for _, stem := range design.Stems {
		if stem.Reserved > 0 {
			inv.Release(stem.Species, design.Size, stem.Reserved)
			stem.Reserved = 0
		}
		if stem.Kind == model.StemRequired {
			kept = append(kept, stem)
		}
	}
	design.Stems = kept
}

// mustReserve is used where availability has already been checked; a
// failure past that point means the inventory accounting itself is broken
func mustReserve(inv *model.Inventory, species string, size model.Size, quantity int) {
	if !inv.Reserve(species, size, quantity) {
		panic(fmt.Sprintf("inventory underflow: %d of %s%s no longer available", quantity, species, size))
	}
}
