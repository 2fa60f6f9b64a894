package allocator

import (
	"sort"

	"github.com/ameliabryce/bouquetry/pkg/core/model"
)

// Rank orders designs by priority weight, highest first, and deactivates
// designs that can never be satisfied under the current stock. Ties keep
// their input order so that equal-weight designs are processed in the
// order they arrived.
//
// The weight reflects how hard a design is to satisfy: big bouquets and
// bouquets needing scarce species score higher, since they are the least
// likely to still be satisfiable once other designs have consumed shared
// stock.
func Rank(inv *model.Inventory, designs []*model.Design) {
	weights := make(map[*model.Design]float64, len(designs))

	for _, design := range designs {
		weight, satisfiable := designWeight(inv, design)
		if !satisfiable {
			design.Active = false
		}
		weights[design] = weight
	}

	sort.SliceStable(designs, func(i, j int) bool {
		return weights[designs[i]] > weights[designs[j]]
	})
}

// designWeight computes the priority weight of a design against current
// stock. It returns false, with weight 0, for designs that cannot be
// satisfied at all: the size class holds less total stock than the
// design's total, some required stem demands more than the stock of its
// species, or the required quantities alone already exceed the total
// (a malformed design). Rejected designs are never attempted, so they
// can never hold stock that satisfiable designs are waiting on.
func designWeight(inv *model.Inventory, design *model.Design) (float64, bool) {
	sizeTotal := inv.TotalFor(design.Size)
	if sizeTotal < design.Total {
		return 0, false
	}

	weight := 0.0
	requiredTotal := 0
	for _, stem := range design.Stems {
		if stem.Kind != model.StemRequired {
			continue
		}
		available := inv.Available(stem.Species, design.Size)
		if stem.DesignQuantity > available {
			return 0, false
		}
		requiredTotal += stem.DesignQuantity
		weight += scarcity(available, stem.DesignQuantity)
	}
	if requiredTotal > design.Total {
		return 0, false
	}

	// The design as a whole competes for the size class's shared pool the
	// same way each required stem competes for its species.
	return weight + scarcity(sizeTotal, design.Total), true
}

// scarcity scores how much of the available stock a quantity consumes:
// 1 when it takes everything, approaching 0 when it takes almost nothing.
// The rejection checks in designWeight guarantee available > 0 here.
func scarcity(available, quantity int) float64 {
	return 1 - float64(available-quantity)/float64(available)
}
