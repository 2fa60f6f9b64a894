package allocator

import "github.com/ameliabryce/bouquetry/pkg/core/model"

// Outcome represents the result of a composition run
type Outcome struct {
	// Designs is the full design list in priority order. Completed and
	// abandoned designs both appear here; filtering is the caller's job.
	Designs []*model.Design

	// Completed contains the designs that were fully composed
	Completed []*model.Design

	// Abandoned contains the designs deactivated during the run, either
	// rejected up front as unsatisfiable or released to free their stock
	Abandoned []*model.Design

	// Passes is the number of reserve/fill rounds the run took
	Passes int
}

// composer carries the mutable state of one composition run
type composer struct {
	inv     *model.Inventory
	designs []*model.Design
}

// Compose allocates the inventory to the given designs and returns the
// outcome. Designs are ranked by scarcity weight, then filled in rounds:
// required stems are reserved all-or-nothing per design, remaining
// capacity is topped up with filler of the design's size class, and the
// highest-priority design still blocked is released and deactivated so
// its stock can serve the designs ranked below it. The loop deactivates
// at most one design per round, so it runs at most once per design.
//
// Compose exclusively owns both arguments for its duration and mutates
// them in place: the inventory ends up holding the leftover stock and
// each design its final reservations and flags.
func Compose(inv *model.Inventory, designs []*model.Design) *Outcome {
	Rank(inv, designs)

	c := &composer{inv: inv, designs: designs}

	passes := 0
	for {
		passes++
		c.reserveRequired()
		c.distributeFiller()

		blocked := c.firstBlocked()
		if blocked == nil {
			break
		}
		releaseDesign(c.inv, blocked)
		blocked.Active = false
	}

	return c.buildOutcome(passes)
}

// reserveRequired attempts to commit the outstanding required stems of
// every active design, in priority order. A design whose requirements
// cannot all be covered this round keeps nothing: everything it holds,
// including reservations from earlier rounds, goes back to stock and the
// design waits for a later round with less competition.
func (c *composer) reserveRequired() {
	for _, design := range c.designs {
		if !design.Active || design.Completed() || design.RequiredMet() {
			continue
		}

		var pending []reservation
		for _, stem := range design.Stems {
			if outstanding := stem.Outstanding(); outstanding > 0 {
				pending = append(pending, reservation{stem: stem, quantity: outstanding})
			}
		}

		if !reserveAll(c.inv, design.Size, pending) {
			releaseDesign(c.inv, design)
		}
	}
}

// distributeFiller tops up every active design whose required stems are
// met, using any species of the design's size class. Species already in
// the design are preferred, so finished bouquets spread across as few
// species as necessary; after that, remaining species are tried in
// sorted order.
func (c *composer) distributeFiller() {
	for _, design := range c.designs {
		if !design.Active || design.Completed() || !design.RequiredMet() {
			continue
		}

		for _, stem := range design.Stems {
			c.addFiller(design, stem.Species)
			if design.Completed() {
				break
			}
		}
		if design.Completed() {
			continue
		}
		for _, species := range c.inv.Species() {
			c.addFiller(design, species)
			if design.Completed() {
				break
			}
		}
	}
}

// addFiller moves up to the design's remaining capacity of one species
// from stock onto the design
func (c *composer) addFiller(design *model.Design, species string) {
	capacity := design.FillerCapacity()
	if capacity == 0 {
		return
	}
	quantity := c.inv.Available(species, design.Size)
	if quantity <= 0 {
		return
	}
	if quantity > capacity {
		quantity = capacity
	}
	mustReserve(c.inv, species, design.Size, quantity)
	design.AddFiller(species, quantity)
}

// firstBlocked returns the highest-priority design that is still active
// but could not be completed, or nil when every active design is done
func (c *composer) firstBlocked() *model.Design {
	for _, design := range c.designs {
		if design.Active && !design.Completed() {
			return design
		}
	}
	return nil
}

// buildOutcome partitions the final design list into completed and
// abandoned designs
func (c *composer) buildOutcome(passes int) *Outcome {
	outcome := &Outcome{
		Designs:   c.designs,
		Completed: []*model.Design{},
		Abandoned: []*model.Design{},
		Passes:    passes,
	}
	for _, design := range c.designs {
		if design.Completed() {
			outcome.Completed = append(outcome.Completed, design)
		} else {
			outcome.Abandoned = append(outcome.Abandoned, design)
		}
	}
	return outcome
}
