package model

// Size is the size class of a flower or a bouquet design
type Size string

const (
	SizeLarge Size = "L"
	SizeSmall Size = "S"
)

// StemKind distinguishes stems fixed by the design from filler added
// during composition
type StemKind string

const (
	StemRequired StemKind = "required"
	StemFiller   StemKind = "filler"
)

// Stem is one species entry within a design: how many units the design
// demands of that species and how many have actually been reserved from
// inventory so far
type Stem struct {
	// Species is the single lowercase species token
	Species string

	// Kind marks whether this stem is part of the design or filler
	Kind StemKind

	// DesignQuantity is the quantity fixed by the design (0 for filler)
	DesignQuantity int

	// Reserved is the quantity committed from inventory so far
	Reserved int
}

// Outstanding returns how many more units are needed to satisfy the
// stem's design quantity
func (s *Stem) Outstanding() int {
	if outstanding := s.DesignQuantity - s.Reserved; outstanding > 0 {
		return outstanding
	}
	return 0
}

// Design is a bouquet design being filled: a named, sized target with
// required stems from creation and filler stems appended during
// composition
type Design struct {
	// Name is the single uppercase design token
	Name string

	// Size is the size class; only flowers of this size may be used
	Size Size

	// Total is the overall number of flowers the finished bouquet holds
	Total int

	// Stems holds the required stems followed by any filler stems
	Stems []*Stem

	// Active is true while the design is still eligible for allocation
	Active bool
}

// NewDesign creates an active design with its required stems
func NewDesign(name string, size Size, total int, required []*Stem) *Design {
	return &Design{
		Name:   name,
		Size:   size,
		Total:  total,
		Stems:  required,
		Active: true,
	}
}

// ReservedTotal returns the number of units reserved across all stems
func (d *Design) ReservedTotal() int {
	total := 0
	for _, stem := range d.Stems {
		total += stem.Reserved
	}
	return total
}

// RequiredMet reports whether every required stem has been fully reserved
func (d *Design) RequiredMet() bool {
	for _, stem := range d.Stems {
		if stem.Reserved < stem.DesignQuantity {
			return false
		}
	}
	return true
}

// Completed reports whether the design is finished: all required stems
// fully reserved and the overall total reached exactly
func (d *Design) Completed() bool {
	return d.RequiredMet() && d.ReservedTotal() == d.Total
}

// FillerCapacity returns how many more units of any species the design
// can still take before reaching its total
func (d *Design) FillerCapacity() int {
	if capacity := d.Total - d.ReservedTotal(); capacity > 0 {
		return capacity
	}
	return 0
}

// AddFiller reserves quantity units of the given species onto the design,
// extending an existing stem of that species if one exists (required or
// filler) or appending a new filler stem
func (d *Design) AddFiller(species string, quantity int) {
	for _, stem := range d.Stems {
		if stem.Species == species {
			stem.Reserved += quantity
			return
		}
	}
	d.Stems = append(d.Stems, &Stem{
		Species:  species,
		Kind:     StemFiller,
		Reserved: quantity,
	})
}
