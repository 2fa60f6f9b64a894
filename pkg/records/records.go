// Package records parses the textual bouquet design and flower stock
// records and formats finished bouquets back into the same notation.
//
// A design line packs name, size, required stems and total into one
// token, e.g. AL10a15b5c30: design A, large, 10 of a, 15 of b, 5 of c,
// 30 flowers overall. A stock line is one flower unit, e.g. aL.
package records

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ameliabryce/bouquetry/pkg/core/model"
)

var (
	designRe = regexp.MustCompile(`^([A-Z])([LS])((?:\d+[a-z])+)(\d+)$`)
	stemRe   = regexp.MustCompile(`(\d+)([a-z])`)
	stockRe  = regexp.MustCompile(`^([a-z])([LS])$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// RequiredStem is one required species entry of a parsed design record
type RequiredStem struct {
	Species  string `validate:"required,len=1,lowercase"`
	Quantity int    `validate:"required,min=1"`
}

// DesignRecord is a validated design line before it becomes a model.Design
type DesignRecord struct {
	Name     string         `validate:"required,len=1,uppercase"`
	Size     string         `validate:"required,oneof=L S"`
	Total    int            `validate:"required,min=1"`
	Required []RequiredStem `validate:"required,min=1,dive"`
}

// ParseDesign parses one design line into a design ready for allocation
func ParseDesign(line string) (*model.Design, error) {
	groups := designRe.FindStringSubmatch(strings.TrimSpace(line))
	if groups == nil {
		return nil, fmt.Errorf("invalid design record %q", line)
	}

	record := DesignRecord{
		Name: groups[1],
		Size: groups[2],
	}

	total, err := strconv.Atoi(groups[4])
	if err != nil {
		return nil, fmt.Errorf("invalid total in design record %q: %w", line, err)
	}
	record.Total = total

	for _, stem := range stemRe.FindAllStringSubmatch(groups[3], -1) {
		quantity, err := strconv.Atoi(stem[1])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in design record %q: %w", line, err)
		}
		record.Required = append(record.Required, RequiredStem{
			Species:  stem[2],
			Quantity: quantity,
		})
	}

	if err := validate.Struct(&record); err != nil {
		return nil, fmt.Errorf("design record %q failed validation: %w", line, err)
	}

	// A design demanding more required stems than its total can never be
	// assembled; reject it at the boundary
	requiredTotal := 0
	for _, required := range record.Required {
		requiredTotal += required.Quantity
	}
	if requiredTotal > record.Total {
		return nil, fmt.Errorf("design record %q requires %d stems but totals only %d", line, requiredTotal, record.Total)
	}

	stems := make([]*model.Stem, 0, len(record.Required))
	for _, required := range record.Required {
		stems = append(stems, &model.Stem{
			Species:        required.Species,
			Kind:           model.StemRequired,
			DesignQuantity: required.Quantity,
		})
	}

	return model.NewDesign(record.Name, model.Size(record.Size), record.Total, stems), nil
}

// ParseDesigns parses a batch of design lines, skipping blank lines
func ParseDesigns(lines []string) ([]*model.Design, error) {
	designs := make([]*model.Design, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		design, err := ParseDesign(line)
		if err != nil {
			return nil, err
		}
		designs = append(designs, design)
	}
	return designs, nil
}

// ParseStock parses one stock line (a single flower unit) into its
// species and size
func ParseStock(line string) (string, model.Size, error) {
	groups := stockRe.FindStringSubmatch(strings.TrimSpace(line))
	if groups == nil {
		return "", "", fmt.Errorf("invalid stock record %q", line)
	}
	return groups[1], model.Size(groups[2]), nil
}

// LoadInventory aggregates stock lines, one unit each, into an inventory.
// Blank lines are skipped.
func LoadInventory(lines []string) (*model.Inventory, error) {
	inv := model.NewInventory()
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		species, size, err := ParseStock(line)
		if err != nil {
			return nil, err
		}
		inv.Add(species, size, 1)
	}
	return inv, nil
}

// FormatBouquet renders a composed design in the record notation: name,
// size, then each reserved species as <quantity><species> sorted by
// species. Stems with nothing reserved are omitted.
func FormatBouquet(design *model.Design) string {
	stems := make([]*model.Stem, 0, len(design.Stems))
	for _, stem := range design.Stems {
		if stem.Reserved > 0 {
			stems = append(stems, stem)
		}
	}
	sort.Slice(stems, func(i, j int) bool {
		return stems[i].Species < stems[j].Species
	})

	var b strings.Builder
	b.WriteString(design.Name)
	b.WriteString(string(design.Size))
	for _, stem := range stems {
		fmt.Fprintf(&b, "%d%s", stem.Reserved, stem.Species)
	}
	return b.String()
}
