package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ameliabryce/bouquetry/pkg/core/allocator"
	"github.com/ameliabryce/bouquetry/pkg/core/model"
	"github.com/ameliabryce/bouquetry/pkg/records"
)

// ComposeResult contains the results of one composition run
type ComposeResult struct {
	// RunID uniquely identifies this run in logs and reports
	RunID string

	// Designs is every design in final priority order
	Designs []*model.Design

	// Completed designs, already formatted in record notation
	Completed []*model.Design
	Bouquets  []string

	// Abandoned designs that could not be composed under current stock
	Abandoned []*model.Design

	// Passes is the number of reserve/fill rounds the engine took
	Passes int
}

// ComposeBouquets parses the design and stock records, runs the
// allocation engine, and reports which bouquets were composed.
// Scarcity never surfaces as an error here: designs that cannot be
// completed come back in Abandoned.
func ComposeBouquets(
	ctx context.Context,
	logger *zap.Logger,
	designLines []string,
	stockLines []string,
) (*ComposeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	logger.Debug("Parsing design records", zap.Int("lines", len(designLines)))
	designs, err := records.ParseDesigns(designLines)
	if err != nil {
		return nil, fmt.Errorf("failed to parse designs: %w", err)
	}

	logger.Debug("Loading inventory", zap.Int("lines", len(stockLines)))
	inv, err := records.LoadInventory(stockLines)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	logger.Info("Composing bouquets",
		zap.Int("designs", len(designs)),
		zap.Int("stock_large", inv.TotalFor(model.SizeLarge)),
		zap.Int("stock_small", inv.TotalFor(model.SizeSmall)))

	outcome := allocator.Compose(inv, designs)

	bouquets := make([]string, 0, len(outcome.Completed))
	for _, design := range outcome.Completed {
		bouquets = append(bouquets, records.FormatBouquet(design))
	}

	logger.Info("Composition finished",
		zap.Int("completed", len(outcome.Completed)),
		zap.Int("abandoned", len(outcome.Abandoned)),
		zap.Int("passes", outcome.Passes))

	return &ComposeResult{
		RunID:     runID,
		Designs:   outcome.Designs,
		Completed: outcome.Completed,
		Bouquets:  bouquets,
		Abandoned: outcome.Abandoned,
		Passes:    outcome.Passes,
	}, nil
}
