package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// sampleStockLines builds 10 units of each of a, b, c in both sizes
func sampleStockLines() []string {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "aL", "bL", "cL", "aS", "bS", "cS")
	}
	return lines
}

var sampleDesignLines = []string{
	"AL10a15b5c30",
	"AS10a10b25",
	"BL15b1c21",
	"BS10b5c16",
	"CL20a15c45",
	"DL20b28",
}

func TestComposeBouquets(t *testing.T) {
	result, err := ComposeBouquets(context.Background(), zap.NewNop(), sampleDesignLines, sampleStockLines())
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.Designs, 6)

	// With 10 of each species per size, only AS can be composed: every
	// large design demands more of one species (or in total) than exists,
	// and BS loses the small b stock to the heavier AS.
	require.Len(t, result.Completed, 1)
	assert.Equal(t, "A", result.Completed[0].Name)
	assert.Equal(t, []string{"AS10a10b5c"}, result.Bouquets)
	assert.Len(t, result.Abandoned, 5)

	for _, design := range result.Abandoned {
		assert.False(t, design.Active)
		assert.Zero(t, design.ReservedTotal())
	}
}

func TestComposeBouquetsInvalidDesign(t *testing.T) {
	_, err := ComposeBouquets(context.Background(), zap.NewNop(), []string{"bad record"}, sampleStockLines())
	assert.Error(t, err)
}

func TestComposeBouquetsInvalidStock(t *testing.T) {
	_, err := ComposeBouquets(context.Background(), zap.NewNop(), sampleDesignLines, []string{"ZZ"})
	assert.Error(t, err)
}

func TestComposeBouquetsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ComposeBouquets(ctx, zap.NewNop(), sampleDesignLines, sampleStockLines())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComposeBouquetsEmptyInputs(t *testing.T) {
	result, err := ComposeBouquets(context.Background(), zap.NewNop(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Completed)
	assert.Empty(t, result.Abandoned)
}
