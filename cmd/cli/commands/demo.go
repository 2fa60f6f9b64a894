package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ameliabryce/bouquetry/pkg/core/services"
)

// demoDesigns is the built-in sample dataset: six designs competing for
// ten units of each of three species in both sizes
var demoDesigns = []string{
	"AL10a15b5c30",
	"AS10a10b25",
	"BL15b1c21",
	"BS10b5c16",
	"CL20a15c45",
	"DL20b28",
}

func demoStock() []string {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "aL", "bL", "cL", "aS", "bS", "cS")
	}
	return lines
}

// DemoCmd creates the demo command
func DemoCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the allocation engine against the built-in sample dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("demo command")

			fmt.Println("Sample designs:")
			for _, line := range demoDesigns {
				fmt.Printf("  %s\n", line)
			}
			fmt.Println("Sample stock: 10 units each of aL, bL, cL, aS, bS, cS")

			result, err := services.ComposeBouquets(app.Ctx, app.Logger, demoDesigns, demoStock())
			if err != nil {
				return fmt.Errorf("composition failed: %w", err)
			}

			printResult(result)
			return nil
		},
	}
}
