package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ameliabryce/bouquetry/pkg/core/services"
)

// ComposeCmd creates the compose command
func ComposeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose bouquets from design and stock records",
		Long: `Run the allocation engine against a set of bouquet design records and
flower stock records. Records are read from the files given by flags (or
configured defaults); with no files, designs and stock are read from
stdin as two blocks, each terminated by a blank line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			designsPath, _ := cmd.Flags().GetString("designs")
			stockPath, _ := cmd.Flags().GetString("stock")

			if designsPath == "" {
				designsPath = app.Cfg.DesignsFile
			}
			if stockPath == "" {
				stockPath = app.Cfg.StockFile
			}

			app.Logger.Debug("compose command",
				zap.String("designs_file", designsPath),
				zap.String("stock_file", stockPath))

			designLines, stockLines, err := readRecords(designsPath, stockPath)
			if err != nil {
				return err
			}

			result, err := services.ComposeBouquets(app.Ctx, app.Logger, designLines, stockLines)
			if err != nil {
				return fmt.Errorf("composition failed: %w", err)
			}

			printResult(result)
			return nil
		},
	}

	cmd.Flags().String("designs", "", "File of bouquet design records (one per line)")
	cmd.Flags().String("stock", "", "File of flower stock records (one unit per line)")

	return cmd
}

// readRecords loads design and stock lines from the given files, falling
// back to interactive stdin entry for whichever path is empty
func readRecords(designsPath, stockPath string) ([]string, []string, error) {
	reader := bufio.NewScanner(os.Stdin)

	var designLines, stockLines []string
	var err error

	if designsPath != "" {
		designLines, err = readFileLines(designsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read designs: %w", err)
		}
	} else {
		fmt.Println("Please enter bouquet designs:")
		designLines = readBlock(reader)
	}

	if stockPath != "" {
		stockLines, err = readFileLines(stockPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stock: %w", err)
		}
	} else {
		fmt.Println("Please enter flowers:")
		stockLines = readBlock(reader)
	}

	return designLines, stockLines, nil
}

// readFileLines reads a record file into its non-empty lines
func readFileLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines, nil
}

// readBlock reads stdin lines until a blank line or EOF
func readBlock(reader *bufio.Scanner) []string {
	var lines []string
	for reader.Scan() {
		line := strings.TrimSpace(reader.Text())
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

// printResult renders a composition result to the terminal
func printResult(result *services.ComposeResult) {
	fmt.Printf("\n💐 Bouquet Composition Results\n\n")
	fmt.Printf("Run ID:    %s\n", result.RunID)
	fmt.Printf("Designs:   %d\n", len(result.Designs))
	fmt.Printf("Completed: %d\n", len(result.Completed))
	fmt.Printf("Abandoned: %d\n", len(result.Abandoned))
	fmt.Printf("Passes:    %d\n\n", result.Passes)

	if len(result.Bouquets) > 0 {
		fmt.Println("Result:")
		for _, bouquet := range result.Bouquets {
			fmt.Printf("  ✓ %s\n", bouquet)
		}
		fmt.Println()
	} else {
		fmt.Println("No bouquets could be composed from the available stock.")
		fmt.Println()
	}

	if len(result.Abandoned) > 0 {
		fmt.Println("Abandoned designs:")
		for _, design := range result.Abandoned {
			fmt.Printf("  ✗ %s%s (total %d)\n", design.Name, design.Size, design.Total)
		}
		fmt.Println()
	}
}
