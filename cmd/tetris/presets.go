package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var flagYAML bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Show the difficulty presets",
	Long: `Shows the difficulty presets after applying the config search order:
--config, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml, built-in defaults.

Use --yaml to print the built-in defaults as a starting point for a custom file.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the built-in presets as YAML")
}

var emph = color.New(color.FgBlue, color.Bold).SprintFunc()

func runPresets(_ *cobra.Command, _ []string) {
	if flagYAML {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	presets, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data := make([][]string, 0, len(presets.Difficulties))
	for _, d := range presets.Difficulties {
		limit := "none"
		if d.Timed() {
			limit = tetris.FormatSeconds(d.TimeLimitSeconds)
		}
		data = append(data, []string{
			emph(d.Key),
			d.Title(),
			d.DropInterval().String(),
			limit,
			fmt.Sprintf("%d", d.ScorePerLine),
		})
	}

	printTable([]string{"Key", "Label", "Drop", "Time Limit", "Points/Line"}, data)
	fmt.Println()
	fmt.Printf("Each cleared row adds %ds on timed presets.\n", presets.Timer.ClearBonusSeconds)
	fmt.Println("Run 'tetris play --difficulty <key>' to preselect one.")
}

func printTable(header []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("     ")

	table.AppendBulk(data)

	table.Render()
}
