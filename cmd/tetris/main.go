// tetris is a falling-block puzzle for the terminal.
//
// Usage:
//
//	tetris play              - Open the lobby and play
//	tetris presets           - Show the difficulty presets
//
// Global flags:
//
//	--config <path> - Load difficulty presets from a YAML file
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for a reproducible piece sequence
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling-block puzzle for the terminal",
	Long: `Stack falling pieces, complete rows and beat the clock.

Available commands:
  play     - Open the lobby and start a game
  presets  - Show the difficulty presets

Examples:
  tetris play
  tetris play --name ayu --difficulty hard
  tetris presets --config ./configs/tetris.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a difficulty presets YAML file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
}
