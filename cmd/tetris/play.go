package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagName       string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Open the lobby, enter a name, pick a difficulty and press Enter.

Controls:
  Left/Right, h/l  - Move
  Down, j          - Soft drop
  Up, k, x         - Rotate
  Space/P          - Pause
  R                - Restart (asks first while playing)
  B/Esc            - Back to lobby (asks first while playing)
  Q/Ctrl+C         - Quit

Examples:
  tetris play
  tetris play --name ayu --difficulty extreme
  tetris play --log-file ./tetris.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Prefill the player name")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselect a difficulty preset")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy with the game)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

func runPlay(_ *cobra.Command, _ []string) {
	presets, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		if _, ok := presets.Lookup(flagDifficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintf(os.Stderr, "Available presets: %s\n", strings.Join(presets.Keys(), ", "))
			os.Exit(1)
		}
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Presets: presets,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		PlayerName: flagName,
		Difficulty: flagDifficulty,
		Logger:     logger,
	}

	logger.Info("starting", "presets", len(presets.Difficulties), "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(opts); err != nil {
		logger.Error("tui stopped", "err", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to path, or nowhere when path is empty.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Nothing left to report to
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
