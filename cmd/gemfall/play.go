package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gemfall/internal/core"
	"github.com/vovakirdan/gemfall/internal/gems"
	"github.com/vovakirdan/gemfall/internal/platform/tui"
	"github.com/vovakirdan/gemfall/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Gemfall",
	Long: `Start a game in the current terminal.

Controls:
  Mouse        - Click to select, click a neighbor (or drag) to swap
  Arrows/WASD  - Move the cursor
  Enter/Space  - Select / swap with the selection
  Esc/B        - Deselect
  P            - Pause
  R            - Restart with a fresh board
  Q/Ctrl+C     - Quit (saves your score)

Examples:
  gemfall play
  gemfall play --seed 42
  gemfall play --config ./my-gems.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Custom tuning must be set before the engine's first Reset
	gems.SetConfigPath(flagConfig)

	game := gems.New()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
