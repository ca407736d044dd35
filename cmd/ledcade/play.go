package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/games/breakout"
	"github.com/ledcade/ledcade/internal/games/dino"
	"github.com/ledcade/ledcade/internal/games/flappy"
	"github.com/ledcade/ledcade/internal/games/lanes"
	"github.com/ledcade/ledcade/internal/platform/tui"
	"github.com/ledcade/ledcade/internal/registry"
	"github.com/ledcade/ledcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right or A/D  - Move / switch lanes
  Space/Up/W         - Serve / flap / jump
  P/Esc              - Pause
  R                  - Restart
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  ledcade play flappy
  ledcade play dino --difficulty easy
  ledcade play breakout --config ./my-breakout.yaml
  ledcade play lanes --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagWidth, "width", 64, "Arena width in pixels")
	playCmd.Flags().IntVar(&flagHeight, "height", 32, "Arena height in pixels")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ledcade list' to see available games.")
		os.Exit(1)
	}

	// The arena is the fixed panel size, not the terminal size. Half-block
	// rendering needs W columns and H/2 rows plus two status lines.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < flagWidth || h < flagHeight/2+2 {
			fmt.Fprintf(os.Stderr,
				"Warning: terminal %dx%d is smaller than the %dx%d panel needs (%dx%d)\n",
				w, h, flagWidth, flagHeight, flagWidth, flagHeight/2+2)
		}
	}

	cfg := core.RuntimeConfig{
		ArenaW:   flagWidth,
		ArenaH:   flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case "breakout":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
	case "flappy":
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
	case "dino":
		dino.SetConfigPath(flagConfig)
		dino.SetDifficultyPreset(flagDifficulty)
	case "lanes":
		lanes.SetConfigPath(flagConfig)
		lanes.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Reject a bad configuration before touching storage or the terminal
	if cfg.TickRate == 0 {
		cfg.TickRate = game.DefaultTickRate()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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
