// ledcade drives a set of arcade games built for a 64x32 RGB LED matrix,
// rendered in the terminal with half-block cells or served over SSH.
//
// Usage:
//
//	ledcade list              - List available games
//	ledcade play <game>       - Play a game
//	ledcade scores [game]     - Show high scores
//	ledcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (0 = game default)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.ledcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/ledcade/ledcade/internal/games/breakout"
	_ "github.com/ledcade/ledcade/internal/games/dino"
	_ "github.com/ledcade/ledcade/internal/games/flappy"
	_ "github.com/ledcade/ledcade/internal/games/lanes"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledcade",
	Short: "LED matrix arcade games in your terminal",
	Long: `ledcade runs a set of arcade games designed for a 64x32 RGB LED
matrix. In the terminal each panel pixel maps to half a character cell.

Available commands:
  list     - Show all available games
  play     - Play a specific game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  ledcade list
  ledcade play flappy
  ledcade play breakout --difficulty hard
  ledcade scores
  ledcade serve --ssh :2222 --game dino`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = game default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ledcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
