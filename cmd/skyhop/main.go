// skyhop is an endless vertical platformer for the terminal and the desktop.
//
// Usage:
//
//	skyhop list              - List available games
//	skyhop play [game]       - Play a game (default: jumper)
//	skyhop menu              - Start menu to pick games interactively
//	skyhop window            - Play in a desktop window
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores [game]     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.skyhop/scores.db)
//	--config <path>       - Custom jumper config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--mute                - Start with sound off
//	--watch               - Restart the run when the config file changes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/games/jumper"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagWatch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Sky Hop - an endless vertical platformer",
	Long: `Sky Hop is an endless vertical platformer. Hop from platform to
platform, collect coins and stay away from bombs. The higher you climb,
the higher your score.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  menu     - Interactive game picker menu
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  skyhop play
  skyhop play --classic
  skyhop menu --difficulty hard
  skyhop window --mute
  skyhop serve --ssh :2222
  skyhop scores jumper`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		jumper.SetConfigPath(flagConfig)
		jumper.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom jumper config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Restart the run when the config file changes")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
