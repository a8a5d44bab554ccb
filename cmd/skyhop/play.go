package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
)

const (
	defaultGameID = "jumper"
	classicGameID = "jumper_classic"
)

var flagClassic bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump (again in mid-air for a double jump)
  P/Esc            - Pause
  R/Space          - Restart (after game over)
  M                - Sound on/off
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, fewer bombs
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, moving platforms from the start
  fixed  - No progression, stays at config's initial level

Examples:
  skyhop play
  skyhop play --classic
  skyhop play --difficulty hard --seed 42
  skyhop play --config ./my-jumper.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagClassic, "classic", false, "Single jump and static bombs")
}

// gameIDFromArgs resolves the optional game argument and --classic.
func gameIDFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if flagClassic {
		return classicGameID
	}
	return defaultGameID
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gameIDFromArgs(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skyhop list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	svc := openServices(true)
	runErr := tui.Run(game, svc.tuiDeps(), terminalConfig())

	// Close before a potential exit
	svc.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
