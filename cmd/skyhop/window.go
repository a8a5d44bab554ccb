package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/platform/gui"
	"github.com/vovakirdan/skyhop/internal/registry"
)

var (
	flagScale  float64
	flagDirect bool
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window with the main menu.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump
  P/Esc            - Pause
  R/Space          - Restart (after game over)
  Esc              - Back to the menu (paused or game over)
  M                - Sound on/off

Examples:
  skyhop window
  skyhop window --scale 1
  skyhop window jumper_classic --direct`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0.75, "Window size relative to the 600x800 playfield")
	windowCmd.Flags().BoolVar(&flagDirect, "direct", false, "Skip the menu and start the game")
	windowCmd.Flags().BoolVar(&flagClassic, "classic", false, "Single jump and static bombs (with --direct)")
}

func runWindow(_ *cobra.Command, args []string) {
	svc := openServices(true)
	opts := svc.windowOptions()
	opts.Scale = flagScale

	if flagDirect || len(args) > 0 {
		opts.GameID = gameIDFromArgs(args)
		if !registry.Exists(opts.GameID) {
			svc.close()
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", opts.GameID)
			os.Exit(1)
		}
	}

	err := gui.Run(opts)
	svc.close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
