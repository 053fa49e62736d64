package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hue-hunt/internal/config"
	"github.com/vovakirdan/hue-hunt/internal/games/huehunt"
	"github.com/vovakirdan/hue-hunt/internal/platform/tui"
	"github.com/vovakirdan/hue-hunt/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to huehunt.

Controls:
  Enter/Space      - Start, pick the cell under the cursor
  Arrows/WASD/hjkl - Move the cursor
  Mouse click      - Pick a cell
  R                - Play again (after time runs out)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options (round length):
  easy   - 90 seconds
  normal - 60 seconds
  hard   - 45 seconds

Examples:
  huehunt play
  huehunt play --difficulty easy
  huehunt play --config ./my-huehunt.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := huehunt.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'huehunt list' to see available games.")
		os.Exit(1)
	}

	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A broken --config is reported up front instead of silently
	// falling back to defaults inside the game.
	if flagConfig != "" {
		if _, err := config.LoadHueHunt(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	game, err := tui.CreateGame(gameID, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
