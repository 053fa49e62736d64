// huehunt is a terminal "find the odd color" game.
//
// Usage:
//
//	huehunt list              - List available games
//	huehunt play [game]       - Play a game (default: huehunt)
//	huehunt menu              - Pick a difficulty interactively
//	huehunt serve             - Start SSH server for remote play
//	huehunt scores [game]     - Show best stages
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.huehunt/scores.db)
//	--config <path>  - Use a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hue-hunt/internal/core"
	"github.com/vovakirdan/hue-hunt/internal/games/huehunt"
	"github.com/vovakirdan/hue-hunt/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huehunt",
	Short: "Hue Hunt - find the odd color before time runs out",
	Long: `Hue Hunt shows a grid of nearly identical colors. Pick the one cell
that differs before the countdown ends. Every hit grows the grid and
lowers the contrast; every miss drops you a stage.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View best stages

Examples:
  huehunt play
  huehunt play --difficulty hard
  huehunt menu
  huehunt serve --ssh :2222
  huehunt scores`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		huehunt.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.huehunt/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
