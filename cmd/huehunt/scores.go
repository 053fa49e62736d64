package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hue-hunt/internal/games/huehunt"
	"github.com/vovakirdan/hue-hunt/internal/registry"
	"github.com/vovakirdan/hue-hunt/internal/storage"
)

var (
	flagPlayer          string
	flagScoreDifficulty string
	flagLimit           int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best stages for a game",
	Long: `Display the best final stages for the specified game.

Examples:
  huehunt scores
  huehunt scores --difficulty hard
  huehunt scores --player alice --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show rounds by this SSH user")
	scoresCmd.Flags().StringVar(&flagScoreDifficulty, "difficulty", "", "Only show rounds played on this preset")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := huehunt.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'huehunt list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.BestRounds(storage.RoundQuery{
		GameID:     gameID,
		Difficulty: flagScoreDifficulty,
		Player:     flagPlayer,
		ByPlayer:   cmd.Flags().Changed("player"),
		Limit:      flagLimit,
	})
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Stages - %s\n", game.Title())
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'huehunt play %s' to set the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-12s  %-8s  %s\n", "Rank", "Stage", "Player", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %-8s  %s\n", "----", "-----", "------", "-----", "----")

	for i, r := range rounds {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-6d  %-12s  %-8s  %s\n", i+1, r.Stage, player, r.Difficulty, r.PlayedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Rounds: %d  |  Average: %.1f\n", stats.BestStage, stats.Rounds, stats.AvgStage)
	}
}
