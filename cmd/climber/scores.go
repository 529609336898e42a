package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/games/climber"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var flagRecentRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores and the most recent runs for a mode.
The mode defaults to climber.

Examples:
  climber scores
  climber scores climber_classic --runs 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecentRuns, "runs", 5, "Number of recent runs to show (0 hides them)")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := climber.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	title, ok := registry.Title(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'climber list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'climber play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-5s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-5s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-5s  %-10s  %s\n",
			humanize.Ordinal(i+1),
			humanize.Comma(int64(entry.Score)),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %s  |  Runs: %s  |  Average: %s  |  Most kills: %d\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.GamesCount)),
			humanize.Comma(int64(stats.AvgScore)),
			stats.BestKills,
		)
	}

	if flagRecentRuns <= 0 {
		return
	}
	runs, err := store.RecentRuns(gameID, flagRecentRuns)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  %-14s  %10s  %3d kills  %-7s  %s\n",
			humanize.Time(r.CreatedAt),
			humanize.Comma(int64(r.Score)),
			r.Kills,
			r.Reason,
			r.ReplayPath,
		)
	}
}
