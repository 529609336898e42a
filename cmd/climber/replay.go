package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/replay"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var flagReplayLimit int

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Work with recorded runs",
	Long: `Recorded runs hold the seed, the config and every tick's input,
so a run can be simulated again and checked against its result.

Examples:
  climber replay list
  climber replay info ~/.climber/replays/<run>.jsonl.zst
  climber replay verify ~/.climber/replays/*.jsonl.zst`,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify <file>...",
	Short: "Re-simulate runs and compare with their recorded result",
	Args:  cobra.MinimumNArgs(1),
	Run:   runReplayVerify,
}

var replayInfoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show the header and result of a recorded run",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayInfo,
}

var replayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs that have a replay",
	Args:  cobra.NoArgs,
	Run:   runReplayList,
}

func init() {
	replayListCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of runs to list")

	replayCmd.AddCommand(replayVerifyCmd)
	replayCmd.AddCommand(replayInfoCmd)
	replayCmd.AddCommand(replayListCmd)
}

func runReplayVerify(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		rep, err := replay.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", path, err)
			failed++
			continue
		}

		out, err := replay.Verify(rep)
		switch {
		case errors.Is(err, replay.ErrNoResult):
			fmt.Printf("SKIP  %s: unfinished run (%s ticks simulated)\n", path, humanize.Comma(int64(out.Ticks)))
		case err != nil:
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", path, err)
			failed++
		default:
			fmt.Printf("OK    %s: score %s, %d kills, %s\n", path, humanize.Comma(int64(out.Score)), out.Kills, out.Reason)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func runReplayInfo(_ *cobra.Command, args []string) {
	rep, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	h := rep.Header
	fmt.Printf("Run:      %s\n", h.RunID)
	fmt.Printf("Mode:     %s\n", h.Game)
	fmt.Printf("Seed:     %d\n", h.Seed)
	fmt.Printf("Started:  %s (%s)\n", h.StartedAt.Local().Format("2006-01-02 15:04:05"), humanize.Time(h.StartedAt))
	fmt.Printf("Frames:   %s\n", humanize.Comma(int64(len(rep.Frames))))

	if info, err := os.Stat(args[0]); err == nil {
		fmt.Printf("Size:     %s\n", humanize.Bytes(uint64(info.Size())))
	}

	if rep.Result == nil {
		fmt.Println("Result:   none (unfinished)")
		return
	}
	r := rep.Result
	fmt.Printf("Result:   score %s, %d kills, %s after %s ticks\n",
		humanize.Comma(int64(r.Score)), r.Kills, r.Reason, humanize.Comma(int64(r.Ticks)))
}

func runReplayList(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns("", flagReplayLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	shown := 0
	for _, r := range runs {
		if r.ReplayPath == "" {
			continue
		}
		fmt.Printf("  %-14s  %-16s  %10s  %s\n",
			humanize.Time(r.CreatedAt), r.GameID, humanize.Comma(int64(r.Score)), r.ReplayPath)
		shown++
	}
	if shown == 0 {
		fmt.Println("No recorded runs yet.")
	}
}
