package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climber"
	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/spectate"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagConfig        string
	flagDifficulty    string
	flagReplayDir     string
	flagNoReplay      bool
	flagSpectate      string
	flagSpectateEvery int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start climbing. The mode defaults to climber.

Controls:
  A/D, Left/Right  - Steer
  Space/W/Up       - Boost (spends one energy charge)
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Every run is recorded to --replay-dir unless --no-replay is set.
With --spectate, snapshots are served over HTTP and WebSocket so
others can watch the run.

Examples:
  climber play
  climber play climber_classic
  climber play --difficulty hard --seed 42
  climber play --config ./my-climber.yaml
  climber play --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve live snapshots on this address (e.g. :8080)")
	playCmd.Flags().IntVar(&flagSpectateEvery, "spectate-every", 2, "Forward every Nth snapshot to spectators")
}

// addGameFlags registers the flags that configure the climber modes.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom climber config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagReplayDir, "replay-dir", "~/.climber/replays", "Directory for recorded runs")
	cmd.Flags().BoolVar(&flagNoReplay, "no-replay", false, "Don't record runs")
}

// applyGameFlags validates the game flags and hands them to the climber.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadClimber(flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	climber.SetConfigPath(flagConfig)
	climber.SetDifficultyPreset(flagDifficulty)
	if flagNoReplay {
		climber.SetReplayDir("")
	} else {
		climber.SetReplayDir(expandHome(flagReplayDir))
	}
	return nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
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

func runPlay(cmd *cobra.Command, args []string) {
	gameID := climber.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'climber list' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	stopSpectate, err := startSpectator(flagSpectate, flagSpectateEvery)
	if err != nil {
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

	stopSpectate()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if rr, ok := game.(registry.RunReporter); ok {
		if run, ok := rr.LastRun(); ok && run.ReplayPath != "" {
			fmt.Printf("Last run saved to %s\n", run.ReplayPath)
		}
	}
}

// startSpectator serves live snapshots on addr. The terminal is in use by
// the game, so the server logs to a file next to the replays.
func startSpectator(addr string, every int) (stop func(), err error) {
	if addr == "" {
		return func() {}, nil
	}

	// Bind now: once the game owns the terminal a busy port would only
	// show up in the log file.
	ln, err := spectate.Listen(addr)
	if err != nil {
		return nil, err
	}

	logPath := expandHome(filepath.Join("~", ".climber", "spectate.log"))
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		ln.Close()
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		ln.Close()
		return nil, fmt.Errorf("cannot open spectator log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "climber-spectate",
	})

	hub := spectate.NewHub(logger, every)
	climber.SetPublisher(hub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := spectate.NewServer(hub, logger).Serve(ctx, ln); err != nil {
			logger.Error("spectator server stopped", "error", err)
		}
	}()

	return func() {
		climber.SetPublisher(nil)
		cancel()
		<-done
		logger.Info("spectating finished", "dropped", hub.Dropped())
		f.Close()
	}, nil
}
