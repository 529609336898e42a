// climber is a vertically scrolling platform climber for the terminal.
//
// Usage:
//
//	climber list                  - List available modes
//	climber play [mode]           - Play a mode (default: climber)
//	climber menu                  - Start menu to pick modes interactively
//	climber serve                 - Start SSH server for remote play
//	climber scores [mode]         - Show high scores and recent runs
//	climber replay verify <file>  - Re-simulate a recorded run
//	climber config validate <file> - Check a config file against the schema
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.climber/scores.db)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-climber/internal/games/climber"
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
	Use:   "climber",
	Short: "Sky Climber - bounce your way up in the terminal",
	Long: `Sky Climber is a vertically scrolling platformer for the terminal.
Steer left and right, land on platforms to bounce higher and
don't fall off the bottom of the screen.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  replay   - Work with recorded runs
  config   - Inspect and validate config files

Examples:
  climber play
  climber play climber_classic --difficulty hard
  climber menu
  climber serve --ssh :2222
  climber replay verify ~/.climber/replays/<run>.jsonl.zst`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.climber/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
