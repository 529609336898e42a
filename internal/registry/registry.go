// Package registry maps mode IDs to game factories. Game packages register
// their variants from init, so the CLI and the TUI only import them for
// side effects.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic: the
// platform maps keys, keeps time and draws the screen.
type Game interface {
	// ID is the stable mode name used on the command line and in storage.
	ID() string
	Title() string

	// Reset starts a fresh run. It is called before the first Step and on
	// every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions pressed during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen that has already been cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// RunReporter is implemented by games that keep run history next to the
// plain score.
type RunReporter interface {
	// LastRun returns the most recently finished run, if any.
	LastRun() (RunSummary, bool)
}

// RunSummary describes a finished run.
type RunSummary struct {
	RunID      string
	GameID     string
	Seed       int64
	Score      int
	Kills      int
	Ticks      int
	Reason     string
	ReplayPath string // Empty when the run was not recorded
	StartedAt  time.Time
}

// GameInfo is the listing entry for a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. The title is taken from one throwaway
// instance. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new instance of the mode.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Title(id)
	return ok
}

// Title returns the display title of a registered mode.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.title, ok
}
