// Package climber adapts the platform climbing simulation to the game
// registry. The simulation itself lives in the sim subpackage; this
// package maps platform input onto it, records replays and draws the
// world into a character screen.
package climber

import (
	"time"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climber/sim"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/replay"
)

// Game IDs
const (
	ID        = "climber"
	ClassicID = "climber_classic"
)

const (
	// Terminals only report key presses, so a steering key keeps the
	// actor moving for a few ticks after the last press.
	steerHoldTicks = 12
	// Covers the usual key repeat delay so a held boost key spends one charge.
	boostHoldTicks = 36
	// Ticks the actor flashes after taking damage.
	hitFlashTicks = 8
)

// Publisher receives a snapshot after every simulated tick.
type Publisher interface {
	Publish(snap sim.Snapshot)
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	replayDir        string
	publisher        Publisher
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetReplayDir enables replay recording into dir. Empty disables it.
func SetReplayDir(dir string) {
	replayDir = dir
}

// SetPublisher sets the snapshot receiver. Nil disables publishing.
func SetPublisher(p Publisher) {
	publisher = p
}

// Game implements the climber for the platform.
type Game struct {
	id      string
	title   string
	classic bool
	preset  config.DifficultyPreset // Overrides the package-level preset

	runtime core.RuntimeConfig
	cfg     config.ClimberConfig
	engine  *sim.Engine
	paused  bool

	steer     int // Latched steering direction
	steerHold int // Ticks left on the steering latch
	boostHold int // Ticks left on the boost latch
	hitFlash  int

	runID     string
	startedAt time.Time
	rec       *replay.Recorder
	lastRun   registry.RunSummary
	hasRun    bool
	finished  bool
}

// New creates the full climber with every feature the config enables.
func New() *Game {
	return &Game{id: ID, title: "Sky Climber"}
}

// NewClassic creates the climber with only solid platforms and no extras.
func NewClassic() *Game {
	return &Game{id: ClassicID, title: "Sky Climber Classic", classic: true}
}

// SetDifficulty sets the preset for this instance only. It takes effect
// on the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new run. An unfinished recording of the previous run is
// closed without a result.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.closeRecorder()
	g.runtime = runtime

	cfg, err := config.LoadClimber(configPath)
	if err != nil {
		cfg = config.DefaultClimberConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyClimberPreset(&cfg, preset)
	}
	if g.classic {
		cfg.Features = config.ClassicFeatures()
	}
	g.cfg = cfg

	g.engine = sim.New(cfg, sim.NewSource(runtime.Seed))
	g.paused = false
	g.steer, g.steerHold, g.boostHold, g.hitFlash = 0, 0, 0, 0
	g.finished = false

	g.runID = replay.NewRunID()
	g.startedAt = time.Now().UTC()
	if replayDir != "" {
		rec, err := replay.NewRecorder(replayDir, replay.Header{
			RunID:     g.runID,
			Game:      g.id,
			Seed:      runtime.Seed,
			StartedAt: g.startedAt,
			Config:    cfg,
		})
		if err == nil {
			g.rec = rec
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || g.engine.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dir := g.latchSteer(in.Direction())
	boost := g.latchBoost(in.Has(core.ActionBoost))

	g.engine.ApplyInput(dir)
	if boost {
		g.engine.TriggerBoost()
	}
	dt := g.runtime.TickMillis()
	tick := g.engine.Ticks()
	ev := g.engine.Step(dt)

	if g.hitFlash > 0 {
		g.hitFlash--
	}
	if ev.Has(sim.EventHit) {
		g.hitFlash = hitFlashTicks
	}

	if g.rec != nil {
		if err := g.rec.Record(replay.Frame{Tick: tick, Elapsed: dt, Dir: dir, Boost: boost}); err != nil {
			g.closeRecorder()
		}
	}
	if publisher != nil {
		publisher.Publish(g.engine.Snapshot())
	}
	if ev.GameOver {
		g.finishRun(ev)
	}

	return core.StepResult{State: g.State()}
}

// latchSteer holds the last pressed direction for a few ticks.
func (g *Game) latchSteer(pressed int) int {
	if pressed != 0 {
		g.steer = pressed
		g.steerHold = steerHoldTicks
		return g.steer
	}
	if g.steerHold > 0 {
		g.steerHold--
	}
	if g.steerHold == 0 {
		g.steer = 0
	}
	return g.steer
}

// latchBoost keeps the boost request held while key repeats arrive.
func (g *Game) latchBoost(pressed bool) bool {
	if pressed {
		g.boostHold = boostHoldTicks
		return true
	}
	if g.boostHold > 0 {
		g.boostHold--
		return true
	}
	return false
}

// finishRun records the result of a finished run.
func (g *Game) finishRun(ev sim.FrameEvents) {
	if g.finished {
		return
	}
	g.finished = true

	g.lastRun = registry.RunSummary{
		RunID:     g.runID,
		GameID:    g.id,
		Seed:      g.runtime.Seed,
		Score:     ev.FinalScore,
		Kills:     g.engine.Kills(),
		Ticks:     g.engine.Ticks(),
		Reason:    string(ev.Reason),
		StartedAt: g.startedAt,
	}
	g.hasRun = true

	if g.rec == nil {
		return
	}
	err := g.rec.Finish(replay.Result{
		Score:  ev.FinalScore,
		Kills:  g.engine.Kills(),
		Ticks:  g.engine.Ticks(),
		Reason: string(ev.Reason),
	})
	if err == nil {
		g.lastRun.ReplayPath = g.rec.Path()
	}
	g.rec = nil
}

func (g *Game) closeRecorder() {
	if g.rec == nil {
		return
	}
	//nolint:errcheck // Abandoned recording, nothing to report
	g.rec.Close()
	g.rec = nil
}

// Close stops an unfinished recording.
func (g *Game) Close() error {
	g.closeRecorder()
	return nil
}

// LastRun returns the most recently finished run.
func (g *Game) LastRun() (registry.RunSummary, bool) {
	return g.lastRun, g.hasRun
}

// Engine exposes the running simulation.
func (g *Game) Engine() *sim.Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicID, func() registry.Game {
		return NewClassic()
	})
}
