package sim

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
)

const fallbackMaxElapsedMs = 100

// Tick advances a state by one frame in the fixed component order and
// returns the terminal reason, if any. dt must already be clamped.
func Tick(s *State, dt float64) Reason {
	tickBuff(s, dt)
	Integrate(s)
	ResolveCollisions(s)
	Scroll(s)
	UpdateLifecycle(s, dt)
	s.Ticks++
	return Terminal(s)
}

// Terminal reports why the run is over, or ReasonNone.
func Terminal(s *State) Reason {
	if s.Cfg.Features.Health && s.Actor.Health <= 0 {
		return ReasonDied
	}
	if s.Actor.Y < s.Midline()-s.Cfg.Physics.TerminalMargin {
		return ReasonFell
	}
	return ReasonNone
}

// tickBuff reverts the jump force once the buff runs out.
func tickBuff(s *State, dt float64) {
	a := &s.Actor
	if a.BuffMs <= 0 {
		return
	}
	a.BuffMs -= dt
	if a.BuffMs <= 0 {
		a.BuffMs = 0
		a.JumpForce = s.Cfg.Actor.JumpForce
	}
}

// Engine drives one run. It is not safe for concurrent use; callers step
// it from a single loop.
type Engine struct {
	cfg   config.ClimberConfig
	src   Source
	state *State

	boostRequested bool // TriggerBoost was called since the last Step
	boostHeld      bool // A boost was requested in the previous Step

	over   bool
	reason Reason
}

// New creates an engine and builds the first run.
func New(cfg config.ClimberConfig, src Source) *Engine {
	e := &Engine{cfg: capHealth(cfg), src: src}
	e.Reset()
	return e
}

// Reset rebuilds every entity and restores score, health and energy.
// The random source continues where it left off.
func (e *Engine) Reset() {
	e.state = NewState(e.cfg, e.src)
	e.boostRequested = false
	e.boostHeld = false
	e.over = false
	e.reason = ReasonNone
}

// ApplyInput sets the horizontal steering direction. Any value is reduced
// to its sign.
func (e *Engine) ApplyInput(dir int) {
	switch {
	case dir < 0:
		dir = -1
	case dir > 0:
		dir = 1
	}
	e.state.Actor.Dir = dir
}

// TriggerBoost requests one energy boost. Calling it every frame while a
// key is held spends a single charge; it re-arms after a frame without a
// call.
func (e *Engine) TriggerBoost() {
	e.boostRequested = true
}

// Step advances the simulation by one tick. Elapsed time only drives
// timers and is clamped to [0, max_elapsed_ms]; NaN counts as zero.
// After game over Step changes nothing and keeps reporting the final
// result.
func (e *Engine) Step(elapsedMs float64) FrameEvents {
	s := e.state
	if e.over {
		return FrameEvents{GameOver: true, FinalScore: s.Score, Reason: e.reason}
	}

	s.Events = s.Events[:0]
	before := s.Score

	e.applyBoost()
	reason := Tick(s, e.clampElapsed(elapsedMs))

	ev := FrameEvents{
		ScoreDelta: s.Score - before,
		Events:     append([]Event(nil), s.Events...),
	}
	if reason != ReasonNone {
		e.over = true
		e.reason = reason
		ev.GameOver = true
		ev.FinalScore = s.Score
		ev.Reason = reason
	}
	return ev
}

func (e *Engine) applyBoost() {
	requested := e.boostRequested
	e.boostRequested = false
	defer func() { e.boostHeld = requested }()

	if !requested || e.boostHeld || !e.cfg.Features.Energy {
		return
	}
	a := &e.state.Actor
	if a.Energy <= 0 {
		return
	}
	a.Energy--
	a.VY += e.cfg.Actor.EnergyBoost
	e.state.Emit(Event{Kind: EventBoost, X: a.X, Y: a.Y})
}

func (e *Engine) clampElapsed(ms float64) float64 {
	limit := e.cfg.Physics.MaxElapsedMs
	if limit <= 0 {
		limit = fallbackMaxElapsedMs
	}
	if math.IsNaN(ms) {
		return 0
	}
	return clamp(ms, 0, limit)
}

// Actor returns a copy of the actor.
func (e *Engine) Actor() Actor {
	return e.state.Actor
}

// Platforms returns a copy of all platforms, items included.
func (e *Engine) Platforms() []Platform {
	out := make([]Platform, len(e.state.Platforms))
	copy(out, e.state.Platforms)
	for i := range out {
		if out[i].Item != nil {
			it := *out[i].Item
			out[i].Item = &it
		}
	}
	return out
}

// Items returns copies of the active items.
func (e *Engine) Items() []Item {
	var out []Item
	for _, p := range e.state.Platforms {
		if p.Item != nil && p.Item.Active {
			out = append(out, *p.Item)
		}
	}
	return out
}

// Enemies returns copies of the live enemies.
func (e *Engine) Enemies() []Enemy {
	out := make([]Enemy, len(e.state.Enemies))
	for i, en := range e.state.Enemies {
		en.Projectiles = append([]Projectile(nil), en.Projectiles...)
		out[i] = en
	}
	return out
}

// Projectiles returns every projectile in flight, actor shots first.
func (e *Engine) Projectiles() []Projectile {
	out := append([]Projectile(nil), e.state.Shots...)
	for _, en := range e.state.Enemies {
		out = append(out, en.Projectiles...)
	}
	return out
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.state.Score
}

// Kills returns the number of enemies killed this run.
func (e *Engine) Kills() int {
	return e.state.Kills
}

// Ticks returns the number of ticks simulated this run.
func (e *Engine) Ticks() int {
	return e.state.Ticks
}

// Level returns the difficulty level at the current score.
func (e *Engine) Level() float64 {
	return e.state.Difficulty.Level(e.state.Score)
}

// Camera returns the scroll controller state.
func (e *Engine) Camera() Camera {
	return e.state.Camera
}

// GameOver reports whether the run has ended.
func (e *Engine) GameOver() bool {
	return e.over
}

// Reason returns why the run ended.
func (e *Engine) Reason() Reason {
	return e.reason
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.ClimberConfig {
	return e.cfg
}
