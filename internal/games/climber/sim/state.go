package sim

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// State is the complete simulation state of one run.
// Component functions take it by pointer; nothing else holds entities.
type State struct {
	Cfg        config.ClimberConfig
	Rand       Source
	Difficulty *Difficulty

	Actor     Actor
	Platforms []Platform   // Constant length for the whole run
	Enemies   []Enemy      // Each enemy owns its projectiles
	Shots     []Projectile // Projectiles fired by the actor
	Camera    Camera

	Score int
	Kills int
	Ticks int

	ActorFireMs float64 // Countdown to the actor's next auto-fire shot
	Events      []Event // Events of the current tick

	nextEnemyID int
}

// NewState builds a fresh run: the actor above a centered start platform
// and a column of generated platforms above it.
func NewState(cfg config.ClimberConfig, src Source) *State {
	cfg = capHealth(cfg)
	s := &State{
		Cfg:        cfg,
		Rand:       src,
		Difficulty: NewDifficulty(cfg),
	}

	energy := 0
	if cfg.Features.Energy {
		energy = cfg.Actor.StartEnergy
		if energy > cfg.Actor.MaxEnergy {
			energy = cfg.Actor.MaxEnergy
		}
	}
	s.Actor = Actor{
		X:         cfg.Field.Width / 2,
		Y:         cfg.Actor.StartY,
		Width:     cfg.Actor.Width,
		Height:    cfg.Actor.Height,
		JumpForce: cfg.Actor.JumpForce,
		Health:    cfg.Actor.MaxHealth,
		Energy:    energy,
	}

	count := cfg.Platforms.Count
	if count < 1 {
		count = 1
	}
	s.Platforms = make([]Platform, 0, count)

	width := clamp(cfg.Platforms.BaseWidth, 1, cfg.Field.Width)
	start := Platform{
		X:      cfg.Field.Width/2 - width/2,
		Y:      cfg.Platforms.StartY,
		Width:  width,
		Height: cfg.Platforms.Height,
		Kind:   PlatformSolid,
	}
	s.Platforms = append(s.Platforms, start)

	y := start.Y
	for len(s.Platforms) < count {
		lo, hi := s.Difficulty.GapRange(s.Score)
		y += uniform(s.Rand, lo, hi)
		s.Platforms = append(s.Platforms, NewPlatform(s, y))
	}

	s.ActorFireMs = cfg.Combat.ActorFireIntervalMs
	return s
}

// capHealth keeps the configured maximum within [1, MaxActorHealth].
func capHealth(cfg config.ClimberConfig) config.ClimberConfig {
	cfg.Actor.MaxHealth = min(max(cfg.Actor.MaxHealth, 1), config.MaxActorHealth)
	return cfg
}

// Midline is the height the camera keeps the actor at or below.
func (s *State) Midline() float64 {
	return s.Cfg.Field.Height / 2
}

// MaxPlatformY returns the highest platform position.
func (s *State) MaxPlatformY() float64 {
	maxY := math.Inf(-1)
	for _, p := range s.Platforms {
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return maxY
}

// Emit records an event for the current tick.
func (s *State) Emit(e Event) {
	s.Events = append(s.Events, e)
}

// damageActor lowers health, clamped at zero. It is a no-op when the
// health feature is off.
func (s *State) damageActor(amount int) {
	if !s.Cfg.Features.Health || amount <= 0 {
		return
	}
	s.Actor.Health -= amount
	if s.Actor.Health < 0 {
		s.Actor.Health = 0
	}
	s.Emit(Event{Kind: EventHit, X: s.Actor.X, Y: s.Actor.Y, Amount: amount})
}

// healActor raises health, clamped at the maximum.
func (s *State) healActor(amount int) {
	if !s.Cfg.Features.Health || amount <= 0 {
		return
	}
	s.Actor.Health += amount
	if s.Actor.Health > s.Cfg.Actor.MaxHealth {
		s.Actor.Health = s.Cfg.Actor.MaxHealth
	}
}

// addEnergy grants charges up to the maximum.
func (s *State) addEnergy(n int) {
	if !s.Cfg.Features.Energy {
		return
	}
	s.Actor.Energy += n
	if s.Actor.Energy > s.Cfg.Actor.MaxEnergy {
		s.Actor.Energy = s.Cfg.Actor.MaxEnergy
	}
}
