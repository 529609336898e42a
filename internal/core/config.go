package core

import "time"

// DefaultTickRate is used whenever a config carries no usable tick rate.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // World seed; the platform picks one when zero
}

// DefaultConfig returns an 80x24 terminal at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

func (c RuntimeConfig) rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// TickMillis is the simulated time of one tick. Replays store this value,
// so it is computed in float milliseconds rather than from TickInterval.
func (c RuntimeConfig) TickMillis() float64 {
	return 1000.0 / float64(c.rate())
}

// TickInterval is the wall-clock delay between ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.rate())
}

// GameState is the part of a game's state the platform reacts to.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
