package sim

import (
	"github.com/vovakirdan/tui-climber/internal/config"
)

// testConfig returns the default config with progression disabled, so
// generation parameters stay at their base values.
func testConfig() config.ClimberConfig {
	cfg := config.DefaultClimberConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	return cfg
}

// bareState returns a state with no platforms, enemies or shots.
func bareState(cfg config.ClimberConfig) *State {
	s := NewState(cfg, NewSource(1))
	s.Platforms = nil
	s.Enemies = nil
	s.Shots = nil
	s.Events = nil
	return s
}

// fixedSource always returns the same values.
type fixedSource struct {
	f float64
	n int
}

func (f fixedSource) Float64() float64 { return f.f }

func (f fixedSource) Intn(n int) int {
	if f.n >= n {
		return n - 1
	}
	return f.n
}

func countEvents(s *State, kind EventKind) int {
	n := 0
	for _, e := range s.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
