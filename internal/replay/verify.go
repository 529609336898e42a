package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-climber/internal/games/climber/sim"
)

// ErrNoResult is returned when verifying a replay that was never finished.
var ErrNoResult = errors.New("replay: run has no recorded result")

// Outcome is the result of re-simulating a replay.
type Outcome struct {
	Score    int
	Kills    int
	Ticks    int
	Reason   string
	GameOver bool
}

// Simulate re-runs the recorded inputs from the recorded seed.
func Simulate(rep *Replay) Outcome {
	e := sim.New(rep.Header.Config, sim.NewSource(rep.Header.Seed))
	for _, f := range rep.Frames {
		e.ApplyInput(f.Dir)
		if f.Boost {
			e.TriggerBoost()
		}
		e.Step(f.Elapsed)
	}
	return Outcome{
		Score:    e.Score(),
		Kills:    e.Kills(),
		Ticks:    e.Ticks(),
		Reason:   string(e.Reason()),
		GameOver: e.GameOver(),
	}
}

// Verify re-simulates a replay and checks it reproduces the recorded result.
func Verify(rep *Replay) (Outcome, error) {
	out := Simulate(rep)
	if rep.Result == nil {
		return out, ErrNoResult
	}
	want := rep.Result
	if out.Score != want.Score || out.Kills != want.Kills || out.Ticks != want.Ticks {
		return out, fmt.Errorf("replay: mismatch: recorded score=%d kills=%d ticks=%d, simulated score=%d kills=%d ticks=%d",
			want.Score, want.Kills, want.Ticks, out.Score, out.Kills, out.Ticks)
	}
	return out, nil
}
