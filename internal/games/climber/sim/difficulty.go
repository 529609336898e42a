package sim

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// Weights holds the relative draw weights of platform kinds.
type Weights struct {
	Solid      float64
	Fragile    float64
	MobileSlow float64
	MobileFast float64
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	return w.Solid + w.Fragile + w.MobileSlow + w.MobileFast
}

// Difficulty maps cumulative score to generation parameters.
// All methods are pure functions of score.
type Difficulty struct {
	cfg   config.ClimberConfig
	level *config.DifficultyManager
}

// NewDifficulty creates the difficulty model for a configuration.
func NewDifficulty(cfg config.ClimberConfig) *Difficulty {
	return &Difficulty{
		cfg:   cfg,
		level: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Level returns the difficulty level in [initial_level, 1] for a score.
func (d *Difficulty) Level(score int) float64 {
	return d.level.Level(score)
}

func curve(c config.WeightCurve, level float64) float64 {
	return clamp(c.Base+level*c.Growth, c.Floor, c.Ceiling)
}

// PlatformWeights returns the kind weights for a score. Kinds disabled by
// feature flags weigh zero.
func (d *Difficulty) PlatformWeights(score int) Weights {
	lv := d.Level(score)
	pw := d.cfg.Platforms.Weights
	w := Weights{Solid: curve(pw.Solid, lv)}
	if d.cfg.Features.Fragile {
		w.Fragile = curve(pw.Fragile, lv)
	}
	if d.cfg.Features.Mobile {
		w.MobileSlow = curve(pw.MobileSlow, lv)
		w.MobileFast = curve(pw.MobileFast, lv)
	}
	return w
}

// PlatformWidth returns the platform width for a score.
func (d *Difficulty) PlatformWidth(score int) float64 {
	p := d.cfg.Platforms
	w := p.BaseWidth - d.Level(score)*p.WidthShrink
	return math.Max(w, p.MinWidth)
}

// MobileSpeed returns the horizontal speed of a mobile platform.
func (d *Difficulty) MobileSpeed(score int, fast bool) float64 {
	p := d.cfg.Platforms
	base := p.SlowSpeed
	if fast {
		base = p.FastSpeed
	}
	return math.Min(base+d.Level(score)*p.SpeedGrowth, p.MaxSpeed)
}

// JumpReach returns the height the actor gains from a plain landing.
func (d *Difficulty) JumpReach() float64 {
	return jumpApex(d.cfg.Actor.JumpForce, d.cfg.Physics.Gravity)
}

// jumpApex sums per-tick displacement while velocity stays positive.
func jumpApex(v, g float64) float64 {
	if g >= 0 {
		return math.Inf(1)
	}
	h := 0.0
	for v += g; v > 0; v += g {
		h += v
	}
	return h
}

// GapRange returns the vertical gap range between consecutive platforms.
// The upper bound never exceeds the jump reach, so every gap is climbable.
func (d *Difficulty) GapRange(score int) (lo, hi float64) {
	p := d.cfg.Platforms
	lo = p.MinGap
	hi = p.MaxGap + d.Level(score)*p.GapGrowth
	if reach := d.JumpReach(); hi > reach {
		hi = reach
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// EnemySpawnChance returns the per-tick probability of an enemy spawn.
// It is zero below the unlock score.
func (d *Difficulty) EnemySpawnChance(score int) float64 {
	e := d.cfg.Enemies
	if !d.cfg.Features.Enemies || score < e.UnlockScore {
		return 0
	}
	return math.Min(e.BaseChance+float64(score-e.UnlockScore)*e.ChancePerPoint, e.MaxChance)
}

// EnemiesPerSpawn returns how many enemies one spawn opportunity may add.
func (d *Difficulty) EnemiesPerSpawn(score int) int {
	e := d.cfg.Enemies
	if !d.cfg.Features.Enemies || score < e.UnlockScore {
		return 0
	}
	n := 1
	if e.ExtraEvery > 0 {
		n += (score - e.UnlockScore) / e.ExtraEvery
	}
	if e.MaxPerSpawn > 0 && n > e.MaxPerSpawn {
		n = e.MaxPerSpawn
	}
	return n
}

// EnemyFireInterval returns the delay between enemy shots in ms.
func (d *Difficulty) EnemyFireInterval(score int) float64 {
	e := d.cfg.Enemies
	return math.Max(e.FireIntervalMs-d.Level(score)*e.FireIntervalShrink, e.MinFireIntervalMs)
}

// FragileLifetime returns how long a new fragile platform lasts in ms.
// Zero means fragile platforms never expire.
func (d *Difficulty) FragileLifetime(score int) float64 {
	p := d.cfg.Platforms
	if p.FragileLifetimeMs <= 0 {
		return 0
	}
	return math.Max(p.FragileLifetimeMs-d.Level(score)*p.FragileLifetimeShrink, p.MinFragileLifetimeMs)
}

// EnemyTiers returns the indexes of tiers unlocked at a score.
func (d *Difficulty) EnemyTiers(score int) []int {
	var out []int
	for i, t := range d.cfg.Enemies.Tiers {
		if score >= t.MinScore {
			out = append(out, i)
		}
	}
	return out
}

// clamp restricts v to [lo, hi]. When lo > hi, lo wins.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
