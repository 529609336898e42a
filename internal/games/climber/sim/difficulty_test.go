package sim

import (
	"math"
	"testing"
)

func TestPlatformWeightsShift(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.Enabled = true
	d := NewDifficulty(cfg)

	easy := d.PlatformWeights(0)
	hard := d.PlatformWeights(cfg.Difficulty.Progression.MaxAt)

	if hard.Solid >= easy.Solid {
		t.Errorf("solid share should shrink: easy=%v hard=%v", easy.Solid, hard.Solid)
	}
	if hard.Fragile <= easy.Fragile || hard.MobileSlow <= easy.MobileSlow || hard.MobileFast <= easy.MobileFast {
		t.Errorf("fragile and mobile shares should grow: easy=%+v hard=%+v", easy, hard)
	}

	pw := cfg.Platforms.Weights
	if hard.Solid < pw.Solid.Floor {
		t.Errorf("solid %v below floor %v", hard.Solid, pw.Solid.Floor)
	}
	if hard.Fragile > pw.Fragile.Ceiling {
		t.Errorf("fragile %v above ceiling %v", hard.Fragile, pw.Fragile.Ceiling)
	}
}

func TestPlatformWeightsFeatureGates(t *testing.T) {
	cfg := testConfig()
	cfg.Features.Fragile = false
	cfg.Features.Mobile = false

	w := NewDifficulty(cfg).PlatformWeights(0)
	if w.Fragile != 0 || w.MobileSlow != 0 || w.MobileFast != 0 {
		t.Errorf("disabled kinds should weigh zero: %+v", w)
	}
	if w.Solid <= 0 {
		t.Error("solid must remain drawable")
	}
}

func TestPlatformWidthFloor(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.Enabled = true
	cfg.Platforms.WidthShrink = 1000
	d := NewDifficulty(cfg)

	if got := d.PlatformWidth(0); got != cfg.Platforms.BaseWidth {
		t.Errorf("width at zero = %v, want %v", got, cfg.Platforms.BaseWidth)
	}
	if got := d.PlatformWidth(cfg.Difficulty.Progression.MaxAt); got != cfg.Platforms.MinWidth {
		t.Errorf("width at max = %v, want floor %v", got, cfg.Platforms.MinWidth)
	}
}

func TestMobileSpeedCap(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.Enabled = true
	cfg.Platforms.SpeedGrowth = 100
	d := NewDifficulty(cfg)

	if got := d.MobileSpeed(0, false); got != cfg.Platforms.SlowSpeed {
		t.Errorf("slow speed at zero = %v", got)
	}
	if got := d.MobileSpeed(cfg.Difficulty.Progression.MaxAt, true); got != cfg.Platforms.MaxSpeed {
		t.Errorf("fast speed at max = %v, want cap %v", got, cfg.Platforms.MaxSpeed)
	}
}

func TestJumpApex(t *testing.T) {
	// 14.4 + 13.8 + ... + 0.6
	if got := jumpApex(15, -0.6); math.Abs(got-180) > 1e-6 {
		t.Errorf("jumpApex(15, -0.6) = %v, want 180", got)
	}
	if !math.IsInf(jumpApex(15, 0), 1) {
		t.Error("zero gravity should give unlimited reach")
	}
}

func TestGapRangeReachable(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.Enabled = true
	cfg.Platforms.GapGrowth = 500
	d := NewDifficulty(cfg)

	lo, hi := d.GapRange(0)
	if lo != cfg.Platforms.MinGap || hi != cfg.Platforms.MaxGap {
		t.Errorf("GapRange(0) = [%v, %v]", lo, hi)
	}

	_, hi = d.GapRange(cfg.Difficulty.Progression.MaxAt)
	if hi > d.JumpReach() {
		t.Errorf("max gap %v exceeds jump reach %v", hi, d.JumpReach())
	}

	cfg.Platforms.MinGap = 1000
	lo, hi = NewDifficulty(cfg).GapRange(0)
	if lo > hi {
		t.Errorf("inverted range [%v, %v]", lo, hi)
	}
}

func TestEnemySpawnChance(t *testing.T) {
	cfg := testConfig()
	d := NewDifficulty(cfg)
	unlock := cfg.Enemies.UnlockScore

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{unlock - 1, 0},
		{unlock, cfg.Enemies.BaseChance},
		{unlock + 1000, cfg.Enemies.BaseChance + 1000*cfg.Enemies.ChancePerPoint},
		{unlock + 10_000_000, cfg.Enemies.MaxChance},
	}
	for _, tt := range tests {
		if got := d.EnemySpawnChance(tt.score); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EnemySpawnChance(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	cfg.Features.Enemies = false
	if got := NewDifficulty(cfg).EnemySpawnChance(unlock + 1000); got != 0 {
		t.Errorf("disabled enemies chance = %v", got)
	}
}

func TestEnemiesPerSpawn(t *testing.T) {
	cfg := testConfig()
	d := NewDifficulty(cfg)
	unlock := cfg.Enemies.UnlockScore
	every := cfg.Enemies.ExtraEvery

	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{unlock, 1},
		{unlock + every, 2},
		{unlock + 100*every, cfg.Enemies.MaxPerSpawn},
	}
	for _, tt := range tests {
		if got := d.EnemiesPerSpawn(tt.score); got != tt.want {
			t.Errorf("EnemiesPerSpawn(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestTimersShrinkToFloor(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.Enabled = true
	cfg.Enemies.FireIntervalShrink = 1e6
	cfg.Platforms.FragileLifetimeShrink = 1e6
	d := NewDifficulty(cfg)
	maxAt := cfg.Difficulty.Progression.MaxAt

	if got := d.EnemyFireInterval(0); got != cfg.Enemies.FireIntervalMs {
		t.Errorf("fire interval at zero = %v", got)
	}
	if got := d.EnemyFireInterval(maxAt); got != cfg.Enemies.MinFireIntervalMs {
		t.Errorf("fire interval at max = %v, want %v", got, cfg.Enemies.MinFireIntervalMs)
	}
	if got := d.FragileLifetime(maxAt); got != cfg.Platforms.MinFragileLifetimeMs {
		t.Errorf("fragile lifetime at max = %v, want %v", got, cfg.Platforms.MinFragileLifetimeMs)
	}

	cfg.Platforms.FragileLifetimeMs = 0
	if got := NewDifficulty(cfg).FragileLifetime(0); got != 0 {
		t.Errorf("unlimited lifetime = %v, want 0", got)
	}
}

func TestEnemyTiersBanded(t *testing.T) {
	d := NewDifficulty(testConfig())
	if got := d.EnemyTiers(0); len(got) != 1 {
		t.Errorf("tiers at 0 = %v, want only the first", got)
	}
	if got := d.EnemyTiers(1_000_000); len(got) != 3 {
		t.Errorf("tiers at high score = %v, want all", got)
	}
}
