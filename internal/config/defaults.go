package config

import (
	_ "embed"
)

//go:embed defaults/climber.yaml
var defaultClimberYAML []byte

//go:embed defaults/climber.schema.json
var climberSchemaJSON string

// DefaultYAML returns a copy of the embedded default config file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultClimberYAML...)
}

// DefaultClimberConfig returns the default climber configuration.
// It mirrors defaults/climber.yaml and is used when the embedded file
// cannot be parsed.
func DefaultClimberConfig() ClimberConfig {
	return ClimberConfig{
		Features: AllFeatures(),
		Field: ClimberField{
			Width:  480,
			Height: 720,
		},
		Physics: ClimberPhysics{
			Gravity:         -0.6,
			HorizontalSpeed: 7,
			CameraSpeed:     1.25,
			TerminalMargin:  560,
			MaxElapsedMs:    100,
		},
		Actor: ClimberActor{
			Width:       40,
			Height:      40,
			StartY:      240,
			JumpForce:   15,
			MaxHealth:   100,
			MaxEnergy:   3,
			StartEnergy: 1,
			EnergyBoost: 20,
		},
		Platforms: ClimberPlatforms{
			Count:                 20,
			Height:                15,
			StartY:                50,
			BaseWidth:             70,
			MinWidth:              45,
			WidthShrink:           25,
			MinGap:                100,
			MaxGap:                150,
			GapGrowth:             30,
			SlowSpeed:             1.5,
			FastSpeed:             3,
			SpeedGrowth:           1.5,
			MaxSpeed:              5,
			FragileBreakDelayMs:   0,
			FragileLifetimeMs:     6000,
			FragileLifetimeShrink: 3000,
			MinFragileLifetimeMs:  2000,
			Weights: PlatformWeights{
				Solid:      WeightCurve{Base: 0.85, Growth: -0.45, Floor: 0.35, Ceiling: 1},
				Fragile:    WeightCurve{Base: 0.05, Growth: 0.2, Floor: 0, Ceiling: 0.3},
				MobileSlow: WeightCurve{Base: 0.07, Growth: 0.15, Floor: 0, Ceiling: 0.25},
				MobileFast: WeightCurve{Base: 0.03, Growth: 0.15, Floor: 0, Ceiling: 0.2},
			},
		},
		Items: ClimberItems{
			SpawnChance: 0.12,
			Size:        20,
			Weights: ItemWeights{
				Spring:    30,
				Propeller: 12,
				Rocket:    5,
				JumpBuff:  15,
				Hazard:    20,
				Heal:      18,
			},
			SpringBoost:    12,
			PropellerBoost: 22,
			RocketBoost:    35,
			BuffMultiplier: 1.4,
			BuffDurationMs: 5000,
			HazardDamage:   20,
			HealAmount:     20,
		},
		Enemies: ClimberEnemies{
			UnlockScore:        1500,
			BaseChance:         0.004,
			ChancePerPoint:     0.000002,
			MaxChance:          0.02,
			ExtraEvery:         5000,
			MaxPerSpawn:        3,
			MaxActive:          4,
			MinDistance:        250,
			SpawnOffset:        60,
			RetireMargin:       100,
			Size:               30,
			FireIntervalMs:     2500,
			FireIntervalShrink: 1200,
			MinFireIntervalMs:  900,
			Tiers: []EnemyTier{
				{Name: "drone", MinScore: 0, Speed: 2, Health: 1, ContactDamage: 1, ProjectileDamage: 5, Reward: 50},
				{Name: "gunner", MinScore: 5000, Speed: 2.5, Health: 2, ContactDamage: 1, ProjectileDamage: 8, Reward: 100},
				{Name: "brute", MinScore: 12000, Speed: 1.5, Health: 4, ContactDamage: 2, ProjectileDamage: 12, Reward: 200},
			},
		},
		Combat: ClimberCombat{
			HitboxScaleX:          0.6,
			ProjectileSize:        8,
			ActorProjectileSpeed:  12,
			ActorProjectileDamage: 1,
			ActorFireIntervalMs:   350,
			EnemyProjectileSpeed:  6,
			VisibilityWindow:      350,
			ProjectileMargin:      50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 20000,
			},
		},
	}
}
