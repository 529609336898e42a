// Package config provides YAML-based game configuration loading and
// difficulty management for the climber.
package config

// ClimberConfig contains all configuration for the vertical climber.
// World units are abstract; the renderer scales the field to the terminal.
type ClimberConfig struct {
	Features   ClimberFeatures  `yaml:"features"`
	Field      ClimberField     `yaml:"field"`
	Physics    ClimberPhysics   `yaml:"physics"`
	Actor      ClimberActor     `yaml:"actor"`
	Platforms  ClimberPlatforms `yaml:"platforms"`
	Items      ClimberItems     `yaml:"items"`
	Enemies    ClimberEnemies   `yaml:"enemies"`
	Combat     ClimberCombat    `yaml:"combat"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ClimberFeatures toggles the optional parts of the simulation.
// Different combinations give the different game variants.
type ClimberFeatures struct {
	Fragile bool `yaml:"fragile"` // Fragile platforms break after one landing
	Mobile  bool `yaml:"mobile"`  // Horizontally moving platforms
	Items   bool `yaml:"items"`   // Platforms may carry items
	Enemies bool `yaml:"enemies"` // Enemies, auto-fire and projectiles
	Health  bool `yaml:"health"`  // Actor health; zero health ends the run
	Energy  bool `yaml:"energy"`  // Manual boost charges
}

// ClimberField defines the visible world rectangle.
type ClimberField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ClimberPhysics defines per-tick physics parameters.
type ClimberPhysics struct {
	Gravity         float64 `yaml:"gravity"`          // Added to vertical velocity every tick (negative = down)
	HorizontalSpeed float64 `yaml:"horizontal_speed"` // Units per tick while steering
	CameraSpeed     float64 `yaml:"camera_speed"`     // Scroll delta multiplier
	TerminalMargin  float64 `yaml:"terminal_margin"`  // Fall distance below the midline that ends the run
	MaxElapsedMs    float64 `yaml:"max_elapsed_ms"`   // Upper clamp for a single step
}

// MaxActorHealth is the top of the actor's health range. Configs may set a
// lower maximum, never a higher one.
const MaxActorHealth = 100

// ClimberActor defines the player-controlled actor.
type ClimberActor struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartY      float64 `yaml:"start_y"`
	JumpForce   float64 `yaml:"jump_force"` // Velocity set on landing
	MaxHealth   int     `yaml:"max_health"` // At most MaxActorHealth
	MaxEnergy   int     `yaml:"max_energy"`
	StartEnergy int     `yaml:"start_energy"`
	EnergyBoost float64 `yaml:"energy_boost"` // Velocity added per energy charge
}

// WeightCurve describes how one platform-kind weight moves with difficulty.
// The weight is Base + level*Growth, clamped to [Floor, Ceiling].
type WeightCurve struct {
	Base    float64 `yaml:"base"`
	Growth  float64 `yaml:"growth"`
	Floor   float64 `yaml:"floor"`
	Ceiling float64 `yaml:"ceiling"`
}

// PlatformWeights groups the weight curves of every platform kind.
type PlatformWeights struct {
	Solid      WeightCurve `yaml:"solid"`
	Fragile    WeightCurve `yaml:"fragile"`
	MobileSlow WeightCurve `yaml:"mobile_slow"`
	MobileFast WeightCurve `yaml:"mobile_fast"`
}

// ClimberPlatforms defines platform generation.
type ClimberPlatforms struct {
	Count     int     `yaml:"count"`
	Height    float64 `yaml:"height"`
	StartY    float64 `yaml:"start_y"`
	BaseWidth float64 `yaml:"base_width"`
	MinWidth  float64 `yaml:"min_width"`
	// WidthShrink is subtracted from BaseWidth at max difficulty.
	WidthShrink float64 `yaml:"width_shrink"`
	MinGap      float64 `yaml:"min_gap"`
	MaxGap      float64 `yaml:"max_gap"`
	GapGrowth   float64 `yaml:"gap_growth"`

	SlowSpeed   float64 `yaml:"slow_speed"`
	FastSpeed   float64 `yaml:"fast_speed"`
	SpeedGrowth float64 `yaml:"speed_growth"`
	MaxSpeed    float64 `yaml:"max_speed"`

	FragileBreakDelayMs   float64 `yaml:"fragile_break_delay_ms"` // 0 = break on landing
	FragileLifetimeMs     float64 `yaml:"fragile_lifetime_ms"`    // 0 = never expire
	FragileLifetimeShrink float64 `yaml:"fragile_lifetime_shrink"`
	MinFragileLifetimeMs  float64 `yaml:"min_fragile_lifetime_ms"`

	Weights PlatformWeights `yaml:"weights"`
}

// ItemWeights holds the relative spawn weights of item kinds.
type ItemWeights struct {
	Spring    int `yaml:"spring"`
	Propeller int `yaml:"propeller"`
	Rocket    int `yaml:"rocket"`
	JumpBuff  int `yaml:"jump_buff"`
	Hazard    int `yaml:"hazard"`
	Heal      int `yaml:"heal"`
}

// ClimberItems defines items carried by platforms.
type ClimberItems struct {
	SpawnChance    float64     `yaml:"spawn_chance"`
	Size           float64     `yaml:"size"`
	Weights        ItemWeights `yaml:"weights"`
	SpringBoost    float64     `yaml:"spring_boost"`
	PropellerBoost float64     `yaml:"propeller_boost"`
	RocketBoost    float64     `yaml:"rocket_boost"`
	BuffMultiplier float64     `yaml:"buff_multiplier"`
	BuffDurationMs float64     `yaml:"buff_duration_ms"`
	HazardDamage   int         `yaml:"hazard_damage"`
	HealAmount     int         `yaml:"heal_amount"`
}

// EnemyTier defines one enemy kind.
type EnemyTier struct {
	Name             string  `yaml:"name"`
	MinScore         int     `yaml:"min_score"` // Score at which this tier joins the draw
	Speed            float64 `yaml:"speed"`
	Health           int     `yaml:"health"`
	ContactDamage    int     `yaml:"contact_damage"`
	ProjectileDamage int     `yaml:"projectile_damage"`
	Reward           int     `yaml:"reward"`
}

// ClimberEnemies defines enemy spawning and behavior.
type ClimberEnemies struct {
	UnlockScore        int         `yaml:"unlock_score"`
	BaseChance         float64     `yaml:"base_chance"`
	ChancePerPoint     float64     `yaml:"chance_per_point"`
	MaxChance          float64     `yaml:"max_chance"`
	ExtraEvery         int         `yaml:"extra_every"`
	MaxPerSpawn        int         `yaml:"max_per_spawn"`
	MaxActive          int         `yaml:"max_active"`
	MinDistance        float64     `yaml:"min_distance"`
	SpawnOffset        float64     `yaml:"spawn_offset"`
	RetireMargin       float64     `yaml:"retire_margin"`
	Size               float64     `yaml:"size"`
	FireIntervalMs     float64     `yaml:"fire_interval_ms"`
	FireIntervalShrink float64     `yaml:"fire_interval_shrink"`
	MinFireIntervalMs  float64     `yaml:"min_fire_interval_ms"`
	Tiers              []EnemyTier `yaml:"tiers"`
}

// ClimberCombat defines projectiles and hit detection.
type ClimberCombat struct {
	HitboxScaleX          float64 `yaml:"hitbox_scale_x"` // Horizontal hit extent relative to the sprite
	ProjectileSize        float64 `yaml:"projectile_size"`
	ActorProjectileSpeed  float64 `yaml:"actor_projectile_speed"`
	ActorProjectileDamage int     `yaml:"actor_projectile_damage"`
	ActorFireIntervalMs   float64 `yaml:"actor_fire_interval_ms"`
	EnemyProjectileSpeed  float64 `yaml:"enemy_projectile_speed"`
	VisibilityWindow      float64 `yaml:"visibility_window"`
	ProjectileMargin      float64 `yaml:"projectile_margin"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // ProgressionScore or ProgressionNone
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown strings yield the empty preset, meaning "use the config as is".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// AllFeatures enables every optional part of the simulation.
func AllFeatures() ClimberFeatures {
	return ClimberFeatures{
		Fragile: true,
		Mobile:  true,
		Items:   true,
		Enemies: true,
		Health:  true,
		Energy:  true,
	}
}

// ClassicFeatures is the bare variant: static solid platforms only.
func ClassicFeatures() ClimberFeatures {
	return ClimberFeatures{}
}
