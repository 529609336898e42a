package sim

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// NewPlatform builds a platform at height y using the difficulty at the
// current score. Width is clamped to the field so the result is always
// placeable.
func NewPlatform(s *State, y float64) Platform {
	cfg := s.Cfg
	kind := rollPlatformKind(s.Rand, s.Difficulty.PlatformWeights(s.Score))

	width := clamp(s.Difficulty.PlatformWidth(s.Score), 1, cfg.Field.Width)
	p := Platform{
		X:      uniform(s.Rand, 0, cfg.Field.Width-width),
		Y:      y,
		Width:  width,
		Height: math.Max(cfg.Platforms.Height, 1),
		Kind:   kind,
	}

	switch kind {
	case PlatformMobileSlow, PlatformMobileFast:
		p.VX = s.Difficulty.MobileSpeed(s.Score, kind == PlatformMobileFast)
		if s.Rand.Intn(2) == 0 {
			p.VX = -p.VX
		}
	case PlatformFragile:
		p.LifetimeMs = s.Difficulty.FragileLifetime(s.Score)
	}

	if cfg.Features.Items && chance(s.Rand, cfg.Items.SpawnChance) {
		item := newItem(cfg, p, rollItemKind(s.Rand, cfg.Items.Weights))
		p.Item = &item
	}
	return p
}

// rollPlatformKind selects a platform kind based on weights.
func rollPlatformKind(src Source, w Weights) PlatformKind {
	total := w.Total()
	if total <= 0 {
		return PlatformSolid
	}

	roll := src.Float64() * total
	cumulative := 0.0

	weights := []struct {
		Kind   PlatformKind
		Weight float64
	}{
		{PlatformSolid, w.Solid},
		{PlatformFragile, w.Fragile},
		{PlatformMobileSlow, w.MobileSlow},
		{PlatformMobileFast, w.MobileFast},
	}

	for _, c := range weights {
		cumulative += c.Weight
		if roll < cumulative {
			return c.Kind
		}
	}
	return PlatformSolid
}

// rollItemKind selects an item kind based on weights.
func rollItemKind(src Source, w config.ItemWeights) ItemKind {
	weights := []struct {
		Kind   ItemKind
		Weight int
	}{
		{ItemSpring, w.Spring},
		{ItemPropeller, w.Propeller},
		{ItemRocket, w.Rocket},
		{ItemJumpBuff, w.JumpBuff},
		{ItemHazard, w.Hazard},
		{ItemHeal, w.Heal},
	}

	total := 0
	for _, c := range weights {
		total += c.Weight
	}
	if total <= 0 {
		return ItemSpring
	}

	roll := src.Intn(total)
	cumulative := 0
	for _, c := range weights {
		cumulative += c.Weight
		if roll < cumulative {
			return c.Kind
		}
	}
	return ItemSpring
}

// newItem places an item centered on top of its platform.
func newItem(cfg config.ClimberConfig, p Platform, kind ItemKind) Item {
	size := cfg.Items.Size
	return Item{
		X:      p.X + (p.Width-size)/2,
		Y:      p.Y + p.Height,
		Size:   size,
		Kind:   kind,
		Active: true,
	}
}

// NewEnemy builds an enemy above the visible field. The tier is drawn
// uniformly among the tiers unlocked at the current score. Slot stacks
// enemies of one spawn batch min_distance apart.
func NewEnemy(s *State, slot int) Enemy {
	cfg := s.Cfg
	ec := cfg.Enemies

	tier := 0
	if unlocked := s.Difficulty.EnemyTiers(s.Score); len(unlocked) > 0 {
		tier = unlocked[s.Rand.Intn(len(unlocked))]
	}
	var t config.EnemyTier
	if tier < len(ec.Tiers) {
		t = ec.Tiers[tier]
	}

	size := math.Min(ec.Size, cfg.Field.Width)
	vx := t.Speed
	if s.Rand.Intn(2) == 0 {
		vx = -vx
	}

	s.nextEnemyID++
	health := t.Health
	if health < 1 {
		health = 1
	}
	return Enemy{
		ID:         s.nextEnemyID,
		X:          uniform(s.Rand, 0, cfg.Field.Width-size),
		Y:          cfg.Field.Height + ec.SpawnOffset + float64(slot)*ec.MinDistance,
		VX:         vx,
		Size:       size,
		Tier:       tier,
		Name:       t.Name,
		Health:     health,
		Contact:    t.ContactDamage,
		ShotDamage: t.ProjectileDamage,
		Reward:     t.Reward,
		FireMs:     s.Difficulty.EnemyFireInterval(s.Score),
	}
}

// newProjectile fires from the center of one box toward the center of
// another at the given speed.
func newProjectile(fromX, fromY, toX, toY, speed, size float64, damage int, owner Owner) Projectile {
	dx, dy := toX-fromX, toY-fromY
	dist := math.Hypot(dx, dy)
	vx, vy := 0.0, speed
	if owner == OwnerEnemy {
		vy = -speed
	}
	if dist > 0 {
		vx, vy = dx/dist*speed, dy/dist*speed
	}
	return Projectile{
		X:      fromX - size/2,
		Y:      fromY - size/2,
		VX:     vx,
		VY:     vy,
		Size:   size,
		Damage: damage,
		Owner:  owner,
	}
}
