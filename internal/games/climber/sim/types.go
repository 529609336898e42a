// Package sim implements the climber simulation: physics, collisions,
// procedural generation, entity lifecycle and the scrolling camera.
//
// World coordinates are y-up. Every entity's Y is its bottom edge and the
// visible field spans [0, Field.Height]. The package performs no I/O and
// holds no package-level mutable state; all state lives in State.
package sim

import "github.com/vovakirdan/tui-climber/internal/core"

// PlatformKind selects platform behavior.
type PlatformKind int

const (
	PlatformSolid      PlatformKind = iota // Always solid
	PlatformFragile                        // Consumed by the first landing
	PlatformMobileSlow                     // Oscillates horizontally, slowly
	PlatformMobileFast                     // Oscillates horizontally, quickly
	PlatformKindCount                      // Sentinel for counting kinds
)

// String returns the name of the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformSolid:
		return "solid"
	case PlatformFragile:
		return "fragile"
	case PlatformMobileSlow:
		return "mobile_slow"
	case PlatformMobileFast:
		return "mobile_fast"
	default:
		return "?"
	}
}

// Mobile reports whether platforms of this kind move horizontally.
func (k PlatformKind) Mobile() bool {
	return k == PlatformMobileSlow || k == PlatformMobileFast
}

// ItemKind selects the effect of a pickup.
type ItemKind int

const (
	ItemSpring    ItemKind = iota // Small upward boost
	ItemPropeller                 // Medium upward boost
	ItemRocket                    // Large upward boost
	ItemJumpBuff                  // Timed jump-force multiplier
	ItemHazard                    // Damages the actor
	ItemHeal                      // Restores health
	ItemKindCount                 // Sentinel for counting kinds
)

// String returns the name of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemSpring:
		return "spring"
	case ItemPropeller:
		return "propeller"
	case ItemRocket:
		return "rocket"
	case ItemJumpBuff:
		return "jump_buff"
	case ItemHazard:
		return "hazard"
	case ItemHeal:
		return "heal"
	default:
		return "?"
	}
}

// Glyph returns the display character for an item kind.
func (k ItemKind) Glyph() rune {
	switch k {
	case ItemSpring:
		return 's'
	case ItemPropeller:
		return 'p'
	case ItemRocket:
		return 'R'
	case ItemJumpBuff:
		return 'J'
	case ItemHazard:
		return 'x'
	case ItemHeal:
		return '+'
	default:
		return '?'
	}
}

// Owner tags who fired a projectile and therefore what it can hit.
type Owner int

const (
	OwnerActor Owner = iota // Hits enemies
	OwnerEnemy              // Hits the actor
)

// Actor is the player-controlled climber.
type Actor struct {
	X, Y      float64
	VY        float64
	Width     float64
	Height    float64
	Dir       int     // Horizontal input: -1, 0 or 1
	JumpForce float64 // Current jump force, raised while a buff is active
	BuffMs    float64 // Remaining jump-buff time
	Health    int
	Energy    int
}

// Box returns the actor's bounding box.
func (a Actor) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.Width, a.Height)
}

// Item is a pickup carried by a platform.
type Item struct {
	X, Y   float64
	Size   float64
	Kind   ItemKind
	Active bool
}

// Box returns the item's hit box.
func (it Item) Box() core.Box {
	return core.NewBox(it.X, it.Y, it.Size, it.Size)
}

// Platform is a ledge the actor bounces on.
type Platform struct {
	X, Y       float64
	Width      float64
	Height     float64
	VX         float64 // Horizontal speed of mobile platforms
	Kind       PlatformKind
	Consumed   bool    // Fragile platforms stop being solid once consumed
	LifetimeMs float64 // Remaining fragile lifetime; 0 = unlimited
	BreakMs    float64 // Pending break delay after a landing
	Breaking   bool    // A landing started the break delay
	Item       *Item
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Solid reports whether the platform can currently be landed on.
func (p Platform) Solid() bool {
	return !p.Consumed
}

// Projectile is a shot fired by the actor or an enemy.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Damage int
	Owner  Owner
}

// Box returns the projectile's bounding box.
func (pr Projectile) Box() core.Box {
	return core.NewBox(pr.X, pr.Y, pr.Size, pr.Size)
}

// Enemy is a hostile entity that drifts sideways and fires at the actor.
type Enemy struct {
	ID          int
	X, Y        float64
	VX          float64
	Size        float64
	Tier        int // Index into the configured tiers
	Name        string
	Health      int
	Contact     int // Contact damage per tick of overlap
	ShotDamage  int
	Reward      int
	FireMs      float64 // Countdown to the next shot
	Projectiles []Projectile
}

// Box returns the enemy's bounding box.
func (e Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.Size, e.Size)
}

// Alive reports whether the enemy still has health.
func (e Enemy) Alive() bool {
	return e.Health > 0
}

// CameraMode is the state of the scroll controller.
type CameraMode int

const (
	CameraIdle      CameraMode = iota // Actor at or below the midline
	CameraScrolling                   // Actor pushed above the midline this tick
)

// String returns the name of the camera mode.
func (m CameraMode) String() string {
	if m == CameraScrolling {
		return "scrolling"
	}
	return "idle"
}

// Camera tracks scrolling.
type Camera struct {
	Mode      CameraMode
	LastDelta float64 // World displacement applied in the latest tick
	Travelled float64 // Total displacement since reset
}
