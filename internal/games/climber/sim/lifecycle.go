package sim

import "math"

// UpdateLifecycle runs once per tick after collisions: timers, recycling,
// retirement, spawning and auto-fire.
func UpdateLifecycle(s *State, dt float64) {
	tickPlatforms(s, dt)
	recyclePlatforms(s)
	retireEnemies(s)
	retireProjectiles(s)
	spawnEnemies(s)
	autoFire(s, dt)
}

// tickPlatforms counts down break delays and fragile lifetimes.
func tickPlatforms(s *State, dt float64) {
	for i := range s.Platforms {
		p := &s.Platforms[i]
		if p.Consumed {
			continue
		}
		switch {
		case p.Breaking:
			p.BreakMs -= dt
			if p.BreakMs <= 0 {
				p.BreakMs = 0
				p.Consumed = true
				s.Emit(Event{Kind: EventBreak, X: p.X, Y: p.Y})
			}
		case p.LifetimeMs > 0:
			p.LifetimeMs -= dt
			if p.LifetimeMs <= 0 {
				p.LifetimeMs = 0
				p.Consumed = true
				s.Emit(Event{Kind: EventExpire, X: p.X, Y: p.Y})
			}
		}
	}
}

// recyclePlatforms replaces every platform below the field in its own slot
// with a new one above the highest platform. Stale slots are collected
// first, then replaced.
func recyclePlatforms(s *State) {
	var stale []int
	for i, p := range s.Platforms {
		if p.Y < -p.Height {
			stale = append(stale, i)
		}
	}
	if len(stale) == 0 {
		return
	}

	maxY := s.MaxPlatformY()
	for _, i := range stale {
		lo, hi := s.Difficulty.GapRange(s.Score)
		y := maxY + uniform(s.Rand, lo, hi)
		s.Platforms[i] = NewPlatform(s, y)
		maxY = y
	}
}

// retireEnemies drops dead enemies and those left behind the camera,
// together with their projectiles.
func retireEnemies(s *State) {
	limit := -s.Cfg.Enemies.RetireMargin
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.Alive() || e.Y+e.Size < limit {
			continue
		}
		kept = append(kept, e)
	}
	s.Enemies = kept
}

// retireProjectiles drops projectiles beyond any field edge plus margin.
func retireProjectiles(s *State) {
	s.Shots = keepInField(s, s.Shots)
	for i := range s.Enemies {
		s.Enemies[i].Projectiles = keepInField(s, s.Enemies[i].Projectiles)
	}
}

func keepInField(s *State, ps []Projectile) []Projectile {
	m := s.Cfg.Combat.ProjectileMargin
	w, h := s.Cfg.Field.Width, s.Cfg.Field.Height

	kept := ps[:0]
	for _, pr := range ps {
		if pr.X+pr.Size < -m || pr.X > w+m || pr.Y+pr.Size < -m || pr.Y > h+m {
			continue
		}
		kept = append(kept, pr)
	}
	return kept
}

// spawnEnemies rolls the spawn chance and adds up to EnemiesPerSpawn
// enemies. A candidate too close to a live enemy cancels the rest of the
// batch for this tick.
func spawnEnemies(s *State) {
	if !s.Cfg.Features.Enemies {
		return
	}
	n := s.Difficulty.EnemiesPerSpawn(s.Score)
	if n == 0 || !chance(s.Rand, s.Difficulty.EnemySpawnChance(s.Score)) {
		return
	}

	ec := s.Cfg.Enemies
	for slot := 0; slot < n; slot++ {
		if len(s.Enemies) >= ec.MaxActive {
			return
		}
		e := NewEnemy(s, slot)
		for _, other := range s.Enemies {
			if math.Abs(other.Y-e.Y) < ec.MinDistance {
				return
			}
		}
		s.Enemies = append(s.Enemies, e)
		s.Emit(Event{Kind: EventSpawn, X: e.X, Y: e.Y})
	}
}

// autoFire lets the actor shoot the nearest visible enemy and every
// on-screen enemy shoot at the actor, each on its own countdown.
func autoFire(s *State, dt float64) {
	if !s.Cfg.Features.Enemies {
		return
	}
	cc := s.Cfg.Combat
	a := s.Actor.Box()
	ax, ay := a.CenterX(), a.CenterY()

	if s.ActorFireMs > 0 {
		s.ActorFireMs -= dt
	}
	if target := nearestVisibleEnemy(s); target >= 0 && s.ActorFireMs <= 0 {
		eb := s.Enemies[target].Box()
		s.Shots = append(s.Shots, newProjectile(ax, ay, eb.CenterX(), eb.CenterY(),
			cc.ActorProjectileSpeed, cc.ProjectileSize, cc.ActorProjectileDamage, OwnerActor))
		s.ActorFireMs = cc.ActorFireIntervalMs
	}

	interval := s.Difficulty.EnemyFireInterval(s.Score)
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive() || !onScreen(s, e.Y, e.Size) {
			continue
		}
		e.FireMs -= dt
		if e.FireMs > 0 {
			continue
		}
		eb := e.Box()
		e.Projectiles = append(e.Projectiles, newProjectile(eb.CenterX(), eb.CenterY(), ax, ay,
			cc.EnemyProjectileSpeed, cc.ProjectileSize, e.ShotDamage, OwnerEnemy))
		e.FireMs = interval
	}
}

// nearestVisibleEnemy returns the index of the closest live enemy within
// the visibility window, or -1.
func nearestVisibleEnemy(s *State) int {
	a := s.Actor.Box()
	ax, ay := a.CenterX(), a.CenterY()
	window := s.Cfg.Combat.VisibilityWindow

	best, bestDist := -1, math.Inf(1)
	for i, e := range s.Enemies {
		if !e.Alive() {
			continue
		}
		eb := e.Box()
		if math.Abs(eb.CenterY()-ay) > window {
			continue
		}
		if d := math.Hypot(eb.CenterX()-ax, eb.CenterY()-ay); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func onScreen(s *State, y, h float64) bool {
	return y < s.Cfg.Field.Height && y+h > 0
}
