package sim

// ResolveCollisions runs every collision rule in a fixed order on the
// positions produced by Integrate.
func ResolveCollisions(s *State) {
	resolvePlatforms(s)
	resolveItems(s)
	resolveShotsVsEnemies(s)
	resolveShotsVsActor(s)
	resolveContact(s)
}

// resolvePlatforms bounces a falling actor whose bottom edge lies within a
// platform's span. Every matching platform is processed; the velocity snap
// is the same for all of them.
func resolvePlatforms(s *State) {
	a := &s.Actor
	if a.VY >= 0 {
		return
	}

	landed := -1
	for i := range s.Platforms {
		p := &s.Platforms[i]
		if p.Consumed {
			continue
		}
		if a.Y < p.Y || a.Y > p.Y+p.Height {
			continue
		}
		if a.X+a.Width <= p.X || a.X >= p.X+p.Width {
			continue
		}
		landed = i

		if p.Kind != PlatformFragile || p.Breaking {
			continue
		}
		if delay := s.Cfg.Platforms.FragileBreakDelayMs; delay > 0 {
			p.Breaking = true
			p.BreakMs = delay
			continue
		}
		p.Consumed = true
		s.Emit(Event{Kind: EventBreak, X: p.X, Y: p.Y})
	}

	if landed < 0 {
		return
	}
	p := s.Platforms[landed]
	a.VY = a.JumpForce
	s.Emit(Event{Kind: EventLand, X: p.X, Y: p.Y})
}

// resolveItems collects every active item the actor overlaps.
func resolveItems(s *State) {
	ab := s.Actor.Box()
	for i := range s.Platforms {
		it := s.Platforms[i].Item
		if it == nil || !it.Active {
			continue
		}
		if !ab.Intersects(it.Box()) {
			continue
		}
		it.Active = false
		amount := applyItem(s, it.Kind)
		s.Emit(Event{Kind: EventPickup, X: it.X, Y: it.Y, Item: it.Kind, Amount: amount})
	}
}

// applyItem applies a pickup's effect and returns the health change.
func applyItem(s *State, kind ItemKind) int {
	a := &s.Actor
	ic := s.Cfg.Items

	switch kind {
	case ItemSpring:
		a.VY += ic.SpringBoost
	case ItemPropeller:
		a.VY += ic.PropellerBoost
	case ItemRocket:
		a.VY += ic.RocketBoost
	case ItemJumpBuff:
		a.JumpForce = s.Cfg.Actor.JumpForce * ic.BuffMultiplier
		a.BuffMs = ic.BuffDurationMs
	case ItemHazard:
		before := a.Health
		s.damageActor(ic.HazardDamage)
		return a.Health - before
	case ItemHeal:
		before := a.Health
		s.healActor(ic.HealAmount)
		return a.Health - before
	}
	return 0
}

// resolveShotsVsEnemies applies actor projectiles to live enemies. The
// enemy's horizontal hit extent is narrower than its sprite. A projectile
// hits at most one enemy, and dead enemies are skipped, so every kill
// removes exactly one projectile and pays exactly one reward.
func resolveShotsVsEnemies(s *State) {
	scale := s.Cfg.Combat.HitboxScaleX

	kept := s.Shots[:0]
	for _, pr := range s.Shots {
		hit := false
		for j := range s.Enemies {
			e := &s.Enemies[j]
			if !e.Alive() || !pr.Box().Intersects(e.Box().ScaleX(scale)) {
				continue
			}
			hit = true
			e.Health -= pr.Damage
			if e.Health < 0 {
				e.Health = 0
			}
			if !e.Alive() {
				s.Score += e.Reward
				s.Kills++
				s.addEnergy(1)
				s.Emit(Event{Kind: EventKill, X: e.X, Y: e.Y, Amount: e.Reward})
			}
			break
		}
		if !hit {
			kept = append(kept, pr)
		}
	}
	s.Shots = kept
}

// resolveShotsVsActor applies enemy projectiles to the actor, using the
// same narrowed horizontal extent.
func resolveShotsVsActor(s *State) {
	target := s.Actor.Box().ScaleX(s.Cfg.Combat.HitboxScaleX)

	for i := range s.Enemies {
		e := &s.Enemies[i]
		kept := e.Projectiles[:0]
		for _, pr := range e.Projectiles {
			if pr.Box().Intersects(target) {
				s.damageActor(pr.Damage)
				continue
			}
			kept = append(kept, pr)
		}
		e.Projectiles = kept
	}
}

// resolveContact damages the actor for every tick it overlaps a live enemy.
func resolveContact(s *State) {
	ab := s.Actor.Box()
	for _, e := range s.Enemies {
		if e.Alive() && ab.Intersects(e.Box()) {
			s.damageActor(e.Contact)
		}
	}
}
