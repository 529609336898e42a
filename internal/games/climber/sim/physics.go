package sim

// Integrate advances every moving entity by one tick. Motion is per tick,
// not scaled by elapsed time.
func Integrate(s *State) {
	moveActor(s)

	width := s.Cfg.Field.Width
	for i := range s.Platforms {
		p := &s.Platforms[i]
		if p.VX == 0 {
			continue
		}
		oldX := p.X
		p.X, p.VX = bounce(p.X+p.VX, p.VX, p.Width, width)
		if p.Item != nil {
			p.Item.X += p.X - oldX
		}
	}

	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.X, e.VX = bounce(e.X+e.VX, e.VX, e.Size, width)
		moveProjectiles(e.Projectiles)
	}
	moveProjectiles(s.Shots)
}

// moveActor applies steering, horizontal wrap and gravity.
func moveActor(s *State) {
	a := &s.Actor
	a.X += float64(a.Dir) * s.Cfg.Physics.HorizontalSpeed

	// The field wraps horizontally for the actor only.
	if a.X < -a.Width {
		a.X = s.Cfg.Field.Width
	} else if a.X > s.Cfg.Field.Width {
		a.X = -a.Width
	}

	a.VY += s.Cfg.Physics.Gravity
	a.Y += a.VY
}

// bounce keeps a span of width w inside [0, limit], reversing velocity at
// an edge.
func bounce(x, vx, w, limit float64) (float64, float64) {
	if x < 0 {
		return 0, -vx
	}
	if x+w > limit {
		return limit - w, -vx
	}
	return x, vx
}

func moveProjectiles(ps []Projectile) {
	for i := range ps {
		ps[i].X += ps[i].VX
		ps[i].Y += ps[i].VY
	}
}
