package sim

import "math"

// Scroll keeps the actor at or below the midline. When the actor is above
// it, the world is shifted down by the excess times the camera speed and
// the floored shift is added to the score. It returns the score gained.
func Scroll(s *State) int {
	mid := s.Midline()
	if s.Actor.Y <= mid {
		s.Camera.Mode = CameraIdle
		s.Camera.LastDelta = 0
		return 0
	}

	delta := (s.Actor.Y - mid) * s.Cfg.Physics.CameraSpeed
	s.Actor.Y = mid
	shiftWorld(s, delta)

	gained := int(math.Floor(delta))
	s.Score += gained

	s.Camera.Mode = CameraScrolling
	s.Camera.LastDelta = delta
	s.Camera.Travelled += delta
	return gained
}

// shiftWorld moves every non-actor entity down by delta.
func shiftWorld(s *State, delta float64) {
	for i := range s.Platforms {
		p := &s.Platforms[i]
		p.Y -= delta
		if p.Item != nil {
			p.Item.Y -= delta
		}
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.Y -= delta
		for j := range e.Projectiles {
			e.Projectiles[j].Y -= delta
		}
	}
	for i := range s.Shots {
		s.Shots[i].Y -= delta
	}
}
