package sim

// Snapshot is a self-contained, read-only copy of the visible state,
// suitable for rendering or publishing.
type Snapshot struct {
	Tick        int          `json:"tick"`
	Score       int          `json:"score"`
	Kills       int          `json:"kills"`
	Level       float64      `json:"level"`
	GameOver    bool         `json:"game_over"`
	Reason      Reason       `json:"reason,omitempty"`
	Field       [2]float64   `json:"field"` // Width, height
	Actor       ActorView    `json:"actor"`
	Platforms   []EntityView `json:"platforms"`
	Items       []EntityView `json:"items"`
	Enemies     []EntityView `json:"enemies"`
	Projectiles []EntityView `json:"projectiles"`
	Camera      string       `json:"camera"`
}

// ActorView is the published form of the actor.
type ActorView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VY     float64 `json:"vy"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Health int     `json:"health"`
	Energy int     `json:"energy"`
	BuffMs float64 `json:"buff_ms,omitempty"`
}

// EntityView is the published form of any other entity.
type EntityView struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	Kind string  `json:"kind"`
	Gone bool    `json:"gone,omitempty"` // Consumed platform
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	a := s.Actor
	snap := Snapshot{
		Tick:     s.Ticks,
		Score:    s.Score,
		Kills:    s.Kills,
		Level:    e.Level(),
		GameOver: e.over,
		Reason:   e.reason,
		Field:    [2]float64{s.Cfg.Field.Width, s.Cfg.Field.Height},
		Actor: ActorView{
			X: a.X, Y: a.Y, VY: a.VY, W: a.Width, H: a.Height,
			Health: a.Health, Energy: a.Energy, BuffMs: a.BuffMs,
		},
		Platforms: make([]EntityView, 0, len(s.Platforms)),
		Camera:    s.Camera.Mode.String(),
	}

	for _, p := range s.Platforms {
		snap.Platforms = append(snap.Platforms, EntityView{
			X: p.X, Y: p.Y, W: p.Width, H: p.Height, Kind: p.Kind.String(), Gone: p.Consumed,
		})
		if p.Item != nil && p.Item.Active {
			it := p.Item
			snap.Items = append(snap.Items, EntityView{X: it.X, Y: it.Y, W: it.Size, H: it.Size, Kind: it.Kind.String()})
		}
	}
	for _, en := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EntityView{X: en.X, Y: en.Y, W: en.Size, H: en.Size, Kind: en.Name})
	}
	for _, pr := range e.Projectiles() {
		kind := "shot"
		if pr.Owner == OwnerEnemy {
			kind = "enemy_shot"
		}
		snap.Projectiles = append(snap.Projectiles, EntityView{X: pr.X, Y: pr.Y, W: pr.Size, H: pr.Size, Kind: kind})
	}
	return snap
}
