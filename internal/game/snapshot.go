package game

// ShipView is a drawable copy of one pilot's ship.
type ShipView struct {
	Label    string
	Agent    string
	State    ShipState
	Hull     [3]Vec2
	Boosting bool
}

// AsteroidView is a drawable copy of one asteroid, outline in world space.
type AsteroidView struct {
	State   AsteroidState
	Outline [asteroidOutlinePoints]Vec2
}

// WorldSnapshot is everything a renderer needs for one frame.
type WorldSnapshot struct {
	Tick      int
	Score     int
	State     RoundState
	Width     float64
	Height    float64
	Ships     []ShipView
	Asteroids []AsteroidView
	Particles []ParticleState
}

// Snapshot copies the current world for rendering.
func (r *Round) Snapshot() WorldSnapshot {
	snap := WorldSnapshot{
		Tick:      r.tick,
		Score:     r.score,
		State:     r.state,
		Width:     r.width,
		Height:    r.height,
		Ships:     make([]ShipView, 0, len(r.pilots)),
		Asteroids: make([]AsteroidView, 0, len(r.asteroids)),
		Particles: make([]ParticleState, 0, len(r.particles)),
	}
	for _, p := range r.pilots {
		snap.Ships = append(snap.Ships, ShipView{
			Label:    p.label,
			Agent:    p.name,
			State:    p.ship.State(),
			Hull:     ShipHull(p.ship),
			Boosting: p.ship.Boost == Boosting,
		})
	}
	for _, a := range r.asteroids {
		av := AsteroidView{State: a.State()}
		for i, off := range a.Outline {
			av.Outline[i] = a.Pos.Add(off)
		}
		snap.Asteroids = append(snap.Asteroids, av)
	}
	for _, pt := range r.particles {
		snap.Particles = append(snap.Particles, pt.State())
	}
	return snap
}
