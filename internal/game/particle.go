package game

// Particle is a projectile fired from a ship's canon.
type Particle struct {
	Pos Vec2
	Vel Vec2
}

// Update moves the particle one tick.
func (p *Particle) Update() {
	p.Pos = p.Pos.Add(p.Vel)
}

// InWindow reports whether the particle is strictly inside a w×h window.
func (p *Particle) InWindow(w, h float64) bool {
	return p.Pos.X > 0 && p.Pos.X < w && p.Pos.Y > 0 && p.Pos.Y < h
}

// State returns a read-only copy of the particle.
func (p *Particle) State() ParticleState {
	return ParticleState{Pos: p.Pos, Vel: p.Vel}
}
