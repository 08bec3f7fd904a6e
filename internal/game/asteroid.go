package game

import (
	"math"
	"math/rand"
)

const (
	// asteroidOutlinePoints is the vertex count of every rock silhouette.
	asteroidOutlinePoints = 7
	// asteroidJitter is the fraction of the radius each outline component may
	// deviate by.
	asteroidJitter = 0.2
)

// Asteroid is a drifting rock. Collisions treat it as a circle; Outline is
// only the drawn silhouette.
type Asteroid struct {
	Pos     Vec2
	Vel     Vec2
	Radius  float64
	Outline [asteroidOutlinePoints]Vec2 // offsets from Pos
}

// NewAsteroid creates an asteroid with a jittered outline drawn from rng.
func NewAsteroid(pos, vel Vec2, radius float64, rng *rand.Rand) *Asteroid {
	a := &Asteroid{Pos: pos, Vel: vel, Radius: radius}
	lo := radius - radius*asteroidJitter
	span := 2 * radius * asteroidJitter
	step := 2 * math.Pi / asteroidOutlinePoints
	for i := range a.Outline {
		angle := float64(i) * step
		a.Outline[i] = Vec2{
			X: (lo + rng.Float64()*span) * math.Cos(angle),
			Y: (lo + rng.Float64()*span) * math.Sin(angle),
		}
	}
	return a
}

// Update drifts the asteroid one tick.
func (a *Asteroid) Update() {
	a.Pos = a.Pos.Add(a.Vel)
}

// OutOfWindow reports whether the asteroid's centre is more than one radius
// beyond any edge of a w×h window.
func (a *Asteroid) OutOfWindow(w, h float64) bool {
	return a.Pos.X < -a.Radius || a.Pos.X > w+a.Radius ||
		a.Pos.Y < -a.Radius || a.Pos.Y > h+a.Radius
}

// Contains reports whether p lies inside the asteroid's collision circle.
func (a *Asteroid) Contains(p Vec2) bool {
	return PointInCircle(p, a.Pos, a.Radius)
}

// State returns a read-only copy of the asteroid.
func (a *Asteroid) State() AsteroidState {
	return AsteroidState{Pos: a.Pos, Vel: a.Vel, Radius: a.Radius}
}
