package game

import "math/rand"

const (
	// DefaultSpawnInterval is one asteroid every half second at 60 ticks/s.
	DefaultSpawnInterval = 30
	// DefaultAsteroidRadius is the radius of every spawned asteroid.
	DefaultAsteroidRadius = 15.0
)

// Spawner drops asteroids in from the window edges on a fixed tick interval.
type Spawner struct {
	Interval int // ticks between spawns; 0 disables spawning
	Radius   float64

	sinceLast int
	rng       *rand.Rand
}

// NewSpawner creates a spawner drawing its randomness from rng.
func NewSpawner(interval int, radius float64, rng *rand.Rand) *Spawner {
	return &Spawner{Interval: interval, Radius: radius, rng: rng}
}

// Advance counts one tick and returns a new asteroid when the interval has
// elapsed, or nil otherwise.
func (sp *Spawner) Advance(w, h float64) *Asteroid {
	if sp.Interval <= 0 {
		return nil
	}
	sp.sinceLast++
	if sp.sinceLast < sp.Interval {
		return nil
	}
	sp.sinceLast = 0
	return sp.Spawn(w, h)
}

// Spawn places an asteroid on a random edge of a w×h window, heading inward
// along the entry axis at 1..3 units/tick and drifting -3..3 on the other.
func (sp *Spawner) Spawn(w, h float64) *Asteroid {
	var pos, vel Vec2
	if sp.rng.Intn(2) == 0 {
		// left or right edge
		pos.Y = sp.rng.Float64() * h
		if sp.rng.Intn(2) == 0 {
			pos.X = 0
			vel.X = float64(1 + sp.rng.Intn(3))
		} else {
			pos.X = w
			vel.X = -float64(1 + sp.rng.Intn(3))
		}
		vel.Y = float64(sp.rng.Intn(7) - 3)
	} else {
		// top or bottom edge
		pos.X = sp.rng.Float64() * w
		if sp.rng.Intn(2) == 0 {
			pos.Y = 0
			vel.Y = float64(1 + sp.rng.Intn(3))
		} else {
			pos.Y = h
			vel.Y = -float64(1 + sp.rng.Intn(3))
		}
		vel.X = float64(sp.rng.Intn(7) - 3)
	}
	return NewAsteroid(pos, vel, sp.Radius, sp.rng)
}
