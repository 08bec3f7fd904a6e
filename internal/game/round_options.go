package game

import (
	"math/rand"

	"go.uber.org/zap"
)

// roundOptionKind controls the pass in which an option is applied.
type roundOptionKind int

const (
	roundOptInfra  roundOptionKind = iota // window, seed, spawner, ship spec, logging, applied first
	roundOptPilot                         // add pilots, applied once the ship spec is final
	roundOptEntity                        // seed asteroids/particles, applied after the rng exists
)

// RoundOption is a builder function applied to a Round during construction.
type RoundOption struct {
	kind roundOptionKind
	fn   func(*Round)
}

// WithWindowSize sets the playfield dimensions.
func WithWindowSize(w, h float64) RoundOption {
	return RoundOption{roundOptInfra, func(r *Round) {
		r.width = w
		r.height = h
	}}
}

// WithSeed sets the RNG seed for deterministic rounds.
func WithSeed(seed int64) RoundOption {
	return RoundOption{roundOptInfra, func(r *Round) {
		r.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) RoundOption {
	return RoundOption{roundOptInfra, func(r *Round) {
		r.log = NewRoundLog(v)
	}}
}

// WithSpawnInterval sets the ticks between asteroid spawns. 0 disables
// spawning, which keeps scripted scenarios free of stray rocks.
func WithSpawnInterval(ticks int) RoundOption {
	return RoundOption{roundOptInfra, func(r *Round) {
		r.spawnInterval = ticks
	}}
}

// WithAsteroidRadius sets the radius of spawned asteroids.
func WithAsteroidRadius(radius float64) RoundOption {
	return RoundOption{roundOptInfra, func(r *Round) {
		r.asteroidRadius = radius
	}}
}

// WithShipSpec sets the handling of every ship added afterwards.
func WithShipSpec(spec ShipSpec) RoundOption {
	return RoundOption{roundOptInfra, func(r *Round) {
		r.shipSpec = spec
	}}
}

// WithLogger routes round lifecycle logs to l.
func WithLogger(l *zap.Logger) RoundOption {
	return RoundOption{roundOptInfra, func(r *Round) {
		if l != nil {
			r.logger = l
		}
	}}
}

// WithAgent adds a pilot flying a ship from the centre of the window.
func WithAgent(name string, a Agent) RoundOption {
	return RoundOption{roundOptPilot, func(r *Round) {
		r.addPilot(name, a, Vec2{X: r.width / 2, Y: r.height / 2}, 0)
	}}
}

// WithAgentAt adds a pilot whose ship starts at pos facing the given angle.
func WithAgentAt(name string, a Agent, pos Vec2, facing float64) RoundOption {
	return RoundOption{roundOptPilot, func(r *Round) {
		r.addPilot(name, a, pos, facing)
	}}
}

// WithAsteroid places an asteroid before the first tick.
func WithAsteroid(pos, vel Vec2, radius float64) RoundOption {
	return RoundOption{roundOptEntity, func(r *Round) {
		r.asteroids = append(r.asteroids, NewAsteroid(pos, vel, radius, r.rng))
	}}
}

// WithParticle places a particle before the first tick.
func WithParticle(pos, vel Vec2) RoundOption {
	return RoundOption{roundOptEntity, func(r *Round) {
		r.particles = append(r.particles, &Particle{Pos: pos, Vel: vel})
	}}
}
