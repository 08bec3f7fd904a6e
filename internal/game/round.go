package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoundState is the lifecycle state of a round.
type RoundState int

const (
	RoundInPlay RoundState = iota
	RoundPaused
	RoundOver // terminal
)

func (rs RoundState) String() string {
	switch rs {
	case RoundInPlay:
		return "in_play"
	case RoundPaused:
		return "paused"
	case RoundOver:
		return "over"
	default:
		return "unknown"
	}
}

// Round owns every entity of one game and advances them a tick at a time.
// It is not safe for concurrent use; drive it from a single loop.
type Round struct {
	id     uuid.UUID
	width  float64
	height float64
	state  RoundState
	tick   int
	score  int

	pilots    []*pilot
	asteroids []*Asteroid
	particles []*Particle

	shipSpec       ShipSpec
	spawnInterval  int
	asteroidRadius float64
	spawner        *Spawner
	rng            *rand.Rand

	log    *RoundLog
	logger *zap.Logger
	stats  roundStats

	nextPilot int
}

// roundStats are running counters for the round report.
type roundStats struct {
	shotsFired int
	spawned    int
	escaped    int
	shipsLost  int
	agents     []string
}

// NewRound constructs a Round from the given options in three ordered passes:
//  1. Infrastructure (window size, seed, spawner, ship spec, logging)
//  2. Pilots
//  3. Pre-placed asteroids and particles
func NewRound(opts ...RoundOption) *Round {
	r := &Round{
		id:             uuid.New(),
		width:          800,
		height:         600,
		shipSpec:       DefaultShipSpec(),
		spawnInterval:  DefaultSpawnInterval,
		asteroidRadius: DefaultAsteroidRadius,
		log:            NewRoundLog(false),
		logger:         zap.NewNop(),
		rng:            rand.New(rand.NewSource(1)), // #nosec G404 -- deterministic default
	}
	for _, kind := range []roundOptionKind{roundOptInfra, roundOptPilot, roundOptEntity} {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(r)
			}
		}
	}
	r.spawner = NewSpawner(r.spawnInterval, r.asteroidRadius, r.rng)
	r.logger = r.logger.With(zap.String("round", r.id.String()))
	r.log.Add(0, "--", CatRound, "start", fmt.Sprintf("%d pilots", len(r.pilots)), float64(len(r.pilots)))
	r.logger.Info("round started",
		zap.Int("pilots", len(r.pilots)),
		zap.Float64("width", r.width),
		zap.Float64("height", r.height),
		zap.Int("spawn_interval", r.spawnInterval))
	return r
}

// addPilot is the internal helper used by WithAgent / WithAgentAt.
func (r *Round) addPilot(name string, a Agent, pos Vec2, facing float64) {
	ship := NewShip(pos, r.shipSpec)
	ship.Facing = wrapAngle(facing)
	p := &pilot{
		name:  name,
		agent: a,
		ship:  ship,
		label: fmt.Sprintf("P%d", r.nextPilot),
	}
	r.nextPilot++
	r.pilots = append(r.pilots, p)
	r.stats.agents = append(r.stats.agents, name)
}

// ID returns the round's unique identifier.
func (r *Round) ID() uuid.UUID { return r.id }

// State returns the current lifecycle state.
func (r *Round) State() RoundState { return r.state }

// Score returns the number of asteroids destroyed by particles so far.
func (r *Round) Score() int { return r.score }

// Tick returns the number of ticks simulated so far.
func (r *Round) Tick() int { return r.tick }

// Size returns the window dimensions.
func (r *Round) Size() (float64, float64) { return r.width, r.height }

// Log returns the round's event log.
func (r *Round) Log() *RoundLog { return r.log }

// Pilots returns the number of ships still flying.
func (r *Round) Pilots() int { return len(r.pilots) }

// TogglePause switches between in-play and paused. Spawning is driven by
// ticks, so it stops while paused. A finished round stays over.
func (r *Round) TogglePause() {
	switch r.state {
	case RoundInPlay:
		r.setState(RoundPaused)
	case RoundPaused:
		r.setState(RoundInPlay)
	}
}

func (r *Round) setState(s RoundState) {
	if s == r.state {
		return
	}
	r.log.Add(r.tick, "--", CatRound, "state", fmt.Sprintf("%s → %s", r.state, s), 0)
	r.state = s
	if s == RoundOver {
		r.logger.Info("round over", zap.Int("tick", r.tick), zap.Int("score", r.score))
	}
}

// RunTicks advances the round n ticks or until it is over.
func (r *Round) RunTicks(n int) {
	for i := 0; i < n && r.state != RoundOver; i++ {
		r.Step()
	}
}

// RunUntil advances the round up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (r *Round) RunUntil(predicate func(*Round) bool, maxTicks int) int {
	for i := 0; i < maxTicks && r.state == RoundInPlay; i++ {
		r.Step()
		if predicate(r) {
			return r.tick
		}
	}
	return -1
}

// Step advances the round by one tick. It does nothing unless in play.
func (r *Round) Step() {
	if r.state != RoundInPlay {
		return
	}
	r.tick++

	// 1. PILOTS: perceive, decide, act, move.
	for _, p := range r.pilots {
		r.pilotTurn(p)
	}

	// 2+3+4. COLLISIONS and reconciliation.
	reward := r.resolveCollisions()
	r.score += reward

	for _, p := range r.pilots {
		if rr, ok := p.agent.(RewardReceiver); ok {
			rr.ReceiveReward(reward)
		}
	}

	// 5. Drop lost ships; the round ends with the last one.
	alive := make([]*pilot, 0, len(r.pilots))
	for _, p := range r.pilots {
		if !p.dead {
			alive = append(alive, p)
		}
	}
	r.pilots = alive
	if len(r.pilots) == 0 {
		r.setState(RoundOver)
		return
	}

	// 6. SPAWN between ticks.
	if a := r.spawner.Advance(r.width, r.height); a != nil {
		r.asteroids = append(r.asteroids, a)
		r.stats.spawned++
		r.log.Add(r.tick, "--", CatSpawn, "asteroid",
			fmt.Sprintf("(%.0f,%.0f) v=(%.0f,%.0f)", a.Pos.X, a.Pos.Y, a.Vel.X, a.Vel.Y), a.Radius)
		r.logger.Debug("asteroid spawned",
			zap.Int("tick", r.tick), zap.Float64("x", a.Pos.X), zap.Float64("y", a.Pos.Y))
	}
}

// pilotTurn hands one pilot its perception, applies its actions and moves
// its ship.
func (r *Round) pilotTurn(p *pilot) {
	p.agent.Perceive(r.perceive(p, p.agent.PerceptionKind()))
	for _, a := range p.agent.Decide() {
		r.log.AddVerbose(r.tick, p.label, CatAction, a.String(), "", 0)
		pt := applyAction(p.ship, a, r.tick)
		if pt == nil {
			continue
		}
		r.particles = append(r.particles, pt)
		r.stats.shotsFired++
		r.log.AddVerbose(r.tick, p.label, CatFire, "particle",
			fmt.Sprintf("(%.0f,%.0f)", pt.Pos.X, pt.Pos.Y), 0)
	}
	p.ship.Update(r.width, r.height)
	r.log.AddVerbose(r.tick, p.label, CatPosition, "ship",
		fmt.Sprintf("(%.1f,%.1f)", p.ship.Pos.X, p.ship.Pos.Y), p.ship.Facing)
}

// resolveCollisions marks lost ships, destroyed asteroids and consumed
// particles, then keeps and moves the survivors. It returns the tick's reward.
func (r *Round) resolveCollisions() int {
	reward := 0
	consumed := make([]bool, len(r.particles))
	keptAsteroids := make([]*Asteroid, 0, len(r.asteroids))

	for _, a := range r.asteroids {
		destroyed := false
		// Ship strikes are settled first so the same rock cannot also score.
		for _, p := range r.pilots {
			if p.dead || !ShipIntersectsAsteroid(p.ship, a) {
				continue
			}
			p.dead = true
			destroyed = true
			r.stats.shipsLost++
			r.log.Add(r.tick, p.label, CatShip, "lost",
				fmt.Sprintf("%s hit at (%.0f,%.0f)", p.name, p.ship.Pos.X, p.ship.Pos.Y), 0)
			r.logger.Info("ship lost",
				zap.String("pilot", p.label), zap.String("agent", p.name), zap.Int("tick", r.tick))
		}
		// A rock leaving the window can still be shot on its way out.
		if !destroyed {
			hit := false
			for i, pt := range r.particles {
				if !consumed[i] && ParticleInAsteroid(pt, a) {
					consumed[i] = true
					hit = true
				}
			}
			if hit {
				destroyed = true
				reward++
				r.log.Add(r.tick, "--", CatHit, "asteroid",
					fmt.Sprintf("(%.0f,%.0f) score=%d", a.Pos.X, a.Pos.Y, r.score+reward), float64(r.score+reward))
			}
		}
		if !destroyed && a.OutOfWindow(r.width, r.height) {
			destroyed = true
			r.stats.escaped++
			r.log.Add(r.tick, "--", CatEscape, "asteroid",
				fmt.Sprintf("(%.0f,%.0f)", a.Pos.X, a.Pos.Y), 0)
		}
		if !destroyed {
			a.Update()
			keptAsteroids = append(keptAsteroids, a)
		}
	}
	r.asteroids = keptAsteroids

	keptParticles := make([]*Particle, 0, len(r.particles))
	for i, pt := range r.particles {
		if consumed[i] || !pt.InWindow(r.width, r.height) {
			continue
		}
		pt.Update()
		keptParticles = append(keptParticles, pt)
	}
	r.particles = keptParticles
	return reward
}
