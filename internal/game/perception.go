package game

// PerceptionKind selects what an agent is shown each tick.
type PerceptionKind int

const (
	// PerceptionVector is the full kinematic snapshot of the world.
	PerceptionVector PerceptionKind = iota
	// PerceptionNone carries only the tick and window size. Human pilots use
	// it since they watch the screen instead.
	PerceptionNone
)

func (pk PerceptionKind) String() string {
	switch pk {
	case PerceptionVector:
		return "vector"
	case PerceptionNone:
		return "none"
	default:
		return "unknown"
	}
}

// ShipState is a copy of a ship's kinematics.
type ShipState struct {
	Pos       Vec2
	Vel       Vec2
	Facing    float64
	Thrust    float64
	TurnSpeed float64
	Height    float64
}

// Nose returns the position of the ship's nose vertex.
func (s ShipState) Nose() Vec2 {
	return s.Pos.Add(FromAngle(s.Facing, 2*s.Height))
}

// AsteroidState is a copy of an asteroid's kinematics.
type AsteroidState struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// ParticleState is a copy of a particle's kinematics.
type ParticleState struct {
	Pos Vec2
	Vel Vec2
}

// Perception is the world as one agent sees it at the start of its turn.
// Every slice is freshly allocated, so an agent may keep or modify it
// without touching the round.
type Perception struct {
	Tick          int
	Width, Height float64
	Ship          ShipState
	Asteroids     []AsteroidState
	Particles     []ParticleState
}

// perceive builds the perception of pilot p for the given kind.
func (r *Round) perceive(p *pilot, kind PerceptionKind) Perception {
	pc := Perception{Tick: r.tick, Width: r.width, Height: r.height}
	if kind != PerceptionVector {
		return pc
	}
	pc.Ship = p.ship.State()
	pc.Asteroids = make([]AsteroidState, len(r.asteroids))
	for i, a := range r.asteroids {
		pc.Asteroids[i] = a.State()
	}
	pc.Particles = make([]ParticleState, len(r.particles))
	for i, pt := range r.particles {
		pc.Particles[i] = pt.State()
	}
	return pc
}
