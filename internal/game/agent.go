package game

// Agent pilots one ship. Each tick the round hands it a perception of the
// kind it asked for, then applies the returned actions in order.
type Agent interface {
	PerceptionKind() PerceptionKind
	Perceive(p Perception)
	Decide() []Action
}

// RewardReceiver is implemented by agents that want the score gained on
// each tick they were alive for.
type RewardReceiver interface {
	ReceiveReward(reward int)
}

// pilot binds an agent to the ship the round owns for it.
type pilot struct {
	name  string
	agent Agent
	ship  *Ship
	label string // e.g. "P0"
	dead  bool
}
