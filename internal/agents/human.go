package agents

import (
	"sync"

	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

// Control is an abstract key a frontend forwards to a Human pilot.
type Control int

const (
	ControlBoost     Control = iota // W
	ControlTurnLeft                 // A
	ControlTurnRight                // D
	ControlFire                     // space
)

func (c Control) String() string {
	switch c {
	case ControlBoost:
		return "boost"
	case ControlTurnLeft:
		return "turn_left"
	case ControlTurnRight:
		return "turn_right"
	case ControlFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Human queues actions from key presses and hands them over on the next
// tick. Frontends may call Press and Release from their own goroutine.
type Human struct {
	mu      sync.Mutex
	pending []game.Action
}

// NewHuman returns a human pilot with an empty queue.
func NewHuman() *Human { return &Human{} }

func (h *Human) PerceptionKind() game.PerceptionKind { return game.PerceptionNone }

func (h *Human) Perceive(game.Perception) {}

// Decide drains the queue.
func (h *Human) Decide() []game.Action {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.pending
	h.pending = nil
	return out
}

// Press queues the action for a pressed control.
func (h *Human) Press(c Control) {
	switch c {
	case ControlBoost:
		h.push(game.ActionBoost)
	case ControlTurnLeft:
		h.push(game.ActionTurnLeft)
	case ControlTurnRight:
		h.push(game.ActionTurnRight)
	case ControlFire:
		h.push(game.ActionFire)
	}
}

// Release queues the action for a released control. Fire has no release.
func (h *Human) Release(c Control) {
	switch c {
	case ControlBoost:
		h.push(game.ActionStopBoost)
	case ControlTurnLeft, ControlTurnRight:
		h.push(game.ActionStopTurn)
	}
}

func (h *Human) push(a game.Action) {
	h.mu.Lock()
	h.pending = append(h.pending, a)
	h.mu.Unlock()
}
