package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Asteroid-Sense/internal/agents"
)

// pilotKeys maps ship controls for a human pilot, in forwarding order.
var pilotKeys = []struct {
	key     ebiten.Key
	control agents.Control
}{
	{ebiten.KeyW, agents.ControlBoost},
	{ebiten.KeyA, agents.ControlTurnLeft},
	{ebiten.KeyD, agents.ControlTurnRight},
	{ebiten.KeySpace, agents.ControlFire},
}

// screenKeys are the edge-triggered menu and round keys.
var screenKeys = []ebiten.Key{
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyL,
	ebiten.KeyP,
	ebiten.KeyK,
	ebiten.KeyC,
}

// keyTracker remembers last frame's key state for edge detection.
type keyTracker struct {
	prev map[ebiten.Key]bool
	cur  map[ebiten.Key]bool
}

func newKeyTracker() *keyTracker {
	return &keyTracker{prev: map[ebiten.Key]bool{}, cur: map[ebiten.Key]bool{}}
}

// update records the new state of every tracked key.
func (kt *keyTracker) update(isPressed func(ebiten.Key) bool) {
	kt.prev = kt.cur
	kt.cur = make(map[ebiten.Key]bool, len(screenKeys)+len(pilotKeys))
	for _, k := range screenKeys {
		kt.cur[k] = isPressed(k)
	}
	for _, pk := range pilotKeys {
		kt.cur[pk.key] = isPressed(pk.key)
	}
}

func (kt *keyTracker) pressed(k ebiten.Key) bool { return kt.cur[k] && !kt.prev[k] }

func (kt *keyTracker) released(k ebiten.Key) bool { return !kt.cur[k] && kt.prev[k] }

// forwardControls turns pilot key transitions into Human presses/releases.
func (kt *keyTracker) forwardControls(h *agents.Human) {
	if h == nil {
		return
	}
	for _, pk := range pilotKeys {
		switch {
		case kt.pressed(pk.key):
			h.Press(pk.control)
		case kt.released(pk.key):
			h.Release(pk.control)
		}
	}
}
