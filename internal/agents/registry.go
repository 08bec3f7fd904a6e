// Package agents holds the built-in pilots and the registry frontends use to
// pick them by name.
package agents

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

// ErrUnknownAgent is returned when a name has no registered factory.
var ErrUnknownAgent = errors.New("unknown agent")

// Factory builds a fresh agent for one round.
type Factory func() game.Agent

// Registry maps agent names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Registering a name twice is an error.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("register agent %q: name and factory are required", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("register agent %q: already registered", name)
	}
	r.factories[name] = f
	return nil
}

// New builds the agent registered under name.
func (r *Registry) New(name string) (game.Agent, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownAgent, name, strings.Join(r.Names(), ", "))
	}
	return f(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Built-in agent names.
const (
	NameReactive = "reactive"
	NameDumb     = "dumb"
	NameHuman    = "human"
	NameIdle     = "idle"
)

// Builtin returns a registry holding every agent shipped with the game.
func Builtin() *Registry {
	r := NewRegistry()
	// Names are constant and distinct, so registration cannot fail.
	_ = r.Register(NameReactive, func() game.Agent { return NewReactive() })
	_ = r.Register(NameDumb, func() game.Agent { return NewDumb() })
	_ = r.Register(NameHuman, func() game.Agent { return NewHuman() })
	_ = r.Register(NameIdle, func() game.Agent { return Idle{} })
	return r
}
