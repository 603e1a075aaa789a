// Package autoplay plays 2048 without a human: named move policies live in a
// registry and Run drives whole games with one of them.
package autoplay

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Policy picks the next move for a board.
type Policy interface {
	// Name returns the registry name of the policy.
	Name() string

	// Choose returns the direction to play. ok is false when no direction
	// changes the board.
	Choose(b engine.Board) (dir engine.Direction, ok bool)
}

// Info describes a registered policy.
type Info struct {
	Name        string
	Description string
}

// Factory builds a policy. Policies that need randomness draw from rng.
type Factory func(rng *rand.Rand) Policy

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a policy factory under name.
// Panics if the name is already taken.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("autoplay: policy %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns all registered policies, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a policy by name.
func Create(name string, rng *rand.Rand) (Policy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("autoplay: unknown policy %q", name)
	}

	return f(rng), nil
}

// Exists reports whether a policy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
