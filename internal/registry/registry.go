// Package registry provides a global registry of playable game modes.
// Modes register themselves in init() functions, allowing the platform
// and CLI to discover rule-set variants without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Game is the interface every playable mode implements. Modes contain
// pure logic with no UI dependencies; the platform handles input mapping,
// timing and terminal rendering.
type Game interface {
	// ID returns the unique mode identifier (e.g. "arcade").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the mode with the given runtime
	// config (screen size, tick rate, RNG seed).
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current published telemetry.
	State() core.Snapshot
}

// Factory creates a new instance of a mode.
type Factory func() Game

// Info describes a registered mode.
type Info struct {
	ID          string
	Title       string
	Description string
}

var (
	mu    sync.RWMutex
	modes = make(map[string]struct {
		factory Factory
		info    Info
	})
)

// Register adds a mode to the registry, typically from an init function.
// Panics on duplicate IDs; that is a programming error.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	modes[info.ID] = struct {
		factory Factory
		info    Info
	}{factory: f, info: info}
}

// List returns all registered modes sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(modes))
	for _, m := range modes {
		out = append(out, m.info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m.factory(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
