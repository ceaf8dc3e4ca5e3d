// Package registry maps mode IDs to game factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
// Everything a game needs from the outside arrives through Deps.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ledger"
)

// ErrUnknownMode is returned by Create for an unregistered ID.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Game is the interface every mode implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g. "invaders", "attract").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after a run ends.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Deps are the shared services handed to a factory. The zero value is
// usable: games fall back to a memory-only ledger and a silent logger.
type Deps struct {
	Ledger     *ledger.Ledger
	ConfigPath string
	Preset     config.DifficultyPreset
	Logger     *log.Logger
}

// WithDefaults fills unset fields.
func (d Deps) WithDefaults() Deps {
	if d.Ledger == nil {
		d.Ledger = ledger.New(ledger.DefaultSeed)
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Preset == "" {
		d.Preset = config.DifficultyNormal
	}
	return d
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(Deps) (Game, error)

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a factory to the registry.
// Typically called from a game package's init() function.
// Panics if a mode with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered modes, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by its ID.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, id)
	}

	g, err := e.factory(deps.WithDefaults())
	if err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", id, err)
	}
	return g, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
