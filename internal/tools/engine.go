package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/abhisek/mathtools/internal/problemgen"
)

// Configuration errors reported by Tool.Configure.
var (
	ErrUnknownOption = errors.New("unknown option")
	ErrUnknownChoice = errors.New("unknown choice")
)

// Configure overlays option overrides and a dropdown choice on the level's
// defaults. An empty choice keeps the default selection.
func (t Tool) Configure(level problemgen.Difficulty, opts map[string]bool, choice string) (problemgen.GenerationConfig, error) {
	cfg := t.DefaultConfig(level)
	for key, on := range opts {
		if !t.HasVariable(level, key) {
			return cfg, fmt.Errorf("%w %q for %s at %s", ErrUnknownOption, key, t.ID, level.Label())
		}
		cfg.Options[key] = on
	}
	if choice == "" {
		return cfg, nil
	}
	d := t.DropdownFor(level)
	if d == nil || !d.Has(choice) {
		return cfg, fmt.Errorf("%w %q for %s at %s", ErrUnknownChoice, choice, t.ID, level.Label())
	}
	cfg.Dropdown = choice
	return cfg, nil
}

// Engine serves questions from catalog tools. Each tool's generator is
// wrapped with validation and logging middleware on first use. Engine is
// safe for concurrent use; calls share one random source.
type Engine struct {
	mu         sync.Mutex
	rng        problemgen.Rand
	logger     *slog.Logger
	validation problemgen.Config
	gens       map[string]problemgen.Generator
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source. The default is time-seeded.
func WithRand(r problemgen.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the logger. The default discards records.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithValidators replaces the validator chain run on every question.
func WithValidators(cfg problemgen.Config) Option {
	return func(e *Engine) { e.validation = cfg }
}

// NewEngine returns an engine over the catalog.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rng:        problemgen.NewRand(0),
		logger:     slog.New(slog.DiscardHandler),
		validation: problemgen.DefaultConfig(),
		gens:       make(map[string]problemgen.Generator),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// generator returns the wrapped generator for id. Callers hold e.mu.
func (e *Engine) generator(id string) (problemgen.Generator, error) {
	if g, ok := e.gens[id]; ok {
		return g, nil
	}
	t, err := Get(id)
	if err != nil {
		return nil, err
	}

	// Wrap with middleware: caller → logging → validation → base
	validated := problemgen.WithValidation(t.New(), e.validation, e.logger)
	g := problemgen.WithLogging(validated, id, e.logger)
	e.gens[id] = g
	return g, nil
}

// Generate returns one question from the tool.
func (e *Engine) Generate(id string, level problemgen.Difficulty, cfg problemgen.GenerationConfig) (problemgen.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.generator(id)
	if err != nil {
		return problemgen.Question{}, err
	}
	return g.Generate(e.rng, problemgen.GenerateInput{Level: level, Config: cfg}), nil
}

// GenerateUnique returns a question whose key is not yet in used, and
// records its key.
func (e *Engine) GenerateUnique(id string, level problemgen.Difficulty, cfg problemgen.GenerationConfig, used problemgen.KeySet) (problemgen.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.generator(id)
	if err != nil {
		return problemgen.Question{}, err
	}
	return problemgen.GenerateUnique(g, e.rng, problemgen.GenerateInput{Level: level, Config: cfg}, used), nil
}

// Worksheet assembles n questions at level, or n per level when
// differentiated. n is clamped to the supported worksheet size.
func (e *Engine) Worksheet(id string, n int, differentiated bool, level problemgen.Difficulty, cfg problemgen.GenerationConfig) ([]problemgen.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.generator(id)
	if err != nil {
		return nil, err
	}
	req := problemgen.WorksheetRequest{
		Count:          problemgen.ClampCount(n),
		Differentiated: differentiated,
		Level:          level,
		Config:         cfg,
	}
	qs := problemgen.GenerateWorksheet(g, e.rng, req)
	e.logger.Debug("worksheet assembled",
		"tool", id,
		"count", len(qs),
		"differentiated", differentiated)
	return qs, nil
}
