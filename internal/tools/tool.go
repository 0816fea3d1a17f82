package tools

import (
	"slices"

	"github.com/abhisek/mathtools/internal/problemgen"
)

// Topic groups tools on the home menu.
type Topic string

const (
	TopicRatio    Topic = "ratio"
	TopicAlgebra  Topic = "algebra"
	TopicGeometry Topic = "geometry"
)

// AllTopics returns all topics in display order.
func AllTopics() []Topic {
	return []Topic{TopicRatio, TopicAlgebra, TopicGeometry}
}

// TopicDisplayName returns a human-readable name for a topic.
func TopicDisplayName(t Topic) string {
	switch t {
	case TopicRatio:
		return "Ratio"
	case TopicAlgebra:
		return "Algebra"
	case TopicGeometry:
		return "Geometry"
	default:
		return string(t)
	}
}

// Variable is a boolean option shown as a checkbox.
type Variable struct {
	Key     string
	Label   string
	Default bool
}

// Choice is one entry of a dropdown.
type Choice struct {
	Value string
	Label string
}

// Dropdown is a single-choice selector.
type Dropdown struct {
	Key     string
	Label   string
	Options []Choice
	Default string
}

// Has reports whether value is one of the dropdown's options.
func (d *Dropdown) Has(value string) bool {
	return slices.ContainsFunc(d.Options, func(c Choice) bool { return c.Value == value })
}

// Next returns the option after value, wrapping around.
func (d *Dropdown) Next(value string) string {
	i := slices.IndexFunc(d.Options, func(c Choice) bool { return c.Value == value })
	return d.Options[(i+1)%len(d.Options)].Value
}

// ChoiceLabel returns the label of value, or value itself when unknown.
func (d *Dropdown) ChoiceLabel(value string) string {
	if i := slices.IndexFunc(d.Options, func(c Choice) bool { return c.Value == value }); i >= 0 {
		return d.Options[i].Label
	}
	return value
}

// LevelSettings replaces a tool's variables or dropdown at one difficulty.
// A nil field inherits the tool-wide setting; an empty Variables slice hides
// every option.
type LevelSettings struct {
	Variables []Variable
	Dropdown  *Dropdown
}

// Tool is one entry of the catalog.
type Tool struct {
	ID          string
	Name        string
	Description string
	Topic       Topic
	Variables   []Variable
	Dropdown    *Dropdown
	Levels      map[problemgen.Difficulty]LevelSettings

	// New builds the tool's generator.
	New func() problemgen.Generator
}

// VariablesFor returns the options shown at level.
func (t Tool) VariablesFor(level problemgen.Difficulty) []Variable {
	if s, ok := t.Levels[level]; ok && s.Variables != nil {
		return s.Variables
	}
	return t.Variables
}

// DropdownFor returns the dropdown shown at level, or nil.
func (t Tool) DropdownFor(level problemgen.Difficulty) *Dropdown {
	if s, ok := t.Levels[level]; ok && s.Dropdown != nil {
		return s.Dropdown
	}
	return t.Dropdown
}

// DefaultConfig returns the option defaults and default dropdown selection
// for level.
func (t Tool) DefaultConfig(level problemgen.Difficulty) problemgen.GenerationConfig {
	cfg := problemgen.GenerationConfig{Options: make(map[string]bool)}
	for _, v := range t.VariablesFor(level) {
		cfg.Options[v.Key] = v.Default
	}
	if d := t.DropdownFor(level); d != nil {
		cfg.Dropdown = d.Default
	}
	return cfg
}

// HasVariable reports whether key is an option of the tool at level.
func (t Tool) HasVariable(level problemgen.Difficulty, key string) bool {
	return slices.ContainsFunc(t.VariablesFor(level), func(v Variable) bool { return v.Key == key })
}
