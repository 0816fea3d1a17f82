// Package tools is the catalog of question tools and the engine that serves
// questions from them.
package tools

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownTool is returned for an ID not in the catalog.
var ErrUnknownTool = errors.New("unknown tool")

// registry holds the catalog with precomputed indices.
type registry struct {
	tools   []Tool
	byID    map[string]*Tool
	byTopic map[Topic][]Tool
}

// reg is the package-level catalog, built once at init.
var reg = buildRegistry(catalog())

func buildRegistry(tools []Tool) *registry {
	r := &registry{
		tools:   tools,
		byID:    make(map[string]*Tool, len(tools)),
		byTopic: make(map[Topic][]Tool),
	}
	for i := range r.tools {
		t := &r.tools[i]
		r.byID[t.ID] = t
		r.byTopic[t.Topic] = append(r.byTopic[t.Topic], *t)
	}
	return r
}

// Get returns a tool by ID.
func Get(id string) (Tool, error) {
	t, ok := reg.byID[id]
	if !ok {
		return Tool{}, fmt.Errorf("%w: %q", ErrUnknownTool, id)
	}
	return *t, nil
}

// All returns every tool in catalog order.
func All() []Tool {
	return slices.Clone(reg.tools)
}

// ByTopic returns the tools of one topic in catalog order.
func ByTopic(topic Topic) []Tool {
	return slices.Clone(reg.byTopic[topic])
}

// IDs returns every tool ID in catalog order.
func IDs() []string {
	ids := make([]string, len(reg.tools))
	for i, t := range reg.tools {
		ids[i] = t.ID
	}
	return ids
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateTools(reg.tools)
}
