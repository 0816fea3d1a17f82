package tools

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathtools/internal/problemgen"
)

// validateTools performs all structural checks on the given tool set.
// Returns a combined error describing all problems found, or nil if valid.
func validateTools(tools []Tool) error {
	var errs []string

	idSet := make(map[string]bool, len(tools))
	topicSet := make(map[Topic]bool)

	for _, t := range tools {
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate tool ID: %q", t.ID))
		}
		idSet[t.ID] = true
		topicSet[t.Topic] = true

		if t.Name == "" {
			errs = append(errs, fmt.Sprintf("tool %q has no name", t.ID))
		}
		if t.New == nil {
			errs = append(errs, fmt.Sprintf("tool %q has no generator", t.ID))
		}
	}

	// Every level's dropdown must offer its own default.
	for _, t := range tools {
		for _, level := range problemgen.AllDifficulties() {
			d := t.DropdownFor(level)
			if d == nil {
				continue
			}
			if len(d.Options) == 0 {
				errs = append(errs, fmt.Sprintf("tool %q %s: dropdown %q has no options", t.ID, level, d.Key))
			} else if !d.Has(d.Default) {
				errs = append(errs, fmt.Sprintf("tool %q %s: dropdown default %q is not an option", t.ID, level, d.Default))
			}
		}
	}

	// Variable keys must be unique within a level.
	for _, t := range tools {
		for _, level := range problemgen.AllDifficulties() {
			seen := make(map[string]bool)
			for _, v := range t.VariablesFor(level) {
				if seen[v.Key] {
					errs = append(errs, fmt.Sprintf("tool %q %s: duplicate variable %q", t.ID, level, v.Key))
				}
				seen[v.Key] = true
			}
		}
	}

	for _, topic := range AllTopics() {
		if !topicSet[topic] {
			errs = append(errs, fmt.Sprintf("topic %q has no tools", topic))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("tool catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
