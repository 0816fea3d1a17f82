package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtools/internal/ui/theme"
)

// CheckItem is one on/off option.
type CheckItem struct {
	Key   string
	Label string
	On    bool
}

// ToggledMsg reports that an item was switched.
type ToggledMsg struct {
	Key string
	On  bool
}

// Checklist is a row of toggles with one focused item.
type Checklist struct {
	Items []CheckItem
	Focus int
}

// NewChecklist creates a checklist focused on the first item.
func NewChecklist(items []CheckItem) Checklist {
	return Checklist{Items: items}
}

// Values returns every item's state by key.
func (c Checklist) Values() map[string]bool {
	out := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		out[it.Key] = it.On
	}
	return out
}

// Update moves focus with f or tab and toggles the focused item with x or
// space.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Items) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "f", "tab":
		c.Focus = (c.Focus + 1) % len(c.Items)
	case "x", "space":
		items := make([]CheckItem, len(c.Items))
		copy(items, c.Items)
		items[c.Focus].On = !items[c.Focus].On
		c.Items = items
		toggled := ToggledMsg{Key: items[c.Focus].Key, On: items[c.Focus].On}
		return c, func() tea.Msg { return toggled }
	}
	return c, nil
}

// View renders the checklist on one line.
func (c Checklist) View() string {
	parts := make([]string, 0, len(c.Items))
	for i, it := range c.Items {
		box := "[ ] "
		if it.On {
			box = "[x] "
		}
		if i == c.Focus {
			parts = append(parts, theme.Selected.Render("▸ "+box+it.Label))
		} else {
			parts = append(parts, theme.Unselected.Render("  "+box+it.Label))
		}
	}
	return strings.Join(parts, "  ")
}
