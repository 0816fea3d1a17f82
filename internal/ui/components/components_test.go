package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSkipsHeadings(t *testing.T) {
	chosen := ""
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			chosen = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Ratio", Heading: true},
		{Label: "Simplify", Action: pick("Simplify")},
		{Label: "Algebra", Heading: true},
		{Label: "Expand", Action: pick("Expand")},
	})

	if m.Selected != 1 {
		t.Fatalf("expected first selectable item 1, got %d", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("expected down to skip heading to 3, got %d", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("expected selection to stay at last item, got %d", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("expected up to skip heading to 1, got %d", m.Selected)
	}

	m.Update(specialKey(tea.KeyEnter))
	if chosen != "Simplify" {
		t.Errorf("expected Simplify action, got %q", chosen)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Geometry", Heading: true},
		{Label: "Circumference", Hint: "C = πd"},
	})
	view := m.View()
	for _, want := range []string{"Geometry", "▸ Circumference", "C = πd"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestChecklistToggle(t *testing.T) {
	c := NewChecklist([]CheckItem{
		{Key: "a", Label: "First"},
		{Key: "b", Label: "Second", On: true},
	})

	c, _ = c.Update(keyPress('f'))
	if c.Focus != 1 {
		t.Fatalf("expected focus 1, got %d", c.Focus)
	}

	c, cmd := c.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected toggle command")
	}
	msg, ok := cmd().(ToggledMsg)
	if !ok || msg.Key != "b" || msg.On {
		t.Errorf("unexpected toggle message %+v", msg)
	}
	if v := c.Values(); v["a"] || v["b"] {
		t.Errorf("expected both options off, got %v", v)
	}

	c, _ = c.Update(keyPress('f'))
	if c.Focus != 0 {
		t.Errorf("expected focus to wrap to 0, got %d", c.Focus)
	}
}

func TestChecklistEmpty(t *testing.T) {
	c := NewChecklist(nil)
	c, cmd := c.Update(keyPress('x'))
	if cmd != nil || c.View() != "" {
		t.Error("expected empty checklist to ignore keys")
	}
}

func TestTextInputNumericOnly(t *testing.T) {
	in := NewTextInput("count", "1", true, 2)
	in, _ = in.Update(keyPress('a'))
	in, _ = in.Update(keyPress('2'))

	if got := in.Value(); got != "12" {
		t.Errorf("expected value 12, got %q", got)
	}
	if got := in.IntValue(5); got != 12 {
		t.Errorf("expected 12, got %d", got)
	}

	empty := NewTextInput("count", "", true, 2)
	if got := empty.IntValue(5); got != 5 {
		t.Errorf("expected default 5, got %d", got)
	}
}
