package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtools/internal/router"
	"github.com/abhisek/mathtools/internal/screen"
	"github.com/abhisek/mathtools/internal/screens/practice"
	"github.com/abhisek/mathtools/internal/tools"
	"github.com/abhisek/mathtools/internal/ui/components"
	"github.com/abhisek/mathtools/internal/ui/layout"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

// HomeScreen lists every tool, grouped by topic.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	var items []components.MenuItem
	for _, topic := range tools.AllTopics() {
		items = append(items, components.MenuItem{
			Label:   tools.TopicDisplayName(topic),
			Heading: true,
		})
		for _, t := range tools.ByTopic(topic) {
			items = append(items, components.MenuItem{
				Label: t.Name,
				Hint:  t.Description,
				Action: func() tea.Cmd {
					return func() tea.Msg {
						return router.PushScreenMsg{Screen: practice.New(env, t)}
					}
				},
			})
		}
	}

	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "s" {
		h.env.Scheme = theme.NextScheme(h.env.Scheme)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	title := theme.Title.Width(cw).Render("Choose a tool")
	scheme := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(theme.Hint.Render("Colour scheme: " + h.env.Scheme.Name))
	menu := theme.Card.Width(cw).Render(strings.TrimRight(h.menu.View(), "\n"))

	content := strings.Join([]string{title, scheme, menu}, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// contentWidth leaves a margin around the menu card and caps its width.
func contentWidth(frameWidth int) int {
	return max(20, min(frameWidth-6, 72))
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "s", Description: "Scheme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
