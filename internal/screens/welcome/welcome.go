package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtools/internal/router"
	"github.com/abhisek/mathtools/internal/screen"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	revealEvery  = 400 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// topicCards are revealed one at a time under the banner.
var topicCards = []struct {
	name    string
	example string
}{
	{"Ratio", "12 : 18 = 2 : 3"},
	{"Algebra", "3(x + 4) = 3x + 12"},
	{"Geometry", "C = πd"},
}

type tickMsg time.Time

// WelcomeScreen shows the banner and topics, then hands over to the home
// screen when the animation ends or a key is pressed.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

// transition replaces this screen with home, once.
func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

// revealed is the number of topic cards on show.
func (w *WelcomeScreen) revealed() int {
	return min(int(w.elapsed/revealEvery), len(topicCards))
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width), ""}

	var cards []string
	for _, c := range topicCards[:w.revealed()] {
		cards = append(cards, theme.Card.Render(
			theme.Selected.Render(c.name)+"\n"+theme.Body.Render(c.example)))
	}
	if len(cards) > 0 {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cards...), "")
	}

	sections = append(sections, theme.Hint.Render("press any key to continue"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
