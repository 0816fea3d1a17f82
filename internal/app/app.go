package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtools/internal/router"
	"github.com/abhisek/mathtools/internal/screen"
	"github.com/abhisek/mathtools/internal/screens/home"
	"github.com/abhisek/mathtools/internal/screens/welcome"
	"github.com/abhisek/mathtools/internal/tools"
	"github.com/abhisek/mathtools/internal/ui/layout"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

// Options holds dependencies for the app.
type Options struct {
	Engine *tools.Engine
	Scheme theme.Scheme

	// Splash shows the welcome animation before the home screen.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	env    *screen.Env
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	engine := opts.Engine
	if engine == nil {
		engine = tools.NewEngine()
	}
	env := &screen.Env{Engine: engine, Scheme: opts.Scheme}

	var first screen.Screen = home.New(env)
	if opts.Splash {
		first = welcome.New(func() screen.Screen { return home.New(env) })
	}
	return AppModel{
		router: router.New(first),
		env:    env,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "q":
			if m.router.Depth() == 1 {
				return m, tea.Quit
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, badge := "", ""
	if active != nil {
		title = active.Title()
		if lp, ok := active.(screen.LevelProvider); ok {
			badge = theme.LevelBadge(lp.Level())
		}
	}
	header := layout.RenderHeader(title, badge, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
