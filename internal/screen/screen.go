package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/tools"
	"github.com/abhisek/mathtools/internal/ui/layout"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// LevelProvider is implemented by screens working at a difficulty level,
// shown as a badge in the header.
type LevelProvider interface {
	Level() problemgen.Difficulty
}

// Env is shared by every screen. The app owns it and may change the
// scheme while screens are live.
type Env struct {
	Engine *tools.Engine
	Scheme theme.Scheme
}
