package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtools/internal/problemgen"
)

// Color palette for the classroom display.
var (
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#16A34A") // Green
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	Ink       = lipgloss.Color("#111827") // Near black, for light panels
)

// Level colours.
var (
	Level1 = lipgloss.Color("#16A34A") // Green
	Level2 = lipgloss.Color("#EAB308") // Yellow
	Level3 = lipgloss.Color("#DC2626") // Red
)

// LevelColor returns the colour used for a difficulty's badge and header.
func LevelColor(d problemgen.Difficulty) color.Color {
	switch d {
	case problemgen.Level2:
		return Level2
	case problemgen.Level3:
		return Level3
	default:
		return Level1
	}
}

// LevelBadge renders a difficulty label in its colour.
func LevelBadge(d problemgen.Difficulty) string {
	return lipgloss.NewStyle().
		Foreground(LevelColor(d)).
		Bold(true).
		Render(d.Label())
}

// Scheme is a colour scheme for the question and working panels.
type Scheme struct {
	Name       string
	QuestionBg color.Color
	StepBg     color.Color
}

var schemes = map[string]Scheme{
	"default": {Name: "default", QuestionBg: lipgloss.Color("#FFFFFF"), StepBg: lipgloss.Color("#F3F4F6")},
	"blue":    {Name: "blue", QuestionBg: lipgloss.Color("#D1E7F8"), StepBg: lipgloss.Color("#B3D9F2")},
	"pink":    {Name: "pink", QuestionBg: lipgloss.Color("#F8D1E7"), StepBg: lipgloss.Color("#F2B3D9")},
	"yellow":  {Name: "yellow", QuestionBg: lipgloss.Color("#F8F4D1"), StepBg: lipgloss.Color("#F2EBB3")},
}

// SchemeNames lists the schemes in menu order.
var SchemeNames = []string{"default", "blue", "pink", "yellow"}

// SchemeByName returns the named scheme, or the default scheme.
func SchemeByName(name string) Scheme {
	if s, ok := schemes[name]; ok {
		return s
	}
	return schemes["default"]
}

// NextScheme returns the scheme after s in menu order.
func NextScheme(s Scheme) Scheme {
	for i, name := range SchemeNames {
		if name == s.Name {
			return schemes[SchemeNames[(i+1)%len(SchemeNames)]]
		}
	}
	return schemes["default"]
}

// QuestionPanel styles the panel holding the question text.
func (s Scheme) QuestionPanel() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(s.QuestionBg).
		Foreground(Ink).
		Bold(true).
		Padding(1, 3).
		Align(lipgloss.Center)
}

// StepPanel styles one working step.
func (s Scheme) StepPanel() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(s.StepBg).
		Foreground(Ink).
		Padding(0, 2)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Answer = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Components
var (
	BarFilled = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(Ink)

	BarEmpty = lipgloss.NewStyle().
			Background(Border).
			Foreground(Text)

	BarHighlight = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Ink)
)
