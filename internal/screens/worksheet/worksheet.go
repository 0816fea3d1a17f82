// Package worksheet is the screen that assembles a printable sheet of
// unique questions for one tool.
package worksheet

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/render"
	"github.com/abhisek/mathtools/internal/screen"
	"github.com/abhisek/mathtools/internal/tools"
	"github.com/abhisek/mathtools/internal/ui/components"
	"github.com/abhisek/mathtools/internal/ui/layout"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

const (
	defaultCount   = 10
	defaultColumns = 2
)

// WorksheetScreen collects the sheet settings and shows the generated
// questions.
type WorksheetScreen struct {
	env   *screen.Env
	tool  tools.Tool
	level problemgen.Difficulty
	cfg   problemgen.GenerationConfig

	count          components.TextInput
	differentiated bool
	answers        bool
	columns        int

	questions []problemgen.Question
	err       error
}

var (
	_ screen.Screen          = (*WorksheetScreen)(nil)
	_ screen.KeyHintProvider = (*WorksheetScreen)(nil)
	_ screen.LevelProvider   = (*WorksheetScreen)(nil)
)

// New creates a worksheet screen for tool, using the practice screen's
// level and settings.
func New(env *screen.Env, tool tools.Tool, level problemgen.Difficulty, cfg problemgen.GenerationConfig) *WorksheetScreen {
	return &WorksheetScreen{
		env:     env,
		tool:    tool,
		level:   level,
		cfg:     cfg,
		count:   components.NewTextInput("1-20", strconv.Itoa(defaultCount), true, 2),
		columns: defaultColumns,
	}
}

func (w *WorksheetScreen) Init() tea.Cmd {
	return w.count.Init()
}

func (w *WorksheetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			w.generate()
			return w, nil
		case "d":
			w.differentiated = !w.differentiated
			return w, nil
		case "a":
			w.answers = !w.answers
			return w, nil
		case "c":
			w.columns = w.columns%render.MaxColumns + 1
			return w, nil
		case "s":
			w.env.Scheme = theme.NextScheme(w.env.Scheme)
			return w, nil
		}
	}

	var cmd tea.Cmd
	w.count, cmd = w.count.Update(msg)
	return w, cmd
}

// generate assembles the sheet. The typed count is clamped and written
// back so the field shows what was used.
func (w *WorksheetScreen) generate() {
	n := problemgen.ClampCount(w.count.IntValue(defaultCount))
	w.count.Model.SetValue(strconv.Itoa(n))
	w.questions, w.err = w.env.Engine.Worksheet(w.tool.ID, n, w.differentiated, w.level, w.cfg)
}

func (w *WorksheetScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(w.tool.Name + " worksheet"))
	b.WriteString("\n\n")
	b.WriteString("Questions: " + w.count.View())
	if w.differentiated {
		b.WriteString(" per level")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  Columns: %d\n",
		checkbox("Differentiated", w.differentiated),
		checkbox("Answers", w.answers),
		w.columns))

	switch {
	case w.err != nil:
		b.WriteString("\n" + theme.Warning.Render(w.err.Error()) + "\n")
	case len(w.questions) == 0:
		b.WriteString("\n" + theme.Hint.Render("Press Enter to generate.") + "\n")
	default:
		b.WriteString("\n")
		b.WriteString(render.Styled(w.env.Scheme, width-4).Worksheet(render.Sheet{
			Questions: w.questions,
			Columns:   w.columns,
			Answers:   w.answers,
		}))
	}

	return lipgloss.NewStyle().
		Padding(0, 2).
		MaxHeight(height).
		Render(b.String())
}

func checkbox(label string, on bool) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func (w *WorksheetScreen) Title() string {
	return "Worksheet"
}

// Level returns the level questions are drawn at.
func (w *WorksheetScreen) Level() problemgen.Difficulty {
	return w.level
}

// Questions returns the last generated sheet.
func (w *WorksheetScreen) Questions() []problemgen.Question {
	return w.questions
}

func (w *WorksheetScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Generate"},
		{Key: "d", Description: "Differentiated"},
		{Key: "a", Description: "Answers"},
		{Key: "c", Description: "Columns"},
		{Key: "s", Description: "Scheme"},
		{Key: "Esc", Description: "Back"},
	}
}
