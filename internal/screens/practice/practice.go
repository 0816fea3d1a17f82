// Package practice is the classroom screen for one tool: a single question
// shown whiteboard style or as a worked example.
package practice

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/render"
	"github.com/abhisek/mathtools/internal/router"
	"github.com/abhisek/mathtools/internal/screen"
	"github.com/abhisek/mathtools/internal/screens/worksheet"
	"github.com/abhisek/mathtools/internal/tools"
	"github.com/abhisek/mathtools/internal/ui/components"
	"github.com/abhisek/mathtools/internal/ui/layout"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

// Mode selects how the question is presented.
type Mode int

const (
	// Whiteboard shows the question alone; the answer is revealed on demand.
	Whiteboard Mode = iota
	// WorkedExample shows the question with its full working.
	WorkedExample
)

func (m Mode) String() string {
	if m == WorkedExample {
		return "Worked example"
	}
	return "Whiteboard"
}

// PracticeScreen shows one question at a time for a tool.
type PracticeScreen struct {
	env  *screen.Env
	tool tools.Tool

	level    problemgen.Difficulty
	options  components.Checklist
	dropdown *tools.Dropdown
	choice   string

	mode       Mode
	question   problemgen.Question
	showAnswer bool
	err        error
}

var (
	_ screen.Screen          = (*PracticeScreen)(nil)
	_ screen.KeyHintProvider = (*PracticeScreen)(nil)
	_ screen.LevelProvider   = (*PracticeScreen)(nil)
)

// New creates a practice screen at level 1 with a first question ready.
func New(env *screen.Env, tool tools.Tool) *PracticeScreen {
	p := &PracticeScreen{env: env, tool: tool}
	p.setLevel(problemgen.Level1)
	return p
}

// setLevel resets the options to the level's defaults and draws a new
// question.
func (p *PracticeScreen) setLevel(level problemgen.Difficulty) {
	p.level = level
	cfg := p.tool.DefaultConfig(level)

	vars := p.tool.VariablesFor(level)
	items := make([]components.CheckItem, len(vars))
	for i, v := range vars {
		items[i] = components.CheckItem{Key: v.Key, Label: v.Label, On: cfg.Flag(v.Key)}
	}
	p.options = components.NewChecklist(items)
	p.dropdown = p.tool.DropdownFor(level)
	p.choice = cfg.Dropdown
	p.next()
}

// Config returns the generation settings currently selected.
func (p *PracticeScreen) Config() problemgen.GenerationConfig {
	return problemgen.GenerationConfig{Options: p.options.Values(), Dropdown: p.choice}
}

func (p *PracticeScreen) next() {
	p.question, p.err = p.env.Engine.Generate(p.tool.ID, p.level, p.Config())
	p.showAnswer = false
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ToggledMsg:
		p.next()
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "1", "2", "3":
			level, _ := problemgen.ParseDifficulty(msg.String())
			p.setLevel(level)
			return p, nil
		case "n", "enter":
			p.next()
			return p, nil
		case "a":
			p.showAnswer = !p.showAnswer
			return p, nil
		case "m":
			p.mode = (p.mode + 1) % 2
			return p, nil
		case "d":
			if p.dropdown != nil {
				p.choice = p.dropdown.Next(p.choice)
				p.next()
			}
			return p, nil
		case "s":
			p.env.Scheme = theme.NextScheme(p.env.Scheme)
			return p, nil
		case "w":
			ws := worksheet.New(p.env, p.tool, p.level, p.Config())
			return p, func() tea.Msg { return router.PushScreenMsg{Screen: ws} }
		}
	}

	var cmd tea.Cmd
	p.options, cmd = p.options.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(p.tool.Name))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(p.mode.String()))
	b.WriteString("\n")

	if len(p.options.Items) > 0 {
		b.WriteString(p.options.View())
		b.WriteString("\n")
	}
	if p.dropdown != nil {
		b.WriteString(theme.Body.Render(p.dropdown.Label + ": " + p.dropdown.ChoiceLabel(p.choice)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if p.err != nil {
		b.WriteString(theme.Warning.Render(p.err.Error()))
	} else {
		worked := p.mode == WorkedExample
		r := render.Styled(p.env.Scheme, width-4)
		b.WriteString(r.Question(p.question, p.showAnswer || worked, worked))
	}

	return lipgloss.NewStyle().
		Padding(0, 2).
		MaxHeight(height).
		Render(b.String())
}

func (p *PracticeScreen) Title() string {
	return p.tool.Name
}

// Level returns the selected difficulty.
func (p *PracticeScreen) Level() problemgen.Difficulty {
	return p.level
}

// Question returns the question on screen.
func (p *PracticeScreen) Question() problemgen.Question {
	return p.question
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "1-3", Description: "Level"},
		{Key: "n", Description: "New"},
		{Key: "a", Description: "Answer"},
		{Key: "m", Description: "Mode"},
	}
	if p.dropdown != nil {
		hints = append(hints, layout.KeyHint{Key: "d", Description: p.dropdown.Label})
	}
	if len(p.options.Items) > 0 {
		hints = append(hints, layout.KeyHint{Key: "f/x", Description: "Options"})
	}
	return append(hints,
		layout.KeyHint{Key: "w", Description: "Worksheet"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}
