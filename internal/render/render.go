// Package render lays out questions, working and worksheets as terminal text,
// plain for pipes or styled with a colour scheme.
package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

// DefaultWidth is the layout width when none is known.
const DefaultWidth = 80

// Renderer formats questions. The zero value renders plain text at
// DefaultWidth.
type Renderer struct {
	styled bool
	scheme theme.Scheme
	width  int
}

// Plain returns a renderer that emits no colour codes.
func Plain(width int) Renderer {
	return Renderer{width: width}
}

// Styled returns a renderer using the colour scheme.
func Styled(scheme theme.Scheme, width int) Renderer {
	return Renderer{styled: true, scheme: scheme, width: width}
}

func (r Renderer) lineWidth() int {
	if r.width <= 0 {
		return DefaultWidth
	}
	return r.width
}

func (r Renderer) paint(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// AnswerText is the answer followed by its unit, if any.
func AnswerText(q problemgen.Question) string {
	if final, ok := q.FinalStep(); ok && final.Unit != "" {
		return q.Answer + " " + final.Unit
	}
	return q.Answer
}

// Question renders a single question, optionally followed by its answer and
// working.
func (r Renderer) Question(q problemgen.Question, showAnswer, showWorking bool) string {
	var b strings.Builder
	if r.styled {
		b.WriteString(r.scheme.QuestionPanel().Width(r.lineWidth()).Render(q.Display))
	} else {
		b.WriteString(q.Display)
	}
	b.WriteString("\n")

	if showWorking {
		b.WriteString("\n")
		b.WriteString(r.Working(q.Working))
	}
	if showAnswer {
		b.WriteString("\n")
		b.WriteString(r.paint(theme.Answer, "Answer: "+AnswerText(q)))
		b.WriteString("\n")
	}
	return b.String()
}

// Working renders every step in order, one block per step.
func (r Renderer) Working(steps []problemgen.WorkingStep) string {
	blocks := make([]string, 0, len(steps))
	for _, s := range steps {
		blocks = append(blocks, r.step(s))
	}
	return strings.Join(blocks, "\n") + "\n"
}

func (r Renderer) step(s problemgen.WorkingStep) string {
	var lines []string
	switch {
	case s.Text != "":
		lines = append(lines, s.Text)
	case s.Kind == problemgen.StepFinal:
		answer := s.Answer
		if s.Unit != "" {
			answer += " " + s.Unit
		}
		lines = append(lines, "Answer: "+answer)
	}
	for _, l := range s.Lines {
		lines = append(lines, "  "+l)
	}
	if len(s.Bars) > 0 {
		lines = append(lines, r.Bars(s.Bars))
	}

	text := strings.Join(lines, "\n")
	if !r.styled {
		return text
	}
	if s.Kind == problemgen.StepFinal {
		return theme.Answer.Render(text)
	}
	return r.scheme.StepPanel().Width(r.lineWidth()).Render(text)
}

// Bars renders a bar model, one row per person. Unknown part values leave
// the boxes blank.
func (r Renderer) Bars(bars []problemgen.Bar) string {
	labelWidth := 0
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}

	rows := make([]string, len(bars))
	for i, bar := range bars {
		cell := "   "
		if bar.BoxValue > 0 {
			cell = " " + numfmt.Currency(bar.BoxValue) + " "
		}
		style := theme.BarEmpty
		switch {
		case bar.Highlight:
			style = theme.BarHighlight
		case bar.BoxValue > 0:
			style = theme.BarFilled
		}

		var row strings.Builder
		row.WriteString("  " + bar.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(bar.Label)) + " ")
		for range bar.Boxes {
			if r.styled {
				row.WriteString(style.Render(cell) + " ")
			} else {
				row.WriteString("[" + cell + "]")
			}
		}
		if bar.Amount > 0 {
			row.WriteString(" = " + numfmt.Currency(bar.Amount))
		}
		rows[i] = strings.TrimRight(row.String(), " ")
	}
	return strings.Join(rows, "\n")
}
