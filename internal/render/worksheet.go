package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

// Column bounds for worksheet layout.
const (
	MinColumns = 1
	MaxColumns = 4
)

// Sheet is a worksheet ready for layout.
type Sheet struct {
	Title     string
	Questions []problemgen.Question
	Columns   int
	Answers   bool
}

// Worksheet lays the questions out in columns. Questions from different
// levels are grouped under a heading per level, numbered from 1 within each
// group.
func (r Renderer) Worksheet(s Sheet) string {
	cols := max(MinColumns, min(s.Columns, MaxColumns))

	var b strings.Builder
	if s.Title != "" {
		b.WriteString(r.paint(theme.Title, s.Title))
		b.WriteString("\n\n")
	}

	groups := groupByLevel(s.Questions)
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		if len(groups) > 1 {
			if r.styled {
				b.WriteString(theme.LevelBadge(g.level))
			} else {
				b.WriteString(g.level.Label())
			}
			b.WriteString("\n")
		}
		b.WriteString(r.grid(g.questions, cols, s.Answers))
	}
	return b.String()
}

type levelGroup struct {
	level     problemgen.Difficulty
	questions []problemgen.Question
}

// groupByLevel splits questions into runs of the same difficulty, keeping
// their order.
func groupByLevel(qs []problemgen.Question) []levelGroup {
	var groups []levelGroup
	for _, q := range qs {
		if n := len(groups); n > 0 && groups[n-1].level == q.Difficulty {
			groups[n-1].questions = append(groups[n-1].questions, q)
			continue
		}
		groups = append(groups, levelGroup{level: q.Difficulty, questions: []problemgen.Question{q}})
	}
	return groups
}

func (r Renderer) grid(qs []problemgen.Question, cols int, answers bool) string {
	cellWidth := r.lineWidth() / cols
	cell := lipgloss.NewStyle().Width(cellWidth).PaddingRight(2).PaddingBottom(1)

	var rows []string
	for start := 0; start < len(qs); start += cols {
		end := min(start+cols, len(qs))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, cell.Render(r.entry(i+1, qs[i], answers)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n") + "\n"
}

func (r Renderer) entry(n int, q problemgen.Question, answers bool) string {
	text := fmt.Sprintf("%d. %s", n, q.Display)
	if answers {
		text += "\n" + r.paint(theme.Answer, "   "+AnswerText(q))
	}
	return text
}
