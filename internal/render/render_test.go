package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

func circleQuestion(level problemgen.Difficulty) problemgen.Question {
	return problemgen.Question{
		Display: "Find C, d = 10",
		Answer:  "31.4",
		Working: []problemgen.WorkingStep{
			problemgen.Step(problemgen.StepFormula, "Circumference = πd"),
			problemgen.Final("31.4", "cm"),
		},
		Difficulty: level,
	}
}

func TestAnswerText(t *testing.T) {
	assert.Equal(t, "31.4 cm", AnswerText(circleQuestion(problemgen.Level1)))
	assert.Equal(t, "2:3", AnswerText(problemgen.Question{Answer: "2:3"}))
}

func TestQuestion_Plain(t *testing.T) {
	out := Plain(80).Question(circleQuestion(problemgen.Level1), true, true)

	assert.True(t, strings.HasPrefix(out, "Find C, d = 10\n"))
	assert.Contains(t, out, "Circumference = πd")
	assert.Contains(t, out, "Answer: 31.4 cm")
	assert.NotContains(t, out, "\x1b[")
}

func TestQuestion_HidesAnswer(t *testing.T) {
	out := Plain(80).Question(circleQuestion(problemgen.Level1), false, false)
	assert.Equal(t, "Find C, d = 10\n", out)
}

func TestWorking_LinesIndented(t *testing.T) {
	steps := []problemgen.WorkingStep{
		{Kind: problemgen.StepExpand, Text: "Multiply out", Lines: []string{"3 × x = 3x", "3 × 4 = 12"}},
		problemgen.Final("3x + 12", ""),
	}
	out := Plain(80).Working(steps)
	assert.Equal(t, "Multiply out\n  3 × x = 3x\n  3 × 4 = 12\nAnswer: 3x + 12\n", out)
}

func TestBars_Plain(t *testing.T) {
	out := Plain(80).Bars([]problemgen.Bar{
		{Label: "Alice", Boxes: 2, BoxValue: 8, Amount: 16},
		{Label: "Ben", Boxes: 3},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  Alice [ £8 ][ £8 ] = £16", lines[0])
	assert.Equal(t, "  Ben   [   ][   ][   ]", lines[1])
}

func TestWorksheet_GroupsLevels(t *testing.T) {
	qs := []problemgen.Question{
		circleQuestion(problemgen.Level1),
		circleQuestion(problemgen.Level1),
		circleQuestion(problemgen.Level2),
	}
	out := Plain(80).Worksheet(Sheet{Title: "Circles", Questions: qs, Columns: 1, Answers: true})

	assert.True(t, strings.HasPrefix(out, "Circles\n"))
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "Level 2")
	assert.Equal(t, 2, strings.Count(out, "1. Find C"))
	assert.Equal(t, 1, strings.Count(out, "2. Find C"))
	assert.Equal(t, 3, strings.Count(out, "31.4 cm"))
}

func TestWorksheet_SingleLevelNoHeading(t *testing.T) {
	qs := []problemgen.Question{circleQuestion(problemgen.Level3), circleQuestion(problemgen.Level3)}
	out := Plain(80).Worksheet(Sheet{Questions: qs, Columns: 2})

	assert.NotContains(t, out, "Level 3")
	assert.NotContains(t, out, "31.4")
	// Two columns place both questions on the first line.
	first := strings.Split(out, "\n")[0]
	assert.Contains(t, first, "1. Find C")
	assert.Contains(t, first, "2. Find C")
}

func TestGroupByLevel(t *testing.T) {
	qs := []problemgen.Question{
		{Difficulty: problemgen.Level1},
		{Difficulty: problemgen.Level2},
		{Difficulty: problemgen.Level2},
		{Difficulty: problemgen.Level3},
	}
	groups := groupByLevel(qs)
	require.Len(t, groups, 3)
	assert.Len(t, groups[1].questions, 2)
}

func TestStyled_UsesScheme(t *testing.T) {
	out := Styled(theme.SchemeByName("blue"), 60).Question(circleQuestion(problemgen.Level1), true, false)
	assert.Contains(t, out, "Find C, d = 10")
	assert.Contains(t, out, "Answer: 31.4 cm")
}
