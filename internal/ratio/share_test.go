package ratio

import (
	"testing"

	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShare_Display(t *testing.T) {
	tests := []struct {
		name    string
		p       shareParams
		display string
		answer  string
	}{
		{
			name:    "person A",
			p:       shareParams{names: []string{"Alice", "Ben"}, parts: []int{1, 2}, total: 90, questionType: QuestionPersonA},
			display: "Alice and Ben share £90 in the ratio 1:2. What is Alice's share?",
			answer:  "Alice: £30",
		},
		{
			name:    "person B",
			p:       shareParams{names: []string{"Mia", "Noah"}, parts: []int{3, 4}, total: 140, questionType: QuestionPersonB},
			display: "Mia and Noah share £140 in the ratio 3:4. What is Noah's share?",
			answer:  "Noah: £80",
		},
		{
			name:    "both with pence",
			p:       shareParams{names: []string{"Kate", "Liam"}, parts: []int{3, 5}, total: 84, questionType: QuestionBoth},
			display: "Kate and Liam share £84 in the ratio 3:5. Find both shares.",
			answer:  "Kate: £31.50, Liam: £52.50",
		},
		{
			name:    "three people",
			p:       shareParams{names: []string{"Alice", "Ben", "Charlie"}, parts: []int{1, 2, 3}, total: 120, questionType: QuestionBoth},
			display: "Alice, Ben and Charlie share £120 in the ratio 1:2:3. Find all shares.",
			answer:  "Alice: £20, Ben: £40, Charlie: £60",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := buildShare(tt.p, false, problemgen.Level1)
			assert.Equal(t, tt.display, q.Display)
			assert.Equal(t, tt.answer, q.Answer)
			final, ok := q.FinalStep()
			require.True(t, ok)
			assert.Equal(t, tt.answer, final.Answer)
		})
	}
}

func TestBuildShare_TraceMethods(t *testing.T) {
	p := shareParams{names: []string{"Alice", "Ben"}, parts: []int{1, 2}, total: 90, questionType: QuestionPersonA}

	bar := buildShare(p, false, problemgen.Level1)
	kinds := stepKinds(bar)
	assert.Equal(t, []problemgen.StepKind{
		problemgen.StepBarModelEmpty, problemgen.StepTotalParts, problemgen.StepPartValue,
		problemgen.StepBarModelFilled, problemgen.StepFinal,
	}, kinds)
	filled := bar.Working[3].Bars
	assert.Equal(t, 2, filled[1].Boxes)
	assert.Equal(t, 30.0, filled[1].BoxValue)
	assert.Equal(t, 60.0, filled[1].Amount)

	numerical := buildShare(p, true, problemgen.Level1)
	assert.Equal(t, []problemgen.StepKind{
		problemgen.StepShowRatio, problemgen.StepExplainParts, problemgen.StepRatioSum,
		problemgen.StepPartValue, problemgen.StepCalculate, problemgen.StepVerifyTotal, problemgen.StepFinal,
	}, stepKinds(numerical))
	assert.Equal(t, "Value of 1 part: £90 ÷ 3 = £30", numerical.Working[3].Text)
	assert.Equal(t, []string{"Alice gets 1 part", "Ben gets 2 parts"}, numerical.Working[1].Lines)
}

func stepKinds(q problemgen.Question) []problemgen.StepKind {
	kinds := make([]problemgen.StepKind, len(q.Working))
	for i, s := range q.Working {
		kinds[i] = s.Kind
	}
	return kinds
}

func TestShare_Properties(t *testing.T) {
	g := NewShare()
	for _, level := range problemgen.AllDifficulties() {
		for seed := range uint64(seeds) {
			in := input(level, QuestionMixed, OptThreePart)
			q := g.Generate(problemgen.NewRand(seed+1), in)
			requireValid(t, g, q, in)

			total := q.Values["total"].(float64)
			assert.GreaterOrEqual(t, total, float64(shareMinTotal))
			assert.LessOrEqual(t, total, float64(shareMaxTotal))
			if level != problemgen.Level3 {
				assert.True(t, total == float64(int(total)), "only level3 uses half units, got %v", total)
			}
			names := q.Values["names"].([]string)
			assert.Len(t, names, len(q.Values["ratioParts"].([]int)))
			assert.Contains(t, []string{QuestionPersonA, QuestionPersonB, QuestionBoth}, q.Values["questionType"])
		}
	}
}

func TestShare_DropdownRespected(t *testing.T) {
	g := NewShare()
	for seed := range uint64(20) {
		q := g.Generate(problemgen.NewRand(seed+1), input(problemgen.Level2, QuestionBoth))
		assert.Equal(t, QuestionBoth, q.Values["questionType"])
	}
}

func TestShare_FallbackValid(t *testing.T) {
	g := NewShare()
	for _, level := range problemgen.AllDifficulties() {
		in := input(level, "")
		q := g.Fallback(in)
		requireValid(t, g, q, in)
		assert.Equal(t, "Alice: £30", q.Answer)
	}
}

func TestMixed_Properties(t *testing.T) {
	g := NewMixed()
	kinds := map[string]int{}
	for _, level := range problemgen.AllDifficulties() {
		for seed := range uint64(seeds) {
			in := input(level, "")
			q := g.Generate(problemgen.NewRand(seed+1), in)
			requireValid(t, g, q, in)
			kinds[q.Values["mixedType"].(string)]++
			assert.Len(t, q.Values["ratioParts"].([]int), 2)
		}
	}
	assert.Len(t, kinds, 3)
}
