package ratio

import (
	"strings"
	"testing"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify_ScenarioLevel1(t *testing.T) {
	// Draws: parts 2 and 3, then factor index 1 (3).
	r := &problemgen.ScriptedRand{Ints: []int{1, 2, 1}}
	q := NewSimplify().Generate(r, input(problemgen.Level1, ""))

	assert.Equal(t, "6:9", q.Display)
	assert.Equal(t, "2:3", q.Answer)
	assert.False(t, q.Fallback)
	require.Len(t, q.Working, 3)
	assert.Equal(t, problemgen.StepOriginal, q.Working[0].Kind)
	assert.Equal(t, []string{"6", "9"}, q.Working[0].Ratio)
	assert.Equal(t, problemgen.StepDivide, q.Working[1].Kind)
	assert.Equal(t, "3", q.Working[1].DividedBy)
	assert.Equal(t, problemgen.StepFinal, q.Working[2].Kind)
	assert.Equal(t, "2:3", q.Working[2].Answer)
	assert.Equal(t, []int{6, 9}, q.Values["originalParts"])
	assert.Equal(t, []int{2, 3}, q.Values["simplifiedParts"])
	assert.Equal(t, 3, q.Values["hcf"])
}

func TestReductionSteps_SmallestPrimeFirst(t *testing.T) {
	steps := reductionSteps([]int{36, 60}, []int{3, 5})
	var divisors []string
	for _, s := range steps {
		if s.Kind == problemgen.StepDivide {
			divisors = append(divisors, s.DividedBy)
		}
	}
	assert.Equal(t, []string{"2", "2", "3"}, divisors)
	assert.Equal(t, "3:5", steps[len(steps)-1].Answer)
}

func TestSimplify_Properties(t *testing.T) {
	g := NewSimplify()
	for _, level := range problemgen.AllDifficulties() {
		tier := simplifyTiers[level]
		for seed := range uint64(seeds) {
			in := input(level, "")
			q := g.Generate(problemgen.NewRand(seed+1), in)
			requireValid(t, g, q, in)

			simplified := q.Values["simplifiedParts"].([]int)
			original := q.Values["originalParts"].([]int)
			hcf := q.Values["hcf"].(int)

			assert.Equal(t, 1, numfmt.HCF(simplified), "level %s seed %d", level, seed)
			assert.Equal(t, simplified, numfmt.Divide(original, hcf))
			final, _ := q.FinalStep()
			assert.Equal(t, q.Answer, strings.Join(final.Ratio, ":"))
			if q.Fallback {
				continue
			}
			for _, p := range original {
				assert.GreaterOrEqual(t, p, tier.minPart)
				assert.LessOrEqual(t, p, tier.maxPart)
			}
			if level == problemgen.Level3 {
				assert.Len(t, simplified, 3)
			} else {
				assert.Len(t, simplified, 2)
			}
		}
	}
}

func TestSimplify_ThreePartOption(t *testing.T) {
	g := NewSimplify()
	threes := 0
	for seed := range uint64(seeds) {
		q := g.Generate(problemgen.NewRand(seed+1), input(problemgen.Level2, "", OptThreePart))
		if len(q.Values["simplifiedParts"].([]int)) == 3 {
			threes++
		}
	}
	assert.Positive(t, threes)
	assert.Less(t, threes, seeds)
}

func TestSimplify_FallbackValid(t *testing.T) {
	g := NewSimplify()
	for _, level := range problemgen.AllDifficulties() {
		in := input(level, "")
		q := g.Fallback(in)
		requireValid(t, g, q, in)
		assert.Equal(t, "6:9", q.Display)
		assert.Equal(t, "2:3", q.Answer)
		assert.Equal(t, 3, numfmt.GCD(6, 9))
	}
}

func TestAlgebraicSimplify(t *testing.T) {
	tests := []struct {
		name     string
		t1, t2   Monomial
		display  string
		answer   string
		divisors []string
	}{
		{
			name:     "numeric factor",
			t1:       term(6, map[string]int{"x": 1}),
			t2:       term(9, map[string]int{"y": 1}),
			display:  "6x:9y",
			answer:   "2x:3y",
			divisors: []string{"3"},
		},
		{
			name:     "power",
			t1:       term(4, map[string]int{"x": 2}),
			t2:       term(6, map[string]int{"x": 1}),
			display:  "4x²:6x",
			answer:   "2x:3",
			divisors: []string{"2", "x"},
		},
		{
			name:     "two variables",
			t1:       term(12, map[string]int{"x": 2, "y": 3}),
			t2:       term(24, map[string]int{"x": 3, "y": 1}),
			display:  "12x²y³:24x³y",
			answer:   "y²:2x",
			divisors: []string{"12", "x²", "y"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := algebraicSimplify(tt.t1, tt.t2, problemgen.Level2)
			assert.Equal(t, tt.display, q.Display)
			assert.Equal(t, tt.answer, q.Answer)
			var divisors []string
			for _, s := range q.Working {
				if s.Kind == problemgen.StepDivide {
					divisors = append(divisors, s.DividedBy)
				}
			}
			assert.Equal(t, tt.divisors, divisors)
			final, ok := q.FinalStep()
			require.True(t, ok)
			assert.Equal(t, tt.answer, final.Answer)
		})
	}
}

func TestSimplify_AlgebraicProperties(t *testing.T) {
	g := NewSimplify()
	for _, level := range problemgen.AllDifficulties() {
		for seed := range uint64(seeds) {
			in := input(level, TypeAlgebraic)
			q := g.Generate(problemgen.NewRand(seed+1), in)
			requireValid(t, g, q, in)
			assert.Equal(t, TypeAlgebraic, q.Values["ratioType"])
			assert.NotEqual(t, q.Display, q.Answer, "level %s seed %d", level, seed)
		}
	}
}
