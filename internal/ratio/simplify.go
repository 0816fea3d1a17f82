package ratio

import (
	"strconv"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// simplifyAttempts caps the search for a ratio meeting a tier's window.
const simplifyAttempts = problemgen.MaxAttempts

type simplifyTier struct {
	lo, hi           int   // range of each simplified part
	factors          []int // candidate common factors
	minPart, maxPart int   // window for each original part
	alwaysThree      bool
}

var simplifyTiers = map[problemgen.Difficulty]simplifyTier{
	problemgen.Level1: {lo: 1, hi: 5, factors: []int{2, 3, 4, 5}, minPart: 4, maxPart: 20},
	problemgen.Level2: {lo: 1, hi: 8, factors: []int{6, 8, 9, 10, 12, 15, 18}, minPart: 12, maxPart: 60},
	problemgen.Level3: {lo: 1, hi: 8, factors: []int{6, 8, 9, 10, 12, 15, 18}, minPart: 12, maxPart: 60, alwaysThree: true},
}

// Simplify generates "write this ratio in its simplest form" questions,
// either numeric (6:9) or algebraic (6x:9y) depending on the dropdown.
type Simplify struct{}

// NewSimplify returns the ratio simplification generator.
func NewSimplify() *Simplify { return &Simplify{} }

func (s *Simplify) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	if in.Config.Choice(TypeNumeric) == TypeAlgebraic {
		return generateAlgebraic(r, in)
	}

	tier := simplifyTiers[in.Level]
	type candidate struct {
		simplified []int
		hcf        int
	}
	c, ok := problemgen.Sample(simplifyAttempts, func() (candidate, bool) {
		n := 2
		if tier.alwaysThree || (in.Config.Flag(OptThreePart) && problemgen.Chance(r, threePartChance)) {
			n = 3
		}
		simplified := randomParts(r, n, tier.lo, tier.hi)
		if !usable(simplified) {
			return candidate{}, false
		}
		hcf := problemgen.Pick(r, tier.factors)
		for _, p := range numfmt.Scale(simplified, hcf) {
			if p < tier.minPart || p > tier.maxPart {
				return candidate{}, false
			}
		}
		if !reducesTo(numfmt.Scale(simplified, hcf), hcf, simplified) {
			return candidate{}, false
		}
		return candidate{simplified: simplified, hcf: hcf}, true
	})
	if !ok {
		return problemgen.WithFallback(s.Fallback(in), in.Level)
	}
	return numericSimplify(c.simplified, c.hcf, in.Level)
}

func (s *Simplify) Fallback(in problemgen.GenerateInput) problemgen.Question {
	if in.Config.Choice(TypeNumeric) == TypeAlgebraic {
		return algebraicFallback(in.Level)
	}
	return numericSimplify([]int{2, 3}, 3, in.Level)
}

func (s *Simplify) Key(q problemgen.Question) string { return displayKey(q) }

func (s *Simplify) Validators() []problemgen.Validator {
	return []problemgen.Validator{&CoprimeValidator{}, &ReductionValidator{}}
}

// reducesTo reports whether dividing original by hcf gives simplified, and
// simplified is fully reduced.
func reducesTo(original []int, hcf int, simplified []int) bool {
	for i, p := range original {
		if p%hcf != 0 || p/hcf != simplified[i] {
			return false
		}
	}
	return numfmt.Coprime(simplified)
}

func numericSimplify(simplified []int, hcf int, level problemgen.Difficulty) problemgen.Question {
	original := numfmt.Scale(simplified, hcf)
	answer := numfmt.Ratio(simplified)
	return problemgen.Question{
		Display: numfmt.Ratio(original),
		Answer:  answer,
		Working: reductionSteps(original, simplified),
		Values: map[string]any{
			"ratioType":       TypeNumeric,
			"originalParts":   original,
			"simplifiedParts": simplified,
			"hcf":             hcf,
		},
		Difficulty: level,
	}
}

// reductionSteps divides by the smallest common prime until the parts are
// coprime, recording every intermediate ratio.
func reductionSteps(original, simplified []int) []problemgen.WorkingStep {
	steps := []problemgen.WorkingStep{{
		Kind:  problemgen.StepOriginal,
		Text:  "Original ratio: " + numfmt.Ratio(original),
		Ratio: partStrings(original),
	}}
	current := original
	for numfmt.HCF(current) > 1 {
		p := numfmt.SmallestCommonPrime(current)
		if p == 0 {
			// Common factor above 47: divide by the whole HCF in one step.
			p = numfmt.HCF(current)
		}
		current = numfmt.Divide(current, p)
		steps = append(steps, problemgen.WorkingStep{
			Kind:      problemgen.StepDivide,
			Text:      "÷ " + strconv.Itoa(p) + " → " + numfmt.Ratio(current),
			Ratio:     partStrings(current),
			DividedBy: strconv.Itoa(p),
		})
	}
	answer := numfmt.Ratio(simplified)
	return append(steps, problemgen.WorkingStep{
		Kind:   problemgen.StepFinal,
		Text:   "Simplified ratio: " + answer,
		Ratio:  partStrings(simplified),
		Answer: answer,
	})
}

func partStrings(parts []int) []string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = strconv.Itoa(p)
	}
	return s
}
