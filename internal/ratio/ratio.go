// Package ratio generates ratio questions: simplifying, sharing an amount,
// working from a known share, and working from a difference between shares.
package ratio

import (
	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// Option keys shared by the ratio tools.
const (
	OptThreePart = "threePart"
	OptNumerical = "numerical"
)

// Dropdown values.
const (
	TypeNumeric   = "numeric"
	TypeAlgebraic = "algebraic"

	QuestionMixed   = "mixed"
	QuestionPersonA = "personA"
	QuestionPersonB = "personB"
	QuestionBoth    = "both"
	QuestionTotal   = "total"
	QuestionOther   = "other"
)

// threePartChance is the probability of a three-part ratio when the
// threePart option is on.
const threePartChance = 0.35

// Names are drawn without replacement for the people sharing.
var Names = []string{
	"Alice", "Ben", "Charlie", "Diana", "Emma", "Finn", "Grace", "Harry",
	"Isla", "Jack", "Kate", "Liam", "Mia", "Noah", "Olivia", "Peter",
}

// fallbackNames are used by every hardcoded fallback question.
var fallbackNames = []string{"Alice", "Ben"}

func pickNames(r problemgen.Rand, n int) []string {
	return problemgen.PickN(r, Names, n)
}

func randomParts(r problemgen.Rand, n, lo, hi int) []int {
	parts := make([]int, n)
	for i := range parts {
		parts[i] = problemgen.IntBetween(r, lo, hi)
	}
	return parts
}

// usable rejects the trivial all-equal ratio and ratios not in simplest form.
func usable(parts []int) bool {
	return !numfmt.AllEqual(parts) && numfmt.Coprime(parts)
}

func shareAmounts(parts []int, partValue float64) []float64 {
	shares := make([]float64, len(parts))
	for i, p := range parts {
		shares[i] = float64(p) * partValue
	}
	return shares
}

func other(person int) int {
	if person == 0 {
		return 1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// resolveType replaces "mixed" with one of choices.
func resolveType(r problemgen.Rand, selected string, choices []string) string {
	if selected == QuestionMixed || selected == "" {
		return problemgen.Pick(r, choices)
	}
	return selected
}

func displayKey(q problemgen.Question) string { return q.Display }
