package ratio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// shareAttempts caps the search for a sharing question inside the windows.
const shareAttempts = problemgen.MaxAttempts

// Total amount window for sharing questions.
const (
	shareMinTotal = 20
	shareMaxTotal = 500
)

// halfUnitChance is the level3 probability of a whole-pound part value.
const halfUnitChance = 0.8

var shareTwoPartLevel1 = [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {3, 4}}

// Share generates "share £T in the ratio a:b" questions.
type Share struct{}

// NewShare returns the sharing generator.
func NewShare() *Share { return &Share{} }

type shareParams struct {
	names        []string
	parts        []int
	total        float64
	questionType string
}

func (s *Share) draw(r problemgen.Rand, in problemgen.GenerateInput) (shareParams, bool) {
	n := 2
	if in.Config.Flag(OptThreePart) && problemgen.Chance(r, threePartChance) {
		n = 3
	}
	names := pickNames(r, n)

	var parts []int
	var total float64
	switch in.Level {
	case problemgen.Level1:
		if n == 3 {
			parts = randomParts(r, 3, 1, 3)
		} else {
			parts = problemgen.Pick(r, shareTwoPartLevel1)
		}
		total = float64(numfmt.Sum(parts) * problemgen.IntBetween(r, 10, 20))
	case problemgen.Level2:
		if n == 3 {
			parts = randomParts(r, 3, 1, 5)
		} else {
			parts = randomParts(r, 2, 1, 6)
		}
		sum := numfmt.Sum(parts)
		if sum < 5 || sum > 15 {
			return shareParams{}, false
		}
		total = float64(sum * problemgen.IntBetween(r, 8, 15))
	default:
		if n == 3 {
			parts = randomParts(r, 3, 2, 8)
		} else {
			parts = randomParts(r, 2, 3, 9)
		}
		sum := numfmt.Sum(parts)
		if sum < 8 || sum > 25 {
			return shareParams{}, false
		}
		multiplier := float64(problemgen.IntBetween(r, 10, 30))
		if !problemgen.Chance(r, halfUnitChance) {
			multiplier += 0.5
		}
		total = float64(sum) * multiplier
	}

	if !usable(parts) {
		return shareParams{}, false
	}
	if total < shareMinTotal || total > shareMaxTotal {
		return shareParams{}, false
	}

	qt := resolveType(r, in.Config.Choice(QuestionMixed), []string{QuestionPersonA, QuestionPersonB, QuestionBoth})
	return shareParams{names: names, parts: parts, total: total, questionType: qt}, true
}

func (s *Share) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	p, ok := problemgen.Sample(shareAttempts, func() (shareParams, bool) { return s.draw(r, in) })
	if !ok {
		return problemgen.WithFallback(s.Fallback(in), in.Level)
	}
	return buildShare(p, in.Config.Flag(OptNumerical), in.Level)
}

func (s *Share) Fallback(in problemgen.GenerateInput) problemgen.Question {
	p := shareParams{names: fallbackNames, parts: []int{1, 2}, total: 90, questionType: QuestionPersonA}
	return buildShare(p, in.Config.Flag(OptNumerical), in.Level)
}

func (s *Share) Key(q problemgen.Question) string { return displayKey(q) }

func (s *Share) Validators() []problemgen.Validator {
	return []problemgen.Validator{&SharesValidator{}}
}

func listNames(names []string) string {
	if len(names) == 2 {
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func buildShare(p shareParams, numerical bool, level problemgen.Difficulty) problemgen.Question {
	sum := numfmt.Sum(p.parts)
	partValue := p.total / float64(sum)
	shares := shareAmounts(p.parts, partValue)
	ratio := numfmt.Ratio(p.parts)

	display := fmt.Sprintf("%s share %s in the ratio %s.", listNames(p.names), numfmt.Currency(p.total), ratio)
	var answer string
	switch p.questionType {
	case QuestionPersonA:
		display += fmt.Sprintf(" What is %s's share?", p.names[0])
		answer = p.names[0] + ": " + numfmt.Currency(shares[0])
	case QuestionPersonB:
		display += fmt.Sprintf(" What is %s's share?", p.names[1])
		answer = p.names[1] + ": " + numfmt.Currency(shares[1])
	default:
		if len(p.names) == 2 {
			display += " Find both shares."
		} else {
			display += " Find all shares."
		}
		answer = allShares(p.names, shares)
	}

	var working []problemgen.WorkingStep
	if numerical {
		working = shareNumericalSteps(p, sum, partValue, shares)
	} else {
		working = shareBarSteps(p, sum, partValue, shares)
	}
	working = append(working, problemgen.Final(answer, ""))

	return problemgen.Question{
		Display: display,
		Answer:  answer,
		Working: working,
		Values: map[string]any{
			"names":        p.names,
			"ratioParts":   p.parts,
			"total":        p.total,
			"ratioSum":     sum,
			"partValue":    partValue,
			"shares":       shares,
			"questionType": p.questionType,
		},
		Difficulty: level,
	}
}

func allShares(names []string, shares []float64) string {
	s := make([]string, len(names))
	for i, name := range names {
		s[i] = name + ": " + numfmt.Currency(shares[i])
	}
	return strings.Join(s, ", ")
}

func sumExpression(parts []int) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, " + ")
}

func currencySum(amounts []float64) string {
	s := make([]string, len(amounts))
	for i, a := range amounts {
		s[i] = numfmt.Currency(a)
	}
	return strings.Join(s, " + ")
}

func shareNumericalSteps(p shareParams, sum int, partValue float64, shares []float64) []problemgen.WorkingStep {
	ratioLine := make([]string, len(p.names))
	explain := make([]string, len(p.names))
	calc := make([]string, len(p.names))
	for i, name := range p.names {
		ratioLine[i] = fmt.Sprintf("%s = %d", name, p.parts[i])
		explain[i] = fmt.Sprintf("%s gets %s", name, numfmt.Parts(p.parts[i]))
		calc[i] = fmt.Sprintf("%s: %d × %s = %s", name, p.parts[i], numfmt.Currency(partValue), numfmt.Currency(shares[i]))
	}
	return []problemgen.WorkingStep{
		problemgen.Step(problemgen.StepShowRatio, "Ratio: %s", strings.Join(ratioLine, " : ")),
		{Kind: problemgen.StepExplainParts, Text: "Understanding the parts:", Lines: explain},
		problemgen.Step(problemgen.StepRatioSum, "Total number of parts: %s = %d parts", sumExpression(p.parts), sum),
		problemgen.Step(problemgen.StepPartValue, "Value of 1 part: %s ÷ %d = %s",
			numfmt.Currency(p.total), sum, numfmt.Currency(partValue)),
		{Kind: problemgen.StepCalculate, Text: "Calculate each share:", Lines: calc},
		problemgen.Step(problemgen.StepVerifyTotal, "Check: %s = %s ✓", currencySum(shares), numfmt.Currency(p.total)),
	}
}

func shareBarSteps(p shareParams, sum int, partValue float64, shares []float64) []problemgen.WorkingStep {
	return []problemgen.WorkingStep{
		{Kind: problemgen.StepBarModelEmpty, Text: "Bar model:", Bars: emptyBars(p.names, p.parts)},
		problemgen.Step(problemgen.StepTotalParts, "Total parts: %d parts", sum),
		problemgen.Step(problemgen.StepPartValue, "Value of 1 part: %s ÷ %d = %s",
			numfmt.Currency(p.total), sum, numfmt.Currency(partValue)),
		{Kind: problemgen.StepBarModelFilled, Text: "Calculate shares:", Bars: filledBars(p.names, p.parts, partValue, shares)},
	}
}

func emptyBars(names []string, parts []int) []problemgen.Bar {
	bars := make([]problemgen.Bar, len(names))
	for i, name := range names {
		bars[i] = problemgen.Bar{Label: name, Boxes: parts[i]}
	}
	return bars
}

func filledBars(names []string, parts []int, partValue float64, shares []float64) []problemgen.Bar {
	bars := make([]problemgen.Bar, len(names))
	for i, name := range names {
		bars[i] = problemgen.Bar{Label: name, Boxes: parts[i], BoxValue: partValue, Amount: shares[i]}
	}
	return bars
}
