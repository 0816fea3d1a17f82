package ratio

import (
	"fmt"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// knownAttempts caps the search for a known-amount question.
const knownAttempts = problemgen.MaxAttempts

// Windows for the known share and the total.
const (
	knownMinAmount = 10
	knownMaxAmount = 400
	knownMinTotal  = 20
	knownMaxTotal  = 600
	knownLevel1Cap = 50
)

var knownLevel1Ratios = [][]int{{1, 2}, {1, 3}, {2, 3}, {1, 4}, {3, 4}, {1, 5}, {2, 5}, {3, 5}, {4, 5}}

// Known generates questions where one person's share is given and either
// the total or the other share is asked for.
type Known struct{}

// NewKnown returns the known-amount generator.
func NewKnown() *Known { return &Known{} }

type knownParams struct {
	names        []string
	parts        []int
	known        int // index of the person whose share is given
	partValue    int
	questionType string
}

func coin(r problemgen.Rand) int {
	if problemgen.Chance(r, 0.5) {
		return 0
	}
	return 1
}

func (k *Known) draw(r problemgen.Rand, in problemgen.GenerateInput) (knownParams, bool) {
	names := pickNames(r, 2)
	var parts []int
	var known, partValue int

	switch in.Level {
	case problemgen.Level1:
		parts = problemgen.Pick(r, knownLevel1Ratios)
		known = coin(r)
		partValue = problemgen.IntBetween(r, 2, 10)
	case problemgen.Level2:
		parts = randomParts(r, 2, 1, 7)
		if !numfmt.Coprime(parts) || (parts[0] == 1 && parts[1] == 1) {
			return knownParams{}, false
		}
		switch {
		case parts[0] == 1:
			known = 1
		case parts[1] == 1:
			known = 0
		default:
			known = coin(r)
		}
		partValue = problemgen.IntBetween(r, 5, 25)
	default:
		parts = randomParts(r, 2, 5, 15)
		if !numfmt.Coprime(parts) || abs(parts[0]-parts[1]) < 2 {
			return knownParams{}, false
		}
		known = coin(r)
		partValue = problemgen.IntBetween(r, 3, 20)
	}

	if numfmt.AllEqual(parts) {
		return knownParams{}, false
	}
	knownAmount := parts[known] * partValue
	total := numfmt.Sum(parts) * partValue
	if in.Level == problemgen.Level1 && (knownAmount >= knownLevel1Cap || total >= knownLevel1Cap) {
		return knownParams{}, false
	}
	if knownAmount < knownMinAmount || knownAmount > knownMaxAmount {
		return knownParams{}, false
	}
	if total < knownMinTotal || total > knownMaxTotal {
		return knownParams{}, false
	}

	qt := resolveType(r, in.Config.Choice(QuestionMixed), []string{QuestionTotal, QuestionOther})
	return knownParams{names: names, parts: parts, known: known, partValue: partValue, questionType: qt}, true
}

func (k *Known) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	p, ok := problemgen.Sample(knownAttempts, func() (knownParams, bool) { return k.draw(r, in) })
	if !ok {
		return problemgen.WithFallback(k.Fallback(in), in.Level)
	}
	return buildKnown(p, useBarModel(in), in.Level)
}

func (k *Known) Fallback(in problemgen.GenerateInput) problemgen.Question {
	p := knownParams{names: fallbackNames, parts: []int{2, 3}, known: 0, partValue: 20, questionType: QuestionTotal}
	return buildKnown(p, useBarModel(in), in.Level)
}

func (k *Known) Key(q problemgen.Question) string { return displayKey(q) }

func (k *Known) Validators() []problemgen.Validator {
	return []problemgen.Validator{&SharesValidator{}}
}

// useBarModel reports whether the bar-model trace applies. Level 3 always
// uses the numerical method.
func useBarModel(in problemgen.GenerateInput) bool {
	return in.Level != problemgen.Level3 && !in.Config.Flag(OptNumerical)
}

func buildKnown(p knownParams, bar bool, level problemgen.Difficulty) problemgen.Question {
	pv := float64(p.partValue)
	shares := shareAmounts(p.parts, pv)
	total := shares[0] + shares[1]
	knownAmount := shares[p.known]
	o := other(p.known)

	display := fmt.Sprintf("%s and %s share money in the ratio %s. %s receives %s. ",
		p.names[0], p.names[1], numfmt.Ratio(p.parts), p.names[p.known], numfmt.Currency(knownAmount))
	var answer string
	if p.questionType == QuestionTotal {
		display += "What is the total amount shared?"
		answer = "Total: " + numfmt.Currency(total)
	} else {
		display += fmt.Sprintf("How much does %s receive?", p.names[o])
		answer = p.names[o] + ": " + numfmt.Currency(shares[o])
	}

	identify := problemgen.Step(problemgen.StepIdentifyParts, "%s has %s", p.names[p.known], numfmt.Parts(p.parts[p.known]))
	partValue := problemgen.Step(problemgen.StepPartValue, "Value of 1 part: %s ÷ %d = %s",
		numfmt.Currency(knownAmount), p.parts[p.known], numfmt.Currency(pv))

	var working []problemgen.WorkingStep
	if bar {
		given := emptyBars(p.names, p.parts)
		given[p.known].Highlight = true
		given[p.known].Amount = knownAmount
		working = []problemgen.WorkingStep{
			{Kind: problemgen.StepBarModelKnown, Text: "Bar model, given information:", Bars: given},
			identify,
			partValue,
			{Kind: problemgen.StepBarModelFilled, Text: "Fill in every box:", Bars: filledBars(p.names, p.parts, pv, shares)},
		}
		if p.questionType == QuestionTotal {
			working = append(working, problemgen.Step(problemgen.StepCalculate,
				"Add all parts to find total: %s = %s", currencySum(shares), numfmt.Currency(total)))
		} else {
			working = append(working, problemgen.Step(problemgen.StepReadFromBar,
				"Read %s's share from bar: %s", p.names[o], numfmt.Currency(shares[o])))
		}
	} else {
		working = []problemgen.WorkingStep{
			{
				Kind:  problemgen.StepShowGiven,
				Text:  "Given information:",
				Lines: []string{p.names[0] + " : " + p.names[1] + " = " + numfmt.Ratio(p.parts), p.names[p.known] + " receives " + numfmt.Currency(knownAmount)},
			},
			identify,
			partValue,
		}
		working = append(working, numericalRead(p.names, p.parts, pv, shares, p.questionType, o))
	}
	working = append(working, problemgen.Final(answer, ""))

	return problemgen.Question{
		Display: display,
		Answer:  answer,
		Working: working,
		Values: map[string]any{
			"names":        p.names,
			"ratioParts":   p.parts,
			"knownPerson":  p.known,
			"knownAmount":  knownAmount,
			"partValue":    pv,
			"shares":       shares,
			"total":        total,
			"questionType": p.questionType,
		},
		Difficulty: level,
	}
}

// numericalRead builds the calculation answering the question: the total,
// or person's share.
func numericalRead(names []string, parts []int, pv float64, shares []float64, questionType string, person int) problemgen.WorkingStep {
	if questionType == QuestionTotal {
		sum := numfmt.Sum(parts)
		return problemgen.WorkingStep{
			Kind: problemgen.StepCalculate,
			Text: "Calculate total amount:",
			Lines: []string{
				fmt.Sprintf("Total parts: %s = %d", sumExpression(parts), sum),
				fmt.Sprintf("Total: %d × %s = %s", sum, numfmt.Currency(pv), numfmt.Currency(shares[0]+shares[1])),
			},
		}
	}
	return problemgen.Step(problemgen.StepCalculate, "Calculate %s's share: %d × %s = %s",
		names[person], parts[person], numfmt.Currency(pv), numfmt.Currency(shares[person]))
}
