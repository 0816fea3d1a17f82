package ratio

import (
	"fmt"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// differenceAttempts caps the search for a difference question.
const differenceAttempts = problemgen.MaxAttempts

// Windows for the difference between shares and the total.
const (
	diffMinAmount    = 5
	diffMaxAmount    = 400
	diffMinTotal     = 20
	diffMaxTotal     = 700
	diffLevel1Cap    = 50
	diffLevel1Totals = 100
)

var differenceLevel1Ratios = [][]int{{1, 2}, {1, 3}, {2, 3}, {1, 4}, {3, 4}, {2, 5}, {3, 5}}

// Difference generates questions where the gap between two shares is given.
type Difference struct{}

// NewDifference returns the difference generator.
func NewDifference() *Difference { return &Difference{} }

type differenceParams struct {
	names        []string
	parts        []int
	partValue    int
	questionType string
	wording      int // 1: "more than", 2: "less than", 3: "the difference is"
}

func (d *Difference) draw(r problemgen.Rand, in problemgen.GenerateInput) (differenceParams, bool) {
	names := pickNames(r, 2)
	var parts []int
	var partValue int

	switch in.Level {
	case problemgen.Level1:
		parts = problemgen.Pick(r, differenceLevel1Ratios)
		partValue = problemgen.IntBetween(r, 3, 12)
	case problemgen.Level2:
		parts = randomParts(r, 2, 1, 8)
		if !numfmt.Coprime(parts) || abs(parts[0]-parts[1]) < 1 {
			return differenceParams{}, false
		}
		partValue = problemgen.IntBetween(r, 5, 20)
	default:
		parts = randomParts(r, 2, 3, 12)
		if !numfmt.Coprime(parts) || abs(parts[0]-parts[1]) < 2 {
			return differenceParams{}, false
		}
		partValue = problemgen.IntBetween(r, 4, 25)
	}

	if numfmt.AllEqual(parts) {
		return differenceParams{}, false
	}
	difference := abs(parts[1]-parts[0]) * partValue
	total := numfmt.Sum(parts) * partValue
	if in.Level == problemgen.Level1 && (difference >= diffLevel1Cap || total >= diffLevel1Totals) {
		return differenceParams{}, false
	}
	if difference < diffMinAmount || difference > diffMaxAmount {
		return differenceParams{}, false
	}
	if total < diffMinTotal || total > diffMaxTotal {
		return differenceParams{}, false
	}

	qt := resolveType(r, in.Config.Choice(QuestionMixed), []string{QuestionTotal, QuestionPersonA, QuestionPersonB})
	wording := problemgen.IntBetween(r, 1, 3)
	return differenceParams{names: names, parts: parts, partValue: partValue, questionType: qt, wording: wording}, true
}

func (d *Difference) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	p, ok := problemgen.Sample(differenceAttempts, func() (differenceParams, bool) { return d.draw(r, in) })
	if !ok {
		return problemgen.WithFallback(d.Fallback(in), in.Level)
	}
	return buildDifference(p, useBarModel(in), in.Level)
}

func (d *Difference) Fallback(in problemgen.GenerateInput) problemgen.Question {
	p := differenceParams{names: fallbackNames, parts: []int{2, 3}, partValue: 20, questionType: QuestionTotal, wording: 3}
	return buildDifference(p, useBarModel(in), in.Level)
}

func (d *Difference) Key(q problemgen.Question) string { return displayKey(q) }

func (d *Difference) Validators() []problemgen.Validator {
	return []problemgen.Validator{&SharesValidator{}}
}

func comparison(p differenceParams, larger int, difference float64) string {
	smaller := other(larger)
	switch p.wording {
	case 1:
		return fmt.Sprintf("%s receives %s more than %s", p.names[larger], numfmt.Currency(difference), p.names[smaller])
	case 2:
		return fmt.Sprintf("%s receives %s less than %s", p.names[smaller], numfmt.Currency(difference), p.names[larger])
	default:
		return "The difference in amounts is " + numfmt.Currency(difference)
	}
}

func buildDifference(p differenceParams, bar bool, level problemgen.Difficulty) problemgen.Question {
	pv := float64(p.partValue)
	shares := shareAmounts(p.parts, pv)
	total := shares[0] + shares[1]
	gap := abs(p.parts[1] - p.parts[0])
	difference := float64(gap) * pv
	larger := 1
	if shares[0] > shares[1] {
		larger = 0
	}

	display := fmt.Sprintf("%s and %s share money in the ratio %s. %s. ",
		p.names[0], p.names[1], numfmt.Ratio(p.parts), comparison(p, larger, difference))
	var answer string
	person := 0
	switch p.questionType {
	case QuestionTotal:
		display += "What is the total amount shared?"
		answer = "Total: " + numfmt.Currency(total)
	case QuestionPersonB:
		person = 1
		fallthrough
	default:
		display += fmt.Sprintf("How much does %s receive?", p.names[person])
		answer = p.names[person] + ": " + numfmt.Currency(shares[person])
	}

	identify := problemgen.Step(problemgen.StepDifferenceGap, "The difference represents %s = %s",
		numfmt.Parts(gap), numfmt.Currency(difference))
	partValue := problemgen.Step(problemgen.StepPartValue, "Value of 1 part: %s ÷ %d = %s",
		numfmt.Currency(difference), gap, numfmt.Currency(pv))

	var working []problemgen.WorkingStep
	if bar {
		bars := emptyBars(p.names, p.parts)
		bars[larger].Highlight = true
		working = []problemgen.WorkingStep{
			{Kind: problemgen.StepBarModelDiff, Text: "Bar model, showing the difference: " + numfmt.Currency(difference), Bars: bars},
			identify,
			partValue,
			{Kind: problemgen.StepBarModelFilled, Text: "Fill in every box:", Bars: filledBars(p.names, p.parts, pv, shares)},
		}
		if p.questionType == QuestionTotal {
			working = append(working, problemgen.Step(problemgen.StepCalculate,
				"Add all parts to find total: %s = %s", currencySum(shares), numfmt.Currency(total)))
		} else {
			working = append(working, problemgen.Step(problemgen.StepReadFromBar,
				"Read %s's share from bar: %s", p.names[person], numfmt.Currency(shares[person])))
		}
	} else {
		working = []problemgen.WorkingStep{
			{
				Kind:  problemgen.StepShowGiven,
				Text:  "Given information:",
				Lines: []string{p.names[0] + " : " + p.names[1] + " = " + numfmt.Ratio(p.parts), comparison(p, larger, difference)},
			},
			identify,
			partValue,
			numericalRead(p.names, p.parts, pv, shares, p.questionType, person),
		}
	}
	working = append(working, problemgen.Final(answer, ""))

	return problemgen.Question{
		Display: display,
		Answer:  answer,
		Working: working,
		Values: map[string]any{
			"names":        p.names,
			"ratioParts":   p.parts,
			"difference":   difference,
			"largerPerson": larger,
			"partValue":    pv,
			"shares":       shares,
			"total":        total,
			"questionType": p.questionType,
			"wordingStyle": p.wording,
		},
		Difficulty: level,
	}
}
