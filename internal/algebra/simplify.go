package algebra

import (
	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// Operators joining the two expansions.
const (
	OpPlus  = "+"
	OpMinus = numfmt.Minus
)

// Simplify generates "expand and simplify" questions: two expansions in the
// same letter joined by + or −, with like terms collected.
type Simplify struct{}

// NewSimplify returns the expand-and-simplify generator.
func NewSimplify() *Simplify { return &Simplify{} }

// firstLevel is the tier of the first expansion: level3 questions start
// with a level3 bracket, the others with a level1 bracket.
func firstLevel(level problemgen.Difficulty) problemgen.Difficulty {
	if level == problemgen.Level3 {
		return problemgen.Level3
	}
	return problemgen.Level1
}

// secondLevel is the tier of the second expansion.
func secondLevel(r problemgen.Rand, level problemgen.Difficulty) problemgen.Difficulty {
	if level == problemgen.Level1 {
		return problemgen.Level1
	}
	return lowerTier(r)
}

func lowerTier(r problemgen.Rand) problemgen.Difficulty {
	if problemgen.Chance(r, 0.5) {
		return problemgen.Level1
	}
	return problemgen.Level2
}

func (s *Simplify) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	v := problemgen.Pick(r, Variables)
	multiplier := in.Config.Choice(MultiplierNumerical)

	first := drawExpansion(r, firstLevel(in.Level), multiplier, v)
	second := drawExpansion(r, secondLevel(r, in.Level), multiplier, v)

	op := OpPlus
	if in.Level != problemgen.Level1 && problemgen.Chance(r, 0.5) {
		op = OpMinus
	}
	return simplifyQuestion(first, second, op, in.Level)
}

func (s *Simplify) Fallback(in problemgen.GenerateInput) problemgen.Question {
	return simplifyQuestion(
		NewExpansion(3, 1, 4, false, 0, "x"),
		NewExpansion(2, 1, 5, false, 0, "x"),
		OpPlus, in.Level)
}

func (s *Simplify) Key(q problemgen.Question) string { return q.Display }

func (s *Simplify) Validators() []problemgen.Validator {
	return []problemgen.Validator{&ExpansionValidator{}}
}

// Combine collects like terms of first op second, from the cubic term down
// to the constant.
func Combine(first, second Expansion, op string) string {
	sign := 1
	if op == OpMinus {
		sign = -1
	}
	v := first.Var
	return numfmt.Polynomial([]numfmt.PolyTerm{
		{Coeff: first.X3 + sign*second.X3, Body: numfmt.Power(v, 3)},
		{Coeff: first.X2 + sign*second.X2, Body: numfmt.Power(v, 2)},
		{Coeff: first.X1 + sign*second.X1, Body: v},
		{Coeff: first.Const + sign*second.Const},
	})
}

func simplifyQuestion(first, second Expansion, op string, level problemgen.Difficulty) problemgen.Question {
	display := first.Display() + " " + op + " " + second.Display()
	answer := Combine(first, second, op)
	return problemgen.Question{
		Display: display,
		Answer:  answer,
		Working: []problemgen.WorkingStep{
			first.step("Expand first bracket: " + first.Display()),
			second.step("Expand second bracket: " + second.Display()),
			problemgen.Step(problemgen.StepCombine, "Combine: (%s) %s (%s)", first.Answer(), op, second.Answer()),
			problemgen.Final(answer, ""),
		},
		Values: map[string]any{
			"first":    first,
			"second":   second,
			"operator": op,
			"var":      first.Var,
		},
		Difficulty: level,
	}
}
