// Package algebra generates single-bracket expansion questions and
// expand-and-simplify questions built from two expansions.
package algebra

import (
	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// Multiplier types selectable from the dropdown.
const (
	MultiplierNumerical = "numerical"
	MultiplierAlgebraic = "algebraic"
	MultiplierMixed     = "mixed"
)

// Variables are the letters a bracket may use.
var Variables = []string{"x", "y", "a", "b", "p", "q", "r", "s", "t", "n", "m"}

// Expansion is a(bv + c), or a(c − bv) when Reversed, where the outside
// term carries v^OutsidePower when OutsidePower > 0.
type Expansion struct {
	A, B, C      int
	Reversed     bool
	OutsidePower int
	Var          string

	// Expanded coefficients by power of Var.
	X3, X2, X1, Const int
}

// NewExpansion multiplies out the bracket.
func NewExpansion(a, b, c int, reversed bool, outsidePower int, v string) Expansion {
	e := Expansion{A: a, B: b, C: c, Reversed: reversed, OutsidePower: outsidePower, Var: v}
	switch outsidePower {
	case 1:
		e.X2, e.X1 = a*b, a*c
	case 2:
		e.X3, e.X2 = a*b, a*c
	default:
		e.X1, e.Const = a*b, a*c
		if reversed {
			e.X1 = -a * b
		}
	}
	return e
}

func (e Expansion) outside() string {
	if e.OutsidePower > 0 {
		return numfmt.Term(e.A, numfmt.Power(e.Var, e.OutsidePower))
	}
	return numfmt.Signed(e.A)
}

func (e Expansion) bracket() string {
	if e.Reversed {
		return numfmt.Signed(e.C) + " " + numfmt.Minus + " " + numfmt.Term(e.B, e.Var)
	}
	inner := numfmt.Term(e.B, e.Var)
	switch {
	case e.C > 0:
		inner += " + " + numfmt.Signed(e.C)
	case e.C < 0:
		inner += " " + numfmt.Minus + " " + numfmt.Signed(-e.C)
	}
	return inner
}

// Display renders the unexpanded expression, e.g. 3(x + 4) or −2y²(3y − 5).
func (e Expansion) Display() string {
	if e.OutsidePower > 0 {
		return e.outside() + "(" + e.bracket() + ")"
	}
	return numfmt.Term(e.A, "("+e.bracket()+")")
}

// Answer renders the expanded expression. A numeric expansion with a
// negative variable term and positive constant is written constant first:
// 15 − 6x.
func (e Expansion) Answer() string {
	if e.OutsidePower == 0 && e.X1 < 0 && e.Const > 0 {
		return numfmt.Signed(e.Const) + " " + numfmt.Minus + " " + numfmt.Term(-e.X1, e.Var)
	}
	return numfmt.Polynomial(e.terms())
}

func (e Expansion) terms() []numfmt.PolyTerm {
	return []numfmt.PolyTerm{
		{Coeff: e.X3, Body: numfmt.Power(e.Var, 3)},
		{Coeff: e.X2, Body: numfmt.Power(e.Var, 2)},
		{Coeff: e.X1, Body: e.Var},
		{Coeff: e.Const},
	}
}

// products lists each multiplication of the outside term by a bracket term.
func (e Expansion) products() []string {
	out := e.outside()
	line := func(term, result string) string { return out + " × " + term + " = " + result }

	switch {
	case e.OutsidePower > 0:
		lines := []string{line(numfmt.Term(e.B, e.Var), numfmt.Term(e.A*e.B, numfmt.Power(e.Var, e.OutsidePower+1)))}
		if e.C != 0 {
			lines = append(lines, line(numfmt.Signed(e.C), numfmt.Term(e.A*e.C, numfmt.Power(e.Var, e.OutsidePower))))
		}
		return lines
	case e.Reversed:
		return []string{
			line(numfmt.Signed(e.C), numfmt.Signed(e.Const)),
			line(numfmt.Term(-e.B, e.Var), numfmt.Term(e.X1, e.Var)),
		}
	default:
		lines := []string{line(numfmt.Term(e.B, e.Var), numfmt.Term(e.X1, e.Var))}
		if e.C != 0 {
			lines = append(lines, line(numfmt.Signed(e.C), numfmt.Signed(e.Const)))
		}
		return lines
	}
}

func (e Expansion) step(text string) problemgen.WorkingStep {
	return problemgen.WorkingStep{Kind: problemgen.StepExpand, Text: text, Lines: e.products()}
}

// drawExpansion samples an expansion for the tier. v is the bracket letter.
func drawExpansion(r problemgen.Rand, level problemgen.Difficulty, multiplier, v string) Expansion {
	useVar := multiplier == MultiplierAlgebraic ||
		(multiplier == MultiplierMixed && problemgen.Chance(r, 0.5))
	power := 0
	if useVar {
		power = 1
		if problemgen.Chance(r, 0.5) {
			power = 2
		}
	}

	var a, b, c int
	reversed := false
	switch level {
	case problemgen.Level1:
		a = problemgen.IntBetween(r, 2, 10)
		b = problemgen.IntBetween(r, 1, 5)
		c = problemgen.IntBetween(r, 0, 9)
	case problemgen.Level2:
		a = problemgen.IntBetween(r, 2, 10)
		if problemgen.Chance(r, 0.5) {
			b = problemgen.IntBetween(r, 1, 9)
			c = problemgen.IntBetween(r, 1, 9)
			reversed = true
		} else {
			b = problemgen.IntBetween(r, 1, 9)
			c = problemgen.IntBetween(r, -9, -1)
		}
	default:
		a = problemgen.IntBetween(r, -10, 0)
		if a == 0 {
			a = -1
		}
		b = problemgen.IntBetween(r, -5, 5)
		if b == 0 {
			b = 1
		}
		c = problemgen.IntBetween(r, -9, 9)
	}
	// Reversed brackets only apply to numeric multipliers.
	return NewExpansion(a, b, c, reversed && power == 0, power, v)
}

// Expand generates single-bracket expansion questions.
type Expand struct{}

// NewExpand returns the expansion generator.
func NewExpand() *Expand { return &Expand{} }

func (x *Expand) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	v := problemgen.Pick(r, Variables)
	e := drawExpansion(r, in.Level, in.Config.Choice(MultiplierNumerical), v)
	return expansionQuestion(e, in.Level)
}

func (x *Expand) Fallback(in problemgen.GenerateInput) problemgen.Question {
	return expansionQuestion(NewExpansion(3, 1, 4, false, 0, "x"), in.Level)
}

func (x *Expand) Key(q problemgen.Question) string { return q.Display }

func (x *Expand) Validators() []problemgen.Validator {
	return []problemgen.Validator{&ExpansionValidator{}}
}

func expansionQuestion(e Expansion, level problemgen.Difficulty) problemgen.Question {
	answer := e.Answer()
	return problemgen.Question{
		Display: e.Display(),
		Answer:  answer,
		Working: []problemgen.WorkingStep{
			e.step("Multiply the outside term by each term in the bracket"),
			problemgen.Final(answer, ""),
		},
		Values: map[string]any{
			"a":            e.A,
			"b":            e.B,
			"c":            e.C,
			"reversed":     e.Reversed,
			"outsidePower": e.OutsidePower,
			"var":          e.Var,
			"expansion":    e,
		},
		Difficulty: level,
	}
}
