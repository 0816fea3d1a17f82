package ratio

import (
	"slices"
	"strconv"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// algebraicAttempts caps the search for coprime coefficient pairs.
const algebraicAttempts = problemgen.MaxAttempts

var ratioVariables = []string{"x", "y", "z"}

// Monomial is a coefficient times a product of variable powers.
type Monomial struct {
	Coeff int
	Vars  map[string]int
}

// String renders the term with variables in alphabetical order and an
// implicit coefficient of 1: 6x²y, xy, 3.
func (m Monomial) String() string {
	body := ""
	for _, v := range m.sortedVars() {
		body += numfmt.Power(v, m.Vars[v])
	}
	return numfmt.Term(m.Coeff, body)
}

func (m Monomial) sortedVars() []string {
	vars := make([]string, 0, len(m.Vars))
	for v, p := range m.Vars {
		if p > 0 {
			vars = append(vars, v)
		}
	}
	slices.Sort(vars)
	return vars
}

func (m Monomial) clone() Monomial {
	vars := make(map[string]int, len(m.Vars))
	for v, p := range m.Vars {
		vars[v] = p
	}
	return Monomial{Coeff: m.Coeff, Vars: vars}
}

func term(coeff int, vars map[string]int) Monomial {
	return Monomial{Coeff: coeff, Vars: vars}
}

// pickOther returns a variable not in exclude.
func pickOther(r problemgen.Rand, exclude ...string) string {
	var pool []string
	for _, v := range ratioVariables {
		if !slices.Contains(exclude, v) {
			pool = append(pool, v)
		}
	}
	return problemgen.Pick(r, pool)
}

// coprimePair draws two distinct coprime integers in [lo, hi].
func coprimePair(r problemgen.Rand, lo, hi int) (int, int, bool) {
	pair, ok := problemgen.Sample(algebraicAttempts, func() ([2]int, bool) {
		a, b := problemgen.IntBetween(r, lo, hi), problemgen.IntBetween(r, lo, hi)
		return [2]int{a, b}, a != b && numfmt.GCD(a, b) == 1
	})
	return pair[0], pair[1], ok
}

func distinctPair(r problemgen.Rand, lo1, hi1, lo2, hi2 int) (int, int, bool) {
	pair, ok := problemgen.Sample(algebraicAttempts, func() ([2]int, bool) {
		a, b := problemgen.IntBetween(r, lo1, hi1), problemgen.IntBetween(r, lo2, hi2)
		return [2]int{a, b}, a != b
	})
	return pair[0], pair[1], ok
}

// sharedVariableTerms builds c1·vw : c2·vu with one shared variable v.
func sharedVariableTerms(r problemgen.Rand, c1, c2 int) (Monomial, Monomial) {
	common := problemgen.Pick(r, ratioVariables)
	v1 := pickOther(r, common)
	v2 := pickOther(r, common, v1)
	return term(c1, map[string]int{common: 1, v1: 1}), term(c2, map[string]int{common: 1, v2: 1})
}

func drawAlgebraicTerms(r problemgen.Rand, level problemgen.Difficulty) (Monomial, Monomial, bool) {
	switch level {
	case problemgen.Level1:
		switch problemgen.Pick(r, []string{"numeric", "algebraic", "power"}) {
		case "numeric":
			factor := problemgen.Pick(r, []int{2, 3, 4, 5, 6, 8, 10})
			c1, c2, ok := coprimePair(r, 1, 5)
			v1 := problemgen.Pick(r, ratioVariables)
			v2 := pickOther(r, v1)
			return term(factor*c1, map[string]int{v1: 1}), term(factor*c2, map[string]int{v2: 1}), ok
		case "algebraic":
			c1, c2, ok := coprimePair(r, 2, 5)
			t1, t2 := sharedVariableTerms(r, c1, c2)
			return t1, t2, ok
		default:
			c1, c2, ok := coprimePair(r, 2, 5)
			v := problemgen.Pick(r, ratioVariables)
			return term(c1, map[string]int{v: 2}), term(c2, map[string]int{v: 1}), ok
		}
	case problemgen.Level2:
		factor := problemgen.Pick(r, []int{2, 3, 4, 5, 6, 8, 10, 12})
		m1, m2, ok := distinctPair(r, 1, 4, 1, 4)
		if problemgen.Pick(r, []string{"power", "twoVars"}) == "power" {
			v := problemgen.Pick(r, ratioVariables)
			return term(factor*m1, map[string]int{v: 1}), term(factor*m2, map[string]int{v: 2}), ok
		}
		t1, t2 := sharedVariableTerms(r, factor*m1, factor*m2)
		return t1, t2, ok
	default:
		factor := problemgen.Pick(r, []int{2, 3, 4, 5, 6, 8, 9, 10, 12})
		m1, m2, ok := distinctPair(r, 1, 3, 2, 4)
		v1 := problemgen.Pick(r, ratioVariables)
		v2 := pickOther(r, v1)
		return term(factor*m1, map[string]int{v1: 2, v2: 3}), term(factor*m2, map[string]int{v1: 3, v2: 1}), ok
	}
}

func generateAlgebraic(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	t1, t2, ok := drawAlgebraicTerms(r, in.Level)
	if !ok {
		return problemgen.WithFallback(algebraicFallback(in.Level), in.Level)
	}
	return algebraicSimplify(t1, t2, in.Level)
}

func algebraicFallback(level problemgen.Difficulty) problemgen.Question {
	return algebraicSimplify(term(6, map[string]int{"x": 1}), term(9, map[string]int{"y": 1}), level)
}

// cancel divides both terms by the coefficient HCF and then by each shared
// variable's lowest power, alphabetically, recording a step for each division.
func cancel(t1, t2 Monomial) (Monomial, Monomial, []problemgen.WorkingStep) {
	a, b := t1.clone(), t2.clone()
	var steps []problemgen.WorkingStep
	record := func(by string) {
		steps = append(steps, problemgen.WorkingStep{
			Kind:      problemgen.StepDivide,
			Text:      "÷ " + by + " → " + a.String() + ":" + b.String(),
			Ratio:     []string{a.String(), b.String()},
			DividedBy: by,
		})
	}

	if g := numfmt.GCD(a.Coeff, b.Coeff); g > 1 {
		a.Coeff /= g
		b.Coeff /= g
		record(strconv.Itoa(g))
	}

	vars := map[string]bool{}
	for v := range a.Vars {
		vars[v] = true
	}
	for v := range b.Vars {
		vars[v] = true
	}
	sorted := make([]string, 0, len(vars))
	for v := range vars {
		sorted = append(sorted, v)
	}
	slices.Sort(sorted)

	for _, v := range sorted {
		low := min(a.Vars[v], b.Vars[v])
		if low == 0 {
			continue
		}
		a.Vars[v] -= low
		b.Vars[v] -= low
		record(numfmt.Power(v, low))
	}
	return a, b, steps
}

func algebraicSimplify(t1, t2 Monomial, level problemgen.Difficulty) problemgen.Question {
	s1, s2, divisions := cancel(t1, t2)
	display := t1.String() + ":" + t2.String()
	answer := s1.String() + ":" + s2.String()

	working := []problemgen.WorkingStep{{
		Kind:  problemgen.StepOriginal,
		Text:  "Original ratio: " + display,
		Ratio: []string{t1.String(), t2.String()},
	}}
	working = append(working, divisions...)
	working = append(working, problemgen.WorkingStep{
		Kind:   problemgen.StepFinal,
		Text:   "Simplified ratio: " + answer,
		Ratio:  []string{s1.String(), s2.String()},
		Answer: answer,
	})

	return problemgen.Question{
		Display: display,
		Answer:  answer,
		Working: working,
		Values: map[string]any{
			"ratioType":  TypeAlgebraic,
			"original":   []Monomial{t1, t2},
			"simplified": []Monomial{s1, s2},
		},
		Difficulty: level,
	}
}
