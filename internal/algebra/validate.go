package algebra

import (
	"fmt"

	"github.com/abhisek/mathtools/internal/problemgen"
)

// ExpansionValidator checks every expansion in a question has non-zero
// multipliers and coefficients matching its bracket.
type ExpansionValidator struct{}

func (v *ExpansionValidator) Name() string { return "expansion" }

func (v *ExpansionValidator) Validate(q *problemgen.Question, _ problemgen.GenerateInput) *problemgen.ValidationError {
	var parts []Expansion
	for _, key := range []string{"expansion", "first", "second"} {
		if e, ok := q.Values[key].(Expansion); ok {
			parts = append(parts, e)
		}
	}
	if len(parts) == 0 {
		return &problemgen.ValidationError{Validator: v.Name(), Message: "no expansion in values"}
	}
	for _, e := range parts {
		if e.A == 0 || e.B == 0 {
			return &problemgen.ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%s has a zero multiplier", e.Display()),
			}
		}
		want := NewExpansion(e.A, e.B, e.C, e.Reversed, e.OutsidePower, e.Var)
		if want != e {
			return &problemgen.ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%s expands inconsistently", e.Display()),
			}
		}
	}
	return nil
}
