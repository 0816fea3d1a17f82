package ratio

import (
	"fmt"
	"math"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// CoprimeValidator checks that a simplified numeric ratio has HCF 1.
type CoprimeValidator struct{}

func (v *CoprimeValidator) Name() string { return "coprime" }

func (v *CoprimeValidator) Validate(q *problemgen.Question, _ problemgen.GenerateInput) *problemgen.ValidationError {
	parts, ok := q.Values["simplifiedParts"].([]int)
	if !ok {
		return nil
	}
	if h := numfmt.HCF(parts); h != 1 {
		return &problemgen.ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("simplified ratio %s has common factor %d", numfmt.Ratio(parts), h),
		}
	}
	return nil
}

// ReductionValidator checks that the original parts divided by the advertised
// HCF give the simplified parts.
type ReductionValidator struct{}

func (v *ReductionValidator) Name() string { return "reduction" }

func (v *ReductionValidator) Validate(q *problemgen.Question, _ problemgen.GenerateInput) *problemgen.ValidationError {
	original, ok := q.Values["originalParts"].([]int)
	if !ok {
		return nil
	}
	simplified, _ := q.Values["simplifiedParts"].([]int)
	hcf, _ := q.Values["hcf"].(int)
	if hcf == 0 || len(original) != len(simplified) || !reducesTo(original, hcf, simplified) {
		return &problemgen.ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s ÷ %d does not give %s", numfmt.Ratio(original), hcf, numfmt.Ratio(simplified)),
		}
	}
	return nil
}

// SharesValidator checks that ratio parts are in simplest form and the
// shares add up to the total.
type SharesValidator struct{}

func (v *SharesValidator) Name() string { return "shares" }

func (v *SharesValidator) Validate(q *problemgen.Question, _ problemgen.GenerateInput) *problemgen.ValidationError {
	parts, ok := q.Values["ratioParts"].([]int)
	if !ok {
		return &problemgen.ValidationError{Validator: v.Name(), Message: "ratio parts missing"}
	}
	if !usable(parts) {
		return &problemgen.ValidationError{
			Validator: v.Name(),
			Message:   "ratio " + numfmt.Ratio(parts) + " is not in simplest form",
		}
	}
	shares, _ := q.Values["shares"].([]float64)
	total, _ := q.Values["total"].(float64)
	sum := 0.0
	for _, s := range shares {
		sum += s
	}
	if len(shares) != len(parts) || math.Abs(sum-total) > 1e-9 {
		return &problemgen.ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("shares add to %v, total is %v", sum, total),
		}
	}
	return nil
}
