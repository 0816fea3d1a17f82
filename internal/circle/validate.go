package circle

import (
	"fmt"

	"github.com/abhisek/mathtools/internal/problemgen"
)

// MeasureValidator recomputes a circle question's answer from its radius and
// checks the stored dimensions agree.
type MeasureValidator struct{}

func (v *MeasureValidator) Name() string { return "measure" }

func (v *MeasureValidator) fail(format string, args ...any) *problemgen.ValidationError {
	return &problemgen.ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

func (v *MeasureValidator) Validate(q *problemgen.Question, in problemgen.GenerateInput) *problemgen.ValidationError {
	measure, _ := q.Values["measure"].(string)
	radius, _ := q.Values["radius"].(float64)
	diameter, _ := q.Values["diameter"].(float64)
	find, _ := q.Values["find"].(string)
	numeric, _ := q.Values["answerNumeric"].(float64)

	if radius <= 0 || radius > maxLength+1 {
		return v.fail("radius %s out of range", num(radius))
	}
	if !sameLength(diameter, 2*radius) {
		return v.fail("diameter %s is not twice radius %s", num(diameter), num(radius))
	}

	var want result
	switch {
	case find == FindRadius:
		want = result{numeric: radius}
	case find == FindDiameter:
		want = result{numeric: diameter}
	case measure == MeasureCircumference:
		want = circumferenceOf(radius)
	case measure == MeasureArea:
		want = areaOf(radius)
	case measure == MeasureSector:
		theta, _ := q.Values["theta"].(int)
		if theta < 1 || theta > 359 {
			return v.fail("sector angle %d° out of range", theta)
		}
		style, _ := q.Values["style"].(string)
		want = sector{theta: theta, diameter: diameter, style: style, level: q.Difficulty}.measure()
	default:
		return v.fail("unknown measurement %q", measure)
	}

	if !sameLength(numeric, want.numeric) {
		return v.fail("answer %s does not match computed %s", num(numeric), num(want.numeric))
	}
	expected := num(want.numeric)
	if want.pi != "" && in.Config.Flag(OptAnswerInPi) {
		expected = want.pi
	}
	if q.Answer != expected {
		return v.fail("answer %q, want %q", q.Answer, expected)
	}
	return nil
}
