package circle

import (
	"fmt"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// Circumference generates circumference questions: given the diameter at
// level 1, the radius at level 2, and the circumference at level 3 with the
// radius or diameter to find.
type Circumference struct{}

// NewCircumference returns the circumference generator.
func NewCircumference() *Circumference { return &Circumference{} }

func circumferenceOf(radius float64) result {
	return result{numeric: tenth(2 * Pi * radius), pi: piForm(2 * radius)}
}

func (c *Circumference) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	angle := drawAngle(r)
	o := optionsFor(in)
	switch in.Level {
	case problemgen.Level1:
		d := drawLength(r, o.decimals, 1)
		return circumferenceFromDiameter(o, d, angle, in.Level)
	case problemgen.Level2:
		rad := drawLength(r, o.decimals, 1)
		return circumferenceFromRadius(o, rad, angle, in.Level)
	default:
		find := drawFind(r)
		length := drawLength(r, o.decimals, 1)
		return lengthFromCircumference(o, find, length, angle, in.Level)
	}
}

func (c *Circumference) Fallback(in problemgen.GenerateInput) problemgen.Question {
	return circumferenceFromDiameter(optionsFor(in), 10, 0, in.Level)
}

// Key identifies a question by its given quantity.
func (c *Circumference) Key(q problemgen.Question) string {
	return measurementKey("circ", "c", q)
}

func (c *Circumference) Validators() []problemgen.Validator {
	return []problemgen.Validator{&MeasureValidator{}}
}

func circumferenceFromDiameter(o options, d float64, angle int, level problemgen.Difficulty) problemgen.Question {
	res := circumferenceOf(d / 2)
	answer := o.answer(res)
	working := []problemgen.WorkingStep{
		problemgen.Step(problemgen.StepGiven, "Diameter (d) = %s cm", num(d)),
		problemgen.Step(problemgen.StepFormula, "Circumference = πd"),
		problemgen.Step(problemgen.StepSubstitution, "Circumference = π × %s", num(d)),
		problemgen.Step(problemgen.StepCalculation, "%s", o.pick(
			fmt.Sprintf("Circumference = %s cm", res.pi),
			fmt.Sprintf("Circumference = %s × %s = %s cm", num(d), piText, num(res.numeric)),
		)),
	}
	return build(
		fmt.Sprintf("A circle has diameter %s cm. Find the circumference.", num(d)),
		answer, unitLength, level, working,
		values(MeasureCircumference, d/2, FindDiameter, MeasureCircumference, res, angle),
	)
}

func circumferenceFromRadius(o options, rad float64, angle int, level problemgen.Difficulty) problemgen.Question {
	res := circumferenceOf(rad)
	answer := o.answer(res)
	working := []problemgen.WorkingStep{
		problemgen.Step(problemgen.StepGiven, "Radius (r) = %s cm", num(rad)),
		problemgen.Step(problemgen.StepFormula, "Circumference = 2πr"),
		problemgen.Step(problemgen.StepSubstitution, "Circumference = 2 × π × %s", num(rad)),
		problemgen.Step(problemgen.StepCalculation, "%s", o.pick(
			fmt.Sprintf("Circumference = %s cm", res.pi),
			fmt.Sprintf("Circumference = 2 × %s × %s = %s cm", piText, num(rad), num(res.numeric)),
		)),
	}
	return build(
		fmt.Sprintf("A circle has radius %s cm. Find the circumference.", num(rad)),
		answer, unitLength, level, working,
		values(MeasureCircumference, rad, FindRadius, MeasureCircumference, res, angle),
	)
}

// lengthFromCircumference asks for the radius or diameter given the
// circumference. length is the quantity being found.
func lengthFromCircumference(o options, find string, length float64, angle int, level problemgen.Difficulty) problemgen.Question {
	rad := length
	if find == FindDiameter {
		rad = length / 2
	}
	res := circumferenceOf(rad)
	given := o.answer(res)
	c := num(res.numeric)

	working := []problemgen.WorkingStep{
		problemgen.Step(problemgen.StepGiven, "Circumference (C) = %s cm", given),
	}
	if find == FindRadius {
		working = append(working,
			problemgen.Step(problemgen.StepFormula, "Circumference = 2πr"),
			problemgen.Step(problemgen.StepRearrange, "r = C ÷ (2π)"),
			problemgen.Step(problemgen.StepSubstitution, "%s", o.pick(
				fmt.Sprintf("r = %s ÷ (2π)", res.pi),
				fmt.Sprintf("r = %s ÷ (2π)", c),
			)),
			problemgen.Step(problemgen.StepCalculation, "%s", o.pick(
				fmt.Sprintf("r = %s cm", num(rad)),
				fmt.Sprintf("r = %s ÷ (2 × %s) = %s cm", c, piText, num(rad)),
			)),
		)
	} else {
		working = append(working,
			problemgen.Step(problemgen.StepFormula, "Circumference = πd"),
			problemgen.Step(problemgen.StepRearrange, "d = C ÷ π"),
			problemgen.Step(problemgen.StepSubstitution, "%s", o.pick(
				fmt.Sprintf("d = %s ÷ π", res.pi),
				fmt.Sprintf("d = %s ÷ π", c),
			)),
			problemgen.Step(problemgen.StepCalculation, "%s", o.pick(
				fmt.Sprintf("d = %s cm", num(length)),
				fmt.Sprintf("d = %s ÷ %s = %s cm", c, piText, num(length)),
			)),
		)
	}

	v := values(MeasureCircumference, rad, MeasureCircumference, find, result{numeric: length}, angle)
	v["givenNumeric"] = res.numeric
	v["givenPi"] = res.pi
	return build(
		fmt.Sprintf("A circle has circumference %s cm. Find the %s.", given, find),
		num(length), unitLength, level, working, v,
	)
}

// values records the generation parameters shared by circle questions. res
// is the answer, which for a found length has no π form.
func values(measure string, radius float64, given, find string, res result, angle int) map[string]any {
	return map[string]any{
		"measure":       measure,
		"radius":        radius,
		"diameter":      2 * radius,
		"given":         given,
		"find":          find,
		"answerNumeric": res.numeric,
		"answerPi":      res.pi,
		"angle":         angle,
	}
}

// measurementKey follows the given quantity: prefix-r5-level2,
// prefix-d10-level1, or prefix-c31.4-findradius for a found length.
func measurementKey(prefix, givenTag string, q problemgen.Question) string {
	given, _ := q.Values["given"].(string)
	radius, _ := q.Values["radius"].(float64)
	switch given {
	case FindRadius:
		return fmt.Sprintf("%s-r%s-%s", prefix, numfmt.Plain(radius), q.Difficulty)
	case FindDiameter:
		return fmt.Sprintf("%s-d%s-%s", prefix, numfmt.Plain(2*radius), q.Difficulty)
	}
	g, _ := q.Values["givenNumeric"].(float64)
	find, _ := q.Values["find"].(string)
	return fmt.Sprintf("%s-%s%s-find%s", prefix, givenTag, numfmt.Plain(g), find)
}
