package circle

import (
	"fmt"

	"github.com/abhisek/mathtools/internal/problemgen"
)

// Area generates area questions: given the radius at level 1, the diameter
// at level 2, and the area at level 3 with the radius or diameter to find.
type Area struct{}

// NewArea returns the area generator.
func NewArea() *Area { return &Area{} }

func areaOf(radius float64) result {
	return result{numeric: tenth(Pi * radius * radius), pi: piForm(radius * radius)}
}

func (a *Area) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	angle := drawAngle(r)
	o := optionsFor(in)
	switch in.Level {
	case problemgen.Level1:
		rad := drawLength(r, o.decimals, 1)
		return areaFromRadius(o, rad, angle, in.Level)
	case problemgen.Level2:
		d := drawLength(r, o.decimals, 1)
		return areaFromDiameter(o, d, angle, in.Level)
	default:
		find := drawFind(r)
		length := drawLength(r, o.decimals, 1)
		return lengthFromArea(o, find, length, angle, in.Level)
	}
}

func (a *Area) Fallback(in problemgen.GenerateInput) problemgen.Question {
	return areaFromRadius(optionsFor(in), 5, 0, in.Level)
}

func (a *Area) Key(q problemgen.Question) string {
	return measurementKey("area", "a", q)
}

func (a *Area) Validators() []problemgen.Validator {
	return []problemgen.Validator{&MeasureValidator{}}
}

// areaSteps is the shared tail from the formula to the calculation.
func areaSteps(o options, rad float64, res result) []problemgen.WorkingStep {
	return []problemgen.WorkingStep{
		problemgen.Step(problemgen.StepFormula, "Area = πr²"),
		problemgen.Step(problemgen.StepSubstitution, "Area = π × %s²", num(rad)),
		problemgen.Step(problemgen.StepSimplify, "Area = π × %s", num(rad*rad)),
		problemgen.Step(problemgen.StepCalculation, "%s", o.pick(
			fmt.Sprintf("Area = %s cm²", res.pi),
			fmt.Sprintf("Area = %s × %s = %s cm²", piText, num(rad*rad), num(res.numeric)),
		)),
	}
}

func areaFromRadius(o options, rad float64, angle int, level problemgen.Difficulty) problemgen.Question {
	res := areaOf(rad)
	working := append([]problemgen.WorkingStep{
		problemgen.Step(problemgen.StepGiven, "Radius (r) = %s cm", num(rad)),
	}, areaSteps(o, rad, res)...)
	return build(
		fmt.Sprintf("A circle has radius %s cm. Find the area.", num(rad)),
		o.answer(res), unitArea, level, working,
		values(MeasureArea, rad, FindRadius, MeasureArea, res, angle),
	)
}

func areaFromDiameter(o options, d float64, angle int, level problemgen.Difficulty) problemgen.Question {
	rad := d / 2
	res := areaOf(rad)
	working := append([]problemgen.WorkingStep{
		problemgen.Step(problemgen.StepGiven, "Diameter (d) = %s cm", num(d)),
		radiusStep(d),
	}, areaSteps(o, rad, res)...)
	return build(
		fmt.Sprintf("A circle has diameter %s cm. Find the area.", num(d)),
		o.answer(res), unitArea, level, working,
		values(MeasureArea, rad, FindDiameter, MeasureArea, res, angle),
	)
}

func radiusStep(d float64) problemgen.WorkingStep {
	return problemgen.Step(problemgen.StepFindRadius, "Radius (r) = d ÷ 2 = %s ÷ 2 = %s cm", num(d), num(d/2))
}

// lengthFromArea asks for the radius or diameter given the area. length is
// the quantity being found.
func lengthFromArea(o options, find string, length float64, angle int, level problemgen.Difficulty) problemgen.Question {
	rad := length
	if find == FindDiameter {
		rad = length / 2
	}
	res := areaOf(rad)
	given := o.answer(res)
	a := num(res.numeric)
	sq := num(rad * rad)

	working := []problemgen.WorkingStep{
		problemgen.Step(problemgen.StepGiven, "Area (A) = %s cm²", given),
		problemgen.Step(problemgen.StepFormula, "Area = πr²"),
		problemgen.Step(problemgen.StepRearrange, "r² = A ÷ π"),
		problemgen.Step(problemgen.StepSubstitution, "%s", o.pick(
			fmt.Sprintf("r² = %s ÷ π", res.pi),
			fmt.Sprintf("r² = %s ÷ π", a),
		)),
		problemgen.Step(problemgen.StepSimplify, "%s", o.pick(
			fmt.Sprintf("r² = %s", sq),
			fmt.Sprintf("r² = %s ÷ %s = %s", a, piText, sq),
		)),
		problemgen.Step(problemgen.StepCalculation, "r = √%s = %s cm", sq, num(rad)),
	}
	if find == FindDiameter {
		working = append(working, problemgen.Step(problemgen.StepFindDiameter,
			"Diameter (d) = 2r = 2 × %s = %s cm", num(rad), num(length)))
	}

	v := values(MeasureArea, rad, MeasureArea, find, result{numeric: length}, angle)
	v["givenNumeric"] = res.numeric
	v["givenPi"] = res.pi
	return build(
		fmt.Sprintf("A circle has area %s cm². Find the %s.", given, find),
		num(length), unitLength, level, working, v,
	)
}
