package circle

import (
	"fmt"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// Sector question styles selectable from the dropdown.
const (
	StyleMixed     = "mixed"
	StyleArea      = "area"
	StylePerimeter = "perimeter"
	StyleArcLength = "arcLength"
)

// Styles are the concrete styles a mixed selection draws from.
var Styles = []string{StyleArea, StylePerimeter, StyleArcLength}

// Sector generates semi-circle (level 1), quarter-circle (level 2) and
// general sector (level 3) questions asking for the area, arc length or
// perimeter.
type Sector struct{}

// NewSector returns the sector generator.
func NewSector() *Sector { return &Sector{} }

// sector is a drawn sector of a circle with the given diameter.
type sector struct {
	theta    int
	diameter float64
	style    string
	level    problemgen.Difficulty
}

func (s sector) radius() float64   { return s.diameter / 2 }
func (s sector) fraction() float64 { return float64(s.theta) / 360 }

func (s sector) shape() string {
	switch s.level {
	case problemgen.Level1:
		return "semi-circle"
	case problemgen.Level2:
		return "quarter-circle"
	}
	return "sector"
}

// fractionText is θ/360 in lowest terms where it is a familiar fraction.
func (s sector) fractionText() string {
	switch s.level {
	case problemgen.Level1:
		return "(1/2)"
	case problemgen.Level2:
		return "(1/4)"
	}
	return fmt.Sprintf("(%d/360)", s.theta)
}

func (s sector) decimalText() string {
	return numfmt.Plain(numfmt.Round(s.fraction(), 3))
}

// straight is the length of the straight edges: the diameter for a
// semi-circle, otherwise two radii.
func (s sector) straight() float64 { return 2 * s.radius() }

func (s sector) arcLength() float64 { return s.fraction() * 2 * Pi * s.radius() }

func (s sector) measure() result {
	r := s.radius()
	switch s.style {
	case StyleArea:
		return result{
			numeric: tenth(s.fraction() * Pi * r * r),
			pi:      piForm(s.fraction() * r * r),
		}
	case StyleArcLength:
		return result{
			numeric: tenth(s.arcLength()),
			pi:      piForm(s.fraction() * 2 * r),
		}
	default:
		return result{
			numeric: tenth(s.arcLength() + s.straight()),
			pi:      piForm(s.fraction()*2*r) + " + " + num(s.straight()),
		}
	}
}

func (s sector) unit() string {
	if s.style == StyleArea {
		return unitArea
	}
	return unitLength
}

func styleLabel(style string) string {
	switch style {
	case StyleArcLength:
		return "arc length"
	case StylePerimeter:
		return "perimeter"
	}
	return "area"
}

func (x *Sector) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	angle := drawAngle(r)
	o := optionsFor(in)
	style := in.Config.Choice(StyleMixed)
	if style == StyleMixed {
		style = problemgen.Pick(r, Styles)
	}

	s := sector{style: style, level: in.Level}
	switch in.Level {
	case problemgen.Level1:
		s.theta = 180
	case problemgen.Level2:
		s.theta = 90
	default:
		s.theta = problemgen.IntBetween(r, 1, 359)
	}
	s.diameter = drawLength(r, o.decimals, 2)
	return sectorQuestion(o, s, angle)
}

func (x *Sector) Fallback(in problemgen.GenerateInput) problemgen.Question {
	style := in.Config.Choice(StyleMixed)
	if style == StyleMixed {
		style = StyleArea
	}
	q := sectorQuestion(optionsFor(in), sector{theta: 180, diameter: 10, style: style, level: problemgen.Level1}, 0)
	q.Difficulty = in.Level
	return q
}

// Key combines the angle, diameter and style.
func (x *Sector) Key(q problemgen.Question) string {
	theta, _ := q.Values["theta"].(int)
	d, _ := q.Values["diameter"].(float64)
	style, _ := q.Values["style"].(string)
	return fmt.Sprintf("%d-%s-%s", theta, numfmt.Plain(d), style)
}

func (x *Sector) Validators() []problemgen.Validator {
	return []problemgen.Validator{&MeasureValidator{}}
}

func sectorQuestion(o options, s sector, angle int) problemgen.Question {
	res := s.measure()
	r := num(s.radius())
	d := num(s.diameter)
	frac := s.fractionText()

	working := []problemgen.WorkingStep{
		problemgen.Step(problemgen.StepGiven, "Diameter (d) = %s cm, θ = %d°", d, s.theta),
		radiusStep(s.diameter),
	}
	switch s.style {
	case StyleArea:
		sq := num(s.radius() * s.radius())
		working = append(working,
			problemgen.Step(problemgen.StepFormula, "Area of sector = (θ/360) × πr²"),
			problemgen.Step(problemgen.StepSubstitution, "Area = (%d/360) × π × %s²", s.theta, r),
			problemgen.Step(problemgen.StepSimplify, "Area = %s × π × %s", frac, sq),
			problemgen.Step(problemgen.StepCalculation, "%s", o.pick(
				fmt.Sprintf("Area = %s cm²", res.pi),
				fmt.Sprintf("Area = %s × %s × %s = %s cm²", s.decimalText(), piText, sq, num(res.numeric)),
			)),
		)
	case StyleArcLength:
		working = append(working,
			problemgen.Step(problemgen.StepFormula, "Arc length = (θ/360) × 2πr"),
			problemgen.Step(problemgen.StepSubstitution, "Arc length = (%d/360) × 2 × π × %s", s.theta, r),
			problemgen.Step(problemgen.StepSimplify, "Arc length = %s × %s × π", frac, num(2*s.radius())),
			problemgen.Step(problemgen.StepCalculation, "%s", o.pick(
				fmt.Sprintf("Arc length = %s cm", res.pi),
				fmt.Sprintf("Arc length = %s × 2 × %s × %s = %s cm", s.decimalText(), piText, r, num(res.numeric)),
			)),
		)
	default:
		straight := num(s.straight())
		formula := "Perimeter = arc length + 2r = (θ/360) × 2πr + 2r"
		substitution := fmt.Sprintf("Perimeter = (%d/360) × 2 × π × %s + 2 × %s", s.theta, r, r)
		if s.level == problemgen.Level1 {
			formula = "Perimeter = arc length + diameter = (θ/360) × 2πr + d"
			substitution = fmt.Sprintf("Perimeter = (%d/360) × 2 × π × %s + %s", s.theta, r, d)
		}
		working = append(working,
			problemgen.Step(problemgen.StepFormula, "%s", formula),
			problemgen.Step(problemgen.StepSubstitution, "%s", substitution),
			problemgen.Step(problemgen.StepSimplify, "Perimeter = %s × %s × π + %s", frac, num(2*s.radius()), straight),
			problemgen.Step(problemgen.StepCalculation, "%s", o.pick(
				fmt.Sprintf("Perimeter = %s cm", res.pi),
				fmt.Sprintf("Perimeter = %s + %s = %s cm", num(tenth(s.arcLength())), straight, num(res.numeric)),
			)),
		)
	}

	display := fmt.Sprintf("A %s has diameter %s cm. Find the %s of the %s.", s.shape(), d, styleLabel(s.style), s.shape())
	if s.level == problemgen.Level3 {
		display = fmt.Sprintf("A sector has diameter %s cm and angle %d°. Find the %s of the sector.", d, s.theta, styleLabel(s.style))
	}

	v := values(MeasureSector, s.radius(), FindDiameter, s.style, res, angle)
	v["theta"] = s.theta
	v["style"] = s.style
	return build(display, o.answer(res), s.unit(), s.level, working, v)
}
