// Package circle generates circumference, area and sector questions.
//
// All results use the fixed approximation Pi and are rounded to one decimal
// place. With the answerInPi option the answer is written as a multiple of π
// instead.
package circle

import (
	"math"

	"github.com/abhisek/mathtools/internal/numfmt"
	"github.com/abhisek/mathtools/internal/problemgen"
)

// Pi is the approximation used in every numeric answer and working line.
const Pi = 3.142592

// piText is Pi as it appears in working.
const piText = "3.142592"

// Option keys.
const (
	OptAllowDecimals = "allowDecimals"
	OptAnswerInPi    = "answerInPi"
)

// Measurements.
const (
	MeasureCircumference = "circumference"
	MeasureArea          = "area"
	MeasureSector        = "sector"
)

// Quantities given or asked for.
const (
	FindRadius   = "radius"
	FindDiameter = "diameter"
)

const (
	unitLength = "cm"
	unitArea   = "cm²"

	maxLength = 25
)

// options are the presentation flags shared by every circle tool.
type options struct {
	decimals bool
	inPi     bool
}

func optionsFor(in problemgen.GenerateInput) options {
	return options{
		decimals: in.Config.Flag(OptAllowDecimals),
		inPi:     in.Config.Flag(OptAnswerInPi),
	}
}

// drawLength returns an integer length in [lo, 25], or with decimals a
// one-decimal length in [lo, lo+24].
func drawLength(r problemgen.Rand, decimals bool, lo int) float64 {
	if decimals {
		return numfmt.Round(r.Float64()*24+float64(lo), 1)
	}
	return float64(problemgen.IntBetween(r, lo, maxLength))
}

// drawAngle returns the diagram rotation in 15° steps.
func drawAngle(r problemgen.Rand) int {
	return r.IntN(24) * 15
}

// drawFind picks the length a level 3 question asks for.
func drawFind(r problemgen.Rand) string {
	if problemgen.Chance(r, 0.5) {
		return FindRadius
	}
	return FindDiameter
}

func tenth(x float64) float64 { return numfmt.Round(x, 1) }

// num renders a length or intermediate value to at most two decimals.
func num(x float64) string { return numfmt.Plain(numfmt.Round(x, 2)) }

// piForm writes a multiple of π with the coefficient to two decimals.
func piForm(coeff float64) string { return num(coeff) + "π" }

func sameLength(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// pick returns the π-form text or the numeric text.
func (o options) pick(pi, numeric string) string {
	if o.inPi {
		return pi
	}
	return numeric
}

// result is a computed circumference, area or sector measurement.
type result struct {
	numeric float64 // rounded to one decimal place
	pi      string
}

func (o options) answer(res result) string {
	return o.pick(res.pi, num(res.numeric))
}

func build(display, answer, unit string, level problemgen.Difficulty, working []problemgen.WorkingStep, values map[string]any) problemgen.Question {
	working = append(working, problemgen.Final(answer, unit))
	return problemgen.Question{
		Display:    display,
		Answer:     answer,
		Working:    working,
		Values:     values,
		Difficulty: level,
	}
}
