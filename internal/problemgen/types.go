package problemgen

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is one of the three ordinal tiers controlling sampling ranges.
type Difficulty string

const (
	Level1 Difficulty = "level1"
	Level2 Difficulty = "level2"
	Level3 Difficulty = "level3"
)

// ErrInvalidDifficulty is returned when a difficulty string cannot be parsed.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// AllDifficulties returns the tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Level1, Level2, Level3}
}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Level1, Level2, Level3:
		return true
	}
	return false
}

// Label returns a display label such as "Level 2".
func (d Difficulty) Label() string {
	switch d {
	case Level1:
		return "Level 1"
	case Level2:
		return "Level 2"
	case Level3:
		return "Level 3"
	default:
		return string(d)
	}
}

// ParseDifficulty accepts "1", "l1", "level1" and "Level 1" spellings.
func ParseDifficulty(s string) (Difficulty, error) {
	v := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	v = strings.TrimPrefix(strings.TrimPrefix(v, "level"), "l")
	switch v {
	case "1":
		return Level1, nil
	case "2":
		return Level2, nil
	case "3":
		return Level3, nil
	}
	return "", fmt.Errorf("%w: %q (want 1, 2 or 3)", ErrInvalidDifficulty, s)
}

// StepKind tags the semantic role of a working step.
type StepKind string

const (
	StepGiven        StepKind = "given"
	StepFormula      StepKind = "formula"
	StepRearrange    StepKind = "rearrange"
	StepSubstitution StepKind = "substitution"
	StepSimplify     StepKind = "simplify"
	StepCalculation  StepKind = "calculation"
	StepFindRadius   StepKind = "findRadius"
	StepFindDiameter StepKind = "findDiameter"
	StepFinal        StepKind = "final"

	StepOriginal StepKind = "original"
	StepDivide   StepKind = "step"

	StepExpand  StepKind = "foil"
	StepCombine StepKind = "combine"

	StepShowRatio      StepKind = "showRatio"
	StepShowGiven      StepKind = "showGiven"
	StepExplainParts   StepKind = "explainParts"
	StepRatioSum       StepKind = "ratioSum"
	StepPartValue      StepKind = "partValue"
	StepCalculate      StepKind = "calculate"
	StepVerifyTotal    StepKind = "verifyTotal"
	StepBarModelEmpty  StepKind = "barModelEmpty"
	StepBarModelKnown  StepKind = "barModelKnown"
	StepBarModelDiff   StepKind = "barModelDifference"
	StepBarModelFilled StepKind = "barModelFilled"
	StepTotalParts     StepKind = "totalParts"
	StepIdentifyParts  StepKind = "identifyRatioPart"
	StepDifferenceGap  StepKind = "identifyDifferenceParts"
	StepReadFromBar    StepKind = "readFromBar"
)

// Bar is one person's row in a bar-model diagram.
type Bar struct {
	Label     string
	Boxes     int
	BoxValue  float64 // 0 while the part value is still unknown
	Amount    float64 // 0 while the share is still unknown
	Highlight bool    // the row carrying the given information
}

// WorkingStep is one line of the explanation shown with an answer.
// Kind selects the role; the remaining fields are the payload that role needs.
type WorkingStep struct {
	Kind StepKind

	// Text is the rendered explanation for the step.
	Text string

	// Lines holds extra sub-lines, e.g. each product of an expansion.
	Lines []string

	// Ratio is set on ratio simplification steps.
	Ratio     []string
	DividedBy string

	// Bars is set on bar-model steps.
	Bars []Bar

	// Answer and Unit are set on the final step. Answer equals the
	// question's Answer.
	Answer string
	Unit   string
}

// Step builds a text-only working step.
func Step(kind StepKind, format string, args ...any) WorkingStep {
	return WorkingStep{Kind: kind, Text: fmt.Sprintf(format, args...)}
}

// Final builds the closing step that restates the answer.
func Final(answer, unit string) WorkingStep {
	return WorkingStep{Kind: StepFinal, Answer: answer, Unit: unit}
}

// Question is a generated question ready for display.
type Question struct {
	// Tool is the catalog ID of the tool that produced the question.
	Tool string

	// Display is the prompt shown to the class.
	Display string

	// Answer is the canonical final answer text.
	Answer string

	// Working is the ordered derivation ending with a StepFinal step.
	Working []WorkingStep

	// Values holds the raw generation parameters.
	Values map[string]any

	// Difficulty is the tier that produced the question.
	Difficulty Difficulty

	// Fallback is true when the hardcoded fallback was served.
	Fallback bool
}

// FinalStep returns the last working step when it is a StepFinal.
func (q Question) FinalStep() (WorkingStep, bool) {
	if len(q.Working) == 0 {
		return WorkingStep{}, false
	}
	last := q.Working[len(q.Working)-1]
	return last, last.Kind == StepFinal
}

// GenerationConfig carries the option flags and dropdown selection chosen
// for a tool. Generators treat it as read-only.
type GenerationConfig struct {
	Options  map[string]bool
	Dropdown string
}

// Flag reports whether the named option is switched on.
func (c GenerationConfig) Flag(key string) bool {
	return c.Options[key]
}

// Choice returns the dropdown selection, or def when none is set.
func (c GenerationConfig) Choice(def string) string {
	if c.Dropdown == "" {
		return def
	}
	return c.Dropdown
}

// GenerateInput holds everything a generator needs for one question.
type GenerateInput struct {
	Level  Difficulty
	Config GenerationConfig
}
