package tools

import (
	"github.com/abhisek/mathtools/internal/algebra"
	"github.com/abhisek/mathtools/internal/circle"
	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/ratio"
)

// Tool IDs.
const (
	RatioSimplify       = "ratio-simplify"
	RatioShare          = "ratio-share"
	RatioKnown          = "ratio-known"
	RatioDifference     = "ratio-difference"
	RatioMixed          = "ratio-mixed"
	AlgebraExpand       = "algebra-expand"
	AlgebraSimplify     = "algebra-simplify"
	CircleCircumference = "circle-circumference"
	CircleArea          = "circle-area"
	CircleSector        = "circle-sector"
)

var (
	threePart = Variable{Key: ratio.OptThreePart, Label: "Three-part ratios"}
	numerical = Variable{Key: ratio.OptNumerical, Label: "Numerical method"}

	circleVariables = []Variable{
		{Key: circle.OptAllowDecimals, Label: "Decimal lengths"},
		{Key: circle.OptAnswerInPi, Label: "Answer in terms of π"},
	}

	// Level 3 known-amount and difference questions always use the
	// numerical method.
	numericalOnly = map[problemgen.Difficulty]LevelSettings{
		problemgen.Level3: {Variables: []Variable{}},
	}

	multiplierDropdown = &Dropdown{
		Key:   "multiplierType",
		Label: "Multiplier",
		Options: []Choice{
			{Value: algebra.MultiplierNumerical, Label: "Numerical"},
			{Value: algebra.MultiplierAlgebraic, Label: "Algebraic"},
			{Value: algebra.MultiplierMixed, Label: "Mixed"},
		},
		Default: algebra.MultiplierNumerical,
	}
)

func catalog() []Tool {
	return []Tool{
		{
			ID:          RatioSimplify,
			Name:        "Simplifying Ratios",
			Description: "Write a ratio in its simplest form",
			Topic:       TopicRatio,
			Variables:   []Variable{threePart},
			Dropdown: &Dropdown{
				Key:   "ratioType",
				Label: "Ratio type",
				Options: []Choice{
					{Value: ratio.TypeNumeric, Label: "Numeric"},
					{Value: ratio.TypeAlgebraic, Label: "Algebraic"},
				},
				Default: ratio.TypeNumeric,
			},
			New: func() problemgen.Generator { return ratio.NewSimplify() },
		},
		{
			ID:          RatioShare,
			Name:        "Sharing in a Ratio",
			Description: "Share an amount in a given ratio",
			Topic:       TopicRatio,
			Variables:   []Variable{threePart, numerical},
			Dropdown: &Dropdown{
				Key:   "questionType",
				Label: "Find",
				Options: []Choice{
					{Value: ratio.QuestionMixed, Label: "Mixed"},
					{Value: ratio.QuestionPersonA, Label: "First share"},
					{Value: ratio.QuestionPersonB, Label: "Second share"},
					{Value: ratio.QuestionBoth, Label: "All shares"},
				},
				Default: ratio.QuestionMixed,
			},
			New: func() problemgen.Generator { return ratio.NewShare() },
		},
		{
			ID:          RatioKnown,
			Name:        "Ratio from a Known Amount",
			Description: "Use one share to find the total or the other share",
			Topic:       TopicRatio,
			Variables:   []Variable{numerical},
			Dropdown: &Dropdown{
				Key:   "questionType",
				Label: "Find",
				Options: []Choice{
					{Value: ratio.QuestionMixed, Label: "Mixed"},
					{Value: ratio.QuestionTotal, Label: "Total"},
					{Value: ratio.QuestionOther, Label: "Other share"},
				},
				Default: ratio.QuestionMixed,
			},
			Levels: numericalOnly,
			New:    func() problemgen.Generator { return ratio.NewKnown() },
		},
		{
			ID:          RatioDifference,
			Name:        "Ratio from a Difference",
			Description: "Use the difference between shares to find amounts",
			Topic:       TopicRatio,
			Variables:   []Variable{numerical},
			Dropdown: &Dropdown{
				Key:   "questionType",
				Label: "Find",
				Options: []Choice{
					{Value: ratio.QuestionMixed, Label: "Mixed"},
					{Value: ratio.QuestionTotal, Label: "Total"},
					{Value: ratio.QuestionPersonA, Label: "First share"},
					{Value: ratio.QuestionPersonB, Label: "Second share"},
				},
				Default: ratio.QuestionMixed,
			},
			Levels: numericalOnly,
			New:    func() problemgen.Generator { return ratio.NewDifference() },
		},
		{
			ID:          RatioMixed,
			Name:        "Mixed Ratio Problems",
			Description: "Sharing, known-amount and difference questions together",
			Topic:       TopicRatio,
			Variables:   []Variable{numerical},
			Levels:      numericalOnly,
			New:         func() problemgen.Generator { return ratio.NewMixed() },
		},
		{
			ID:          AlgebraExpand,
			Name:        "Expanding Brackets",
			Description: "Multiply out a single bracket",
			Topic:       TopicAlgebra,
			Dropdown:    multiplierDropdown,
			New:         func() problemgen.Generator { return algebra.NewExpand() },
		},
		{
			ID:          AlgebraSimplify,
			Name:        "Expand and Simplify",
			Description: "Expand two brackets and collect like terms",
			Topic:       TopicAlgebra,
			Dropdown:    multiplierDropdown,
			New:         func() problemgen.Generator { return algebra.NewSimplify() },
		},
		{
			ID:          CircleCircumference,
			Name:        "Circumference",
			Description: "Circumference from a radius or diameter, and back",
			Topic:       TopicGeometry,
			Variables:   circleVariables,
			New:         func() problemgen.Generator { return circle.NewCircumference() },
		},
		{
			ID:          CircleArea,
			Name:        "Area of a Circle",
			Description: "Area from a radius or diameter, and back",
			Topic:       TopicGeometry,
			Variables:   circleVariables,
			New:         func() problemgen.Generator { return circle.NewArea() },
		},
		{
			ID:          CircleSector,
			Name:        "Sectors",
			Description: "Area, arc length and perimeter of sectors",
			Topic:       TopicGeometry,
			Variables:   circleVariables,
			Dropdown: &Dropdown{
				Key:   "sectorStyle",
				Label: "Find",
				Options: []Choice{
					{Value: circle.StyleMixed, Label: "Mixed"},
					{Value: circle.StyleArea, Label: "Area"},
					{Value: circle.StyleArcLength, Label: "Arc length"},
					{Value: circle.StylePerimeter, Label: "Perimeter"},
				},
				Default: circle.StyleMixed,
			},
			New: func() problemgen.Generator { return circle.NewSector() },
		},
	}
}
