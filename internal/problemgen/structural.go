package problemgen

import "strings"

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(q.Display) == "" {
		return &ValidationError{Validator: v.Name(), Message: "display is empty"}
	}
	if len(q.Display) > 500 {
		return &ValidationError{Validator: v.Name(), Message: "display exceeds 500 characters"}
	}
	if strings.TrimSpace(q.Answer) == "" {
		return &ValidationError{Validator: v.Name(), Message: "answer is empty"}
	}
	if q.Values == nil {
		return &ValidationError{Validator: v.Name(), Message: "values are missing"}
	}
	if !q.Difficulty.Valid() {
		return &ValidationError{Validator: v.Name(), Message: "difficulty must be level1, level2 or level3"}
	}
	return nil
}

// WorkingValidator checks that the working trace ends with a final step
// restating the answer.
type WorkingValidator struct{}

func (v *WorkingValidator) Name() string { return "working" }

func (v *WorkingValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	final, ok := q.FinalStep()
	if !ok {
		return &ValidationError{Validator: v.Name(), Message: "working does not end with a final step"}
	}
	if final.Answer != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "final step " + quote(final.Answer) + " does not match answer " + quote(q.Answer),
		}
	}
	if len(final.Ratio) > 0 && strings.Join(final.Ratio, ":") != q.Answer {
		return &ValidationError{Validator: v.Name(), Message: "final ratio does not match answer"}
	}
	return nil
}

// LevelValidator checks the question is tagged with the requested tier.
type LevelValidator struct{}

func (v *LevelValidator) Name() string { return "level" }

func (v *LevelValidator) Validate(q *Question, in GenerateInput) *ValidationError {
	if q.Difficulty != in.Level {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question tagged " + string(q.Difficulty) + ", requested " + string(in.Level),
		}
	}
	return nil
}

func quote(s string) string { return `"` + s + `"` }
