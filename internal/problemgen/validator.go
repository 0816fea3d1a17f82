package problemgen

import "fmt"

// Validator checks a generated question for consistency.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "working", "coprime".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q *Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Config controls which checks run on every generated question.
type Config struct {
	// Validators run in order; the first failure stops the chain and the
	// fallback question is served instead.
	Validators []Validator
}

// DefaultConfig returns the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&WorkingValidator{},
			&LevelValidator{},
		},
	}
}

// RunValidators applies vs in order and returns the first failure.
func RunValidators(vs []Validator, q *Question, in GenerateInput) *ValidationError {
	for _, v := range vs {
		if verr := v.Validate(q, in); verr != nil {
			return verr
		}
	}
	return nil
}
