package problemgen

// MaxAttempts bounds every rejection-sampling loop.
const MaxAttempts = 100

// Generator produces questions for one tool.
type Generator interface {
	// Generate draws a question for the input. It never fails: when the
	// constraints cannot be met within its attempt cap it returns the
	// fallback question with Fallback set.
	Generate(r Rand, in GenerateInput) Question

	// Fallback returns the hardcoded question served on exhaustion.
	Fallback(in GenerateInput) Question

	// Key derives the uniqueness key used while assembling worksheets.
	Key(q Question) string
}

// ValidatorProvider is implemented by generators that contribute their own
// checks to the validation chain.
type ValidatorProvider interface {
	Validators() []Validator
}

// Sample calls draw up to attempts times and returns the first candidate it
// accepts. ok is false when every attempt was rejected.
func Sample[T any](attempts int, draw func() (T, bool)) (T, bool) {
	for range attempts {
		if c, ok := draw(); ok {
			return c, true
		}
	}
	var zero T
	return zero, false
}

// WithFallback marks q as a fallback question for the input's tier.
func WithFallback(q Question, level Difficulty) Question {
	q.Fallback = true
	q.Difficulty = level
	return q
}
