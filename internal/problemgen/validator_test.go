package problemgen

import (
	"log/slog"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{"structural", "working", "level"}
	if len(cfg.Validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func validQuestion() Question {
	return Question{
		Display:    "6:9",
		Answer:     "2:3",
		Working:    []WorkingStep{{Kind: StepOriginal, Ratio: []string{"6", "9"}}, {Kind: StepFinal, Ratio: []string{"2", "3"}, Answer: "2:3"}},
		Values:     map[string]any{},
		Difficulty: Level1,
	}
}

func TestValidators(t *testing.T) {
	in := GenerateInput{Level: Level1}
	tests := []struct {
		name      string
		mutate    func(q *Question)
		validator string
	}{
		{"valid", func(q *Question) {}, ""},
		{"empty display", func(q *Question) { q.Display = " " }, "structural"},
		{"empty answer", func(q *Question) { q.Answer = "" }, "structural"},
		{"nil values", func(q *Question) { q.Values = nil }, "structural"},
		{"bad difficulty", func(q *Question) { q.Difficulty = "level9" }, "structural"},
		{"no working", func(q *Question) { q.Working = nil }, "working"},
		{"final mismatch", func(q *Question) { q.Working[1].Answer = "3:2" }, "working"},
		{"ratio mismatch", func(q *Question) { q.Working[1].Ratio = []string{"3", "2"} }, "working"},
		{"wrong level", func(q *Question) { q.Difficulty = Level2 }, "level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			verr := RunValidators(DefaultConfig().Validators, &q, in)
			switch {
			case tt.validator == "" && verr != nil:
				t.Errorf("unexpected failure: %v", verr)
			case tt.validator != "" && verr == nil:
				t.Errorf("expected %q failure, got nil", tt.validator)
			case tt.validator != "" && verr.Validator != tt.validator:
				t.Errorf("expected %q failure, got %v", tt.validator, verr)
			}
		})
	}
}

func TestWithValidation_ServesFallback(t *testing.T) {
	g := WithValidation(&brokenGen{counterGen{space: 10}}, DefaultConfig(), slog.New(slog.DiscardHandler))
	q := g.Generate(NewRand(1), GenerateInput{Level: Level3})
	if !q.Fallback {
		t.Fatal("expected fallback question")
	}
	if q.Answer != "0" || q.Difficulty != Level3 {
		t.Errorf("unexpected fallback %+v", q)
	}
}

func TestWithLogging_SetsTool(t *testing.T) {
	g := WithLogging(&counterGen{space: 10}, "demo", slog.New(slog.DiscardHandler))
	if q := g.Generate(NewRand(1), GenerateInput{Level: Level1}); q.Tool != "demo" {
		t.Errorf("got tool %q, want demo", q.Tool)
	}
	if q := g.Fallback(GenerateInput{Level: Level1}); q.Tool != "demo" {
		t.Errorf("got fallback tool %q, want demo", q.Tool)
	}
}
