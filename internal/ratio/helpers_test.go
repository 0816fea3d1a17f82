package ratio

import (
	"testing"

	"github.com/abhisek/mathtools/internal/problemgen"
)

type validatedGenerator interface {
	problemgen.Generator
	problemgen.ValidatorProvider
}

func requireValid(t *testing.T, g validatedGenerator, q problemgen.Question, in problemgen.GenerateInput) {
	t.Helper()
	vs := append(problemgen.DefaultConfig().Validators, g.Validators()...)
	if verr := problemgen.RunValidators(vs, &q, in); verr != nil {
		t.Fatalf("question %q failed validation: %v", q.Display, verr)
	}
}

func input(level problemgen.Difficulty, dropdown string, options ...string) problemgen.GenerateInput {
	opts := map[string]bool{}
	for _, o := range options {
		opts[o] = true
	}
	return problemgen.GenerateInput{Level: level, Config: problemgen.GenerationConfig{Options: opts, Dropdown: dropdown}}
}

const seeds = 200
