package problemgen

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"1", Level1},
		{"level2", Level2},
		{"L3", Level3},
		{"Level 1", Level1},
		{" 2 ", Level2},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDifficulty_Invalid(t *testing.T) {
	for _, in := range []string{"", "4", "hard", "level0"} {
		_, err := ParseDifficulty(in)
		if !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("ParseDifficulty(%q): expected ErrInvalidDifficulty, got %v", in, err)
		}
	}
}

func TestDifficultyLabel(t *testing.T) {
	if Level2.Label() != "Level 2" {
		t.Errorf("got %q", Level2.Label())
	}
	if Difficulty("x").Valid() {
		t.Error("unexpected valid difficulty")
	}
}

func TestFinalStep(t *testing.T) {
	q := Question{Working: []WorkingStep{Step(StepGiven, "d = %d", 10), Final("31.4", "cm")}}
	final, ok := q.FinalStep()
	if !ok || final.Answer != "31.4" || final.Unit != "cm" {
		t.Errorf("unexpected final step %+v (ok=%v)", final, ok)
	}
	if _, ok := (Question{}).FinalStep(); ok {
		t.Error("empty working should have no final step")
	}
}

func TestGenerationConfig(t *testing.T) {
	cfg := GenerationConfig{Options: map[string]bool{"numerical": true}}
	if !cfg.Flag("numerical") || cfg.Flag("missing") {
		t.Error("unexpected flag values")
	}
	if cfg.Choice("mixed") != "mixed" {
		t.Error("expected default choice")
	}
	cfg.Dropdown = "total"
	if cfg.Choice("mixed") != "total" {
		t.Error("expected selected choice")
	}
}
