package tools

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathtools/internal/circle"
	"github.com/abhisek/mathtools/internal/problemgen"
)

func TestGet_Exists(t *testing.T) {
	tool, err := Get(RatioShare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tool.Name != "Sharing in a Ratio" {
		t.Errorf("got name %q, want %q", tool.Name, "Sharing in a Ratio")
	}
	if tool.Topic != TopicRatio {
		t.Errorf("got topic %q, want %q", tool.Topic, TopicRatio)
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("nonexistent")
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("got %v, want ErrUnknownTool", err)
	}
}

func TestAll_Count(t *testing.T) {
	if got := len(All()); got != 10 {
		t.Errorf("got %d tools, want 10", got)
	}
	if got := len(IDs()); got != 10 {
		t.Errorf("got %d ids, want 10", got)
	}
}

func TestByTopic(t *testing.T) {
	tests := []struct {
		topic Topic
		want  int
	}{
		{TopicRatio, 5},
		{TopicAlgebra, 2},
		{TopicGeometry, 3},
	}
	for _, tt := range tests {
		if got := len(ByTopic(tt.topic)); got != tt.want {
			t.Errorf("ByTopic(%q): got %d tools, want %d", tt.topic, got, tt.want)
		}
	}
}

func TestValidate_Catalog(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
}

func TestValidateTools_Problems(t *testing.T) {
	bad := []Tool{
		{ID: "a", Name: "A", Topic: TopicRatio, New: func() problemgen.Generator { return nil }},
		{ID: "a", Topic: TopicRatio, Dropdown: &Dropdown{Key: "k", Options: []Choice{{Value: "x"}}, Default: "y"}},
	}
	err := validateTools(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{
		`duplicate tool ID: "a"`,
		`tool "a" has no name`,
		`tool "a" has no generator`,
		`dropdown default "y" is not an option`,
		`topic "algebra" has no tools`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}
}

func TestLevelSettings_HideNumerical(t *testing.T) {
	tool, _ := Get(RatioKnown)
	if !tool.HasVariable(problemgen.Level2, "numerical") {
		t.Error("numerical should be offered at level 2")
	}
	if tool.HasVariable(problemgen.Level3, "numerical") {
		t.Error("numerical should be hidden at level 3")
	}
	cfg := tool.DefaultConfig(problemgen.Level3)
	if len(cfg.Options) != 0 {
		t.Errorf("level 3 options = %v, want none", cfg.Options)
	}
	if cfg.Dropdown != "mixed" {
		t.Errorf("dropdown default = %q, want mixed", cfg.Dropdown)
	}
}

func TestDropdownNext(t *testing.T) {
	tool, _ := Get(CircleSector)
	d := tool.DropdownFor(problemgen.Level1)
	got := []string{}
	v := d.Default
	for range len(d.Options) {
		v = d.Next(v)
		got = append(got, v)
	}
	want := "area,arcLength,perimeter,mixed"
	if strings.Join(got, ",") != want {
		t.Errorf("cycle = %v, want %s", got, want)
	}
}

func TestTopicDisplayName(t *testing.T) {
	for _, topic := range AllTopics() {
		if TopicDisplayName(topic) == string(topic) {
			t.Errorf("topic %q has no display name", topic)
		}
	}
}

func TestDropdownChoiceLabel(t *testing.T) {
	tool, err := Get(CircleSector)
	if err != nil {
		t.Fatal(err)
	}
	d := tool.DropdownFor(problemgen.Level1)
	if got := d.ChoiceLabel(circle.StyleArcLength); got != "Arc length" {
		t.Errorf("expected Arc length, got %q", got)
	}
	if got := d.ChoiceLabel("volume"); got != "volume" {
		t.Errorf("expected unknown value echoed, got %q", got)
	}
}
