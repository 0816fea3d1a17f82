package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/abhisek/mathtools/internal/problemgen"
)

func sampleQuestions() []problemgen.Question {
	return []problemgen.Question{
		{
			Tool:    "ratio-simplify",
			Display: "6:9",
			Answer:  "2:3",
			Working: []problemgen.WorkingStep{
				{Kind: problemgen.StepOriginal, Ratio: []string{"6", "9"}},
				{Kind: problemgen.StepDivide, Ratio: []string{"2", "3"}, DividedBy: "3"},
				{Kind: problemgen.StepFinal, Ratio: []string{"2", "3"}, Answer: "2:3"},
			},
			Values:     map[string]any{},
			Difficulty: problemgen.Level1,
		},
		{
			Tool:    "circle-area",
			Display: "A circle has radius 5 cm. Find the area.",
			Answer:  "78.6",
			Working: []problemgen.WorkingStep{
				problemgen.Step(problemgen.StepFormula, "Area = πr²"),
				problemgen.Final("78.6", "cm²"),
			},
			Values:     map[string]any{},
			Difficulty: problemgen.Level2,
		},
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("ratio-simplify", sampleQuestions(), true)

	if _, err := uuid.Parse(doc.ID); err != nil {
		t.Fatalf("document id %q is not a UUID: %v", doc.ID, err)
	}
	if doc.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if len(doc.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(doc.Items))
	}
	first := doc.Items[0]
	if first.Number != 1 || first.Level != "level1" || first.Answer != "2:3" {
		t.Errorf("unexpected first item: %+v", first)
	}
	if len(first.Working) != 2 {
		t.Errorf("final step should be dropped from working, got %d steps", len(first.Working))
	}
	if doc.Items[1].Unit != "cm²" {
		t.Errorf("unit = %q, want cm²", doc.Items[1].Unit)
	}
}

func TestWriteJSON_Valid(t *testing.T) {
	var buf bytes.Buffer
	doc := NewDocument("ratio-simplify", sampleQuestions(), false)
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.ID != doc.ID || len(decoded.Items) != 2 {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
	if !strings.HasSuffix(buf.String(), "}\n") {
		t.Error("output should end with a newline")
	}
}

func TestWriteJSON_MissingAnswer(t *testing.T) {
	qs := sampleQuestions()
	qs[1].Answer = ""

	var buf bytes.Buffer
	err := WriteJSON(&buf, NewDocument("circle-area", qs, false))
	if err == nil {
		t.Fatal("expected validation error for empty answer")
	}
	var invErr *ErrInvalidDocument
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidDocument, got %T", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on failure")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"no questions", `{"id":"0b8e5f0c-8d7c-4a4e-9f53-3f2d0b6f4a11","tool":"x","createdAt":"now","differentiated":false,"questions":[]}`},
		{"bad level", `{"id":"0b8e5f0c-8d7c-4a4e-9f53-3f2d0b6f4a11","tool":"x","createdAt":"now","differentiated":false,
			"questions":[{"number":1,"level":"level9","question":"q","answer":"a","working":[]}]}`},
		{"missing tool", `{"id":"0b8e5f0c-8d7c-4a4e-9f53-3f2d0b6f4a11","createdAt":"now","differentiated":false,
			"questions":[{"number":1,"level":"level1","question":"q","answer":"a","working":[]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(WorksheetSchema, json.RawMessage(tt.raw)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCompiledSchema_Cached(t *testing.T) {
	a, err := compiledSchema(WorksheetSchema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	b, err := compiledSchema(WorksheetSchema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if a != b {
		t.Error("expected the cached schema on second call")
	}
}
