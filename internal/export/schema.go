package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

// WorksheetSchema describes an exported Document.
var WorksheetSchema = &Schema{
	Name: "worksheet",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":             map[string]any{"type": "string", "minLength": 36},
			"tool":           map[string]any{"type": "string", "minLength": 1},
			"createdAt":      map[string]any{"type": "string"},
			"differentiated": map[string]any{"type": "boolean"},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 60,
				"items":    itemSchema,
			},
		},
		"required": []any{"id", "tool", "createdAt", "differentiated", "questions"},
	},
}

var itemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"number":   map[string]any{"type": "integer", "minimum": 1},
		"level":    map[string]any{"type": "string", "enum": []any{"level1", "level2", "level3"}},
		"question": map[string]any{"type": "string", "minLength": 1, "maxLength": 500},
		"answer":   map[string]any{"type": "string", "minLength": 1},
		"unit":     map[string]any{"type": "string"},
		"fallback": map[string]any{"type": "boolean"},
		"working": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"kind":  map[string]any{"type": "string", "minLength": 1},
					"text":  map[string]any{"type": "string"},
					"lines": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"ratio": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"bars":  map[string]any{"type": "array"},
				},
				"required": []any{"kind"},
			},
		},
	},
	"required": []any{"number", "level", "question", "answer", "working"},
}

// ErrInvalidDocument indicates a document does not conform to its schema.
type ErrInvalidDocument struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid worksheet document: %v", e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON against the schema.
func Validate(schema *Schema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidDocument{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return &ErrInvalidDocument{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidDocument{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not Go maps with typed slices.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}

// WriteJSON encodes doc, validates it against WorksheetSchema and writes it
// indented to w. Nothing is written when validation fails.
func WriteJSON(w io.Writer, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode worksheet: %w", err)
	}
	if err := Validate(WorksheetSchema, raw); err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("indent worksheet: %w", err)
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}
