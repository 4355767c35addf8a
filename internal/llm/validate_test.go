package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "validate-test",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"selected_ids": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
					"maxItems": 2,
				},
			},
			"required":             []any{"selected_ids"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"selected_ids": ["a", "b"]}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateResponse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required field", `{}`},
		{"wrong item count", `{"selected_ids": ["a"]}`},
		{"wrong item type", `{"selected_ids": [1, 2]}`},
		{"extra property", `{"selected_ids": ["a", "b"], "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Errorf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{not json`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}
