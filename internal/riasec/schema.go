package riasec

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON schema for the embedded question catalog.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"options": map[string]any{
			"type":     "array",
			"minItems": 5,
			"maxItems": 5,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"value": map[string]any{
						"type":    "integer",
						"minimum": 0,
						"maximum": 4,
					},
					"label": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
				},
				"required":             []any{"value", "label"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 6,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "string",
						"pattern": "^riasec_[RIASEC]$",
					},
					"category": map[string]any{
						"type": "string",
						"enum": []any{"R", "I", "A", "S", "E", "C"},
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
				},
				"required":             []any{"id", "category", "prompt"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"options", "questions"},
	"additionalProperties": false,
}

// validateCatalogSchema validates the raw catalog document against
// catalogSchema. Structural cross-field checks live in validate.go.
func validateCatalogSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://catalog.json"
	if err := c.AddResource(schemaURL, catalogSchema); err != nil {
		return fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
