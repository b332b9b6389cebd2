package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// VerdictSchema returns the JSON Schema every scoring verdict must
// satisfy, remote or local. The score range matches the 0-10 scale the
// rest of the client assumes.
func VerdictSchema() map[string]any {
	return validationResultSchema
}

// CheckVerdict validates a raw verdict body against VerdictSchema.
func CheckVerdict(raw json.RawMessage) error {
	return validateResultShape(raw)
}

var validationResultSchema = map[string]any{
	"type":     "object",
	"required": []any{"score"},
	"properties": map[string]any{
		"score": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 10,
		},
		"suggestion": map[string]any{
			"type": []any{"string", "null"},
		},
		"corrected_sentence": map[string]any{
			"type": []any{"string", "null"},
		},
	},
}

var (
	compileResultSchema sync.Once
	compiledResult      *jsonschema.Schema
	compileErr          error
)

// validateResultShape checks raw against validationResultSchema.
func validateResultShape(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileResultSchema.Do(func() {
		defBytes, err := json.Marshal(validationResultSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://validation-result.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledResult, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return compileErr
	}

	if err := compiledResult.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
