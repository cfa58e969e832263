package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildJSONSchema returns a JSON-Schema (draft 2020-12 subset) for a
// normalized record of the given schema version, as a generic map. Every
// field is a required non-empty string and no extra keys are allowed.
func BuildJSONSchema(s Schema) map[string]any {
	props := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		props[f] = map[string]any{"type": "string", "minLength": 1}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             s.Fields(),
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// Validate checks that rec is a total record for schema s: exactly the
// recognized field names, every value non-empty.
func (s Schema) Validate(rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return ValidateJSONAgainstSchema(BuildJSONSchema(s), b)
}
