package provider

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildDeliveryNoteSchema returns the expected shape of a delivery-note
// response as a JSON-Schema map. Unknown fields are allowed; projection
// ignores them.
func BuildDeliveryNoteSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"date":                 map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"truck_number":         map[string]any{"type": "string"},
			"delivery_note_number": map[string]any{"type": "string"},
			"odo_start":            map[string]any{"type": "integer"},
			"odo_end":              map[string]any{"type": "integer"},
			"time_start":           map[string]any{"type": "string"},
			"time_end":             map[string]any{"type": "string"},
			"drop_details_odo": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
	}
}

// BuildTollEntrySchema returns the expected shape of one toll transaction.
func BuildTollEntrySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"transaction_date": map[string]any{"type": "string"},
			"tolling_point":    map[string]any{"type": "string"},
			"etag_id":          map[string]any{"type": "string"},
			"net_amount":       map[string]any{"type": "number"},
		},
		"required": []string{"transaction_date", "etag_id"},
	}
}

// ValidateAgainstSchema validates data against schemaMap.
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
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
