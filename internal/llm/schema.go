package llm

// BuildChunkJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We send it to the provider as an output constraint and also
// use it locally to validate the response.
func BuildChunkJSONSchema(allowedLots []string) map[string]any {
	lotProp := map[string]any{"type": "string"}
	if len(allowedLots) > 0 {
		lotProp = map[string]any{"type": "string", "enum": allowedLots}
	}

	finding := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"lot":        lotProp,
			"title":      map[string]any{"type": "string", "minLength": 1},
			"content":    map[string]any{"type": "string", "minLength": 1},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"lot", "title", "content"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"findings": map[string]any{"type": "array", "items": finding},
			"summary":  map[string]any{"type": "string"},
		},
		"required": []string{"findings"},
	}
}

// BuildGeneralInfoJSONSchema constrains the project-metadata pass.
func BuildGeneralInfoJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"project_name": map[string]any{"type": "string"},
			"client_name":  map[string]any{"type": "string"},
			"budget_ht":    map[string]any{"type": "number", "minimum": 0},
			"deadline":     map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		},
	}
}
