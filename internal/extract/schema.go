package extract

// BuildLabelsSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Custom label files are validated against it before they can
// replace the built-in tables.
func BuildLabelsSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"invoice_number_labels": labelList(),
			"date_labels":           labelList(),
			"total_labels":          labelList(),
			"total_exclusions":      labelList(),
			"vendor_labels":         labelList(),
			"company_suffixes":      labelList(),
			"date_order": map[string]any{
				"type": "string",
				"enum": []any{"dayfirst", "monthfirst"},
			},
		},
	}
}

func labelList() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
	}
}
