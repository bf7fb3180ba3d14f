package bank

// BankSchema is the JSON schema a question bank payload must satisfy
// before any record is decoded. Cross-field invariants (answer indices
// in range, answer pairs drawn from pairs) are checked separately by
// Question.Validate.
var BankSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type": "string",
				"enum": []any{"single", "multi", "dragdrop"},
			},
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"topic": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answer": map[string]any{
				"oneOf": []any{
					map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "integer"},
					},
					map[string]any{
						"type":  "array",
						"items": pairSchema,
					},
				},
			},
			"pairs": map[string]any{
				"type":  "array",
				"items": pairSchema,
			},
			"learn_link": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"type", "question", "topic", "answer"},
		"additionalProperties": false,
	},
}

var pairSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"left":  map[string]any{"type": "string"},
		"right": map[string]any{"type": "string"},
	},
	"required":             []any{"left", "right"},
	"additionalProperties": false,
}
