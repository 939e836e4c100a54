package hints

import "github.com/ssanyal/recruitdojo/internal/llm"

// HintSchema defines the JSON schema for hint generation.
var HintSchema = &llm.Schema{
	Name:        "coaching-hint",
	Description: "A single coaching hint for a recruiter sourcing challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "The hint text shown to the player (2-4 sentences)",
			},
			"focus": map[string]any{
				"type":        "string",
				"description": "The rubric criterion this hint targets, verbatim from the rubric",
			},
		},
		"required":             []any{"hint", "focus"},
		"additionalProperties": false,
	},
}
