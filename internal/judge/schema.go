package judge

import "github.com/ssanyal/recruitdojo/internal/llm"

// ScorecardSchema defines the JSON schema for judge scoring responses.
var ScorecardSchema = &llm.Schema{
	Name:        "judge-scorecard",
	Description: "Structured evaluation of a recruiting exercise submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall score for the submission",
			},
			"dimensions": map[string]any{
				"type":        "object",
				"description": "Fixed dimension scores, each 0-100",
				"properties": map[string]any{
					"accuracy":        dimensionSchema("How factually and technically correct the submission is"),
					"completeness":    dimensionSchema("How fully the submission covers what the exercise asked for"),
					"clarity":         dimensionSchema("How clear and well organized the writing is"),
					"creativity":      dimensionSchema("Originality and resourcefulness beyond the obvious approach"),
					"professionalism": dimensionSchema("Tone, polish and suitability for a real candidate or hiring manager"),
				},
				"required":             []any{"accuracy", "completeness", "clarity", "creativity", "professionalism"},
				"additionalProperties": false,
			},
			"skillsRadar": map[string]any{
				"type":        "object",
				"description": "Open-ended skill-to-score map for finer-grained skills observed, each 0-100",
				"additionalProperties": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 100,
				},
			},
			"rubricBreakdown": map[string]any{
				"type":        "object",
				"description": "Per-criterion point awards, keyed by the rubric criterion name",
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"points": map[string]any{
							"type":        "number",
							"minimum":     0,
							"description": "Points awarded for this criterion",
						},
						"maxPoints": map[string]any{
							"type":        "number",
							"minimum":     0,
							"description": "Maximum points this criterion is worth",
						},
						"reasoning": map[string]any{
							"type":        "string",
							"description": "One-sentence justification for the award",
						},
					},
					"required":             []any{"points", "maxPoints", "reasoning"},
					"additionalProperties": false,
				},
			},
			"strengths": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    5,
				"items":       map[string]any{"type": "string"},
				"description": "What the submission did well",
			},
			"improvements": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    5,
				"items":       map[string]any{"type": "string"},
				"description": "Concrete suggestions for improvement",
			},
			"feedbackHtml": map[string]any{
				"type":        "string",
				"description": "Prose coaching feedback as a small HTML fragment (p, ul, li, strong only)",
			},
		},
		"required": []any{
			"score", "dimensions", "skillsRadar", "rubricBreakdown",
			"strengths", "improvements", "feedbackHtml",
		},
		"additionalProperties": false,
	},
}

func dimensionSchema(desc string) map[string]any {
	return map[string]any{
		"type":        "integer",
		"minimum":     0,
		"maximum":     100,
		"description": desc,
	}
}
