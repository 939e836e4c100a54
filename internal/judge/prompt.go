package judge

import (
	"bytes"
	"text/template"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

const scoringSystemPrompt = `You are an expert recruiting coach evaluating a trainee's submission for a practice exercise. Score it honestly and constructively.

Instructions:
- Score the overall submission 0-100 against the rubric provided.
- Award rubric points per criterion, never exceeding a criterion's maximum.
- Score each fixed dimension 0-100 independently of the rubric.
- List 1-5 concrete strengths and 1-5 concrete improvements.
- Write the prose feedback as a small HTML fragment using only p, ul, li and strong tags.
- Judge the work, not the effort. A polished but wrong submission is still wrong.`

// simplifiedSystemPrompt is used on fallback models after the primary
// fails: shorter instructions reduce the chance a weaker model drifts
// from the response contract.
const simplifiedSystemPrompt = `You are a recruiting coach. Score the trainee's submission 0-100 against the rubric, award per-criterion points without exceeding maximums, score each dimension 0-100, and give 1-5 strengths and 1-5 improvements. Feedback is a small HTML fragment (p, ul, li, strong only).`

type promptData struct {
	Title      string
	Category   string
	Difficulty string
	Prompt     string
	Criteria   []catalog.Criterion
	Submission string
}

var scoringUserTemplate = template.Must(template.New("scoring").Parse(`Exercise: {{.Title}}
Skill: {{.Category}} ({{.Difficulty}})

Task given to the trainee:
{{.Prompt}}

Rubric:
{{range .Criteria}}- {{.Name}} (max {{.MaxPoints}} points)
{{end}}
Trainee's submission:
{{.Submission}}`))

var simplifiedUserTemplate = template.Must(template.New("scoring-simple").Parse(`Exercise: {{.Title}} ({{.Category}}, {{.Difficulty}})

Rubric:
{{range .Criteria}}- {{.Name}} (max {{.MaxPoints}})
{{end}}
Submission:
{{.Submission}}`))

func buildScoringMessage(req *Request, simplified bool) (string, error) {
	data := promptData{
		Title:      req.Challenge.Title,
		Category:   string(req.Challenge.SkillCategory),
		Difficulty: req.Challenge.Difficulty.String(),
		Prompt:     req.Challenge.Prompt,
		Criteria:   req.Challenge.Rubric.Criteria,
		Submission: req.Submission,
	}

	tmpl := scoringUserTemplate
	if simplified {
		tmpl = simplifiedUserTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
