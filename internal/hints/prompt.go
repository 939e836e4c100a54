package hints

import (
	"fmt"
	"strings"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

const hintSystemPrompt = `You are an experienced recruiting coach. A trainee is working on a sourcing challenge and asked for a hint. Help them find the answer themselves; never hand over a complete solution.`

func buildHintUserMessage(input Input) string {
	var b strings.Builder
	ch := input.Challenge

	b.WriteString(fmt.Sprintf("Challenge: %s\n", ch.Title))
	b.WriteString(fmt.Sprintf("Skill: %s\n", catalog.CategoryDisplayName(ch.SkillCategory)))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", ch.Difficulty))
	b.WriteString(fmt.Sprintf("\nTask:\n%s\n", ch.Prompt))

	b.WriteString("\nRubric:\n")
	for _, cr := range ch.Rubric.Criteria {
		b.WriteString(fmt.Sprintf("- %s (%d pts)\n", cr.Name, cr.MaxPoints))
	}

	if input.Draft != "" {
		b.WriteString(fmt.Sprintf("\nTrainee's draft so far:\n%s\n", input.Draft))
	}

	switch input.Level {
	case 1:
		b.WriteString(`
Instructions:
Give a gentle nudge. Point at the general area the trainee should think about without naming specific techniques or terms. 2-3 sentences.`)
	case 2:
		b.WriteString(`
Instructions:
Name the rubric criterion the trainee is most likely missing and describe the technique that addresses it. Do not write any part of the answer for them. 2-4 sentences.`)
	default:
		b.WriteString(`
Instructions:
Show a concrete partial approach: one fragment or pattern they can build on, covering at most one rubric criterion. Leave the rest of the work to them. 2-4 sentences.`)
	}

	b.WriteString("\nSet focus to the rubric criterion your hint targets, copied verbatim.")
	return b.String()
}
