package catalog

// seedChallenges returns the built-in challenge set.
// IDs are stable: attempts, calibration records and reference answers key
// on them, so renaming an ID orphans its history.
func seedChallenges() []Challenge {
	return []Challenge{
		{
			ID:            "bool-golang-basic",
			Title:         "Find Go engineers on LinkedIn",
			Prompt:        "Write a Boolean search string to find senior Go engineers in Berlin open to fintech roles. Target LinkedIn profiles.",
			SkillCategory: CategoryBooleanSearch,
			Difficulty:    DifficultyBeginner,
			Rubric: Rubric{Criteria: []Criterion{
				{Name: "Core skill terms", MaxPoints: 25},
				{Name: "Synonym coverage", MaxPoints: 25},
				{Name: "Location targeting", MaxPoints: 20},
				{Name: "Operator correctness", MaxPoints: 20},
				{Name: "Noise exclusion", MaxPoints: 10},
			}},
			Rules: ValidationRules{
				RequiredKeywords: []string{"golang", "berlin"},
				BonusKeywords:    []string{"fintech", "senior", "backend"},
				StructurePatterns: []StructurePattern{
					{Name: "has_or_group", Pattern: `(?i)\(.*\bOR\b.*\)`},
					{Name: "has_quoted_phrase", Pattern: `"[^"]+"`},
					{Name: "has_and_operator", Pattern: `(?i)\bAND\b`},
				},
				MinLength: 20,
				MaxLength: 600,
			},
			ExampleSolution: `("golang" OR "go developer" OR "go engineer") AND ("berlin" OR "germany") AND ("senior" OR "staff") AND (fintech OR payments OR banking) -junior -intern`,
		},
		{
			ID:            "bool-xray-github",
			Title:         "X-ray GitHub for ML engineers",
			Prompt:        "Write an X-ray (site:) search to surface machine learning engineers on GitHub who work with PyTorch and have public email addresses.",
			SkillCategory: CategoryBooleanSearch,
			Difficulty:    DifficultyAdvanced,
			Rubric: Rubric{Criteria: []Criterion{
				{Name: "Site operator usage", MaxPoints: 25},
				{Name: "Skill signal targeting", MaxPoints: 25},
				{Name: "Contact discovery", MaxPoints: 20},
				{Name: "Precision filters", MaxPoints: 20},
				{Name: "Query economy", MaxPoints: 10},
			}},
			Rules: ValidationRules{
				RequiredKeywords: []string{"site:github.com", "pytorch"},
				BonusKeywords:    []string{"machine learning", "gmail.com", "-inurl"},
				StructurePatterns: []StructurePattern{
					{Name: "has_site_operator", Pattern: `(?i)site:\S+`},
					{Name: "has_quoted_phrase", Pattern: `"[^"]+"`},
					{Name: "has_exclusion", Pattern: `-\w+`},
				},
				MinLength: 20,
				MaxLength: 600,
			},
			ExampleSolution: `site:github.com "pytorch" ("machine learning" OR "deep learning") ("gmail.com" OR "contact") -inurl:issues -inurl:topics`,
		},
		{
			ID:            "outreach-passive-dev",
			Title:         "First touch to a passive engineer",
			Prompt:        "Write a first outreach message to a staff engineer at a competitor who has not applied anywhere in four years. You have her GitHub profile and one conference talk.",
			SkillCategory: CategoryOutreach,
			Difficulty:    DifficultyIntermediate,
			Rubric: Rubric{Criteria: []Criterion{
				{Name: "Personalization", MaxPoints: 30},
				{Name: "Value proposition", MaxPoints: 25},
				{Name: "Clear call to action", MaxPoints: 20},
				{Name: "Brevity and tone", MaxPoints: 15},
				{Name: "Subject line", MaxPoints: 10},
			}},
			Rules: ValidationRules{
				RequiredKeywords: []string{},
				BonusKeywords:    []string{"talk", "github", "your work"},
				ForbiddenPhrases: []string{
					"rockstar", "ninja", "perfect fit", "i came across your profile",
					"exciting opportunity", "competitive salary",
				},
				StructurePatterns: []StructurePattern{
					{Name: "has_question", Pattern: `\?`},
					{Name: "multi_paragraph", Pattern: `(?s)\S\n\s*\n\S`},
				},
				MinLength: 200,
				MaxLength: 1200,
			},
			ExampleSolution: "Subject: Your Kafka ordering talk\n\nHi Dana,\n\nYour QCon talk on partition rebalancing made the rounds on our platform team. The failure modes you described at minute 20 are exactly what we hit scaling our event bus last quarter.\n\nWe're rebuilding that pipeline from scratch and the design lead role is open. No pitch deck, just an hour with the team whiteboarding, if you're curious.\n\nWorth a short call this week?\n\n— Sam",
		},
		{
			ID:            "outreach-reengage",
			Title:         "Re-engage a silver-medal candidate",
			Prompt:        "Write a re-engagement message to a candidate who reached final round eighteen months ago and lost out to an internal hire. A more senior version of the same role is now open.",
			SkillCategory: CategoryOutreach,
			Difficulty:    DifficultyExpert,
			Rubric: Rubric{Criteria: []Criterion{
				{Name: "Acknowledges history", MaxPoints: 30},
				{Name: "New information offered", MaxPoints: 25},
				{Name: "Respectful framing", MaxPoints: 20},
				{Name: "Clear call to action", MaxPoints: 15},
				{Name: "Brevity and tone", MaxPoints: 10},
			}},
			Rules: ValidationRules{
				BonusKeywords: []string{"last time", "since then", "senior"},
				ForbiddenPhrases: []string{
					"perfect fit", "exciting opportunity", "touching base", "circling back",
				},
				StructurePatterns: []StructurePattern{
					{Name: "has_question", Pattern: `\?`},
				},
				MinLength: 150,
				MaxLength: 1200,
			},
			ExampleSolution: "Hi Marcus,\n\nYou were the strongest external candidate we saw for the platform lead role last spring — the offer went internal for org reasons, not on merit, and I said I'd reach out if that changed.\n\nIt has. The team doubled, the internal hire moved up, and the replacement role is scoped a level higher than what you interviewed for.\n\nI'd rather tell you what's different than assume you're interested. Open to fifteen minutes on Thursday?\n\n— Priya",
		},
		{
			ID:            "jd-platform-eng",
			Title:         "Job description: platform engineer",
			Prompt:        "Write a job description for a senior platform engineer at a 40-person startup. It must attract senior candidates without inflating requirements or using biased language.",
			SkillCategory: CategoryJobDescription,
			Difficulty:    DifficultyIntermediate,
			Rubric: Rubric{Criteria: []Criterion{
				{Name: "Role clarity", MaxPoints: 25},
				{Name: "Realistic requirements", MaxPoints: 25},
				{Name: "Inclusive language", MaxPoints: 20},
				{Name: "Compensation transparency", MaxPoints: 15},
				{Name: "Company context", MaxPoints: 15},
			}},
			Rules: ValidationRules{
				RequiredKeywords: []string{"platform"},
				BonusKeywords:    []string{"salary", "remote", "you will"},
				ForbiddenPhrases: []string{
					"rockstar", "ninja", "work hard play hard", "young and dynamic",
					"10+ years", "native english",
				},
				StructurePatterns: []StructurePattern{
					{Name: "has_sections", Pattern: `(?s)\S\n\s*\n\S`},
				},
				MinLength: 400,
				MaxLength: 4000,
			},
			ExampleSolution: "Senior Platform Engineer — Berlin or remote (EU)\n\nWhat you'll do\nOwn the build and deploy pipeline used by eight product teams. Migrate our Nomad workloads to Kubernetes over the next year. Set the paved road, then hold the line on it.\n\nWhat we're looking for\nYou've run production infrastructure for several years and can point at a system you simplified. Go or Python for tooling. Strong opinions on observability, loosely held.\n\nWhat we pay\n€95k–€115k plus 0.2–0.5% equity. Stated because asking you to guess wastes everyone's time.\n\nAbout us\n40 people, series A, logistics software. The platform team is three engineers; you'd be the fourth.",
		},
		{
			ID:            "screen-backend-signal",
			Title:         "Screening questions: backend hire",
			Prompt:        "Write five screening questions for a senior backend engineer phone screen that separate genuine depth from keyword familiarity. Avoid trivia.",
			SkillCategory: CategoryScreening,
			Difficulty:    DifficultyAdvanced,
			Rubric: Rubric{Criteria: []Criterion{
				{Name: "Depth over trivia", MaxPoints: 30},
				{Name: "Follow-up hooks", MaxPoints: 25},
				{Name: "Scenario grounding", MaxPoints: 20},
				{Name: "Coverage breadth", MaxPoints: 15},
				{Name: "Phrasing neutrality", MaxPoints: 10},
			}},
			Rules: ValidationRules{
				BonusKeywords: []string{"trade-off", "why", "walk me through"},
				ForbiddenPhrases: []string{
					"what does acid stand for", "what is the difference between",
				},
				StructurePatterns: []StructurePattern{
					{Name: "numbered_list", Pattern: `(?m)^\s*[1-5][.)]`},
					{Name: "has_question", Pattern: `\?`},
				},
				MinLength: 300,
				MaxLength: 3000,
			},
			ExampleSolution: "1. Walk me through the last production incident you owned end to end. What did the first ten minutes look like?\n2. Tell me about a system you deliberately made less scalable. What did you buy with that trade-off?\n3. Your service's p99 latency doubled overnight with no deploy. Where do you look first, and why there?\n4. Describe a schema migration you ran on a large live table. What could have gone wrong that didn't?\n5. What's a popular architectural pattern you'd argue against for most teams? Make the case.",
		},
	}
}
