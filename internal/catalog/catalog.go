package catalog

import "fmt"

// Catalog is an immutable, validated set of challenges indexed for lookup.
type Catalog struct {
	byID       map[string]*Challenge
	byCategory map[SkillCategory][]*Challenge
	ordered    []*Challenge
}

// New builds a Catalog from the given challenges, validating integrity.
func New(challenges []Challenge) (*Catalog, error) {
	if err := validateChallenges(challenges); err != nil {
		return nil, err
	}

	c := &Catalog{
		byID:       make(map[string]*Challenge, len(challenges)),
		byCategory: make(map[SkillCategory][]*Challenge),
	}
	for i := range challenges {
		ch := &challenges[i]
		c.byID[ch.ID] = ch
		c.byCategory[ch.SkillCategory] = append(c.byCategory[ch.SkillCategory], ch)
		c.ordered = append(c.ordered, ch)
	}
	return c, nil
}

// Default returns the built-in seed catalog.
// Panics on an invalid seed; the seed is static data validated by tests.
func Default() *Catalog {
	c, err := New(seedChallenges())
	if err != nil {
		panic(fmt.Sprintf("invalid seed catalog: %v", err))
	}
	return c
}

// ByID returns the challenge with the given ID, or nil if unknown.
func (c *Catalog) ByID(id string) *Challenge {
	return c.byID[id]
}

// ByCategory returns all challenges in a skill category.
func (c *Catalog) ByCategory(cat SkillCategory) []*Challenge {
	return c.byCategory[cat]
}

// Related returns challenges sharing the given challenge's skill category
// and difficulty, excluding the challenge itself. Used for cross-game
// reference fallback.
func (c *Catalog) Related(id string) []*Challenge {
	ch := c.byID[id]
	if ch == nil {
		return nil
	}
	var out []*Challenge
	for _, other := range c.byCategory[ch.SkillCategory] {
		if other.ID != id && other.Difficulty == ch.Difficulty {
			out = append(out, other)
		}
	}
	return out
}

// All returns every challenge in catalog order.
func (c *Catalog) All() []*Challenge {
	return c.ordered
}
