package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "Browse the challenge catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()

		fmt.Printf("%-24s  %-16s  %-12s  %s\n", "ID", "Category", "Difficulty", "Title")
		fmt.Println(strings.Repeat("─", 90))
		for _, c := range allByCategory(cat) {
			fmt.Printf("%-24s  %-16s  %-12s  %s\n",
				c.ID, c.SkillCategory, c.Difficulty, c.Title)
		}
		return nil
	},
}

var challengesShowCmd = &cobra.Command{
	Use:   "show <challenge-id>",
	Short: "Show a challenge prompt and rubric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default().ByID(args[0])
		if c == nil {
			return fmt.Errorf("unknown challenge %q", args[0])
		}

		fmt.Printf("%s (%s, %s)\n", c.Title, catalog.CategoryDisplayName(c.SkillCategory), c.Difficulty)
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(c.Prompt)
		fmt.Println()
		fmt.Println("Rubric:")
		for _, cr := range c.Rubric.Criteria {
			fmt.Printf("  %-28s %d pts\n", cr.Name, cr.MaxPoints)
		}
		return nil
	},
}

// allByCategory returns the catalog grouped in display-category order.
func allByCategory(cat *catalog.Catalog) []*catalog.Challenge {
	var out []*catalog.Challenge
	for _, sc := range catalog.AllCategories() {
		out = append(out, cat.ByCategory(sc)...)
	}
	return out
}

func init() {
	challengesCmd.AddCommand(challengesShowCmd)
}
