package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssanyal/recruitdojo/internal/hints"
)

var hintCmd = &cobra.Command{
	Use:   "hint <challenge-id>",
	Short: "Get a coaching hint for a challenge",
	Long: "Hint asks the AI coach for a progressive hint. Level 1 nudges, level 2 names\n" +
		"the technique, level 3 shows a partial approach. Remember to pass the hints you\n" +
		"used to 'score --hints'; each one costs points.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		draftPath, _ := cmd.Flags().GetString("draft")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ch := a.Catalog.ByID(args[0])
		if ch == nil {
			return fmt.Errorf("unknown challenge %q", args[0])
		}

		var draft string
		if draftPath != "" {
			b, err := os.ReadFile(draftPath)
			if err != nil {
				return fmt.Errorf("read draft: %w", err)
			}
			draft = string(b)
		}

		h, err := a.Hints.Generate(cmd.Context(), hints.Input{
			Challenge: ch,
			Level:     level,
			Draft:     draft,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Hint (level %d/%d)", h.Level, hints.MaxLevel)
		if h.Focus != "" {
			fmt.Printf(" (focus: %s)", h.Focus)
		}
		fmt.Println()
		fmt.Println()
		fmt.Println(h.Text)
		return nil
	},
}

func init() {
	hintCmd.Flags().Int("level", 1, "Hint strength, 1 (nudge) to 3 (partial approach)")
	hintCmd.Flags().String("draft", "", "File with your work so far, for a targeted hint")
}
