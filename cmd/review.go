package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Show which skills are due for review",
	Long: "Review lists the player's skill memories ordered by review priority:\n" +
		"weak skills first, then overdue ones, discounted by projected memory strength.",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := playerName(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		player, err := st.Players().GetOrCreate(ctx, name)
		if err != nil {
			return fmt.Errorf("look up player: %w", err)
		}

		states, err := st.SkillMemories().ByPlayer(ctx, player.ID)
		if err != nil {
			return fmt.Errorf("load skill memories: %w", err)
		}
		if len(states) == 0 {
			fmt.Println("No skills trained yet. Try a challenge first.")
			return nil
		}

		now := time.Now()
		sort.Slice(states, func(i, j int) bool {
			return states[i].ReviewPriority(now) > states[j].ReviewPriority(now)
		})

		fmt.Printf("%-18s  %-10s  %5s  %-12s  %8s\n",
			"Skill", "Status", "Avg", "Next Review", "Priority")
		fmt.Println(strings.Repeat("─", 62))
		for _, s := range states {
			next := s.NextReview.Format("2006-01-02")
			if s.Due(now) {
				next = "due now"
			}
			fmt.Printf("%-18s  %-10s  %5.0f  %-12s  %8.1f\n",
				s.SkillID, s.Status(), s.AvgScore, next, s.ReviewPriority(now))
		}
		return nil
	},
}
