package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Recompute score calibration for every challenge",
	Long: "Calibrate recomputes each challenge's score offset from its full attempt\n" +
		"history against the difficulty benchmark. Challenges with too few attempts\n" +
		"keep a neutral record.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		var ids []string
		for _, c := range a.Catalog.All() {
			ids = append(ids, c.ID)
		}

		recs, err := a.Calibration.RecalibrateAll(cmd.Context(), ids)
		if len(recs) > 0 {
			fmt.Printf("%-24s  %7s  %6s  %6s  %s\n", "Challenge", "Samples", "Mean", "Offset", "Review")
			fmt.Println(strings.Repeat("─", 60))
			for _, r := range recs {
				review := ""
				if r.NeedsReview {
					review = "yes"
				}
				fmt.Printf("%-24s  %7d  %6.1f  %+6.0f  %s\n",
					r.ChallengeID, r.SampleCount, r.Mean, r.Offset, review)
			}
		}
		return err
	},
}
