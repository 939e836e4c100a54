package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssanyal/recruitdojo/internal/peers"
)

var statsChallengeCmd = &cobra.Command{
	Use:   "challenge <challenge-id>",
	Short: "Show the score distribution for a challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		scores, err := st.Attempts().ChallengeScores(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load scores: %w", err)
		}
		if len(scores) < peers.MinChallengeSamples {
			fmt.Printf("Not enough attempts yet (%d of %d needed).\n", len(scores), peers.MinChallengeSamples)
			return nil
		}

		// Compare against the median-ish midpoint just to materialize the
		// distribution summary; the rank fields are ignored here.
		ps := peers.Compare(scores[len(scores)/2], scores, peers.MinChallengeSamples)
		fmt.Printf("Attempts: %d\n", ps.SampleSize)
		fmt.Printf("Mean:     %.1f   StdDev: %.1f\n", ps.Mean, ps.StdDev)
		fmt.Printf("P10: %.0f   P25: %.0f   P75: %.0f   P90: %.0f\n", ps.P10, ps.P25, ps.P75, ps.P90)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a player's attempts and peer standing",
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

		attempts, err := st.Attempts().ByPlayer(ctx, player.ID)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}

		fmt.Printf("Player: %s   XP: %d   Attempts: %d\n", player.Name, player.XP, len(attempts))
		if len(attempts) == 0 {
			return nil
		}

		fmt.Println(strings.Repeat("─", 84))
		fmt.Printf("%-24s  %-12s  %5s  %4s  %-8s  %s\n",
			"Challenge", "Difficulty", "Score", "Conf", "Risk", "Peers")
		fmt.Println(strings.Repeat("─", 84))

		for _, a := range attempts {
			peerCol := "—"
			if scores, err := st.Attempts().ChallengeScores(ctx, a.ChallengeID); err == nil {
				if ps := peers.Compare(a.FinalScore, scores, peers.MinChallengeSamples); ps != nil {
					peerCol = fmt.Sprintf("top %d%% of %d", ps.TopPercent, ps.SampleSize)
				}
			}
			risk := a.RiskLevel
			if risk == "" {
				risk = "none"
			}
			fmt.Printf("%-24s  %-12s  %5d  %3d%%  %-8s  %s\n",
				a.ChallengeID, a.Difficulty, a.FinalScore, a.Confidence, risk, peerCol)
		}
		return nil
	},
}

func init() {
	statsCmd.AddCommand(statsChallengeCmd)
}
