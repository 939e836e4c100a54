package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssanyal/recruitdojo/internal/pipeline"
)

var errMissingPlayer = errors.New("a player name is required: pass --player")

var scoreCmd = &cobra.Command{
	Use:   "score <challenge-id> [file]",
	Short: "Score a submission for a challenge",
	Long: "Score reads the submission from the given file (or stdin) and runs the full\n" +
		"scoring pipeline: validation, AI coaching, peer comparison and feedback.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := playerName(cmd)
		if err != nil {
			return err
		}
		hints, _ := cmd.Flags().GetInt("hints")
		outPath, _ := cmd.Flags().GetString("out")

		text, err := readSubmission(args)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		player, err := a.Store.Players().GetOrCreate(ctx, name)
		if err != nil {
			return fmt.Errorf("look up player: %w", err)
		}

		res, err := a.Pipeline.ScoreSubmission(ctx, pipeline.Request{
			PlayerID:    player.ID,
			ChallengeID: args[0],
			Text:        text,
			Hints:       hints,
		})
		if err != nil {
			var perr *pipeline.Error
			if errors.As(err, &perr) {
				return fmt.Errorf("%s (%s)", perr.Message, perr.Code)
			}
			return err
		}

		fmt.Printf("Score:      %d/100\n", res.Score)
		fmt.Printf("Confidence: %d%%\n", res.Confidence)
		if res.RiskLevel != "" && res.RiskLevel != "none" {
			fmt.Printf("Risk:       %s\n", res.RiskLevel)
		}
		if !res.AIAvailable {
			fmt.Println("AI coach:   unavailable (automated scoring only)")
		} else if res.FallbacksUsed > 0 {
			fmt.Printf("AI coach:   reached after %d fallback(s)\n", res.FallbacksUsed)
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(res.FeedbackHTML), 0o644); err != nil {
				return fmt.Errorf("write feedback: %w", err)
			}
			fmt.Printf("Feedback:   %s\n", outPath)
			return nil
		}
		fmt.Println()
		fmt.Println(res.FeedbackHTML)
		return nil
	},
}

// readSubmission loads the submission text from the optional file
// argument, falling back to stdin.
func readSubmission(args []string) (string, error) {
	if len(args) == 2 {
		b, err := os.ReadFile(args[1])
		if err != nil {
			return "", fmt.Errorf("read submission: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read submission from stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func init() {
	scoreCmd.Flags().Int("hints", 0, "Number of hints used on this attempt")
	scoreCmd.Flags().String("out", "", "Write the HTML feedback to this file instead of stdout")
}
