package gaming

import (
	"fmt"
	"math"
	"strings"
)

// baselineMinSamples is the attempt count below which a style baseline is
// too thin to justify reducing a penalty.
const baselineMinSamples = 5

// StyleBaseline captures a player's established writing style, built up
// from their past submissions.
type StyleBaseline struct {
	// AvgSentenceLen is the mean words-per-sentence across past work.
	AvgSentenceLen float64
	// AvgWordLen is the mean characters-per-word across past work.
	AvgWordLen float64
	// Samples counts the submissions the baseline was built from.
	Samples int
}

// Observe folds one submission into the baseline as a running mean.
func (b *StyleBaseline) Observe(text string) {
	sl, wl := styleOf(text)
	n := float64(b.Samples)
	b.AvgSentenceLen = (b.AvgSentenceLen*n + sl) / (n + 1)
	b.AvgWordLen = (b.AvgWordLen*n + wl) / (n + 1)
	b.Samples++
}

// adjust reduces the risk score when the submission's style matches the
// player's established baseline: a consistent long-form writer tripping
// the uniformity heuristic is writing like themselves, not pasting. The
// reduction is bounded and always explained.
func (b *StyleBaseline) adjust(text string, risk float64) (float64, string) {
	if b.Samples < baselineMinSamples {
		return risk, ""
	}

	sl, wl := styleOf(text)
	if b.AvgSentenceLen <= 0 || b.AvgWordLen <= 0 {
		return risk, ""
	}

	slDrift := math.Abs(sl-b.AvgSentenceLen) / b.AvgSentenceLen
	wlDrift := math.Abs(wl-b.AvgWordLen) / b.AvgWordLen
	if slDrift > 0.25 || wlDrift > 0.25 {
		return risk, ""
	}

	reduced := math.Max(risk-20, 0)
	reason := fmt.Sprintf(
		"Penalty reduced: this writing style matches your previous %d submissions.", b.Samples)
	return reduced, reason
}

func styleOf(text string) (avgSentenceLen, avgWordLen float64) {
	lengths := sentenceLengths(text)
	if len(lengths) > 0 {
		total := 0
		for _, l := range lengths {
			total += l
		}
		avgSentenceLen = float64(total) / float64(len(lengths))
	}

	words := strings.Fields(text)
	if len(words) > 0 {
		chars := 0
		for _, w := range words {
			chars += len(w)
		}
		avgWordLen = float64(chars) / float64(len(words))
	}
	return avgSentenceLen, avgWordLen
}
