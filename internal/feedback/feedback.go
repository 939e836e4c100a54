// Package feedback composes the final HTML feedback document. Block
// order is fixed: warnings come before celebratory content, and every
// plain-text input is escaped and paragraph-wrapped, so the output is
// always well-formed HTML regardless of which blocks are present.
package feedback

import (
	"fmt"
	"html"
	"strings"

	"github.com/ssanyal/recruitdojo/internal/difficulty"
	"github.com/ssanyal/recruitdojo/internal/peers"
)

// RubricRow is one reconciled rubric line for display.
type RubricRow struct {
	Name      string
	Points    float64
	MaxPoints int
	Reasoning string
}

// Report carries every block the composer may render. Empty fields are
// skipped; the remaining blocks always render in the same order.
type Report struct {
	Score int

	// RiskWarning and ContextAdjustment render first: a player must see
	// a gaming flag before any praise.
	RiskWarning       string
	ContextAdjustment string

	// CoachHTML is the judge's prose feedback, already an HTML fragment
	// constrained by the response schema.
	CoachHTML string

	MultiReferenceNote string
	EnsembleNote       string

	RubricRows []RubricRow

	CalibrationNote string
	HintPenaltyNote string

	PeerStats *peers.Stats
	// CategoryStats ranks the score across the whole skill category;
	// CategoryLabel is the category's display name.
	CategoryStats *peers.Stats
	CategoryLabel string

	HistoryNote   string
	ClusterNote   string
	SpacedRepNote string
	XPEarned      int

	Transition *difficulty.Transition
}

// celebrationThreshold is the score at which the celebration block renders.
const celebrationThreshold = 85

// Compose renders the report to HTML.
func Compose(r *Report) string {
	var b strings.Builder

	writePara := func(class, text string) {
		if text == "" {
			return
		}
		for _, para := range strings.Split(text, "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}
			fmt.Fprintf(&b, "<p class=%q>%s</p>\n", class, html.EscapeString(para))
		}
	}

	writePara("risk-warning", r.RiskWarning)
	writePara("context-adjustment", r.ContextAdjustment)

	if r.CoachHTML != "" {
		b.WriteString(`<div class="coach">`)
		b.WriteString(r.CoachHTML)
		b.WriteString("</div>\n")
	}

	writePara("reference-note", r.MultiReferenceNote)
	writePara("ensemble-note", r.EnsembleNote)

	if len(r.RubricRows) > 0 {
		b.WriteString(`<ul class="rubric">` + "\n")
		for _, row := range r.RubricRows {
			fmt.Fprintf(&b, "<li><strong>%s</strong>: %.1f/%d", html.EscapeString(row.Name), row.Points, row.MaxPoints)
			if row.Reasoning != "" {
				fmt.Fprintf(&b, " &mdash; %s", html.EscapeString(row.Reasoning))
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")
	}

	writePara("calibration-note", r.CalibrationNote)
	writePara("hint-penalty", r.HintPenaltyNote)

	if r.Score >= celebrationThreshold {
		fmt.Fprintf(&b, "<p class=%q>Outstanding work! A score of %d puts this among your best submissions.</p>\n",
			"celebration", r.Score)
	}

	if st := r.PeerStats; st != nil {
		fmt.Fprintf(&b,
			"<p class=%q>You scored in the top %d%% of %d attempts (rank %d, peer average %.0f).</p>\n",
			"peer-comparison", st.TopPercent, st.SampleSize, st.Rank, st.Mean)
	}

	if st := r.CategoryStats; st != nil {
		fmt.Fprintf(&b,
			"<p class=%q>Across %d %s attempts overall you rank in the top %d%% (average %.0f).</p>\n",
			"category-comparison", st.SampleSize, html.EscapeString(r.CategoryLabel), st.TopPercent, st.Mean)
	}

	writePara("history", r.HistoryNote)
	writePara("clustering", r.ClusterNote)

	if r.SpacedRepNote != "" || r.XPEarned > 0 {
		note := r.SpacedRepNote
		if r.XPEarned > 0 {
			if note != "" {
				note += " "
			}
			note += fmt.Sprintf("You earned %d XP.", r.XPEarned)
		}
		writePara("spaced-rep", note)
	}

	if tr := r.Transition; tr != nil {
		if tr.Promotion {
			writePara("difficulty-transition",
				fmt.Sprintf("You're ready for %s challenges — promoted from %s.", tr.To, tr.From))
		} else {
			writePara("difficulty-transition",
				fmt.Sprintf("Consider stepping back to %s challenges to rebuild momentum.", tr.To))
		}
	}

	return b.String()
}
