package feedback

import (
	"strings"
	"testing"

	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/difficulty"
	"github.com/ssanyal/recruitdojo/internal/peers"
)

func fullReport() *Report {
	return &Report{
		Score:              91,
		RiskWarning:        "Parts of this read like the example solution.",
		ContextAdjustment:  "Penalty reduced: matches your established style.",
		CoachHTML:          "<p>Strong boolean structure.</p>",
		MultiReferenceNote: "Compared against 6 reference answers.",
		EnsembleNote:       "Two models agreed on this score.",
		RubricRows: []RubricRow{
			{Name: "keyword coverage", Points: 35, MaxPoints: 40, Reasoning: "solid synonyms"},
		},
		CalibrationNote: "Score raised by 3 points toward the difficulty benchmark.",
		HintPenaltyNote: "2 points deducted for the hint you used.",
		PeerStats:       &peers.Stats{TopPercent: 10, SampleSize: 40, Rank: 4, Mean: 68},
		CategoryStats:   &peers.Stats{TopPercent: 15, SampleSize: 120, Mean: 64},
		CategoryLabel:   "Boolean Search",
		HistoryNote:     "Your outreach scores have climbed 12 points this month.",
		ClusterNote:     "Screening remains your weakest skill cluster.",
		SpacedRepNote:   "Next review of boolean-search in 8 days.",
		XPEarned:        120,
		Transition: &difficulty.Transition{
			From:      catalog.DifficultyBeginner,
			To:        catalog.DifficultyIntermediate,
			Promotion: true,
		},
	}
}

func TestComposeBlockOrder(t *testing.T) {
	out := Compose(fullReport())

	markers := []string{
		"risk-warning",
		"context-adjustment",
		`class="coach"`,
		"reference-note",
		"ensemble-note",
		`class="rubric"`,
		"calibration-note",
		"hint-penalty",
		"celebration",
		"peer-comparison",
		"category-comparison",
		"history",
		"clustering",
		"spaced-rep",
		"difficulty-transition",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		if idx < 0 {
			t.Fatalf("block %q missing from output:\n%s", m, out)
		}
		if idx <= last {
			t.Errorf("block %q out of order", m)
		}
		last = idx
	}
}

func TestComposeWarningBeforeCelebration(t *testing.T) {
	out := Compose(&Report{Score: 95, RiskWarning: "flagged"})
	if strings.Index(out, "risk-warning") > strings.Index(out, "celebration") {
		t.Error("the warning must precede the celebration")
	}
}

func TestComposeEscapesPlainText(t *testing.T) {
	out := Compose(&Report{
		Score:       50,
		HistoryNote: `You beat your "best" score & <script>alert(1)</script>`,
	})
	if strings.Contains(out, "<script>") {
		t.Fatal("plain text must be escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") || !strings.Contains(out, "&amp;") {
		t.Errorf("missing escapes:\n%s", out)
	}
}

func TestComposeCoachHTMLPassesThrough(t *testing.T) {
	out := Compose(&Report{Score: 50, CoachHTML: "<p><strong>Good</strong> work.</p>"})
	if !strings.Contains(out, "<strong>Good</strong>") {
		t.Error("schema-constrained coach HTML should not be escaped")
	}
}

func TestComposeParagraphWrapping(t *testing.T) {
	out := Compose(&Report{Score: 50, HistoryNote: "First paragraph.\n\nSecond paragraph."})
	if strings.Count(out, "<p") != 2 {
		t.Errorf("want two paragraphs:\n%s", out)
	}
}

func TestComposeCelebrationThreshold(t *testing.T) {
	if out := Compose(&Report{Score: 84}); strings.Contains(out, "celebration") {
		t.Error("no celebration below the threshold")
	}
	if out := Compose(&Report{Score: 85}); !strings.Contains(out, "celebration") {
		t.Error("celebration expected at 85")
	}
}

func TestComposeEmptyBlocksSkipped(t *testing.T) {
	out := Compose(&Report{Score: 40})
	if out != "" {
		t.Errorf("empty report should render nothing, got:\n%s", out)
	}
}

func TestComposeXPOnly(t *testing.T) {
	out := Compose(&Report{Score: 40, XPEarned: 55})
	if !strings.Contains(out, "55 XP") {
		t.Errorf("XP note missing:\n%s", out)
	}
}

func TestComposeDemotionWording(t *testing.T) {
	out := Compose(&Report{
		Score: 30,
		Transition: &difficulty.Transition{
			From: catalog.DifficultyAdvanced,
			To:   catalog.DifficultyIntermediate,
		},
	})
	if !strings.Contains(out, "stepping back to intermediate") {
		t.Errorf("demotion wording missing:\n%s", out)
	}
}
