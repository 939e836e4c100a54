package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/difficulty"
	"github.com/ssanyal/recruitdojo/internal/feedback"
	"github.com/ssanyal/recruitdojo/internal/refstore"
	"github.com/ssanyal/recruitdojo/internal/spacedrep"
)

// XP award parameters.
const (
	xpBase          = 10
	xpScoreDivisor  = 5
	xpHighScoreBand = 85
	xpHighBonus     = 15
)

func xpForScore(score int) int {
	xp := xpBase + score/xpScoreDivisor
	if score >= xpHighScoreBand {
		xp += xpHighBonus
	}
	return xp
}

// enrichment carries the state updates persisted after the response is
// returned. All fields are fully computed before detachment; the
// detached run only writes.
type enrichment struct {
	playerID  int
	log       *zap.Logger
	profile   *difficulty.Profile
	state     *spacedrep.State
	xp        int
	reference *refstore.Reference
}

// prepareEnrichment computes the difficulty, spaced-repetition, history
// and clustering updates in memory so their outcomes can appear in the
// feedback document, leaving only persistence for the detached run.
// Every read failure here degrades to an absent feedback block.
func (s *Service) prepareEnrichment(ctx context.Context, req Request, ch *catalog.Challenge, score int, report *feedback.Report, log *zap.Logger) *enrichment {
	enr := &enrichment{playerID: req.PlayerID, log: log, xp: xpForScore(score)}
	now := s.deps.Now()

	profile, err := s.deps.Profiles.Get(ctx, req.PlayerID, ch.SkillCategory, ch.Difficulty)
	if err != nil {
		log.Warn("difficulty profile unavailable", zap.Error(err))
	} else {
		if profile == nil {
			profile = difficulty.NewProfile(ch.SkillCategory, ch.Difficulty)
		}
		profile.Record(score)
		enr.profile = profile
		report.Transition = profile.Evaluate()
	}

	state, err := s.deps.Memories.Get(ctx, req.PlayerID, string(ch.SkillCategory))
	if err != nil {
		log.Warn("skill memory unavailable", zap.Error(err))
	} else {
		if state == nil {
			state = spacedrep.NewState(string(ch.SkillCategory))
		}
		state.Record(score, now)
		enr.state = state
		report.SpacedRepNote = fmt.Sprintf("Next %s review in %d day(s).",
			catalog.CategoryDisplayName(ch.SkillCategory), state.IntervalDays)
	}

	s.historyNote(ctx, req.PlayerID, report, log)
	s.clusterNote(ctx, req.PlayerID, ch.SkillCategory, report, log)

	return enr
}

// historyNote summarizes the player's past attempts.
func (s *Service) historyNote(ctx context.Context, playerID int, report *feedback.Report, log *zap.Logger) {
	attempts, err := s.deps.Attempts.ByPlayer(ctx, playerID)
	if err != nil {
		log.Warn("attempt history unavailable", zap.Error(err))
		return
	}
	if len(attempts) == 0 {
		return
	}
	sum := 0
	for _, a := range attempts {
		sum += a.FinalScore
	}
	avg := int(math.Round(float64(sum) / float64(len(attempts))))
	report.HistoryNote = fmt.Sprintf(
		"You have completed %d previous challenge(s) with an average score of %d.",
		len(attempts), avg)
}

// clusterNote points at the weakest other skill worth practicing next.
func (s *Service) clusterNote(ctx context.Context, playerID int, current catalog.SkillCategory, report *feedback.Report, log *zap.Logger) {
	states, err := s.deps.Memories.ByPlayer(ctx, playerID)
	if err != nil {
		log.Warn("skill memories unavailable", zap.Error(err))
		return
	}

	var weakest *spacedrep.State
	for _, st := range states {
		if st.SkillID == string(current) || st.Weakness() == spacedrep.WeaknessNone {
			continue
		}
		if weakest == nil || st.AvgScore < weakest.AvgScore {
			weakest = st
		}
	}
	if weakest == nil {
		return
	}
	report.ClusterNote = fmt.Sprintf("Your %s skills could use attention next (average %.0f).",
		catalog.CategoryDisplayName(catalog.SkillCategory(weakest.SkillID)), weakest.AvgScore)
}

// enrich persists the prepared updates in a detached goroutine. Failures
// are logged and swallowed; they never affect the returned result.
func (s *Service) enrich(parent context.Context, enr *enrichment) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), s.cfg.EnrichTimeout)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				enr.log.Warn("enrichment panicked", zap.Any("panic", r))
			}
		}()

		if enr.profile != nil {
			if err := s.deps.Profiles.Save(ctx, enr.playerID, enr.profile); err != nil {
				enr.log.Warn("saving difficulty profile failed", zap.Error(err))
			}
		}
		if enr.state != nil {
			if err := s.deps.Memories.Save(ctx, enr.playerID, enr.state); err != nil {
				enr.log.Warn("saving skill memory failed", zap.Error(err))
			}
		}
		if enr.xp > 0 {
			if err := s.deps.Players.AddXP(ctx, enr.playerID, enr.xp); err != nil {
				enr.log.Warn("awarding xp failed", zap.Error(err))
			}
		}
		if enr.reference != nil {
			err := s.deps.RefStore.Add(ctx, enr.reference)
			switch {
			case errors.Is(err, refstore.ErrDuplicate):
				enr.log.Debug("reference not stored, near-duplicate of an existing one")
			case err != nil:
				enr.log.Warn("storing reference answer failed", zap.Error(err))
			}
		}
	}()
}
