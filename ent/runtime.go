// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ssanyal/recruitdojo/ent/attempt"
	"github.com/ssanyal/recruitdojo/ent/calibration"
	"github.com/ssanyal/recruitdojo/ent/difficultyprofile"
	"github.com/ssanyal/recruitdojo/ent/llmrequestevent"
	"github.com/ssanyal/recruitdojo/ent/player"
	"github.com/ssanyal/recruitdojo/ent/referenceanswer"
	"github.com/ssanyal/recruitdojo/ent/schema"
	"github.com/ssanyal/recruitdojo/ent/skillmemory"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescAiScore is the schema descriptor for ai_score field.
	attemptDescAiScore := attemptFields[6].Descriptor()
	// attempt.DefaultAiScore holds the default value on creation for the ai_score field.
	attempt.DefaultAiScore = attemptDescAiScore.Default.(int)
	// attemptDescAiAvailable is the schema descriptor for ai_available field.
	attemptDescAiAvailable := attemptFields[7].Descriptor()
	// attempt.DefaultAiAvailable holds the default value on creation for the ai_available field.
	attempt.DefaultAiAvailable = attemptDescAiAvailable.Default.(bool)
	// attemptDescConfidence is the schema descriptor for confidence field.
	attemptDescConfidence := attemptFields[9].Descriptor()
	// attempt.DefaultConfidence holds the default value on creation for the confidence field.
	attempt.DefaultConfidence = attemptDescConfidence.Default.(int)
	// attemptDescRiskLevel is the schema descriptor for risk_level field.
	attemptDescRiskLevel := attemptFields[10].Descriptor()
	// attempt.DefaultRiskLevel holds the default value on creation for the risk_level field.
	attempt.DefaultRiskLevel = attemptDescRiskLevel.Default.(string)
	// attemptDescHintsUsed is the schema descriptor for hints_used field.
	attemptDescHintsUsed := attemptFields[11].Descriptor()
	// attempt.DefaultHintsUsed holds the default value on creation for the hints_used field.
	attempt.DefaultHintsUsed = attemptDescHintsUsed.Default.(int)
	// attemptDescFeedbackHTML is the schema descriptor for feedback_html field.
	attemptDescFeedbackHTML := attemptFields[12].Descriptor()
	// attempt.DefaultFeedbackHTML holds the default value on creation for the feedback_html field.
	attempt.DefaultFeedbackHTML = attemptDescFeedbackHTML.Default.(string)
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[13].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	calibrationFields := schema.Calibration{}.Fields()
	_ = calibrationFields
	// calibrationDescOffset is the schema descriptor for offset field.
	calibrationDescOffset := calibrationFields[1].Descriptor()
	// calibration.DefaultOffset holds the default value on creation for the offset field.
	calibration.DefaultOffset = calibrationDescOffset.Default.(float64)
	// calibrationDescSampleCount is the schema descriptor for sample_count field.
	calibrationDescSampleCount := calibrationFields[2].Descriptor()
	// calibration.DefaultSampleCount holds the default value on creation for the sample_count field.
	calibration.DefaultSampleCount = calibrationDescSampleCount.Default.(int)
	// calibrationDescMean is the schema descriptor for mean field.
	calibrationDescMean := calibrationFields[3].Descriptor()
	// calibration.DefaultMean holds the default value on creation for the mean field.
	calibration.DefaultMean = calibrationDescMean.Default.(float64)
	// calibrationDescMedian is the schema descriptor for median field.
	calibrationDescMedian := calibrationFields[4].Descriptor()
	// calibration.DefaultMedian holds the default value on creation for the median field.
	calibration.DefaultMedian = calibrationDescMedian.Default.(float64)
	// calibrationDescStddev is the schema descriptor for stddev field.
	calibrationDescStddev := calibrationFields[5].Descriptor()
	// calibration.DefaultStddev holds the default value on creation for the stddev field.
	calibration.DefaultStddev = calibrationDescStddev.Default.(float64)
	// calibrationDescP25 is the schema descriptor for p25 field.
	calibrationDescP25 := calibrationFields[6].Descriptor()
	// calibration.DefaultP25 holds the default value on creation for the p25 field.
	calibration.DefaultP25 = calibrationDescP25.Default.(float64)
	// calibrationDescP75 is the schema descriptor for p75 field.
	calibrationDescP75 := calibrationFields[7].Descriptor()
	// calibration.DefaultP75 holds the default value on creation for the p75 field.
	calibration.DefaultP75 = calibrationDescP75.Default.(float64)
	// calibrationDescConfidence is the schema descriptor for confidence field.
	calibrationDescConfidence := calibrationFields[8].Descriptor()
	// calibration.DefaultConfidence holds the default value on creation for the confidence field.
	calibration.DefaultConfidence = calibrationDescConfidence.Default.(float64)
	// calibrationDescNeedsReview is the schema descriptor for needs_review field.
	calibrationDescNeedsReview := calibrationFields[9].Descriptor()
	// calibration.DefaultNeedsReview holds the default value on creation for the needs_review field.
	calibration.DefaultNeedsReview = calibrationDescNeedsReview.Default.(bool)
	// calibrationDescComputedAt is the schema descriptor for computed_at field.
	calibrationDescComputedAt := calibrationFields[10].Descriptor()
	// calibration.DefaultComputedAt holds the default value on creation for the computed_at field.
	calibration.DefaultComputedAt = calibrationDescComputedAt.Default.(func() time.Time)
	difficultyprofileFields := schema.DifficultyProfile{}.Fields()
	_ = difficultyprofileFields
	// difficultyprofileDescAttempts is the schema descriptor for attempts field.
	difficultyprofileDescAttempts := difficultyprofileFields[3].Descriptor()
	// difficultyprofile.DefaultAttempts holds the default value on creation for the attempts field.
	difficultyprofile.DefaultAttempts = difficultyprofileDescAttempts.Default.(int)
	// difficultyprofileDescAvgScore is the schema descriptor for avg_score field.
	difficultyprofileDescAvgScore := difficultyprofileFields[4].Descriptor()
	// difficultyprofile.DefaultAvgScore holds the default value on creation for the avg_score field.
	difficultyprofile.DefaultAvgScore = difficultyprofileDescAvgScore.Default.(float64)
	// difficultyprofileDescBestScore is the schema descriptor for best_score field.
	difficultyprofileDescBestScore := difficultyprofileFields[5].Descriptor()
	// difficultyprofile.DefaultBestScore holds the default value on creation for the best_score field.
	difficultyprofile.DefaultBestScore = difficultyprofileDescBestScore.Default.(int)
	// difficultyprofileDescWorstScore is the schema descriptor for worst_score field.
	difficultyprofileDescWorstScore := difficultyprofileFields[6].Descriptor()
	// difficultyprofile.DefaultWorstScore holds the default value on creation for the worst_score field.
	difficultyprofile.DefaultWorstScore = difficultyprofileDescWorstScore.Default.(int)
	// difficultyprofileDescHighScores is the schema descriptor for high_scores field.
	difficultyprofileDescHighScores := difficultyprofileFields[7].Descriptor()
	// difficultyprofile.DefaultHighScores holds the default value on creation for the high_scores field.
	difficultyprofile.DefaultHighScores = difficultyprofileDescHighScores.Default.(int)
	// difficultyprofileDescExcellentScores is the schema descriptor for excellent_scores field.
	difficultyprofileDescExcellentScores := difficultyprofileFields[8].Descriptor()
	// difficultyprofile.DefaultExcellentScores holds the default value on creation for the excellent_scores field.
	difficultyprofile.DefaultExcellentScores = difficultyprofileDescExcellentScores.Default.(int)
	// difficultyprofileDescStreak is the schema descriptor for streak field.
	difficultyprofileDescStreak := difficultyprofileFields[9].Descriptor()
	// difficultyprofile.DefaultStreak holds the default value on creation for the streak field.
	difficultyprofile.DefaultStreak = difficultyprofileDescStreak.Default.(int)
	// difficultyprofileDescConfidence is the schema descriptor for confidence field.
	difficultyprofileDescConfidence := difficultyprofileFields[10].Descriptor()
	// difficultyprofile.DefaultConfidence holds the default value on creation for the confidence field.
	difficultyprofile.DefaultConfidence = difficultyprofileDescConfidence.Default.(float64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescCostUsd is the schema descriptor for cost_usd field.
	llmrequesteventDescCostUsd := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmrequestevent.DefaultCostUsd = llmrequesteventDescCostUsd.Default.(float64)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	playerFields := schema.Player{}.Fields()
	_ = playerFields
	// playerDescXp is the schema descriptor for xp field.
	playerDescXp := playerFields[1].Descriptor()
	// player.DefaultXp holds the default value on creation for the xp field.
	player.DefaultXp = playerDescXp.Default.(int)
	// playerDescCreatedAt is the schema descriptor for created_at field.
	playerDescCreatedAt := playerFields[2].Descriptor()
	// player.DefaultCreatedAt holds the default value on creation for the created_at field.
	player.DefaultCreatedAt = playerDescCreatedAt.Default.(func() time.Time)
	referenceanswerFields := schema.ReferenceAnswer{}.Fields()
	_ = referenceanswerFields
	// referenceanswerDescSource is the schema descriptor for source field.
	referenceanswerDescSource := referenceanswerFields[5].Descriptor()
	// referenceanswer.DefaultSource holds the default value on creation for the source field.
	referenceanswer.DefaultSource = referenceanswerDescSource.Default.(string)
	// referenceanswerDescVerified is the schema descriptor for verified field.
	referenceanswerDescVerified := referenceanswerFields[6].Descriptor()
	// referenceanswer.DefaultVerified holds the default value on creation for the verified field.
	referenceanswer.DefaultVerified = referenceanswerDescVerified.Default.(bool)
	// referenceanswerDescActive is the schema descriptor for active field.
	referenceanswerDescActive := referenceanswerFields[7].Descriptor()
	// referenceanswer.DefaultActive holds the default value on creation for the active field.
	referenceanswer.DefaultActive = referenceanswerDescActive.Default.(bool)
	// referenceanswerDescCreatedAt is the schema descriptor for created_at field.
	referenceanswerDescCreatedAt := referenceanswerFields[8].Descriptor()
	// referenceanswer.DefaultCreatedAt holds the default value on creation for the created_at field.
	referenceanswer.DefaultCreatedAt = referenceanswerDescCreatedAt.Default.(func() time.Time)
	skillmemoryFields := schema.SkillMemory{}.Fields()
	_ = skillmemoryFields
	// skillmemoryDescEf is the schema descriptor for ef field.
	skillmemoryDescEf := skillmemoryFields[2].Descriptor()
	// skillmemory.DefaultEf holds the default value on creation for the ef field.
	skillmemory.DefaultEf = skillmemoryDescEf.Default.(float64)
	// skillmemoryDescIntervalDays is the schema descriptor for interval_days field.
	skillmemoryDescIntervalDays := skillmemoryFields[3].Descriptor()
	// skillmemory.DefaultIntervalDays holds the default value on creation for the interval_days field.
	skillmemory.DefaultIntervalDays = skillmemoryDescIntervalDays.Default.(int)
	// skillmemoryDescRepetitions is the schema descriptor for repetitions field.
	skillmemoryDescRepetitions := skillmemoryFields[4].Descriptor()
	// skillmemory.DefaultRepetitions holds the default value on creation for the repetitions field.
	skillmemory.DefaultRepetitions = skillmemoryDescRepetitions.Default.(int)
	// skillmemoryDescAttempts is the schema descriptor for attempts field.
	skillmemoryDescAttempts := skillmemoryFields[5].Descriptor()
	// skillmemory.DefaultAttempts holds the default value on creation for the attempts field.
	skillmemory.DefaultAttempts = skillmemoryDescAttempts.Default.(int)
	// skillmemoryDescLastScore is the schema descriptor for last_score field.
	skillmemoryDescLastScore := skillmemoryFields[6].Descriptor()
	// skillmemory.DefaultLastScore holds the default value on creation for the last_score field.
	skillmemory.DefaultLastScore = skillmemoryDescLastScore.Default.(int)
	// skillmemoryDescLastQuality is the schema descriptor for last_quality field.
	skillmemoryDescLastQuality := skillmemoryFields[7].Descriptor()
	// skillmemory.DefaultLastQuality holds the default value on creation for the last_quality field.
	skillmemory.DefaultLastQuality = skillmemoryDescLastQuality.Default.(int)
	// skillmemoryDescAvgScore is the schema descriptor for avg_score field.
	skillmemoryDescAvgScore := skillmemoryFields[8].Descriptor()
	// skillmemory.DefaultAvgScore holds the default value on creation for the avg_score field.
	skillmemory.DefaultAvgScore = skillmemoryDescAvgScore.Default.(float64)
}
