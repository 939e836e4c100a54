package store

import (
	"context"
	"errors"
	"time"

	"github.com/ssanyal/recruitdojo/internal/calibration"
	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/difficulty"
	"github.com/ssanyal/recruitdojo/internal/refstore"
	"github.com/ssanyal/recruitdojo/internal/spacedrep"
)

// ErrDuplicateAttempt is returned when a player already has an attempt
// for the challenge.
var ErrDuplicateAttempt = errors.New("attempt already exists for this challenge")

// Player is one trainee account.
type Player struct {
	ID        int
	Name      string
	XP        int
	CreatedAt time.Time
}

// PlayerRepo manages player records.
type PlayerRepo interface {
	// GetOrCreate returns the player with the given name, creating it on
	// first use.
	GetOrCreate(ctx context.Context, name string) (*Player, error)
	// Get returns a player by ID, or nil if unknown.
	Get(ctx context.Context, id int) (*Player, error)
	// AddXP adds delta experience points.
	AddXP(ctx context.Context, id, delta int) error
}

// Attempt is one scored submission.
type Attempt struct {
	ID             int
	PlayerID       int
	ChallengeID    string
	SkillCategory  string
	Difficulty     string
	Submission     string
	ValidatorScore int
	AIScore        int
	AIAvailable    bool
	FinalScore     int
	Confidence     int
	RiskLevel      string
	HintsUsed      int
	FeedbackHTML   string
	CreatedAt      time.Time
}

// AttemptRepo manages attempts. Uniqueness per (player, challenge) is
// enforced by the database; Insert surfaces it as ErrDuplicateAttempt.
type AttemptRepo interface {
	Insert(ctx context.Context, a *Attempt) error
	// ByPlayerChallenge returns the attempt, or nil if none exists.
	ByPlayerChallenge(ctx context.Context, playerID int, challengeID string) (*Attempt, error)
	// ByPlayer returns all attempts for a player, newest first.
	ByPlayer(ctx context.Context, playerID int) ([]*Attempt, error)
	// LatestByPlayer returns the most recent attempt, or nil.
	LatestByPlayer(ctx context.Context, playerID int) (*Attempt, error)
	// ChallengeScores returns all final scores for a challenge.
	ChallengeScores(ctx context.Context, challengeID string) ([]int, error)
	// CategoryScores returns all final scores for a skill category.
	CategoryScores(ctx context.Context, category string) ([]int, error)
}

// ProfileRepo manages (player, skill, difficulty) performance buckets.
type ProfileRepo interface {
	// Get returns the profile, or nil if none exists yet.
	Get(ctx context.Context, playerID int, cat catalog.SkillCategory, diff catalog.Difficulty) (*difficulty.Profile, error)
	// Save upserts the profile for a player.
	Save(ctx context.Context, playerID int, p *difficulty.Profile) error
}

// SkillMemoryRepo manages spaced-repetition state.
type SkillMemoryRepo interface {
	// Get returns the state, or nil if none exists yet.
	Get(ctx context.Context, playerID int, skillID string) (*spacedrep.State, error)
	Save(ctx context.Context, playerID int, st *spacedrep.State) error
	// ByPlayer returns all states for a player.
	ByPlayer(ctx context.Context, playerID int) ([]*spacedrep.State, error)
}

// CalibrationRepo persists calibration records. It satisfies
// calibration.Repo for the live applier.
type CalibrationRepo interface {
	calibration.Repo
	// All returns every calibration record.
	All(ctx context.Context) ([]*calibration.Record, error)
}

// ReferenceRepo persists reference answers. It satisfies refstore.Repo.
type ReferenceRepo interface {
	refstore.Repo
	// Deactivate soft-deletes a reference.
	Deactivate(ctx context.Context, challengeID, id string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is one recorded LLM API call.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts bounds an event listing.
type QueryOpts struct {
	// Limit caps the number of events returned; 0 means no cap.
	Limit int
	// Purpose filters to a single purpose label when set.
	Purpose string
}

// LLMUsage aggregates call volume and cost per purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	AvgLatencyMs int64
}

// LLMModelUsage aggregates call volume and cost per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// EventRepo records and inspects LLM API call events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	// QueryLLMEvents lists events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)
	// GetLLMEvent returns one event, or nil if unknown.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]*LLMUsage, error)
	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]*LLMModelUsage, error)
}
