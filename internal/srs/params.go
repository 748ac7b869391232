package srs

import "time"

// Default parameter values for a user seen for the first time.
const (
	DefaultInitialEase      = 2.5
	DefaultMinEase          = 1.3
	DefaultMaxEase          = 2.5
	DefaultEaseBonus        = 0.1
	DefaultEasePenalty      = 0.2
	DefaultIntervalModifier = 100.0 // percent
	DefaultMaxIntervalDays  = 365
	DefaultNewPerDay        = 20
	DefaultReviewsPerDay    = 100

	// Interval modifier bounds applied by the session-completion nudge.
	MinIntervalModifier = 50.0
	MaxIntervalModifier = 150.0
)

// Default adaptive settings.
const (
	DefaultDifficultyWeight = 1.0
	DefaultRetentionTarget  = 0.9
	DefaultTimeWeight       = 1.0
	DefaultErrorWeight      = 1.0
)

// Settings is the adaptive-behavior configuration bag. Fields are typed
// and named rather than an open map so misconfiguration fails at compile
// time.
type Settings struct {
	DifficultyWeight float64  `json:"difficulty_weight"`
	RetentionTarget  float64  `json:"retention_target"`
	TimeWeight       float64  `json:"time_weight"`
	ErrorWeight      float64  `json:"error_weight"`
	ScaleIntervals   bool     `json:"scale_intervals"` // apply the time factor to intervals
	DifficultTags    []string `json:"difficult_tags,omitempty"`
}

// Parameters is the per-user scheduling configuration. Created with
// defaults on first use, updated by session completion (small nudge) or
// by the analyzer (history-driven recommendation), never deleted.
type Parameters struct {
	UserID           string    `json:"user_id"`
	InitialEase      float64   `json:"initial_ease"`
	MinEase          float64   `json:"min_ease"`
	EaseBonus        float64   `json:"ease_bonus"`
	EasePenalty      float64   `json:"ease_penalty"`
	IntervalModifier float64   `json:"interval_modifier"` // percent, 100 = neutral
	MaxIntervalDays  int       `json:"max_interval_days"`
	NewPerDay        int       `json:"new_per_day"`
	ReviewsPerDay    int       `json:"reviews_per_day"`
	Adaptive         bool      `json:"adaptive"`
	Settings         Settings  `json:"settings"`
	AnalyzedAt       time.Time `json:"analyzed_at"` // zero until the analyzer runs
}

// DefaultParameters returns the configuration used for a user with no
// stored parameters.
func DefaultParameters(userID string) Parameters {
	return Parameters{
		UserID:           userID,
		InitialEase:      DefaultInitialEase,
		MinEase:          DefaultMinEase,
		EaseBonus:        DefaultEaseBonus,
		EasePenalty:      DefaultEasePenalty,
		IntervalModifier: DefaultIntervalModifier,
		MaxIntervalDays:  DefaultMaxIntervalDays,
		NewPerDay:        DefaultNewPerDay,
		ReviewsPerDay:    DefaultReviewsPerDay,
		Adaptive:         true,
		Settings: Settings{
			DifficultyWeight: DefaultDifficultyWeight,
			RetentionTarget:  DefaultRetentionTarget,
			TimeWeight:       DefaultTimeWeight,
			ErrorWeight:      DefaultErrorWeight,
			ScaleIntervals:   true,
		},
	}
}

// ClampEase bounds an ease factor to the configured range.
func (p Parameters) ClampEase(ease float64) float64 {
	if ease < p.MinEase {
		return p.MinEase
	}
	if ease > DefaultMaxEase {
		return DefaultMaxEase
	}
	return ease
}

// ClampInterval bounds a review-stage interval to [1, MaxIntervalDays].
func (p Parameters) ClampInterval(days int) int {
	if days < 1 {
		return 1
	}
	if days > p.MaxIntervalDays {
		return p.MaxIntervalDays
	}
	return days
}
