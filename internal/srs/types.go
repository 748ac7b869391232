package srs

import (
	"fmt"
	"time"
)

// Stage is the learning stage of a study item.
type Stage string

const (
	StageNew      Stage = "new"      // never reviewed
	StageLearning Stage = "learning" // not yet graduated, or recently failed
	StageReview   Stage = "review"   // graduated, long-interval regime
)

// ContentType describes the kind of content on a study item.
type ContentType string

const (
	ContentText    ContentType = "text"
	ContentImage   ContentType = "image"
	ContentFormula ContentType = "formula"
)

// Rating is the learner's self-assessed recall score, 1 (blackout) to 5 (perfect).
type Rating int

const (
	RatingMin Rating = 1
	RatingMax Rating = 5
)

// Valid reports whether the rating is within the accepted range.
func (r Rating) Valid() bool {
	return r >= RatingMin && r <= RatingMax
}

// Quality is the internal 0-4 quality score used by the interval math.
func (r Rating) Quality() int {
	return int(r) - 1
}

// Passing reports whether the rating passes the interval state machine
// (quality >= 3).
func (r Rating) Passing() bool {
	return r.Quality() >= 3
}

// Successful reports whether the rating counts as a successful recall for
// retention and error-rate statistics (rating >= 3).
func (r Rating) Successful() bool {
	return r >= 3
}

// LearningState is the per-item scheduling state mutated by Advance.
type LearningState struct {
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	Stage        Stage     `json:"stage"`
	LastReviewAt time.Time `json:"last_review_at"` // zero if never reviewed
	NextReviewAt time.Time `json:"next_review_at"`
}

// Factors holds the four adaptive correction multipliers. 1.0 is neutral.
// Time and Error adjust the interval (Error as a divisor); Difficulty and
// Retention weight the ease factor.
type Factors struct {
	Time       float64 `json:"time"`
	Error      float64 `json:"error"`
	Difficulty float64 `json:"difficulty"`
	Retention  float64 `json:"retention"`
}

// NeutralFactors returns all-1.0 factors.
func NeutralFactors() Factors {
	return Factors{Time: 1.0, Error: 1.0, Difficulty: 1.0, Retention: 1.0}
}

// ReviewRecord is one immutable entry in an item's review history.
// Tags and EaseAfter are denormalized from the item at review time so
// the analyzer can work from the record log alone.
type ReviewRecord struct {
	ItemID        string    `json:"item_id"`
	UserID        string    `json:"user_id"`
	Timestamp     time.Time `json:"timestamp"`
	Rating        Rating    `json:"rating"`
	IntervalDays  int       `json:"interval_days"` // interval in effect when reviewed
	TimeSpentSecs float64   `json:"time_spent_secs"`
	EaseAfter     float64   `json:"ease_after"`
	Tags          []string  `json:"tags,omitempty"`
	Factors       Factors   `json:"factors"`
}

// StudyItem is a single front/back study item with its scheduling state.
// Items are created by an upstream content collaborator; this engine only
// mutates State and appends to History.
type StudyItem struct {
	ID          string
	UserID      string
	Front       string
	Back        string
	ContentType ContentType
	Tags        []string
	SourceRef   string
	State       LearningState

	// History holds the most recent review records, newest last. Only a
	// bounded window is kept in memory; the full log lives in the store.
	History []ReviewRecord
}

// NewState returns the initial learning state for a fresh item.
func NewState(p Parameters, now time.Time) LearningState {
	return LearningState{
		EaseFactor:   p.InitialEase,
		IntervalDays: 0,
		Repetitions:  0,
		Stage:        StageNew,
		NextReviewAt: now,
	}
}

// Validate checks the fields the scheduler depends on.
func (it *StudyItem) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("%w: item id", ErrMissingField)
	}
	if it.UserID == "" {
		return fmt.Errorf("%w: user id", ErrMissingField)
	}
	if it.Front == "" {
		return fmt.Errorf("%w: front content", ErrMissingField)
	}
	return nil
}

// HasTag reports whether the item carries the given tag.
func (it *StudyItem) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Due reports whether the item is due at the given time.
func (it *StudyItem) Due(now time.Time) bool {
	return !now.Before(it.State.NextReviewAt)
}
