package store

import (
	"context"
	"errors"
	"time"

	"github.com/cardwise/cardwise/internal/srs"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ItemFilter narrows due/upcoming queries. Zero value matches everything.
type ItemFilter struct {
	SourceRef string   // items from one content source
	Tags      []string // items carrying all of these tags
}

// ItemRepo is the study-item read/write contract the scheduler needs.
// Items are created by upstream content collaborators (Create is that
// seam); the engine itself only reads and updates scheduling state.
type ItemRepo interface {
	// Create stores a new study item with its initial learning state.
	Create(ctx context.Context, item *srs.StudyItem) error

	// Get returns one item by id, without history.
	Get(ctx context.Context, id string) (*srs.StudyItem, error)

	// Due returns the user's items with next_review_at <= now, matching
	// the filter, ordered by next_review_at ascending, capped at limit.
	Due(ctx context.Context, userID string, now time.Time, f ItemFilter, limit int) ([]*srs.StudyItem, error)

	// Upcoming is Due for the open interval (now, now+daysAhead].
	Upcoming(ctx context.Context, userID string, now time.Time, daysAhead int, f ItemFilter, limit int) ([]*srs.StudyItem, error)

	// UpsertState writes the item's current learning state.
	UpsertState(ctx context.Context, item *srs.StudyItem) error

	// CountByStage returns the user's item counts grouped by stage.
	CountByStage(ctx context.Context, userID string) (map[srs.Stage]int, error)
}

// ReviewRepo is the append-only review history log.
type ReviewRepo interface {
	// Append stores one immutable review record.
	Append(ctx context.Context, rec srs.ReviewRecord) error

	// RecentByItem returns up to limit most recent records for an item,
	// ordered oldest first.
	RecentByItem(ctx context.Context, itemID string, limit int) ([]srs.ReviewRecord, error)

	// RecentByUser returns up to limit most recent records for a user,
	// ordered oldest first.
	RecentByUser(ctx context.Context, userID string, limit int) ([]srs.ReviewRecord, error)
}

// ParamsRepo stores per-user learning parameters.
type ParamsRepo interface {
	// Load returns the user's parameters, or defaults if none are stored.
	Load(ctx context.Context, userID string) (srs.Parameters, error)

	// Save upserts the user's parameters. Last write wins; concurrent
	// updates are an accepted approximation.
	Save(ctx context.Context, p srs.Parameters) error
}

// Session lifecycle states persisted on SessionRecord.
const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

// SessionRecord is the persisted form of a review session.
type SessionRecord struct {
	ID             string
	UserID         string
	Status         string
	StartedAt      time.Time
	EndedAt        time.Time // zero while in progress
	TotalItems     int
	Completed      int
	AverageRating  float64
	PerfectCount   int
	CompletionRate float64
}

// SessionRepo stores session records.
type SessionRepo interface {
	Create(ctx context.Context, rec SessionRecord) error
	Update(ctx context.Context, rec SessionRecord) error
}
