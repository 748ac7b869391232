package session

import (
	"sync"
	"time"

	"github.com/cardwise/cardwise/internal/srs"
)

// Progress reports how far a session has advanced.
type Progress struct {
	Current int // completed submissions
	Total   int // queue length
}

// Submission is one completed review within a session.
type Submission struct {
	ItemID        string
	Rating        srs.Rating
	TimeSpentSecs float64
	Record        srs.ReviewRecord
}

// Metrics is the derived summary of a completed session.
type Metrics struct {
	AverageRating  float64
	PerfectCount   int
	CompletionRate float64
}

// Session is the runtime state of one review session. It lives only in
// the manager's in-memory table between Start and Complete; there is no
// resume after a process restart. Submissions against one session must
// be serialized, which the per-session mutex enforces.
type Session struct {
	mu sync.Mutex

	ID        string
	UserID    string
	StartedAt time.Time

	// queue is the immutable due-item snapshot taken at start.
	queue  []*srs.StudyItem
	cursor int

	// shownAt is when the current item was surfaced to the caller.
	shownAt time.Time

	params      srs.Parameters
	submissions []Submission
	completed   bool
}

func (s *Session) progress() Progress {
	return Progress{Current: s.cursor, Total: len(s.queue)}
}

func (s *Session) exhausted() bool {
	return s.cursor >= len(s.queue)
}

func (s *Session) current() *srs.StudyItem {
	if s.exhausted() {
		return nil
	}
	return s.queue[s.cursor]
}
