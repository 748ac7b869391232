package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cardwise/cardwise/internal/srs"
	"github.com/cardwise/cardwise/internal/store"
)

// historyWindow is how many recent review records are loaded per item
// before computing factors. The factor windows need at most 5 and the
// time estimator at most 3.
const historyWindow = 20

// Nudge thresholds applied to the interval modifier at completion.
const (
	nudgeHighAvg = 4.5
	nudgeLowAvg  = 3.0
	nudgeStep    = 0.05
)

// Telemetry carries caller-side timing for a submission. TimeSpentSecs
// is used when the manager's own elapsed measurement is unusable.
type Telemetry struct {
	TimeSpentSecs float64
}

// Started is the result of opening a session.
type Started struct {
	SessionID string
	Item      *srs.StudyItem
	Progress  Progress
}

// SubmitResult is returned after each accepted submission.
type SubmitResult struct {
	Record   srs.ReviewRecord
	State    srs.LearningState // item state after the review
	Next     *srs.StudyItem    // nil when the session completed
	Progress Progress
	Done     bool
	Metrics  *Metrics // set only when Done
}

// Manager owns the in-memory table of active sessions and drives the
// per-submission scheduling pipeline. Sessions for different users are
// independent; submissions within one session are serialized by the
// session's lock.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	items   store.ItemRepo
	reviews store.ReviewRepo
	params  store.ParamsRepo
	records store.SessionRepo
	now     func() time.Time
}

// NewManager wires a manager to its store collaborators. A nil clock
// defaults to time.Now.
func NewManager(items store.ItemRepo, reviews store.ReviewRepo, params store.ParamsRepo, records store.SessionRepo, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		sessions: make(map[string]*Session),
		items:    items,
		reviews:  reviews,
		params:   params,
		records:  records,
		now:      now,
	}
}

// Start queries the user's due items and opens a session over them.
// Returns ErrNoDueItems (and creates nothing) when the queue would be
// empty.
func (m *Manager) Start(ctx context.Context, userID string, filter store.ItemFilter) (*Started, error) {
	p, err := m.params.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load parameters: %w", err)
	}

	now := m.now()
	queue, err := m.items.Due(ctx, userID, now, filter, p.ReviewsPerDay)
	if err != nil {
		return nil, fmt.Errorf("query due items: %w", err)
	}
	if len(queue) == 0 {
		return nil, ErrNoDueItems
	}

	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartedAt: now,
		queue:     queue,
		params:    p,
		shownAt:   now,
	}

	rec := store.SessionRecord{
		ID:         sess.ID,
		UserID:     userID,
		Status:     store.SessionInProgress,
		StartedAt:  now,
		TotalItems: len(queue),
	}
	if err := m.records.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create session record: %w", err)
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	return &Started{
		SessionID: sess.ID,
		Item:      sess.current(),
		Progress:  sess.progress(),
	}, nil
}

// Current returns the item at the session cursor.
func (m *Manager) Current(sessionID string) (*srs.StudyItem, Progress, error) {
	sess, err := m.get(sessionID)
	if err != nil {
		return nil, Progress{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.completed || sess.exhausted() {
		return nil, sess.progress(), ErrSessionCompleted
	}
	return sess.current(), sess.progress(), nil
}

// Submit records a review for the item at the cursor: computes the four
// adaptive factors, runs the interval calculator, persists the updated
// item state and the review record, and only then advances the cursor.
// A persistence failure leaves the session exactly as it was, so the
// caller may retry the same submission. When the queue is exhausted the
// session is completed automatically.
func (m *Manager) Submit(ctx context.Context, sessionID string, rating srs.Rating, tel Telemetry) (*SubmitResult, error) {
	if !rating.Valid() {
		return nil, srs.ErrInvalidRating
	}

	sess, err := m.get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.completed || sess.exhausted() {
		return nil, ErrSessionCompleted
	}

	item := sess.current()
	now := m.now()

	timeSpent := now.Sub(sess.shownAt).Seconds()
	if timeSpent <= 0 && tel.TimeSpentSecs > 0 {
		timeSpent = tel.TimeSpentSecs
	}

	history, err := m.reviews.RecentByItem(ctx, item.ID, historyWindow)
	if err != nil {
		return nil, fmt.Errorf("load item history: %w", err)
	}

	// Run the pipeline on a copy so a failed write leaves the queue
	// snapshot untouched.
	updated := *item
	updated.History = history
	rec, err := srs.Review(&updated, rating, timeSpent, sess.params, now)
	if err != nil {
		return nil, err
	}

	if err := m.items.UpsertState(ctx, &updated); err != nil {
		return nil, fmt.Errorf("persist item state: %w", err)
	}
	if err := m.reviews.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("append review record: %w", err)
	}

	// Commit: the review happened.
	*item = updated
	sess.submissions = append(sess.submissions, Submission{
		ItemID:        item.ID,
		Rating:        rating,
		TimeSpentSecs: timeSpent,
		Record:        rec,
	})
	sess.cursor++
	sess.shownAt = now

	result := &SubmitResult{Record: rec, State: item.State, Progress: sess.progress()}
	if sess.exhausted() {
		metrics, err := m.complete(ctx, sess)
		if err != nil {
			return nil, err
		}
		result.Done = true
		result.Metrics = metrics
		return result, nil
	}

	result.Next = sess.current()
	return result, nil
}

// Complete finalizes an exhausted session explicitly. Submit calls it
// automatically on the last item; the explicit path exists so a caller
// can retry finalization after a persistence failure.
func (m *Manager) Complete(ctx context.Context, sessionID string) (*Metrics, error) {
	sess, err := m.get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.completed {
		return nil, ErrSessionCompleted
	}
	if !sess.exhausted() {
		return nil, ErrSessionActive
	}
	return m.complete(ctx, sess)
}

// complete computes metrics, persists the terminal record, nudges the
// user's interval modifier, and evicts the session. Caller holds sess.mu.
func (m *Manager) complete(ctx context.Context, sess *Session) (*Metrics, error) {
	metrics := buildMetrics(sess)
	now := m.now()

	rec := store.SessionRecord{
		ID:             sess.ID,
		UserID:         sess.UserID,
		Status:         store.SessionCompleted,
		StartedAt:      sess.StartedAt,
		EndedAt:        now,
		TotalItems:     len(sess.queue),
		Completed:      len(sess.submissions),
		AverageRating:  metrics.AverageRating,
		PerfectCount:   metrics.PerfectCount,
		CompletionRate: metrics.CompletionRate,
	}
	if err := m.records.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist session record: %w", err)
	}

	if err := m.nudgeModifier(ctx, sess.UserID, metrics.AverageRating); err != nil {
		return nil, err
	}

	sess.completed = true
	m.mu.Lock()
	delete(m.sessions, sess.ID)
	m.mu.Unlock()

	return &metrics, nil
}

// nudgeModifier applies the small automatic interval-modifier adjustment
// driven by session quality. Read-modify-write; last write wins across
// concurrent sessions for the same user.
func (m *Manager) nudgeModifier(ctx context.Context, userID string, avgRating float64) error {
	p, err := m.params.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("load parameters: %w", err)
	}

	switch {
	case avgRating > nudgeHighAvg:
		p.IntervalModifier = min(srs.MaxIntervalModifier, p.IntervalModifier*(1+nudgeStep))
	case avgRating < nudgeLowAvg:
		p.IntervalModifier = max(srs.MinIntervalModifier, p.IntervalModifier*(1-nudgeStep))
	default:
		return nil
	}

	if err := m.params.Save(ctx, p); err != nil {
		return fmt.Errorf("save parameters: %w", err)
	}
	return nil
}

func (m *Manager) get(sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Active returns the number of sessions currently held in memory.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
