package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cardwise/cardwise/internal/srs"
	"github.com/cardwise/cardwise/internal/store"
)

type fakeItems struct {
	due       []*srs.StudyItem
	upserts   []srs.StudyItem
	upsertErr error
}

func (f *fakeItems) Create(ctx context.Context, item *srs.StudyItem) error { return nil }

func (f *fakeItems) Get(ctx context.Context, id string) (*srs.StudyItem, error) {
	for _, it := range f.due {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeItems) Due(ctx context.Context, userID string, now time.Time, _ store.ItemFilter, limit int) ([]*srs.StudyItem, error) {
	out := make([]*srs.StudyItem, 0, len(f.due))
	for _, it := range f.due {
		if it.UserID == userID && it.Due(now) {
			out = append(out, it)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeItems) Upcoming(ctx context.Context, userID string, now time.Time, daysAhead int, _ store.ItemFilter, limit int) ([]*srs.StudyItem, error) {
	return nil, nil
}

func (f *fakeItems) CountByStage(ctx context.Context, userID string) (map[srs.Stage]int, error) {
	counts := make(map[srs.Stage]int)
	for _, it := range f.due {
		if it.UserID == userID {
			counts[it.State.Stage]++
		}
	}
	return counts, nil
}

func (f *fakeItems) UpsertState(ctx context.Context, item *srs.StudyItem) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, *item)
	return nil
}

type fakeReviews struct {
	log       []srs.ReviewRecord
	appendErr error
}

func (f *fakeReviews) Append(ctx context.Context, rec srs.ReviewRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.log = append(f.log, rec)
	return nil
}

func (f *fakeReviews) RecentByItem(ctx context.Context, itemID string, limit int) ([]srs.ReviewRecord, error) {
	var out []srs.ReviewRecord
	for _, rec := range f.log {
		if rec.ItemID == itemID {
			out = append(out, rec)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeReviews) RecentByUser(ctx context.Context, userID string, limit int) ([]srs.ReviewRecord, error) {
	var out []srs.ReviewRecord
	for _, rec := range f.log {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type fakeParams struct {
	stored map[string]srs.Parameters
	saves  int
}

func (f *fakeParams) Load(ctx context.Context, userID string) (srs.Parameters, error) {
	if p, ok := f.stored[userID]; ok {
		return p, nil
	}
	return srs.DefaultParameters(userID), nil
}

func (f *fakeParams) Save(ctx context.Context, p srs.Parameters) error {
	if f.stored == nil {
		f.stored = make(map[string]srs.Parameters)
	}
	f.stored[p.UserID] = p
	f.saves++
	return nil
}

type fakeSessions struct {
	created []store.SessionRecord
	updated []store.SessionRecord
}

func (f *fakeSessions) Create(ctx context.Context, rec store.SessionRecord) error {
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeSessions) Update(ctx context.Context, rec store.SessionRecord) error {
	f.updated = append(f.updated, rec)
	return nil
}

// testClock advances by a fixed step on every reading, so elapsed time
// per submission is deterministic.
type testClock struct {
	t    time.Time
	step time.Duration
}

func (c *testClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func dueItem(id, userID string) *srs.StudyItem {
	return &srs.StudyItem{
		ID:          id,
		UserID:      userID,
		Front:       "front of " + id,
		Back:        "back of " + id,
		ContentType: srs.ContentText,
		State: srs.LearningState{
			EaseFactor: srs.DefaultInitialEase,
			Stage:      srs.StageNew,
		},
	}
}

type fixture struct {
	items    *fakeItems
	reviews  *fakeReviews
	params   *fakeParams
	sessions *fakeSessions
	clock    *testClock
	mgr      *Manager
}

func newFixture(due ...*srs.StudyItem) *fixture {
	f := &fixture{
		items:    &fakeItems{due: due},
		reviews:  &fakeReviews{},
		params:   &fakeParams{},
		sessions: &fakeSessions{},
		clock: &testClock{
			t:    time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			step: 5 * time.Second,
		},
	}
	f.mgr = NewManager(f.items, f.reviews, f.params, f.sessions, f.clock.now)
	return f
}

func TestStart_NoDueItems(t *testing.T) {
	f := newFixture()

	_, err := f.mgr.Start(context.Background(), "u1", store.ItemFilter{})
	if !errors.Is(err, ErrNoDueItems) {
		t.Fatalf("Start with empty queue: err = %v, want ErrNoDueItems", err)
	}
	if len(f.sessions.created) != 0 {
		t.Errorf("session record created for empty queue")
	}
	if f.mgr.Active() != 0 {
		t.Errorf("Active() = %d, want 0", f.mgr.Active())
	}
}

func TestStart_OpensSessionOverDueItems(t *testing.T) {
	f := newFixture(dueItem("i1", "u1"), dueItem("i2", "u1"))

	started, err := f.mgr.Start(context.Background(), "u1", store.ItemFilter{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if started.SessionID == "" {
		t.Error("empty session id")
	}
	if started.Item == nil || started.Item.ID != "i1" {
		t.Errorf("first item = %+v, want i1", started.Item)
	}
	if started.Progress != (Progress{Current: 0, Total: 2}) {
		t.Errorf("progress = %+v, want 0/2", started.Progress)
	}

	if len(f.sessions.created) != 1 {
		t.Fatalf("created %d session records, want 1", len(f.sessions.created))
	}
	rec := f.sessions.created[0]
	if rec.Status != store.SessionInProgress || rec.TotalItems != 2 {
		t.Errorf("session record = %+v", rec)
	}
}

func TestSubmit_AdvancesAfterPersisting(t *testing.T) {
	f := newFixture(dueItem("i1", "u1"), dueItem("i2", "u1"))
	ctx := context.Background()

	started, err := f.mgr.Start(ctx, "u1", store.ItemFilter{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	res, err := f.mgr.Submit(ctx, started.SessionID, 4, Telemetry{})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Done {
		t.Error("session marked done after first of two items")
	}
	if res.Next == nil || res.Next.ID != "i2" {
		t.Errorf("next item = %+v, want i2", res.Next)
	}
	if res.Progress != (Progress{Current: 1, Total: 2}) {
		t.Errorf("progress = %+v, want 1/2", res.Progress)
	}
	if res.Record.ItemID != "i1" || res.Record.Rating != 4 {
		t.Errorf("record = %+v", res.Record)
	}
	// Clock steps 5s per reading.
	if res.Record.TimeSpentSecs != 5 {
		t.Errorf("time spent = %v, want 5", res.Record.TimeSpentSecs)
	}

	if len(f.items.upserts) != 1 || f.items.upserts[0].ID != "i1" {
		t.Errorf("persisted items = %+v", f.items.upserts)
	}
	if f.items.upserts[0].State.Stage != srs.StageLearning {
		t.Errorf("persisted stage = %s, want learning", f.items.upserts[0].State.Stage)
	}
	if len(f.reviews.log) != 1 {
		t.Errorf("appended %d review records, want 1", len(f.reviews.log))
	}
}

func TestSubmit_InvalidRating(t *testing.T) {
	f := newFixture(dueItem("i1", "u1"))
	ctx := context.Background()

	started, err := f.mgr.Start(ctx, "u1", store.ItemFilter{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	for _, r := range []srs.Rating{0, 6, -1} {
		if _, err := f.mgr.Submit(ctx, started.SessionID, r, Telemetry{}); !errors.Is(err, srs.ErrInvalidRating) {
			t.Errorf("Submit(rating=%d): err = %v, want ErrInvalidRating", r, err)
		}
	}
	if len(f.items.upserts) != 0 || len(f.reviews.log) != 0 {
		t.Error("invalid rating reached the store")
	}
}

func TestSubmit_PersistFailureDoesNotAdvance(t *testing.T) {
	f := newFixture(dueItem("i1", "u1"), dueItem("i2", "u1"))
	ctx := context.Background()

	started, err := f.mgr.Start(ctx, "u1", store.ItemFilter{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	f.items.upsertErr = errors.New("disk full")
	if _, err := f.mgr.Submit(ctx, started.SessionID, 4, Telemetry{}); err == nil {
		t.Fatal("Submit succeeded despite persistence failure")
	}

	item, progress, err := f.mgr.Current(started.SessionID)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if item.ID != "i1" {
		t.Errorf("cursor advanced to %s after failed write", item.ID)
	}
	if progress.Current != 0 {
		t.Errorf("progress.Current = %d, want 0", progress.Current)
	}
	if item.State.Stage != srs.StageNew {
		t.Errorf("item state mutated by failed submit: stage = %s", item.State.Stage)
	}

	// The same submission retries cleanly.
	f.items.upsertErr = nil
	res, err := f.mgr.Submit(ctx, started.SessionID, 4, Telemetry{})
	if err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if res.Record.ItemID != "i1" {
		t.Errorf("retried record item = %s, want i1", res.Record.ItemID)
	}
}

func TestSubmit_AutoCompletesOnLastItem(t *testing.T) {
	f := newFixture(dueItem("i1", "u1"), dueItem("i2", "u1"))
	ctx := context.Background()

	started, err := f.mgr.Start(ctx, "u1", store.ItemFilter{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := f.mgr.Submit(ctx, started.SessionID, 5, Telemetry{}); err != nil {
		t.Fatalf("Submit 1: %v", err)
	}
	res, err := f.mgr.Submit(ctx, started.SessionID, 3, Telemetry{})
	if err != nil {
		t.Fatalf("Submit 2: %v", err)
	}

	if !res.Done {
		t.Fatal("final submit did not complete the session")
	}
	if res.Next != nil {
		t.Errorf("Next = %+v on completed session", res.Next)
	}
	if res.Metrics == nil {
		t.Fatal("no metrics on completion")
	}
	if res.Metrics.AverageRating != 4 {
		t.Errorf("average rating = %v, want 4", res.Metrics.AverageRating)
	}
	if res.Metrics.PerfectCount != 1 {
		t.Errorf("perfect count = %d, want 1", res.Metrics.PerfectCount)
	}
	if res.Metrics.CompletionRate != 1 {
		t.Errorf("completion rate = %v, want 1", res.Metrics.CompletionRate)
	}

	if len(f.sessions.updated) != 1 {
		t.Fatalf("updated %d session records, want 1", len(f.sessions.updated))
	}
	rec := f.sessions.updated[0]
	if rec.Status != store.SessionCompleted || rec.Completed != 2 || rec.EndedAt.IsZero() {
		t.Errorf("terminal session record = %+v", rec)
	}

	// Completed sessions are evicted.
	if f.mgr.Active() != 0 {
		t.Errorf("Active() = %d after completion, want 0", f.mgr.Active())
	}
	if _, _, err := f.mgr.Current(started.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Current after eviction: err = %v, want ErrSessionNotFound", err)
	}
}

func TestComplete_NudgesIntervalModifier(t *testing.T) {
	cases := []struct {
		name    string
		ratings []srs.Rating
		want    float64
	}{
		{"excellent session relaxes", []srs.Rating{5, 5}, 105},
		{"poor session tightens", []srs.Rating{1, 2}, 95},
		{"middling session leaves modifier alone", []srs.Rating{4, 3}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(dueItem("i1", "u1"), dueItem("i2", "u1"))
			ctx := context.Background()

			started, err := f.mgr.Start(ctx, "u1", store.ItemFilter{})
			if err != nil {
				t.Fatalf("Start: %v", err)
			}
			for _, r := range tc.ratings {
				if _, err := f.mgr.Submit(ctx, started.SessionID, r, Telemetry{}); err != nil {
					t.Fatalf("Submit(%d): %v", r, err)
				}
			}

			p, err := f.params.Load(ctx, "u1")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if p.IntervalModifier != tc.want {
				t.Errorf("interval modifier = %v, want %v", p.IntervalModifier, tc.want)
			}
		})
	}
}

func TestComplete_RemainingItems(t *testing.T) {
	f := newFixture(dueItem("i1", "u1"), dueItem("i2", "u1"))
	ctx := context.Background()

	started, err := f.mgr.Start(ctx, "u1", store.ItemFilter{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := f.mgr.Complete(ctx, started.SessionID); !errors.Is(err, ErrSessionActive) {
		t.Errorf("Complete with items remaining: err = %v, want ErrSessionActive", err)
	}
}

func TestManager_UnknownSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, _, err := f.mgr.Current("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Current: err = %v, want ErrSessionNotFound", err)
	}
	if _, err := f.mgr.Submit(ctx, "nope", 4, Telemetry{}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Submit: err = %v, want ErrSessionNotFound", err)
	}
	if _, err := f.mgr.Complete(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Complete: err = %v, want ErrSessionNotFound", err)
	}
}

func TestSubmit_HistoryFeedsFactors(t *testing.T) {
	item := dueItem("i1", "u1")
	item.State = srs.LearningState{
		EaseFactor:   2.5,
		IntervalDays: 6,
		Repetitions:  2,
		Stage:        srs.StageReview,
	}
	f := newFixture(item)
	ctx := context.Background()

	// Seed a failing history so the error factor divides the interval.
	for i := 0; i < 5; i++ {
		rating := srs.Rating(1)
		if i%2 == 0 {
			rating = 4
		}
		f.reviews.log = append(f.reviews.log, srs.ReviewRecord{
			ItemID: "i1",
			UserID: "u1",
			Rating: rating,
		})
	}

	started, err := f.mgr.Start(ctx, "u1", store.ItemFilter{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	res, err := f.mgr.Submit(ctx, started.SessionID, 4, Telemetry{})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Record.Factors.Error <= 1.0 {
		t.Errorf("error factor = %v, want > 1 with failing history", res.Record.Factors.Error)
	}
}
