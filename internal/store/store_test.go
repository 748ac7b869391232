package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cardwise/cardwise/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testItem(id, userID string, next time.Time, tags ...string) *srs.StudyItem {
	return &srs.StudyItem{
		ID:          id,
		UserID:      userID,
		Front:       "front of " + id,
		Back:        "back of " + id,
		ContentType: srs.ContentText,
		Tags:        tags,
		State: srs.LearningState{
			EaseFactor:   srs.DefaultInitialEase,
			Stage:        srs.StageNew,
			NextReviewAt: next,
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestItemRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Items()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	item := testItem("item-1", "u1", now, "kanji")

	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Front != item.Front || got.UserID != "u1" {
		t.Errorf("round-tripped item = %+v", got)
	}
	if got.State.Stage != srs.StageNew || got.State.EaseFactor != srs.DefaultInitialEase {
		t.Errorf("round-tripped state = %+v", got.State)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "kanji" {
		t.Errorf("round-tripped tags = %v", got.Tags)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: err = %v, want ErrNotFound", err)
	}
}

func TestDueOrderingAndFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.Items()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	items := []*srs.StudyItem{
		testItem("later", "u1", now.Add(-time.Hour)),
		testItem("earliest", "u1", now.Add(-48*time.Hour), "kanji"),
		testItem("future", "u1", now.Add(24*time.Hour)),
		testItem("other-user", "u2", now.Add(-time.Hour)),
	}
	for _, it := range items {
		if err := repo.Create(ctx, it); err != nil {
			t.Fatalf("create %s: %v", it.ID, err)
		}
	}

	due, err := repo.Due(ctx, "u1", now, ItemFilter{}, 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("due returned %d items, want 2", len(due))
	}
	if due[0].ID != "earliest" || due[1].ID != "later" {
		t.Errorf("due order = [%s, %s], want [earliest, later]", due[0].ID, due[1].ID)
	}

	tagged, err := repo.Due(ctx, "u1", now, ItemFilter{Tags: []string{"kanji"}}, 0)
	if err != nil {
		t.Fatalf("due with tag filter: %v", err)
	}
	if len(tagged) != 1 || tagged[0].ID != "earliest" {
		t.Errorf("tag-filtered due = %+v", tagged)
	}

	upcoming, err := s.Items().Upcoming(ctx, "u1", now, 7, ItemFilter{}, 0)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != "future" {
		t.Errorf("upcoming = %+v", upcoming)
	}

	counts, err := repo.CountByStage(ctx, "u1")
	if err != nil {
		t.Fatalf("count by stage: %v", err)
	}
	if counts[srs.StageNew] != 3 {
		t.Errorf("new count = %d, want 3", counts[srs.StageNew])
	}
}

func TestDueIdempotentUnderPinnedClock(t *testing.T) {
	s := openTestStore(t)
	repo := s.Items()
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"c", "a", "b"} {
		it := testItem(id, "u1", now.Add(-time.Duration(i+1)*time.Hour))
		if err := repo.Create(ctx, it); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	ids := func(items []*srs.StudyItem) []string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.ID
		}
		return out
	}

	first, err := repo.Due(ctx, "u1", now, ItemFilter{}, 0)
	if err != nil {
		t.Fatalf("first due: %v", err)
	}
	second, err := repo.Due(ctx, "u1", now, ItemFilter{}, 0)
	if err != nil {
		t.Fatalf("second due: %v", err)
	}

	got, again := ids(first), ids(second)
	if len(got) != 3 {
		t.Fatalf("due returned %d items, want 3", len(got))
	}
	for i := range got {
		if got[i] != again[i] {
			t.Fatalf("due not idempotent: %v then %v", got, again)
		}
	}
	// Ordered by next_review_at ascending: b was pushed furthest back.
	if got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Errorf("due order = %v, want [b a c]", got)
	}
}

func TestUpsertState(t *testing.T) {
	s := openTestStore(t)
	repo := s.Items()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	item := testItem("item-1", "u1", now)
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	item.State.Stage = srs.StageReview
	item.State.IntervalDays = 6
	item.State.Repetitions = 2
	item.State.LastReviewAt = now
	item.State.NextReviewAt = now.AddDate(0, 0, 6)
	if err := repo.UpsertState(ctx, item); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State.Stage != srs.StageReview || got.State.IntervalDays != 6 {
		t.Errorf("updated state = %+v", got.State)
	}
}

func TestReviewLogSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reviews()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 4; i++ {
		rec := srs.ReviewRecord{
			ItemID:        "item-1",
			UserID:        "u1",
			Timestamp:     base, // identical timestamps; sequence still orders
			Rating:        srs.Rating(i + 2),
			IntervalDays:  i,
			TimeSpentSecs: 10,
			EaseAfter:     2.5,
			Factors:       srs.NeutralFactors(),
		}
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.RecentByItem(ctx, "item-1", 3)
	if err != nil {
		t.Fatalf("recent by item: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Oldest first within the window: the first append fell out.
	for i, rec := range records {
		if want := srs.Rating(i + 3); rec.Rating != want {
			t.Errorf("records[%d].Rating = %d, want %d", i, rec.Rating, want)
		}
	}
	if records[0].Factors != srs.NeutralFactors() {
		t.Errorf("factors round-trip = %+v", records[0].Factors)
	}

	byUser, err := repo.RecentByUser(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("recent by user: %v", err)
	}
	if len(byUser) != 4 {
		t.Errorf("recent by user returned %d, want 4", len(byUser))
	}
}

func TestParamsDefaultAndSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.Params()
	ctx := context.Background()

	p, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load (absent): %v", err)
	}
	if p.IntervalModifier != srs.DefaultIntervalModifier {
		t.Errorf("default modifier = %v, want %v", p.IntervalModifier, srs.DefaultIntervalModifier)
	}

	p.IntervalModifier = 110
	p.Settings.DifficultTags = []string{"calculus"}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Save again to hit the update path.
	p.NewPerDay = 15
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.IntervalModifier != 110 || got.NewPerDay != 15 {
		t.Errorf("loaded params = %+v", got)
	}
	if len(got.Settings.DifficultTags) != 1 || got.Settings.DifficultTags[0] != "calculus" {
		t.Errorf("loaded difficult tags = %v", got.Settings.DifficultTags)
	}
}

func TestSessionRecordLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	rec := SessionRecord{
		ID:         "sess-1",
		UserID:     "u1",
		Status:     SessionInProgress,
		StartedAt:  now,
		TotalItems: 3,
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec.Status = SessionCompleted
	rec.EndedAt = now.Add(5 * time.Minute)
	rec.Completed = 3
	rec.AverageRating = 4.2
	rec.PerfectCount = 1
	rec.CompletionRate = 1
	if err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := repo.Update(ctx, SessionRecord{ID: "missing", Status: SessionCompleted}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: err = %v, want ErrNotFound", err)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 10; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
