package srs

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func defaultTestParams() Parameters {
	return DefaultParameters("user-1")
}

func TestAdvance_GraduationPath(t *testing.T) {
	p := defaultTestParams()
	state := LearningState{EaseFactor: 2.5, IntervalDays: 0, Repetitions: 0, Stage: StageNew}

	// First success: rating 5 (quality 4) leaves ease untouched.
	state, _ = Advance(state, 5, 12, NeutralFactors(), p, testNow)
	if !almostEqual(state.EaseFactor, 2.5) {
		t.Errorf("EaseFactor = %v, want 2.5", state.EaseFactor)
	}
	if state.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", state.IntervalDays)
	}
	if state.Stage != StageLearning {
		t.Errorf("Stage = %q, want learning", state.Stage)
	}
	if state.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", state.Repetitions)
	}
	if want := testNow.AddDate(0, 0, 1); !state.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", state.NextReviewAt, want)
	}

	// Second success graduates to the review stage.
	next := testNow.AddDate(0, 0, 1)
	state, _ = Advance(state, 5, 12, NeutralFactors(), p, next)
	if state.IntervalDays != 6 {
		t.Errorf("IntervalDays = %d, want 6", state.IntervalDays)
	}
	if state.Stage != StageReview {
		t.Errorf("Stage = %q, want review", state.Stage)
	}
	if state.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", state.Repetitions)
	}
}

func TestAdvance_FailureResetsProgress(t *testing.T) {
	p := defaultTestParams()
	state := LearningState{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2, Stage: StageReview}

	state, _ = Advance(state, 2, 30, NeutralFactors(), p, testNow)
	if state.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", state.Repetitions)
	}
	if state.IntervalDays != 0 {
		t.Errorf("IntervalDays = %d, want 0", state.IntervalDays)
	}
	if state.Stage != StageLearning {
		t.Errorf("Stage = %q, want learning", state.Stage)
	}
	if !almostEqual(state.EaseFactor, 2.3) {
		t.Errorf("EaseFactor = %v, want 2.3", state.EaseFactor)
	}
}

func TestAdvance_AllFailingRatings(t *testing.T) {
	p := defaultTestParams()
	for _, rating := range []Rating{1, 2} {
		state := LearningState{EaseFactor: 2.0, IntervalDays: 14, Repetitions: 5, Stage: StageReview}
		state, _ = Advance(state, rating, 10, NeutralFactors(), p, testNow)
		if state.Repetitions != 0 || state.IntervalDays != 0 || state.Stage != StageLearning {
			t.Errorf("rating %d: state = %+v, want reset to learning", rating, state)
		}
	}
}

func TestAdvance_SteadyStateInterval(t *testing.T) {
	p := defaultTestParams()
	state := LearningState{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2, Stage: StageReview}

	// Rating 5 keeps ease at 2.5; interval = round(6 * 2.5) = 15.
	state, rec := Advance(state, 5, 12, NeutralFactors(), p, testNow)
	if state.IntervalDays != 15 {
		t.Errorf("IntervalDays = %d, want 15", state.IntervalDays)
	}
	if state.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", state.Repetitions)
	}
	if rec.IntervalDays != 6 {
		t.Errorf("record IntervalDays = %d, want interval at time of review (6)", rec.IntervalDays)
	}
	if !almostEqual(rec.EaseAfter, 2.5) {
		t.Errorf("record EaseAfter = %v, want 2.5", rec.EaseAfter)
	}
}

func TestAdvance_ErrorFactorShortensInterval(t *testing.T) {
	p := defaultTestParams()
	base := LearningState{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2, Stage: StageReview}

	neutral, _ := Advance(base, 5, 12, NeutralFactors(), p, testNow)

	f := NeutralFactors()
	f.Error = 1.6
	shortened, _ := Advance(base, 5, 12, f, p, testNow)

	// Pre-factor interval is 15; divided by 1.6 and rounded gives 9.
	if shortened.IntervalDays != 9 {
		t.Errorf("IntervalDays = %d, want 9", shortened.IntervalDays)
	}
	if shortened.IntervalDays >= neutral.IntervalDays {
		t.Errorf("error factor did not shorten interval: %d >= %d",
			shortened.IntervalDays, neutral.IntervalDays)
	}
}

func TestAdvance_TimeFactorScalesInterval(t *testing.T) {
	p := defaultTestParams()
	base := LearningState{EaseFactor: 2.5, IntervalDays: 10, Repetitions: 4, Stage: StageReview}

	f := NeutralFactors()
	f.Time = 0.8
	scaled, _ := Advance(base, 5, 12, f, p, testNow)
	// round(round(10*2.5) * 0.8) = 20
	if scaled.IntervalDays != 20 {
		t.Errorf("IntervalDays = %d, want 20", scaled.IntervalDays)
	}

	p.Settings.ScaleIntervals = false
	unscaled, _ := Advance(base, 5, 12, f, p, testNow)
	if unscaled.IntervalDays != 25 {
		t.Errorf("IntervalDays with scaling disabled = %d, want 25", unscaled.IntervalDays)
	}
}

func TestAdvance_IntervalModifier(t *testing.T) {
	p := defaultTestParams()
	p.IntervalModifier = 80
	base := LearningState{EaseFactor: 2.5, IntervalDays: 10, Repetitions: 4, Stage: StageReview}

	state, _ := Advance(base, 5, 12, NeutralFactors(), p, testNow)
	// round(round(10*2.5) * 0.8) = 20
	if state.IntervalDays != 20 {
		t.Errorf("IntervalDays = %d, want 20", state.IntervalDays)
	}
}

func TestAdvance_EaseStaysClamped(t *testing.T) {
	p := defaultTestParams()

	cases := []struct {
		name   string
		ease   float64
		rating Rating
		f      Factors
	}{
		{"repeated failure at floor", 1.3, 1, NeutralFactors()},
		{"success at ceiling", 2.5, 5, Factors{Time: 1, Error: 1, Difficulty: 1.3, Retention: 1.1}},
		{"failure with tightening", 1.4, 2, Factors{Time: 1, Error: 1, Difficulty: 0.7, Retention: 0.9}},
		{"mid success", 2.0, 4, NeutralFactors()},
	}
	for _, tc := range cases {
		state := LearningState{EaseFactor: tc.ease, IntervalDays: 6, Repetitions: 2, Stage: StageReview}
		for i := 0; i < 10; i++ {
			state, _ = Advance(state, tc.rating, 10, tc.f, p, testNow)
			if state.EaseFactor < 1.3-1e-9 || state.EaseFactor > 2.5+1e-9 {
				t.Fatalf("%s: ease %v escaped [1.3, 2.5] at step %d", tc.name, state.EaseFactor, i)
			}
		}
	}
}

func TestAdvance_ReviewIntervalStaysBounded(t *testing.T) {
	p := defaultTestParams()
	p.MaxIntervalDays = 30
	state := LearningState{EaseFactor: 2.5, IntervalDays: 20, Repetitions: 6, Stage: StageReview}

	for i := 0; i < 5; i++ {
		state, _ = Advance(state, 5, 10, NeutralFactors(), p, testNow)
		if state.Stage == StageReview && (state.IntervalDays < 1 || state.IntervalDays > 30) {
			t.Fatalf("interval %d escaped [1, 30]", state.IntervalDays)
		}
	}
	if state.IntervalDays != 30 {
		t.Errorf("IntervalDays = %d, want capped at 30", state.IntervalDays)
	}
}

func TestReview_InvalidRating(t *testing.T) {
	p := defaultTestParams()
	item := &StudyItem{ID: "i1", UserID: "u1", Front: "2+2", Back: "4", ContentType: ContentText}
	item.State = NewState(p, testNow)

	for _, r := range []Rating{0, 6, -1} {
		if _, err := Review(item, r, 5, p, testNow); err != ErrInvalidRating {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", r, err)
		}
	}
	if len(item.History) != 0 {
		t.Errorf("history mutated on invalid rating")
	}
}

func TestReview_AppendsHistoryAndStampsIdentity(t *testing.T) {
	p := defaultTestParams()
	item := &StudyItem{
		ID: "i1", UserID: "u1", Front: "front", Back: "back",
		ContentType: ContentText, Tags: []string{"algebra"},
	}
	item.State = NewState(p, testNow)

	rec, err := Review(item, 5, 8, p, testNow)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if rec.ItemID != "i1" || rec.UserID != "u1" {
		t.Errorf("record identity = %s/%s, want i1/u1", rec.ItemID, rec.UserID)
	}
	if len(rec.Tags) != 1 || rec.Tags[0] != "algebra" {
		t.Errorf("record tags = %v, want [algebra]", rec.Tags)
	}
	if len(item.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(item.History))
	}
	if item.State.Stage != StageLearning || item.State.IntervalDays != 1 {
		t.Errorf("state = %+v, want first-success learning state", item.State)
	}
}

func TestReview_MissingFields(t *testing.T) {
	p := defaultTestParams()
	item := &StudyItem{ID: "i1", UserID: "u1"} // no front content
	if _, err := Review(item, 4, 5, p, testNow); err == nil {
		t.Error("expected validation error for missing front content")
	}
}
