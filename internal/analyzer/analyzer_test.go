package analyzer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwise/cardwise/internal/srs"
)

func rec(rating srs.Rating, ease float64, tags ...string) srs.ReviewRecord {
	return srs.ReviewRecord{
		UserID:    "u1",
		Rating:    rating,
		EaseAfter: ease,
		Tags:      tags,
	}
}

func repeat(n int, r srs.ReviewRecord) []srs.ReviewRecord {
	out := make([]srs.ReviewRecord, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func TestAnalyzeEmptyHistory(t *testing.T) {
	report := Analyze(nil)

	assert.Equal(t, 0, report.TotalReviews)
	assert.Equal(t, Recommendation{
		NewPerDay:        srs.DefaultNewPerDay,
		IntervalModifier: srs.DefaultIntervalModifier,
		RetentionTarget:  srs.DefaultRetentionTarget,
	}, report.Recommendation)
}

func TestAnalyzeStatistics(t *testing.T) {
	records := []srs.ReviewRecord{
		rec(5, 2.5), rec(4, 2.5), rec(3, 2.4), rec(1, 2.2),
	}
	report := Analyze(records)

	assert.Equal(t, 4, report.TotalReviews)
	assert.InDelta(t, 0.75, report.RetentionRate, 1e-9)
	assert.InDelta(t, (2.5+2.5+2.4+2.2)/4, report.MeanEase, 1e-9)
}

func TestAnalyzeStrugglingUser(t *testing.T) {
	// Ease pinned at the floor and zero retention.
	report := Analyze(repeat(20, rec(1, 1.3)))

	// 20 * 1.3/2.5 = 10.4 -> 10
	assert.Equal(t, 10, report.Recommendation.NewPerDay)
	// Zero retention clamps the modifier at the floor.
	assert.Equal(t, 80.0, report.Recommendation.IntervalModifier)
	assert.Equal(t, 0.8, report.Recommendation.RetentionTarget)
}

func TestAnalyzeStrongUser(t *testing.T) {
	report := Analyze(repeat(20, rec(5, 2.5)))

	assert.Equal(t, 20, report.Recommendation.NewPerDay)
	// Perfect retention: 100 * 1.0/0.9 = 111.1 -> 111
	assert.Equal(t, 111.0, report.Recommendation.IntervalModifier)
	// Observed retention clamps at the target ceiling.
	assert.Equal(t, 0.95, report.Recommendation.RetentionTarget)
}

func TestAnalyzeDifficultTags(t *testing.T) {
	var records []srs.ReviewRecord
	// "kanji": 1 of 6 successful.
	records = append(records, repeat(5, rec(1, 2.0, "kanji"))...)
	records = append(records, rec(4, 2.1, "kanji"))
	// "geography": 6 of 6 successful.
	records = append(records, repeat(6, rec(5, 2.5, "geography"))...)
	// "calculus": 1 of 3 successful, too few observations to flag.
	records = append(records, rec(1, 2.0, "calculus"), rec(2, 1.9, "calculus"), rec(4, 2.0, "calculus"))

	report := Analyze(records)

	// Ranked worst first; calculus is excluded for too few observations.
	assert.Equal(t, []string{"kanji", "geography"}, report.Recommendation.DifficultTags)

	// Worst success rate sorts first in the stats.
	require.Len(t, report.Tags, 3)
	assert.Equal(t, "kanji", report.Tags[0].Tag)
	assert.Equal(t, "calculus", report.Tags[1].Tag)
	assert.Equal(t, "geography", report.Tags[2].Tag)
}

func TestAnalyzeDifficultTagsRankUnconditional(t *testing.T) {
	// A tag can lead the ranking while still passing most reviews.
	var records []srs.ReviewRecord
	records = append(records, repeat(4, rec(4, 2.3, "algebra"))...)
	records = append(records, rec(1, 2.1, "algebra"))
	records = append(records, repeat(5, rec(5, 2.5, "geometry"))...)

	report := Analyze(records)
	assert.Equal(t, []string{"algebra", "geometry"}, report.Recommendation.DifficultTags)
}

func TestAnalyzeDifficultTagsCappedAtFive(t *testing.T) {
	tags := []string{"a", "b", "c", "d", "e", "f"}
	var records []srs.ReviewRecord
	for i, tag := range tags {
		// Success counts 0..5 of 6 give each tag a distinct rate.
		records = append(records, repeat(i, rec(5, 2.5, tag))...)
		records = append(records, repeat(6-i, rec(1, 2.0, tag))...)
	}

	report := Analyze(records)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, report.Recommendation.DifficultTags)
}

func TestAnalyzeTagTieBreaksByName(t *testing.T) {
	var records []srs.ReviewRecord
	records = append(records, repeat(5, rec(1, 2.0, "zeta"))...)
	records = append(records, repeat(5, rec(1, 2.0, "alpha"))...)

	report := Analyze(records)
	assert.Equal(t, []string{"alpha", "zeta"}, report.Recommendation.DifficultTags)
}

type stubReviews struct {
	records []srs.ReviewRecord
}

func (s *stubReviews) Append(ctx context.Context, rec srs.ReviewRecord) error { return nil }

func (s *stubReviews) RecentByItem(ctx context.Context, itemID string, limit int) ([]srs.ReviewRecord, error) {
	return nil, nil
}

func (s *stubReviews) RecentByUser(ctx context.Context, userID string, limit int) ([]srs.ReviewRecord, error) {
	if len(s.records) > limit {
		return s.records[len(s.records)-limit:], nil
	}
	return s.records, nil
}

type stubParams struct {
	saved *srs.Parameters
}

func (s *stubParams) Load(ctx context.Context, userID string) (srs.Parameters, error) {
	if s.saved != nil {
		return *s.saved, nil
	}
	return srs.DefaultParameters(userID), nil
}

func (s *stubParams) Save(ctx context.Context, p srs.Parameters) error {
	s.saved = &p
	return nil
}

func TestServiceApply(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	params := &stubParams{}
	svc := NewService(&stubReviews{records: repeat(20, rec(5, 2.5))}, params, func() time.Time { return now })

	report, err := svc.Analyze(context.Background(), "u1")
	require.NoError(t, err)

	saved, err := svc.Apply(context.Background(), "u1", report.Recommendation)
	require.NoError(t, err)

	assert.Equal(t, report.Recommendation.IntervalModifier, saved.IntervalModifier)
	assert.True(t, saved.AnalyzedAt.Equal(now))
	require.NotNil(t, params.saved)
	// Untouched fields survive the merge.
	assert.Equal(t, srs.DefaultEaseBonus, saved.EaseBonus)
}
