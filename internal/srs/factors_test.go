package srs

import "testing"

func records(ratings ...Rating) []ReviewRecord {
	recs := make([]ReviewRecord, len(ratings))
	for i, r := range ratings {
		recs[i] = ReviewRecord{Rating: r}
	}
	return recs
}

func TestTimeFactor(t *testing.T) {
	cases := []struct {
		name     string
		actual   float64
		expected float64
		weight   float64
		want     float64
	}{
		{"normal pace", 12, 10, 1, 1.0},
		{"boundary slow", 20, 10, 1, 1.0},
		{"slow", 30, 10, 1, 0.9},
		{"very slow clamps", 200, 10, 1, 0.7},
		{"boundary fast", 5, 10, 1, 1.0},
		{"fast", 2.5, 10, 1, 1.05},
		{"instant with heavy weight clamps", 0.1, 10, 4, 1.3},
		{"zero actual is neutral", 0, 10, 1, 1.0},
		{"weight dampens slow penalty", 30, 10, 0.5, 0.95},
	}
	for _, tc := range cases {
		if got := timeFactor(tc.actual, tc.expected, tc.weight); !almostEqual(got, tc.want) {
			t.Errorf("%s: timeFactor = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestErrorFactor(t *testing.T) {
	cases := []struct {
		name    string
		history []ReviewRecord
		weight  float64
		want    float64
	}{
		{"no history is neutral", nil, 1.5, 1.0},
		{"all passing", records(4, 5, 4, 5, 3), 1.0, 1.0},
		{"two failures of five", records(5, 1, 4, 2, 5), 1.5, 1.6},
		{"window ignores older failures", records(1, 1, 1, 4, 5, 4, 5, 3), 1.0, 1.0},
		{"all failing", records(1, 2, 1, 2, 1), 1.0, 2.0},
	}
	for _, tc := range cases {
		if got := errorFactor(tc.history, tc.weight); !almostEqual(got, tc.want) {
			t.Errorf("%s: errorFactor = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDifficultyWeight(t *testing.T) {
	settings := Settings{DifficultyWeight: 1.0, DifficultTags: []string{"calculus", "kanji"}}

	cases := []struct {
		name string
		tags []string
		want float64
	}{
		{"no tags", nil, 1.0},
		{"unrelated tag", []string{"geography"}, 1.0},
		{"one difficult tag", []string{"calculus"}, 0.9},
		{"two difficult tags", []string{"calculus", "kanji"}, 0.8},
	}
	for _, tc := range cases {
		item := &StudyItem{Tags: tc.tags}
		if got := difficultyWeight(item, settings); !almostEqual(got, tc.want) {
			t.Errorf("%s: difficultyWeight = %v, want %v", tc.name, got, tc.want)
		}
	}

	// Heavy weight with many matches clamps at the floor.
	heavy := Settings{
		DifficultyWeight: 2.0,
		DifficultTags:    []string{"a", "b", "c"},
	}
	item := &StudyItem{Tags: []string{"a", "b", "c"}}
	if got := difficultyWeight(item, heavy); !almostEqual(got, 0.7) {
		t.Errorf("clamped difficultyWeight = %v, want 0.7", got)
	}
}

func TestRetentionFactor(t *testing.T) {
	cases := []struct {
		name    string
		history []ReviewRecord
		target  float64
		want    float64
	}{
		{"sparse history is neutral", records(5, 5, 1), 0.9, 1.0},
		{"below target tightens", records(1, 2, 4, 5, 4), 0.9, 0.9},
		{"well above target relaxes", records(5, 5, 4, 4, 5), 0.8, 1.1},
		{"within slack is neutral", records(5, 5, 4, 4, 1), 0.8, 1.0},
	}
	for _, tc := range cases {
		if got := retentionFactor(tc.history, tc.target); !almostEqual(got, tc.want) {
			t.Errorf("%s: retentionFactor = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestComputeFactors_AdaptiveOff(t *testing.T) {
	p := DefaultParameters("u1")
	p.Adaptive = false
	p.Settings.DifficultTags = []string{"hard"}

	item := &StudyItem{Tags: []string{"hard"}, History: records(1, 1, 1, 1, 1)}
	got := ComputeFactors(item, 100, 10, p)
	if got != NeutralFactors() {
		t.Errorf("ComputeFactors with adaptive off = %+v, want neutral", got)
	}
}

func TestComputeFactors_SparseHistoryIsNeutral(t *testing.T) {
	p := DefaultParameters("u1")
	item := &StudyItem{Front: "q", Back: "a"}
	got := ComputeFactors(item, 12, ExpectedTime(item), p)
	if got != NeutralFactors() {
		t.Errorf("ComputeFactors for new item = %+v, want neutral", got)
	}
}
