package srs

import (
	"strings"
	"testing"
)

func TestExpectedTime_ContentShape(t *testing.T) {
	cases := []struct {
		name  string
		front string
		back  string
		ct    ContentType
		want  float64
	}{
		{"short text", "2+2", "4", ContentText, 10},
		{"medium text", strings.Repeat("a", 150), strings.Repeat("b", 100), ContentText, 15},
		{"long text", strings.Repeat("a", 400), strings.Repeat("b", 200), ContentText, 20},
		{"image", "diagram", "label", ContentImage, 15},
		{"formula", "integral", "result", ContentFormula, 25},
		{"long formula", strings.Repeat("x", 501), "y", ContentFormula, 35},
	}
	for _, tc := range cases {
		item := &StudyItem{Front: tc.front, Back: tc.back, ContentType: tc.ct}
		if got := ExpectedTime(item); got != tc.want {
			t.Errorf("%s: ExpectedTime = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestExpectedTime_AveragesRecentHistory(t *testing.T) {
	item := &StudyItem{Front: "q", Back: "a", ContentType: ContentText}
	item.History = []ReviewRecord{
		{TimeSpentSecs: 40}, // outside the 3-record window
		{TimeSpentSecs: 4},
		{TimeSpentSecs: 6},
		{TimeSpentSecs: 8},
	}
	// Shape estimate 10, mean of last three is 6: (10+6)/2 = 8.
	if got := ExpectedTime(item); got != 8 {
		t.Errorf("ExpectedTime = %v, want 8", got)
	}
}

func TestExpectedTime_AlwaysPositive(t *testing.T) {
	item := &StudyItem{Front: "", Back: "", ContentType: ContentText}
	item.History = []ReviewRecord{{TimeSpentSecs: 0}}
	if got := ExpectedTime(item); got <= 0 {
		t.Errorf("ExpectedTime = %v, want > 0", got)
	}
}
