package srs

// Expected-time heuristics. The base estimate comes from content shape;
// once an item has recorded reviews, the estimate is averaged with the
// learner's actual recent answer times.
const (
	baseAnswerSecs     = 10.0
	longContentChars   = 500
	mediumContentChars = 200
	longContentBonus   = 10.0
	mediumContentBonus = 5.0
	imageBonus         = 5.0
	formulaBonus       = 15.0

	// estimateWindow is how many recent records feed the history average.
	estimateWindow = 3
)

// ExpectedTime estimates how long a normal answer to the item should take,
// in seconds. Always positive.
func ExpectedTime(item *StudyItem) float64 {
	expected := baseAnswerSecs

	contentLen := len(item.Front) + len(item.Back)
	switch {
	case contentLen > longContentChars:
		expected += longContentBonus
	case contentLen > mediumContentChars:
		expected += mediumContentBonus
	}

	switch item.ContentType {
	case ContentImage:
		expected += imageBonus
	case ContentFormula:
		expected += formulaBonus
	}

	recent := lastRecords(item.History, estimateWindow)
	if len(recent) == 0 {
		return expected
	}

	var sum float64
	for _, rec := range recent {
		sum += rec.TimeSpentSecs
	}
	historical := sum / float64(len(recent))

	return (expected + historical) / 2
}

// lastRecords returns the newest n records (history is ordered oldest first).
func lastRecords(history []ReviewRecord, n int) []ReviewRecord {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
