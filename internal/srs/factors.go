package srs

// Factor computation windows and bounds.
const (
	errorWindow      = 5 // history entries feeding the error rate
	retentionWindow  = 5 // minimum history for the retention factor
	slowRatio        = 2.0
	fastRatio        = 0.5
	minTimeFactor    = 0.7
	maxTimeFactor    = 1.3
	minDifficulty    = 0.7
	maxDifficulty    = 1.3
	difficultTagStep = 0.1
	retentionSlack   = 0.1
	tightenFactor    = 0.9
	relaxFactor      = 1.1
)

// ComputeFactors derives the four adaptive multipliers for one review.
// Each factor defaults to neutral (1.0) when there is not enough data,
// and everything is neutral when adaptive mode is off.
func ComputeFactors(item *StudyItem, timeSpent, expected float64, p Parameters) Factors {
	if !p.Adaptive {
		return NeutralFactors()
	}
	return Factors{
		Time:       timeFactor(timeSpent, expected, p.Settings.TimeWeight),
		Error:      errorFactor(item.History, p.Settings.ErrorWeight),
		Difficulty: difficultyWeight(item, p.Settings),
		Retention:  retentionFactor(item.History, p.Settings.RetentionTarget),
	}
}

// timeFactor penalizes answers much slower than expected and rewards much
// faster ones. The result multiplies the interval, so <1 shortens it.
func timeFactor(actual, expected, weight float64) float64 {
	if actual <= 0 || expected <= 0 {
		return 1.0
	}
	ratio := actual / expected
	switch {
	case ratio > slowRatio:
		f := 1.0 - (ratio-slowRatio)*0.1*weight
		if f < minTimeFactor {
			return minTimeFactor
		}
		return f
	case ratio < fastRatio:
		f := 1.0 + (fastRatio-ratio)*0.2*weight
		if f > maxTimeFactor {
			return maxTimeFactor
		}
		return f
	default:
		return 1.0
	}
}

// errorFactor grows with the failure rate over the last errorWindow
// reviews. It is applied as a divisor of the interval, so a higher error
// rate means a shorter interval.
func errorFactor(history []ReviewRecord, weight float64) float64 {
	recent := lastRecords(history, errorWindow)
	if len(recent) == 0 {
		return 1.0
	}
	failed := 0
	for _, rec := range recent {
		if !rec.Rating.Successful() {
			failed++
		}
	}
	errorRate := float64(failed) / float64(len(recent))
	return 1.0 + errorRate*weight
}

// difficultyWeight lowers ease growth for items tagged with subjects the
// user struggles with. Each matching tag subtracts difficultTagStep
// scaled by the configured weight; the result is clamped to [0.7, 1.3].
func difficultyWeight(item *StudyItem, s Settings) float64 {
	w := 1.0
	for _, tag := range s.DifficultTags {
		if item.HasTag(tag) {
			w -= difficultTagStep * s.DifficultyWeight
		}
	}
	if w < minDifficulty {
		return minDifficulty
	}
	if w > maxDifficulty {
		return maxDifficulty
	}
	return w
}

// retentionFactor nudges ease based on how the item's actual retention
// compares to the user's target. Needs at least retentionWindow entries.
func retentionFactor(history []ReviewRecord, target float64) float64 {
	if len(history) < retentionWindow {
		return 1.0
	}
	success := 0
	for _, rec := range history {
		if rec.Rating.Successful() {
			success++
		}
	}
	actual := float64(success) / float64(len(history))
	switch {
	case actual < target:
		return tightenFactor
	case actual > target+retentionSlack:
		return relaxFactor
	default:
		return 1.0
	}
}
