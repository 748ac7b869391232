package srs

import (
	"math"
	"time"
)

// Graduation ladder: first success schedules 1 day out, second success 6
// days out, after which intervals grow multiplicatively by ease.
const (
	firstInterval      = 1
	graduationInterval = 6
)

// Advance applies a single review to a learning state and returns the
// updated state plus the review record capturing what was applied. It is
// total over its documented input domain; callers validate the rating.
//
// The ease factor is updated first (bonus or penalty, then difficulty and
// retention weighting, then clamping), and the interval is derived from
// the updated ease. The time and error factors only touch the interval
// once the item is past graduation.
func Advance(state LearningState, rating Rating, timeSpent float64, f Factors, p Parameters, now time.Time) (LearningState, ReviewRecord) {
	next := state
	quality := rating.Quality()
	prevInterval := state.IntervalDays

	if rating.Passing() {
		q := float64(quality)
		next.EaseFactor += p.EaseBonus - (5-q)*(0.08+(5-q)*0.02)
	} else {
		next.EaseFactor -= p.EasePenalty
	}
	next.EaseFactor = p.ClampEase(next.EaseFactor * f.Difficulty * f.Retention)

	switch {
	case !rating.Passing():
		// Failed recall resets progress and puts the item back in learning.
		next.Repetitions = 0
		next.IntervalDays = 0
		next.Stage = StageLearning

	case state.IntervalDays == 0:
		// First success after creation or a failure.
		next.IntervalDays = firstInterval
		next.Stage = StageLearning
		next.Repetitions = state.Repetitions + 1

	case state.Repetitions == 1:
		// Graduation into the long-interval regime.
		next.IntervalDays = graduationInterval
		next.Stage = StageReview
		next.Repetitions = state.Repetitions + 1

	default:
		days := math.Round(float64(state.IntervalDays) * next.EaseFactor)
		days *= p.IntervalModifier / 100.0
		if p.Settings.ScaleIntervals {
			days *= f.Time
		}
		days /= f.Error
		next.IntervalDays = int(math.Round(days))
		next.Stage = StageReview
		next.Repetitions = state.Repetitions + 1
	}

	if next.Stage == StageReview {
		next.IntervalDays = p.ClampInterval(next.IntervalDays)
	}

	next.LastReviewAt = now
	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)

	rec := ReviewRecord{
		Timestamp:     now,
		Rating:        rating,
		IntervalDays:  prevInterval,
		TimeSpentSecs: timeSpent,
		EaseAfter:     next.EaseFactor,
		Factors:       f,
	}
	return next, rec
}

// Review runs the full per-submission pipeline for an item: expected-time
// estimation, factor computation, and the interval update. The item's
// state is replaced and the record (stamped with the item's identity and
// tags) is appended to its in-memory history. Persistence is the
// caller's responsibility.
func Review(item *StudyItem, rating Rating, timeSpent float64, p Parameters, now time.Time) (ReviewRecord, error) {
	if !rating.Valid() {
		return ReviewRecord{}, ErrInvalidRating
	}
	if err := item.Validate(); err != nil {
		return ReviewRecord{}, err
	}

	expected := ExpectedTime(item)
	factors := ComputeFactors(item, timeSpent, expected, p)

	state, rec := Advance(item.State, rating, timeSpent, factors, p, now)
	rec.ItemID = item.ID
	rec.UserID = item.UserID
	rec.Tags = append([]string(nil), item.Tags...)

	item.State = state
	item.History = append(item.History, rec)
	return rec, nil
}
