package session

import "github.com/cardwise/cardwise/internal/srs"

// buildMetrics derives the session summary from its submissions.
func buildMetrics(sess *Session) Metrics {
	var m Metrics
	if len(sess.queue) > 0 {
		m.CompletionRate = float64(len(sess.submissions)) / float64(len(sess.queue))
	}
	if len(sess.submissions) == 0 {
		return m
	}

	var sum int
	for _, sub := range sess.submissions {
		sum += int(sub.Rating)
		if sub.Rating == srs.RatingMax {
			m.PerfectCount++
		}
	}
	m.AverageRating = float64(sum) / float64(len(sess.submissions))
	return m
}
