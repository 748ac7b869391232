// Package analyzer derives per-user learning statistics from the review
// log and turns them into parameter recommendations. Analysis is a pure
// function of the records; persistence happens only through Service.Apply.
package analyzer

import (
	"math"
	"sort"

	"github.com/cardwise/cardwise/internal/srs"
)

const (
	// analysisWindow caps how many recent records one analysis reads.
	analysisWindow = 500

	// minTagObservations is how many reviews a tag needs before its
	// success rate is trusted.
	minTagObservations = 5

	// maxDifficultTags bounds the recommendation to the worst offenders.
	maxDifficultTags = 5

	minNewPerDay = 5
	maxNewPerDay = 30

	minIntervalModifier = 80.0
	maxIntervalModifier = 120.0

	minRetentionTarget = 0.8
	maxRetentionTarget = 0.95
)

// TagStat is aggregated review performance for one tag.
type TagStat struct {
	Tag     string
	Total   int
	Success int
}

// SuccessRate is successes over total, 0 for an empty stat.
func (s TagStat) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Success) / float64(s.Total)
}

// Recommendation is the parameter adjustment the analyzer proposes.
type Recommendation struct {
	NewPerDay        int
	IntervalModifier float64 // percent
	RetentionTarget  float64
	DifficultTags    []string
}

// Report is the full analysis output: observed statistics plus the
// recommendation derived from them.
type Report struct {
	TotalReviews   int
	RetentionRate  float64
	MeanEase       float64
	AvgTimeSecs    float64
	Tags           []TagStat // sorted by success rate ascending, then name
	Recommendation Recommendation
}

// Analyze computes a report from a user's review records. With no
// records it returns the neutral recommendation matching the scheduler
// defaults.
func Analyze(records []srs.ReviewRecord) Report {
	report := Report{
		Recommendation: Recommendation{
			NewPerDay:        srs.DefaultNewPerDay,
			IntervalModifier: srs.DefaultIntervalModifier,
			RetentionTarget:  srs.DefaultRetentionTarget,
		},
	}
	if len(records) == 0 {
		return report
	}

	var (
		successes int
		easeSum   float64
		timeSum   float64
	)
	byTag := make(map[string]*TagStat)
	for _, rec := range records {
		if rec.Rating.Successful() {
			successes++
		}
		easeSum += rec.EaseAfter
		timeSum += rec.TimeSpentSecs

		for _, tag := range rec.Tags {
			st, ok := byTag[tag]
			if !ok {
				st = &TagStat{Tag: tag}
				byTag[tag] = st
			}
			st.Total++
			if rec.Rating.Successful() {
				st.Success++
			}
		}
	}

	n := float64(len(records))
	report.TotalReviews = len(records)
	report.RetentionRate = float64(successes) / n
	report.MeanEase = easeSum / n
	report.AvgTimeSecs = timeSum / n
	report.Tags = sortedTagStats(byTag)

	report.Recommendation = Recommendation{
		NewPerDay:        recommendNewPerDay(report.MeanEase),
		IntervalModifier: recommendModifier(report.RetentionRate),
		RetentionTarget:  clampFloat(report.RetentionRate, minRetentionTarget, maxRetentionTarget),
		DifficultTags:    difficultTags(report.Tags),
	}
	return report
}

// recommendNewPerDay scales the default daily intake by how comfortably
// the learner holds ease. A struggling user (mean ease near the floor)
// gets fewer new items.
func recommendNewPerDay(meanEase float64) int {
	scaled := math.Round(srs.DefaultNewPerDay * meanEase / srs.DefaultInitialEase)
	return clampInt(int(scaled), minNewPerDay, maxNewPerDay)
}

// recommendModifier maps observed retention against the default target
// onto an interval modifier. Retention at target keeps 100.
func recommendModifier(retention float64) float64 {
	m := math.Round(srs.DefaultIntervalModifier * retention / srs.DefaultRetentionTarget)
	return clampFloat(m, minIntervalModifier, maxIntervalModifier)
}

func sortedTagStats(byTag map[string]*TagStat) []TagStat {
	stats := make([]TagStat, 0, len(byTag))
	for _, st := range byTag {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool {
		ri, rj := stats[i].SuccessRate(), stats[j].SuccessRate()
		if ri != rj {
			return ri < rj
		}
		return stats[i].Tag < stats[j].Tag
	})
	return stats
}

// difficultTags ranks the worst-performing tags with enough observations
// to trust. Input is already sorted worst first.
func difficultTags(stats []TagStat) []string {
	var tags []string
	for _, st := range stats {
		if st.Total < minTagObservations {
			continue
		}
		tags = append(tags, st.Tag)
		if len(tags) == maxDifficultTags {
			break
		}
	}
	return tags
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
