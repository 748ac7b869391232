package store

import (
	"encoding/json"

	"github.com/cardwise/cardwise/ent"
	"github.com/cardwise/cardwise/internal/srs"
)

func entItemToItem(row *ent.StudyItem) *srs.StudyItem {
	return &srs.StudyItem{
		ID:          row.ID,
		UserID:      row.UserID,
		Front:       row.Front,
		Back:        row.Back,
		ContentType: srs.ContentType(row.ContentType),
		Tags:        row.Tags,
		SourceRef:   row.SourceRef,
		State: srs.LearningState{
			EaseFactor:   row.EaseFactor,
			IntervalDays: row.IntervalDays,
			Repetitions:  row.Repetitions,
			Stage:        srs.Stage(row.Stage),
			LastReviewAt: row.LastReviewAt,
			NextReviewAt: row.NextReviewAt,
		},
	}
}

func entItemsToItems(rows []*ent.StudyItem) []*srs.StudyItem {
	items := make([]*srs.StudyItem, len(rows))
	for i, row := range rows {
		items[i] = entItemToItem(row)
	}
	return items
}

// entEventsToRecords converts query rows (newest first) into records
// ordered oldest first, matching how the scheduler reads history.
func entEventsToRecords(rows []*ent.ReviewEvent) []srs.ReviewRecord {
	records := make([]srs.ReviewRecord, len(rows))
	for i, row := range rows {
		records[len(rows)-1-i] = srs.ReviewRecord{
			ItemID:        row.ItemID,
			UserID:        row.UserID,
			Timestamp:     row.Timestamp,
			Rating:        srs.Rating(row.Rating),
			IntervalDays:  row.IntervalDays,
			TimeSpentSecs: row.TimeSpentSecs,
			EaseAfter:     row.EaseAfter,
			Tags:          row.Tags,
			Factors:       factorsFromMap(row.Factors),
		}
	}
	return records
}

func factorsToMap(f srs.Factors) map[string]float64 {
	return map[string]float64{
		"time":       f.Time,
		"error":      f.Error,
		"difficulty": f.Difficulty,
		"retention":  f.Retention,
	}
}

func factorsFromMap(m map[string]float64) srs.Factors {
	f := srs.NeutralFactors()
	if v, ok := m["time"]; ok {
		f.Time = v
	}
	if v, ok := m["error"]; ok {
		f.Error = v
	}
	if v, ok := m["difficulty"]; ok {
		f.Difficulty = v
	}
	if v, ok := m["retention"]; ok {
		f.Retention = v
	}
	return f
}

// settingsToMap converts Settings to map[string]any for ent JSON storage.
func settingsToMap(s srs.Settings) (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func settingsFromMap(m map[string]any) (srs.Settings, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return srs.Settings{}, err
	}
	var s srs.Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return srs.Settings{}, err
	}
	return s, nil
}

func entParamsToParams(row *ent.LearnerParams) (srs.Parameters, error) {
	settings, err := settingsFromMap(row.Settings)
	if err != nil {
		return srs.Parameters{}, err
	}
	return srs.Parameters{
		UserID:           row.UserID,
		InitialEase:      row.InitialEase,
		MinEase:          row.MinEase,
		EaseBonus:        row.EaseBonus,
		EasePenalty:      row.EasePenalty,
		IntervalModifier: row.IntervalModifier,
		MaxIntervalDays:  row.MaxIntervalDays,
		NewPerDay:        row.NewPerDay,
		ReviewsPerDay:    row.ReviewsPerDay,
		Adaptive:         row.Adaptive,
		Settings:         settings,
		AnalyzedAt:       row.AnalyzedAt,
	}, nil
}
