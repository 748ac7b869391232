package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/cardwise/cardwise/internal/srs"
	"github.com/cardwise/cardwise/internal/store"
)

// Service runs analyses against the review log and applies the results
// to a user's stored parameters.
type Service struct {
	reviews store.ReviewRepo
	params  store.ParamsRepo
	now     func() time.Time
}

// NewService wires an analyzer service. A nil clock defaults to time.Now.
func NewService(reviews store.ReviewRepo, params store.ParamsRepo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{reviews: reviews, params: params, now: now}
}

// Analyze reads the user's recent review history and returns the report.
// Nothing is persisted.
func (s *Service) Analyze(ctx context.Context, userID string) (Report, error) {
	records, err := s.reviews.RecentByUser(ctx, userID, analysisWindow)
	if err != nil {
		return Report{}, fmt.Errorf("load review history: %w", err)
	}
	return Analyze(records), nil
}

// Apply merges a recommendation into the user's stored parameters and
// stamps the analysis time. Returns the saved parameters.
func (s *Service) Apply(ctx context.Context, userID string, rec Recommendation) (srs.Parameters, error) {
	p, err := s.params.Load(ctx, userID)
	if err != nil {
		return srs.Parameters{}, fmt.Errorf("load parameters: %w", err)
	}

	p.NewPerDay = rec.NewPerDay
	p.IntervalModifier = rec.IntervalModifier
	p.Settings.RetentionTarget = rec.RetentionTarget
	p.Settings.DifficultTags = rec.DifficultTags
	p.AnalyzedAt = s.now()

	if err := s.params.Save(ctx, p); err != nil {
		return srs.Parameters{}, fmt.Errorf("save parameters: %w", err)
	}
	return p, nil
}
