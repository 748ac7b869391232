package store

import (
	"context"
	"fmt"

	"github.com/cardwise/cardwise/ent"
	"github.com/cardwise/cardwise/ent/learnerparams"
	"github.com/cardwise/cardwise/internal/srs"
)

// paramsRepo implements ParamsRepo. One row per user; Load falls back
// to defaults when no row exists, so a user never has to be provisioned.
type paramsRepo struct {
	client *ent.Client
}

func (r *paramsRepo) Load(ctx context.Context, userID string) (srs.Parameters, error) {
	row, err := r.client.LearnerParams.Query().
		Where(learnerparams.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return srs.DefaultParameters(userID), nil
		}
		return srs.Parameters{}, fmt.Errorf("query parameters: %w", err)
	}
	return entParamsToParams(row)
}

func (r *paramsRepo) Save(ctx context.Context, p srs.Parameters) error {
	settings, err := settingsToMap(p.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	existing, err := r.client.LearnerParams.Query().
		Where(learnerparams.UserID(p.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query parameters: %w", err)
	}

	if ent.IsNotFound(err) {
		builder := r.client.LearnerParams.Create().
			SetUserID(p.UserID).
			SetInitialEase(p.InitialEase).
			SetMinEase(p.MinEase).
			SetEaseBonus(p.EaseBonus).
			SetEasePenalty(p.EasePenalty).
			SetIntervalModifier(p.IntervalModifier).
			SetMaxIntervalDays(p.MaxIntervalDays).
			SetNewPerDay(p.NewPerDay).
			SetReviewsPerDay(p.ReviewsPerDay).
			SetAdaptive(p.Adaptive).
			SetSettings(settings)
		if !p.AnalyzedAt.IsZero() {
			builder = builder.SetAnalyzedAt(p.AnalyzedAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create parameters: %w", err)
		}
		return nil
	}

	builder := existing.Update().
		SetInitialEase(p.InitialEase).
		SetMinEase(p.MinEase).
		SetEaseBonus(p.EaseBonus).
		SetEasePenalty(p.EasePenalty).
		SetIntervalModifier(p.IntervalModifier).
		SetMaxIntervalDays(p.MaxIntervalDays).
		SetNewPerDay(p.NewPerDay).
		SetReviewsPerDay(p.ReviewsPerDay).
		SetAdaptive(p.Adaptive).
		SetSettings(settings)
	if !p.AnalyzedAt.IsZero() {
		builder = builder.SetAnalyzedAt(p.AnalyzedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update parameters: %w", err)
	}
	return nil
}
