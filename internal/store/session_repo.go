package store

import (
	"context"
	"fmt"

	"github.com/cardwise/cardwise/ent"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, rec SessionRecord) error {
	_, err := r.client.SessionRecord.Create().
		SetID(rec.ID).
		SetUserID(rec.UserID).
		SetStatus(rec.Status).
		SetStartedAt(rec.StartedAt).
		SetTotalItems(rec.TotalItems).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session record: %w", err)
	}
	return nil
}

func (r *sessionRepo) Update(ctx context.Context, rec SessionRecord) error {
	builder := r.client.SessionRecord.UpdateOneID(rec.ID).
		SetStatus(rec.Status).
		SetCompleted(rec.Completed).
		SetAverageRating(rec.AverageRating).
		SetPerfectCount(rec.PerfectCount).
		SetCompletionRate(rec.CompletionRate)
	if !rec.EndedAt.IsZero() {
		builder = builder.SetEndedAt(rec.EndedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session record %s: %w", rec.ID, ErrNotFound)
		}
		return fmt.Errorf("update session record: %w", err)
	}
	return nil
}
