package store

import (
	"context"
	"fmt"

	"github.com/cardwise/cardwise/ent"
	"github.com/cardwise/cardwise/ent/reviewevent"
	"github.com/cardwise/cardwise/internal/srs"
)

// reviewRepo implements ReviewRepo over the append-only review event
// table. Every appended row gets the next global sequence number.
type reviewRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *reviewRepo) Append(ctx context.Context, rec srs.ReviewRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(rec.Timestamp).
		SetItemID(rec.ItemID).
		SetUserID(rec.UserID).
		SetRating(int(rec.Rating)).
		SetIntervalDays(rec.IntervalDays).
		SetTimeSpentSecs(rec.TimeSpentSecs).
		SetEaseAfter(rec.EaseAfter).
		SetFactors(factorsToMap(rec.Factors))

	if len(rec.Tags) > 0 {
		builder = builder.SetTags(rec.Tags)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *reviewRepo) RecentByItem(ctx context.Context, itemID string, limit int) ([]srs.ReviewRecord, error) {
	rows, err := r.client.ReviewEvent.Query().
		Where(reviewevent.ItemID(itemID)).
		Order(ent.Desc(reviewevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query item reviews: %w", err)
	}
	return entEventsToRecords(rows), nil
}

func (r *reviewRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]srs.ReviewRecord, error) {
	rows, err := r.client.ReviewEvent.Query().
		Where(reviewevent.UserID(userID)).
		Order(ent.Desc(reviewevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query user reviews: %w", err)
	}
	return entEventsToRecords(rows), nil
}
