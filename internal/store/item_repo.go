package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/cardwise/cardwise/ent"
	"github.com/cardwise/cardwise/ent/predicate"
	"github.com/cardwise/cardwise/ent/studyitem"
	"github.com/cardwise/cardwise/internal/srs"
)

// itemRepo implements ItemRepo using the ent client.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) Create(ctx context.Context, item *srs.StudyItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	builder := r.client.StudyItem.Create().
		SetID(item.ID).
		SetUserID(item.UserID).
		SetFront(item.Front).
		SetBack(item.Back).
		SetContentType(string(item.ContentType)).
		SetEaseFactor(item.State.EaseFactor).
		SetIntervalDays(item.State.IntervalDays).
		SetRepetitions(item.State.Repetitions).
		SetStage(string(item.State.Stage)).
		SetNextReviewAt(item.State.NextReviewAt)

	if len(item.Tags) > 0 {
		builder = builder.SetTags(item.Tags)
	}
	if item.SourceRef != "" {
		builder = builder.SetSourceRef(item.SourceRef)
	}
	if !item.State.LastReviewAt.IsZero() {
		builder = builder.SetLastReviewAt(item.State.LastReviewAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create study item: %w", err)
	}
	return nil
}

func (r *itemRepo) Get(ctx context.Context, id string) (*srs.StudyItem, error) {
	row, err := r.client.StudyItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("study item %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get study item: %w", err)
	}
	return entItemToItem(row), nil
}

func (r *itemRepo) Due(ctx context.Context, userID string, now time.Time, f ItemFilter, limit int) ([]*srs.StudyItem, error) {
	q := r.client.StudyItem.Query().
		Where(
			studyitem.UserID(userID),
			studyitem.NextReviewAtLTE(now),
		)
	q = applyItemFilter(q, f)
	q = q.Order(ent.Asc(studyitem.FieldNextReviewAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due items: %w", err)
	}
	return entItemsToItems(rows), nil
}

func (r *itemRepo) Upcoming(ctx context.Context, userID string, now time.Time, daysAhead int, f ItemFilter, limit int) ([]*srs.StudyItem, error) {
	q := r.client.StudyItem.Query().
		Where(
			studyitem.UserID(userID),
			studyitem.NextReviewAtGT(now),
			studyitem.NextReviewAtLTE(now.AddDate(0, 0, daysAhead)),
		)
	q = applyItemFilter(q, f)
	q = q.Order(ent.Asc(studyitem.FieldNextReviewAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query upcoming items: %w", err)
	}
	return entItemsToItems(rows), nil
}

func (r *itemRepo) UpsertState(ctx context.Context, item *srs.StudyItem) error {
	builder := r.client.StudyItem.UpdateOneID(item.ID).
		SetEaseFactor(item.State.EaseFactor).
		SetIntervalDays(item.State.IntervalDays).
		SetRepetitions(item.State.Repetitions).
		SetStage(string(item.State.Stage)).
		SetNextReviewAt(item.State.NextReviewAt)
	if !item.State.LastReviewAt.IsZero() {
		builder = builder.SetLastReviewAt(item.State.LastReviewAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return r.Create(ctx, item)
		}
		return fmt.Errorf("update item state: %w", err)
	}
	return nil
}

func (r *itemRepo) CountByStage(ctx context.Context, userID string) (map[srs.Stage]int, error) {
	var rows []struct {
		Stage string `json:"stage"`
		Count int    `json:"count"`
	}
	err := r.client.StudyItem.Query().
		Where(studyitem.UserID(userID)).
		GroupBy(studyitem.FieldStage).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count items by stage: %w", err)
	}

	counts := make(map[srs.Stage]int, len(rows))
	for _, row := range rows {
		counts[srs.Stage(row.Stage)] = row.Count
	}
	return counts, nil
}

// applyItemFilter narrows an item query. Tag matching goes through
// sqljson because tags live in a JSON column.
func applyItemFilter(q *ent.StudyItemQuery, f ItemFilter) *ent.StudyItemQuery {
	if f.SourceRef != "" {
		q = q.Where(studyitem.SourceRef(f.SourceRef))
	}
	for _, tag := range f.Tags {
		tag := tag
		q = q.Where(predicate.StudyItem(func(s *entsql.Selector) {
			s.Where(sqljson.ValueContains(studyitem.FieldTags, tag))
		}))
	}
	return q
}
