package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single completed review. Rows are append-only;
// tags and ease are denormalized from the item at review time so the
// analyzer can work from this log alone.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Comment("Reviewed study item"),
		field.String("user_id").
			NotEmpty().
			Comment("Owning learner"),
		field.Int("rating").
			Comment("Self-assessed recall, 1 to 5"),
		field.Int("interval_days").
			Comment("Interval in effect when reviewed"),
		field.Float("time_spent_secs").
			Comment("Seconds spent answering"),
		field.Float("ease_after").
			Comment("Ease factor after this review"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Item tags at review time"),
		field.JSON("factors", map[string]float64{}).
			Comment("Adaptive factors applied to this review"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("user_id"),
	}
}
