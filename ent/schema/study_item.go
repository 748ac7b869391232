package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyItem is a front/back study item together with its scheduling
// state. Scheduling fields are denormalized onto the row so the due
// query is a single indexed scan.
type StudyItem struct {
	ent.Schema
}

func (StudyItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Caller-assigned item id"),
		field.String("user_id").
			NotEmpty().
			Comment("Owning learner"),
		field.String("front").
			NotEmpty().
			Comment("Prompt side"),
		field.String("back").
			Comment("Answer side"),
		field.String("content_type").
			Default("text").
			Comment("text, image, or formula"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Free-form tags"),
		field.String("source_ref").
			Optional().
			Comment("Reference to the upstream content source"),
		field.Float("ease_factor").
			Comment("Current ease factor"),
		field.Int("interval_days").
			Default(0).
			Comment("Current interval in days"),
		field.Int("repetitions").
			Default(0).
			Comment("Consecutive successful repetitions"),
		field.String("stage").
			Default("new").
			Comment("new, learning, or review"),
		field.Time("last_review_at").
			Optional().
			Comment("When the item was last reviewed"),
		field.Time("next_review_at").
			Comment("When the item is next due"),
	}
}

func (StudyItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "next_review_at"),
		index.Fields("source_ref"),
	}
}
