package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is the persisted lifecycle of one review session.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Session id assigned at start"),
		field.String("user_id").
			NotEmpty().
			Comment("Owning learner"),
		field.String("status").
			Default("in_progress").
			Comment("in_progress or completed"),
		field.Time("started_at").
			Immutable().
			Comment("When the session opened"),
		field.Time("ended_at").
			Optional().
			Comment("When the session completed"),
		field.Int("total_items").
			Comment("Queue length at start"),
		field.Int("completed").
			Default(0).
			Comment("Submissions recorded"),
		field.Float("average_rating").
			Default(0).
			Comment("Mean rating across submissions"),
		field.Int("perfect_count").
			Default(0).
			Comment("Submissions rated 5"),
		field.Float("completion_rate").
			Default(0).
			Comment("Completed over total"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "started_at"),
	}
}
