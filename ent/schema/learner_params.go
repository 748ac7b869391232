package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerParams stores per-user scheduling configuration. One row per
// user, created on first save and updated in place.
type LearnerParams struct {
	ent.Schema
}

func (LearnerParams) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty().
			Comment("Owning learner"),
		field.Float("initial_ease").
			Comment("Ease assigned to new items"),
		field.Float("min_ease").
			Comment("Ease floor"),
		field.Float("ease_bonus").
			Comment("Ease increase for perfect recall"),
		field.Float("ease_penalty").
			Comment("Ease decrease on failure"),
		field.Float("interval_modifier").
			Comment("Global interval scale in percent, 100 is neutral"),
		field.Int("max_interval_days").
			Comment("Interval ceiling"),
		field.Int("new_per_day").
			Comment("Daily new-item intake"),
		field.Int("reviews_per_day").
			Comment("Daily review cap"),
		field.Bool("adaptive").
			Default(true).
			Comment("Whether adaptive factors are applied"),
		field.JSON("settings", map[string]any{}).
			Comment("Adaptive-behavior settings"),
		field.Time("analyzed_at").
			Optional().
			Comment("When the analyzer last updated this row"),
	}
}

func (LearnerParams) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
