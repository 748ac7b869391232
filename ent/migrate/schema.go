// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LearnerParamsColumns holds the columns for the "learner_params" table.
	LearnerParamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "initial_ease", Type: field.TypeFloat64},
		{Name: "min_ease", Type: field.TypeFloat64},
		{Name: "ease_bonus", Type: field.TypeFloat64},
		{Name: "ease_penalty", Type: field.TypeFloat64},
		{Name: "interval_modifier", Type: field.TypeFloat64},
		{Name: "max_interval_days", Type: field.TypeInt},
		{Name: "new_per_day", Type: field.TypeInt},
		{Name: "reviews_per_day", Type: field.TypeInt},
		{Name: "adaptive", Type: field.TypeBool, Default: true},
		{Name: "settings", Type: field.TypeJSON},
		{Name: "analyzed_at", Type: field.TypeTime, Nullable: true},
	}
	// LearnerParamsTable holds the schema information for the "learner_params" table.
	LearnerParamsTable = &schema.Table{
		Name:       "learner_params",
		Columns:    LearnerParamsColumns,
		PrimaryKey: []*schema.Column{LearnerParamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnerparams_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearnerParamsColumns[1]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeInt},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "time_spent_secs", Type: field.TypeFloat64},
		{Name: "ease_after", Type: field.TypeFloat64},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "factors", Type: field.TypeJSON},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "in_progress"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_items", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeInt, Default: 0},
		{Name: "average_rating", Type: field.TypeFloat64, Default: 0},
		{Name: "perfect_count", Type: field.TypeInt, Default: 0},
		{Name: "completion_rate", Type: field.TypeFloat64, Default: 0},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_user_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[1], SessionRecordsColumns[3]},
			},
		},
	}
	// StudyItemsColumns holds the columns for the "study_items" table.
	StudyItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "front", Type: field.TypeString},
		{Name: "back", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "text"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "source_ref", Type: field.TypeString, Nullable: true},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "stage", Type: field.TypeString, Default: "new"},
		{Name: "last_review_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_at", Type: field.TypeTime},
	}
	// StudyItemsTable holds the schema information for the "study_items" table.
	StudyItemsTable = &schema.Table{
		Name:       "study_items",
		Columns:    StudyItemsColumns,
		PrimaryKey: []*schema.Column{StudyItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyitem_user_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{StudyItemsColumns[1], StudyItemsColumns[12]},
			},
			{
				Name:    "studyitem_source_ref",
				Unique:  false,
				Columns: []*schema.Column{StudyItemsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LearnerParamsTable,
		ReviewEventsTable,
		SessionRecordsTable,
		StudyItemsTable,
	}
)

func init() {
}
