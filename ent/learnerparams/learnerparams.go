// Code generated by ent, DO NOT EDIT.

package learnerparams

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerparams type in the database.
	Label = "learner_params"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldInitialEase holds the string denoting the initial_ease field in the database.
	FieldInitialEase = "initial_ease"
	// FieldMinEase holds the string denoting the min_ease field in the database.
	FieldMinEase = "min_ease"
	// FieldEaseBonus holds the string denoting the ease_bonus field in the database.
	FieldEaseBonus = "ease_bonus"
	// FieldEasePenalty holds the string denoting the ease_penalty field in the database.
	FieldEasePenalty = "ease_penalty"
	// FieldIntervalModifier holds the string denoting the interval_modifier field in the database.
	FieldIntervalModifier = "interval_modifier"
	// FieldMaxIntervalDays holds the string denoting the max_interval_days field in the database.
	FieldMaxIntervalDays = "max_interval_days"
	// FieldNewPerDay holds the string denoting the new_per_day field in the database.
	FieldNewPerDay = "new_per_day"
	// FieldReviewsPerDay holds the string denoting the reviews_per_day field in the database.
	FieldReviewsPerDay = "reviews_per_day"
	// FieldAdaptive holds the string denoting the adaptive field in the database.
	FieldAdaptive = "adaptive"
	// FieldSettings holds the string denoting the settings field in the database.
	FieldSettings = "settings"
	// FieldAnalyzedAt holds the string denoting the analyzed_at field in the database.
	FieldAnalyzedAt = "analyzed_at"
	// Table holds the table name of the learnerparams in the database.
	Table = "learner_params"
)

// Columns holds all SQL columns for learnerparams fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldInitialEase,
	FieldMinEase,
	FieldEaseBonus,
	FieldEasePenalty,
	FieldIntervalModifier,
	FieldMaxIntervalDays,
	FieldNewPerDay,
	FieldReviewsPerDay,
	FieldAdaptive,
	FieldSettings,
	FieldAnalyzedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultAdaptive holds the default value on creation for the "adaptive" field.
	DefaultAdaptive bool
)

// OrderOption defines the ordering options for the LearnerParams queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByInitialEase orders the results by the initial_ease field.
func ByInitialEase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialEase, opts...).ToFunc()
}

// ByMinEase orders the results by the min_ease field.
func ByMinEase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinEase, opts...).ToFunc()
}

// ByEaseBonus orders the results by the ease_bonus field.
func ByEaseBonus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseBonus, opts...).ToFunc()
}

// ByEasePenalty orders the results by the ease_penalty field.
func ByEasePenalty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEasePenalty, opts...).ToFunc()
}

// ByIntervalModifier orders the results by the interval_modifier field.
func ByIntervalModifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalModifier, opts...).ToFunc()
}

// ByMaxIntervalDays orders the results by the max_interval_days field.
func ByMaxIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxIntervalDays, opts...).ToFunc()
}

// ByNewPerDay orders the results by the new_per_day field.
func ByNewPerDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewPerDay, opts...).ToFunc()
}

// ByReviewsPerDay orders the results by the reviews_per_day field.
func ByReviewsPerDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewsPerDay, opts...).ToFunc()
}

// ByAdaptive orders the results by the adaptive field.
func ByAdaptive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdaptive, opts...).ToFunc()
}

// ByAnalyzedAt orders the results by the analyzed_at field.
func ByAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyzedAt, opts...).ToFunc()
}
