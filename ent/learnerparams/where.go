// Code generated by ent, DO NOT EDIT.

package learnerparams

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cardwise/cardwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldUserID, v))
}

// InitialEase applies equality check predicate on the "initial_ease" field. It's identical to InitialEaseEQ.
func InitialEase(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldInitialEase, v))
}

// MinEase applies equality check predicate on the "min_ease" field. It's identical to MinEaseEQ.
func MinEase(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldMinEase, v))
}

// EaseBonus applies equality check predicate on the "ease_bonus" field. It's identical to EaseBonusEQ.
func EaseBonus(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldEaseBonus, v))
}

// EasePenalty applies equality check predicate on the "ease_penalty" field. It's identical to EasePenaltyEQ.
func EasePenalty(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldEasePenalty, v))
}

// IntervalModifier applies equality check predicate on the "interval_modifier" field. It's identical to IntervalModifierEQ.
func IntervalModifier(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldIntervalModifier, v))
}

// MaxIntervalDays applies equality check predicate on the "max_interval_days" field. It's identical to MaxIntervalDaysEQ.
func MaxIntervalDays(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldMaxIntervalDays, v))
}

// NewPerDay applies equality check predicate on the "new_per_day" field. It's identical to NewPerDayEQ.
func NewPerDay(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldNewPerDay, v))
}

// ReviewsPerDay applies equality check predicate on the "reviews_per_day" field. It's identical to ReviewsPerDayEQ.
func ReviewsPerDay(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldReviewsPerDay, v))
}

// Adaptive applies equality check predicate on the "adaptive" field. It's identical to AdaptiveEQ.
func Adaptive(v bool) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldAdaptive, v))
}

// AnalyzedAt applies equality check predicate on the "analyzed_at" field. It's identical to AnalyzedAtEQ.
func AnalyzedAt(v time.Time) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldAnalyzedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldContainsFold(FieldUserID, v))
}

// InitialEaseEQ applies the EQ predicate on the "initial_ease" field.
func InitialEaseEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldInitialEase, v))
}

// InitialEaseNEQ applies the NEQ predicate on the "initial_ease" field.
func InitialEaseNEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldInitialEase, v))
}

// InitialEaseIn applies the In predicate on the "initial_ease" field.
func InitialEaseIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldInitialEase, vs...))
}

// InitialEaseNotIn applies the NotIn predicate on the "initial_ease" field.
func InitialEaseNotIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldInitialEase, vs...))
}

// InitialEaseGT applies the GT predicate on the "initial_ease" field.
func InitialEaseGT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldInitialEase, v))
}

// InitialEaseGTE applies the GTE predicate on the "initial_ease" field.
func InitialEaseGTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldInitialEase, v))
}

// InitialEaseLT applies the LT predicate on the "initial_ease" field.
func InitialEaseLT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldInitialEase, v))
}

// InitialEaseLTE applies the LTE predicate on the "initial_ease" field.
func InitialEaseLTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldInitialEase, v))
}

// MinEaseEQ applies the EQ predicate on the "min_ease" field.
func MinEaseEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldMinEase, v))
}

// MinEaseNEQ applies the NEQ predicate on the "min_ease" field.
func MinEaseNEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldMinEase, v))
}

// MinEaseIn applies the In predicate on the "min_ease" field.
func MinEaseIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldMinEase, vs...))
}

// MinEaseNotIn applies the NotIn predicate on the "min_ease" field.
func MinEaseNotIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldMinEase, vs...))
}

// MinEaseGT applies the GT predicate on the "min_ease" field.
func MinEaseGT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldMinEase, v))
}

// MinEaseGTE applies the GTE predicate on the "min_ease" field.
func MinEaseGTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldMinEase, v))
}

// MinEaseLT applies the LT predicate on the "min_ease" field.
func MinEaseLT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldMinEase, v))
}

// MinEaseLTE applies the LTE predicate on the "min_ease" field.
func MinEaseLTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldMinEase, v))
}

// EaseBonusEQ applies the EQ predicate on the "ease_bonus" field.
func EaseBonusEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldEaseBonus, v))
}

// EaseBonusNEQ applies the NEQ predicate on the "ease_bonus" field.
func EaseBonusNEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldEaseBonus, v))
}

// EaseBonusIn applies the In predicate on the "ease_bonus" field.
func EaseBonusIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldEaseBonus, vs...))
}

// EaseBonusNotIn applies the NotIn predicate on the "ease_bonus" field.
func EaseBonusNotIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldEaseBonus, vs...))
}

// EaseBonusGT applies the GT predicate on the "ease_bonus" field.
func EaseBonusGT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldEaseBonus, v))
}

// EaseBonusGTE applies the GTE predicate on the "ease_bonus" field.
func EaseBonusGTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldEaseBonus, v))
}

// EaseBonusLT applies the LT predicate on the "ease_bonus" field.
func EaseBonusLT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldEaseBonus, v))
}

// EaseBonusLTE applies the LTE predicate on the "ease_bonus" field.
func EaseBonusLTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldEaseBonus, v))
}

// EasePenaltyEQ applies the EQ predicate on the "ease_penalty" field.
func EasePenaltyEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldEasePenalty, v))
}

// EasePenaltyNEQ applies the NEQ predicate on the "ease_penalty" field.
func EasePenaltyNEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldEasePenalty, v))
}

// EasePenaltyIn applies the In predicate on the "ease_penalty" field.
func EasePenaltyIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldEasePenalty, vs...))
}

// EasePenaltyNotIn applies the NotIn predicate on the "ease_penalty" field.
func EasePenaltyNotIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldEasePenalty, vs...))
}

// EasePenaltyGT applies the GT predicate on the "ease_penalty" field.
func EasePenaltyGT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldEasePenalty, v))
}

// EasePenaltyGTE applies the GTE predicate on the "ease_penalty" field.
func EasePenaltyGTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldEasePenalty, v))
}

// EasePenaltyLT applies the LT predicate on the "ease_penalty" field.
func EasePenaltyLT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldEasePenalty, v))
}

// EasePenaltyLTE applies the LTE predicate on the "ease_penalty" field.
func EasePenaltyLTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldEasePenalty, v))
}

// IntervalModifierEQ applies the EQ predicate on the "interval_modifier" field.
func IntervalModifierEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldIntervalModifier, v))
}

// IntervalModifierNEQ applies the NEQ predicate on the "interval_modifier" field.
func IntervalModifierNEQ(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldIntervalModifier, v))
}

// IntervalModifierIn applies the In predicate on the "interval_modifier" field.
func IntervalModifierIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldIntervalModifier, vs...))
}

// IntervalModifierNotIn applies the NotIn predicate on the "interval_modifier" field.
func IntervalModifierNotIn(vs ...float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldIntervalModifier, vs...))
}

// IntervalModifierGT applies the GT predicate on the "interval_modifier" field.
func IntervalModifierGT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldIntervalModifier, v))
}

// IntervalModifierGTE applies the GTE predicate on the "interval_modifier" field.
func IntervalModifierGTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldIntervalModifier, v))
}

// IntervalModifierLT applies the LT predicate on the "interval_modifier" field.
func IntervalModifierLT(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldIntervalModifier, v))
}

// IntervalModifierLTE applies the LTE predicate on the "interval_modifier" field.
func IntervalModifierLTE(v float64) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldIntervalModifier, v))
}

// MaxIntervalDaysEQ applies the EQ predicate on the "max_interval_days" field.
func MaxIntervalDaysEQ(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldMaxIntervalDays, v))
}

// MaxIntervalDaysNEQ applies the NEQ predicate on the "max_interval_days" field.
func MaxIntervalDaysNEQ(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldMaxIntervalDays, v))
}

// MaxIntervalDaysIn applies the In predicate on the "max_interval_days" field.
func MaxIntervalDaysIn(vs ...int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldMaxIntervalDays, vs...))
}

// MaxIntervalDaysNotIn applies the NotIn predicate on the "max_interval_days" field.
func MaxIntervalDaysNotIn(vs ...int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldMaxIntervalDays, vs...))
}

// MaxIntervalDaysGT applies the GT predicate on the "max_interval_days" field.
func MaxIntervalDaysGT(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldMaxIntervalDays, v))
}

// MaxIntervalDaysGTE applies the GTE predicate on the "max_interval_days" field.
func MaxIntervalDaysGTE(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldMaxIntervalDays, v))
}

// MaxIntervalDaysLT applies the LT predicate on the "max_interval_days" field.
func MaxIntervalDaysLT(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldMaxIntervalDays, v))
}

// MaxIntervalDaysLTE applies the LTE predicate on the "max_interval_days" field.
func MaxIntervalDaysLTE(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldMaxIntervalDays, v))
}

// NewPerDayEQ applies the EQ predicate on the "new_per_day" field.
func NewPerDayEQ(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldNewPerDay, v))
}

// NewPerDayNEQ applies the NEQ predicate on the "new_per_day" field.
func NewPerDayNEQ(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldNewPerDay, v))
}

// NewPerDayIn applies the In predicate on the "new_per_day" field.
func NewPerDayIn(vs ...int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldNewPerDay, vs...))
}

// NewPerDayNotIn applies the NotIn predicate on the "new_per_day" field.
func NewPerDayNotIn(vs ...int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldNewPerDay, vs...))
}

// NewPerDayGT applies the GT predicate on the "new_per_day" field.
func NewPerDayGT(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldNewPerDay, v))
}

// NewPerDayGTE applies the GTE predicate on the "new_per_day" field.
func NewPerDayGTE(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldNewPerDay, v))
}

// NewPerDayLT applies the LT predicate on the "new_per_day" field.
func NewPerDayLT(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldNewPerDay, v))
}

// NewPerDayLTE applies the LTE predicate on the "new_per_day" field.
func NewPerDayLTE(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldNewPerDay, v))
}

// ReviewsPerDayEQ applies the EQ predicate on the "reviews_per_day" field.
func ReviewsPerDayEQ(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldReviewsPerDay, v))
}

// ReviewsPerDayNEQ applies the NEQ predicate on the "reviews_per_day" field.
func ReviewsPerDayNEQ(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldReviewsPerDay, v))
}

// ReviewsPerDayIn applies the In predicate on the "reviews_per_day" field.
func ReviewsPerDayIn(vs ...int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldReviewsPerDay, vs...))
}

// ReviewsPerDayNotIn applies the NotIn predicate on the "reviews_per_day" field.
func ReviewsPerDayNotIn(vs ...int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldReviewsPerDay, vs...))
}

// ReviewsPerDayGT applies the GT predicate on the "reviews_per_day" field.
func ReviewsPerDayGT(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldReviewsPerDay, v))
}

// ReviewsPerDayGTE applies the GTE predicate on the "reviews_per_day" field.
func ReviewsPerDayGTE(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldReviewsPerDay, v))
}

// ReviewsPerDayLT applies the LT predicate on the "reviews_per_day" field.
func ReviewsPerDayLT(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldReviewsPerDay, v))
}

// ReviewsPerDayLTE applies the LTE predicate on the "reviews_per_day" field.
func ReviewsPerDayLTE(v int) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldReviewsPerDay, v))
}

// AdaptiveEQ applies the EQ predicate on the "adaptive" field.
func AdaptiveEQ(v bool) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldAdaptive, v))
}

// AdaptiveNEQ applies the NEQ predicate on the "adaptive" field.
func AdaptiveNEQ(v bool) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldAdaptive, v))
}

// AnalyzedAtEQ applies the EQ predicate on the "analyzed_at" field.
func AnalyzedAtEQ(v time.Time) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtNEQ applies the NEQ predicate on the "analyzed_at" field.
func AnalyzedAtNEQ(v time.Time) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtIn applies the In predicate on the "analyzed_at" field.
func AnalyzedAtIn(vs ...time.Time) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtNotIn applies the NotIn predicate on the "analyzed_at" field.
func AnalyzedAtNotIn(vs ...time.Time) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtGT applies the GT predicate on the "analyzed_at" field.
func AnalyzedAtGT(v time.Time) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGT(FieldAnalyzedAt, v))
}

// AnalyzedAtGTE applies the GTE predicate on the "analyzed_at" field.
func AnalyzedAtGTE(v time.Time) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldGTE(FieldAnalyzedAt, v))
}

// AnalyzedAtLT applies the LT predicate on the "analyzed_at" field.
func AnalyzedAtLT(v time.Time) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLT(FieldAnalyzedAt, v))
}

// AnalyzedAtLTE applies the LTE predicate on the "analyzed_at" field.
func AnalyzedAtLTE(v time.Time) predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldLTE(FieldAnalyzedAt, v))
}

// AnalyzedAtIsNil applies the IsNil predicate on the "analyzed_at" field.
func AnalyzedAtIsNil() predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldIsNull(FieldAnalyzedAt))
}

// AnalyzedAtNotNil applies the NotNil predicate on the "analyzed_at" field.
func AnalyzedAtNotNil() predicate.LearnerParams {
	return predicate.LearnerParams(sql.FieldNotNull(FieldAnalyzedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerParams) predicate.LearnerParams {
	return predicate.LearnerParams(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerParams) predicate.LearnerParams {
	return predicate.LearnerParams(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerParams) predicate.LearnerParams {
	return predicate.LearnerParams(sql.NotPredicates(p))
}
