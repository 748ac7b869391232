// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cardwise/cardwise/ent/learnerparams"
)

// LearnerParams is the model entity for the LearnerParams schema.
type LearnerParams struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning learner
	UserID string `json:"user_id,omitempty"`
	// Ease assigned to new items
	InitialEase float64 `json:"initial_ease,omitempty"`
	// Ease floor
	MinEase float64 `json:"min_ease,omitempty"`
	// Ease increase for perfect recall
	EaseBonus float64 `json:"ease_bonus,omitempty"`
	// Ease decrease on failure
	EasePenalty float64 `json:"ease_penalty,omitempty"`
	// Global interval scale in percent, 100 is neutral
	IntervalModifier float64 `json:"interval_modifier,omitempty"`
	// Interval ceiling
	MaxIntervalDays int `json:"max_interval_days,omitempty"`
	// Daily new-item intake
	NewPerDay int `json:"new_per_day,omitempty"`
	// Daily review cap
	ReviewsPerDay int `json:"reviews_per_day,omitempty"`
	// Whether adaptive factors are applied
	Adaptive bool `json:"adaptive,omitempty"`
	// Adaptive-behavior settings
	Settings map[string]interface{} `json:"settings,omitempty"`
	// When the analyzer last updated this row
	AnalyzedAt   time.Time `json:"analyzed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerParams) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerparams.FieldSettings:
			values[i] = new([]byte)
		case learnerparams.FieldAdaptive:
			values[i] = new(sql.NullBool)
		case learnerparams.FieldInitialEase, learnerparams.FieldMinEase, learnerparams.FieldEaseBonus, learnerparams.FieldEasePenalty, learnerparams.FieldIntervalModifier:
			values[i] = new(sql.NullFloat64)
		case learnerparams.FieldID, learnerparams.FieldMaxIntervalDays, learnerparams.FieldNewPerDay, learnerparams.FieldReviewsPerDay:
			values[i] = new(sql.NullInt64)
		case learnerparams.FieldUserID:
			values[i] = new(sql.NullString)
		case learnerparams.FieldAnalyzedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerParams fields.
func (lp *LearnerParams) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerparams.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			lp.ID = int(value.Int64)
		case learnerparams.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				lp.UserID = value.String
			}
		case learnerparams.FieldInitialEase:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field initial_ease", values[i])
			} else if value.Valid {
				lp.InitialEase = value.Float64
			}
		case learnerparams.FieldMinEase:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_ease", values[i])
			} else if value.Valid {
				lp.MinEase = value.Float64
			}
		case learnerparams.FieldEaseBonus:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_bonus", values[i])
			} else if value.Valid {
				lp.EaseBonus = value.Float64
			}
		case learnerparams.FieldEasePenalty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_penalty", values[i])
			} else if value.Valid {
				lp.EasePenalty = value.Float64
			}
		case learnerparams.FieldIntervalModifier:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_modifier", values[i])
			} else if value.Valid {
				lp.IntervalModifier = value.Float64
			}
		case learnerparams.FieldMaxIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_interval_days", values[i])
			} else if value.Valid {
				lp.MaxIntervalDays = int(value.Int64)
			}
		case learnerparams.FieldNewPerDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_per_day", values[i])
			} else if value.Valid {
				lp.NewPerDay = int(value.Int64)
			}
		case learnerparams.FieldReviewsPerDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reviews_per_day", values[i])
			} else if value.Valid {
				lp.ReviewsPerDay = int(value.Int64)
			}
		case learnerparams.FieldAdaptive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field adaptive", values[i])
			} else if value.Valid {
				lp.Adaptive = value.Bool
			}
		case learnerparams.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &lp.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case learnerparams.FieldAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analyzed_at", values[i])
			} else if value.Valid {
				lp.AnalyzedAt = value.Time
			}
		default:
			lp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerParams.
// This includes values selected through modifiers, order, etc.
func (lp *LearnerParams) Value(name string) (ent.Value, error) {
	return lp.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerParams.
// Note that you need to call LearnerParams.Unwrap() before calling this method if this LearnerParams
// was returned from a transaction, and the transaction was committed or rolled back.
func (lp *LearnerParams) Update() *LearnerParamsUpdateOne {
	return NewLearnerParamsClient(lp.config).UpdateOne(lp)
}

// Unwrap unwraps the LearnerParams entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (lp *LearnerParams) Unwrap() *LearnerParams {
	_tx, ok := lp.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerParams is not a transactional entity")
	}
	lp.config.driver = _tx.drv
	return lp
}

// String implements the fmt.Stringer.
func (lp *LearnerParams) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerParams(")
	builder.WriteString(fmt.Sprintf("id=%v, ", lp.ID))
	builder.WriteString("user_id=")
	builder.WriteString(lp.UserID)
	builder.WriteString(", ")
	builder.WriteString("initial_ease=")
	builder.WriteString(fmt.Sprintf("%v", lp.InitialEase))
	builder.WriteString(", ")
	builder.WriteString("min_ease=")
	builder.WriteString(fmt.Sprintf("%v", lp.MinEase))
	builder.WriteString(", ")
	builder.WriteString("ease_bonus=")
	builder.WriteString(fmt.Sprintf("%v", lp.EaseBonus))
	builder.WriteString(", ")
	builder.WriteString("ease_penalty=")
	builder.WriteString(fmt.Sprintf("%v", lp.EasePenalty))
	builder.WriteString(", ")
	builder.WriteString("interval_modifier=")
	builder.WriteString(fmt.Sprintf("%v", lp.IntervalModifier))
	builder.WriteString(", ")
	builder.WriteString("max_interval_days=")
	builder.WriteString(fmt.Sprintf("%v", lp.MaxIntervalDays))
	builder.WriteString(", ")
	builder.WriteString("new_per_day=")
	builder.WriteString(fmt.Sprintf("%v", lp.NewPerDay))
	builder.WriteString(", ")
	builder.WriteString("reviews_per_day=")
	builder.WriteString(fmt.Sprintf("%v", lp.ReviewsPerDay))
	builder.WriteString(", ")
	builder.WriteString("adaptive=")
	builder.WriteString(fmt.Sprintf("%v", lp.Adaptive))
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", lp.Settings))
	builder.WriteString(", ")
	builder.WriteString("analyzed_at=")
	builder.WriteString(lp.AnalyzedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerParamsSlice is a parsable slice of LearnerParams.
type LearnerParamsSlice []*LearnerParams
