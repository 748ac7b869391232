// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cardwise/cardwise/ent/sessionrecord"
)

// SessionRecord is the model entity for the SessionRecord schema.
type SessionRecord struct {
	config `json:"-"`
	// ID of the ent.
	// Session id assigned at start
	ID string `json:"id,omitempty"`
	// Owning learner
	UserID string `json:"user_id,omitempty"`
	// in_progress or completed
	Status string `json:"status,omitempty"`
	// When the session opened
	StartedAt time.Time `json:"started_at,omitempty"`
	// When the session completed
	EndedAt time.Time `json:"ended_at,omitempty"`
	// Queue length at start
	TotalItems int `json:"total_items,omitempty"`
	// Submissions recorded
	Completed int `json:"completed,omitempty"`
	// Mean rating across submissions
	AverageRating float64 `json:"average_rating,omitempty"`
	// Submissions rated 5
	PerfectCount int `json:"perfect_count,omitempty"`
	// Completed over total
	CompletionRate float64 `json:"completion_rate,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionrecord.FieldAverageRating, sessionrecord.FieldCompletionRate:
			values[i] = new(sql.NullFloat64)
		case sessionrecord.FieldTotalItems, sessionrecord.FieldCompleted, sessionrecord.FieldPerfectCount:
			values[i] = new(sql.NullInt64)
		case sessionrecord.FieldID, sessionrecord.FieldUserID, sessionrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case sessionrecord.FieldStartedAt, sessionrecord.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionRecord fields.
func (sr *SessionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				sr.ID = value.String
			}
		case sessionrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				sr.UserID = value.String
			}
		case sessionrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				sr.Status = value.String
			}
		case sessionrecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				sr.StartedAt = value.Time
			}
		case sessionrecord.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				sr.EndedAt = value.Time
			}
		case sessionrecord.FieldTotalItems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_items", values[i])
			} else if value.Valid {
				sr.TotalItems = int(value.Int64)
			}
		case sessionrecord.FieldCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				sr.Completed = int(value.Int64)
			}
		case sessionrecord.FieldAverageRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_rating", values[i])
			} else if value.Valid {
				sr.AverageRating = value.Float64
			}
		case sessionrecord.FieldPerfectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field perfect_count", values[i])
			} else if value.Valid {
				sr.PerfectCount = int(value.Int64)
			}
		case sessionrecord.FieldCompletionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_rate", values[i])
			} else if value.Valid {
				sr.CompletionRate = value.Float64
			}
		default:
			sr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionRecord.
// This includes values selected through modifiers, order, etc.
func (sr *SessionRecord) Value(name string) (ent.Value, error) {
	return sr.selectValues.Get(name)
}

// Update returns a builder for updating this SessionRecord.
// Note that you need to call SessionRecord.Unwrap() before calling this method if this SessionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (sr *SessionRecord) Update() *SessionRecordUpdateOne {
	return NewSessionRecordClient(sr.config).UpdateOne(sr)
}

// Unwrap unwraps the SessionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sr *SessionRecord) Unwrap() *SessionRecord {
	_tx, ok := sr.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionRecord is not a transactional entity")
	}
	sr.config.driver = _tx.drv
	return sr
}

// String implements the fmt.Stringer.
func (sr *SessionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SessionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sr.ID))
	builder.WriteString("user_id=")
	builder.WriteString(sr.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(sr.Status)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(sr.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ended_at=")
	builder.WriteString(sr.EndedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_items=")
	builder.WriteString(fmt.Sprintf("%v", sr.TotalItems))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", sr.Completed))
	builder.WriteString(", ")
	builder.WriteString("average_rating=")
	builder.WriteString(fmt.Sprintf("%v", sr.AverageRating))
	builder.WriteString(", ")
	builder.WriteString("perfect_count=")
	builder.WriteString(fmt.Sprintf("%v", sr.PerfectCount))
	builder.WriteString(", ")
	builder.WriteString("completion_rate=")
	builder.WriteString(fmt.Sprintf("%v", sr.CompletionRate))
	builder.WriteByte(')')
	return builder.String()
}

// SessionRecords is a parsable slice of SessionRecord.
type SessionRecords []*SessionRecord
