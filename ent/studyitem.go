// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cardwise/cardwise/ent/studyitem"
)

// StudyItem is the model entity for the StudyItem schema.
type StudyItem struct {
	config `json:"-"`
	// ID of the ent.
	// Caller-assigned item id
	ID string `json:"id,omitempty"`
	// Owning learner
	UserID string `json:"user_id,omitempty"`
	// Prompt side
	Front string `json:"front,omitempty"`
	// Answer side
	Back string `json:"back,omitempty"`
	// text, image, or formula
	ContentType string `json:"content_type,omitempty"`
	// Free-form tags
	Tags []string `json:"tags,omitempty"`
	// Reference to the upstream content source
	SourceRef string `json:"source_ref,omitempty"`
	// Current ease factor
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Current interval in days
	IntervalDays int `json:"interval_days,omitempty"`
	// Consecutive successful repetitions
	Repetitions int `json:"repetitions,omitempty"`
	// new, learning, or review
	Stage string `json:"stage,omitempty"`
	// When the item was last reviewed
	LastReviewAt time.Time `json:"last_review_at,omitempty"`
	// When the item is next due
	NextReviewAt time.Time `json:"next_review_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudyItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studyitem.FieldTags:
			values[i] = new([]byte)
		case studyitem.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case studyitem.FieldIntervalDays, studyitem.FieldRepetitions:
			values[i] = new(sql.NullInt64)
		case studyitem.FieldID, studyitem.FieldUserID, studyitem.FieldFront, studyitem.FieldBack, studyitem.FieldContentType, studyitem.FieldSourceRef, studyitem.FieldStage:
			values[i] = new(sql.NullString)
		case studyitem.FieldLastReviewAt, studyitem.FieldNextReviewAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudyItem fields.
func (si *StudyItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studyitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				si.ID = value.String
			}
		case studyitem.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				si.UserID = value.String
			}
		case studyitem.FieldFront:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field front", values[i])
			} else if value.Valid {
				si.Front = value.String
			}
		case studyitem.FieldBack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field back", values[i])
			} else if value.Valid {
				si.Back = value.String
			}
		case studyitem.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				si.ContentType = value.String
			}
		case studyitem.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &si.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case studyitem.FieldSourceRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_ref", values[i])
			} else if value.Valid {
				si.SourceRef = value.String
			}
		case studyitem.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				si.EaseFactor = value.Float64
			}
		case studyitem.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				si.IntervalDays = int(value.Int64)
			}
		case studyitem.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				si.Repetitions = int(value.Int64)
			}
		case studyitem.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				si.Stage = value.String
			}
		case studyitem.FieldLastReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_review_at", values[i])
			} else if value.Valid {
				si.LastReviewAt = value.Time
			}
		case studyitem.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				si.NextReviewAt = value.Time
			}
		default:
			si.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudyItem.
// This includes values selected through modifiers, order, etc.
func (si *StudyItem) Value(name string) (ent.Value, error) {
	return si.selectValues.Get(name)
}

// Update returns a builder for updating this StudyItem.
// Note that you need to call StudyItem.Unwrap() before calling this method if this StudyItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (si *StudyItem) Update() *StudyItemUpdateOne {
	return NewStudyItemClient(si.config).UpdateOne(si)
}

// Unwrap unwraps the StudyItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (si *StudyItem) Unwrap() *StudyItem {
	_tx, ok := si.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudyItem is not a transactional entity")
	}
	si.config.driver = _tx.drv
	return si
}

// String implements the fmt.Stringer.
func (si *StudyItem) String() string {
	var builder strings.Builder
	builder.WriteString("StudyItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", si.ID))
	builder.WriteString("user_id=")
	builder.WriteString(si.UserID)
	builder.WriteString(", ")
	builder.WriteString("front=")
	builder.WriteString(si.Front)
	builder.WriteString(", ")
	builder.WriteString("back=")
	builder.WriteString(si.Back)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(si.ContentType)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", si.Tags))
	builder.WriteString(", ")
	builder.WriteString("source_ref=")
	builder.WriteString(si.SourceRef)
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", si.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", si.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", si.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(si.Stage)
	builder.WriteString(", ")
	builder.WriteString("last_review_at=")
	builder.WriteString(si.LastReviewAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_review_at=")
	builder.WriteString(si.NextReviewAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudyItems is a parsable slice of StudyItem.
type StudyItems []*StudyItem
