// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cardwise/cardwise/ent/learnerparams"
	"github.com/cardwise/cardwise/ent/predicate"
	"github.com/cardwise/cardwise/ent/reviewevent"
	"github.com/cardwise/cardwise/ent/sessionrecord"
	"github.com/cardwise/cardwise/ent/studyitem"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLearnerParams = "LearnerParams"
	TypeReviewEvent   = "ReviewEvent"
	TypeSessionRecord = "SessionRecord"
	TypeStudyItem     = "StudyItem"
)

// LearnerParamsMutation represents an operation that mutates the LearnerParams nodes in the graph.
type LearnerParamsMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	user_id              *string
	initial_ease         *float64
	addinitial_ease      *float64
	min_ease             *float64
	addmin_ease          *float64
	ease_bonus           *float64
	addease_bonus        *float64
	ease_penalty         *float64
	addease_penalty      *float64
	interval_modifier    *float64
	addinterval_modifier *float64
	max_interval_days    *int
	addmax_interval_days *int
	new_per_day          *int
	addnew_per_day       *int
	reviews_per_day      *int
	addreviews_per_day   *int
	adaptive             *bool
	settings             *map[string]interface{}
	analyzed_at          *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*LearnerParams, error)
	predicates           []predicate.LearnerParams
}

var _ ent.Mutation = (*LearnerParamsMutation)(nil)

// learnerparamsOption allows management of the mutation configuration using functional options.
type learnerparamsOption func(*LearnerParamsMutation)

// newLearnerParamsMutation creates new mutation for the LearnerParams entity.
func newLearnerParamsMutation(c config, op Op, opts ...learnerparamsOption) *LearnerParamsMutation {
	m := &LearnerParamsMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerParams,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerParamsID sets the ID field of the mutation.
func withLearnerParamsID(id int) learnerparamsOption {
	return func(m *LearnerParamsMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerParams
		)
		m.oldValue = func(ctx context.Context) (*LearnerParams, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerParams.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerParams sets the old LearnerParams of the mutation.
func withLearnerParams(node *LearnerParams) learnerparamsOption {
	return func(m *LearnerParamsMutation) {
		m.oldValue = func(context.Context) (*LearnerParams, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerParamsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerParamsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerParamsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerParamsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerParams.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LearnerParamsMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearnerParamsMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearnerParamsMutation) ResetUserID() {
	m.user_id = nil
}

// SetInitialEase sets the "initial_ease" field.
func (m *LearnerParamsMutation) SetInitialEase(f float64) {
	m.initial_ease = &f
	m.addinitial_ease = nil
}

// InitialEase returns the value of the "initial_ease" field in the mutation.
func (m *LearnerParamsMutation) InitialEase() (r float64, exists bool) {
	v := m.initial_ease
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialEase returns the old "initial_ease" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldInitialEase(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialEase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialEase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialEase: %w", err)
	}
	return oldValue.InitialEase, nil
}

// AddInitialEase adds f to the "initial_ease" field.
func (m *LearnerParamsMutation) AddInitialEase(f float64) {
	if m.addinitial_ease != nil {
		*m.addinitial_ease += f
	} else {
		m.addinitial_ease = &f
	}
}

// AddedInitialEase returns the value that was added to the "initial_ease" field in this mutation.
func (m *LearnerParamsMutation) AddedInitialEase() (r float64, exists bool) {
	v := m.addinitial_ease
	if v == nil {
		return
	}
	return *v, true
}

// ResetInitialEase resets all changes to the "initial_ease" field.
func (m *LearnerParamsMutation) ResetInitialEase() {
	m.initial_ease = nil
	m.addinitial_ease = nil
}

// SetMinEase sets the "min_ease" field.
func (m *LearnerParamsMutation) SetMinEase(f float64) {
	m.min_ease = &f
	m.addmin_ease = nil
}

// MinEase returns the value of the "min_ease" field in the mutation.
func (m *LearnerParamsMutation) MinEase() (r float64, exists bool) {
	v := m.min_ease
	if v == nil {
		return
	}
	return *v, true
}

// OldMinEase returns the old "min_ease" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldMinEase(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinEase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinEase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinEase: %w", err)
	}
	return oldValue.MinEase, nil
}

// AddMinEase adds f to the "min_ease" field.
func (m *LearnerParamsMutation) AddMinEase(f float64) {
	if m.addmin_ease != nil {
		*m.addmin_ease += f
	} else {
		m.addmin_ease = &f
	}
}

// AddedMinEase returns the value that was added to the "min_ease" field in this mutation.
func (m *LearnerParamsMutation) AddedMinEase() (r float64, exists bool) {
	v := m.addmin_ease
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinEase resets all changes to the "min_ease" field.
func (m *LearnerParamsMutation) ResetMinEase() {
	m.min_ease = nil
	m.addmin_ease = nil
}

// SetEaseBonus sets the "ease_bonus" field.
func (m *LearnerParamsMutation) SetEaseBonus(f float64) {
	m.ease_bonus = &f
	m.addease_bonus = nil
}

// EaseBonus returns the value of the "ease_bonus" field in the mutation.
func (m *LearnerParamsMutation) EaseBonus() (r float64, exists bool) {
	v := m.ease_bonus
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseBonus returns the old "ease_bonus" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldEaseBonus(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseBonus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseBonus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseBonus: %w", err)
	}
	return oldValue.EaseBonus, nil
}

// AddEaseBonus adds f to the "ease_bonus" field.
func (m *LearnerParamsMutation) AddEaseBonus(f float64) {
	if m.addease_bonus != nil {
		*m.addease_bonus += f
	} else {
		m.addease_bonus = &f
	}
}

// AddedEaseBonus returns the value that was added to the "ease_bonus" field in this mutation.
func (m *LearnerParamsMutation) AddedEaseBonus() (r float64, exists bool) {
	v := m.addease_bonus
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseBonus resets all changes to the "ease_bonus" field.
func (m *LearnerParamsMutation) ResetEaseBonus() {
	m.ease_bonus = nil
	m.addease_bonus = nil
}

// SetEasePenalty sets the "ease_penalty" field.
func (m *LearnerParamsMutation) SetEasePenalty(f float64) {
	m.ease_penalty = &f
	m.addease_penalty = nil
}

// EasePenalty returns the value of the "ease_penalty" field in the mutation.
func (m *LearnerParamsMutation) EasePenalty() (r float64, exists bool) {
	v := m.ease_penalty
	if v == nil {
		return
	}
	return *v, true
}

// OldEasePenalty returns the old "ease_penalty" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldEasePenalty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEasePenalty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEasePenalty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEasePenalty: %w", err)
	}
	return oldValue.EasePenalty, nil
}

// AddEasePenalty adds f to the "ease_penalty" field.
func (m *LearnerParamsMutation) AddEasePenalty(f float64) {
	if m.addease_penalty != nil {
		*m.addease_penalty += f
	} else {
		m.addease_penalty = &f
	}
}

// AddedEasePenalty returns the value that was added to the "ease_penalty" field in this mutation.
func (m *LearnerParamsMutation) AddedEasePenalty() (r float64, exists bool) {
	v := m.addease_penalty
	if v == nil {
		return
	}
	return *v, true
}

// ResetEasePenalty resets all changes to the "ease_penalty" field.
func (m *LearnerParamsMutation) ResetEasePenalty() {
	m.ease_penalty = nil
	m.addease_penalty = nil
}

// SetIntervalModifier sets the "interval_modifier" field.
func (m *LearnerParamsMutation) SetIntervalModifier(f float64) {
	m.interval_modifier = &f
	m.addinterval_modifier = nil
}

// IntervalModifier returns the value of the "interval_modifier" field in the mutation.
func (m *LearnerParamsMutation) IntervalModifier() (r float64, exists bool) {
	v := m.interval_modifier
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalModifier returns the old "interval_modifier" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldIntervalModifier(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalModifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalModifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalModifier: %w", err)
	}
	return oldValue.IntervalModifier, nil
}

// AddIntervalModifier adds f to the "interval_modifier" field.
func (m *LearnerParamsMutation) AddIntervalModifier(f float64) {
	if m.addinterval_modifier != nil {
		*m.addinterval_modifier += f
	} else {
		m.addinterval_modifier = &f
	}
}

// AddedIntervalModifier returns the value that was added to the "interval_modifier" field in this mutation.
func (m *LearnerParamsMutation) AddedIntervalModifier() (r float64, exists bool) {
	v := m.addinterval_modifier
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalModifier resets all changes to the "interval_modifier" field.
func (m *LearnerParamsMutation) ResetIntervalModifier() {
	m.interval_modifier = nil
	m.addinterval_modifier = nil
}

// SetMaxIntervalDays sets the "max_interval_days" field.
func (m *LearnerParamsMutation) SetMaxIntervalDays(i int) {
	m.max_interval_days = &i
	m.addmax_interval_days = nil
}

// MaxIntervalDays returns the value of the "max_interval_days" field in the mutation.
func (m *LearnerParamsMutation) MaxIntervalDays() (r int, exists bool) {
	v := m.max_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIntervalDays returns the old "max_interval_days" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldMaxIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIntervalDays: %w", err)
	}
	return oldValue.MaxIntervalDays, nil
}

// AddMaxIntervalDays adds i to the "max_interval_days" field.
func (m *LearnerParamsMutation) AddMaxIntervalDays(i int) {
	if m.addmax_interval_days != nil {
		*m.addmax_interval_days += i
	} else {
		m.addmax_interval_days = &i
	}
}

// AddedMaxIntervalDays returns the value that was added to the "max_interval_days" field in this mutation.
func (m *LearnerParamsMutation) AddedMaxIntervalDays() (r int, exists bool) {
	v := m.addmax_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxIntervalDays resets all changes to the "max_interval_days" field.
func (m *LearnerParamsMutation) ResetMaxIntervalDays() {
	m.max_interval_days = nil
	m.addmax_interval_days = nil
}

// SetNewPerDay sets the "new_per_day" field.
func (m *LearnerParamsMutation) SetNewPerDay(i int) {
	m.new_per_day = &i
	m.addnew_per_day = nil
}

// NewPerDay returns the value of the "new_per_day" field in the mutation.
func (m *LearnerParamsMutation) NewPerDay() (r int, exists bool) {
	v := m.new_per_day
	if v == nil {
		return
	}
	return *v, true
}

// OldNewPerDay returns the old "new_per_day" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldNewPerDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewPerDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewPerDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewPerDay: %w", err)
	}
	return oldValue.NewPerDay, nil
}

// AddNewPerDay adds i to the "new_per_day" field.
func (m *LearnerParamsMutation) AddNewPerDay(i int) {
	if m.addnew_per_day != nil {
		*m.addnew_per_day += i
	} else {
		m.addnew_per_day = &i
	}
}

// AddedNewPerDay returns the value that was added to the "new_per_day" field in this mutation.
func (m *LearnerParamsMutation) AddedNewPerDay() (r int, exists bool) {
	v := m.addnew_per_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewPerDay resets all changes to the "new_per_day" field.
func (m *LearnerParamsMutation) ResetNewPerDay() {
	m.new_per_day = nil
	m.addnew_per_day = nil
}

// SetReviewsPerDay sets the "reviews_per_day" field.
func (m *LearnerParamsMutation) SetReviewsPerDay(i int) {
	m.reviews_per_day = &i
	m.addreviews_per_day = nil
}

// ReviewsPerDay returns the value of the "reviews_per_day" field in the mutation.
func (m *LearnerParamsMutation) ReviewsPerDay() (r int, exists bool) {
	v := m.reviews_per_day
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewsPerDay returns the old "reviews_per_day" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldReviewsPerDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewsPerDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewsPerDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewsPerDay: %w", err)
	}
	return oldValue.ReviewsPerDay, nil
}

// AddReviewsPerDay adds i to the "reviews_per_day" field.
func (m *LearnerParamsMutation) AddReviewsPerDay(i int) {
	if m.addreviews_per_day != nil {
		*m.addreviews_per_day += i
	} else {
		m.addreviews_per_day = &i
	}
}

// AddedReviewsPerDay returns the value that was added to the "reviews_per_day" field in this mutation.
func (m *LearnerParamsMutation) AddedReviewsPerDay() (r int, exists bool) {
	v := m.addreviews_per_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewsPerDay resets all changes to the "reviews_per_day" field.
func (m *LearnerParamsMutation) ResetReviewsPerDay() {
	m.reviews_per_day = nil
	m.addreviews_per_day = nil
}

// SetAdaptive sets the "adaptive" field.
func (m *LearnerParamsMutation) SetAdaptive(b bool) {
	m.adaptive = &b
}

// Adaptive returns the value of the "adaptive" field in the mutation.
func (m *LearnerParamsMutation) Adaptive() (r bool, exists bool) {
	v := m.adaptive
	if v == nil {
		return
	}
	return *v, true
}

// OldAdaptive returns the old "adaptive" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldAdaptive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdaptive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdaptive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdaptive: %w", err)
	}
	return oldValue.Adaptive, nil
}

// ResetAdaptive resets all changes to the "adaptive" field.
func (m *LearnerParamsMutation) ResetAdaptive() {
	m.adaptive = nil
}

// SetSettings sets the "settings" field.
func (m *LearnerParamsMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *LearnerParamsMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ResetSettings resets all changes to the "settings" field.
func (m *LearnerParamsMutation) ResetSettings() {
	m.settings = nil
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (m *LearnerParamsMutation) SetAnalyzedAt(t time.Time) {
	m.analyzed_at = &t
}

// AnalyzedAt returns the value of the "analyzed_at" field in the mutation.
func (m *LearnerParamsMutation) AnalyzedAt() (r time.Time, exists bool) {
	v := m.analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzedAt returns the old "analyzed_at" field's value of the LearnerParams entity.
// If the LearnerParams object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerParamsMutation) OldAnalyzedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzedAt: %w", err)
	}
	return oldValue.AnalyzedAt, nil
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (m *LearnerParamsMutation) ClearAnalyzedAt() {
	m.analyzed_at = nil
	m.clearedFields[learnerparams.FieldAnalyzedAt] = struct{}{}
}

// AnalyzedAtCleared returns if the "analyzed_at" field was cleared in this mutation.
func (m *LearnerParamsMutation) AnalyzedAtCleared() bool {
	_, ok := m.clearedFields[learnerparams.FieldAnalyzedAt]
	return ok
}

// ResetAnalyzedAt resets all changes to the "analyzed_at" field.
func (m *LearnerParamsMutation) ResetAnalyzedAt() {
	m.analyzed_at = nil
	delete(m.clearedFields, learnerparams.FieldAnalyzedAt)
}

// Where appends a list predicates to the LearnerParamsMutation builder.
func (m *LearnerParamsMutation) Where(ps ...predicate.LearnerParams) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerParamsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerParamsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerParams, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerParamsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerParamsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerParams).
func (m *LearnerParamsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerParamsMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, learnerparams.FieldUserID)
	}
	if m.initial_ease != nil {
		fields = append(fields, learnerparams.FieldInitialEase)
	}
	if m.min_ease != nil {
		fields = append(fields, learnerparams.FieldMinEase)
	}
	if m.ease_bonus != nil {
		fields = append(fields, learnerparams.FieldEaseBonus)
	}
	if m.ease_penalty != nil {
		fields = append(fields, learnerparams.FieldEasePenalty)
	}
	if m.interval_modifier != nil {
		fields = append(fields, learnerparams.FieldIntervalModifier)
	}
	if m.max_interval_days != nil {
		fields = append(fields, learnerparams.FieldMaxIntervalDays)
	}
	if m.new_per_day != nil {
		fields = append(fields, learnerparams.FieldNewPerDay)
	}
	if m.reviews_per_day != nil {
		fields = append(fields, learnerparams.FieldReviewsPerDay)
	}
	if m.adaptive != nil {
		fields = append(fields, learnerparams.FieldAdaptive)
	}
	if m.settings != nil {
		fields = append(fields, learnerparams.FieldSettings)
	}
	if m.analyzed_at != nil {
		fields = append(fields, learnerparams.FieldAnalyzedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerParamsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnerparams.FieldUserID:
		return m.UserID()
	case learnerparams.FieldInitialEase:
		return m.InitialEase()
	case learnerparams.FieldMinEase:
		return m.MinEase()
	case learnerparams.FieldEaseBonus:
		return m.EaseBonus()
	case learnerparams.FieldEasePenalty:
		return m.EasePenalty()
	case learnerparams.FieldIntervalModifier:
		return m.IntervalModifier()
	case learnerparams.FieldMaxIntervalDays:
		return m.MaxIntervalDays()
	case learnerparams.FieldNewPerDay:
		return m.NewPerDay()
	case learnerparams.FieldReviewsPerDay:
		return m.ReviewsPerDay()
	case learnerparams.FieldAdaptive:
		return m.Adaptive()
	case learnerparams.FieldSettings:
		return m.Settings()
	case learnerparams.FieldAnalyzedAt:
		return m.AnalyzedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerParamsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnerparams.FieldUserID:
		return m.OldUserID(ctx)
	case learnerparams.FieldInitialEase:
		return m.OldInitialEase(ctx)
	case learnerparams.FieldMinEase:
		return m.OldMinEase(ctx)
	case learnerparams.FieldEaseBonus:
		return m.OldEaseBonus(ctx)
	case learnerparams.FieldEasePenalty:
		return m.OldEasePenalty(ctx)
	case learnerparams.FieldIntervalModifier:
		return m.OldIntervalModifier(ctx)
	case learnerparams.FieldMaxIntervalDays:
		return m.OldMaxIntervalDays(ctx)
	case learnerparams.FieldNewPerDay:
		return m.OldNewPerDay(ctx)
	case learnerparams.FieldReviewsPerDay:
		return m.OldReviewsPerDay(ctx)
	case learnerparams.FieldAdaptive:
		return m.OldAdaptive(ctx)
	case learnerparams.FieldSettings:
		return m.OldSettings(ctx)
	case learnerparams.FieldAnalyzedAt:
		return m.OldAnalyzedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerParams field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerParamsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnerparams.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learnerparams.FieldInitialEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialEase(v)
		return nil
	case learnerparams.FieldMinEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinEase(v)
		return nil
	case learnerparams.FieldEaseBonus:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseBonus(v)
		return nil
	case learnerparams.FieldEasePenalty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEasePenalty(v)
		return nil
	case learnerparams.FieldIntervalModifier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalModifier(v)
		return nil
	case learnerparams.FieldMaxIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIntervalDays(v)
		return nil
	case learnerparams.FieldNewPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewPerDay(v)
		return nil
	case learnerparams.FieldReviewsPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewsPerDay(v)
		return nil
	case learnerparams.FieldAdaptive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdaptive(v)
		return nil
	case learnerparams.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case learnerparams.FieldAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerParams field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerParamsMutation) AddedFields() []string {
	var fields []string
	if m.addinitial_ease != nil {
		fields = append(fields, learnerparams.FieldInitialEase)
	}
	if m.addmin_ease != nil {
		fields = append(fields, learnerparams.FieldMinEase)
	}
	if m.addease_bonus != nil {
		fields = append(fields, learnerparams.FieldEaseBonus)
	}
	if m.addease_penalty != nil {
		fields = append(fields, learnerparams.FieldEasePenalty)
	}
	if m.addinterval_modifier != nil {
		fields = append(fields, learnerparams.FieldIntervalModifier)
	}
	if m.addmax_interval_days != nil {
		fields = append(fields, learnerparams.FieldMaxIntervalDays)
	}
	if m.addnew_per_day != nil {
		fields = append(fields, learnerparams.FieldNewPerDay)
	}
	if m.addreviews_per_day != nil {
		fields = append(fields, learnerparams.FieldReviewsPerDay)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerParamsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnerparams.FieldInitialEase:
		return m.AddedInitialEase()
	case learnerparams.FieldMinEase:
		return m.AddedMinEase()
	case learnerparams.FieldEaseBonus:
		return m.AddedEaseBonus()
	case learnerparams.FieldEasePenalty:
		return m.AddedEasePenalty()
	case learnerparams.FieldIntervalModifier:
		return m.AddedIntervalModifier()
	case learnerparams.FieldMaxIntervalDays:
		return m.AddedMaxIntervalDays()
	case learnerparams.FieldNewPerDay:
		return m.AddedNewPerDay()
	case learnerparams.FieldReviewsPerDay:
		return m.AddedReviewsPerDay()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerParamsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnerparams.FieldInitialEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInitialEase(v)
		return nil
	case learnerparams.FieldMinEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinEase(v)
		return nil
	case learnerparams.FieldEaseBonus:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseBonus(v)
		return nil
	case learnerparams.FieldEasePenalty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEasePenalty(v)
		return nil
	case learnerparams.FieldIntervalModifier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalModifier(v)
		return nil
	case learnerparams.FieldMaxIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIntervalDays(v)
		return nil
	case learnerparams.FieldNewPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewPerDay(v)
		return nil
	case learnerparams.FieldReviewsPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewsPerDay(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerParams numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerParamsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learnerparams.FieldAnalyzedAt) {
		fields = append(fields, learnerparams.FieldAnalyzedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerParamsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerParamsMutation) ClearField(name string) error {
	switch name {
	case learnerparams.FieldAnalyzedAt:
		m.ClearAnalyzedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerParams nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerParamsMutation) ResetField(name string) error {
	switch name {
	case learnerparams.FieldUserID:
		m.ResetUserID()
		return nil
	case learnerparams.FieldInitialEase:
		m.ResetInitialEase()
		return nil
	case learnerparams.FieldMinEase:
		m.ResetMinEase()
		return nil
	case learnerparams.FieldEaseBonus:
		m.ResetEaseBonus()
		return nil
	case learnerparams.FieldEasePenalty:
		m.ResetEasePenalty()
		return nil
	case learnerparams.FieldIntervalModifier:
		m.ResetIntervalModifier()
		return nil
	case learnerparams.FieldMaxIntervalDays:
		m.ResetMaxIntervalDays()
		return nil
	case learnerparams.FieldNewPerDay:
		m.ResetNewPerDay()
		return nil
	case learnerparams.FieldReviewsPerDay:
		m.ResetReviewsPerDay()
		return nil
	case learnerparams.FieldAdaptive:
		m.ResetAdaptive()
		return nil
	case learnerparams.FieldSettings:
		m.ResetSettings()
		return nil
	case learnerparams.FieldAnalyzedAt:
		m.ResetAnalyzedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerParams field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerParamsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerParamsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerParamsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerParamsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerParamsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerParamsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerParamsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerParams unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerParamsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerParams edge %s", name)
}

// ReviewEventMutation represents an operation that mutates the ReviewEvent nodes in the graph.
type ReviewEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	item_id            *string
	user_id            *string
	rating             *int
	addrating          *int
	interval_days      *int
	addinterval_days   *int
	time_spent_secs    *float64
	addtime_spent_secs *float64
	ease_after         *float64
	addease_after      *float64
	tags               *[]string
	appendtags         []string
	factors            *map[string]float64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ReviewEvent, error)
	predicates         []predicate.ReviewEvent
}

var _ ent.Mutation = (*ReviewEventMutation)(nil)

// revieweventOption allows management of the mutation configuration using functional options.
type revieweventOption func(*ReviewEventMutation)

// newReviewEventMutation creates new mutation for the ReviewEvent entity.
func newReviewEventMutation(c config, op Op, opts ...revieweventOption) *ReviewEventMutation {
	m := &ReviewEventMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEventID sets the ID field of the mutation.
func withReviewEventID(id int) revieweventOption {
	return func(m *ReviewEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEvent
		)
		m.oldValue = func(ctx context.Context) (*ReviewEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEvent sets the old ReviewEvent of the mutation.
func withReviewEvent(node *ReviewEvent) revieweventOption {
	return func(m *ReviewEventMutation) {
		m.oldValue = func(context.Context) (*ReviewEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ReviewEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ReviewEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ReviewEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ReviewEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ReviewEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReviewEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReviewEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReviewEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetItemID sets the "item_id" field.
func (m *ReviewEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ReviewEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ReviewEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ReviewEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetRating sets the "rating" field.
func (m *ReviewEventMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ReviewEventMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *ReviewEventMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ReviewEventMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *ReviewEventMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewEventMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewEventMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewEventMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewEventMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewEventMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (m *ReviewEventMutation) SetTimeSpentSecs(f float64) {
	m.time_spent_secs = &f
	m.addtime_spent_secs = nil
}

// TimeSpentSecs returns the value of the "time_spent_secs" field in the mutation.
func (m *ReviewEventMutation) TimeSpentSecs() (r float64, exists bool) {
	v := m.time_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSecs returns the old "time_spent_secs" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTimeSpentSecs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSecs: %w", err)
	}
	return oldValue.TimeSpentSecs, nil
}

// AddTimeSpentSecs adds f to the "time_spent_secs" field.
func (m *ReviewEventMutation) AddTimeSpentSecs(f float64) {
	if m.addtime_spent_secs != nil {
		*m.addtime_spent_secs += f
	} else {
		m.addtime_spent_secs = &f
	}
}

// AddedTimeSpentSecs returns the value that was added to the "time_spent_secs" field in this mutation.
func (m *ReviewEventMutation) AddedTimeSpentSecs() (r float64, exists bool) {
	v := m.addtime_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSecs resets all changes to the "time_spent_secs" field.
func (m *ReviewEventMutation) ResetTimeSpentSecs() {
	m.time_spent_secs = nil
	m.addtime_spent_secs = nil
}

// SetEaseAfter sets the "ease_after" field.
func (m *ReviewEventMutation) SetEaseAfter(f float64) {
	m.ease_after = &f
	m.addease_after = nil
}

// EaseAfter returns the value of the "ease_after" field in the mutation.
func (m *ReviewEventMutation) EaseAfter() (r float64, exists bool) {
	v := m.ease_after
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseAfter returns the old "ease_after" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldEaseAfter(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseAfter: %w", err)
	}
	return oldValue.EaseAfter, nil
}

// AddEaseAfter adds f to the "ease_after" field.
func (m *ReviewEventMutation) AddEaseAfter(f float64) {
	if m.addease_after != nil {
		*m.addease_after += f
	} else {
		m.addease_after = &f
	}
}

// AddedEaseAfter returns the value that was added to the "ease_after" field in this mutation.
func (m *ReviewEventMutation) AddedEaseAfter() (r float64, exists bool) {
	v := m.addease_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseAfter resets all changes to the "ease_after" field.
func (m *ReviewEventMutation) ResetEaseAfter() {
	m.ease_after = nil
	m.addease_after = nil
}

// SetTags sets the "tags" field.
func (m *ReviewEventMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ReviewEventMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ReviewEventMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ReviewEventMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ReviewEventMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[reviewevent.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ReviewEventMutation) TagsCleared() bool {
	_, ok := m.clearedFields[reviewevent.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ReviewEventMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, reviewevent.FieldTags)
}

// SetFactors sets the "factors" field.
func (m *ReviewEventMutation) SetFactors(value map[string]float64) {
	m.factors = &value
}

// Factors returns the value of the "factors" field in the mutation.
func (m *ReviewEventMutation) Factors() (r map[string]float64, exists bool) {
	v := m.factors
	if v == nil {
		return
	}
	return *v, true
}

// OldFactors returns the old "factors" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldFactors(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactors: %w", err)
	}
	return oldValue.Factors, nil
}

// ResetFactors resets all changes to the "factors" field.
func (m *ReviewEventMutation) ResetFactors() {
	m.factors = nil
}

// Where appends a list predicates to the ReviewEventMutation builder.
func (m *ReviewEventMutation) Where(ps ...predicate.ReviewEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEvent).
func (m *ReviewEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, reviewevent.FieldTimestamp)
	}
	if m.item_id != nil {
		fields = append(fields, reviewevent.FieldItemID)
	}
	if m.user_id != nil {
		fields = append(fields, reviewevent.FieldUserID)
	}
	if m.rating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewevent.FieldIntervalDays)
	}
	if m.time_spent_secs != nil {
		fields = append(fields, reviewevent.FieldTimeSpentSecs)
	}
	if m.ease_after != nil {
		fields = append(fields, reviewevent.FieldEaseAfter)
	}
	if m.tags != nil {
		fields = append(fields, reviewevent.FieldTags)
	}
	if m.factors != nil {
		fields = append(fields, reviewevent.FieldFactors)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.Sequence()
	case reviewevent.FieldTimestamp:
		return m.Timestamp()
	case reviewevent.FieldItemID:
		return m.ItemID()
	case reviewevent.FieldUserID:
		return m.UserID()
	case reviewevent.FieldRating:
		return m.Rating()
	case reviewevent.FieldIntervalDays:
		return m.IntervalDays()
	case reviewevent.FieldTimeSpentSecs:
		return m.TimeSpentSecs()
	case reviewevent.FieldEaseAfter:
		return m.EaseAfter()
	case reviewevent.FieldTags:
		return m.Tags()
	case reviewevent.FieldFactors:
		return m.Factors()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewevent.FieldSequence:
		return m.OldSequence(ctx)
	case reviewevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case reviewevent.FieldItemID:
		return m.OldItemID(ctx)
	case reviewevent.FieldUserID:
		return m.OldUserID(ctx)
	case reviewevent.FieldRating:
		return m.OldRating(ctx)
	case reviewevent.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewevent.FieldTimeSpentSecs:
		return m.OldTimeSpentSecs(ctx)
	case reviewevent.FieldEaseAfter:
		return m.OldEaseAfter(ctx)
	case reviewevent.FieldTags:
		return m.OldTags(ctx)
	case reviewevent.FieldFactors:
		return m.OldFactors(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case reviewevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case reviewevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case reviewevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case reviewevent.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewevent.FieldTimeSpentSecs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSecs(v)
		return nil
	case reviewevent.FieldEaseAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseAfter(v)
		return nil
	case reviewevent.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case reviewevent.FieldFactors:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactors(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.addrating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	if m.addinterval_days != nil {
		fields = append(fields, reviewevent.FieldIntervalDays)
	}
	if m.addtime_spent_secs != nil {
		fields = append(fields, reviewevent.FieldTimeSpentSecs)
	}
	if m.addease_after != nil {
		fields = append(fields, reviewevent.FieldEaseAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.AddedSequence()
	case reviewevent.FieldRating:
		return m.AddedRating()
	case reviewevent.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewevent.FieldTimeSpentSecs:
		return m.AddedTimeSpentSecs()
	case reviewevent.FieldEaseAfter:
		return m.AddedEaseAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case reviewevent.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewevent.FieldTimeSpentSecs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSecs(v)
		return nil
	case reviewevent.FieldEaseAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseAfter(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewevent.FieldTags) {
		fields = append(fields, reviewevent.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEventMutation) ClearField(name string) error {
	switch name {
	case reviewevent.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEventMutation) ResetField(name string) error {
	switch name {
	case reviewevent.FieldSequence:
		m.ResetSequence()
		return nil
	case reviewevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case reviewevent.FieldItemID:
		m.ResetItemID()
		return nil
	case reviewevent.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewevent.FieldRating:
		m.ResetRating()
		return nil
	case reviewevent.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewevent.FieldTimeSpentSecs:
		m.ResetTimeSpentSecs()
		return nil
	case reviewevent.FieldEaseAfter:
		m.ResetEaseAfter()
		return nil
	case reviewevent.FieldTags:
		m.ResetTags()
		return nil
	case reviewevent.FieldFactors:
		m.ResetFactors()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent edge %s", name)
}

// SessionRecordMutation represents an operation that mutates the SessionRecord nodes in the graph.
type SessionRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	status             *string
	started_at         *time.Time
	ended_at           *time.Time
	total_items        *int
	addtotal_items     *int
	completed          *int
	addcompleted       *int
	average_rating     *float64
	addaverage_rating  *float64
	perfect_count      *int
	addperfect_count   *int
	completion_rate    *float64
	addcompletion_rate *float64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SessionRecord, error)
	predicates         []predicate.SessionRecord
}

var _ ent.Mutation = (*SessionRecordMutation)(nil)

// sessionrecordOption allows management of the mutation configuration using functional options.
type sessionrecordOption func(*SessionRecordMutation)

// newSessionRecordMutation creates new mutation for the SessionRecord entity.
func newSessionRecordMutation(c config, op Op, opts ...sessionrecordOption) *SessionRecordMutation {
	m := &SessionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionRecordID sets the ID field of the mutation.
func withSessionRecordID(id string) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionRecord
		)
		m.oldValue = func(ctx context.Context) (*SessionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionRecord sets the old SessionRecord of the mutation.
func withSessionRecord(node *SessionRecord) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		m.oldValue = func(context.Context) (*SessionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionRecord entities.
func (m *SessionRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *SessionRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionRecordMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionRecordMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionRecordMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldEndedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *SessionRecordMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[sessionrecord.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *SessionRecordMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionRecordMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, sessionrecord.FieldEndedAt)
}

// SetTotalItems sets the "total_items" field.
func (m *SessionRecordMutation) SetTotalItems(i int) {
	m.total_items = &i
	m.addtotal_items = nil
}

// TotalItems returns the value of the "total_items" field in the mutation.
func (m *SessionRecordMutation) TotalItems() (r int, exists bool) {
	v := m.total_items
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalItems returns the old "total_items" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldTotalItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalItems: %w", err)
	}
	return oldValue.TotalItems, nil
}

// AddTotalItems adds i to the "total_items" field.
func (m *SessionRecordMutation) AddTotalItems(i int) {
	if m.addtotal_items != nil {
		*m.addtotal_items += i
	} else {
		m.addtotal_items = &i
	}
}

// AddedTotalItems returns the value that was added to the "total_items" field in this mutation.
func (m *SessionRecordMutation) AddedTotalItems() (r int, exists bool) {
	v := m.addtotal_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalItems resets all changes to the "total_items" field.
func (m *SessionRecordMutation) ResetTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
}

// SetCompleted sets the "completed" field.
func (m *SessionRecordMutation) SetCompleted(i int) {
	m.completed = &i
	m.addcompleted = nil
}

// Completed returns the value of the "completed" field in the mutation.
func (m *SessionRecordMutation) Completed() (r int, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// AddCompleted adds i to the "completed" field.
func (m *SessionRecordMutation) AddCompleted(i int) {
	if m.addcompleted != nil {
		*m.addcompleted += i
	} else {
		m.addcompleted = &i
	}
}

// AddedCompleted returns the value that was added to the "completed" field in this mutation.
func (m *SessionRecordMutation) AddedCompleted() (r int, exists bool) {
	v := m.addcompleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleted resets all changes to the "completed" field.
func (m *SessionRecordMutation) ResetCompleted() {
	m.completed = nil
	m.addcompleted = nil
}

// SetAverageRating sets the "average_rating" field.
func (m *SessionRecordMutation) SetAverageRating(f float64) {
	m.average_rating = &f
	m.addaverage_rating = nil
}

// AverageRating returns the value of the "average_rating" field in the mutation.
func (m *SessionRecordMutation) AverageRating() (r float64, exists bool) {
	v := m.average_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageRating returns the old "average_rating" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldAverageRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageRating: %w", err)
	}
	return oldValue.AverageRating, nil
}

// AddAverageRating adds f to the "average_rating" field.
func (m *SessionRecordMutation) AddAverageRating(f float64) {
	if m.addaverage_rating != nil {
		*m.addaverage_rating += f
	} else {
		m.addaverage_rating = &f
	}
}

// AddedAverageRating returns the value that was added to the "average_rating" field in this mutation.
func (m *SessionRecordMutation) AddedAverageRating() (r float64, exists bool) {
	v := m.addaverage_rating
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageRating resets all changes to the "average_rating" field.
func (m *SessionRecordMutation) ResetAverageRating() {
	m.average_rating = nil
	m.addaverage_rating = nil
}

// SetPerfectCount sets the "perfect_count" field.
func (m *SessionRecordMutation) SetPerfectCount(i int) {
	m.perfect_count = &i
	m.addperfect_count = nil
}

// PerfectCount returns the value of the "perfect_count" field in the mutation.
func (m *SessionRecordMutation) PerfectCount() (r int, exists bool) {
	v := m.perfect_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPerfectCount returns the old "perfect_count" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldPerfectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerfectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerfectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerfectCount: %w", err)
	}
	return oldValue.PerfectCount, nil
}

// AddPerfectCount adds i to the "perfect_count" field.
func (m *SessionRecordMutation) AddPerfectCount(i int) {
	if m.addperfect_count != nil {
		*m.addperfect_count += i
	} else {
		m.addperfect_count = &i
	}
}

// AddedPerfectCount returns the value that was added to the "perfect_count" field in this mutation.
func (m *SessionRecordMutation) AddedPerfectCount() (r int, exists bool) {
	v := m.addperfect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPerfectCount resets all changes to the "perfect_count" field.
func (m *SessionRecordMutation) ResetPerfectCount() {
	m.perfect_count = nil
	m.addperfect_count = nil
}

// SetCompletionRate sets the "completion_rate" field.
func (m *SessionRecordMutation) SetCompletionRate(f float64) {
	m.completion_rate = &f
	m.addcompletion_rate = nil
}

// CompletionRate returns the value of the "completion_rate" field in the mutation.
func (m *SessionRecordMutation) CompletionRate() (r float64, exists bool) {
	v := m.completion_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionRate returns the old "completion_rate" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldCompletionRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionRate: %w", err)
	}
	return oldValue.CompletionRate, nil
}

// AddCompletionRate adds f to the "completion_rate" field.
func (m *SessionRecordMutation) AddCompletionRate(f float64) {
	if m.addcompletion_rate != nil {
		*m.addcompletion_rate += f
	} else {
		m.addcompletion_rate = &f
	}
}

// AddedCompletionRate returns the value that was added to the "completion_rate" field in this mutation.
func (m *SessionRecordMutation) AddedCompletionRate() (r float64, exists bool) {
	v := m.addcompletion_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionRate resets all changes to the "completion_rate" field.
func (m *SessionRecordMutation) ResetCompletionRate() {
	m.completion_rate = nil
	m.addcompletion_rate = nil
}

// Where appends a list predicates to the SessionRecordMutation builder.
func (m *SessionRecordMutation) Where(ps ...predicate.SessionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionRecord).
func (m *SessionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, sessionrecord.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, sessionrecord.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, sessionrecord.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, sessionrecord.FieldEndedAt)
	}
	if m.total_items != nil {
		fields = append(fields, sessionrecord.FieldTotalItems)
	}
	if m.completed != nil {
		fields = append(fields, sessionrecord.FieldCompleted)
	}
	if m.average_rating != nil {
		fields = append(fields, sessionrecord.FieldAverageRating)
	}
	if m.perfect_count != nil {
		fields = append(fields, sessionrecord.FieldPerfectCount)
	}
	if m.completion_rate != nil {
		fields = append(fields, sessionrecord.FieldCompletionRate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionrecord.FieldUserID:
		return m.UserID()
	case sessionrecord.FieldStatus:
		return m.Status()
	case sessionrecord.FieldStartedAt:
		return m.StartedAt()
	case sessionrecord.FieldEndedAt:
		return m.EndedAt()
	case sessionrecord.FieldTotalItems:
		return m.TotalItems()
	case sessionrecord.FieldCompleted:
		return m.Completed()
	case sessionrecord.FieldAverageRating:
		return m.AverageRating()
	case sessionrecord.FieldPerfectCount:
		return m.PerfectCount()
	case sessionrecord.FieldCompletionRate:
		return m.CompletionRate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionrecord.FieldUserID:
		return m.OldUserID(ctx)
	case sessionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case sessionrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sessionrecord.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case sessionrecord.FieldTotalItems:
		return m.OldTotalItems(ctx)
	case sessionrecord.FieldCompleted:
		return m.OldCompleted(ctx)
	case sessionrecord.FieldAverageRating:
		return m.OldAverageRating(ctx)
	case sessionrecord.FieldPerfectCount:
		return m.OldPerfectCount(ctx)
	case sessionrecord.FieldCompletionRate:
		return m.OldCompletionRate(ctx)
	}
	return nil, fmt.Errorf("unknown SessionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sessionrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sessionrecord.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case sessionrecord.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalItems(v)
		return nil
	case sessionrecord.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case sessionrecord.FieldAverageRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageRating(v)
		return nil
	case sessionrecord.FieldPerfectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerfectCount(v)
		return nil
	case sessionrecord.FieldCompletionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionRate(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_items != nil {
		fields = append(fields, sessionrecord.FieldTotalItems)
	}
	if m.addcompleted != nil {
		fields = append(fields, sessionrecord.FieldCompleted)
	}
	if m.addaverage_rating != nil {
		fields = append(fields, sessionrecord.FieldAverageRating)
	}
	if m.addperfect_count != nil {
		fields = append(fields, sessionrecord.FieldPerfectCount)
	}
	if m.addcompletion_rate != nil {
		fields = append(fields, sessionrecord.FieldCompletionRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionrecord.FieldTotalItems:
		return m.AddedTotalItems()
	case sessionrecord.FieldCompleted:
		return m.AddedCompleted()
	case sessionrecord.FieldAverageRating:
		return m.AddedAverageRating()
	case sessionrecord.FieldPerfectCount:
		return m.AddedPerfectCount()
	case sessionrecord.FieldCompletionRate:
		return m.AddedCompletionRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionrecord.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalItems(v)
		return nil
	case sessionrecord.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleted(v)
		return nil
	case sessionrecord.FieldAverageRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageRating(v)
		return nil
	case sessionrecord.FieldPerfectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPerfectCount(v)
		return nil
	case sessionrecord.FieldCompletionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionRate(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionrecord.FieldEndedAt) {
		fields = append(fields, sessionrecord.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionRecordMutation) ClearField(name string) error {
	switch name {
	case sessionrecord.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionRecordMutation) ResetField(name string) error {
	switch name {
	case sessionrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case sessionrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sessionrecord.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case sessionrecord.FieldTotalItems:
		m.ResetTotalItems()
		return nil
	case sessionrecord.FieldCompleted:
		m.ResetCompleted()
		return nil
	case sessionrecord.FieldAverageRating:
		m.ResetAverageRating()
		return nil
	case sessionrecord.FieldPerfectCount:
		m.ResetPerfectCount()
		return nil
	case sessionrecord.FieldCompletionRate:
		m.ResetCompletionRate()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord edge %s", name)
}

// StudyItemMutation represents an operation that mutates the StudyItem nodes in the graph.
type StudyItemMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	front            *string
	back             *string
	content_type     *string
	tags             *[]string
	appendtags       []string
	source_ref       *string
	ease_factor      *float64
	addease_factor   *float64
	interval_days    *int
	addinterval_days *int
	repetitions      *int
	addrepetitions   *int
	stage            *string
	last_review_at   *time.Time
	next_review_at   *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*StudyItem, error)
	predicates       []predicate.StudyItem
}

var _ ent.Mutation = (*StudyItemMutation)(nil)

// studyitemOption allows management of the mutation configuration using functional options.
type studyitemOption func(*StudyItemMutation)

// newStudyItemMutation creates new mutation for the StudyItem entity.
func newStudyItemMutation(c config, op Op, opts ...studyitemOption) *StudyItemMutation {
	m := &StudyItemMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyItemID sets the ID field of the mutation.
func withStudyItemID(id string) studyitemOption {
	return func(m *StudyItemMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyItem
		)
		m.oldValue = func(ctx context.Context) (*StudyItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyItem sets the old StudyItem of the mutation.
func withStudyItem(node *StudyItem) studyitemOption {
	return func(m *StudyItemMutation) {
		m.oldValue = func(context.Context) (*StudyItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudyItem entities.
func (m *StudyItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *StudyItemMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StudyItemMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StudyItemMutation) ResetUserID() {
	m.user_id = nil
}

// SetFront sets the "front" field.
func (m *StudyItemMutation) SetFront(s string) {
	m.front = &s
}

// Front returns the value of the "front" field in the mutation.
func (m *StudyItemMutation) Front() (r string, exists bool) {
	v := m.front
	if v == nil {
		return
	}
	return *v, true
}

// OldFront returns the old "front" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldFront(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFront is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFront requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFront: %w", err)
	}
	return oldValue.Front, nil
}

// ResetFront resets all changes to the "front" field.
func (m *StudyItemMutation) ResetFront() {
	m.front = nil
}

// SetBack sets the "back" field.
func (m *StudyItemMutation) SetBack(s string) {
	m.back = &s
}

// Back returns the value of the "back" field in the mutation.
func (m *StudyItemMutation) Back() (r string, exists bool) {
	v := m.back
	if v == nil {
		return
	}
	return *v, true
}

// OldBack returns the old "back" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldBack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBack: %w", err)
	}
	return oldValue.Back, nil
}

// ResetBack resets all changes to the "back" field.
func (m *StudyItemMutation) ResetBack() {
	m.back = nil
}

// SetContentType sets the "content_type" field.
func (m *StudyItemMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *StudyItemMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *StudyItemMutation) ResetContentType() {
	m.content_type = nil
}

// SetTags sets the "tags" field.
func (m *StudyItemMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *StudyItemMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *StudyItemMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *StudyItemMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *StudyItemMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[studyitem.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *StudyItemMutation) TagsCleared() bool {
	_, ok := m.clearedFields[studyitem.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *StudyItemMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, studyitem.FieldTags)
}

// SetSourceRef sets the "source_ref" field.
func (m *StudyItemMutation) SetSourceRef(s string) {
	m.source_ref = &s
}

// SourceRef returns the value of the "source_ref" field in the mutation.
func (m *StudyItemMutation) SourceRef() (r string, exists bool) {
	v := m.source_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceRef returns the old "source_ref" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldSourceRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceRef: %w", err)
	}
	return oldValue.SourceRef, nil
}

// ClearSourceRef clears the value of the "source_ref" field.
func (m *StudyItemMutation) ClearSourceRef() {
	m.source_ref = nil
	m.clearedFields[studyitem.FieldSourceRef] = struct{}{}
}

// SourceRefCleared returns if the "source_ref" field was cleared in this mutation.
func (m *StudyItemMutation) SourceRefCleared() bool {
	_, ok := m.clearedFields[studyitem.FieldSourceRef]
	return ok
}

// ResetSourceRef resets all changes to the "source_ref" field.
func (m *StudyItemMutation) ResetSourceRef() {
	m.source_ref = nil
	delete(m.clearedFields, studyitem.FieldSourceRef)
}

// SetEaseFactor sets the "ease_factor" field.
func (m *StudyItemMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *StudyItemMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *StudyItemMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *StudyItemMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *StudyItemMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *StudyItemMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *StudyItemMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *StudyItemMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *StudyItemMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *StudyItemMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *StudyItemMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *StudyItemMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *StudyItemMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *StudyItemMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *StudyItemMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetStage sets the "stage" field.
func (m *StudyItemMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *StudyItemMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *StudyItemMutation) ResetStage() {
	m.stage = nil
}

// SetLastReviewAt sets the "last_review_at" field.
func (m *StudyItemMutation) SetLastReviewAt(t time.Time) {
	m.last_review_at = &t
}

// LastReviewAt returns the value of the "last_review_at" field in the mutation.
func (m *StudyItemMutation) LastReviewAt() (r time.Time, exists bool) {
	v := m.last_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewAt returns the old "last_review_at" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldLastReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewAt: %w", err)
	}
	return oldValue.LastReviewAt, nil
}

// ClearLastReviewAt clears the value of the "last_review_at" field.
func (m *StudyItemMutation) ClearLastReviewAt() {
	m.last_review_at = nil
	m.clearedFields[studyitem.FieldLastReviewAt] = struct{}{}
}

// LastReviewAtCleared returns if the "last_review_at" field was cleared in this mutation.
func (m *StudyItemMutation) LastReviewAtCleared() bool {
	_, ok := m.clearedFields[studyitem.FieldLastReviewAt]
	return ok
}

// ResetLastReviewAt resets all changes to the "last_review_at" field.
func (m *StudyItemMutation) ResetLastReviewAt() {
	m.last_review_at = nil
	delete(m.clearedFields, studyitem.FieldLastReviewAt)
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *StudyItemMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *StudyItemMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the StudyItem entity.
// If the StudyItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyItemMutation) OldNextReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *StudyItemMutation) ResetNextReviewAt() {
	m.next_review_at = nil
}

// Where appends a list predicates to the StudyItemMutation builder.
func (m *StudyItemMutation) Where(ps ...predicate.StudyItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyItem).
func (m *StudyItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyItemMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, studyitem.FieldUserID)
	}
	if m.front != nil {
		fields = append(fields, studyitem.FieldFront)
	}
	if m.back != nil {
		fields = append(fields, studyitem.FieldBack)
	}
	if m.content_type != nil {
		fields = append(fields, studyitem.FieldContentType)
	}
	if m.tags != nil {
		fields = append(fields, studyitem.FieldTags)
	}
	if m.source_ref != nil {
		fields = append(fields, studyitem.FieldSourceRef)
	}
	if m.ease_factor != nil {
		fields = append(fields, studyitem.FieldEaseFactor)
	}
	if m.interval_days != nil {
		fields = append(fields, studyitem.FieldIntervalDays)
	}
	if m.repetitions != nil {
		fields = append(fields, studyitem.FieldRepetitions)
	}
	if m.stage != nil {
		fields = append(fields, studyitem.FieldStage)
	}
	if m.last_review_at != nil {
		fields = append(fields, studyitem.FieldLastReviewAt)
	}
	if m.next_review_at != nil {
		fields = append(fields, studyitem.FieldNextReviewAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyitem.FieldUserID:
		return m.UserID()
	case studyitem.FieldFront:
		return m.Front()
	case studyitem.FieldBack:
		return m.Back()
	case studyitem.FieldContentType:
		return m.ContentType()
	case studyitem.FieldTags:
		return m.Tags()
	case studyitem.FieldSourceRef:
		return m.SourceRef()
	case studyitem.FieldEaseFactor:
		return m.EaseFactor()
	case studyitem.FieldIntervalDays:
		return m.IntervalDays()
	case studyitem.FieldRepetitions:
		return m.Repetitions()
	case studyitem.FieldStage:
		return m.Stage()
	case studyitem.FieldLastReviewAt:
		return m.LastReviewAt()
	case studyitem.FieldNextReviewAt:
		return m.NextReviewAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyitem.FieldUserID:
		return m.OldUserID(ctx)
	case studyitem.FieldFront:
		return m.OldFront(ctx)
	case studyitem.FieldBack:
		return m.OldBack(ctx)
	case studyitem.FieldContentType:
		return m.OldContentType(ctx)
	case studyitem.FieldTags:
		return m.OldTags(ctx)
	case studyitem.FieldSourceRef:
		return m.OldSourceRef(ctx)
	case studyitem.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case studyitem.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case studyitem.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case studyitem.FieldStage:
		return m.OldStage(ctx)
	case studyitem.FieldLastReviewAt:
		return m.OldLastReviewAt(ctx)
	case studyitem.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudyItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyitem.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case studyitem.FieldFront:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFront(v)
		return nil
	case studyitem.FieldBack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBack(v)
		return nil
	case studyitem.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case studyitem.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case studyitem.FieldSourceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceRef(v)
		return nil
	case studyitem.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case studyitem.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case studyitem.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case studyitem.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case studyitem.FieldLastReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewAt(v)
		return nil
	case studyitem.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudyItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyItemMutation) AddedFields() []string {
	var fields []string
	if m.addease_factor != nil {
		fields = append(fields, studyitem.FieldEaseFactor)
	}
	if m.addinterval_days != nil {
		fields = append(fields, studyitem.FieldIntervalDays)
	}
	if m.addrepetitions != nil {
		fields = append(fields, studyitem.FieldRepetitions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studyitem.FieldEaseFactor:
		return m.AddedEaseFactor()
	case studyitem.FieldIntervalDays:
		return m.AddedIntervalDays()
	case studyitem.FieldRepetitions:
		return m.AddedRepetitions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studyitem.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case studyitem.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case studyitem.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	}
	return fmt.Errorf("unknown StudyItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studyitem.FieldTags) {
		fields = append(fields, studyitem.FieldTags)
	}
	if m.FieldCleared(studyitem.FieldSourceRef) {
		fields = append(fields, studyitem.FieldSourceRef)
	}
	if m.FieldCleared(studyitem.FieldLastReviewAt) {
		fields = append(fields, studyitem.FieldLastReviewAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyItemMutation) ClearField(name string) error {
	switch name {
	case studyitem.FieldTags:
		m.ClearTags()
		return nil
	case studyitem.FieldSourceRef:
		m.ClearSourceRef()
		return nil
	case studyitem.FieldLastReviewAt:
		m.ClearLastReviewAt()
		return nil
	}
	return fmt.Errorf("unknown StudyItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyItemMutation) ResetField(name string) error {
	switch name {
	case studyitem.FieldUserID:
		m.ResetUserID()
		return nil
	case studyitem.FieldFront:
		m.ResetFront()
		return nil
	case studyitem.FieldBack:
		m.ResetBack()
		return nil
	case studyitem.FieldContentType:
		m.ResetContentType()
		return nil
	case studyitem.FieldTags:
		m.ResetTags()
		return nil
	case studyitem.FieldSourceRef:
		m.ResetSourceRef()
		return nil
	case studyitem.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case studyitem.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case studyitem.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case studyitem.FieldStage:
		m.ResetStage()
		return nil
	case studyitem.FieldLastReviewAt:
		m.ResetLastReviewAt()
		return nil
	case studyitem.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	}
	return fmt.Errorf("unknown StudyItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudyItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudyItem edge %s", name)
}
