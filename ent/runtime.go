// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cardwise/cardwise/ent/learnerparams"
	"github.com/cardwise/cardwise/ent/reviewevent"
	"github.com/cardwise/cardwise/ent/schema"
	"github.com/cardwise/cardwise/ent/sessionrecord"
	"github.com/cardwise/cardwise/ent/studyitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	learnerparamsFields := schema.LearnerParams{}.Fields()
	_ = learnerparamsFields
	// learnerparamsDescUserID is the schema descriptor for user_id field.
	learnerparamsDescUserID := learnerparamsFields[0].Descriptor()
	// learnerparams.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learnerparams.UserIDValidator = learnerparamsDescUserID.Validators[0].(func(string) error)
	// learnerparamsDescAdaptive is the schema descriptor for adaptive field.
	learnerparamsDescAdaptive := learnerparamsFields[9].Descriptor()
	// learnerparams.DefaultAdaptive holds the default value on creation for the adaptive field.
	learnerparams.DefaultAdaptive = learnerparamsDescAdaptive.Default.(bool)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[0].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescUserID is the schema descriptor for user_id field.
	revieweventDescUserID := revieweventFields[1].Descriptor()
	// reviewevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewevent.UserIDValidator = revieweventDescUserID.Validators[0].(func(string) error)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescUserID is the schema descriptor for user_id field.
	sessionrecordDescUserID := sessionrecordFields[1].Descriptor()
	// sessionrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionrecord.UserIDValidator = sessionrecordDescUserID.Validators[0].(func(string) error)
	// sessionrecordDescStatus is the schema descriptor for status field.
	sessionrecordDescStatus := sessionrecordFields[2].Descriptor()
	// sessionrecord.DefaultStatus holds the default value on creation for the status field.
	sessionrecord.DefaultStatus = sessionrecordDescStatus.Default.(string)
	// sessionrecordDescCompleted is the schema descriptor for completed field.
	sessionrecordDescCompleted := sessionrecordFields[6].Descriptor()
	// sessionrecord.DefaultCompleted holds the default value on creation for the completed field.
	sessionrecord.DefaultCompleted = sessionrecordDescCompleted.Default.(int)
	// sessionrecordDescAverageRating is the schema descriptor for average_rating field.
	sessionrecordDescAverageRating := sessionrecordFields[7].Descriptor()
	// sessionrecord.DefaultAverageRating holds the default value on creation for the average_rating field.
	sessionrecord.DefaultAverageRating = sessionrecordDescAverageRating.Default.(float64)
	// sessionrecordDescPerfectCount is the schema descriptor for perfect_count field.
	sessionrecordDescPerfectCount := sessionrecordFields[8].Descriptor()
	// sessionrecord.DefaultPerfectCount holds the default value on creation for the perfect_count field.
	sessionrecord.DefaultPerfectCount = sessionrecordDescPerfectCount.Default.(int)
	// sessionrecordDescCompletionRate is the schema descriptor for completion_rate field.
	sessionrecordDescCompletionRate := sessionrecordFields[9].Descriptor()
	// sessionrecord.DefaultCompletionRate holds the default value on creation for the completion_rate field.
	sessionrecord.DefaultCompletionRate = sessionrecordDescCompletionRate.Default.(float64)
	studyitemFields := schema.StudyItem{}.Fields()
	_ = studyitemFields
	// studyitemDescUserID is the schema descriptor for user_id field.
	studyitemDescUserID := studyitemFields[1].Descriptor()
	// studyitem.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studyitem.UserIDValidator = studyitemDescUserID.Validators[0].(func(string) error)
	// studyitemDescFront is the schema descriptor for front field.
	studyitemDescFront := studyitemFields[2].Descriptor()
	// studyitem.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	studyitem.FrontValidator = studyitemDescFront.Validators[0].(func(string) error)
	// studyitemDescContentType is the schema descriptor for content_type field.
	studyitemDescContentType := studyitemFields[4].Descriptor()
	// studyitem.DefaultContentType holds the default value on creation for the content_type field.
	studyitem.DefaultContentType = studyitemDescContentType.Default.(string)
	// studyitemDescIntervalDays is the schema descriptor for interval_days field.
	studyitemDescIntervalDays := studyitemFields[8].Descriptor()
	// studyitem.DefaultIntervalDays holds the default value on creation for the interval_days field.
	studyitem.DefaultIntervalDays = studyitemDescIntervalDays.Default.(int)
	// studyitemDescRepetitions is the schema descriptor for repetitions field.
	studyitemDescRepetitions := studyitemFields[9].Descriptor()
	// studyitem.DefaultRepetitions holds the default value on creation for the repetitions field.
	studyitem.DefaultRepetitions = studyitemDescRepetitions.Default.(int)
	// studyitemDescStage is the schema descriptor for stage field.
	studyitemDescStage := studyitemFields[10].Descriptor()
	// studyitem.DefaultStage holds the default value on creation for the stage field.
	studyitem.DefaultStage = studyitemDescStage.Default.(string)
}
