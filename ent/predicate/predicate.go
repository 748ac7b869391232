// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LearnerParams is the predicate function for learnerparams builders.
type LearnerParams func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)

// StudyItem is the predicate function for studyitem builders.
type StudyItem func(*sql.Selector)
