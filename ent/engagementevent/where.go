// Code generated by ent, DO NOT EDIT.

package engagementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/campusterm/campus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldLessonID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldAction, v))
}

// WatchSecs applies equality check predicate on the "watch_secs" field. It's identical to WatchSecsEQ.
func WatchSecs(v int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldWatchSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContainsFold(FieldAction, v))
}

// WatchSecsEQ applies the EQ predicate on the "watch_secs" field.
func WatchSecsEQ(v int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldWatchSecs, v))
}

// WatchSecsNEQ applies the NEQ predicate on the "watch_secs" field.
func WatchSecsNEQ(v int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldWatchSecs, v))
}

// WatchSecsIn applies the In predicate on the "watch_secs" field.
func WatchSecsIn(vs ...int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldWatchSecs, vs...))
}

// WatchSecsNotIn applies the NotIn predicate on the "watch_secs" field.
func WatchSecsNotIn(vs ...int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldWatchSecs, vs...))
}

// WatchSecsGT applies the GT predicate on the "watch_secs" field.
func WatchSecsGT(v int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldWatchSecs, v))
}

// WatchSecsGTE applies the GTE predicate on the "watch_secs" field.
func WatchSecsGTE(v int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldWatchSecs, v))
}

// WatchSecsLT applies the LT predicate on the "watch_secs" field.
func WatchSecsLT(v int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldWatchSecs, v))
}

// WatchSecsLTE applies the LTE predicate on the "watch_secs" field.
func WatchSecsLTE(v int) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldWatchSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EngagementEvent) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EngagementEvent) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EngagementEvent) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.NotPredicates(p))
}
