// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/campusterm/campus/ent/answerevent"
	"github.com/campusterm/campus/ent/engagementevent"
	"github.com/campusterm/campus/ent/pendingsubmission"
	"github.com/campusterm/campus/ent/schema"
	"github.com/campusterm/campus/ent/sessionevent"
	"github.com/campusterm/campus/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuizID is the schema descriptor for quiz_id field.
	answereventDescQuizID := answereventFields[1].Descriptor()
	// answerevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	answerevent.QuizIDValidator = answereventDescQuizID.Validators[0].(func(string) error)
	// answereventDescQuestionIndex is the schema descriptor for question_index field.
	answereventDescQuestionIndex := answereventFields[2].Descriptor()
	// answerevent.QuestionIndexValidator is a validator for the "question_index" field. It is called by the builders before save.
	answerevent.QuestionIndexValidator = answereventDescQuestionIndex.Validators[0].(func(int) error)
	// answereventDescOptionIndex is the schema descriptor for option_index field.
	answereventDescOptionIndex := answereventFields[3].Descriptor()
	// answerevent.OptionIndexValidator is a validator for the "option_index" field. It is called by the builders before save.
	answerevent.OptionIndexValidator = answereventDescOptionIndex.Validators[0].(func(int) error)
	engagementeventMixin := schema.EngagementEvent{}.Mixin()
	engagementeventMixinFields0 := engagementeventMixin[0].Fields()
	_ = engagementeventMixinFields0
	engagementeventFields := schema.EngagementEvent{}.Fields()
	_ = engagementeventFields
	// engagementeventDescTimestamp is the schema descriptor for timestamp field.
	engagementeventDescTimestamp := engagementeventMixinFields0[1].Descriptor()
	// engagementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	engagementevent.DefaultTimestamp = engagementeventDescTimestamp.Default.(func() time.Time)
	// engagementeventDescLessonID is the schema descriptor for lesson_id field.
	engagementeventDescLessonID := engagementeventFields[0].Descriptor()
	// engagementevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	engagementevent.LessonIDValidator = engagementeventDescLessonID.Validators[0].(func(string) error)
	// engagementeventDescAction is the schema descriptor for action field.
	engagementeventDescAction := engagementeventFields[1].Descriptor()
	// engagementevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	engagementevent.ActionValidator = engagementeventDescAction.Validators[0].(func(string) error)
	// engagementeventDescWatchSecs is the schema descriptor for watch_secs field.
	engagementeventDescWatchSecs := engagementeventFields[2].Descriptor()
	// engagementevent.DefaultWatchSecs holds the default value on creation for the watch_secs field.
	engagementevent.DefaultWatchSecs = engagementeventDescWatchSecs.Default.(int)
	pendingsubmissionFields := schema.PendingSubmission{}.Fields()
	_ = pendingsubmissionFields
	// pendingsubmissionDescKind is the schema descriptor for kind field.
	pendingsubmissionDescKind := pendingsubmissionFields[0].Descriptor()
	// pendingsubmission.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	pendingsubmission.KindValidator = pendingsubmissionDescKind.Validators[0].(func(string) error)
	// pendingsubmissionDescTarget is the schema descriptor for target field.
	pendingsubmissionDescTarget := pendingsubmissionFields[1].Descriptor()
	// pendingsubmission.TargetValidator is a validator for the "target" field. It is called by the builders before save.
	pendingsubmission.TargetValidator = pendingsubmissionDescTarget.Validators[0].(func(string) error)
	// pendingsubmissionDescAttempts is the schema descriptor for attempts field.
	pendingsubmissionDescAttempts := pendingsubmissionFields[3].Descriptor()
	// pendingsubmission.DefaultAttempts holds the default value on creation for the attempts field.
	pendingsubmission.DefaultAttempts = pendingsubmissionDescAttempts.Default.(int)
	// pendingsubmissionDescCreatedAt is the schema descriptor for created_at field.
	pendingsubmissionDescCreatedAt := pendingsubmissionFields[4].Descriptor()
	// pendingsubmission.DefaultCreatedAt holds the default value on creation for the created_at field.
	pendingsubmission.DefaultCreatedAt = pendingsubmissionDescCreatedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescQuizID is the schema descriptor for quiz_id field.
	sessioneventDescQuizID := sessioneventFields[1].Descriptor()
	// sessionevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	sessionevent.QuizIDValidator = sessioneventDescQuizID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionCount is the schema descriptor for question_count field.
	sessioneventDescQuestionCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	sessionevent.DefaultQuestionCount = sessioneventDescQuestionCount.Default.(int)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescKind is the schema descriptor for kind field.
	submissioneventDescKind := submissioneventFields[0].Descriptor()
	// submissionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	submissionevent.KindValidator = submissioneventDescKind.Validators[0].(func(string) error)
	// submissioneventDescTarget is the schema descriptor for target field.
	submissioneventDescTarget := submissioneventFields[1].Descriptor()
	// submissionevent.TargetValidator is a validator for the "target" field. It is called by the builders before save.
	submissionevent.TargetValidator = submissioneventDescTarget.Validators[0].(func(string) error)
	// submissioneventDescLatencyMs is the schema descriptor for latency_ms field.
	submissioneventDescLatencyMs := submissioneventFields[3].Descriptor()
	// submissionevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	submissionevent.DefaultLatencyMs = submissioneventDescLatencyMs.Default.(int64)
}
