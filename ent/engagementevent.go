// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/campusterm/campus/ent/engagementevent"
)

// EngagementEvent is the model entity for the EngagementEvent schema.
type EngagementEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Lesson the activity belongs to
	LessonID string `json:"lesson_id,omitempty"`
	// resume, pause, or complete
	Action string `json:"action,omitempty"`
	// Accumulated watch time at the event
	WatchSecs    int `json:"watch_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EngagementEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case engagementevent.FieldID, engagementevent.FieldSequence, engagementevent.FieldWatchSecs:
			values[i] = new(sql.NullInt64)
		case engagementevent.FieldLessonID, engagementevent.FieldAction:
			values[i] = new(sql.NullString)
		case engagementevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EngagementEvent fields.
func (_m *EngagementEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case engagementevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case engagementevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case engagementevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case engagementevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case engagementevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case engagementevent.FieldWatchSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field watch_secs", values[i])
			} else if value.Valid {
				_m.WatchSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EngagementEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EngagementEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EngagementEvent.
// Note that you need to call EngagementEvent.Unwrap() before calling this method if this EngagementEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EngagementEvent) Update() *EngagementEventUpdateOne {
	return NewEngagementEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EngagementEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EngagementEvent) Unwrap() *EngagementEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EngagementEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EngagementEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EngagementEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("watch_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.WatchSecs))
	builder.WriteByte(')')
	return builder.String()
}

// EngagementEvents is a parsable slice of EngagementEvent.
type EngagementEvents []*EngagementEvent
