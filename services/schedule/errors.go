package schedule

import "fmt"

// ScheduleQueryError reports a booking-store read failure during a schedule
// query. It exists so callers can tell "no conflicts" apart from "could not
// check": a failed conflict check must block booking creation, never
// silently approve it.
type ScheduleQueryError struct {
	Op  string
	Err error
}

func (e *ScheduleQueryError) Error() string {
	return fmt.Sprintf("schedule query %s failed: %v", e.Op, e.Err)
}

func (e *ScheduleQueryError) Unwrap() error {
	return e.Err
}

// ValidationError reports malformed caller input such as an inverted date
// range or a zero-length time slot.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
