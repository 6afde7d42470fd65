package domain

import "time"

// TimeOfDay is an offset from midnight, e.g. 13*time.Hour for 1pm.
type TimeOfDay = time.Duration

// Window is a single materialized time-instance: a calendar date plus a
// start/end offset from midnight on that date.
type Window struct {
	Date  time.Time
	Start TimeOfDay
	End   TimeOfDay
}

// dateOnly truncates t to midnight UTC so two Windows on "the same day"
// compare equal regardless of the time-of-day component of the Date they
// were built from.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartTime is the absolute instant the window begins.
func (w Window) StartTime() time.Time { return dateOnly(w.Date).Add(w.Start) }

// EndTime is the absolute instant the window ends.
func (w Window) EndTime() time.Time { return dateOnly(w.Date).Add(w.End) }

// SameDay reports whether w and o fall on the same calendar date.
func (w Window) SameDay(o Window) bool {
	return dateOnly(w.Date).Equal(dateOnly(o.Date))
}

// Overlaps reports whether w and o strictly intersect on the same day.
// Sharing only an endpoint (one window ending exactly when the other
// starts) is not an overlap.
func (w Window) Overlaps(o Window) bool {
	if !w.SameDay(o) {
		return false
	}
	return w.Start < o.End && o.Start < w.End
}
