package domain

import "time"

// ActivitySessions pairs an activity with the ordered list of its sessions.
type ActivitySessions struct {
	Activity *Activity
	Sessions []Session
}

// Block is a time-bounded offering of a course: the house attending it and
// the activities that make it up.
type Block struct {
	Course     string
	Name       string
	Start, End time.Time
	House      House
	Activities []*Activity
}

// ActivitySchedule is the list of ActivitySessions that make up a filled
// (or partially filled) schedule.
type ActivitySchedule []ActivitySessions

// BlockSchedule is a block plus its activity schedule.
type BlockSchedule struct {
	Block    Block
	Schedule ActivitySchedule
}

// Find returns the ActivitySessions for the named activity, if present.
func (s ActivitySchedule) Find(a *Activity) (ActivitySessions, bool) {
	for _, as := range s {
		if as.Activity.Equal(a) {
			return as, true
		}
	}
	return ActivitySessions{}, false
}
