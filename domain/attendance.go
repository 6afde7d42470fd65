package domain

// AttendanceEntry records a single prior-block attendance: the activity
// name attended and the session attended.
type AttendanceEntry struct {
	Activity  string
	SessionID uint64
}

// AttendanceRecord tracks, per student, the (activity, session) pairs they
// attended in prior blocks of the same course this academic year.
type AttendanceRecord struct {
	byStudent map[string][]AttendanceEntry
}

// NewAttendanceRecord creates an empty attendance record.
func NewAttendanceRecord() *AttendanceRecord {
	return &AttendanceRecord{byStudent: make(map[string][]AttendanceEntry)}
}

// Record adds an attended (activity, session) pair for student.
func (r *AttendanceRecord) Record(s Student, activity string, sessionID uint64) {
	r.byStudent[s.key()] = append(r.byStudent[s.key()], AttendanceEntry{Activity: activity, SessionID: sessionID})
}

// Attended reports whether student attended the named activity in any
// prior block.
func (r *AttendanceRecord) Attended(s Student, activity string) bool {
	for _, e := range r.byStudent[s.key()] {
		if e.Activity == activity {
			return true
		}
	}
	return false
}

// AttendedCount returns how many prior-block sessions of the named activity
// student attended.
func (r *AttendanceRecord) AttendedCount(s Student, activity string) int {
	n := 0
	for _, e := range r.byStudent[s.key()] {
		if e.Activity == activity {
			n++
		}
	}
	return n
}
