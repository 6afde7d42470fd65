package domain

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Session is a concrete time-instance of an activity: a window, the
// students eligible to attend before any scheduling begins, and the current
// enrollment.
type Session struct {
	ID         uint64
	Window     Window
	Enrollable []Student
	Enrollment Enrollment
}

// NewSession builds a Session with Empty enrollment and a deterministic ID
// derived from the window and enrollable set, so two sessions with
// identical content compare equal by ID without a deep structural compare.
func NewSession(w Window, enrollable []Student) Session {
	return Session{
		ID:         sessionID(w, enrollable),
		Window:     w,
		Enrollable: enrollable,
		Enrollment: Empty,
	}
}

// WithEnrollment returns a copy of s with its enrollment replaced; sessions
// are never mutated in place so a constructive enroller can hand back a
// modified copy while the original remains usable.
func (s Session) WithEnrollment(e Enrollment) Session {
	s.Enrollment = e
	return s
}

func sessionID(w Window, enrollable []Student) uint64 {
	h := xxhash.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(dateOnly(w.Date).Unix()))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(w.Start))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(w.End))
	h.Write(buf[:])

	keys := make([]string, len(enrollable))
	for i, s := range enrollable {
		keys[i] = s.key()
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
