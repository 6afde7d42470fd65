// Package enroll implements the enrollment predicates and constructive
// enrollment algorithms that populate unordered sessions with students
// under conflict, priority and per-student requirement rules.
package enroll

import "github.com/kiwicayne/studentscheduling/domain"

// NeedsActivity returns the subset of enrollable students who still need
// activity, given prior-block attendance and the sessions already
// scheduled for it this block. It only applies to FromHouseSelectMaxStudents
// activities; SelectTwoPeers uses NeedsBedside/NeedsPeer instead, and
// overflow/NoRequirement activities are never scheduled by the constructive
// enrollers (they return no students here).
func NeedsActivity(attendance *domain.AttendanceRecord, enrollable []domain.Student, activity *domain.Activity, scheduled []domain.Session) []domain.Student {
	crit, ok := activity.Criteria.(domain.FromHouseSelectMaxStudents)
	if !ok {
		return nil
	}
	if crit.Req == domain.AttendEverySession {
		return append([]domain.Student(nil), enrollable...)
	}

	var out []domain.Student
	for _, s := range enrollable {
		if attendance != nil && attendance.Attended(s, activity.Name()) {
			continue
		}
		if enrolledInAny(scheduled, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// PeerCounts returns how many times student has played bedside and peer
// across scheduled, the sessions already scheduled for this SelectTwoPeers
// activity this block.
func PeerCounts(scheduled []domain.Session, student domain.Student) (bedside, peer int) {
	for _, sess := range scheduled {
		pe, ok := sess.Enrollment.(domain.PeerEnrollment)
		if !ok {
			continue
		}
		if pe.Pair.Bedside == student {
			bedside++
		}
		if pe.Pair.Peer == student {
			peer++
		}
	}
	return bedside, peer
}

// NeedsBedside returns the enrollable students whose bedside count across
// scheduled is still below n.
func NeedsBedside(enrollable []domain.Student, n int, scheduled []domain.Session) []domain.Student {
	var out []domain.Student
	for _, s := range enrollable {
		b, _ := PeerCounts(scheduled, s)
		if b < n {
			out = append(out, s)
		}
	}
	return out
}

// NeedsPeer returns the enrollable students whose peer count across
// scheduled is still below n.
func NeedsPeer(enrollable []domain.Student, n int, scheduled []domain.Session) []domain.Student {
	var out []domain.Student
	for _, s := range enrollable {
		_, p := PeerCounts(scheduled, s)
		if p < n {
			out = append(out, s)
		}
	}
	return out
}

func enrolledInAny(scheduled []domain.Session, s domain.Student) bool {
	for _, sess := range scheduled {
		if domain.ContainsStudent(sess.Enrollment, s) {
			return true
		}
	}
	return false
}
