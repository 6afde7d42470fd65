package enroll

import (
	"math/rand"

	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/xrand"
)

// pair couples a session with the activity it belongs to, the unit the
// three unordered enrollers fold over.
type pair struct {
	Activity *domain.Activity
	Session  domain.Session
}

// overlappingSessions returns every session in acc whose window strictly
// intersects sess's window on the same date, excluding sess itself.
func overlappingSessions(sess domain.Session, acc []pair) []domain.Session {
	var out []domain.Session
	for _, p := range acc {
		if p.Session.ID == sess.ID {
			continue
		}
		if p.Session.Window.Overlaps(sess.Window) {
			out = append(out, p.Session)
		}
	}
	return out
}

// sessionsForActivity returns the sessions already accumulated for
// activity, in accumulation order.
func sessionsForActivity(acc []pair, activity *domain.Activity) []domain.Session {
	var out []domain.Session
	for _, p := range acc {
		if p.Activity.Equal(activity) {
			out = append(out, p.Session)
		}
	}
	return out
}

func filterBy(students []domain.Student, keep func(domain.Student) bool) []domain.Student {
	out := students[:0:0]
	for _, s := range students {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func excludeEnrolled(students, enrolled []domain.Student) []domain.Student {
	return filterBy(students, func(s domain.Student) bool {
		for _, e := range enrolled {
			if e == s {
				return false
			}
		}
		return true
	})
}

// pickDistinctPair picks the head of needBedside as bedside, then the first
// entry of needPeer distinct from it as peer. It never returns a pair where
// bedside == peer.
func pickDistinctPair(needBedside, needPeer []domain.Student) (domain.PeerPair, bool) {
	if len(needBedside) == 0 || len(needPeer) == 0 {
		return domain.PeerPair{}, false
	}
	bedside := needBedside[0]
	for _, p := range needPeer {
		if p != bedside {
			return domain.PeerPair{Bedside: bedside, Peer: p}, true
		}
	}
	return domain.PeerPair{}, false
}

// fillSession fills one session's enrollment given the sessions already
// scheduled elsewhere this block (overlap) and for this same activity
// (thisActivityScheduled). Sessions already carrying a partial
// StudentsEnrollment are topped up, never replaced; a peer session that
// already holds a pair is kept as it is, and an empty one is either filled
// completely or left Empty.
func fillSession(rng *rand.Rand, attendance *domain.AttendanceRecord, sess domain.Session, activity *domain.Activity, overlapping []domain.Session, thisActivityScheduled []domain.Session) domain.Session {
	canEnroll := func(s domain.Student) bool {
		for _, o := range overlapping {
			if domain.ContainsStudent(o.Enrollment, s) {
				return false
			}
		}
		return true
	}

	switch crit := activity.Criteria.(type) {
	case domain.FromGroupSelectTwoPeers:
		if !domain.IsEmpty(sess.Enrollment) {
			return sess
		}
		needBedside := filterBy(NeedsBedside(sess.Enrollable, crit.TimesPerBlock, thisActivityScheduled), canEnroll)
		needPeer := filterBy(NeedsPeer(sess.Enrollable, crit.TimesPerBlock, thisActivityScheduled), canEnroll)
		xrand.Shuffle(rng, needBedside)
		xrand.Shuffle(rng, needPeer)
		pair, ok := pickDistinctPair(needBedside, needPeer)
		if !ok {
			return sess
		}
		return sess.WithEnrollment(domain.PeerEnrollment{Pair: pair})

	case domain.FromHouseSelectMaxStudents:
		current := sess.Enrollment.Students()
		needing := filterBy(NeedsActivity(attendance, sess.Enrollable, activity, thisActivityScheduled), canEnroll)
		needing = excludeEnrolled(needing, current)
		xrand.Shuffle(rng, needing)
		remaining := crit.Cap - len(current)
		if remaining < 0 {
			remaining = 0
		}
		if remaining > len(needing) {
			remaining = len(needing)
		}
		merged := append(append([]domain.Student(nil), current...), needing[:remaining]...)
		return sess.WithEnrollment(domain.StudentsEnrollment{Set: merged})

	default:
		return sess
	}
}
