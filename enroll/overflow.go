package enroll

import "github.com/kiwicayne/studentscheduling/domain"

// Overflow runs after the unordered band is filled: for each overflow
// session, it finds the matching master session by time window and sets
// enrollment to the complement - enrollable students not enrolled in the
// master session and not enrolled in any other session overlapping this
// window this block.
//
// The master may be any shape of enrollment (PeerEnrollment, StudentsEnrollment,
// GroupsEnrollment); overflow enrollment is always a StudentsEnrollment
// regardless, matching the source behavior this design preserves rather
// than "fixes" into e.g. a PeerEnrollment shape.
func Overflow(context []domain.ActivitySessions, overflow []domain.ActivitySessions) []domain.ActivitySessions {
	out := make([]domain.ActivitySessions, len(overflow))
	for i, as := range overflow {
		masterActivity := as.Activity.Criteria.(domain.OverflowFrom).Master
		masterSessions, _ := findActivitySessions(context, masterActivity)

		sessions := make([]domain.Session, len(as.Sessions))
		for j, sess := range as.Sessions {
			masterSession, ok := findMatchingWindow(masterSessions, sess.Window)
			if !ok {
				sessions[j] = sess
				continue
			}

			excluded := make(map[domain.Student]struct{})
			for _, s := range masterSession.Enrollment.Students() {
				excluded[s] = struct{}{}
			}
			for _, other := range overlappingInContext(context, sess) {
				for _, s := range other.Enrollment.Students() {
					excluded[s] = struct{}{}
				}
			}

			var complement []domain.Student
			for _, s := range sess.Enrollable {
				if _, skip := excluded[s]; !skip {
					complement = append(complement, s)
				}
			}
			sessions[j] = sess.WithEnrollment(domain.StudentsEnrollment{Set: complement})
		}
		out[i] = domain.ActivitySessions{Activity: as.Activity, Sessions: sessions}
	}
	return out
}

func findActivitySessions(bands []domain.ActivitySessions, activity *domain.Activity) ([]domain.Session, bool) {
	for _, as := range bands {
		if as.Activity.Equal(activity) {
			return as.Sessions, true
		}
	}
	return nil, false
}

func findMatchingWindow(sessions []domain.Session, w domain.Window) (domain.Session, bool) {
	for _, s := range sessions {
		if s.Window == w {
			return s, true
		}
	}
	return domain.Session{}, false
}

func overlappingInContext(bands []domain.ActivitySessions, sess domain.Session) []domain.Session {
	var out []domain.Session
	for _, as := range bands {
		for _, s := range as.Sessions {
			if s.ID == sess.ID {
				continue
			}
			if s.Window.Overlaps(sess.Window) {
				out = append(out, s)
			}
		}
	}
	return out
}
