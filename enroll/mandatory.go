package enroll

import "github.com/kiwicayne/studentscheduling/domain"

// Mandatory is the trivial pass over the mandatory band: every session with
// Empty enrollment is assigned the entire house.
func Mandatory(house domain.House, mandatory []domain.ActivitySessions) []domain.ActivitySessions {
	out := make([]domain.ActivitySessions, len(mandatory))
	for i, as := range mandatory {
		sessions := make([]domain.Session, len(as.Sessions))
		for j, s := range as.Sessions {
			if domain.IsEmpty(s.Enrollment) {
				s = s.WithEnrollment(domain.GroupsEnrollment{Groups: house.Groups})
			}
			sessions[j] = s
		}
		out[i] = domain.ActivitySessions{Activity: as.Activity, Sessions: sessions}
	}
	return out
}
