package enroll

import (
	"math/rand"

	"github.com/kiwicayne/studentscheduling/domain"
)

// Ordered sorts activities (not sessions) by (priority, random tiebreaker),
// then fills every session of one activity, in its existing order, before
// moving to the next activity.
type Ordered struct{}

func (Ordered) Fill(rng *rand.Rand, attendance *domain.AttendanceRecord, unordered []domain.ActivitySessions) ([]domain.ActivitySessions, error) {
	activities := append([]domain.ActivitySessions(nil), unordered...)
	sortActivitiesByPriorityRandom(rng, activities)

	acc := make([]pair, 0)
	out := make([]domain.ActivitySessions, 0, len(unordered))
	for _, as := range activities {
		filledSessions := make([]domain.Session, 0, len(as.Sessions))
		for _, sess := range as.Sessions {
			overlapping := overlappingSessions(sess, acc)
			thisActivity := sessionsForActivity(acc, as.Activity)
			filled := fillSession(rng, attendance, sess, as.Activity, overlapping, thisActivity)
			acc = append(acc, pair{Activity: as.Activity, Session: filled})
			filledSessions = append(filledSessions, filled)
		}
		out = append(out, domain.ActivitySessions{Activity: as.Activity, Sessions: filledSessions})
	}

	// Restore original activity order for a stable output shape.
	ordered := make([]domain.ActivitySessions, 0, len(unordered))
	for _, as := range unordered {
		for _, o := range out {
			if o.Activity.Equal(as.Activity) {
				ordered = append(ordered, o)
				break
			}
		}
	}
	return ordered, nil
}
