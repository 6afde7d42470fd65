package enroll

import (
	"math/rand"

	"github.com/kiwicayne/studentscheduling/domain"
)

// Random interleaves every unordered activity's sessions, ordering them by
// (priority, random tiebreaker), and fills them one at a time so a later
// session can see every earlier fill regardless of which activity it
// belonged to.
type Random struct{}

func (Random) Fill(rng *rand.Rand, attendance *domain.AttendanceRecord, unordered []domain.ActivitySessions) ([]domain.ActivitySessions, error) {
	pairs := flatten(unordered)
	sortByPriorityRandom(rng, pairs)
	filled := foldFill(rng, attendance, pairs)
	regrouped := regroupByActivity(filled, unordered)
	sortSessionsDescending(regrouped)
	return regrouped, nil
}
