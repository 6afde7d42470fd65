package enroll

import (
	"math/rand"

	"github.com/kiwicayne/studentscheduling/domain"
)

// OrderedBySession is identical to Random except sessions are ordered by
// (priority, date, start) instead of (priority, random tiebreaker).
type OrderedBySession struct{}

func (OrderedBySession) Fill(rng *rand.Rand, attendance *domain.AttendanceRecord, unordered []domain.ActivitySessions) ([]domain.ActivitySessions, error) {
	pairs := flatten(unordered)
	sortByPriorityDateStart(pairs)
	filled := foldFill(rng, attendance, pairs)
	regrouped := regroupByActivity(filled, unordered)
	sortSessionsDescending(regrouped)
	return regrouped, nil
}
