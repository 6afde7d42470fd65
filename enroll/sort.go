package enroll

import (
	"math/rand"
	"sort"

	"github.com/kiwicayne/studentscheduling/domain"
)

func sortByWindowDesc(sess []domain.Session) {
	sort.SliceStable(sess, func(i, j int) bool {
		wi, wj := sess[i].Window, sess[j].Window
		if !wi.Date.Equal(wj.Date) {
			return wi.Date.After(wj.Date)
		}
		return wi.Start > wj.Start
	})
}

// sortByPriorityRandom orders pairs by (priority, random tiebreaker),
// Highest first.
func sortByPriorityRandom(rng *rand.Rand, pairs []pair) {
	tiebreak := make([]float64, len(pairs))
	for i := range tiebreak {
		tiebreak[i] = rng.Float64()
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Activity.Priority != pairs[j].Activity.Priority {
			return pairs[i].Activity.Priority < pairs[j].Activity.Priority
		}
		return tiebreak[i] < tiebreak[j]
	})
}

// sortByPriorityDateStart orders pairs by (priority, date, start), Highest
// priority and earliest time first.
func sortByPriorityDateStart(pairs []pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Activity.Priority != pairs[j].Activity.Priority {
			return pairs[i].Activity.Priority < pairs[j].Activity.Priority
		}
		wi, wj := pairs[i].Session.Window, pairs[j].Session.Window
		if !wi.Date.Equal(wj.Date) {
			return wi.Date.Before(wj.Date)
		}
		return wi.Start < wj.Start
	})
}

// sortActivitiesByPriorityRandom orders activities by (priority, random
// tiebreaker), Highest first.
func sortActivitiesByPriorityRandom(rng *rand.Rand, activities []domain.ActivitySessions) {
	tiebreak := make([]float64, len(activities))
	for i := range tiebreak {
		tiebreak[i] = rng.Float64()
	}
	sort.SliceStable(activities, func(i, j int) bool {
		if activities[i].Activity.Priority != activities[j].Activity.Priority {
			return activities[i].Activity.Priority < activities[j].Activity.Priority
		}
		return tiebreak[i] < tiebreak[j]
	})
}
