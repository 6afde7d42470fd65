package enroll

import (
	"math/rand"

	"github.com/kiwicayne/studentscheduling/domain"
)

// Enroller fills the unordered band of a block's sessions. Mandatory and
// overflow bands are never passed here - see Mandatory and Overflow.
type Enroller interface {
	Fill(rng *rand.Rand, attendance *domain.AttendanceRecord, unordered []domain.ActivitySessions) ([]domain.ActivitySessions, error)
}

func flatten(unordered []domain.ActivitySessions) []pair {
	var out []pair
	for _, as := range unordered {
		for _, s := range as.Sessions {
			out = append(out, pair{Activity: as.Activity, Session: s})
		}
	}
	return out
}

// foldFill runs the shared per-session filler across pairs in the given
// order, accumulating results so each fill sees everything scheduled
// before it.
func foldFill(rng *rand.Rand, attendance *domain.AttendanceRecord, pairs []pair) []pair {
	acc := make([]pair, 0, len(pairs))
	for _, p := range pairs {
		overlapping := overlappingSessions(p.Session, acc)
		thisActivity := sessionsForActivity(acc, p.Activity)
		filled := fillSession(rng, attendance, p.Session, p.Activity, overlapping, thisActivity)
		acc = append(acc, pair{Activity: p.Activity, Session: filled})
	}
	return acc
}

// regroupByActivity regroups pairs back into ActivitySessions, preserving
// the relative order activities were first seen in original.
func regroupByActivity(pairs []pair, original []domain.ActivitySessions) []domain.ActivitySessions {
	byActivity := make(map[*domain.Activity][]domain.Session)
	for _, p := range pairs {
		byActivity[p.Activity] = append(byActivity[p.Activity], p.Session)
	}
	out := make([]domain.ActivitySessions, 0, len(original))
	for _, as := range original {
		out = append(out, domain.ActivitySessions{Activity: as.Activity, Sessions: byActivity[as.Activity]})
	}
	return out
}

func sortSessionsDescending(as []domain.ActivitySessions) {
	for i := range as {
		sortByWindowDesc(as[i].Sessions)
	}
}
