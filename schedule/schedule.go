// Package schedule implements the two non-evolving schedule operations the
// genetic engine builds on: a single constructive pass over a fresh block,
// and a repair pass that reruns the constructive enroller over a partial
// schedule without disturbing sessions that are already fully populated.
package schedule

import (
	"math/rand"

	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/enroll"
	"github.com/kiwicayne/studentscheduling/sessions"
)

// Create runs the session generator once over block (with house substituted
// in) and fills its unordered band with enroller, then reasserts the
// mandatory band and computes the overflow band. This is a single
// constructive pass: no evolution.
func Create(block domain.Block, house domain.House, attendance *domain.AttendanceRecord, enroller enroll.Enroller, rng *rand.Rand) (domain.BlockSchedule, error) {
	b := block
	b.House = house

	bands, err := sessions.Generate(b)
	if err != nil {
		return domain.BlockSchedule{}, err
	}

	unorderedFilled, err := enroller.Fill(rng, attendance, bands.Unordered)
	if err != nil {
		return domain.BlockSchedule{}, err
	}
	mandatoryFilled := enroll.Mandatory(b.House, bands.Mandatory)

	var context []domain.ActivitySessions
	context = append(context, mandatoryFilled...)
	context = append(context, unorderedFilled...)
	overflowFilled := enroll.Overflow(context, bands.Overflow)

	var full domain.ActivitySchedule
	full = append(full, mandatoryFilled...)
	full = append(full, unorderedFilled...)
	full = append(full, overflowFilled...)
	return domain.BlockSchedule{Block: b, Schedule: full}, nil
}

// Fill repairs a (possibly partial) schedule: it reruns enroller over the
// unordered band so gaps get topped up (sessions already fully populated
// are left untouched by the enroller's own top-up logic), reasserts the
// mandatory band, and recomputes the overflow band from scratch so stale
// overflow enrollment never survives a repair.
func Fill(house domain.House, attendance *domain.AttendanceRecord, enroller enroll.Enroller, sched domain.BlockSchedule, rng *rand.Rand) (domain.BlockSchedule, error) {
	var mandatory, unordered, overflow []domain.ActivitySessions
	for _, as := range sched.Schedule {
		switch {
		case as.Activity.IsMandatory():
			mandatory = append(mandatory, as)
		case as.Activity.IsOverflow():
			overflow = append(overflow, as)
		default:
			unordered = append(unordered, as)
		}
	}

	unorderedFilled, err := enroller.Fill(rng, attendance, unordered)
	if err != nil {
		return domain.BlockSchedule{}, err
	}
	mandatoryFilled := enroll.Mandatory(house, mandatory)
	overflowFresh := resetEnrollment(overflow)

	var context []domain.ActivitySessions
	context = append(context, mandatoryFilled...)
	context = append(context, unorderedFilled...)
	overflowFilled := enroll.Overflow(context, overflowFresh)

	var full domain.ActivitySchedule
	full = append(full, mandatoryFilled...)
	full = append(full, unorderedFilled...)
	full = append(full, overflowFilled...)

	b := sched.Block
	b.House = house
	return domain.BlockSchedule{Block: b, Schedule: full}, nil
}

func resetEnrollment(bands []domain.ActivitySessions) []domain.ActivitySessions {
	out := make([]domain.ActivitySessions, len(bands))
	for i, as := range bands {
		sessionsOut := make([]domain.Session, len(as.Sessions))
		for j, s := range as.Sessions {
			sessionsOut[j] = s.WithEnrollment(domain.Empty)
		}
		out[i] = domain.ActivitySessions{Activity: as.Activity, Sessions: sessionsOut}
	}
	return out
}
