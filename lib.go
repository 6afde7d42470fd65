// Package studentscheduling schedules a house's students into a block's
// activities and partitions students into mentor groups.
//
// Activities fall into three bands: mandatory (every student, every
// session), overflow (mirrors another activity's unfilled complement) and
// unordered (everything else, built up by a constructive Enroller). A
// schedule is constructed in one pass with CreateSchedule, topped up after
// a partial edit with FillSchedule, or searched for with the genetic
// subpackage's evolutionary search when a single constructive pass isn't
// good enough. Student groupings work the same way: grouping.Create does
// one constructive pass, genetic.CreateGrouping searches for a better one.
//
// This library was distilled from a genetic scheduling engine originally
// built for student placement at a summer camp.
package studentscheduling

import (
	"math/rand"

	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/enroll"
	"github.com/kiwicayne/studentscheduling/grouping"
	"github.com/kiwicayne/studentscheduling/schedule"
)

// CreateGrouping partitions students across mentors in one constructive
// pass: sort by (gender, age, major), then distribute round-robin so
// similar students land in different groups. See genetic.CreateGrouping
// for a search over many candidate partitions.
func CreateGrouping(mentors []string, students []domain.Student) domain.House {
	return grouping.Create(mentors, students)
}

// CreateSchedule runs the session generator over block (with house
// substituted in), fills its unordered band with enroller, then asserts
// the mandatory band and computes the overflow band. This is a single
// constructive pass. See genetic.CreateSchedule for a search over many
// candidate schedules.
func CreateSchedule(block domain.Block, house domain.House, attendance *domain.AttendanceRecord, enroller enroll.Enroller, rng *rand.Rand) (domain.BlockSchedule, error) {
	return schedule.Create(block, house, attendance, enroller, rng)
}

// FillSchedule reruns enroller over a (possibly partial) schedule's
// unordered band to top up any gaps, reasserts the mandatory band, and
// recomputes the overflow band from scratch.
func FillSchedule(house domain.House, attendance *domain.AttendanceRecord, enroller enroll.Enroller, sched domain.BlockSchedule, rng *rand.Rand) (domain.BlockSchedule, error) {
	return schedule.Fill(house, attendance, enroller, sched, rng)
}
