package genetic

import (
	"math/rand"

	"github.com/MaxHalford/eaopt"

	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/enroll"
	"github.com/kiwicayne/studentscheduling/fitness"
	"github.com/kiwicayne/studentscheduling/schedule"
	"github.com/kiwicayne/studentscheduling/xrand"
)

// ScheduleGenome is the chromosome the schedule search evolves: a full
// BlockSchedule plus the context (house, attendance, enroller) needed to
// repair it after crossover or mutation.
type ScheduleGenome struct {
	Block      domain.Block
	House      domain.House
	Attendance *domain.AttendanceRecord
	Enroller   enroll.Enroller
	Schedule   domain.BlockSchedule
}

// NewScheduleFactory returns a factory that builds a random full schedule
// candidate by running one constructive pass, for use as an Engine's
// newGenome.
func NewScheduleFactory(block domain.Block, house domain.House, attendance *domain.AttendanceRecord, enroller enroll.Enroller) func(rng *rand.Rand) *ScheduleGenome {
	return func(rng *rand.Rand) *ScheduleGenome {
		sched, err := schedule.Create(block, house, attendance, enroller, rng)
		if err != nil {
			// A factory has nowhere to return an error per the eaopt.Genome
			// factory shape; a failure here is a configuration fault (the
			// block's own activities can't be generated), not a transient
			// one, so it halts the run with a diagnostic.
			panic(err)
		}
		return &ScheduleGenome{Block: block, House: house, Attendance: attendance, Enroller: enroller, Schedule: sched}
	}
}

// Clone copies the outer activity schedule slice; each activity's session
// slice is shared with the parent. Crossover and Mutate build new session
// slices instead of writing into existing ones, so they never touch the
// parent's sessions.
func (g *ScheduleGenome) Clone() eaopt.Genome {
	cp := *g
	cp.Schedule.Schedule = append(domain.ActivitySchedule(nil), g.Schedule.Schedule...)
	return &cp
}

// Evaluate scores the schedule with fitness.Schedule; lower cost is better,
// matching eaopt's convention, so cost is the complement of the 0-100
// overall fitness.
func (g *ScheduleGenome) Evaluate() (float64, error) {
	score := fitness.Schedule(g.Schedule, g.Attendance)
	return 100 - score.Overall, nil
}

// Crossover merges g with other: flatten both parents' unordered bands,
// take a random-sized subset from g, borrow whatever the other parent
// offers that isn't already in that subset, fix up conflicts and
// over-requirement in the borrowed sessions, then hand the merge to
// schedule.Fill to top up gaps, regenerate overflow and reassert the
// mandatory band.
func (g *ScheduleGenome) Crossover(other eaopt.Genome, rng *rand.Rand) {
	partner := other.(*ScheduleGenome)
	merged, err := crossSchedules(g.Schedule, partner.Schedule, rng)
	if err != nil {
		panic(err)
	}
	repaired, err := schedule.Fill(g.House, g.Attendance, g.Enroller, merged, rng)
	if err != nil {
		panic(err)
	}
	g.Schedule = repaired
}

// Mutate empties a uniformly random mutable (non-mandatory, non-overflow)
// session and every overflow session, then reruns fill/repair.
func (g *ScheduleGenome) Mutate(rng *rand.Rand) {
	emptied := emptyRandomMutableSession(g.Schedule, rng)
	repaired, err := schedule.Fill(g.House, g.Attendance, g.Enroller, emptied, rng)
	if err != nil {
		panic(err)
	}
	g.Schedule = repaired
}

type schedPair struct {
	Activity *domain.Activity
	Session  domain.Session
}

func flattenUnordered(bs domain.BlockSchedule) []schedPair {
	var out []schedPair
	for _, as := range bs.Schedule {
		if !as.Activity.IsUnordered() {
			continue
		}
		for _, s := range as.Sessions {
			out = append(out, schedPair{Activity: as.Activity, Session: s})
		}
	}
	return out
}

func nonUnorderedBands(bs domain.BlockSchedule) []domain.ActivitySessions {
	var out []domain.ActivitySessions
	for _, as := range bs.Schedule {
		if !as.Activity.IsUnordered() {
			out = append(out, as)
		}
	}
	return out
}

func containsPair(set []schedPair, p schedPair) bool {
	for _, s := range set {
		if s.Activity.Equal(p.Activity) && s.Session.ID == p.Session.ID {
			return true
		}
	}
	return false
}

// crossSchedules implements the schedule crossover operator over the
// unordered band only: mandatory and overflow bands are wholly recomputed
// by schedule.Fill afterwards regardless of what a crossover would have
// produced for them, so folding them into the merge would be wasted work.
func crossSchedules(parentA, parentB domain.BlockSchedule, rng *rand.Rand) (domain.BlockSchedule, error) {
	flatA := flattenUnordered(parentA)
	flatB := flattenUnordered(parentB)

	var subsetA []schedPair
	if len(flatA) > 0 {
		k := xrand.Intn(rng, 1, len(flatA))
		perm := rng.Perm(len(flatA))[:k]
		subsetA = make([]schedPair, 0, k)
		for _, i := range perm {
			subsetA = append(subsetA, flatA[i])
		}
	}

	var borrowedB []schedPair
	for _, p := range flatB {
		if !containsPair(subsetA, p) {
			borrowedB = append(borrowedB, p)
		}
	}

	fixedB, err := fixUpConflicts(borrowedB, subsetA)
	if err != nil {
		return domain.BlockSchedule{}, err
	}

	merged := append(append([]schedPair{}, subsetA...), fixedB...)
	unorderedSchedule := regroupSchedPairs(merged)

	schedule := append(domain.ActivitySchedule{}, nonUnorderedBands(parentA)...)
	schedule = append(schedule, unorderedSchedule...)
	return domain.BlockSchedule{Block: parentA.Block, Schedule: schedule}, nil
}

func regroupSchedPairs(pairs []schedPair) domain.ActivitySchedule {
	order := make([]*domain.Activity, 0)
	byActivity := make(map[*domain.Activity][]domain.Session)
	for _, p := range pairs {
		if _, ok := byActivity[p.Activity]; !ok {
			order = append(order, p.Activity)
		}
		byActivity[p.Activity] = append(byActivity[p.Activity], p.Session)
	}
	out := make(domain.ActivitySchedule, 0, len(order))
	for _, a := range order {
		out = append(out, domain.ActivitySessions{Activity: a, Sessions: byActivity[a]})
	}
	return out
}

// fixUpConflicts drops, from each borrowed session's enrollment, any
// student who now conflicts with subsetA (an overlapping window they're
// also enrolled in) or who would exceed their activity's per-block session
// requirement once counted across every borrowed session for that
// activity.
func fixUpConflicts(borrowed, subsetA []schedPair) ([]schedPair, error) {
	counts := make(map[*domain.Activity]map[domain.Student]int)
	out := make([]schedPair, len(borrowed))

	for i, p := range borrowed {
		limit := requirementLimit(p.Activity)
		activityCounts := counts[p.Activity]
		if activityCounts == nil {
			activityCounts = make(map[domain.Student]int)
			counts[p.Activity] = activityCounts
		}

		keep := func(s domain.Student) (bool, error) {
			for _, a := range subsetA {
				if a.Session.Window.Overlaps(p.Session.Window) && domain.ContainsStudent(a.Session.Enrollment, s) {
					return false, nil
				}
			}
			if limit >= 0 {
				if activityCounts[s] >= limit {
					return false, nil
				}
				activityCounts[s]++
			}
			return true, nil
		}

		newEnrollment, err := filterEnrollment(p.Session.Enrollment, keep)
		if err != nil {
			return nil, err
		}
		out[i] = schedPair{Activity: p.Activity, Session: p.Session.WithEnrollment(newEnrollment)}
	}
	return out, nil
}

// requirementLimit is the maximum number of this activity's sessions a
// single student may be enrolled across in one block; -1 means no limit.
func requirementLimit(a *domain.Activity) int {
	switch c := a.Criteria.(type) {
	case domain.FromHouseSelectMaxStudents:
		if c.Req == domain.AttendEverySession {
			return -1
		}
		return 1
	case domain.FromGroupSelectTwoPeers:
		return 2 * c.TimesPerBlock
	default:
		return -1
	}
}

func filterEnrollment(e domain.Enrollment, keep func(domain.Student) (bool, error)) (domain.Enrollment, error) {
	switch v := e.(type) {
	case domain.StudentsEnrollment:
		var out []domain.Student
		for _, s := range v.Set {
			ok, err := keep(s)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, s)
			}
		}
		return domain.StudentsEnrollment{Set: out}, nil
	case domain.StudentEnrollment:
		ok, err := keep(v.Student)
		if err != nil {
			return nil, err
		}
		if !ok {
			return domain.Empty, nil
		}
		return v, nil
	case domain.PeerEnrollment:
		bedsideOK, err := keep(v.Pair.Bedside)
		if err != nil {
			return nil, err
		}
		peerOK, err := keep(v.Pair.Peer)
		if err != nil {
			return nil, err
		}
		if !bedsideOK || !peerOK {
			return domain.Empty, nil
		}
		return v, nil
	case domain.GroupsEnrollment:
		for _, s := range v.Students() {
			ok, err := keep(s)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrGroupRemovalUnsupported
			}
		}
		return v, nil
	default:
		return e, nil
	}
}

func emptyRandomMutableSession(bs domain.BlockSchedule, rng *rand.Rand) domain.BlockSchedule {
	out := append(domain.ActivitySchedule{}, bs.Schedule...)

	var mutable []int
	for i, as := range out {
		if as.Activity.IsUnordered() && len(as.Sessions) > 0 {
			mutable = append(mutable, i)
		}
	}
	if len(mutable) > 0 {
		asIdx := mutable[xrand.Intn(rng, 0, len(mutable)-1)]
		as := out[asIdx]
		sessIdx := xrand.Intn(rng, 0, len(as.Sessions)-1)
		sessionsCopy := append([]domain.Session{}, as.Sessions...)
		sessionsCopy[sessIdx] = sessionsCopy[sessIdx].WithEnrollment(domain.Empty)
		out[asIdx] = domain.ActivitySessions{Activity: as.Activity, Sessions: sessionsCopy}
	}

	for i, as := range out {
		if as.Activity.IsOverflow() {
			reset := make([]domain.Session, len(as.Sessions))
			for j, s := range as.Sessions {
				reset[j] = s.WithEnrollment(domain.Empty)
			}
			out[i] = domain.ActivitySessions{Activity: as.Activity, Sessions: reset}
		}
	}

	return domain.BlockSchedule{Block: bs.Block, Schedule: out}
}
