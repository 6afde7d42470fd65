package fitness

import (
	"math"

	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/enroll"
	"github.com/kiwicayne/studentscheduling/xstat"
)

// ScheduleScore is the schedule fitness's four sub-scores, their activities
// average, and the overall fitness.
type ScheduleScore struct {
	Student      float64
	Fullness     float64
	Distribution float64
	Diversity    float64
	Activities   float64
	Overall      float64
}

// Schedule scores how well sched satisfies block's obligations, given
// attendance history from prior blocks.
func Schedule(sched domain.BlockSchedule, attendance *domain.AttendanceRecord) ScheduleScore {
	student := studentScore(sched, attendance)
	fullness := fullnessScore(sched)
	distribution := distributionScore(sched)
	diversity := activityDiversityScore(sched)
	activities := (fullness + distribution + diversity) / 3
	return ScheduleScore{
		Student:      student,
		Fullness:     fullness,
		Distribution: distribution,
		Diversity:    diversity,
		Activities:   activities,
		Overall:      (student + activities) / 2,
	}
}

func requiredCredits(a *domain.Activity, sessionCount int) int {
	switch c := a.Criteria.(type) {
	case domain.FromHouseSelectAllStudents:
		return sessionCount
	case domain.FromHouseSelectMaxStudents:
		if c.Req == domain.AttendEverySession {
			return sessionCount
		}
		return 1
	case domain.FromGroupSelectTwoPeers:
		return 2 * c.TimesPerBlock
	default:
		return 0
	}
}

func satisfiedCredits(student domain.Student, a *domain.Activity, as domain.ActivitySessions, attendance *domain.AttendanceRecord) int {
	switch c := a.Criteria.(type) {
	case domain.FromHouseSelectAllStudents:
		return enrolledSessionCount(as, student)
	case domain.FromHouseSelectMaxStudents:
		if c.Req == domain.AttendEverySession {
			return enrolledSessionCount(as, student)
		}
		if attendance != nil && attendance.Attended(student, a.Name()) {
			return 1
		}
		if enrolledSessionCount(as, student) > 0 {
			return 1
		}
		return 0
	case domain.FromGroupSelectTwoPeers:
		bedside, peer := enroll.PeerCounts(as.Sessions, student)
		if bedside > c.TimesPerBlock {
			bedside = c.TimesPerBlock
		}
		if peer > c.TimesPerBlock {
			peer = c.TimesPerBlock
		}
		return bedside + peer
	default:
		return 0
	}
}

func enrolledSessionCount(as domain.ActivitySessions, student domain.Student) int {
	n := 0
	for _, s := range as.Sessions {
		if domain.ContainsStudent(s.Enrollment, student) {
			n++
		}
	}
	return n
}

func studentCompletion(student domain.Student, sched domain.BlockSchedule, attendance *domain.AttendanceRecord) float64 {
	var pcts []float64
	for _, as := range sched.Schedule {
		required := requiredCredits(as.Activity, len(as.Sessions))
		if required == 0 {
			pcts = append(pcts, 100)
			continue
		}
		satisfied := satisfiedCredits(student, as.Activity, as, attendance)
		pct := 100 * float64(satisfied) / float64(required)
		if pct > 100 {
			pct = 100
		}
		pcts = append(pcts, pct)
	}
	return xstat.Mean(pcts)
}

func studentScore(sched domain.BlockSchedule, attendance *domain.AttendanceRecord) float64 {
	students := sched.Block.House.AllStudents()
	completions := make([]float64, len(students))
	for i, s := range students {
		completions[i] = studentCompletion(s, sched, attendance)
	}
	return xstat.MeanMinusStdDev(completions)
}

func capacityFor(a *domain.Activity, totalStudents int) int {
	switch c := a.Criteria.(type) {
	case domain.FromHouseSelectMaxStudents:
		return c.Cap
	case domain.FromGroupSelectTwoPeers:
		return 2
	default:
		return totalStudents
	}
}

// fullnessScore rewards full, non-overflow sessions while treating an
// unneeded, empty session as no worse than a full one - an
// AttendOnceThisYear activity everyone already satisfied last block
// shouldn't be penalized for correctly staying empty this block.
func fullnessScore(sched domain.BlockSchedule) float64 {
	total := sched.Block.House.StudentCount()
	var pcts []float64
	for _, as := range sched.Schedule {
		if as.Activity.IsOverflow() {
			continue
		}
		cap := capacityFor(as.Activity, total)
		for _, s := range as.Sessions {
			enrolled := len(s.Enrollment.Students())
			if enrolled == 0 {
				pcts = append(pcts, 100)
				continue
			}
			pct := 100 * float64(enrolled)
			if cap > 0 {
				pct /= float64(cap)
			}
			pcts = append(pcts, pct)
		}
	}
	return xstat.MeanMinusStdDev(pcts)
}

func distributionScore(sched domain.BlockSchedule) float64 {
	total := sched.Block.House.StudentCount()
	var pcts []float64
	for _, as := range sched.Schedule {
		distinct := make(map[domain.Student]bool)
		for _, s := range as.Sessions {
			for _, st := range s.Enrollment.Students() {
				distinct[st] = true
			}
		}
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(len(distinct)) / float64(total)
		}
		pcts = append(pcts, pct)
	}
	return xstat.MeanMinusStdDev(pcts)
}

func activityDiversityScore(sched domain.BlockSchedule) float64 {
	students := sched.Block.House.AllStudents()
	var perActivity []float64
	for _, as := range sched.Schedule {
		perActivity = append(perActivity, oneActivityDiversity(as, students))
	}
	return xstat.Mean(perActivity)
}

func oneActivityDiversity(as domain.ActivitySessions, students []domain.Student) float64 {
	if len(students) == 0 {
		return 0
	}
	counts := make(map[domain.Student]int, len(students))
	for _, st := range students {
		counts[st] = 0
	}
	for _, s := range as.Sessions {
		for _, st := range s.Enrollment.Students() {
			counts[st]++
		}
	}

	min, max := math.MaxInt32, 0
	for _, c := range counts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}

	var sum float64
	for _, st := range students {
		c := counts[st]
		if max == min {
			sum++
			continue
		}
		sum += float64(c-min) / float64(max-min)
	}
	return 100 * sum / float64(len(students))
}
