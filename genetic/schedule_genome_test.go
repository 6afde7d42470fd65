package genetic

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/enroll"
)

func mkStudent(first, last string) domain.Student {
	return domain.Student{FirstName: first, LastName: last}
}

func buildBlock(r *domain.Registry, date time.Time, house domain.House) domain.Block {
	assembly := r.NewActivity("Assembly", domain.Once{Date: date, Start: 12 * time.Hour, End: 13 * time.Hour}, domain.Neutral, domain.FromHouseSelectAllStudents{})
	choir := r.NewActivity("Choir", domain.Once{Date: date, Start: 13 * time.Hour, End: 14 * time.Hour}, domain.Neutral, domain.FromHouseSelectMaxStudents{Cap: 3, Req: domain.AttendEverySession})
	return domain.Block{
		Course:     "Camp",
		Name:       "Week 1",
		Start:      date,
		End:        date.AddDate(0, 0, 1),
		House:      house,
		Activities: []*domain.Activity{assembly, choir},
	}
}

func TestScheduleGenomeEvaluateReflectsFitness(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	students := []domain.Student{mkStudent("A", "Smith"), mkStudent("B", "Jones"), mkStudent("C", "Lee")}
	house := domain.House{Groups: []domain.Group{{MentorID: "m1", Students: students}}}
	block := buildBlock(r, date, house)

	factory := NewScheduleFactory(block, house, nil, enroll.Random{})
	rng := rand.New(rand.NewSource(10))
	genome := factory(rng)

	cost, err := genome.Evaluate()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 0.0)
	assert.LessOrEqual(t, cost, 100.0)
}

func TestScheduleGenomeCrossoverProducesValidSchedule(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	students := []domain.Student{mkStudent("A", "Smith"), mkStudent("B", "Jones"), mkStudent("C", "Lee")}
	house := domain.House{Groups: []domain.Group{{MentorID: "m1", Students: students}}}
	block := buildBlock(r, date, house)

	factory := NewScheduleFactory(block, house, nil, enroll.Random{})
	rngA := rand.New(rand.NewSource(1))
	rngB := rand.New(rand.NewSource(2))
	a := factory(rngA)
	b := factory(rngB)

	a.Crossover(b, rand.New(rand.NewSource(3)))

	assert.Len(t, a.Schedule.Schedule, 2)
	for _, as := range a.Schedule.Schedule {
		if as.Activity.Name() == "Assembly" {
			assert.ElementsMatch(t, students, as.Sessions[0].Enrollment.Students())
		}
	}
}

func TestScheduleGenomeMutateReassertsMandatory(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	students := []domain.Student{mkStudent("A", "Smith"), mkStudent("B", "Jones")}
	house := domain.House{Groups: []domain.Group{{MentorID: "m1", Students: students}}}
	block := buildBlock(r, date, house)

	factory := NewScheduleFactory(block, house, nil, enroll.Random{})
	rng := rand.New(rand.NewSource(5))
	genome := factory(rng)

	genome.Mutate(rand.New(rand.NewSource(6)))

	for _, as := range genome.Schedule.Schedule {
		if as.Activity.Name() == "Assembly" {
			assert.ElementsMatch(t, students, as.Sessions[0].Enrollment.Students())
		}
	}
}

func TestScheduleGenomeCloneIsIndependent(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	students := []domain.Student{mkStudent("A", "Smith")}
	house := domain.House{Groups: []domain.Group{{MentorID: "m1", Students: students}}}
	block := buildBlock(r, date, house)

	factory := NewScheduleFactory(block, house, nil, enroll.Random{})
	genome := factory(rand.New(rand.NewSource(9)))
	clone := genome.Clone().(*ScheduleGenome)

	clone.Schedule.Schedule[0] = domain.ActivitySessions{}
	assert.NotEqual(t, genome.Schedule.Schedule[0], clone.Schedule.Schedule[0])
}

func TestFilterEnrollmentRejectsGroupsEnrollmentRemoval(t *testing.T) {
	groups := []domain.Group{{MentorID: "m1", Students: []domain.Student{mkStudent("A", "Smith")}}}
	e := domain.GroupsEnrollment{Groups: groups}
	_, err := filterEnrollment(e, func(domain.Student) (bool, error) { return false, nil })
	assert.ErrorIs(t, err, ErrGroupRemovalUnsupported)
}
