package fitness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kiwicayne/studentscheduling/domain"
)

func TestDuplicateLastNameZeroesAllDimensions(t *testing.T) {
	house := domain.House{Groups: []domain.Group{
		{MentorID: "m1", Students: []domain.Student{
			{FirstName: "A", LastName: "Smith", Gender: domain.Male, Age: 10, Major: "bio"},
			{FirstName: "B", LastName: "Smith", Gender: domain.Female, Age: 12, Major: "chem"},
		}},
	}}
	score := Grouping(house)
	assert.Zero(t, score.Gender)
	assert.Zero(t, score.Age)
	assert.Zero(t, score.Major)
}

func TestBalancedGroupScoresHigh(t *testing.T) {
	house := domain.House{Groups: []domain.Group{
		{MentorID: "m1", Students: []domain.Student{
			{FirstName: "A", LastName: "Adams", Gender: domain.Male, Age: 10, Major: "bio"},
			{FirstName: "B", LastName: "Baker", Gender: domain.Female, Age: 11, Major: "chem"},
		}},
	}}
	score := Grouping(house)
	assert.InDelta(t, 100, score.Gender, 1e-9)
	assert.InDelta(t, 100, score.Age, 1e-9)
	assert.InDelta(t, 100, score.Major, 1e-9)
}

func TestUniformGroupScoresLow(t *testing.T) {
	house := domain.House{Groups: []domain.Group{
		{MentorID: "m1", Students: []domain.Student{
			{FirstName: "A", LastName: "Adams", Gender: domain.Male, Age: 10, Major: "bio"},
			{FirstName: "B", LastName: "Baker", Gender: domain.Male, Age: 10, Major: "bio"},
		}},
	}}
	score := Grouping(house)
	assert.Zero(t, score.Gender)
	assert.InDelta(t, 50, score.Age, 1e-9)
	assert.InDelta(t, 50, score.Major, 1e-9)
}

func block(students []domain.Student, activities []*domain.Activity, schedule domain.ActivitySchedule) domain.BlockSchedule {
	return domain.BlockSchedule{
		Block: domain.Block{
			House:      domain.House{Groups: []domain.Group{{MentorID: "m1", Students: students}}},
			Activities: activities,
		},
		Schedule: schedule,
	}
}

func TestEmptyNonOverflowSessionScoresFullOnFullness(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	students := []domain.Student{{FirstName: "A", LastName: "Smith"}}
	a := r.NewActivity("Choir", domain.Once{Date: date, Start: 13 * time.Hour, End: 14 * time.Hour}, domain.Neutral, domain.FromHouseSelectMaxStudents{Cap: 5, Req: domain.AttendOnceThisYear})
	sess := domain.NewSession(domain.Window{Date: date, Start: 13 * time.Hour, End: 14 * time.Hour}, students)
	sched := block(students, []*domain.Activity{a}, domain.ActivitySchedule{{Activity: a, Sessions: []domain.Session{sess}}})

	score := Schedule(sched, nil)
	assert.InDelta(t, 100, score.Fullness, 1e-9, "an empty, correctly-skipped session must not be penalized")
}

func TestFullSessionScoresHundredFullness(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	students := []domain.Student{{FirstName: "A", LastName: "Smith"}, {FirstName: "B", LastName: "Jones"}}
	a := r.NewActivity("Choir", domain.Once{Date: date, Start: 13 * time.Hour, End: 14 * time.Hour}, domain.Neutral, domain.FromHouseSelectMaxStudents{Cap: 2, Req: domain.AttendEverySession})
	sess := domain.NewSession(domain.Window{Date: date, Start: 13 * time.Hour, End: 14 * time.Hour}, students).
		WithEnrollment(domain.StudentsEnrollment{Set: students})
	sched := block(students, []*domain.Activity{a}, domain.ActivitySchedule{{Activity: a, Sessions: []domain.Session{sess}}})

	score := Schedule(sched, nil)
	assert.InDelta(t, 100, score.Fullness, 1e-9)
	assert.InDelta(t, 100, score.Student, 1e-9)
}
