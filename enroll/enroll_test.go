package enroll

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwicayne/studentscheduling/domain"
)

func mkStudent(first, last string) domain.Student {
	return domain.Student{FirstName: first, LastName: last}
}

func TestRandomEnrollerFillsPeerSession(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	group := []domain.Student{mkStudent("A", "Smith"), mkStudent("B", "Jones"), mkStudent("C", "Lee"), mkStudent("D", "Park")}
	a := r.NewActivity("CPR", domain.Once{Date: date, Start: 13 * time.Hour, End: 14 * time.Hour}, domain.Neutral, domain.FromGroupSelectTwoPeers{TimesPerBlock: 1})
	sess := domain.NewSession(domain.Window{Date: date, Start: 13 * time.Hour, End: 14 * time.Hour}, group)
	unordered := []domain.ActivitySessions{{Activity: a, Sessions: []domain.Session{sess}}}

	rng := rand.New(rand.NewSource(1))
	out, err := Random{}.Fill(rng, nil, unordered)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Sessions, 1)
	pe, ok := out[0].Sessions[0].Enrollment.(domain.PeerEnrollment)
	require.True(t, ok)
	assert.NotEqual(t, pe.Pair.Bedside, pe.Pair.Peer)
}

func TestRandomEnrollerRespectsCap(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	house := []domain.Student{mkStudent("A", "Smith"), mkStudent("B", "Jones"), mkStudent("C", "Lee"), mkStudent("D", "Park"), mkStudent("E", "Cruz")}
	a := r.NewActivity("Choir", domain.Once{Date: date, Start: 13 * time.Hour, End: 14 * time.Hour}, domain.Neutral, domain.FromHouseSelectMaxStudents{Cap: 2, Req: domain.AttendEverySession})
	sess := domain.NewSession(domain.Window{Date: date, Start: 13 * time.Hour, End: 14 * time.Hour}, house)
	unordered := []domain.ActivitySessions{{Activity: a, Sessions: []domain.Session{sess}}}

	rng := rand.New(rand.NewSource(2))
	out, err := Random{}.Fill(rng, nil, unordered)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out[0].Sessions[0].Enrollment.Students()), 2)
}

func TestFillSessionNeverDoubleBooksOverlappingConflict(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	house := []domain.Student{mkStudent("A", "Smith"), mkStudent("B", "Jones")}
	a1 := r.NewActivity("Choir", domain.Once{Date: date, Start: 13 * time.Hour, End: 15 * time.Hour}, domain.Highest, domain.FromHouseSelectMaxStudents{Cap: 2, Req: domain.AttendEverySession})
	a2 := r.NewActivity("Art", domain.Once{Date: date, Start: 14 * time.Hour, End: 16 * time.Hour}, domain.Lowest, domain.FromHouseSelectMaxStudents{Cap: 2, Req: domain.AttendEverySession})
	s1 := domain.NewSession(domain.Window{Date: date, Start: 13 * time.Hour, End: 15 * time.Hour}, house)
	s2 := domain.NewSession(domain.Window{Date: date, Start: 14 * time.Hour, End: 16 * time.Hour}, house)
	unordered := []domain.ActivitySessions{
		{Activity: a1, Sessions: []domain.Session{s1}},
		{Activity: a2, Sessions: []domain.Session{s2}},
	}

	rng := rand.New(rand.NewSource(3))
	out, err := Random{}.Fill(rng, nil, unordered)
	require.NoError(t, err)

	var choirStudents, artStudents []domain.Student
	for _, as := range out {
		if as.Activity.Name() == "Choir" {
			choirStudents = as.Sessions[0].Enrollment.Students()
		} else {
			artStudents = as.Sessions[0].Enrollment.Students()
		}
	}
	for _, cs := range choirStudents {
		for _, as := range artStudents {
			assert.NotEqual(t, cs, as, "a student enrolled in Choir (13-15) cannot also be enrolled in overlapping Art (14-16)")
		}
	}
}

func TestMandatoryFillsEmptySessions(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	house := domain.House{Groups: []domain.Group{{MentorID: "m1", Students: []domain.Student{mkStudent("A", "Smith")}}}}
	a := r.NewActivity("Assembly", domain.Once{Date: date, Start: 12 * time.Hour, End: 13 * time.Hour}, domain.Neutral, domain.FromHouseSelectAllStudents{})
	sess := domain.NewSession(domain.Window{Date: date, Start: 12 * time.Hour, End: 13 * time.Hour}, house.AllStudents())
	out := Mandatory(house, []domain.ActivitySessions{{Activity: a, Sessions: []domain.Session{sess}}})
	require.Len(t, out[0].Sessions, 1)
	assert.ElementsMatch(t, house.AllStudents(), out[0].Sessions[0].Enrollment.Students())
}

func TestOverflowIsComplementOfMaster(t *testing.T) {
	r := domain.NewRegistry()
	date := time.Date(2015, 10, 27, 0, 0, 0, 0, time.UTC)
	house := []domain.Student{mkStudent("A", "Smith"), mkStudent("B", "Jones"), mkStudent("C", "Lee")}
	master := r.NewActivity("Main", domain.Once{Date: date, Start: 13 * time.Hour, End: 15 * time.Hour}, domain.Neutral, domain.FromHouseSelectMaxStudents{Cap: 1, Req: domain.AttendEverySession})
	overflowActivity := r.NewActivity("MainOverflow", domain.Once{Date: date, Start: 13 * time.Hour, End: 15 * time.Hour}, domain.Neutral, domain.OverflowFrom{Master: master})

	masterSession := domain.NewSession(domain.Window{Date: date, Start: 13 * time.Hour, End: 15 * time.Hour}, house).
		WithEnrollment(domain.StudentsEnrollment{Set: []domain.Student{house[0]}})
	overflowSession := domain.NewSession(domain.Window{Date: date, Start: 13 * time.Hour, End: 15 * time.Hour}, house)

	context := []domain.ActivitySessions{{Activity: master, Sessions: []domain.Session{masterSession}}}
	overflow := []domain.ActivitySessions{{Activity: overflowActivity, Sessions: []domain.Session{overflowSession}}}

	out := Overflow(context, overflow)
	enrolled := out[0].Sessions[0].Enrollment.Students()
	assert.ElementsMatch(t, []domain.Student{house[1], house[2]}, enrolled)
}

func TestNeedsBedsideAndPeer(t *testing.T) {
	s1 := mkStudent("A", "Smith")
	s2 := mkStudent("B", "Jones")
	scheduled := []domain.Session{
		{Enrollment: domain.PeerEnrollment{Pair: domain.PeerPair{Bedside: s1, Peer: s2}}},
	}
	bedside, peer := PeerCounts(scheduled, s1)
	assert.Equal(t, 1, bedside)
	assert.Equal(t, 0, peer)

	needBedside := NeedsBedside([]domain.Student{s1, s2}, 1, scheduled)
	assert.NotContains(t, needBedside, s1)
	assert.Contains(t, needBedside, s2)
}
