package genetic

import (
	"math/rand"
	"sync"

	"github.com/MaxHalford/eaopt"

	"github.com/kiwicayne/studentscheduling/balance"
	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/fitness"
	"github.com/kiwicayne/studentscheduling/grouping"
	"github.com/kiwicayne/studentscheduling/xrand"
)

// GroupingGenome is the chromosome the grouping search evolves: a full
// House partition of students across mentors.
type GroupingGenome struct {
	Mentors  []string
	Students []domain.Student
	House    domain.House
}

// NewGroupingFactory returns a factory for the Engine's newGenome: the
// first call it receives is seeded with the sort-based heuristic
// (grouping.Create), every later call fills in randomly (grouping.Random).
// Which population slot happens to receive the seeded individual isn't
// deterministic once population init runs concurrently, but exactly one
// individual always starts from the heuristic, matching the spirit of
// seeding "individual 0".
func NewGroupingFactory(mentors []string, students []domain.Student) func(rng *rand.Rand) *GroupingGenome {
	seeded := false
	var mu sync.Mutex
	return func(rng *rand.Rand) *GroupingGenome {
		mu.Lock()
		useHeuristic := !seeded
		seeded = true
		mu.Unlock()

		var house domain.House
		if useHeuristic {
			house = grouping.Create(mentors, students)
		} else {
			house = grouping.Random(rng, mentors, students)
		}
		return &GroupingGenome{Mentors: mentors, Students: students, House: house}
	}
}

// Clone deep-copies every group's student slice so mutation/crossover on
// the clone never touches the parent's groups.
func (g *GroupingGenome) Clone() eaopt.Genome {
	cp := *g
	cp.House.Groups = make([]domain.Group, len(g.House.Groups))
	for i, grp := range g.House.Groups {
		cp.House.Groups[i] = domain.Group{
			MentorID: grp.MentorID,
			Students: append([]domain.Student{}, grp.Students...),
		}
	}
	return &cp
}

// Evaluate scores the grouping with fitness.Grouping.
func (g *GroupingGenome) Evaluate() (float64, error) {
	score := fitness.Grouping(g.House)
	return 100 - score.Overall, nil
}

// Crossover takes a random-sized subset of g's groups whole, fills the
// remaining group slots from other's groups with g's students stripped
// out, distributes whoever that leaves unassigned across those remaining
// slots, and rebalances the result.
func (g *GroupingGenome) Crossover(other eaopt.Genome, rng *rand.Rand) {
	partner := other.(*GroupingGenome)
	g.House = crossGroupings(g.House, partner.House, rng)
}

// Mutate swaps one student between two distinct, non-empty groups.
func (g *GroupingGenome) Mutate(rng *rand.Rand) {
	mutateGrouping(g.House, rng)
}

func crossGroupings(mum, dad domain.House, rng *rand.Rand) domain.House {
	n := len(mum.Groups)
	if n == 0 {
		return mum
	}

	k := xrand.Intn(rng, 0, n)
	mumIdx := make(map[int]bool, k)
	for _, i := range rng.Perm(n)[:k] {
		mumIdx[i] = true
	}

	mumSelected := make([]domain.Group, 0, k)
	mumStudents := make(map[domain.Student]bool)
	for i, grp := range mum.Groups {
		if mumIdx[i] {
			mumSelected = append(mumSelected, grp)
			for _, s := range grp.Students {
				mumStudents[s] = true
			}
		}
	}

	need := n - len(mumSelected)
	dadPerm := rng.Perm(n)[:need]
	dadSelected := make([]domain.Group, need)
	assigned := make(map[domain.Student]bool, len(mumStudents))
	for s := range mumStudents {
		assigned[s] = true
	}
	for i, di := range dadPerm {
		grp := dad.Groups[di]
		var filtered []domain.Student
		for _, s := range grp.Students {
			if !mumStudents[s] {
				filtered = append(filtered, s)
			}
		}
		dadSelected[i] = domain.Group{MentorID: grp.MentorID, Students: filtered}
		for _, s := range filtered {
			assigned[s] = true
		}
	}

	var unassigned []domain.Student
	for _, grp := range mum.Groups {
		for _, s := range grp.Students {
			if !assigned[s] {
				unassigned = append(unassigned, s)
				assigned[s] = true
			}
		}
	}

	if len(dadSelected) > 0 && len(unassigned) > 0 {
		distributed := balance.Distribute(unassigned, len(dadSelected))
		for i := range dadSelected {
			dadSelected[i].Students = append(dadSelected[i].Students, distributed[i]...)
		}
	}

	groups := append(append([]domain.Group{}, mumSelected...), dadSelected...)
	lists := make([][]domain.Student, len(groups))
	for i := range groups {
		lists[i] = groups[i].Students
	}
	balance.Rebalance(lists)
	for i := range groups {
		groups[i].Students = lists[i]
	}

	return domain.House{Groups: groups}
}

func mutateGrouping(house domain.House, rng *rand.Rand) {
	groups := house.Groups
	if len(groups) < 2 {
		return
	}
	g1 := xrand.Intn(rng, 0, len(groups)-1)
	g2 := xrand.Intn(rng, 0, len(groups)-1)
	for g2 == g1 {
		g2 = xrand.Intn(rng, 0, len(groups)-1)
	}
	if len(groups[g1].Students) == 0 || len(groups[g2].Students) == 0 {
		return
	}
	i1 := xrand.Intn(rng, 0, len(groups[g1].Students)-1)
	i2 := xrand.Intn(rng, 0, len(groups[g2].Students)-1)
	groups[g1].Students[i1], groups[g2].Students[i2] = groups[g2].Students[i2], groups[g1].Students[i1]
}
