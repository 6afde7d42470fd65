// Package grouping implements the non-evolving grouping construction the
// genetic grouping search seeds its population with: a sort-based heuristic
// pass, and a uniformly random pass for filling out the rest of a
// population.
package grouping

import (
	"math/rand"
	"sort"

	"github.com/kiwicayne/studentscheduling/balance"
	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/xrand"
)

// Create partitions students across mentors by sorting students on
// (gender, age, major) and distributing the sorted list round-robin, so
// adjacent (and therefore similar) students land in different groups.
func Create(mentors []string, students []domain.Student) domain.House {
	sorted := append([]domain.Student{}, students...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Gender != sorted[j].Gender {
			return sorted[i].Gender < sorted[j].Gender
		}
		if sorted[i].Age != sorted[j].Age {
			return sorted[i].Age < sorted[j].Age
		}
		return sorted[i].Major < sorted[j].Major
	})
	return assign(mentors, balance.Distribute(sorted, len(mentors)))
}

// Random partitions students across mentors by shuffling then distributing
// round-robin.
func Random(rng *rand.Rand, mentors []string, students []domain.Student) domain.House {
	shuffled := append([]domain.Student{}, students...)
	xrand.Shuffle(rng, shuffled)
	return assign(mentors, balance.Distribute(shuffled, len(mentors)))
}

func assign(mentors []string, buckets [][]domain.Student) domain.House {
	groups := make([]domain.Group, len(mentors))
	for i, m := range mentors {
		var students []domain.Student
		if i < len(buckets) {
			students = buckets[i]
		}
		groups[i] = domain.Group{MentorID: m, Students: students}
	}
	return domain.House{Groups: groups}
}
