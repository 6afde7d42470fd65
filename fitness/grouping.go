// Package fitness scores candidate schedules and groupings: schedule
// fitness blends credit coverage with statistical evenness, grouping
// fitness blends gender/age/major diversity, both via "mean minus standard
// deviation" so unevenness is penalized even when average coverage looks
// good.
package fitness

import (
	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/xstat"
)

// GroupingScore is the grouping fitness's three sub-scores and their mean.
type GroupingScore struct {
	Gender, Age, Major, Overall float64
}

// Grouping scores a single house's diversity.
func Grouping(house domain.House) GroupingScore {
	return GroupingHouses([]domain.House{house})
}

// GroupingHouses scores diversity across a collection of houses, averaging
// per-group scores across every group of every house.
func GroupingHouses(houses []domain.House) GroupingScore {
	var genderScores, ageScores, majorScores []float64
	for _, h := range houses {
		for _, g := range h.Groups {
			if hasDuplicateLastName(g) {
				genderScores = append(genderScores, 0)
				ageScores = append(ageScores, 0)
				majorScores = append(majorScores, 0)
				continue
			}
			genderScores = append(genderScores, genderBalance(g))
			ageScores = append(ageScores, diversity(g, func(s domain.Student) int { return s.Age }))
			majorScores = append(majorScores, diversity(g, func(s domain.Student) string { return s.Major }))
		}
	}
	gender := xstat.Mean(genderScores)
	age := xstat.Mean(ageScores)
	major := xstat.Mean(majorScores)
	return GroupingScore{
		Gender:  gender,
		Age:     age,
		Major:   major,
		Overall: (gender + age + major) / 3,
	}
}

func hasDuplicateLastName(g domain.Group) bool {
	seen := make(map[string]bool, len(g.Students))
	for _, s := range g.Students {
		if seen[s.LastName] {
			return true
		}
		seen[s.LastName] = true
	}
	return false
}

// genderBalance scores 100 when a group's Male/Female counts cancel out
// and 0 when every student is Male or every student is Female.
// NotSpecified students count toward neither side.
func genderBalance(g domain.Group) float64 {
	n := len(g.Students)
	if n == 0 {
		return 100
	}
	sum := 0
	for _, s := range g.Students {
		switch s.Gender {
		case domain.Male:
			sum++
		case domain.Female:
			sum--
		}
	}
	if sum < 0 {
		sum = -sum
	}
	return 100 * (1 - float64(sum)/float64(n))
}

// diversity scores 100 when every student in g has a distinct attribute
// value and trends toward 0 as more students share the same value.
func diversity[K comparable](g domain.Group, key func(domain.Student) K) float64 {
	n := len(g.Students)
	if n == 0 {
		return 100
	}
	counts := make(map[K]int, n)
	for _, s := range g.Students {
		counts[key(s)]++
	}
	raw := 0
	for _, k := range counts {
		raw += k * k
	}
	raw -= n
	return 100 * (1 - float64(raw)/float64(n*n))
}
