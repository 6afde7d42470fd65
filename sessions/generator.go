// Package sessions expands a block's activities into concrete session
// instances and classifies them into the mandatory, unordered, and overflow
// bands the constructive enrollers and genetic engine build on.
package sessions

import (
	"fmt"
	"sort"

	"github.com/kiwicayne/studentscheduling/domain"
)

// FrequencyMismatchError is the configuration fault raised when an overflow
// activity's frequency does not equal its master's.
type FrequencyMismatchError struct {
	Overflow string
	Master   string
}

func (e *FrequencyMismatchError) Error() string {
	return fmt.Sprintf("overflow activity %q frequency does not match master activity %q", e.Overflow, e.Master)
}

// Bands is the three disjoint ActivitySessions lists a generated block
// splits into.
type Bands struct {
	Mandatory []domain.ActivitySessions
	Unordered []domain.ActivitySessions
	Overflow  []domain.ActivitySessions
}

// Generate materializes every activity's raw sessions, drops any
// non-mandatory session that conflicts with a mandatory one, and classifies
// the result into mandatory/unordered/overflow bands.
func Generate(block domain.Block) (Bands, error) {
	raw := make(map[*domain.Activity][]domain.Session, len(block.Activities))

	for _, a := range block.Activities {
		sess, err := rawSessions(block, a, raw)
		if err != nil {
			return Bands{}, err
		}
		raw[a] = sortByWindow(sess)
	}

	mandatorySet := mandatoryWindows(block.Activities, raw)

	var bands Bands
	for _, a := range block.Activities {
		sess := raw[a]
		switch {
		case a.IsMandatory():
			bands.Mandatory = append(bands.Mandatory, domain.ActivitySessions{Activity: a, Sessions: sess})
		case a.IsOverflow():
			filtered := dropConflicts(sess, mandatorySet)
			bands.Overflow = append(bands.Overflow, domain.ActivitySessions{Activity: a, Sessions: filtered})
		default:
			filtered := dropConflicts(sess, mandatorySet)
			bands.Unordered = append(bands.Unordered, domain.ActivitySessions{Activity: a, Sessions: filtered})
		}
	}
	return bands, nil
}

// rawSessions builds the unfiltered, unsorted session list for a single
// activity according to its criteria shape.
func rawSessions(block domain.Block, a *domain.Activity, raw map[*domain.Activity][]domain.Session) ([]domain.Session, error) {
	switch crit := a.Criteria.(type) {
	case domain.OverflowFrom:
		master := crit.Master
		if !domain.Equal(a.Frequency, master.Frequency) {
			return nil, &FrequencyMismatchError{Overflow: a.Name(), Master: master.Name()}
		}
		masterSessions, ok := raw[master]
		if !ok {
			var err error
			masterSessions, err = rawSessions(block, master, raw)
			if err != nil {
				return nil, err
			}
			raw[master] = sortByWindow(masterSessions)
			masterSessions = raw[master]
		}
		out := make([]domain.Session, len(masterSessions))
		for i, ms := range masterSessions {
			out[i] = domain.NewSession(ms.Window, ms.Enrollable)
		}
		return out, nil

	case domain.FromGroupSelectTwoPeers:
		_ = crit
		var out []domain.Session
		for _, g := range block.House.Groups {
			for _, w := range domain.Windows(a.Frequency, block.Start, block.End) {
				out = append(out, domain.NewSession(w, g.Students))
			}
		}
		return out, nil

	default:
		// FromHouseSelectMaxStudents, FromHouseSelectAllStudents, NoRequirement
		var out []domain.Session
		enrollable := block.House.AllStudents()
		for _, w := range domain.Windows(a.Frequency, block.Start, block.End) {
			out = append(out, domain.NewSession(w, enrollable))
		}
		return out, nil
	}
}

func sortByWindow(sess []domain.Session) []domain.Session {
	sort.SliceStable(sess, func(i, j int) bool {
		wi, wj := sess[i].Window, sess[j].Window
		if !wi.Date.Equal(wj.Date) {
			return wi.Date.Before(wj.Date)
		}
		if wi.Start != wj.Start {
			return wi.Start < wj.Start
		}
		return wi.End < wj.End
	})
	return sess
}

// mandatoryWindows flattens every mandatory activity's windows so
// dropConflicts can test other activities' sessions against them.
func mandatoryWindows(activities []*domain.Activity, raw map[*domain.Activity][]domain.Session) []domain.Window {
	var out []domain.Window
	for _, a := range activities {
		if a.IsMandatory() {
			for _, s := range raw[a] {
				out = append(out, s.Window)
			}
		}
	}
	return out
}

// dropConflicts removes any session whose window strictly overlaps a
// mandatory window on the same day.
func dropConflicts(sess []domain.Session, mandatory []domain.Window) []domain.Session {
	if len(mandatory) == 0 {
		return sess
	}
	out := sess[:0:0]
	for _, s := range sess {
		conflicted := false
		for _, m := range mandatory {
			if s.Window.Overlaps(m) {
				conflicted = true
				break
			}
		}
		if !conflicted {
			out = append(out, s)
		}
	}
	return out
}
