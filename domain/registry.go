package domain

// Registry is the flat activity arena the design notes call for: activities
// are looked up and created by name once, so an OverflowFrom criteria can
// reference its master by pointer without embedding the master by value and
// without risking an unbounded structural walk if two activities end up
// referencing each other.
type Registry struct {
	next   uint32
	byName map[string]*Activity
}

// NewRegistry creates an empty activity arena.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Activity)}
}

// NewActivity registers name with the given frequency, priority and
// criteria, returning the existing *Activity if name was already
// registered (the new frequency/priority/criteria are ignored in that
// case, matching the name-is-identity rule).
func (r *Registry) NewActivity(name string, freq Frequency, priority EnrollmentPriority, criteria EnrollmentCriteria) *Activity {
	if existing, ok := r.byName[name]; ok {
		return existing
	}
	a := &Activity{
		name:      name,
		key:       r.next,
		Frequency: freq,
		Priority:  priority,
		Criteria:  criteria,
	}
	r.next++
	r.byName[name] = a
	return a
}

// Lookup returns the activity registered under name, if any.
func (r *Registry) Lookup(name string) (*Activity, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// All returns every registered activity, in registration order.
func (r *Registry) All() []*Activity {
	out := make([]*Activity, len(r.byName))
	for _, a := range r.byName {
		out[a.key] = a
	}
	return out
}
