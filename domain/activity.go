package domain

// Activity is a scheduled educational event type. Two activities are equal
// iff their names are equal; the Registry enforces this by handing back the
// same *Activity for a repeated name, so pointer identity is a valid,
// allocation-free stand-in for name equality once an activity has gone
// through a Registry.
type Activity struct {
	name      string
	key       uint32
	Frequency Frequency
	Priority  EnrollmentPriority
	Criteria  EnrollmentCriteria
}

// Name is the activity's identity.
func (a *Activity) Name() string { return a.name }

// Key is the arena index this activity was assigned by its Registry. It
// exists so hot loops (session generation, enrollment) can key maps and
// sets on a small integer instead of hashing the name string or deep
// comparing the Activity value, which matters once OverflowFrom activities
// reference their master and a naive implementation would otherwise walk
// the full dependency chain on every comparison.
func (a *Activity) Key() uint32 { return a.key }

// Equal reports whether two activities share identity. Pointer equality is
// sufficient when both values came from the same Registry; the name
// fallback handles activities constructed without one.
func (a *Activity) Equal(b *Activity) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.name == b.name
}

// IsMandatory reports whether every session of this activity requires the
// entire house.
func (a *Activity) IsMandatory() bool {
	_, ok := a.Criteria.(FromHouseSelectAllStudents)
	return ok
}

// IsOverflow reports whether this activity mirrors a master activity's
// enrollment complement.
func (a *Activity) IsOverflow() bool {
	_, ok := a.Criteria.(OverflowFrom)
	return ok
}

// IsUnordered reports whether this activity is scheduled by the
// constructive enrollers (neither mandatory nor overflow).
func (a *Activity) IsUnordered() bool {
	return !a.IsMandatory() && !a.IsOverflow()
}
