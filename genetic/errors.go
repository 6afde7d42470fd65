package genetic

import "errors"

// ErrGroupRemovalUnsupported is returned when crossover repair would need to
// remove a student from a GroupsEnrollment session. GroupsEnrollment only
// ever backs mandatory sessions, which the unordered crossover pool never
// touches, so the current operators never trigger this - it exists as a
// diagnostic for a configuration that somehow routes a mandatory session
// through crossover repair instead of a silent, wrong fixup.
var ErrGroupRemovalUnsupported = errors.New("genetic: cannot remove a student from a GroupsEnrollment session during crossover repair")
