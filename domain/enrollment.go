package domain

// Enrollment is a closed tagged union describing who is enrolled in a
// session: StudentEnrollment, StudentsEnrollment, PeerEnrollment,
// GroupsEnrollment, or Empty.
type Enrollment interface {
	// Students flattens this enrollment into its enrolled student set.
	Students() []Student
	isEnrollment()
}

type emptyEnrollment struct{}

func (emptyEnrollment) Students() []Student { return nil }
func (emptyEnrollment) isEnrollment()       {}

// Empty is the zero enrollment every generated session starts with.
var Empty Enrollment = emptyEnrollment{}

// IsEmpty reports whether e is the Empty enrollment.
func IsEmpty(e Enrollment) bool {
	_, ok := e.(emptyEnrollment)
	return ok
}

// StudentEnrollment enrolls exactly one student.
type StudentEnrollment struct {
	Student Student
}

func (e StudentEnrollment) Students() []Student { return []Student{e.Student} }
func (StudentEnrollment) isEnrollment()         {}

// StudentsEnrollment enrolls a set of students, used by
// FromHouseSelectMaxStudents sessions (possibly partially filled).
type StudentsEnrollment struct {
	Set []Student
}

func (e StudentsEnrollment) Students() []Student { return e.Set }
func (StudentsEnrollment) isEnrollment()         {}

// PeerEnrollment enrolls a bedside/peer pair drawn from the same group.
type PeerEnrollment struct {
	Pair PeerPair
}

func (e PeerEnrollment) Students() []Student {
	return []Student{e.Pair.Bedside, e.Pair.Peer}
}
func (PeerEnrollment) isEnrollment() {}

// GroupsEnrollment enrolls every student of a list of groups, used by
// mandatory (FromHouseSelectAllStudents) sessions.
type GroupsEnrollment struct {
	Groups []Group
}

func (e GroupsEnrollment) Students() []Student {
	var out []Student
	for _, g := range e.Groups {
		out = append(out, g.Students...)
	}
	return out
}
func (GroupsEnrollment) isEnrollment() {}

// ContainsStudent reports whether s is among the enrolled students of e.
func ContainsStudent(e Enrollment, s Student) bool {
	for _, enrolled := range e.Students() {
		if enrolled == s {
			return true
		}
	}
	return false
}
