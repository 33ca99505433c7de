package student

import (
	"fmt"
	"io"
	"slices"

	"github.com/alem-hub/school-registry/internal/domain/locker"
	"github.com/alem-hub/school-registry/internal/domain/shared"
)

// CourseLookup resolves a timetable entry to a live course code.
// ok is false when the course no longer exists.
type CourseLookup interface {
	LookupCourse(code shared.CourseCode) (shared.CourseCode, bool)
}

// Student is a registered student.
type Student struct {
	number  shared.StudentNumber
	name    string
	locker  *locker.Locker
	courses []shared.CourseCode
}

// New creates a student with the next number from seq.
// It fails only when seq is exhausted.
func New(seq *NumberSequence, name string) (*Student, error) {
	n, err := seq.Next()
	if err != nil {
		return nil, err
	}
	return &Student{
		number: n,
		name:   name,
	}, nil
}

// Number returns the student number.
func (s *Student) Number() shared.StudentNumber {
	return s.number
}

// Name returns the student's name.
func (s *Student) Name() string {
	return s.name
}

// Locker returns the locker held by the student, or nil.
func (s *Student) Locker() *locker.Locker {
	return s.locker
}

// Courses returns a copy of the timetable in enrollment order.
func (s *Student) Courses() []shared.CourseCode {
	return slices.Clone(s.courses)
}

// AddCourse appends code to the timetable and always returns true.
//
// It does not check for duplicates. The caller must have had the course
// accept this student first; school.School is the only such caller.
func (s *Student) AddCourse(code shared.CourseCode) bool {
	s.courses = append(s.courses, code)
	return true
}

// AssignLocker moves l into the student's ownership and returns the locker
// it replaces, if any. The replaced locker is not returned to any pool.
func (s *Student) AssignLocker(l *locker.Locker) *locker.Locker {
	prev := s.locker
	s.locker = l
	return prev
}

// PrintTimetable writes "Timetable for <name> <number>" followed by one
// course code per line. Entries the lookup cannot resolve are skipped.
func (s *Student) PrintTimetable(w io.Writer, lookup CourseLookup) error {
	if _, err := fmt.Fprintf(w, "Timetable for %s %d\n", s.name, s.number); err != nil {
		return err
	}
	for _, c := range s.courses {
		code, ok := lookup.LookupCourse(c)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, code); err != nil {
			return err
		}
	}
	return nil
}
