// Package school implements the registry that owns every course, student and
// locker, and mediates all operations that span more than one of them.
//
// Courses and students never hold each other directly. A roster holds
// student numbers and a timetable holds course codes; both are resolved
// through the School when printed, so discarding a student simply makes
// its roster entries disappear from output.
//
// Failures are reported two ways. Unknown keys and repeated enrollment are
// errors (see shared.IsNotFound and shared.IsAlreadyExists), as is running
// out of student numbers (shared.ErrExhausted). A duplicate course
// code or an empty locker pool are expected outcomes and come back as false.
package school

import (
	"io"
	"slices"

	"github.com/alem-hub/school-registry/internal/domain/course"
	"github.com/alem-hub/school-registry/internal/domain/locker"
	"github.com/alem-hub/school-registry/internal/domain/shared"
	"github.com/alem-hub/school-registry/internal/domain/student"
	"github.com/alem-hub/school-registry/pkg/logger"
)

// School is the registry. It is not safe for concurrent use.
type School struct {
	courses  []*course.Course
	students []*student.Student
	lockers  *locker.Pool

	seq    *student.NumberSequence
	events shared.EventPublisher
	logger *logger.Logger
}

// Option configures a School.
type Option func(*School)

// WithLockers fills the locker pool with n lockers.
func WithLockers(n int) Option {
	return func(s *School) {
		s.lockers = locker.NewPool(n)
	}
}

// WithSequence sets the student-number sequence.
// Without it the process-wide student.DefaultSequence is used.
func WithSequence(seq *student.NumberSequence) Option {
	return func(s *School) {
		s.seq = seq
	}
}

// WithEventBus makes the registry publish its domain events to p.
func WithEventBus(p shared.EventPublisher) Option {
	return func(s *School) {
		s.events = p
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *School) {
		s.logger = l
	}
}

// New creates an empty registry.
func New(opts ...Option) *School {
	s := &School{
		lockers: locker.NewPool(0),
		seq:     student.DefaultSequence,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("school"))
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Courses
// ─────────────────────────────────────────────────────────────────────────────

// AddCourse creates a course with the given code.
// Returns false, changing nothing, if the code is already taken.
func (s *School) AddCourse(code shared.CourseCode) bool {
	if _, err := s.FindCourse(code); err == nil {
		s.logger.Warn("course already exists", logger.Operation("AddCourse"), logger.CourseCode(code))
		return false
	}

	s.courses = append(s.courses, course.New(code))
	s.logger.Debug("course added", logger.CourseCode(code))
	s.publish(shared.NewCourseAddedEvent(code))
	return true
}

// FindCourse returns the course with the given code.
func (s *School) FindCourse(code shared.CourseCode) (*course.Course, error) {
	for _, c := range s.courses {
		if c.Code() == code {
			return c, nil
		}
	}
	return nil, shared.CourseNotFoundError(code)
}

// Courses returns the registered courses in creation order.
func (s *School) Courses() []*course.Course {
	return slices.Clone(s.courses)
}

// LookupCourse implements student.CourseLookup.
func (s *School) LookupCourse(code shared.CourseCode) (shared.CourseCode, bool) {
	c, err := s.FindCourse(code)
	if err != nil {
		return "", false
	}
	return c.Code(), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Students
// ─────────────────────────────────────────────────────────────────────────────

// RegisterStudent creates a student and returns the number it was given.
// It fails, registering nothing, once the number sequence is exhausted.
func (s *School) RegisterStudent(name string) (shared.StudentNumber, error) {
	st, err := student.New(s.seq, name)
	if err != nil {
		s.logger.Warn("student not registered", logger.Operation("RegisterStudent"), logger.StudentName(name), logger.Err(err))
		return 0, err
	}
	s.students = append(s.students, st)

	s.logger.Debug("student registered", logger.StudentNumber(st.Number()), logger.StudentName(name))
	s.publish(shared.NewStudentRegisteredEvent(st.Number(), name))
	return st.Number(), nil
}

// RemoveStudent discards a student together with any locker it holds.
// Roster entries naming the student become stale and are skipped on output.
func (s *School) RemoveStudent(n shared.StudentNumber) error {
	i := slices.IndexFunc(s.students, func(st *student.Student) bool { return st.Number() == n })
	if i < 0 {
		return shared.StudentNotFoundError(n)
	}

	s.students = slices.Delete(s.students, i, i+1)
	s.logger.Debug("student removed", logger.StudentNumber(n))
	s.publish(shared.NewStudentRemovedEvent(n))
	return nil
}

// FindStudent returns the student with the given number.
func (s *School) FindStudent(n shared.StudentNumber) (*student.Student, error) {
	for _, st := range s.students {
		if st.Number() == n {
			return st, nil
		}
	}
	return nil, shared.StudentNotFoundError(n)
}

// Students returns the registered students in registration order.
func (s *School) Students() []*student.Student {
	return slices.Clone(s.students)
}

// LookupStudent implements course.StudentLookup.
func (s *School) LookupStudent(n shared.StudentNumber) (string, bool) {
	st, err := s.FindStudent(n)
	if err != nil {
		return "", false
	}
	return st.Name(), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Enrollment
// ─────────────────────────────────────────────────────────────────────────────

// AddStudentToCourse enrolls student n in the course with the given code,
// linking the roster and the timetable.
//
// The registry is the only place duplicate enrollment is enforced: the
// course rejects a repeat and the timetable is then left untouched, so the
// two sides never disagree.
func (s *School) AddStudentToCourse(n shared.StudentNumber, code shared.CourseCode) error {
	c, err := s.FindCourse(code)
	if err != nil {
		return err
	}
	st, err := s.FindStudent(n)
	if err != nil {
		return err
	}

	if !c.AddStudent(st.Number()) {
		s.logger.Warn("student already enrolled", logger.Operation("AddStudentToCourse"), logger.StudentNumber(n), logger.CourseCode(code))
		return shared.AlreadyEnrolledError(n, code)
	}
	st.AddCourse(c.Code())

	s.logger.Debug("student enrolled", logger.StudentNumber(n), logger.CourseCode(code))
	s.publish(shared.NewStudentEnrolledEvent(n, code))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Lockers
// ─────────────────────────────────────────────────────────────────────────────

// AssignLocker moves one locker from the pool to student n.
// Returns false, changing nothing, when the pool is empty. A student who
// already holds a locker has it replaced; the old one is not returned.
func (s *School) AssignLocker(n shared.StudentNumber) (bool, error) {
	st, err := s.FindStudent(n)
	if err != nil {
		return false, err
	}

	l, ok := s.lockers.Take()
	if !ok {
		s.logger.Warn("no lockers available", logger.Operation("AssignLocker"), logger.StudentNumber(n))
		return false, nil
	}
	if prev := st.AssignLocker(l); prev != nil {
		s.logger.Warn("locker replaced", logger.Operation("AssignLocker"), logger.StudentNumber(n), logger.LockerNumber(prev.Number()))
	}

	s.logger.Debug("locker assigned", logger.StudentNumber(n), logger.LockerNumber(l.Number()))
	s.publish(shared.NewLockerAssignedEvent(n, l.ID(), l.Number(), s.lockers.Available()))
	return true, nil
}

// AvailableLockers returns how many lockers are left in the pool.
func (s *School) AvailableLockers() int {
	return s.lockers.Available()
}

// ─────────────────────────────────────────────────────────────────────────────
// Output
// ─────────────────────────────────────────────────────────────────────────────

// PrintRoll writes the roll of the course with the given code to w.
func (s *School) PrintRoll(w io.Writer, code shared.CourseCode) error {
	c, err := s.FindCourse(code)
	if err != nil {
		return err
	}
	return c.PrintRoll(w, s)
}

// PrintTimetable writes the timetable of student n to w.
func (s *School) PrintTimetable(w io.Writer, n shared.StudentNumber) error {
	st, err := s.FindStudent(n)
	if err != nil {
		return err
	}
	return st.PrintTimetable(w, s)
}

func (s *School) publish(e shared.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(e); err != nil {
		s.logger.Warn("publish event", logger.Operation("Publish"), logger.EventType(e.EventType()), logger.Err(err))
	}
}
