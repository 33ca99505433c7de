// Package student contains the student entity of the school registry.
//
// The package defines:
//
//   - Student: identity (number and name), timetable and locker
//   - NumberSequence: the counter that hands out student numbers
//   - CourseLookup: how a timetable resolves its course codes
//
// # Student numbers
//
// Numbers come from a NumberSequence and are never reused. The first number
// of a fresh sequence is FirstNumber (9312). DefaultSequence is shared by
// the whole process; tests and tools pass their own:
//
//	seq := NewNumberSequence(FirstNumber)
//	ann, _ := New(seq, "Ann") // 9312
//	bob, _ := New(seq, "Bob") // 9313
//
// A sequence that has handed out the largest uint stops there: further
// calls to Next fail with shared.ErrExhausted instead of wrapping to zero.
//
// # Timetable
//
// The timetable stores course codes, not courses. AddCourse is a plain
// append; keeping it in step with the course roster is the registry's job
// (see school.School.AddStudentToCourse). PrintTimetable resolves each code
// through a CourseLookup and skips codes that no longer resolve.
//
// # Lockers
//
// AssignLocker moves a *locker.Locker into the student. A second assignment
// replaces the first; nothing returns a locker to its pool.
package student
