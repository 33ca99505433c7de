package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound bool
		exists   bool
		msg      string
	}{
		{"course", CourseNotFoundError("MATH101"), true, false, "school.FindCourse: Can't find course MATH101"},
		{"student", StudentNotFoundError(9312), true, false, "school.FindStudent: Can't find student 9312"},
		{"enrolled", AlreadyEnrolledError(9312, "MATH101"), false, true, "school.AddStudentToCourse: Student 9312 is already enrolled in course MATH101"},
		{"exhausted", SequenceExhaustedError(9999), false, false, "student.NextNumber: No student numbers left after 9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.exists, IsAlreadyExists(tt.err))

			wrapped := fmt.Errorf("enroll: %w", tt.err)
			assert.Equal(t, tt.notFound, IsNotFound(wrapped))
			assert.Equal(t, tt.name == "exhausted", errors.Is(wrapped, ErrExhausted))
		})
	}
}

func TestNewBaseEvent_UniqueIDs(t *testing.T) {
	a := NewCourseAddedEvent("MATH101")
	b := NewCourseAddedEvent("MATH101")

	assert.NotEqual(t, a.EventID(), b.EventID())
	assert.Equal(t, EventCourseAdded, a.EventType())
	assert.Equal(t, "MATH101", a.AggregateID())
	assert.Equal(t, "MATH101", a.Payload()["course_code"])
}
