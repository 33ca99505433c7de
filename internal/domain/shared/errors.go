// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Resource errors
	ErrExhausted = errors.New("resource exhausted")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "school", "student", "course"
	Op      string // Operation that failed, e.g., "FindCourse"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Registry errors
// ═══════════════════════════════════════════════════════════════════════════

// CourseNotFoundError reports a course code unknown to the registry.
func CourseNotFoundError(code CourseCode) *DomainError {
	return NewDomainError("school", "FindCourse", ErrNotFound,
		fmt.Sprintf("Can't find course %s", code))
}

// StudentNotFoundError reports a student number unknown to the registry.
func StudentNotFoundError(n StudentNumber) *DomainError {
	return NewDomainError("school", "FindStudent", ErrNotFound,
		fmt.Sprintf("Can't find student %d", n))
}

// AlreadyEnrolledError reports a repeated enrollment of a student in a course.
func AlreadyEnrolledError(n StudentNumber, code CourseCode) *DomainError {
	return NewDomainError("school", "AddStudentToCourse", ErrAlreadyExists,
		fmt.Sprintf("Student %d is already enrolled in course %s", n, code))
}

// SequenceExhaustedError reports a number sequence that has handed out its
// largest representable number.
func SequenceExhaustedError(last StudentNumber) *DomainError {
	return NewDomainError("student", "NextNumber", ErrExhausted,
		fmt.Sprintf("No student numbers left after %d", last))
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
