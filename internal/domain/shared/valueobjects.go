// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import "strconv"

// ═══════════════════════════════════════════════════════════════════════════
// ID Value Objects
// ═══════════════════════════════════════════════════════════════════════════

// StudentNumber is the registry-wide key of a student.
// Numbers are handed out by student.NumberSequence and never reused.
type StudentNumber uint

// IsValid checks if the number was issued (zero is never issued).
func (n StudentNumber) IsValid() bool {
	return n > 0
}

// String returns the decimal representation.
func (n StudentNumber) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// CourseCode is the registry-wide key of a course, e.g. "MATH101".
// Codes are compared exactly; no normalisation is applied.
type CourseCode string

// String returns the string representation.
func (c CourseCode) String() string {
	return string(c)
}
