package student

import (
	"math"

	"github.com/alem-hub/school-registry/internal/domain/shared"
)

// FirstNumber is the number given to the first student of a process.
const FirstNumber shared.StudentNumber = 9312

// maxNumber is the largest number a sequence hands out.
const maxNumber shared.StudentNumber = math.MaxUint

// NumberSequence hands out student numbers. Next is its only mutation
// point; a number is never handed out twice by the same sequence.
type NumberSequence struct {
	next      shared.StudentNumber
	exhausted bool
}

// NewNumberSequence creates a sequence starting at first.
// Zero is not a valid student number and is replaced with FirstNumber.
func NewNumberSequence(first shared.StudentNumber) *NumberSequence {
	if !first.IsValid() {
		first = FirstNumber
	}
	return &NumberSequence{next: first}
}

// Next returns the current number and advances the sequence.
// Once the largest number has been handed out every call fails with
// shared.ErrExhausted; the counter never wraps back to zero.
func (s *NumberSequence) Next() (shared.StudentNumber, error) {
	if s.exhausted {
		return 0, shared.SequenceExhaustedError(s.next)
	}
	n := s.next
	if n == maxNumber {
		s.exhausted = true
	} else {
		s.next++
	}
	return n, nil
}

// Peek returns the number the next call to Next will return.
// It is meaningless once the sequence is exhausted.
func (s *NumberSequence) Peek() shared.StudentNumber {
	return s.next
}

// DefaultSequence is the process-wide sequence used when a registry is not
// given one explicitly.
var DefaultSequence = NewNumberSequence(FirstNumber)
