// Package course contains the course entity and its roster.
package course

import (
	"fmt"
	"io"
	"slices"

	"github.com/alem-hub/school-registry/internal/domain/shared"
)

// StudentLookup resolves a roster entry to a student name.
// ok is false when the student no longer exists.
type StudentLookup interface {
	LookupStudent(n shared.StudentNumber) (name string, ok bool)
}

// Course holds a roster of enrolled students.
// The roster keeps student numbers, not students: entries are resolved
// through a StudentLookup on demand and may go stale.
type Course struct {
	code   shared.CourseCode
	roster []shared.StudentNumber
}

// New creates an empty course.
func New(code shared.CourseCode) *Course {
	return &Course{code: code}
}

// Code returns the course code.
func (c *Course) Code() shared.CourseCode {
	return c.code
}

// AddStudent appends n to the roster.
// Returns false, leaving the roster unchanged, if n is already enrolled.
func (c *Course) AddStudent(n shared.StudentNumber) bool {
	if c.Has(n) {
		return false
	}
	c.roster = append(c.roster, n)
	return true
}

// Has reports whether n is on the roster.
func (c *Course) Has(n shared.StudentNumber) bool {
	return slices.Contains(c.roster, n)
}

// Roster returns a copy of the roster in insertion order.
func (c *Course) Roster() []shared.StudentNumber {
	return slices.Clone(c.roster)
}

// PrintRoll writes "<code> Roll" followed by one student name per line.
// Entries the lookup cannot resolve are skipped.
func (c *Course) PrintRoll(w io.Writer, lookup StudentLookup) error {
	if _, err := fmt.Fprintf(w, "%s Roll\n", c.code); err != nil {
		return err
	}
	for _, n := range c.roster {
		name, ok := lookup.LookupStudent(n)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
