// Package locker models the school's lockers: a finite pool of handles that
// are moved, one at a time, into the ownership of a single student.
package locker

import "github.com/google/uuid"

// Locker is a uniquely assignable resource. It is always handled through a
// pointer; once taken from a Pool the receiver is its sole owner.
type Locker struct {
	id     uuid.UUID
	number int
}

// ID returns the unique identifier of the locker.
func (l *Locker) ID() string {
	return l.id.String()
}

// Number returns the locker's printed number.
func (l *Locker) Number() int {
	return l.number
}

// Pool holds the lockers that have not been assigned yet.
// Take pops from the end, so the highest-numbered locker goes first.
type Pool struct {
	available []*Locker
}

// NewPool creates a pool of n lockers numbered 1..n.
// A non-positive n yields an empty pool.
func NewPool(n int) *Pool {
	if n < 0 {
		n = 0
	}
	p := &Pool{available: make([]*Locker, 0, n)}
	for i := 1; i <= n; i++ {
		p.available = append(p.available, &Locker{id: uuid.New(), number: i})
	}
	return p
}

// Take removes one locker from the pool and hands it to the caller.
// Returns false when the pool is exhausted.
func (p *Pool) Take() (*Locker, bool) {
	if len(p.available) == 0 {
		return nil, false
	}
	last := len(p.available) - 1
	l := p.available[last]
	p.available[last] = nil
	p.available = p.available[:last]
	return l, true
}

// Available returns how many lockers are left.
func (p *Pool) Available() int {
	return len(p.available)
}
