package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Ticket is a fixed set of distinct numbers drawn from a pool. Numbers are
// immutable after generation: the backing list is never mutated again and
// accessors hand out copies.
type Ticket struct {
	id      string
	numbers *NumberList
}

// NewTicket wraps the drawn numbers into a ticket. The caller hands over
// ownership of the list and must not mutate it afterwards.
func NewTicket(numbers *NumberList) *Ticket {
	if numbers == nil {
		numbers = NewNumberList()
	}
	return &Ticket{
		id:      uuid.New().String(),
		numbers: numbers,
	}
}

// ID returns the ticket id.
func (t *Ticket) ID() string { return t.id }

// Len returns how many numbers the ticket holds.
func (t *Ticket) Len() int { return t.numbers.Len() }

// Has reports whether n is one of the ticket's numbers.
func (t *Ticket) Has(n Number) bool { return t.numbers.Has(n) }

// Numbers returns a copy of the numbers, most recently drawn first.
func (t *Ticket) Numbers() []Number { return t.numbers.Values() }

// ValueAt returns the number at position i (0 is the most recent draw).
func (t *Ticket) ValueAt(i int) (Number, error) { return t.numbers.ValueAt(i) }

// Matches counts how many of the ticket's numbers appear on winning.
func (t *Ticket) Matches(winning *Ticket) int {
	if winning == nil {
		return 0
	}
	count := 0
	for _, n := range t.numbers.values {
		if winning.Has(n) {
			count++
		}
	}
	return count
}

// String renders the numbers without the list's trailing null marker.
func (t *Ticket) String() string {
	return strings.TrimSuffix(t.numbers.String(), " -> null")
}
