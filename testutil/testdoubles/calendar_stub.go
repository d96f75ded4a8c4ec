package testdoubles

import (
	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

// StubCalendar is a Calendar implementation that delegates everything to the
// ISO calendar but reports its own identifier. Two year-months bound to stubs
// with different identifiers are calendar-incompatible while still comparing
// equal on their ISO triples.
type StubCalendar struct {
	calendar.Calendar
	identifier string
}

// NewStubCalendar creates a new StubCalendar with the given identifier.
func NewStubCalendar(identifier string) *StubCalendar {
	return &StubCalendar{
		Calendar:   calendar.ISO8601(),
		identifier: identifier,
	}
}

// Identifier implements the Calendar interface for testing.
func (s *StubCalendar) Identifier() string {
	return s.identifier
}
