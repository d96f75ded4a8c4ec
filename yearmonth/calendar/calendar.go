package calendar

import (
	"fmt"
	"strings"
)

// Calendar translates between the proleptic ISO calendar and a named calendar
// system's fields. Implementations are pure and safe for concurrent use.
//
// Dates passed to and returned from a Calendar are always ISO triples; the
// calendar interprets them into its own field space through the accessors.
type Calendar interface {
	// Identifier returns the canonical lowercase calendar identifier, e.g. "iso8601".
	Identifier() string

	// DateFromFields resolves a field set into a calendar day.
	// Requires year (or era + eraYear for era calendars), month or monthCode, and day.
	DateFromFields(fields Fields, overflow Overflow) (Date, error)

	// YearMonthFromFields resolves a field set into the ISO date anchoring a
	// year-month: the year and month with the calendar's reference day.
	// The day field, if present, is ignored.
	YearMonthFromFields(fields Fields, overflow Overflow) (Date, error)

	// DateAdd adds a date duration to a date.
	DateAdd(date Date, duration DateDuration, overflow Overflow) (Date, error)

	// DateUntil computes the signed duration from one date to another,
	// expressed with the given largest unit.
	DateUntil(one Date, two Date, largestUnit Unit) (DateDuration, error)

	// MergeFields merges a partial field set over a base field set, resolving
	// calendar-specific conflicts between mutually derivable fields.
	MergeFields(base Fields, partial Fields) Fields

	Year(date Date) int
	Month(date Date) int
	MonthCode(date Date) string
	Day(date Date) int
	Era(date Date) (string, bool)
	EraYear(date Date) (int, bool)
	DaysInYear(date Date) int
	DaysInMonth(date Date) int
	MonthsInYear(date Date) int
	InLeapYear(date Date) bool
}

// Supported calendar identifiers.
const (
	ISO8601ID = "iso8601"
	GregoryID = "gregory"
)

// New returns the calendar implementation for the given identifier.
// Identifiers are matched ASCII case-insensitively.
// Returns ErrUnsupportedCalendar for anything else.
func New(identifier string) (Calendar, error) {
	switch strings.ToLower(identifier) {
	case ISO8601ID:
		return ISO8601(), nil
	case GregoryID:
		return Gregory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCalendar, identifier)
	}
}

// Equal reports whether two calendars denote the same calendar system.
func Equal(a Calendar, b Calendar) bool {
	if a == b {
		return true
	}

	return a.Identifier() == b.Identifier()
}
