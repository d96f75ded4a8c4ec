// Package testdoubles provides test doubles for the calendar boundary.
//
// This package contains calendar implementations used to exercise behavior
// that the built-in calendars cannot trigger:
//   - StubCalendar: a renamed ISO calendar, for calendar-mismatch scenarios
//     and calendar-equivalence checks
//
// These test doubles enable testing of calendar-dependent code paths without
// implementing a full non-ISO calendar system.
package testdoubles
