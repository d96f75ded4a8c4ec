// Package calendar provides the calendar boundary for year-month arithmetic.
//
// This package defines the types shared between the value layer and the
// pluggable calendar systems, plus the calendar implementations themselves.
//
// Key types:
//   - Date: an immutable (year, month, day) triple on the proleptic ISO calendar
//   - DateDuration: a signed (years, months, weeks, days) record
//   - Fields: an enum-keyed calendar field set that tracks which keys are present
//   - Calendar: the interface a calendar system implements
//
// Two calendar systems are built in, selected by identifier:
//   - "iso8601": the proleptic ISO calendar (the default everywhere)
//   - "gregory": the Gregorian calendar with CE/BCE eras on top of the ISO math
//
// Common usage pattern:
//
//	cal, err := calendar.New("iso8601")
//	if err != nil {
//		// handle error
//	}
//
//	date, err := cal.DateFromFields(fields, calendar.Constrain)
//	if err != nil {
//		// handle error
//	}
//
//	until, err := cal.DateUntil(date, other, calendar.UnitYear)
package calendar
