// Package yearmonth provides a calendar year-month value type and its
// arithmetic engine.
//
// A YearMonth identifies a specific month within a specific year under a
// calendar system, stored as an ISO (year, month, reference day) triple bound
// to a calendar. Values are immutable: every operation that would change a
// value returns a new one, so a YearMonth is safe to share once constructed.
//
// Key operations:
//   - BuildYearMonth: construction with validation against the representable range
//   - From: resolution of values, field sources, and ISO strings
//   - With: partial field updates
//   - Add / Subtract: duration arithmetic with calendar-aware month lengths
//   - Until / Since: signed (years, months) differences with optional rounding
//   - Compare / Equals: calendar-independent ordering and strict equality
//
// Common usage pattern:
//
//	ym, err := yearmonth.BuildYearMonth(2023, 1)
//	if err != nil {
//		// handle error
//	}
//
//	next, err := ym.Add(yearmonth.Duration{Months: 1})
//	if err != nil {
//		// handle error
//	}
//
//	gap, err := ym.Until(next)
//	if err != nil {
//		// handle error
//	}
//
// All failures are synchronous and deterministic. Errors belong to one of two
// classes, matched with errors.Is: ErrRange for values that denote something
// nonexistent or unrepresentable, and ErrType for inputs of the wrong shape.
//
// A YearMonth has no numeric form; unlike a time.Time there is no scalar
// conversion, only Compare for ordering.
package yearmonth
