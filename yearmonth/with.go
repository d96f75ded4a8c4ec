package yearmonth

import (
	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

// With returns a new value with the partial's fields replacing the receiver's.
// The merge is calendar-specific: supplying a month clears a conflicting month
// code carried by the receiver, and vice versa.
//
// Fails with an error matching ErrType when the partial carries none of the
// receiver's relevant fields (a day alone is not relevant to a year-month).
func (ym YearMonth) With(partial Partial, options ...ArithmeticOptions) (YearMonth, error) {
	overflow, err := resolveOverflow(options)
	if err != nil {
		return YearMonth{}, err
	}

	cal := ym.Calendar()

	fields := ym.CalendarFields().Pick(yearMonthInputFields...)
	fieldNames := append([]calendar.Field(nil), fields.Keys()...)

	partialFields := partial.CalendarFields().Pick(fieldNames...)
	if partialFields.IsEmpty() {
		return YearMonth{}, ErrNoRelevantFields
	}

	merged := cal.MergeFields(fields, partialFields)
	merged = merged.Pick(fieldNames...)

	return resolveFromFields(cal, merged, overflow)
}
