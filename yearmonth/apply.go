package yearmonth

import (
	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

// Add returns the value moved forward by the duration. Time components are
// balanced into whole days first; the overflow option governs how a resulting
// out-of-range day or month is resolved.
func (ym YearMonth) Add(duration Duration, options ...ArithmeticOptions) (YearMonth, error) {
	return ym.applyDuration(duration, options)
}

// Subtract returns the value moved backward by the duration.
// Equivalent to Add with every component negated.
func (ym YearMonth) Subtract(duration Duration, options ...ArithmeticOptions) (YearMonth, error) {
	return ym.applyDuration(duration.Negated(), options)
}

func (ym YearMonth) applyDuration(duration Duration, options []ArithmeticOptions) (YearMonth, error) {
	if err := duration.validate(); err != nil {
		return YearMonth{}, err
	}

	overflow, err := resolveOverflow(options)
	if err != nil {
		return YearMonth{}, err
	}

	toAdd := calendar.DateDuration{
		Years:  duration.Years,
		Months: duration.Months,
		Weeks:  duration.Weeks,
		Days:   duration.Days + duration.timeDays(),
	}
	sign := toAdd.Sign()

	cal := ym.Calendar()

	fields := ym.CalendarFields().Pick(yearMonthReceiverFields...)
	fieldNames := append([]calendar.Field(nil), fields.Keys()...)
	fieldsCopy := fields.Clone()

	fields.SetInt(calendar.FieldDay, 1)

	intermediate, err := cal.DateFromFields(fields, calendar.Constrain)
	if err != nil {
		return YearMonth{}, err
	}

	anchor := intermediate
	if sign < 0 {
		// When moving backward the anchor must be the last day of the month,
		// not day 1: subtracting any day component from day 1 would cross into
		// the preceding month. The last day is found by adding one calendar
		// month and stepping back one ISO day, which stays correct for
		// calendars with irregular month lengths.
		nextMonth, addErr := cal.DateAdd(intermediate, calendar.DateDuration{Months: 1}, calendar.Constrain)
		if addErr != nil {
			return YearMonth{}, addErr
		}

		endOfMonth := calendar.BalanceISODate(nextMonth.Year(), nextMonth.Month(), nextMonth.Day()-1)

		fieldsCopy.SetInt(calendar.FieldDay, cal.Day(endOfMonth))

		anchor, err = cal.DateFromFields(fieldsCopy, calendar.Constrain)
		if err != nil {
			return YearMonth{}, err
		}
	}

	added, err := cal.DateAdd(anchor, toAdd, overflow)
	if err != nil {
		return YearMonth{}, err
	}

	// Re-extract only the original field names so fields the year-month never
	// had, like the day, do not leak into the result.
	addedFields := dateFields(cal, added).Pick(fieldNames...)

	return resolveFromFields(cal, addedFields, overflow)
}
