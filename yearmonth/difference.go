package yearmonth

import (
	"fmt"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

type differenceOperation int

const (
	operationUntil differenceOperation = iota
	operationSince
)

// Until computes the signed duration from this value to the other, expressed
// in years and months. The other value must be in the same calendar system.
//
// By default the result carries whole months balanced into years (largest unit
// year) and is truncated at month precision; the options select coarser
// rounding.
func (ym YearMonth) Until(other any, options ...DifferenceOptions) (Duration, error) {
	return ym.difference(operationUntil, other, options)
}

// Since computes the signed duration from the other value to this one.
// It is the negation of Until for the same pair.
func (ym YearMonth) Since(other any, options ...DifferenceOptions) (Duration, error) {
	return ym.difference(operationSince, other, options)
}

func (ym YearMonth) difference(op differenceOperation, other any, options []DifferenceOptions) (Duration, error) {
	resolved, err := From(other)
	if err != nil {
		return Duration{}, err
	}

	cal := ym.Calendar()
	if !calendar.Equal(cal, resolved.Calendar()) {
		return Duration{}, fmt.Errorf("%w: %s vs %s",
			ErrCalendarMismatch, cal.Identifier(), resolved.Calendar().Identifier())
	}

	settings, err := resolveDifferenceSettings(options)
	if err != nil {
		return Duration{}, err
	}

	if ym.isoDate() == resolved.isoDate() {
		return Duration{}, nil
	}

	// Project both year-months to the first day of their months under the
	// calendar's own field semantics, then difference the projected dates.
	// Both being month starts, the raw result has zero weeks and days.
	thisFields := ym.CalendarFields().Pick(yearMonthReceiverFields...)
	fieldNames := append([]calendar.Field(nil), thisFields.Keys()...)

	thisFields.SetInt(calendar.FieldDay, 1)

	thisDate, err := cal.DateFromFields(thisFields, calendar.Constrain)
	if err != nil {
		return Duration{}, err
	}

	otherFields := resolved.CalendarFields().Pick(fieldNames...)
	otherFields.SetInt(calendar.FieldDay, 1)

	otherDate, err := cal.DateFromFields(otherFields, calendar.Constrain)
	if err != nil {
		return Duration{}, err
	}

	until, err := cal.DateUntil(thisDate, otherDate, settings.largestUnit)
	if err != nil {
		return Duration{}, err
	}

	years, months := until.Years, until.Months

	if settings.smallestUnit != UnitMonth || settings.increment != 1 {
		years, months, err = roundRelativeYearMonth(cal, thisDate, otherDate, years, months, settings)
		if err != nil {
			return Duration{}, err
		}
	}

	if op == operationSince {
		years, months = -years, -months
	}

	return Duration{Years: years, Months: months}, nil
}

// roundRelativeYearMonth refines an exact (years, months) difference between
// two month-start dates to the requested unit and increment.
//
// Rounding to years interpolates between the bracketing whole-year steps by
// day count, so the fractional year reflects the calendar's actual year length
// at that point in time.
func roundRelativeYearMonth(
	cal calendar.Calendar,
	start calendar.Date,
	target calendar.Date,
	years int64,
	months int64,
	settings differenceSettings,
) (int64, int64, error) {

	sign := int64(calendar.DateDuration{Years: years, Months: months}.Sign())
	if sign == 0 {
		return 0, 0, nil
	}

	if settings.smallestUnit == UnitYear {
		lower, err := cal.DateAdd(start, calendar.DateDuration{Years: years}, calendar.Constrain)
		if err != nil {
			return 0, 0, err
		}

		upper, err := cal.DateAdd(start, calendar.DateDuration{Years: years + sign}, calendar.Constrain)
		if err != nil {
			return 0, 0, err
		}

		progress, err := cal.DateUntil(lower, target, calendar.UnitDay)
		if err != nil {
			return 0, 0, err
		}

		span, err := cal.DateUntil(lower, upper, calendar.UnitDay)
		if err != nil {
			return 0, 0, err
		}

		// Fractional years as an exact ratio. The fractional step advances in
		// the sign direction, so the progress term carries the sign explicitly.
		numerator := years*span.Days + sign*progress.Days
		denominator := span.Days
		if denominator < 0 {
			numerator, denominator = -numerator, -denominator
		}

		rounded := roundQuotient(numerator, denominator*settings.increment, settings.roundingMode)

		return rounded * settings.increment, 0, nil
	}

	// Month precision with an increment: months between month starts are
	// integral, so rounding is pure integer arithmetic.
	months = roundQuotient(months, settings.increment, settings.roundingMode) * settings.increment

	if settings.largestUnit == UnitYear {
		monthsPerYear := int64(cal.MonthsInYear(start))
		years += months / monthsPerYear
		months %= monthsPerYear
	}

	return years, months, nil
}

// roundQuotient rounds num/den to an integer under the given mode.
// den must be positive.
func roundQuotient(num int64, den int64, mode RoundingMode) int64 {
	quotient := num / den
	remainder := num % den

	if remainder == 0 {
		return quotient
	}

	negative := num < 0

	// The two candidates: trunc (quotient) and away-from-zero.
	away := quotient + 1
	if negative {
		away = quotient - 1
	}

	switch mode {
	case RoundTrunc:
		return quotient
	case RoundCeil:
		if negative {
			return quotient
		}

		return away
	case RoundFloor:
		if negative {
			return away
		}

		return quotient
	case RoundExpand:
		return away
	}

	// Half modes: compare twice the remainder against the denominator.
	twice := remainder * 2
	if twice < 0 {
		twice = -twice
	}

	switch {
	case twice < den:
		return quotient
	case twice > den:
		return away
	}

	// Exact tie.
	switch mode {
	case RoundHalfCeil:
		if negative {
			return quotient
		}

		return away
	case RoundHalfFloor:
		if negative {
			return away
		}

		return quotient
	case RoundHalfTrunc:
		return quotient
	case RoundHalfExpand:
		return away
	default: // RoundHalfEven
		if quotient%2 == 0 {
			return quotient
		}

		return away
	}
}
