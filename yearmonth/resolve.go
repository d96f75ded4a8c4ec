package yearmonth

import (
	"fmt"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

// From resolves an arbitrary value into a YearMonth.
//
// Accepted inputs:
//   - YearMonth (or *YearMonth): copied directly, without re-derivation
//   - FieldSource (e.g. Partial): resolved through the source's calendar, or
//     ISO 8601 if the source carries none
//   - string: parsed as an ISO year-month string with an optional calendar
//     annotation, then re-resolved through the calendar so the result is
//     indistinguishable from equivalent field input
//
// Anything else fails with an error matching ErrType. The overflow option
// applies to field input only; parsed strings always resolve with Constrain.
func From(item any, options ...ArithmeticOptions) (YearMonth, error) {
	overflow, err := resolveOverflow(options)
	if err != nil {
		return YearMonth{}, err
	}

	switch v := item.(type) {
	case YearMonth:
		return v.normalized(), nil

	case *YearMonth:
		if v == nil {
			return YearMonth{}, fmt.Errorf("%w: nil *YearMonth", ErrInvalidSource)
		}

		return v.normalized(), nil

	case string:
		return fromString(v)

	case FieldSource:
		return fromFieldSource(v, overflow)

	default:
		return YearMonth{}, fmt.Errorf("%w: %T", ErrInvalidSource, item)
	}
}

// normalized pins the default calendar onto a value so later delegation never
// sees a nil calendar.
func (ym YearMonth) normalized() YearMonth {
	ym.cal = ym.Calendar()

	return ym
}

func fromFieldSource(source FieldSource, overflow Overflow) (YearMonth, error) {
	cal := calendar.ISO8601()

	switch src := source.(type) {
	case Partial:
		if src.Calendar != nil {
			cal = src.Calendar
		}
	case CalendarProvider:
		if src.Calendar() != nil {
			cal = src.Calendar()
		}
	}

	fields := source.CalendarFields().Pick(yearMonthInputFields...)

	return resolveFromFields(cal, fields, overflow)
}

func fromString(text string) (YearMonth, error) {
	parsed, err := parseYearMonthString(text)
	if err != nil {
		return YearMonth{}, err
	}

	cal := calendar.ISO8601()
	if parsed.calendarID != "" {
		cal, err = calendar.New(parsed.calendarID)
		if err != nil {
			return YearMonth{}, err
		}
	}

	provisional, err := buildFromDate(cal, parsed.date)
	if err != nil {
		return YearMonth{}, err
	}

	// Re-resolve the provisional value through the calendar so parsed input is
	// indistinguishable from equivalent field input.
	fields := provisional.CalendarFields().Pick(yearMonthInputFields...)

	return resolveFromFields(cal, fields, Constrain)
}

// resolveFromFields asks the calendar for the anchoring ISO date of the field
// set and wraps it, enforcing the year-month range.
func resolveFromFields(cal calendar.Calendar, fields calendar.Fields, overflow Overflow) (YearMonth, error) {
	date, err := cal.YearMonthFromFields(fields, overflow)
	if err != nil {
		return YearMonth{}, err
	}

	return buildFromDate(cal, date)
}
