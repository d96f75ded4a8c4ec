package calendar

import (
	"fmt"
)

// iso8601 implements Calendar for the proleptic ISO calendar. Its field space
// is the ISO field space, so the accessors are direct reads.
type iso8601 struct{}

var isoSingleton Calendar = iso8601{}

// ISO8601 returns the ISO calendar, the default calendar system everywhere.
func ISO8601() Calendar {
	return isoSingleton
}

func (iso8601) Identifier() string {
	return ISO8601ID
}

// resolveMonthFields resolves the month/monthCode pair shared by the built-in
// calendars: a month code wins and must agree with an also-present month; a
// bare month is regulated against the overflow policy.
func resolveMonthFields(fields Fields, overflow Overflow) (int, error) {
	code, hasCode := fields.MonthCode()
	month, hasMonth := fields.Month()

	if hasCode {
		fromCode, err := MonthCodeToMonth(code)
		if err != nil {
			return 0, err
		}

		if fromCode > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMonthCode, code)
		}

		if hasMonth && month != fromCode {
			return 0, fmt.Errorf("%w: month %d, monthCode %q", ErrMonthConflict, month, code)
		}

		return fromCode, nil
	}

	if !hasMonth {
		return 0, fmt.Errorf("%w: month or monthCode", ErrMissingField)
	}

	return regulateISOMonth(month, overflow)
}

func (c iso8601) DateFromFields(fields Fields, overflow Overflow) (Date, error) {
	year, ok := fields.Year()
	if !ok {
		return Date{}, fmt.Errorf("%w: year", ErrMissingField)
	}

	month, err := resolveMonthFields(fields, overflow)
	if err != nil {
		return Date{}, err
	}

	day, ok := fields.Day()
	if !ok {
		return Date{}, fmt.Errorf("%w: day", ErrMissingField)
	}

	return regulateISODate(year, month, day, overflow)
}

func (c iso8601) YearMonthFromFields(fields Fields, overflow Overflow) (Date, error) {
	year, ok := fields.Year()
	if !ok {
		return Date{}, fmt.Errorf("%w: year", ErrMissingField)
	}

	month, err := resolveMonthFields(fields, overflow)
	if err != nil {
		return Date{}, err
	}

	// The ISO reference day is the first of the month.
	return Date{year: year, month: month, day: 1}, nil
}

func (c iso8601) DateAdd(date Date, duration DateDuration, overflow Overflow) (Date, error) {
	return addISODate(date, duration, overflow)
}

func (c iso8601) DateUntil(one Date, two Date, largestUnit Unit) (DateDuration, error) {
	if largestUnit == UnitAuto {
		largestUnit = UnitDay
	}

	return differenceISODate(one, two, largestUnit), nil
}

// MergeFields copies the base fields, drops month and monthCode when the
// partial supplies either (they are mutually derivable), then lays the partial
// fields on top.
func (c iso8601) MergeFields(base Fields, partial Fields) Fields {
	return mergeMonthFields(base, partial)
}

func mergeMonthFields(base Fields, partial Fields) Fields {
	merged := base.Clone()

	if partial.Has(FieldMonth) || partial.Has(FieldMonthCode) {
		merged.Delete(FieldMonth)
		merged.Delete(FieldMonthCode)
	}

	for _, k := range partial.Keys() {
		if v, ok := partial.Int(k); ok {
			merged.SetInt(k, v)
			continue
		}

		if v, ok := partial.String(k); ok {
			merged.SetString(k, v)
		}
	}

	return merged
}

func (c iso8601) Year(date Date) int {
	return date.Year()
}

func (c iso8601) Month(date Date) int {
	return date.Month()
}

func (c iso8601) MonthCode(date Date) string {
	return MonthToMonthCode(date.Month())
}

func (c iso8601) Day(date Date) int {
	return date.Day()
}

func (c iso8601) Era(date Date) (string, bool) {
	return "", false
}

func (c iso8601) EraYear(date Date) (int, bool) {
	return 0, false
}

func (c iso8601) DaysInYear(date Date) int {
	return ISODaysInYear(date.Year())
}

func (c iso8601) DaysInMonth(date Date) int {
	return ISODaysInMonth(date.Year(), date.Month())
}

func (c iso8601) MonthsInYear(date Date) int {
	return 12
}

func (c iso8601) InLeapYear(date Date) bool {
	return IsISOLeapYear(date.Year())
}
