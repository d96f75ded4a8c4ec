package calendar

import (
	"fmt"
)

// Era identifiers of the Gregorian calendar.
const (
	EraCE  = "ce"
	EraBCE = "bce"
)

// gregory implements Calendar for the proleptic Gregorian calendar. It shares
// the ISO month math and adds CE/BCE eras: the signed year 0 is 1 BCE, year -1
// is 2 BCE, and so on.
type gregory struct{}

var gregorySingleton Calendar = gregory{}

// Gregory returns the Gregorian calendar.
func Gregory() Calendar {
	return gregorySingleton
}

func (gregory) Identifier() string {
	return GregoryID
}

// resolveGregorianYear resolves the signed year from either the year field or
// the era + eraYear pair. When both are present they must agree.
func resolveGregorianYear(fields Fields) (int, error) {
	era, hasEra := fields.Era()
	eraYear, hasEraYear := fields.EraYear()
	year, hasYear := fields.Year()

	if hasEra != hasEraYear {
		return 0, fmt.Errorf("%w: era and eraYear must be given together", ErrMissingField)
	}

	if !hasEra {
		if !hasYear {
			return 0, fmt.Errorf("%w: year", ErrMissingField)
		}

		return year, nil
	}

	var fromEra int
	switch era {
	case EraCE:
		fromEra = eraYear
	case EraBCE:
		fromEra = 1 - eraYear
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidEra, era)
	}

	if hasYear && year != fromEra {
		return 0, fmt.Errorf("%w: year %d, era %q year %d", ErrEraYearConflict, year, era, eraYear)
	}

	return fromEra, nil
}

func (c gregory) DateFromFields(fields Fields, overflow Overflow) (Date, error) {
	year, err := resolveGregorianYear(fields)
	if err != nil {
		return Date{}, err
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

func (c gregory) YearMonthFromFields(fields Fields, overflow Overflow) (Date, error) {
	year, err := resolveGregorianYear(fields)
	if err != nil {
		return Date{}, err
	}

	month, err := resolveMonthFields(fields, overflow)
	if err != nil {
		return Date{}, err
	}

	return Date{year: year, month: month, day: 1}, nil
}

func (c gregory) DateAdd(date Date, duration DateDuration, overflow Overflow) (Date, error) {
	return addISODate(date, duration, overflow)
}

func (c gregory) DateUntil(one Date, two Date, largestUnit Unit) (DateDuration, error) {
	if largestUnit == UnitAuto {
		largestUnit = UnitDay
	}

	return differenceISODate(one, two, largestUnit), nil
}

// MergeFields resolves the month/monthCode conflict like the ISO calendar and
// additionally drops era + eraYear when the partial supplies a year (and vice
// versa), since the two representations are mutually derivable.
func (c gregory) MergeFields(base Fields, partial Fields) Fields {
	adjusted := base.Clone()

	if partial.Has(FieldYear) {
		adjusted.Delete(FieldEra)
		adjusted.Delete(FieldEraYear)
	}

	if partial.Has(FieldEra) || partial.Has(FieldEraYear) {
		adjusted.Delete(FieldYear)
	}

	return mergeMonthFields(adjusted, partial)
}

func (c gregory) Year(date Date) int {
	return date.Year()
}

func (c gregory) Month(date Date) int {
	return date.Month()
}

func (c gregory) MonthCode(date Date) string {
	return MonthToMonthCode(date.Month())
}

func (c gregory) Day(date Date) int {
	return date.Day()
}

func (c gregory) Era(date Date) (string, bool) {
	if date.Year() > 0 {
		return EraCE, true
	}

	return EraBCE, true
}

func (c gregory) EraYear(date Date) (int, bool) {
	if date.Year() > 0 {
		return date.Year(), true
	}

	return 1 - date.Year(), true
}

func (c gregory) DaysInYear(date Date) int {
	return ISODaysInYear(date.Year())
}

func (c gregory) DaysInMonth(date Date) int {
	return ISODaysInMonth(date.Year(), date.Month())
}

func (c gregory) MonthsInYear(date Date) int {
	return 12
}

func (c gregory) InLeapYear(date Date) bool {
	return IsISOLeapYear(date.Year())
}
