package yearmonth

import (
	"fmt"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

// The supported year range, bounded by the representable instant range
// divided into months: -271821-04 through 275760-09.
const (
	minISOYear = -271821
	maxISOYear = 275760
)

// YearMonth is an immutable year-month value: an ISO (year, month, reference
// day) triple bound to a calendar system.
//
// The reference day anchors the year-month to a specific calendar day, which
// non-ISO calendars need to derive their fields unambiguously. It takes part
// in ordering and equality but is not an observable field of its own beyond
// the calendar's day accessor.
//
// The zero value is not a valid YearMonth; construct values with
// BuildYearMonth or From.
type YearMonth struct {
	isoYear      int
	isoMonth     int
	referenceDay int
	cal          calendar.Calendar
}

type buildConfig struct {
	cal          calendar.Calendar
	referenceDay int
}

// BuildOption defines a functional option for BuildYearMonth.
type BuildOption func(*buildConfig) error

// WithCalendar binds the year-month to the given calendar system.
func WithCalendar(cal calendar.Calendar) BuildOption {
	return func(cfg *buildConfig) error {
		if cal == nil {
			return ErrNilCalendar
		}

		cfg.cal = cal

		return nil
	}
}

// WithCalendarID binds the year-month to the calendar system with the given
// identifier, resolved through the calendar lookup.
func WithCalendarID(identifier string) BuildOption {
	return func(cfg *buildConfig) error {
		cal, err := calendar.New(identifier)
		if err != nil {
			return err
		}

		cfg.cal = cal

		return nil
	}
}

// WithReferenceDay anchors the year-month to the given day of its month
// instead of the default day 1.
func WithReferenceDay(day int) BuildOption {
	return func(cfg *buildConfig) error {
		cfg.referenceDay = day

		return nil
	}
}

// BuildYearMonth is the factory method for YearMonth.
//
// It validates that the ISO triple (year, month, reference day) denotes a real
// calendar day and that the year-month lies within the representable range.
// Without options the calendar is ISO 8601 and the reference day is 1.
func BuildYearMonth(isoYear int, isoMonth int, opts ...BuildOption) (YearMonth, error) {
	cfg := buildConfig{
		cal:          calendar.ISO8601(),
		referenceDay: 1,
	}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return YearMonth{}, err
		}
	}

	if _, err := calendar.NewDate(isoYear, isoMonth, cfg.referenceDay); err != nil {
		return YearMonth{}, err
	}

	if !ISOYearMonthWithinLimits(isoYear, isoMonth) {
		return YearMonth{}, fmt.Errorf("%w: %s-%02d",
			ErrYearMonthOutOfRange, calendar.PadISOYear(isoYear), isoMonth)
	}

	return YearMonth{
		isoYear:      isoYear,
		isoMonth:     isoMonth,
		referenceDay: cfg.referenceDay,
		cal:          cfg.cal,
	}, nil
}

// buildFromDate wraps a calendar-resolved ISO date into a YearMonth, keeping
// its day as the reference day.
func buildFromDate(cal calendar.Calendar, date calendar.Date) (YearMonth, error) {
	if !ISOYearMonthWithinLimits(date.Year(), date.Month()) {
		return YearMonth{}, fmt.Errorf("%w: %s-%02d",
			ErrYearMonthOutOfRange, calendar.PadISOYear(date.Year()), date.Month())
	}

	return YearMonth{
		isoYear:      date.Year(),
		isoMonth:     date.Month(),
		referenceDay: date.Day(),
		cal:          cal,
	}, nil
}

// ISOYearMonthWithinLimits reports whether the (year, month) pair lies within
// the representable year-month range.
//
// The boundary is asymmetric because the underlying range is defined on
// instants, not whole years: a year-month is in range only if at least one day
// of that month falls inside the instant range. That admits -271821 only from
// April and 275760 only through September.
func ISOYearMonthWithinLimits(year int, month int) bool {
	if month < 1 || month > 12 {
		return false
	}

	if year < minISOYear || year > maxISOYear {
		return false
	}

	if year == minISOYear && month < 4 {
		return false
	}

	if year == maxISOYear && month > 9 {
		return false
	}

	return true
}

// ISOYear returns the year of the underlying ISO triple.
func (ym YearMonth) ISOYear() int {
	return ym.isoYear
}

// ISOMonth returns the month of the underlying ISO triple.
func (ym YearMonth) ISOMonth() int {
	return ym.isoMonth
}

// ReferenceDay returns the anchoring day of the underlying ISO triple.
func (ym YearMonth) ReferenceDay() int {
	return ym.referenceDay
}

// Calendar returns the calendar system the value is bound to.
func (ym YearMonth) Calendar() calendar.Calendar {
	if ym.cal == nil {
		return calendar.ISO8601()
	}

	return ym.cal
}

func (ym YearMonth) isoDate() calendar.Date {
	date, _ := calendar.NewDate(ym.isoYear, ym.isoMonth, ym.referenceDay)

	return date
}

// CalendarID returns the identifier of the bound calendar, e.g. "iso8601".
func (ym YearMonth) CalendarID() string {
	return ym.Calendar().Identifier()
}

// Era returns the calendar era of the value, or ok=false for calendars
// without eras.
func (ym YearMonth) Era() (string, bool) {
	return ym.Calendar().Era(ym.isoDate())
}

// EraYear returns the year counted within the era, or ok=false for calendars
// without eras.
func (ym YearMonth) EraYear() (int, bool) {
	return ym.Calendar().EraYear(ym.isoDate())
}

// Year returns the signed calendar year.
func (ym YearMonth) Year() int {
	return ym.Calendar().Year(ym.isoDate())
}

// Month returns the ordinal calendar month, starting at 1.
func (ym YearMonth) Month() int {
	return ym.Calendar().Month(ym.isoDate())
}

// MonthCode returns the calendar month code, e.g. "M01".
func (ym YearMonth) MonthCode() string {
	return ym.Calendar().MonthCode(ym.isoDate())
}

// DaysInYear returns the number of days in the value's calendar year.
func (ym YearMonth) DaysInYear() int {
	return ym.Calendar().DaysInYear(ym.isoDate())
}

// DaysInMonth returns the number of days in the value's calendar month.
func (ym YearMonth) DaysInMonth() int {
	return ym.Calendar().DaysInMonth(ym.isoDate())
}

// MonthsInYear returns the number of months in the value's calendar year.
func (ym YearMonth) MonthsInYear() int {
	return ym.Calendar().MonthsInYear(ym.isoDate())
}

// InLeapYear reports whether the value's calendar year is a leap year.
func (ym YearMonth) InLeapYear() bool {
	return ym.Calendar().InLeapYear(ym.isoDate())
}

// CalendarFields projects the value into its calendar field values.
func (ym YearMonth) CalendarFields() calendar.Fields {
	return dateFields(ym.Calendar(), ym.isoDate())
}
