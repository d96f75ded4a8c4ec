package yearmonth

import (
	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

// FieldSource yields calendar field values for resolution into a year-month.
// YearMonth and Partial both implement it; any user type may as well.
type FieldSource interface {
	CalendarFields() calendar.Fields
}

// CalendarProvider is an optional extension of FieldSource: a source that
// carries its own calendar. Sources without one resolve under ISO 8601.
type CalendarProvider interface {
	Calendar() calendar.Calendar
}

// Partial is a partial set of calendar fields, used for With and as an object
// input to From. Nil pointers mean "field absent". A non-nil Calendar selects
// the calendar system a From resolution happens under.
type Partial struct {
	Calendar calendar.Calendar

	Era       *string
	EraYear   *int
	Year      *int
	Month     *int
	MonthCode *string
	Day       *int
}

// CalendarFields returns the present fields.
func (p Partial) CalendarFields() calendar.Fields {
	fields := calendar.Fields{}

	if p.Era != nil {
		fields.SetString(calendar.FieldEra, *p.Era)
	}

	if p.EraYear != nil {
		fields.SetInt(calendar.FieldEraYear, *p.EraYear)
	}

	if p.Year != nil {
		fields.SetInt(calendar.FieldYear, *p.Year)
	}

	if p.Month != nil {
		fields.SetInt(calendar.FieldMonth, *p.Month)
	}

	if p.MonthCode != nil {
		fields.SetString(calendar.FieldMonthCode, *p.MonthCode)
	}

	if p.Day != nil {
		fields.SetInt(calendar.FieldDay, *p.Day)
	}

	return fields
}

// Int returns a pointer to the given int, for filling Partial literals.
func Int(value int) *int {
	return &value
}

// String returns a pointer to the given string, for filling Partial literals.
func String(value string) *string {
	return &value
}

// dateFields projects a calendar day into its calendar field values.
// Era fields are included only for calendars that have them.
func dateFields(cal calendar.Calendar, date calendar.Date) calendar.Fields {
	fields := calendar.Fields{}

	if era, ok := cal.Era(date); ok {
		fields.SetString(calendar.FieldEra, era)
	}

	if eraYear, ok := cal.EraYear(date); ok {
		fields.SetInt(calendar.FieldEraYear, eraYear)
	}

	fields.SetInt(calendar.FieldYear, cal.Year(date))
	fields.SetInt(calendar.FieldMonth, cal.Month(date))
	fields.SetString(calendar.FieldMonthCode, cal.MonthCode(date))
	fields.SetInt(calendar.FieldDay, cal.Day(date))

	return fields
}

// yearMonthReceiverFields are the fields a year-month contributes to
// operations that rebuild a date from it. Month is derivable from the month
// code and deliberately not part of this set.
var yearMonthReceiverFields = []calendar.Field{
	calendar.FieldEra,
	calendar.FieldEraYear,
	calendar.FieldMonthCode,
	calendar.FieldYear,
}

// yearMonthInputFields are the fields consumed from arbitrary year-month-like
// sources, where both month spellings are accepted.
var yearMonthInputFields = []calendar.Field{
	calendar.FieldEra,
	calendar.FieldEraYear,
	calendar.FieldYear,
	calendar.FieldMonth,
	calendar.FieldMonthCode,
}
