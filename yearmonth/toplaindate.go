package yearmonth

import (
	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

// ToPlainDate combines the year-month with a day into a full calendar day,
// resolved through the value's calendar with Constrain overflow: a day past
// the end of the month clamps to its last day. The returned date is to be
// interpreted in the value's calendar.
func (ym YearMonth) ToPlainDate(day int) (calendar.Date, error) {
	cal := ym.Calendar()

	receiverFields := ym.CalendarFields().Pick(yearMonthReceiverFields...)
	fieldNames := append([]calendar.Field(nil), receiverFields.Keys()...)

	inputFields := calendar.Fields{}
	inputFields.SetInt(calendar.FieldDay, day)

	merged := cal.MergeFields(receiverFields, inputFields)
	merged = merged.Pick(append(fieldNames, calendar.FieldDay)...)

	return cal.DateFromFields(merged, calendar.Constrain)
}
