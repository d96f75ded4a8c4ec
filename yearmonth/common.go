package yearmonth

import (
	"fmt"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

// The two error classes, re-exported from the calendar boundary so callers
// can classify every failure of this package with errors.Is.
var (
	ErrRange = calendar.ErrRange
	ErrType  = calendar.ErrType
)

// ErrInvalidDate is re-exported: the (year, month, day) triple does not denote
// a real calendar day.
var ErrInvalidDate = calendar.ErrInvalidDate

var ErrYearMonthOutOfRange = fmt.Errorf("%w: year-month is outside the representable range", ErrRange)
var ErrCalendarMismatch = fmt.Errorf("%w: calendars are incompatible", ErrRange)
var ErrInvalidOption = fmt.Errorf("%w: invalid option value", ErrRange)
var ErrInvalidIncrement = fmt.Errorf("%w: invalid rounding increment", ErrRange)
var ErrUnitMismatch = fmt.Errorf("%w: smallest unit is coarser than largest unit", ErrRange)
var ErrInvalidDuration = fmt.Errorf("%w: duration components have mixed signs", ErrRange)
var ErrInvalidYearMonthString = fmt.Errorf("%w: invalid year-month string", ErrRange)
var ErrNoRelevantFields = fmt.Errorf("%w: no relevant fields in partial update", ErrType)
var ErrInvalidSource = fmt.Errorf("%w: cannot convert value to a year-month", ErrType)
var ErrNilCalendar = fmt.Errorf("%w: calendar must not be nil", ErrType)

// Aliases for the shared calendar boundary types, so most callers only import
// this package.
type (
	Overflow = calendar.Overflow
	Unit     = calendar.Unit
)

const (
	Constrain = calendar.Constrain
	Reject    = calendar.Reject
)

const (
	UnitAuto  = calendar.UnitAuto
	UnitMonth = calendar.UnitMonth
	UnitYear  = calendar.UnitYear
)
