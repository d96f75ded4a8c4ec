package calendar

import (
	"errors"
	"fmt"
)

// ErrRange is the class sentinel for out-of-range failures: values that have
// the right shape but denote something that does not exist or is not
// representable. Matched with errors.Is.
var ErrRange = errors.New("range error")

// ErrType is the class sentinel for wrong-shape failures: missing required
// fields or inputs of an unusable kind. Matched with errors.Is.
var ErrType = errors.New("type error")

var ErrInvalidDate = fmt.Errorf("%w: no such day exists in the given month and year", ErrRange)
var ErrDateOutOfRange = fmt.Errorf("%w: date is outside the representable range", ErrRange)
var ErrInvalidMonth = fmt.Errorf("%w: month must be between 1 and 12", ErrRange)
var ErrInvalidMonthCode = fmt.Errorf("%w: invalid month code", ErrRange)
var ErrMonthConflict = fmt.Errorf("%w: month and monthCode disagree", ErrRange)
var ErrInvalidEra = fmt.Errorf("%w: unknown era", ErrRange)
var ErrEraYearConflict = fmt.Errorf("%w: era year and year disagree", ErrRange)
var ErrMissingField = fmt.Errorf("%w: required calendar field is missing", ErrType)
var ErrUnsupportedCalendar = fmt.Errorf("%w: unsupported calendar identifier", ErrRange)

// Overflow selects the behavior when resolved field values fall outside their
// natural range: Constrain clamps to the nearest valid value, Reject fails.
type Overflow int

const (
	Constrain Overflow = iota
	Reject
)

func (o Overflow) String() string {
	switch o {
	case Constrain:
		return "constrain"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("overflow(%d)", int(o))
	}
}

// Unit is a date duration unit, ordered from finest to coarsest.
// UnitAuto stands for "not specified" and lets an operation pick its default.
type Unit int

const (
	UnitAuto Unit = iota
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}
