package yearmonth

import (
	"fmt"
)

// RoundingMode selects how a fractional duration unit is resolved.
// The zero value is RoundTrunc, the default for difference operations.
type RoundingMode int

const (
	RoundTrunc RoundingMode = iota
	RoundCeil
	RoundFloor
	RoundExpand
	RoundHalfCeil
	RoundHalfFloor
	RoundHalfTrunc
	RoundHalfExpand
	RoundHalfEven
)

func (m RoundingMode) String() string {
	switch m {
	case RoundTrunc:
		return "trunc"
	case RoundCeil:
		return "ceil"
	case RoundFloor:
		return "floor"
	case RoundExpand:
		return "expand"
	case RoundHalfCeil:
		return "halfCeil"
	case RoundHalfFloor:
		return "halfFloor"
	case RoundHalfTrunc:
		return "halfTrunc"
	case RoundHalfExpand:
		return "halfExpand"
	case RoundHalfEven:
		return "halfEven"
	default:
		return fmt.Sprintf("roundingMode(%d)", int(m))
	}
}

// ShowCalendar selects whether the calendar annotation is included when a
// YearMonth is rendered as a string. The zero value is ShowCalendarAuto.
type ShowCalendar int

const (
	// ShowCalendarAuto annotates only non-default calendars.
	ShowCalendarAuto ShowCalendar = iota
	// ShowCalendarAlways annotates unconditionally.
	ShowCalendarAlways
	// ShowCalendarNever omits the annotation.
	ShowCalendarNever
	// ShowCalendarCritical annotates with the critical flag, "[!u-ca=...]".
	ShowCalendarCritical
)

// ArithmeticOptions configures From, With, Add and Subtract.
// The zero value selects Constrain overflow.
type ArithmeticOptions struct {
	Overflow Overflow
}

// DifferenceOptions configures Until and Since. Zero values select the
// defaults: smallest unit month, largest unit year, trunc rounding with
// increment 1.
type DifferenceOptions struct {
	SmallestUnit      Unit
	LargestUnit       Unit
	RoundingMode      RoundingMode
	RoundingIncrement int
}

// FormatOptions configures Format.
type FormatOptions struct {
	Calendar ShowCalendar
}

const maxRoundingIncrement = 1_000_000_000

type differenceSettings struct {
	smallestUnit Unit
	largestUnit  Unit
	roundingMode RoundingMode
	increment    int64
}

func resolveOverflow(options []ArithmeticOptions) (Overflow, error) {
	if len(options) == 0 {
		return Constrain, nil
	}

	overflow := options[0].Overflow
	if overflow != Constrain && overflow != Reject {
		return Constrain, fmt.Errorf("%w: overflow %d", ErrInvalidOption, int(overflow))
	}

	return overflow, nil
}

// resolveDifferenceSettings validates and defaults the difference options.
// Only month and year are meaningful units for year-month differences.
func resolveDifferenceSettings(options []DifferenceOptions) (differenceSettings, error) {
	settings := differenceSettings{
		smallestUnit: UnitMonth,
		largestUnit:  UnitYear,
		roundingMode: RoundTrunc,
		increment:    1,
	}

	if len(options) == 0 {
		return settings, nil
	}

	opts := options[0]

	if opts.SmallestUnit != UnitAuto {
		if opts.SmallestUnit != UnitMonth && opts.SmallestUnit != UnitYear {
			return settings, fmt.Errorf("%w: smallestUnit %s", ErrInvalidOption, opts.SmallestUnit)
		}

		settings.smallestUnit = opts.SmallestUnit
	}

	if settings.smallestUnit == UnitYear {
		settings.largestUnit = UnitYear
	}

	if opts.LargestUnit != UnitAuto {
		if opts.LargestUnit != UnitMonth && opts.LargestUnit != UnitYear {
			return settings, fmt.Errorf("%w: largestUnit %s", ErrInvalidOption, opts.LargestUnit)
		}

		if opts.LargestUnit < settings.smallestUnit {
			return settings, fmt.Errorf("%w: smallestUnit %s, largestUnit %s",
				ErrUnitMismatch, settings.smallestUnit, opts.LargestUnit)
		}

		settings.largestUnit = opts.LargestUnit
	}

	if opts.RoundingMode < RoundTrunc || opts.RoundingMode > RoundHalfEven {
		return settings, fmt.Errorf("%w: roundingMode %d", ErrInvalidOption, int(opts.RoundingMode))
	}

	settings.roundingMode = opts.RoundingMode

	if opts.RoundingIncrement != 0 {
		if opts.RoundingIncrement < 0 || opts.RoundingIncrement > maxRoundingIncrement {
			return settings, fmt.Errorf("%w: %d", ErrInvalidIncrement, opts.RoundingIncrement)
		}

		settings.increment = int64(opts.RoundingIncrement)
	}

	return settings, nil
}

func resolveShowCalendar(options []FormatOptions) (ShowCalendar, error) {
	if len(options) == 0 {
		return ShowCalendarAuto, nil
	}

	show := options[0].Calendar
	if show < ShowCalendarAuto || show > ShowCalendarCritical {
		return ShowCalendarAuto, fmt.Errorf("%w: calendarName %d", ErrInvalidOption, int(show))
	}

	return show, nil
}
