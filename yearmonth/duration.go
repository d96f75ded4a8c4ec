package yearmonth

import (
	"fmt"
	"strings"
)

// Duration is a signed duration record. Year-month arithmetic consumes every
// component (time components are balanced into whole days first) but only ever
// produces years and months.
//
// A well-formed Duration has all nonzero components agreeing in sign.
type Duration struct {
	Years  int64
	Months int64
	Weeks  int64
	Days   int64

	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
	Nanoseconds  int64
}

const (
	nanosPerSecond = int64(1_000_000_000)
	nanosPerDay    = 86_400 * nanosPerSecond
)

func (d Duration) components() []int64 {
	return []int64{
		d.Years, d.Months, d.Weeks, d.Days,
		d.Hours, d.Minutes, d.Seconds, d.Milliseconds, d.Microseconds, d.Nanoseconds,
	}
}

// Sign returns the sign of the first nonzero component, in coarsest-to-finest
// order, or 0 for the zero duration.
func (d Duration) Sign() int {
	for _, c := range d.components() {
		if c > 0 {
			return 1
		}

		if c < 0 {
			return -1
		}
	}

	return 0
}

// IsZero reports whether every component is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// Negated returns the duration with every component negated.
func (d Duration) Negated() Duration {
	return Duration{
		Years:        -d.Years,
		Months:       -d.Months,
		Weeks:        -d.Weeks,
		Days:         -d.Days,
		Hours:        -d.Hours,
		Minutes:      -d.Minutes,
		Seconds:      -d.Seconds,
		Milliseconds: -d.Milliseconds,
		Microseconds: -d.Microseconds,
		Nanoseconds:  -d.Nanoseconds,
	}
}

// validate rejects durations whose nonzero components disagree in sign.
func (d Duration) validate() error {
	sign := 0
	for _, c := range d.components() {
		if c == 0 {
			continue
		}

		cur := 1
		if c < 0 {
			cur = -1
		}

		if sign == 0 {
			sign = cur
			continue
		}

		if cur != sign {
			return fmt.Errorf("%w: %s", ErrInvalidDuration, d)
		}
	}

	return nil
}

// timeDays balances the time components into a whole number of days,
// truncating toward zero.
func (d Duration) timeDays() int64 {
	total := ((d.Hours*60+d.Minutes)*60+d.Seconds)*nanosPerSecond +
		d.Milliseconds*1_000_000 + d.Microseconds*1_000 + d.Nanoseconds

	return total / nanosPerDay
}

// String renders the duration in ISO 8601 form, e.g. "P5Y2M" or "-P1DT6H".
// The zero duration renders as "PT0S".
func (d Duration) String() string {
	sign := d.Sign()
	if sign == 0 {
		return "PT0S"
	}

	abs := d
	if sign < 0 {
		abs = d.Negated()
	}

	var b strings.Builder
	if sign < 0 {
		b.WriteByte('-')
	}

	b.WriteByte('P')

	writePart := func(value int64, unit byte) {
		if value != 0 {
			fmt.Fprintf(&b, "%d%c", value, unit)
		}
	}

	writePart(abs.Years, 'Y')
	writePart(abs.Months, 'M')
	writePart(abs.Weeks, 'W')
	writePart(abs.Days, 'D')

	subseconds := abs.Milliseconds*1_000_000 + abs.Microseconds*1_000 + abs.Nanoseconds
	hasTime := abs.Hours != 0 || abs.Minutes != 0 || abs.Seconds != 0 || subseconds != 0
	hasDate := abs.Years != 0 || abs.Months != 0 || abs.Weeks != 0 || abs.Days != 0

	if !hasTime && hasDate {
		return b.String()
	}

	b.WriteByte('T')
	writePart(abs.Hours, 'H')
	writePart(abs.Minutes, 'M')

	seconds := abs.Seconds + subseconds/nanosPerSecond
	fraction := subseconds % nanosPerSecond

	if seconds != 0 || fraction != 0 || (!hasDate && abs.Hours == 0 && abs.Minutes == 0) {
		if fraction != 0 {
			frac := strings.TrimRight(fmt.Sprintf("%09d", fraction), "0")
			fmt.Fprintf(&b, "%d.%sS", seconds, frac)
		} else {
			fmt.Fprintf(&b, "%dS", seconds)
		}
	}

	return b.String()
}
