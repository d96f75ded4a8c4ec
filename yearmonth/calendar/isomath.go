package calendar

import (
	"fmt"
)

// The representable date range mirrors the platform instant range of
// +/- 100_000_000 days around the epoch: -271821-04-19 .. +275760-09-13.
const (
	minEpochDays = -100_000_000
	maxEpochDays = 100_000_000
)

// IsISOLeapYear reports whether the given proleptic ISO year is a leap year:
// divisible by 4, not by 100 unless by 400.
func IsISOLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}

	if year%100 != 0 {
		return true
	}

	return year%400 == 0
}

// ISODaysInYear returns 365 or 366.
func ISODaysInYear(year int) int {
	if IsISOLeapYear(year) {
		return 366
	}

	return 365
}

// ISODaysInMonth returns the number of days in the given month of the given
// year, month in [1, 12].
func ISODaysInMonth(year int, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsISOLeapYear(year) {
			return 29
		}

		return 28
	default:
		panic(fmt.Sprintf("month out of range: %d", month))
	}
}

// IsValidISODate reports whether the triple denotes a real proleptic ISO
// calendar day.
func IsValidISODate(year int, month int, day int) bool {
	if month < 1 || month > 12 {
		return false
	}

	return day >= 1 && day <= ISODaysInMonth(year, month)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// epochDays converts a civil (year, month, day) to days since 1970-01-01,
// using the days-from-civil algorithm. The triple need not be a valid date;
// out-of-range days are carried arithmetically (month must be in [1, 12]).
func epochDays(year int, month int, day int) int {
	y := year
	if month <= 2 {
		y--
	}

	era := floorDiv(y, 400)
	yoe := y - era*400

	mp := floorMod(month+9, 12)
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy

	return era*146097 + doe - 719468
}

// dateFromEpochDays is the inverse of epochDays.
func dateFromEpochDays(days int) Date {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := floorMod(mp+2, 12) + 1

	if month <= 2 {
		y++
	}

	return Date{year: y, month: month, day: day}
}

// BalanceISODate normalizes an arbitrary (year, month, day) triple into a real
// calendar day by carrying overflowing months into years and overflowing days
// into months. Day zero, for example, balances to the last day of the
// preceding month.
func BalanceISODate(year int, month int, day int) Date {
	m0 := month - 1
	year += floorDiv(m0, 12)
	month = floorMod(m0, 12) + 1

	return dateFromEpochDays(epochDays(year, month, 1) + day - 1)
}

// ISODateWithinLimits reports whether the date falls inside the representable
// date range, which is bounded by the platform instant range.
func ISODateWithinLimits(date Date) bool {
	days := epochDays(date.year, date.month, date.day)

	return days >= minEpochDays && days <= maxEpochDays
}

// regulateISODate resolves an out-of-natural-range day against the overflow
// policy. The month must already be in [1, 12].
func regulateISODate(year int, month int, day int, overflow Overflow) (Date, error) {
	if overflow == Reject {
		return NewDate(year, month, day)
	}

	if day < 1 {
		day = 1
	}

	if max := ISODaysInMonth(year, month); day > max {
		day = max
	}

	return Date{year: year, month: month, day: day}, nil
}

// regulateISOMonth clamps or rejects a month outside [1, 12].
func regulateISOMonth(month int, overflow Overflow) (int, error) {
	if month >= 1 && month <= 12 {
		return month, nil
	}

	if overflow == Reject {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	if month < 1 {
		return 1, nil
	}

	return 12, nil
}

// addISODate implements calendar date addition on the ISO calendar: years and
// months are added first with the day regulated against the target month, then
// weeks and days are carried exactly. The result must lie within the
// representable date range.
func addISODate(date Date, duration DateDuration, overflow Overflow) (Date, error) {
	year := date.year + int(duration.Years)
	m0 := date.month - 1 + int(duration.Months)
	year += floorDiv(m0, 12)
	month := floorMod(m0, 12) + 1

	regulated, err := regulateISODate(year, month, date.day, overflow)
	if err != nil {
		return Date{}, err
	}

	result := addRegulatedDays(regulated, duration)
	if !ISODateWithinLimits(result) {
		return Date{}, fmt.Errorf("%w: %s", ErrDateOutOfRange, result)
	}

	return result, nil
}

// addISODateUnchecked is addISODate with Constrain and without the range
// check, for intermediate values of the difference stepping that may
// transiently leave the representable range.
func addISODateUnchecked(date Date, duration DateDuration) Date {
	year := date.year + int(duration.Years)
	m0 := date.month - 1 + int(duration.Months)
	year += floorDiv(m0, 12)
	month := floorMod(m0, 12) + 1

	regulated, _ := regulateISODate(year, month, date.day, Constrain)

	return addRegulatedDays(regulated, duration)
}

func addRegulatedDays(regulated Date, duration DateDuration) Date {
	days := epochDays(regulated.year, regulated.month, regulated.day)
	days += int(duration.Weeks)*7 + int(duration.Days)

	return dateFromEpochDays(days)
}

// differenceISODate computes the signed duration from one to two, expressed
// with the given largest unit. Finer components always agree in sign with the
// coarser ones.
func differenceISODate(one Date, two Date, largestUnit Unit) DateDuration {
	sign := -one.Compare(two)
	if sign == 0 {
		return DateDuration{}
	}

	switch largestUnit {
	case UnitYear, UnitMonth:
		years := two.year - one.year
		mid := addISODateUnchecked(one, DateDuration{Years: int64(years)})
		if overshoots(mid, two, sign) {
			years -= sign
			mid = addISODateUnchecked(one, DateDuration{Years: int64(years)})
		}

		months := (two.year-mid.year)*12 + (two.month - mid.month)
		mid2 := addISODateUnchecked(one, DateDuration{Years: int64(years), Months: int64(months)})
		if overshoots(mid2, two, sign) {
			months -= sign
			mid2 = addISODateUnchecked(one, DateDuration{Years: int64(years), Months: int64(months)})
		}

		days := epochDays(two.year, two.month, two.day) - epochDays(mid2.year, mid2.month, mid2.day)

		if largestUnit == UnitMonth {
			months += years * 12
			years = 0
		}

		return DateDuration{Years: int64(years), Months: int64(months), Days: int64(days)}

	case UnitWeek:
		days := epochDays(two.year, two.month, two.day) - epochDays(one.year, one.month, one.day)

		return DateDuration{Weeks: int64(days / 7), Days: int64(days % 7)}

	default:
		days := epochDays(two.year, two.month, two.day) - epochDays(one.year, one.month, one.day)

		return DateDuration{Days: int64(days)}
	}
}

// overshoots reports whether the intermediate date has stepped past the target
// in the direction of travel.
func overshoots(intermediate Date, target Date, sign int) bool {
	return intermediate.Compare(target) == sign
}
