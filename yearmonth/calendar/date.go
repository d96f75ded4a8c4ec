package calendar

import (
	"fmt"
)

// Date is an immutable (year, month, day) triple on the proleptic ISO
// calendar. A Date built through NewDate or BalanceISODate always denotes a
// real calendar day.
//
// While Date values are comparable with ==, ordering should use Compare.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate validates the triple and returns the Date.
// Returns ErrInvalidDate if the day does not exist in the given month and year.
func NewDate(year int, month int, day int) (Date, error) {
	if !IsValidISODate(year, month, day) {
		return Date{}, fmt.Errorf("%w: %d-%d-%d", ErrInvalidDate, year, month, day)
	}

	return Date{year: year, month: month, day: day}, nil
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() int {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// Compare orders two dates chronologically, returning -1, 0 or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return compareInt(d.year, other.year)
	case d.month != other.month:
		return compareInt(d.month, other.month)
	default:
		return compareInt(d.day, other.day)
	}
}

// String renders the date as an ISO string, e.g. "2023-01-31" or
// "+275760-09-13" for years outside the four-digit range.
func (d Date) String() string {
	return fmt.Sprintf("%s-%02d-%02d", PadISOYear(d.year), d.month, d.day)
}

func compareInt(a, b int) int {
	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}

// PadISOYear renders a year in its canonical ISO form: four zero-padded
// digits inside [0, 9999], otherwise a sign followed by six digits.
func PadISOYear(year int) string {
	if year >= 0 && year <= 9999 {
		return fmt.Sprintf("%04d", year)
	}

	sign := "+"
	abs := year
	if year < 0 {
		sign = "-"
		abs = -year
	}

	return fmt.Sprintf("%s%06d", sign, abs)
}
