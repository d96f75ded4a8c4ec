package yearmonth

import (
	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

// Compare orders two year-month sources chronologically on their underlying
// ISO triples, independent of calendar. Returns -1, 0 or +1.
func Compare(a any, b any) (int, error) {
	left, err := From(a)
	if err != nil {
		return 0, err
	}

	right, err := From(b)
	if err != nil {
		return 0, err
	}

	return left.isoDate().Compare(right.isoDate()), nil
}

// Equals reports whether the value and the resolved other denote the same ISO
// triple in the same calendar system. This is stricter than Compare: two
// values in different calendars may compare equal yet not be Equals.
func (ym YearMonth) Equals(other any) (bool, error) {
	resolved, err := From(other)
	if err != nil {
		return false, err
	}

	sameDate := ym.isoDate() == resolved.isoDate()

	return sameDate && calendar.Equal(ym.Calendar(), resolved.Calendar()), nil
}
