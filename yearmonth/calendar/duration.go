package calendar

// DateDuration is a signed (years, months, weeks, days) record. All nonzero
// components of a well-formed DateDuration share the same sign.
type DateDuration struct {
	Years  int64
	Months int64
	Weeks  int64
	Days   int64
}

// Sign returns the sign of the first nonzero component in (years, months,
// weeks, days) order, or 0 for the zero duration.
func (d DateDuration) Sign() int {
	for _, c := range []int64{d.Years, d.Months, d.Weeks, d.Days} {
		if c > 0 {
			return 1
		}

		if c < 0 {
			return -1
		}
	}

	return 0
}

// Negated returns the duration with every component negated.
func (d DateDuration) Negated() DateDuration {
	return DateDuration{
		Years:  -d.Years,
		Months: -d.Months,
		Weeks:  -d.Weeks,
		Days:   -d.Days,
	}
}

// IsZero reports whether every component is zero.
func (d DateDuration) IsZero() bool {
	return d == DateDuration{}
}
