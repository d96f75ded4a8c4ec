package yearmonth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth"
)

func Test_Duration_Sign(t *testing.T) {
	assert.Equal(t, 0, yearmonth.Duration{}.Sign())
	assert.Equal(t, 1, yearmonth.Duration{Months: 3}.Sign())
	assert.Equal(t, -1, yearmonth.Duration{Nanoseconds: -1}.Sign())
	assert.Equal(t, 1, yearmonth.Duration{Years: 2, Months: 6}.Sign())
}

func Test_Duration_IsZero(t *testing.T) {
	assert.True(t, yearmonth.Duration{}.IsZero())
	assert.False(t, yearmonth.Duration{Seconds: 1}.IsZero())
}

func Test_Duration_Negated(t *testing.T) {
	duration := yearmonth.Duration{Years: 1, Months: -0, Days: 3, Hours: 4}
	negated := duration.Negated()

	assert.Equal(t, yearmonth.Duration{Years: -1, Days: -3, Hours: -4}, negated)
	assert.Equal(t, duration, negated.Negated())
}

func Test_Duration_String(t *testing.T) {
	tests := []struct {
		name     string
		duration yearmonth.Duration
		expected string
	}{
		{
			name:     "zero",
			duration: yearmonth.Duration{},
			expected: "PT0S",
		},
		{
			name:     "years_and_months",
			duration: yearmonth.Duration{Years: 5, Months: 2},
			expected: "P5Y2M",
		},
		{
			name:     "negative_mixed",
			duration: yearmonth.Duration{Days: -1, Hours: -6},
			expected: "-P1DT6H",
		},
		{
			name:     "weeks",
			duration: yearmonth.Duration{Weeks: 3},
			expected: "P3W",
		},
		{
			name:     "time_only",
			duration: yearmonth.Duration{Hours: 2, Minutes: 30},
			expected: "PT2H30M",
		},
		{
			name:     "fractional_seconds",
			duration: yearmonth.Duration{Seconds: 1, Milliseconds: 500},
			expected: "PT1.5S",
		},
		{
			name:     "nanosecond_precision",
			duration: yearmonth.Duration{Nanoseconds: 1},
			expected: "PT0.000000001S",
		},
		{
			name:     "subseconds_carry_into_seconds",
			duration: yearmonth.Duration{Milliseconds: 2500},
			expected: "PT2.5S",
		},
		{
			name:     "seconds_only",
			duration: yearmonth.Duration{Seconds: 42},
			expected: "PT42S",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.duration.String())
		})
	}
}
