package yearmonth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth"
)

func Test_ToPlainDate(t *testing.T) {
	tests := []struct {
		name     string
		value    yearmonth.YearMonth
		day      int
		expected string
	}{
		{
			name:     "mid_month",
			value:    mustBuild(t, 2019, 5),
			day:      15,
			expected: "2019-05-15",
		},
		{
			name:     "last_day",
			value:    mustBuild(t, 2019, 5),
			day:      31,
			expected: "2019-05-31",
		},
		{
			name:     "day_past_month_end_clamps",
			value:    mustBuild(t, 2019, 2),
			day:      31,
			expected: "2019-02-28",
		},
		{
			name:     "leap_february",
			value:    mustBuild(t, 2020, 2),
			day:      31,
			expected: "2020-02-29",
		},
		{
			name:     "gregorian_value",
			value:    mustBuild(t, 2019, 5, yearmonth.WithCalendarID("gregory")),
			day:      15,
			expected: "2019-05-15",
		},
		{
			name:     "ignores_reference_day",
			value:    mustBuild(t, 2019, 5, yearmonth.WithReferenceDay(20)),
			day:      3,
			expected: "2019-05-03",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := tc.value.ToPlainDate(tc.day)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, date.String())
		})
	}
}
