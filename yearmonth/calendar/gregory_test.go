package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

func Test_Gregory_Eras(t *testing.T) {
	gregory := calendar.Gregory()

	tests := []struct {
		name            string
		year            int
		expectedEra     string
		expectedEraYear int
	}{
		{name: "common_era", year: 2023, expectedEra: calendar.EraCE, expectedEraYear: 2023},
		{name: "first_year_ce", year: 1, expectedEra: calendar.EraCE, expectedEraYear: 1},
		{name: "year_zero_is_1_bce", year: 0, expectedEra: calendar.EraBCE, expectedEraYear: 1},
		{name: "negative_year", year: -5, expectedEra: calendar.EraBCE, expectedEraYear: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := calendar.NewDate(tc.year, 6, 1)
			require.NoError(t, err)

			era, ok := gregory.Era(date)
			require.True(t, ok)
			assert.Equal(t, tc.expectedEra, era)

			eraYear, ok := gregory.EraYear(date)
			require.True(t, ok)
			assert.Equal(t, tc.expectedEraYear, eraYear)
		})
	}
}

func Test_Gregory_DateFromFields_EraYear(t *testing.T) {
	gregory := calendar.Gregory()

	tests := []struct {
		name     string
		build    func() calendar.Fields
		expected string
		wantErr  error
	}{
		{
			name: "era_and_era_year",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetString(calendar.FieldEra, calendar.EraCE)
				f.SetInt(calendar.FieldEraYear, 2023)
				f.SetInt(calendar.FieldMonth, 1)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			expected: "2023-01-01",
		},
		{
			name: "bce_era_maps_below_year_one",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetString(calendar.FieldEra, calendar.EraBCE)
				f.SetInt(calendar.FieldEraYear, 1)
				f.SetInt(calendar.FieldMonth, 1)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			expected: "0000-01-01",
		},
		{
			name: "signed_year_alone",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, -5)
				f.SetInt(calendar.FieldMonth, 12)
				f.SetInt(calendar.FieldDay, 31)
				return f
			},
			expected: "-000005-12-31",
		},
		{
			name: "agreeing_year_and_era",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetString(calendar.FieldEra, calendar.EraCE)
				f.SetInt(calendar.FieldEraYear, 2023)
				f.SetInt(calendar.FieldMonth, 1)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			expected: "2023-01-01",
		},
		{
			name: "disagreeing_year_and_era",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2022)
				f.SetString(calendar.FieldEra, calendar.EraCE)
				f.SetInt(calendar.FieldEraYear, 2023)
				f.SetInt(calendar.FieldMonth, 1)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			wantErr: calendar.ErrEraYearConflict,
		},
		{
			name: "unknown_era",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetString(calendar.FieldEra, "meiji")
				f.SetInt(calendar.FieldEraYear, 1)
				f.SetInt(calendar.FieldMonth, 1)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			wantErr: calendar.ErrInvalidEra,
		},
		{
			name: "era_without_era_year",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetString(calendar.FieldEra, calendar.EraCE)
				f.SetInt(calendar.FieldMonth, 1)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			wantErr: calendar.ErrMissingField,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := gregory.DateFromFields(tc.build(), calendar.Constrain)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, date.String())
		})
	}
}

func Test_Gregory_MergeFields_EraHandling(t *testing.T) {
	gregory := calendar.Gregory()

	base := calendar.Fields{}
	base.SetString(calendar.FieldEra, calendar.EraCE)
	base.SetInt(calendar.FieldEraYear, 2023)
	base.SetInt(calendar.FieldYear, 2023)
	base.SetString(calendar.FieldMonthCode, "M05")

	partial := calendar.Fields{}
	partial.SetInt(calendar.FieldYear, 1999)

	merged := gregory.MergeFields(base, partial)

	year, _ := merged.Year()
	assert.Equal(t, 1999, year)
	assert.False(t, merged.Has(calendar.FieldEra), "a supplied year clears the era pair")
	assert.False(t, merged.Has(calendar.FieldEraYear))

	eraPartial := calendar.Fields{}
	eraPartial.SetString(calendar.FieldEra, calendar.EraBCE)
	eraPartial.SetInt(calendar.FieldEraYear, 10)

	merged = gregory.MergeFields(base, eraPartial)
	assert.False(t, merged.Has(calendar.FieldYear), "a supplied era pair clears the year")

	era, _ := merged.Era()
	assert.Equal(t, calendar.EraBCE, era)
}

func Test_Gregory_SharesISOMonthMath(t *testing.T) {
	gregory := calendar.Gregory()

	date, err := calendar.NewDate(2024, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 29, gregory.DaysInMonth(date))
	assert.Equal(t, "M02", gregory.MonthCode(date))
	assert.True(t, gregory.InLeapYear(date))
}
