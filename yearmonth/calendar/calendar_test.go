package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

func Test_New_SupportedIdentifiers(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expected   string
		wantErr    error
	}{
		{name: "iso8601", identifier: "iso8601", expected: "iso8601"},
		{name: "iso8601_mixed_case", identifier: "ISO8601", expected: "iso8601"},
		{name: "gregory", identifier: "gregory", expected: "gregory"},
		{name: "unsupported", identifier: "hebrew", wantErr: calendar.ErrUnsupportedCalendar},
		{name: "empty", identifier: "", wantErr: calendar.ErrUnsupportedCalendar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cal, err := calendar.New(tc.identifier)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, calendar.ErrRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, cal.Identifier())
		})
	}
}

func Test_Equal(t *testing.T) {
	iso, err := calendar.New("iso8601")
	require.NoError(t, err)

	gregory, err := calendar.New("gregory")
	require.NoError(t, err)

	assert.True(t, calendar.Equal(iso, calendar.ISO8601()))
	assert.True(t, calendar.Equal(gregory, calendar.Gregory()))
	assert.False(t, calendar.Equal(iso, gregory))
}

func Test_NewDate(t *testing.T) {
	date, err := calendar.NewDate(2023, 2, 28)
	require.NoError(t, err)
	assert.Equal(t, 2023, date.Year())
	assert.Equal(t, 2, date.Month())
	assert.Equal(t, 28, date.Day())

	_, err = calendar.NewDate(2023, 2, 29)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = calendar.NewDate(2023, 13, 1)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = calendar.NewDate(2024, 2, 29)
	assert.NoError(t, err)
}

func Test_Date_Compare(t *testing.T) {
	earlier, err := calendar.NewDate(2023, 1, 31)
	require.NoError(t, err)

	later, err := calendar.NewDate(2023, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, -1, earlier.Compare(later))
	assert.Equal(t, 1, later.Compare(earlier))
	assert.Equal(t, 0, earlier.Compare(earlier))
}

func Test_Date_String(t *testing.T) {
	date, err := calendar.NewDate(2023, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-05", date.String())

	extended, err := calendar.NewDate(275760, 9, 13)
	require.NoError(t, err)
	assert.Equal(t, "+275760-09-13", extended.String())

	negative, err := calendar.NewDate(-1, 12, 31)
	require.NoError(t, err)
	assert.Equal(t, "-000001-12-31", negative.String())
}

func Test_Fields_PresenceAndOrder(t *testing.T) {
	fields := calendar.Fields{}
	assert.True(t, fields.IsEmpty())

	fields.SetInt(calendar.FieldYear, 2023)
	fields.SetString(calendar.FieldMonthCode, "M05")
	fields.SetInt(calendar.FieldDay, 1)

	assert.Equal(t, []calendar.Field{calendar.FieldYear, calendar.FieldMonthCode, calendar.FieldDay}, fields.Keys())

	year, ok := fields.Year()
	assert.True(t, ok)
	assert.Equal(t, 2023, year)

	code, ok := fields.MonthCode()
	assert.True(t, ok)
	assert.Equal(t, "M05", code)

	_, ok = fields.Month()
	assert.False(t, ok)

	fields.Delete(calendar.FieldMonthCode)
	assert.False(t, fields.Has(calendar.FieldMonthCode))
	assert.Equal(t, []calendar.Field{calendar.FieldYear, calendar.FieldDay}, fields.Keys())
}

func Test_Fields_PickAndClone(t *testing.T) {
	fields := calendar.Fields{}
	fields.SetInt(calendar.FieldYear, 2023)
	fields.SetInt(calendar.FieldMonth, 5)
	fields.SetString(calendar.FieldMonthCode, "M05")

	picked := fields.Pick(calendar.FieldMonthCode, calendar.FieldYear, calendar.FieldDay)
	assert.Equal(t, []calendar.Field{calendar.FieldMonthCode, calendar.FieldYear}, picked.Keys())

	clone := fields.Clone()
	clone.SetInt(calendar.FieldYear, 1999)

	year, _ := fields.Year()
	assert.Equal(t, 2023, year, "clone mutation must not affect the original")
}

func Test_MonthCodes(t *testing.T) {
	assert.Equal(t, "M01", calendar.MonthToMonthCode(1))
	assert.Equal(t, "M12", calendar.MonthToMonthCode(12))

	month, err := calendar.MonthCodeToMonth("M07")
	require.NoError(t, err)
	assert.Equal(t, 7, month)

	for _, invalid := range []string{"", "M1", "M001", "m07", "M00", "M1x", "M05L"} {
		_, err := calendar.MonthCodeToMonth(invalid)
		assert.ErrorIs(t, err, calendar.ErrInvalidMonthCode, "code %q", invalid)
	}
}

//nolint:funlen
func Test_ISO8601_DateFromFields(t *testing.T) {
	iso := calendar.ISO8601()

	tests := []struct {
		name     string
		build    func() calendar.Fields
		overflow calendar.Overflow
		expected string
		wantErr  error
	}{
		{
			name: "plain_date",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetInt(calendar.FieldMonth, 6)
				f.SetInt(calendar.FieldDay, 15)
				return f
			},
			overflow: calendar.Constrain,
			expected: "2023-06-15",
		},
		{
			name: "month_from_code",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetString(calendar.FieldMonthCode, "M06")
				f.SetInt(calendar.FieldDay, 15)
				return f
			},
			overflow: calendar.Constrain,
			expected: "2023-06-15",
		},
		{
			name: "constrain_day",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetInt(calendar.FieldMonth, 2)
				f.SetInt(calendar.FieldDay, 31)
				return f
			},
			overflow: calendar.Constrain,
			expected: "2023-02-28",
		},
		{
			name: "reject_day",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetInt(calendar.FieldMonth, 2)
				f.SetInt(calendar.FieldDay, 31)
				return f
			},
			overflow: calendar.Reject,
			wantErr:  calendar.ErrInvalidDate,
		},
		{
			name: "constrain_month",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetInt(calendar.FieldMonth, 14)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			overflow: calendar.Constrain,
			expected: "2023-12-01",
		},
		{
			name: "reject_month",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetInt(calendar.FieldMonth, 14)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			overflow: calendar.Reject,
			wantErr:  calendar.ErrInvalidMonth,
		},
		{
			name: "month_and_code_conflict",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetInt(calendar.FieldMonth, 2)
				f.SetString(calendar.FieldMonthCode, "M03")
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			overflow: calendar.Constrain,
			wantErr:  calendar.ErrMonthConflict,
		},
		{
			name: "month_code_out_of_calendar_range",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetString(calendar.FieldMonthCode, "M13")
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			overflow: calendar.Constrain,
			wantErr:  calendar.ErrInvalidMonthCode,
		},
		{
			name: "missing_year",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldMonth, 2)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			overflow: calendar.Constrain,
			wantErr:  calendar.ErrMissingField,
		},
		{
			name: "missing_day",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetInt(calendar.FieldMonth, 2)
				return f
			},
			overflow: calendar.Constrain,
			wantErr:  calendar.ErrMissingField,
		},
		{
			name: "missing_month_entirely",
			build: func() calendar.Fields {
				f := calendar.Fields{}
				f.SetInt(calendar.FieldYear, 2023)
				f.SetInt(calendar.FieldDay, 1)
				return f
			},
			overflow: calendar.Constrain,
			wantErr:  calendar.ErrMissingField,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := iso.DateFromFields(tc.build(), tc.overflow)

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

func Test_ISO8601_YearMonthFromFields(t *testing.T) {
	iso := calendar.ISO8601()

	fields := calendar.Fields{}
	fields.SetInt(calendar.FieldYear, 2023)
	fields.SetInt(calendar.FieldMonth, 6)
	fields.SetInt(calendar.FieldDay, 27)

	date, err := iso.YearMonthFromFields(fields, calendar.Constrain)
	require.NoError(t, err)
	assert.Equal(t, "2023-06-01", date.String(), "the day field is ignored, the reference day is 1")

	overflowing := calendar.Fields{}
	overflowing.SetInt(calendar.FieldYear, 2023)
	overflowing.SetInt(calendar.FieldMonth, 0)

	date, err = iso.YearMonthFromFields(overflowing, calendar.Constrain)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", date.String())

	_, err = iso.YearMonthFromFields(overflowing, calendar.Reject)
	assert.ErrorIs(t, err, calendar.ErrInvalidMonth)
}

func Test_ISO8601_MergeFields(t *testing.T) {
	iso := calendar.ISO8601()

	base := calendar.Fields{}
	base.SetInt(calendar.FieldYear, 2023)
	base.SetInt(calendar.FieldMonth, 5)
	base.SetString(calendar.FieldMonthCode, "M05")

	partial := calendar.Fields{}
	partial.SetString(calendar.FieldMonthCode, "M07")

	merged := iso.MergeFields(base, partial)

	year, _ := merged.Year()
	assert.Equal(t, 2023, year)

	code, ok := merged.MonthCode()
	assert.True(t, ok)
	assert.Equal(t, "M07", code)

	assert.False(t, merged.Has(calendar.FieldMonth), "a supplied monthCode clears the conflicting month")

	untouched := calendar.Fields{}
	untouched.SetInt(calendar.FieldYear, 1999)

	merged = iso.MergeFields(base, untouched)
	assert.True(t, merged.Has(calendar.FieldMonth))
	assert.True(t, merged.Has(calendar.FieldMonthCode))

	year, _ = merged.Year()
	assert.Equal(t, 1999, year)
}

func Test_ISO8601_Accessors(t *testing.T) {
	iso := calendar.ISO8601()

	date, err := calendar.NewDate(2024, 2, 15)
	require.NoError(t, err)

	assert.Equal(t, "iso8601", iso.Identifier())
	assert.Equal(t, 2024, iso.Year(date))
	assert.Equal(t, 2, iso.Month(date))
	assert.Equal(t, "M02", iso.MonthCode(date))
	assert.Equal(t, 15, iso.Day(date))
	assert.Equal(t, 29, iso.DaysInMonth(date))
	assert.Equal(t, 366, iso.DaysInYear(date))
	assert.Equal(t, 12, iso.MonthsInYear(date))
	assert.True(t, iso.InLeapYear(date))

	_, ok := iso.Era(date)
	assert.False(t, ok, "the ISO calendar has no eras")

	_, ok = iso.EraYear(date)
	assert.False(t, ok)
}

func Test_ISO8601_DateAddAndUntil(t *testing.T) {
	iso := calendar.ISO8601()

	start, err := calendar.NewDate(2023, 1, 1)
	require.NoError(t, err)

	added, err := iso.DateAdd(start, calendar.DateDuration{Years: 2, Months: 2}, calendar.Constrain)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", added.String())

	until, err := iso.DateUntil(start, added, calendar.UnitYear)
	require.NoError(t, err)
	assert.Equal(t, calendar.DateDuration{Years: 2, Months: 2}, until)

	days, err := iso.DateUntil(start, added, calendar.UnitAuto)
	require.NoError(t, err)
	assert.Equal(t, calendar.DateDuration{Days: 790}, days)
}
