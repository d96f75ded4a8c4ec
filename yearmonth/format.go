package yearmonth

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

var jsonAPI = jsoniter.ConfigFastest

// Format renders the value in its canonical ISO form: "YYYY-MM" (extended to
// a signed six-digit year outside 0..9999), suffixed with a "[u-ca=...]"
// calendar annotation as selected by the options.
//
// For non-ISO calendars, and whenever the annotation is forced on, the
// reference day is included ("YYYY-MM-DD") so the string round-trips through
// Parse to an equal value.
func (ym YearMonth) Format(options ...FormatOptions) (string, error) {
	show, err := resolveShowCalendar(options)
	if err != nil {
		return "", err
	}

	identifier := ym.CalendarID()

	var b strings.Builder
	b.WriteString(calendar.PadISOYear(ym.isoYear))
	fmt.Fprintf(&b, "-%02d", ym.isoMonth)

	nonDefault := identifier != calendar.ISO8601ID
	if nonDefault || show == ShowCalendarAlways || show == ShowCalendarCritical {
		fmt.Fprintf(&b, "-%02d", ym.referenceDay)
	}

	switch show {
	case ShowCalendarAlways:
		fmt.Fprintf(&b, "[u-ca=%s]", identifier)
	case ShowCalendarCritical:
		fmt.Fprintf(&b, "[!u-ca=%s]", identifier)
	case ShowCalendarAuto:
		if nonDefault {
			fmt.Fprintf(&b, "[u-ca=%s]", identifier)
		}
	case ShowCalendarNever:
	}

	return b.String(), nil
}

// String renders the value with the default calendar display.
func (ym YearMonth) String() string {
	formatted, _ := ym.Format()

	return formatted
}

// MarshalJSON renders the value as its canonical string form.
func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(ym.String())
}

// UnmarshalJSON parses a canonical string form.
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	var text string
	if err := jsonAPI.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidYearMonthString, err)
	}

	parsed, err := From(text)
	if err != nil {
		return err
	}

	*ym = parsed

	return nil
}
