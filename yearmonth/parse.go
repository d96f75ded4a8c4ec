package yearmonth

import (
	"fmt"
	"strings"

	"github.com/stefanwimmer128/temporal-yearmonth-go/yearmonth/calendar"
)

type parsedYearMonth struct {
	date       calendar.Date
	calendarID string
	hasDay     bool
}

// Parse parses an ISO year-month string into a YearMonth.
//
// Accepted forms are "YYYY-MM", "±YYYYYY-MM" and the day-bearing variants
// "YYYY-MM-DD" / "±YYYYYY-MM-DD" (the basic format without separators is
// accepted as well), each optionally followed by bracket annotations such as
// "[u-ca=gregory]". A non-ISO calendar annotation requires the day-bearing
// form. Unknown annotations are ignored unless flagged critical.
func Parse(text string) (YearMonth, error) {
	return fromString(text)
}

type yearMonthScanner struct {
	text string
	pos  int
}

func (s *yearMonthScanner) done() bool {
	return s.pos >= len(s.text)
}

func (s *yearMonthScanner) peek() byte {
	if s.done() {
		return 0
	}

	return s.text[s.pos]
}

func (s *yearMonthScanner) take(c byte) bool {
	if s.peek() != c {
		return false
	}

	s.pos++

	return true
}

func (s *yearMonthScanner) digits(n int) (int, error) {
	if s.pos+n > len(s.text) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYearMonthString, s.text)
	}

	value := 0
	for i := 0; i < n; i++ {
		c := s.text[s.pos+i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidYearMonthString, s.text)
		}

		value = value*10 + int(c-'0')
	}

	s.pos += n

	return value, nil
}

func (s *yearMonthScanner) hasDigit() bool {
	c := s.peek()

	return c >= '0' && c <= '9'
}

func parseYearMonthString(text string) (parsedYearMonth, error) {
	s := &yearMonthScanner{text: text}

	year, err := parseSignedYear(s)
	if err != nil {
		return parsedYearMonth{}, err
	}

	separated := s.take('-')

	month, err := s.digits(2)
	if err != nil {
		return parsedYearMonth{}, err
	}

	day := 1
	hasDay := false

	switch {
	case separated && s.peek() == '-':
		s.pos++

		day, err = s.digits(2)
		if err != nil {
			return parsedYearMonth{}, err
		}

		hasDay = true

	case !separated && s.hasDigit():
		day, err = s.digits(2)
		if err != nil {
			return parsedYearMonth{}, err
		}

		hasDay = true
	}

	calendarID, err := parseAnnotations(s)
	if err != nil {
		return parsedYearMonth{}, err
	}

	if !s.done() {
		return parsedYearMonth{}, fmt.Errorf("%w: %q", ErrInvalidYearMonthString, text)
	}

	if !hasDay && calendarID != "" && strings.ToLower(calendarID) != calendar.ISO8601ID {
		return parsedYearMonth{}, fmt.Errorf(
			"%w: %q: calendar %q requires the day-bearing form", ErrInvalidYearMonthString, text, calendarID)
	}

	date, err := calendar.NewDate(year, month, day)
	if err != nil {
		return parsedYearMonth{}, err
	}

	return parsedYearMonth{date: date, calendarID: calendarID, hasDay: hasDay}, nil
}

// parseSignedYear reads a four-digit year, or a sign followed by six digits.
// The negative zero year "-000000" is not a valid ISO year.
func parseSignedYear(s *yearMonthScanner) (int, error) {
	switch {
	case s.take('+'):
		return s.digits(6)

	case s.take('-'):
		year, err := s.digits(6)
		if err != nil {
			return 0, err
		}

		if year == 0 {
			return 0, fmt.Errorf("%w: %q: negative zero year", ErrInvalidYearMonthString, s.text)
		}

		return -year, nil

	default:
		return s.digits(4)
	}
}

// parseAnnotations consumes trailing "[key=value]" annotations and returns
// the calendar annotation value, if any. A second calendar annotation is
// allowed only if not critical; an unknown critical annotation is an error.
func parseAnnotations(s *yearMonthScanner) (string, error) {
	calendarID := ""

	for s.take('[') {
		critical := s.take('!')

		start := s.pos
		for !s.done() && s.peek() != '=' {
			s.pos++
		}

		key := s.text[start:s.pos]
		if key == "" || !s.take('=') {
			return "", fmt.Errorf("%w: %q", ErrInvalidYearMonthString, s.text)
		}

		start = s.pos
		for !s.done() && s.peek() != ']' {
			s.pos++
		}

		value := s.text[start:s.pos]
		if value == "" || !s.take(']') {
			return "", fmt.Errorf("%w: %q", ErrInvalidYearMonthString, s.text)
		}

		switch {
		case key == "u-ca" && calendarID == "":
			calendarID = value

		case key == "u-ca":
			if critical {
				return "", fmt.Errorf("%w: %q: duplicate critical calendar annotation",
					ErrInvalidYearMonthString, s.text)
			}

		default:
			if critical {
				return "", fmt.Errorf("%w: %q: unknown critical annotation %q",
					ErrInvalidYearMonthString, s.text, key)
			}
		}
	}

	return calendarID, nil
}
