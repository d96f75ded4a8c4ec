package calendar

import (
	"fmt"
)

// Field names a calendar field. The set of fields is fixed; which of them are
// present on a given Fields value is tracked explicitly.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldMonthCode
	FieldDay
	FieldEra
	FieldEraYear
)

func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldMonthCode:
		return "monthCode"
	case FieldDay:
		return "day"
	case FieldEra:
		return "era"
	case FieldEraYear:
		return "eraYear"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Fields is an enum-keyed calendar field set. Lookup is by key; the ordered
// list of present keys is tracked separately because later operations consume
// it to know which fields to re-extract from a derived date.
//
// The zero value is an empty, ready-to-use field set. Fields is not safe for
// concurrent mutation; operations that need a private copy take one with Clone.
type Fields struct {
	keys []Field
	ints map[Field]int
	strs map[Field]string
}

// Keys returns the present field names in insertion order.
// The returned slice must not be mutated.
func (fs Fields) Keys() []Field {
	return fs.keys
}

// Has reports whether the field is present.
func (fs Fields) Has(field Field) bool {
	if _, ok := fs.ints[field]; ok {
		return true
	}

	_, ok := fs.strs[field]

	return ok
}

// IsEmpty reports whether no field is present.
func (fs Fields) IsEmpty() bool {
	return len(fs.keys) == 0
}

// SetInt stores an integer-valued field (year, month, day, eraYear).
func (fs *Fields) SetInt(field Field, value int) {
	if fs.ints == nil {
		fs.ints = make(map[Field]int)
	}

	if !fs.Has(field) {
		fs.keys = append(fs.keys, field)
	}

	delete(fs.strs, field)
	fs.ints[field] = value
}

// SetString stores a string-valued field (monthCode, era).
func (fs *Fields) SetString(field Field, value string) {
	if fs.strs == nil {
		fs.strs = make(map[Field]string)
	}

	if !fs.Has(field) {
		fs.keys = append(fs.keys, field)
	}

	delete(fs.ints, field)
	fs.strs[field] = value
}

// Delete removes a field if present.
func (fs *Fields) Delete(field Field) {
	if !fs.Has(field) {
		return
	}

	delete(fs.ints, field)
	delete(fs.strs, field)

	for i, k := range fs.keys {
		if k == field {
			fs.keys = append(fs.keys[:i:i], fs.keys[i+1:]...)
			break
		}
	}
}

// Int returns an integer-valued field and whether it is present.
func (fs Fields) Int(field Field) (int, bool) {
	v, ok := fs.ints[field]

	return v, ok
}

// String returns a string-valued field and whether it is present.
func (fs Fields) String(field Field) (string, bool) {
	v, ok := fs.strs[field]

	return v, ok
}

// Year is shorthand for Int(FieldYear).
func (fs Fields) Year() (int, bool) { return fs.Int(FieldYear) }

// Month is shorthand for Int(FieldMonth).
func (fs Fields) Month() (int, bool) { return fs.Int(FieldMonth) }

// Day is shorthand for Int(FieldDay).
func (fs Fields) Day() (int, bool) { return fs.Int(FieldDay) }

// EraYear is shorthand for Int(FieldEraYear).
func (fs Fields) EraYear() (int, bool) { return fs.Int(FieldEraYear) }

// MonthCode is shorthand for String(FieldMonthCode).
func (fs Fields) MonthCode() (string, bool) { return fs.String(FieldMonthCode) }

// Era is shorthand for String(FieldEra).
func (fs Fields) Era() (string, bool) { return fs.String(FieldEra) }

// Clone returns an independent copy.
func (fs Fields) Clone() Fields {
	out := Fields{}
	for _, k := range fs.keys {
		if v, ok := fs.ints[k]; ok {
			out.SetInt(k, v)
			continue
		}

		out.SetString(k, fs.strs[k])
	}

	return out
}

// Pick returns a new field set restricted to the requested fields, in the
// requested order, keeping only those actually present.
func (fs Fields) Pick(requested ...Field) Fields {
	out := Fields{}
	for _, k := range requested {
		if v, ok := fs.ints[k]; ok {
			out.SetInt(k, v)
			continue
		}

		if v, ok := fs.strs[k]; ok {
			out.SetString(k, v)
		}
	}

	return out
}

// MonthCodeToMonth validates a month code of the form "M01".."M13" and returns
// its ordinal month number. Leap-month codes ("M05L") are not produced by the
// built-in calendars and are rejected.
func MonthCodeToMonth(code string) (int, error) {
	if len(code) != 3 || code[0] != 'M' || code[1] < '0' || code[1] > '9' || code[2] < '0' || code[2] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonthCode, code)
	}

	month := int(code[1]-'0')*10 + int(code[2]-'0')
	if month < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonthCode, code)
	}

	return month, nil
}

// MonthToMonthCode renders an ordinal month as its month code, e.g. "M01".
func MonthToMonthCode(month int) string {
	return fmt.Sprintf("M%02d", month)
}
