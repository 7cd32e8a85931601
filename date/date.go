// Package date provides a calendar date type with day granularity.
//
// All arithmetic goes through time.Date in UTC, so month lengths and leap
// years are handled by the standard calendar rather than by day tables.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Format is the only accepted textual representation of a Date (ISO-8601).
const Format = "2006-01-02"

// ErrInvalidFormat is returned when a value cannot be read as a Date.
var ErrInvalidFormat = errors.New("invalid date format")

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
//
// Out of range values are normalized the way time.Date does, so
// New(2017, 3, 0) is the last day of February 2017.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(Format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// AddMonths returns the date n calendar months later.
//
// The day of the month is kept when it exists in the target month, otherwise
// the result is clamped to the last day of that month (Jan 31 + 1 month is
// Feb 28, or Feb 29 on leap years).
func (d Date) AddMonths(n int) Date {
	last := New(d.y, d.m+time.Month(n)+1, 0)
	if d.d > last.d {
		return last
	}
	return New(d.y, d.m+time.Month(n), d.d)
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date { return New(d.y, d.m+1, 0) }

// DaysUntil returns the number of days from d to x, negative when x is before d.
func (d Date) DaysUntil(x Date) int {
	return int(x.time().Sub(d.time()).Hours() / 24)
}

// Max returns the latest of a and b.
func Max(a, b Date) Date {
	if a.Before(b) {
		return b
	}
	return a
}

// Parse reads a Date strictly formatted as YYYY-MM-DD.
func Parse(str string) (Date, error) {
	if len(str) != len(Format) {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, ErrInvalidFormat)
	}
	on, err := time.Parse(Format, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, errors.Join(ErrInvalidFormat, err))
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Of converts a boundary value into a Date.
//
// It accepts a Date, a time.Time (its calendar day in its own location) or a
// string strictly matching YYYY-MM-DD. Anything else fails with
// ErrInvalidFormat.
func Of(v any) (Date, error) {
	switch x := v.(type) {
	case Date:
		return x, nil
	case *Date:
		if x == nil {
			return Date{}, fmt.Errorf("nil date: %w", ErrInvalidFormat)
		}
		return *x, nil
	case time.Time:
		return New(x.Date()), nil
	case string:
		return Parse(x)
	default:
		return Date{}, fmt.Errorf("unsupported date value %v (%T): %w", v, v, ErrInvalidFormat)
	}
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return fmt.Errorf("date must be a json string: %w", errors.Join(ErrInvalidFormat, err))
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
