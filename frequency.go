package rqdliq

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yy2792/rqdliq/date"
)

// Frequency is how often a fund opens a redemption window.
// The zero value is not a valid frequency.
type Frequency int

const (
	Monthly Frequency = iota + 1
	Quarterly
	Semiannual
	Annual
)

// String returns the short code of the frequency (M, Q, S or A).
func (f Frequency) String() string {
	switch f {
	case Monthly:
		return "M"
	case Quarterly:
		return "Q"
	case Semiannual:
		return "S"
	case Annual:
		return "A"
	default:
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
}

// Name returns the long form of the frequency.
func (f Frequency) Name() string {
	switch f {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Semiannual:
		return "semiannual"
	case Annual:
		return "annual"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the four redemption frequencies.
func (f Frequency) Valid() bool { return f >= Monthly && f <= Annual }

// ParseFrequency reads a frequency from its short code or its long form,
// case insensitive.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "monthly":
		return Monthly, nil
	case "q", "quarterly":
		return Quarterly, nil
	case "s", "semiannual":
		return Semiannual, nil
	case "a", "annual":
		return Annual, nil
	default:
		return 0, fmt.Errorf("unknown frequency %q: %w", s, ErrInvalidFrequency)
	}
}

// MarshalText encodes the frequency as its short code.
func (f Frequency) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("cannot encode %v: %w", f, ErrInvalidFrequency)
	}
	return []byte(f.String()), nil
}

// UnmarshalText decodes any form accepted by ParseFrequency.
func (f *Frequency) UnmarshalText(text []byte) error {
	p, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = p
	return nil
}

// Boundaries returns, in chronological order, every redemption window
// boundary of the given year.
func (f Frequency) Boundaries(year int) ([]date.Date, error) {
	var months []time.Month
	switch f {
	case Monthly:
		months = []time.Month{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	case Quarterly:
		months = []time.Month{time.March, time.June, time.September, time.December}
	case Semiannual:
		months = []time.Month{time.June, time.December}
	case Annual:
		months = []time.Month{time.December}
	default:
		return nil, fmt.Errorf("no boundaries for %v: %w", f, ErrInvalidFrequency)
	}
	bounds := make([]date.Date, len(months))
	for i, m := range months {
		bounds[i] = date.New(year, m+1, 0) // last day of m
	}
	return bounds, nil
}

// ApproachDay returns the first redemption window boundary on or after on.
//
// A date that already is a boundary is returned unchanged, so ApproachDay is
// idempotent. The result is always in the same year as on, since December 31
// closes a window for every frequency.
func ApproachDay(on date.Date, f Frequency) (date.Date, error) {
	switch f {
	case Monthly:
		return on.EndOfMonth(), nil
	case Annual:
		return date.New(on.Year(), time.December, 31), nil
	}
	bounds, err := f.Boundaries(on.Year())
	if err != nil {
		return date.Date{}, err
	}
	i := sort.Search(len(bounds), func(i int) bool { return !bounds[i].Before(on) })
	return bounds[i], nil
}
