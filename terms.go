package rqdliq

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Gate caps the fraction of a holding that can be redeemed in a single
// window. The zero value means no gate: everything can go at once.
type Gate struct {
	fraction decimal.Decimal
	set      bool
	invalid  string // a float that is not a fraction, rejected by validate
}

// NoGate returns the unrestricted gate.
func NoGate() Gate { return Gate{} }

// NewGate returns a gate of the given fraction. Range is checked by NewFund.
func NewGate[T number](fraction T) Gate { return Gate{fraction: D(fraction), set: true} }

// GateFromFloat is like NewGate but maps NaN, the "empty cell" of spreadsheet
// exports, to NoGate. Infinities make a gate that NewFund rejects.
func GateFromFloat(f float64) Gate {
	switch {
	case math.IsNaN(f):
		return NoGate()
	case math.IsInf(f, 0):
		return Gate{set: true, invalid: formatFloat(f)}
	}
	return NewGate(f)
}

// Fraction returns the gate fraction and whether the gate is set.
func (g Gate) Fraction() (decimal.Decimal, bool) { return g.fraction, g.set }

// IsSet reports whether the gate restricts redemptions.
func (g Gate) IsSet() bool { return g.set }

// Equal compares gates by value.
func (g Gate) Equal(h Gate) bool {
	if g.set != h.set || g.invalid != h.invalid {
		return false
	}
	return !g.set || g.fraction.Equal(h.fraction)
}

func (g Gate) String() string {
	if !g.set {
		return "none"
	}
	if g.invalid != "" {
		return g.invalid
	}
	return g.fraction.Shift(2).StringFixed(2) + "%"
}

// validate rejects gates outside (0, 1]. A zero gate would never let
// anything out.
func (g Gate) validate() error {
	if !g.set {
		return nil
	}
	if g.invalid != "" {
		return fmt.Errorf("gate %s must be in (0, 1]: %w", g.invalid, ErrInvalidFundTerms)
	}
	if !g.fraction.IsPositive() || g.fraction.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("gate %s must be in (0, 1]: %w", g.fraction, ErrInvalidFundTerms)
	}
	return nil
}

// MarshalJSON encodes the gate as a number, or null when unset.
func (g Gate) MarshalJSON() ([]byte, error) {
	if !g.set {
		return []byte("null"), nil
	}
	return []byte(g.fraction.String()), nil
}

// UnmarshalJSON decodes a number, or null for no gate.
func (g *Gate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = NoGate()
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("invalid gate %s: %w", data, err)
	}
	*g = NewGate(d)
	return nil
}

// Lockup is the number of months after investment before any redemption is
// allowed. The zero value means no lock-up.
type Lockup struct {
	months  int
	set     bool
	invalid string // a float that is not a whole number of months
}

// NoLockup returns the absence of lock-up.
func NoLockup() Lockup { return Lockup{} }

// LockupMonths returns a lock-up of n months.
func LockupMonths(n int) Lockup { return Lockup{months: n, set: true} }

// LockupFromFloat maps NaN to NoLockup. Anything but a whole number of months
// makes a lock-up that NewFund rejects.
func LockupFromFloat(f float64) Lockup {
	switch {
	case math.IsNaN(f):
		return NoLockup()
	case math.IsInf(f, 0), f != math.Trunc(f), math.Abs(f) > math.MaxInt32:
		return Lockup{set: true, invalid: formatFloat(f)}
	}
	return LockupMonths(int(f))
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Months returns the lock-up length and whether a lock-up is set.
func (l Lockup) Months() (int, bool) { return l.months, l.set }

// IsSet reports whether a lock-up applies.
func (l Lockup) IsSet() bool { return l.set }

// Equal compares lock-ups by value.
func (l Lockup) Equal(m Lockup) bool {
	return l.set == m.set && l.invalid == m.invalid && (!l.set || l.months == m.months)
}

func (l Lockup) String() string {
	if !l.set {
		return "none"
	}
	if l.invalid != "" {
		return l.invalid + "m"
	}
	return fmt.Sprintf("%dm", l.months)
}

func (l Lockup) validate() error {
	if l.set && l.invalid != "" {
		return fmt.Errorf("lock-up of %s months must be a whole number: %w", l.invalid, ErrInvalidFundTerms)
	}
	if l.set && l.months < 0 {
		return fmt.Errorf("lock-up of %d months: %w", l.months, ErrInvalidFundTerms)
	}
	return nil
}

// MarshalJSON encodes the lock-up as a number of months, or null when unset.
func (l Lockup) MarshalJSON() ([]byte, error) {
	if !l.set {
		return []byte("null"), nil
	}
	return json.Marshal(l.months)
}

// UnmarshalJSON decodes a number of months, or null for no lock-up.
func (l *Lockup) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = NoLockup()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid lock-up %s: %w", data, err)
	}
	*l = LockupMonths(n)
	return nil
}
