package rqdliq

import (
	"fmt"

	"github.com/yy2792/rqdliq/date"
)

// Fund holds the redemption terms of a fund.
//
// A Fund is shared by reference: the Portfolio keeps the *Fund it was given,
// and tranches only remember the fund name. Changes made with Update are
// therefore seen by every later projection.
type Fund struct {
	name          string
	frequency     Frequency
	settlementLag int // days between redemption and cash
	gate          Gate
	lockup        Lockup
}

// NewFund validates the terms and returns a new Fund.
//
// frequency accepts the short codes and the long forms understood by
// ParseFrequency. Use GateFromFloat and LockupFromFloat when the terms come
// from a source where missing values are NaN.
func NewFund(name, frequency string, settlementLagDays int, gate Gate, lockup Lockup) (*Fund, error) {
	f, err := ParseFrequency(frequency)
	if err != nil {
		return nil, fmt.Errorf("fund %q: %w", name, err)
	}
	fund := &Fund{
		name:          name,
		frequency:     f,
		settlementLag: settlementLagDays,
		gate:          gate,
		lockup:        lockup,
	}
	if err := fund.validate(); err != nil {
		return nil, err
	}
	return fund, nil
}

// MustNewFund is like NewFund but panics on error.
func MustNewFund(name, frequency string, settlementLagDays int, gate Gate, lockup Lockup) *Fund {
	f, err := NewFund(name, frequency, settlementLagDays, gate, lockup)
	if err != nil {
		panic(err.Error())
	}
	return f
}

func (f *Fund) validate() error {
	if f.name == "" {
		return fmt.Errorf("fund without a name: %w", ErrInvalidFundTerms)
	}
	if !f.frequency.Valid() {
		return fmt.Errorf("fund %q: frequency %v: %w", f.name, f.frequency, ErrInvalidFrequency)
	}
	if f.settlementLag < 0 {
		return fmt.Errorf("fund %q: settlement lag of %d days: %w", f.name, f.settlementLag, ErrInvalidFundTerms)
	}
	if err := f.gate.validate(); err != nil {
		return fmt.Errorf("fund %q: %w", f.name, err)
	}
	if err := f.lockup.validate(); err != nil {
		return fmt.Errorf("fund %q: %w", f.name, err)
	}
	return nil
}

func (f *Fund) Name() string           { return f.name }
func (f *Fund) Frequency() Frequency   { return f.frequency }
func (f *Fund) SettlementLagDays() int { return f.settlementLag }
func (f *Fund) Gate() Gate             { return f.gate }
func (f *Fund) Lockup() Lockup         { return f.lockup }

// LegalRedemptionStart returns the first day an investment made on investDate
// may be redeemed.
func (f *Fund) LegalRedemptionStart(investDate date.Date) date.Date {
	months, ok := f.lockup.Months()
	if !ok {
		return investDate
	}
	return investDate.AddMonths(months)
}

// FundPatch lists the terms to change in Fund.Update. Nil fields are left
// untouched, so a zero lock-up or NoGate can be set explicitly.
type FundPatch struct {
	Frequency         *Frequency
	SettlementLagDays *int
	Gate              *Gate
	Lockup            *Lockup
}

// Update applies the patch. The new terms are validated first; on error the
// fund is left unchanged.
func (f *Fund) Update(p FundPatch) error {
	next := *f
	if p.Frequency != nil {
		next.frequency = *p.Frequency
	}
	if p.SettlementLagDays != nil {
		next.settlementLag = *p.SettlementLagDays
	}
	if p.Gate != nil {
		next.gate = *p.Gate
	}
	if p.Lockup != nil {
		next.lockup = *p.Lockup
	}
	if err := next.validate(); err != nil {
		return err
	}
	*f = next
	return nil
}

// Equal reports whether both funds have the same name and terms.
func (f *Fund) Equal(g *Fund) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f.name == g.name &&
		f.frequency == g.frequency &&
		f.settlementLag == g.settlementLag &&
		f.gate.Equal(g.gate) &&
		f.lockup.Equal(g.lockup)
}

// clone returns an independent copy; all fields are values.
func (f *Fund) clone() *Fund {
	c := *f
	return &c
}

func (f *Fund) String() string {
	return fmt.Sprintf("%s(%v, lag %dd, gate %v, lock-up %v)", f.name, f.frequency, f.settlementLag, f.gate, f.lockup)
}
