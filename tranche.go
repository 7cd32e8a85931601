package rqdliq

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yy2792/rqdliq/date"
)

// Tranche is one investment lot in a fund.
//
// Only the fund name is kept: the fund terms are passed in at projection
// time so that updated terms are always used.
type Tranche struct {
	id         string
	fundName   string
	investDate date.Date
	nav        decimal.Decimal
}

// NewTranche returns a new tranche. An empty id is replaced by a generated one.
func NewTranche(fundName string, investDate date.Date, nav decimal.Decimal, id string) (*Tranche, error) {
	if nav.IsNegative() {
		return nil, fmt.Errorf("tranche %q in %q: nav %s: %w", id, fundName, nav, ErrNegativeNAV)
	}
	if id == "" {
		id = uuid.NewString()
	}
	return &Tranche{id: id, fundName: fundName, investDate: investDate, nav: nav}, nil
}

// MustNewTranche is like NewTranche but panics on error.
func MustNewTranche(fundName string, investDate date.Date, nav decimal.Decimal, id string) *Tranche {
	t, err := NewTranche(fundName, investDate, nav, id)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func (t *Tranche) ID() string            { return t.id }
func (t *Tranche) FundName() string      { return t.fundName }
func (t *Tranche) InvestDate() date.Date { return t.investDate }
func (t *Tranche) NAV() decimal.Decimal  { return t.nav }

// SetNAV updates the net asset value of the tranche.
func (t *Tranche) SetNAV(nav decimal.Decimal) error {
	if nav.IsNegative() {
		return fmt.Errorf("tranche %q: nav %s: %w", t.id, nav, ErrNegativeNAV)
	}
	t.nav = nav
	return nil
}

func (t *Tranche) String() string {
	return fmt.Sprintf("%s(%s, %s, nav %s)", t.id, t.fundName, t.investDate, t.nav)
}

// redemptionResidue is the fraction of the nav below which a remainder is not
// worth a redemption window of its own.
var redemptionResidue = decimal.New(1, -9)

// ProjectRedemptions returns the dates and amounts at which the tranche can
// be redeemed, as seen on the decision date.
//
// Redemptions start on the first window on or after both the decision date
// and the end of the lock-up. Each window takes a fixed slice of the
// original nav (the gate), the last one takes what is left, including a
// remainder smaller than a billionth of the nav. Without a gate
// the whole nav goes in the first window. A zero nav gives no redemption.
func (t *Tranche) ProjectRedemptions(fund *Fund, decision date.Date) (Schedule, error) {
	if fund == nil {
		return nil, fmt.Errorf("tranche %q belongs to %q, got no fund: %w", t.id, t.fundName, ErrFundMismatch)
	}
	if fund.Name() != t.fundName {
		return nil, fmt.Errorf("tranche %q belongs to %q, got %q: %w", t.id, t.fundName, fund.Name(), ErrFundMismatch)
	}

	cursor := date.Max(decision, fund.LegalRedemptionStart(t.investDate))
	remaining := t.nav
	if !remaining.IsPositive() {
		return Schedule{}, nil
	}

	step := remaining
	if g, ok := fund.Gate().Fraction(); ok {
		step = t.nav.Mul(g)
	}

	residue := t.nav.Mul(redemptionResidue)

	var schedule Schedule
	for remaining.IsPositive() {
		on, err := ApproachDay(cursor, fund.Frequency())
		if err != nil {
			return nil, err
		}
		amount := decimal.Min(step, remaining)
		if remaining.Sub(amount).LessThanOrEqual(residue) {
			amount = remaining
		}
		schedule = append(schedule, Flow{Date: on, Amount: amount})
		remaining = remaining.Sub(amount)
		cursor = on.Add(1)
	}
	return schedule, nil
}

// ProjectSettlements is like ProjectRedemptions with each date moved by the
// fund settlement lag: the day cash is actually paid.
func (t *Tranche) ProjectSettlements(fund *Fund, decision date.Date) (Schedule, error) {
	redemptions, err := t.ProjectRedemptions(fund, decision)
	if err != nil {
		return nil, err
	}
	return redemptions.Shift(fund.SettlementLagDays()), nil
}
