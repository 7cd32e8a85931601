package rqdliq

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/yy2792/rqdliq/date"
)

// DefaultHorizons are the ladder horizons, in days, used by the rqd tool.
var DefaultHorizons = []int{30, 90, 180, 365}

// Rung is the cash settled within a horizon after the decision date.
type Rung struct {
	// Days is the horizon; -1 for the last rung, which holds everything.
	Days   int             `json:"days"`
	Amount decimal.Decimal `json:"amount"`
	// Share is Amount over the portfolio nav.
	Share decimal.Decimal `json:"share"`
}

// Label names the rung for reports.
func (r Rung) Label() string {
	if r.Days < 0 {
		return "all"
	}
	return fmt.Sprintf("≤ %dd", r.Days)
}

// Ladder returns the cumulative amount settled within each horizon, plus a
// last rung with all settlements. Horizons must be non negative; they are
// sorted and de-duplicated.
func (p *Portfolio) Ladder(decision date.Date, horizons []int) ([]Rung, error) {
	hs := slices.Clone(horizons)
	slices.Sort(hs)
	hs = slices.Compact(hs)
	if len(hs) > 0 && hs[0] < 0 {
		return nil, fmt.Errorf("negative ladder horizon %d", hs[0])
	}

	amounts := make([]decimal.Decimal, len(hs)+1)
	for i := range amounts {
		amounts[i] = decimal.Zero
	}
	nav := decimal.Zero
	for _, name := range p.order {
		settlements, err := p.ProjectSettlementsForFund(name, decision)
		if err != nil {
			return nil, err
		}
		for id, s := range settlements {
			nav = nav.Add(p.tranches[name][id].NAV())
			for _, f := range s {
				days := decision.DaysUntil(f.Date)
				for i, h := range hs {
					if days <= h {
						amounts[i] = amounts[i].Add(f.Amount)
					}
				}
				amounts[len(hs)] = amounts[len(hs)].Add(f.Amount)
			}
		}
	}
	if nav.IsZero() {
		return nil, fmt.Errorf("ladder on %s: %w", decision, ErrNoNAV)
	}

	rungs := make([]Rung, len(amounts))
	for i, a := range amounts {
		days := -1
		if i < len(hs) {
			days = hs[i]
		}
		rungs[i] = Rung{Days: days, Amount: a, Share: a.Div(nav)}
	}
	return rungs, nil
}
