package rqdliq

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yy2792/rqdliq/date"
)

// liquidityTerms are the raw sums behind a weighted-average liquidity:
// Σ days × amount over settlements and Σ nav over tranches.
type liquidityTerms struct {
	weightedDays decimal.Decimal
	nav          decimal.Decimal
}

func (l liquidityTerms) add(m liquidityTerms) liquidityTerms {
	return liquidityTerms{weightedDays: l.weightedDays.Add(m.weightedDays), nav: l.nav.Add(m.nav)}
}

// average divides the weighted days by the total nav.
func (l liquidityTerms) average() (decimal.Decimal, error) {
	if l.nav.IsZero() {
		return decimal.Zero, ErrNoNAV
	}
	return l.weightedDays.Div(l.nav), nil
}

// fundTerms sums the liquidity terms of every tranche of a fund.
func (p *Portfolio) fundTerms(fundName string, decision date.Date) (liquidityTerms, error) {
	settlements, err := p.ProjectSettlementsForFund(fundName, decision)
	if err != nil {
		return liquidityTerms{}, err
	}
	terms := liquidityTerms{weightedDays: decimal.Zero, nav: decimal.Zero}
	for id, t := range p.tranches[fundName] {
		terms.nav = terms.nav.Add(t.NAV())
		terms.weightedDays = terms.weightedDays.Add(settlements[id].weightedDays(decision))
	}
	return terms, nil
}

// WeightedAverageLiquidity returns the nav-weighted average number of days
// from the decision date until the fund's tranches settle.
//
// It is Σ (days to settlement × settled amount) / Σ nav over the tranches of
// the fund. A fund with no nav fails with ErrNoNAV.
func (p *Portfolio) WeightedAverageLiquidity(fundName string, decision date.Date) (decimal.Decimal, error) {
	terms, err := p.fundTerms(fundName, decision)
	if err != nil {
		return decimal.Zero, err
	}
	avg, err := terms.average()
	if err != nil {
		return decimal.Zero, fmt.Errorf("liquidity of %q on %s: %w", fundName, decision, err)
	}
	return avg, nil
}

// WeightedAverageLiquidityPortfolio is WeightedAverageLiquidity over every
// tranche of every fund. The sums are taken over the raw terms, not over the
// fund averages, so funds without tranches do not weigh in.
func (p *Portfolio) WeightedAverageLiquidityPortfolio(decision date.Date) (decimal.Decimal, error) {
	total := liquidityTerms{weightedDays: decimal.Zero, nav: decimal.Zero}
	for _, name := range p.order {
		terms, err := p.fundTerms(name, decision)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.add(terms)
	}
	avg, err := total.average()
	if err != nil {
		return decimal.Zero, fmt.Errorf("portfolio liquidity on %s: %w", decision, err)
	}
	return avg, nil
}

// FundLiquidity is one line of a LiquidityReport.
type FundLiquidity struct {
	Fund string          `json:"fund"`
	NAV  decimal.Decimal `json:"nav"`
	// Days is the weighted-average days to settlement, unset when the fund has no nav.
	Days decimal.NullDecimal `json:"days"`
}

// LiquidityReport gathers the fund and portfolio liquidity for a decision date.
type LiquidityReport struct {
	Decision date.Date           `json:"decision"`
	Funds    []FundLiquidity     `json:"funds"`
	NAV      decimal.Decimal     `json:"nav"`
	Days     decimal.NullDecimal `json:"days"`
}

// NewLiquidityReport computes the liquidity of every fund, in insertion
// order, and of the whole portfolio.
func (p *Portfolio) NewLiquidityReport(decision date.Date) (*LiquidityReport, error) {
	report := &LiquidityReport{Decision: decision, NAV: decimal.Zero}
	total := liquidityTerms{weightedDays: decimal.Zero, nav: decimal.Zero}
	for _, name := range p.order {
		terms, err := p.fundTerms(name, decision)
		if err != nil {
			return nil, err
		}
		line := FundLiquidity{Fund: name, NAV: terms.nav}
		if avg, err := terms.average(); err == nil {
			line.Days = decimal.NewNullDecimal(avg)
		}
		report.Funds = append(report.Funds, line)
		total = total.add(terms)
	}
	report.NAV = total.nav
	if avg, err := total.average(); err == nil {
		report.Days = decimal.NewNullDecimal(avg)
	}
	return report, nil
}
