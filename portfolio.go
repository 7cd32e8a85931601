package rqdliq

import (
	"fmt"
	"slices"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/yy2792/rqdliq/date"
)

// Portfolio is the registry of funds and of the tranches invested in them.
//
// The portfolio keeps the *Fund values it is given; tranches are matched to
// their fund by name on every computation. A Portfolio is not safe for
// concurrent use.
type Portfolio struct {
	funds    map[string]*Fund
	order    []string                       // fund names in insertion order
	tranches map[string]map[string]*Tranche // fund name -> tranche id -> tranche
	index    map[string]string              // tranche id -> fund name
	log      zerolog.Logger
}

// Option configures a Portfolio.
type Option func(*Portfolio)

// WithLogger sets the logger used for non fatal warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Portfolio) { p.log = l }
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio(opts ...Option) *Portfolio {
	p := &Portfolio{
		funds:    make(map[string]*Fund),
		tranches: make(map[string]map[string]*Tranche),
		index:    make(map[string]string),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddFund registers a fund and reports whether it was added.
//
// A fund name already present is not replaced: a warning is logged and the
// existing fund is kept. Use UpdateFund to change its terms.
func (p *Portfolio) AddFund(f *Fund) bool {
	if f == nil {
		p.log.Warn().Msg("cannot add a nil fund to the portfolio")
		return false
	}
	if _, exists := p.funds[f.Name()]; exists {
		p.log.Warn().Str("fund", f.Name()).Msg("fund already in the portfolio, keeping the existing one; use UpdateFund to change its terms")
		return false
	}
	p.funds[f.Name()] = f
	p.order = append(p.order, f.Name())
	p.tranches[f.Name()] = make(map[string]*Tranche)
	return true
}

// UpdateFund applies a patch to a registered fund.
func (p *Portfolio) UpdateFund(name string, patch FundPatch) error {
	f, ok := p.funds[name]
	if !ok {
		return fmt.Errorf("cannot update fund %q: %w", name, ErrUnknownFund)
	}
	return f.Update(patch)
}

// Fund returns the registered fund with that name.
func (p *Portfolio) Fund(name string) (*Fund, error) {
	f, ok := p.funds[name]
	if !ok {
		return nil, fmt.Errorf("fund %q: %w", name, ErrUnknownFund)
	}
	return f, nil
}

// Funds returns a copy of the fund registry. Changing the copies does not
// change the portfolio.
func (p *Portfolio) Funds() map[string]*Fund {
	funds := make(map[string]*Fund, len(p.funds))
	for name, f := range p.funds {
		funds[name] = f.clone()
	}
	return funds
}

// FundNames returns the fund names in the order they were added.
func (p *Portfolio) FundNames() []string { return slices.Clone(p.order) }

// AddTranche registers a tranche under its fund.
func (p *Portfolio) AddTranche(t *Tranche) error {
	if _, exists := p.index[t.ID()]; exists {
		return fmt.Errorf("tranche %q: %w", t.ID(), ErrDuplicateTrancheID)
	}
	lots, ok := p.tranches[t.FundName()]
	if !ok {
		return fmt.Errorf("tranche %q: fund %q: %w", t.ID(), t.FundName(), ErrUnknownFund)
	}
	p.index[t.ID()] = t.FundName()
	lots[t.ID()] = t
	return nil
}

// UpdateTrancheNAV sets the nav of the tranche with that id.
func (p *Portfolio) UpdateTrancheNAV(id string, nav decimal.Decimal) error {
	fundName, ok := p.index[id]
	if !ok {
		return fmt.Errorf("cannot update nav of %q: %w", id, ErrUnknownTranche)
	}
	return p.tranches[fundName][id].SetNAV(nav)
}

// Tranche returns the tranche with that id.
func (p *Portfolio) Tranche(id string) (*Tranche, error) {
	fundName, ok := p.index[id]
	if !ok {
		return nil, fmt.Errorf("tranche %q: %w", id, ErrUnknownTranche)
	}
	return p.tranches[fundName][id], nil
}

// Tranches returns the tranches of a fund sorted by id.
func (p *Portfolio) Tranches(fundName string) ([]*Tranche, error) {
	lots, ok := p.tranches[fundName]
	if !ok {
		return nil, fmt.Errorf("tranches of %q: %w", fundName, ErrUnknownFund)
	}
	list := make([]*Tranche, 0, len(lots))
	for _, t := range lots {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID() < list[j].ID() })
	return list, nil
}

// ProjectRedemptionsForFund projects the redemptions of every tranche of the
// fund, keyed by tranche id, using the fund's current terms.
func (p *Portfolio) ProjectRedemptionsForFund(fundName string, decision date.Date) (map[string]Schedule, error) {
	return p.projectFund(fundName, decision, (*Tranche).ProjectRedemptions)
}

// ProjectSettlementsForFund projects the settlements of every tranche of the
// fund, keyed by tranche id, using the fund's current terms.
func (p *Portfolio) ProjectSettlementsForFund(fundName string, decision date.Date) (map[string]Schedule, error) {
	return p.projectFund(fundName, decision, (*Tranche).ProjectSettlements)
}

type projector func(t *Tranche, fund *Fund, decision date.Date) (Schedule, error)

func (p *Portfolio) projectFund(fundName string, decision date.Date, project projector) (map[string]Schedule, error) {
	fund, err := p.Fund(fundName)
	if err != nil {
		return nil, err
	}
	res := make(map[string]Schedule, len(p.tranches[fundName]))
	for id, t := range p.tranches[fundName] {
		s, err := project(t, fund, decision)
		if err != nil {
			return nil, err
		}
		res[id] = s
	}
	return res, nil
}

// ProjectionRow is the projection of one tranche, the shape consumed by the
// JSON export and the plots.
type ProjectionRow struct {
	Fund       string   `json:"fund"`
	ID         string   `json:"id"`
	NAV        string   `json:"nav"`
	Projection Schedule `json:"projection"`
}

// Projections returns one row per tranche, funds in insertion order and
// tranches by id. settle selects settlement dates instead of redemption dates.
func (p *Portfolio) Projections(decision date.Date, settle bool) ([]ProjectionRow, error) {
	project := projector((*Tranche).ProjectRedemptions)
	if settle {
		project = (*Tranche).ProjectSettlements
	}
	var rows []ProjectionRow
	for _, name := range p.order {
		lots, _ := p.Tranches(name)
		for _, t := range lots {
			s, err := project(t, p.funds[name], decision)
			if err != nil {
				return nil, err
			}
			rows = append(rows, ProjectionRow{Fund: name, ID: t.ID(), NAV: t.NAV().String(), Projection: s})
		}
	}
	return rows, nil
}
