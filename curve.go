package rqdliq

import (
	"sort"

	"github.com/yy2792/rqdliq/date"
	"gonum.org/v1/gonum/floats"
)

// CurvePoint is the cumulative amount settled by a date.
type CurvePoint struct {
	Date       date.Date `json:"date"`
	Cumulative float64   `json:"cumulative"`
}

// Curve is a cumulative settlement curve, ready to plot.
type Curve struct {
	Name   string       `json:"name"`
	Points []CurvePoint `json:"points"`
}

// newCurve merges the schedules into one curve starting at (decision, 0).
// Flows on the same date are summed before accumulating.
func newCurve(name string, decision date.Date, schedules ...Schedule) Curve {
	byDate := map[date.Date]float64{decision: 0}
	for _, s := range schedules {
		for _, f := range s {
			byDate[f.Date] += f.Amount.InexactFloat64()
		}
	}
	dates := make([]date.Date, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	amounts := make([]float64, len(dates))
	for i, d := range dates {
		amounts[i] = byDate[d]
	}
	cumulative := floats.CumSum(make([]float64, len(amounts)), amounts)

	points := make([]CurvePoint, len(dates))
	for i, d := range dates {
		points[i] = CurvePoint{Date: d, Cumulative: cumulative[i]}
	}
	return Curve{Name: name, Points: points}
}

// CurvesByFund returns one cumulative settlement curve per fund, in
// insertion order.
func (p *Portfolio) CurvesByFund(decision date.Date) ([]Curve, error) {
	curves := make([]Curve, 0, len(p.order))
	for _, name := range p.order {
		settlements, err := p.ProjectSettlementsForFund(name, decision)
		if err != nil {
			return nil, err
		}
		schedules := make([]Schedule, 0, len(settlements))
		for _, s := range settlements {
			schedules = append(schedules, s)
		}
		curves = append(curves, newCurve(name, decision, schedules...))
	}
	return curves, nil
}

// CurvesByTranche returns one cumulative settlement curve per tranche, named
// after the tranche id.
func (p *Portfolio) CurvesByTranche(decision date.Date) ([]Curve, error) {
	rows, err := p.Projections(decision, true)
	if err != nil {
		return nil, err
	}
	curves := make([]Curve, 0, len(rows))
	for _, r := range rows {
		curves = append(curves, newCurve(r.ID, decision, r.Projection))
	}
	return curves, nil
}
