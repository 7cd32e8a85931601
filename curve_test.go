package rqdliq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurvesByFund(t *testing.T) {
	p := testPortfolio(t,
		MustNewFund("testFund1", "M", 45, NewGate(0.25), LockupMonths(12)),
		MustNewFund("testFund2", "Q", 0, NoGate(), NoLockup()),
	)
	curves, err := p.CurvesByFund(d("2017-11-01"))
	require.NoError(t, err)
	require.Len(t, curves, 2)

	c := curves[0]
	assert.Equal(t, "testFund1", c.Name)
	// decision, then the union of both tranches' settlement dates.
	wantDates := []string{"2017-11-01", "2018-03-17", "2018-04-14", "2018-05-15", "2018-06-14", "2018-07-15"}
	wantCum := []float64{0, 25, 125, 225, 325, 400}
	require.Len(t, c.Points, len(wantDates))
	for i := range wantDates {
		assert.Equal(t, d(wantDates[i]), c.Points[i].Date)
		assert.InDelta(t, wantCum[i], c.Points[i].Cumulative, 1e-9)
	}

	assert.Equal(t, "testFund2", curves[1].Name)
	require.Len(t, curves[1].Points, 2)
	assert.InDelta(t, 100, curves[1].Points[1].Cumulative, 1e-9)
}

func TestCurvesByTranche(t *testing.T) {
	p := testPortfolio(t,
		MustNewFund("testFund1", "M", 45, NewGate(0.25), LockupMonths(12)),
		MustNewFund("testFund2", "Q", 0, NoGate(), NoLockup()),
	)
	curves, err := p.CurvesByTranche(d("2017-11-01"))
	require.NoError(t, err)
	require.Len(t, curves, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{curves[0].Name, curves[1].Name, curves[2].Name})

	last := curves[1].Points[len(curves[1].Points)-1]
	assert.Equal(t, d("2018-07-15"), last.Date)
	assert.InDelta(t, 300, last.Cumulative, 1e-9)
}

func TestCurveOnDecisionDate(t *testing.T) {
	// a settlement on the decision date merges with the starting point.
	c := newCurve("x", d("2017-12-31"), Schedule{flow("2017-12-31", 10), flow("2018-03-31", 5)})
	require.Len(t, c.Points, 2)
	assert.InDelta(t, 10, c.Points[0].Cumulative, 1e-9)
	assert.InDelta(t, 15, c.Points[1].Cumulative, 1e-9)
}
