package rqdliq

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yy2792/rqdliq/date"
)

// handLiquidity recomputes Σ days × amount / nav from projected settlements.
func handLiquidity(t *testing.T, p *Portfolio, fundName string, decision date.Date, nav float64) decimal.Decimal {
	t.Helper()
	res, err := p.ProjectSettlementsForFund(fundName, decision)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, s := range res {
		for _, f := range s {
			sum = sum.Add(D(decision.DaysUntil(f.Date)).Mul(f.Amount))
		}
	}
	return sum.Div(D(nav))
}

func TestWeightedAverageLiquidityWithoutGate(t *testing.T) {
	p := NewPortfolio()
	p.AddFund(MustNewFund("testFund1", "M", 45, NoGate(), NoLockup()))
	require.NoError(t, p.AddTranche(MustNewTranche("testFund1", d("2017-01-01"), D(100), "1")))
	require.NoError(t, p.AddTranche(MustNewTranche("testFund1", d("2017-02-01"), D(300), "2")))

	decision := d("2017-11-01")
	got, err := p.WeightedAverageLiquidity("testFund1", decision)
	require.NoError(t, err)

	// both tranches redeem on 2017-11-30 and settle on 2018-01-14, 74 days later.
	requireDecimal(t, D(74), got)
	requireDecimal(t, handLiquidity(t, p, "testFund1", decision, 400), got)
}

func TestWeightedAverageLiquidity(t *testing.T) {
	p := testPortfolio(t,
		MustNewFund("testFund1", "M", 45, NewGate(0.25), NoLockup()),
		MustNewFund("testFund2", "Q", 0, NewGate(1), LockupMonths(12)),
	)
	decision := d("2017-11-01")

	got, err := p.WeightedAverageLiquidity("testFund1", decision)
	require.NoError(t, err)
	requireDecimal(t, handLiquidity(t, p, "testFund1", decision, 400), got)
	// settlements 74, 105, 136 and 164 days out, a quarter of the nav each.
	requireDecimal(t, D(119.75), got)

	// lock-up ends 2018-03-01, redeemed and settled 2018-03-31.
	got2, err := p.WeightedAverageLiquidity("testFund2", decision)
	require.NoError(t, err)
	requireDecimal(t, D(decision.DaysUntil(d("2018-03-31"))), got2)

	_, err = p.WeightedAverageLiquidity("testFund3", decision)
	assert.ErrorIs(t, err, ErrUnknownFund)
}

func TestWeightedAverageLiquidityPortfolio(t *testing.T) {
	p := NewPortfolio()
	p.AddFund(MustNewFund("testFund1", "M", 45, NewGate(0.25), NoLockup()))
	p.AddFund(MustNewFund("testFund2", "Q", 0, NewGate(1), LockupMonths(12)))
	require.NoError(t, p.AddTranche(MustNewTranche("testFund1", d("2017-01-01"), D(100), "1")))
	require.NoError(t, p.AddTranche(MustNewTranche("testFund1", d("2017-02-01"), D(300), "2")))

	// testFund2 has no tranche yet: portfolio and fund levels agree.
	decision := d("2017-11-01")
	res1, err := p.WeightedAverageLiquidity("testFund1", decision)
	require.NoError(t, err)
	res2, err := p.WeightedAverageLiquidityPortfolio(decision)
	require.NoError(t, err)
	requireDecimal(t, res1, res2)

	_, err = p.WeightedAverageLiquidity("testFund2", decision)
	assert.ErrorIs(t, err, ErrNoNAV)

	require.NoError(t, p.AddTranche(MustNewTranche("testFund2", d("2017-03-01"), D(100), "3")))
	fund2, err := p.WeightedAverageLiquidity("testFund2", decision)
	require.NoError(t, err)

	res3 := res1.Mul(D(400)).Add(fund2.Mul(D(100))).Div(D(500))
	res4, err := p.WeightedAverageLiquidityPortfolio(decision)
	require.NoError(t, err)
	requireDecimal(t, res3, res4)
	requireDecimal(t, D(125.8), res4)
}

func TestWeightedAverageLiquidityNoNAV(t *testing.T) {
	p := NewPortfolio()
	_, err := p.WeightedAverageLiquidityPortfolio(d("2017-11-01"))
	assert.ErrorIs(t, err, ErrNoNAV)

	p.AddFund(MustNewFund("testFund", "M", 0, NoGate(), NoLockup()))
	require.NoError(t, p.AddTranche(MustNewTranche("testFund", d("2017-01-01"), D(0), "1")))
	_, err = p.WeightedAverageLiquidity("testFund", d("2017-11-01"))
	assert.ErrorIs(t, err, ErrNoNAV)
}

func TestLiquidityReport(t *testing.T) {
	p := testPortfolio(t,
		MustNewFund("testFund1", "M", 45, NewGate(0.25), NoLockup()),
		MustNewFund("testFund2", "Q", 0, NewGate(1), LockupMonths(12)),
	)
	p.AddFund(MustNewFund("empty", "A", 0, NoGate(), NoLockup()))

	report, err := p.NewLiquidityReport(d("2017-11-01"))
	require.NoError(t, err)
	require.Len(t, report.Funds, 3)

	assert.Equal(t, "testFund1", report.Funds[0].Fund)
	requireDecimal(t, D(400), report.Funds[0].NAV)
	require.True(t, report.Funds[0].Days.Valid)
	requireDecimal(t, D(119.75), report.Funds[0].Days.Decimal)
	requireDecimal(t, D(150), report.Funds[1].Days.Decimal)
	assert.False(t, report.Funds[2].Days.Valid, "a fund without nav has no average")

	requireDecimal(t, D(500), report.NAV)
	require.True(t, report.Days.Valid)
	requireDecimal(t, D(125.8), report.Days.Decimal)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"decision":"2017-11-01"`)
	assert.Contains(t, string(data), `"days":null`)
}
