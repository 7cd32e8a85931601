package rqdliq

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yy2792/rqdliq/date"
)

// d is a helper for tests to write dates as strings.
func d(s string) date.Date { return date.MustParse(s) }

// flow is a helper for tests to write a flow from constants.
func flow(on string, amount float64) Flow { return Flow{Date: d(on), Amount: D(amount)} }

// requireSchedule compares schedules with decimal equality on amounts.
func requireSchedule(t *testing.T, want, got Schedule) {
	t.Helper()
	require.Len(t, got, len(want), "schedule %v", got)
	for i := range want {
		require.Equal(t, want[i].Date, got[i].Date, "date of flow #%d", i)
		require.True(t, want[i].Amount.Equal(got[i].Amount), "amount of flow #%d: want %s, got %s", i, want[i].Amount, got[i].Amount)
	}
}

// requireDecimal compares decimals by value.
func requireDecimal(t *testing.T, want, got decimal.Decimal) {
	t.Helper()
	require.True(t, want.Equal(got), "want %s, got %s", want, got)
}

// testPortfolio builds the portfolio used across the portfolio tests: a
// gated monthly fund with two tranches and a quarterly fund with one.
func testPortfolio(t *testing.T, fund1, fund2 *Fund) *Portfolio {
	t.Helper()
	p := NewPortfolio()
	p.AddFund(fund1)
	p.AddFund(fund2)
	require.NoError(t, p.AddTranche(MustNewTranche(fund1.Name(), d("2017-01-01"), D(100), "1")))
	require.NoError(t, p.AddTranche(MustNewTranche(fund1.Name(), d("2017-02-01"), D(300), "2")))
	require.NoError(t, p.AddTranche(MustNewTranche(fund2.Name(), d("2017-03-01"), D(100), "3")))
	return p
}
