package rqdliq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshot = `{
  "funds": [
    {"name": "testFund1", "frequency": "monthly", "settlement_lag_days": 45, "gate": 0.25, "lockup_months": 12},
    {"name": "testFund2", "frequency": "Q", "settlement_lag_days": 0, "gate": "NaN", "lockup_months": null},
    {"name": "testFund3", "frequency": "A", "settlement_lag_days": 30}
  ],
  "tranches": [
    {"id": 1, "fund": "testFund1", "invest_date": "2017-01-01", "nav": 100},
    {"id": "2", "fund": "testFund1", "invest_date": "2017-02-01", "nav": "300"},
    {"id": 3, "fund": "testFund2", "invest_date": "2017-03-01", "nav": 100.5}
  ]
}`

func TestDecodeSnapshot(t *testing.T) {
	p, err := DecodeSnapshot(strings.NewReader(snapshot), DefaultSnapshotOptions)
	require.NoError(t, err)

	assert.Equal(t, []string{"testFund1", "testFund2", "testFund3"}, p.FundNames())
	funds := p.Funds()
	assert.True(t, funds["testFund1"].Equal(MustNewFund("testFund1", "M", 45, NewGate(0.25), LockupMonths(12))))
	assert.True(t, funds["testFund2"].Equal(MustNewFund("testFund2", "Q", 0, NoGate(), NoLockup())))
	assert.True(t, funds["testFund3"].Equal(MustNewFund("testFund3", "A", 30, NoGate(), NoLockup())))

	tr, err := p.Tranche("3")
	require.NoError(t, err)
	assert.Equal(t, "testFund2", tr.FundName())
	assert.Equal(t, d("2017-03-01"), tr.InvestDate())
	requireDecimal(t, D(100.5), tr.NAV())

	tr2, err := p.Tranche("2")
	require.NoError(t, err)
	requireDecimal(t, D(300), tr2.NAV())
}

func TestDecodeSnapshotPaths(t *testing.T) {
	doc := `{"export": {"sheet": {"Funds": [{"name": "f", "frequency": "S", "settlement_lag_days": 0}],
	"Tranches": [{"fund": "f", "invest_date": "2017-01-01", "nav": 1}]}}}`
	opts := SnapshotOptions{FundsPath: "$.export.sheet.Funds", TranchesPath: "$.export.sheet.Tranches"}
	p, err := DecodeSnapshot(strings.NewReader(doc), opts)
	require.NoError(t, err)

	lots, err := p.Tranches("f")
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.NotEmpty(t, lots[0].ID(), "missing ids are generated")
}

func TestDecodeSnapshotRepeatingGate(t *testing.T) {
	doc := `{"funds": [{"name": "f", "frequency": "A", "settlement_lag_days": 0, "gate": 0.3333333333333333}],
	"tranches": [{"id": 1, "fund": "f", "invest_date": "2017-01-01", "nav": 100}]}`
	p, err := DecodeSnapshot(strings.NewReader(doc), DefaultSnapshotOptions)
	require.NoError(t, err)

	res, err := p.ProjectRedemptionsForFund("f", d("2017-01-01"))
	require.NoError(t, err)
	require.Len(t, res["1"], 3, "schedule %v", res["1"])
	assert.Equal(t, d("2019-12-31"), res["1"][2].Date)
	requireDecimal(t, D(100), res["1"].Total())
}

func TestDecodeSnapshotErrors(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "bad frequency",
			doc:     `{"funds": [{"name": "f", "frequency": "W"}], "tranches": []}`,
			wantErr: ErrInvalidFrequency,
		},
		{
			name:    "gate out of range",
			doc:     `{"funds": [{"name": "f", "frequency": "M", "gate": 2}], "tranches": []}`,
			wantErr: ErrInvalidFundTerms,
		},
		{
			name:    "unknown fund",
			doc:     `{"funds": [], "tranches": [{"id": 1, "fund": "f", "invest_date": "2017-01-01", "nav": 1}]}`,
			wantErr: ErrUnknownFund,
		},
		{
			name: "duplicate tranche",
			doc: `{"funds": [{"name": "f", "frequency": "M"}], "tranches": [
				{"id": 1, "fund": "f", "invest_date": "2017-01-01", "nav": 1},
				{"id": "1", "fund": "f", "invest_date": "2017-01-01", "nav": 1}]}`,
			wantErr: ErrDuplicateTrancheID,
		},
		{
			name:    "negative nav",
			doc:     `{"funds": [{"name": "f", "frequency": "M"}], "tranches": [{"id": 1, "fund": "f", "invest_date": "2017-01-01", "nav": -1}]}`,
			wantErr: ErrNegativeNAV,
		},
		{
			name:    "fractional lock-up",
			doc:     `{"funds": [{"name": "f", "frequency": "M", "lockup_months": 12.7}], "tranches": []}`,
			wantErr: ErrInvalidFundTerms,
		},
		{
			name:    "bad date",
			doc:     `{"funds": [{"name": "f", "frequency": "M"}], "tranches": [{"id": 1, "fund": "f", "invest_date": "01/01/2017", "nav": 1}]}`,
			wantErr: ErrInvalidDateFormat,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSnapshot(strings.NewReader(tc.doc), DefaultSnapshotOptions)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := DecodeSnapshot(strings.NewReader(`{"funds": [{"frequency": "M"}], "tranches": []}`), DefaultSnapshotOptions)
	assert.Error(t, err, "a fund needs a name")
	_, err = DecodeSnapshot(strings.NewReader(`not json`), DefaultSnapshotOptions)
	assert.Error(t, err)
}
