package rqdliq

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	assert.False(t, NoGate().IsSet())
	assert.False(t, Gate{}.IsSet(), "zero value is no gate")
	assert.False(t, GateFromFloat(math.NaN()).IsSet())

	g := GateFromFloat(0.33)
	f, ok := g.Fraction()
	require.True(t, ok)
	assert.True(t, f.Equal(D(0.33)))
	assert.Equal(t, "33.00%", g.String())
	assert.Equal(t, "none", NoGate().String())
	assert.Error(t, GateFromFloat(math.Inf(-1)).validate())

	assert.True(t, NewGate(0.5).Equal(NewGate(0.50)))
	assert.False(t, NewGate(0.5).Equal(NoGate()))
	assert.True(t, NoGate().Equal(Gate{}))
}

func TestGateJSON(t *testing.T) {
	var v struct {
		Gate Gate `json:"gate"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"gate": 0.25}`), &v))
	assert.True(t, v.Gate.Equal(NewGate(0.25)))

	require.NoError(t, json.Unmarshal([]byte(`{"gate": null}`), &v))
	assert.False(t, v.Gate.IsSet())

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"gate": null}`, string(data))
}

func TestLockup(t *testing.T) {
	assert.False(t, NoLockup().IsSet())
	assert.False(t, LockupFromFloat(math.NaN()).IsSet())
	n, ok := LockupFromFloat(12).Months()
	assert.True(t, ok)
	assert.Equal(t, 12, n)
	assert.Equal(t, "12m", LockupMonths(12).String())
	assert.False(t, LockupFromFloat(12.7).Equal(LockupMonths(12)), "months are never truncated")
	assert.Error(t, LockupFromFloat(12.7).validate())
	assert.NoError(t, LockupFromFloat(12).validate())
	assert.False(t, LockupMonths(0).Equal(NoLockup()), "a zero lock-up is not the absence of lock-up")

	var v struct {
		Lockup Lockup `json:"lockup"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lockup": 36}`), &v))
	assert.True(t, v.Lockup.Equal(LockupMonths(36)))
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lockup": 36}`, string(data))
}
