package rqdliq

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yy2792/rqdliq/date"
)

// Flow is an amount of cash leaving a fund on a given date.
type Flow struct {
	Date   date.Date
	Amount decimal.Decimal
}

// MarshalJSON encodes the flow as a ["YYYY-MM-DD", amount] pair.
func (f Flow) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{f.Date, json.Number(f.Amount.String())})
}

// UnmarshalJSON decodes a ["YYYY-MM-DD", amount] pair.
func (f *Flow) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("flow must be a [date, amount] pair, got %d items", len(pair))
	}
	if err := json.Unmarshal(pair[0], &f.Date); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &f.Amount)
}

// Schedule is a chronological list of flows.
type Schedule []Flow

// Total returns the sum of all amounts.
func (s Schedule) Total() decimal.Decimal {
	total := decimal.Zero
	for _, f := range s {
		total = total.Add(f.Amount)
	}
	return total
}

// Shift returns a copy of the schedule with every date moved by days.
func (s Schedule) Shift(days int) Schedule {
	shifted := make(Schedule, len(s))
	for i, f := range s {
		shifted[i] = Flow{Date: f.Date.Add(days), Amount: f.Amount}
	}
	return shifted
}

// weightedDays returns Σ days(from → flow date) × amount.
func (s Schedule) weightedDays(from date.Date) decimal.Decimal {
	sum := decimal.Zero
	for _, f := range s {
		sum = sum.Add(decimal.NewFromInt(int64(from.DaysUntil(f.Date))).Mul(f.Amount))
	}
	return sum
}
