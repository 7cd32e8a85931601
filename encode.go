package rqdliq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/yy2792/rqdliq/date"
)

// This file reads a portfolio snapshot and writes projections.
//
// A snapshot is a JSON document holding a list of funds and a list of
// tranches, typically exported from the investment spreadsheet:
//
//	{
//	  "funds": [
//	    {"name": "Alpha", "frequency": "quarterly", "settlement_lag_days": 30, "gate": 0.25, "lockup_months": null}
//	  ],
//	  "tranches": [
//	    {"id": 1, "fund": "Alpha", "invest_date": "2017-01-01", "nav": 100}
//	  ]
//	}
//
// Both lists are located with a jsonpath expression, so the snapshot can be
// a bigger document. Empty cells show up as null, "" or "NaN" and mean that
// the term is absent.

// SnapshotOptions locates the funds and tranches lists in a snapshot.
type SnapshotOptions struct {
	FundsPath    string
	TranchesPath string
}

// DefaultSnapshotOptions reads the "funds" and "tranches" top level keys.
var DefaultSnapshotOptions = SnapshotOptions{FundsPath: "$.funds", TranchesPath: "$.tranches"}

// fundRecord is a fund as found in a snapshot.
type fundRecord struct {
	Name              string       `json:"name" validate:"required"`
	Frequency         string       `json:"frequency" validate:"required"`
	SettlementLagDays int          `json:"settlement_lag_days" validate:"gte=0"`
	Gate              *optionalNum `json:"gate"`
	LockupMonths      *optionalNum `json:"lockup_months"`
}

// trancheRecord is a tranche as found in a snapshot.
type trancheRecord struct {
	ID         flexString      `json:"id"`
	Fund       string          `json:"fund" validate:"required"`
	InvestDate string          `json:"invest_date" validate:"required,datetime=2006-01-02"`
	NAV        decimal.Decimal `json:"nav"`
}

// optionalNum is a number that may be missing: absent, null, "" and "NaN"
// all read as NaN.
type optionalNum float64

func (o *optionalNum) float() float64 {
	if o == nil {
		return math.NaN()
	}
	return float64(*o)
}

func (o *optionalNum) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch strings.ToLower(s) {
	case "null", "", "nan":
		*o = optionalNum(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}
	*o = optionalNum(f)
	return nil
}

// flexString accepts both strings and numbers, spreadsheet ids are often numeric.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number, got %s", data)
	}
	*s = flexString(n.String())
	return nil
}

var validate = validator.New()

// DecodeSnapshot reads a snapshot and returns the portfolio it describes.
func DecodeSnapshot(r io.Reader, opts SnapshotOptions, popts ...Option) (*Portfolio, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	p := NewPortfolio(popts...)

	var funds []fundRecord
	if err := selectRecords(doc, opts.FundsPath, &funds); err != nil {
		return nil, fmt.Errorf("funds: %w", err)
	}
	for i, rec := range funds {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("fund #%d: %w", i, err)
		}
		f, err := NewFund(rec.Name, rec.Frequency, rec.SettlementLagDays,
			GateFromFloat(rec.Gate.float()), LockupFromFloat(rec.LockupMonths.float()))
		if err != nil {
			return nil, fmt.Errorf("fund #%d: %w", i, err)
		}
		p.AddFund(f)
	}

	var tranches []trancheRecord
	if err := selectRecords(doc, opts.TranchesPath, &tranches); err != nil {
		return nil, fmt.Errorf("tranches: %w", err)
	}
	for i, rec := range tranches {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("tranche #%d: %w", i, asDateError(err))
		}
		on, err := date.Of(rec.InvestDate)
		if err != nil {
			return nil, fmt.Errorf("tranche #%d: %w", i, err)
		}
		t, err := NewTranche(rec.Fund, on, rec.NAV, string(rec.ID))
		if err != nil {
			return nil, fmt.Errorf("tranche #%d: %w", i, err)
		}
		if err := p.AddTranche(t); err != nil {
			return nil, fmt.Errorf("tranche #%d: %w", i, err)
		}
	}
	return p, nil
}

// selectRecords extracts the list at path and decodes it into v.
func selectRecords(doc any, path string, v any) error {
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("selecting %q: %w", path, err)
	}
	if val == nil {
		return nil
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}
	return nil
}

// asDateError flags validation failures of the invest date as date format
// errors, so that callers can test them with errors.Is.
func asDateError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			if fe.Field() == "InvestDate" && fe.Tag() == "datetime" {
				return fmt.Errorf("%w: %w", err, ErrInvalidDateFormat)
			}
		}
	}
	return err
}

// EncodeProjections writes the projection rows as an indented JSON list.
func EncodeProjections(w io.Writer, rows []ProjectionRow) error {
	if rows == nil {
		rows = []ProjectionRow{}
	}
	return EncodeJSON(w, rows)
}

// EncodeJSON writes v (a liquidity report, curves, a ladder...) as indented
// JSON followed by a new line.
func EncodeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
