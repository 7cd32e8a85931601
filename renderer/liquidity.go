package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/yy2792/rqdliq"
	"github.com/yy2792/rqdliq/date"
)

// LiquidityMarkdown renders the weighted-average time to liquidity of each
// fund and of the portfolio.
func LiquidityMarkdown(r *rqdliq.LiquidityReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Time to liquidity on %s", r.Decision))
	doc.PlainText(fmt.Sprintf("Portfolio: %s for %s of nav.", Days(r.Days), Amount(r.NAV, currency)))

	table := md.TableSet{
		Header: []string{"Fund", "NAV", "Weighted days"},
	}
	for _, f := range r.Funds {
		table.Rows = append(table.Rows, []string{f.Fund, Amount(f.NAV, currency), Days(f.Days)})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Portfolio"), md.Bold(Amount(r.NAV, currency)), md.Bold(Days(r.Days))})
	doc.Table(table)
	return doc.String()
}

// LadderMarkdown renders the share of nav settled within each horizon.
func LadderMarkdown(decision date.Date, rungs []rqdliq.Rung, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Liquidity ladder on %s", decision))
	table := md.TableSet{
		Header: []string{"Settled", "Amount", "Share"},
	}
	for _, r := range rungs {
		table.Rows = append(table.Rows, []string{r.Label(), Amount(r.Amount, currency), Share(r.Share)})
	}
	doc.Table(table)
	return doc.String()
}
