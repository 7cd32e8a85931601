package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/yy2792/rqdliq"
	"github.com/yy2792/rqdliq/date"
	"github.com/yy2792/rqdliq/renderer"
)

// liquidityCmd holds the flags for the 'liquidity' subcommand.
type liquidityCmd struct {
	date string
	fund string
	json bool
}

func (*liquidityCmd) Name() string { return "liquidity" }
func (*liquidityCmd) Synopsis() string {
	return "compute the weighted-average time to liquidity"
}
func (*liquidityCmd) Usage() string {
	return `rqd liquidity [-d <date>] [-f <fund>] [-json]

  Computes the nav-weighted average number of days between the decision date
  and the settlement of the cash, per fund and for the whole portfolio.
`
}

func (c *liquidityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Decision date (YYYY-MM-DD)")
	f.StringVar(&c.fund, "f", "", "only compute the liquidity of this fund")
	f.BoolVar(&c.json, "json", false, "print the result as JSON")
}

func (c *liquidityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDecision(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	var b strings.Builder
	if err := c.run(&b, p, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error computing liquidity: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json || c.fund != "" {
		fmt.Print(b.String())
	} else {
		printMarkdown(b.String())
	}
	return subcommands.ExitSuccess
}

func (c *liquidityCmd) run(w io.Writer, p *rqdliq.Portfolio, on date.Date) error {
	if c.fund != "" {
		days, err := p.WeightedAverageLiquidity(c.fund, on)
		if err != nil {
			return err
		}
		if c.json {
			return rqdliq.EncodeJSON(w, struct {
				Fund     string          `json:"fund"`
				Decision date.Date       `json:"decision"`
				Days     decimal.Decimal `json:"days"`
			}{c.fund, on, days})
		}
		_, err = fmt.Fprintf(w, "%s: %s days\n", c.fund, days.StringFixed(2))
		return err
	}

	report, err := p.NewLiquidityReport(on)
	if err != nil {
		return err
	}
	if c.json {
		return rqdliq.EncodeJSON(w, report)
	}
	_, err = io.WriteString(w, renderer.LiquidityMarkdown(report, cfg.Currency))
	return err
}
