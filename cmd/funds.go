package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/yy2792/rqdliq"
	"github.com/yy2792/rqdliq/renderer"
)

// fundsCmd holds the flags for the 'funds' subcommand.
type fundsCmd struct {
	json bool
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list the funds and their redemption terms" }
func (*fundsCmd) Usage() string {
	return `rqd funds [-json]

  Lists the funds of the portfolio with their redemption frequency, settlement
  lag, gate and lock-up.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the funds as JSON")
}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	var b strings.Builder
	if err := c.run(&b, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error listing funds: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		fmt.Print(b.String())
	} else {
		printMarkdown(b.String())
	}
	return subcommands.ExitSuccess
}

// fundLine is the JSON form of a fund.
type fundLine struct {
	Name              string           `json:"name"`
	Frequency         rqdliq.Frequency `json:"frequency"`
	SettlementLagDays int              `json:"settlement_lag_days"`
	Gate              rqdliq.Gate      `json:"gate"`
	Lockup            rqdliq.Lockup    `json:"lockup_months"`
}

func (c *fundsCmd) run(w io.Writer, p *rqdliq.Portfolio) error {
	names := p.FundNames()
	funds := p.Funds()
	if !c.json {
		_, err := io.WriteString(w, renderer.FundsMarkdown(names, funds))
		return err
	}
	lines := make([]fundLine, 0, len(names))
	for _, name := range names {
		f := funds[name]
		lines = append(lines, fundLine{
			Name:              f.Name(),
			Frequency:         f.Frequency(),
			SettlementLagDays: f.SettlementLagDays(),
			Gate:              f.Gate(),
			Lockup:            f.Lockup(),
		})
	}
	return rqdliq.EncodeJSON(w, lines)
}
