package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/yy2792/rqdliq"
	"github.com/yy2792/rqdliq/date"
)

// curveCmd holds the flags for the 'curve' subcommand.
type curveCmd struct {
	date string
	by   string
}

func (*curveCmd) Name() string     { return "curve" }
func (*curveCmd) Synopsis() string { return "print the cumulative settlement curves as JSON" }
func (*curveCmd) Usage() string {
	return `rqd curve [-d <date>] [-by fund|tranche]

  Prints, as JSON ready to plot, the cumulative cash settled over time after a
  redemption notice given on the decision date.
`
}

func (c *curveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Decision date (YYYY-MM-DD)")
	f.StringVar(&c.by, "by", "fund", "one curve per 'fund' or per 'tranche'")
}

func (c *curveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDecision(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.by != "fund" && c.by != "tranche" {
		fmt.Fprintf(os.Stderr, "-by must be 'fund' or 'tranche', got %q\n", c.by)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.run(os.Stdout, p, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error computing curves: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *curveCmd) run(w io.Writer, p *rqdliq.Portfolio, on date.Date) error {
	var curves []rqdliq.Curve
	var err error
	switch c.by {
	case "tranche":
		curves, err = p.CurvesByTranche(on)
	default:
		curves, err = p.CurvesByFund(on)
	}
	if err != nil {
		return err
	}
	return rqdliq.EncodeJSON(w, curves)
}
