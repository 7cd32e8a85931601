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
	"github.com/yy2792/rqdliq/date"
	"github.com/yy2792/rqdliq/renderer"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	date   string
	fund   string
	settle bool
	json   bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the redemption schedule of every tranche" }
func (*projectCmd) Usage() string {
	return `rqd project [-d <date>] [-f <fund>] [-settle] [-json]

  Projects, for a redemption notice given on the decision date, the dates and
  amounts at which every tranche is redeemed (or settled with -settle).
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Decision date (YYYY-MM-DD)")
	f.StringVar(&c.fund, "f", "", "restrict the projection to this fund")
	f.BoolVar(&c.settle, "settle", false, "project settlement dates instead of redemption dates")
	f.BoolVar(&c.json, "json", false, "print the projection as JSON")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		fmt.Fprintf(os.Stderr, "Error projecting redemptions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		fmt.Print(b.String())
	} else {
		printMarkdown(b.String())
	}
	return subcommands.ExitSuccess
}

func (c *projectCmd) run(w io.Writer, p *rqdliq.Portfolio, on date.Date) error {
	rows, err := p.Projections(on, c.settle)
	if err != nil {
		return err
	}
	if c.fund != "" {
		if _, err := p.Fund(c.fund); err != nil {
			return err
		}
		selected := rows[:0]
		for _, r := range rows {
			if r.Fund == c.fund {
				selected = append(selected, r)
			}
		}
		rows = selected
	}
	if c.json {
		return rqdliq.EncodeProjections(w, rows)
	}
	_, err = io.WriteString(w, renderer.ProjectionsMarkdown(on, rows, c.settle, cfg.Currency))
	return err
}
