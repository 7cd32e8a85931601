package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/yy2792/rqdliq"
	"github.com/yy2792/rqdliq/date"
	"github.com/yy2792/rqdliq/renderer"
)

// ladderCmd holds the flags for the 'ladder' subcommand.
type ladderCmd struct {
	date     string
	horizons string
	json     bool
}

func (*ladderCmd) Name() string     { return "ladder" }
func (*ladderCmd) Synopsis() string { return "display the liquidity ladder" }
func (*ladderCmd) Usage() string {
	return `rqd ladder [-d <date>] [-h 30,90,180,365] [-json]

  Displays the share of the portfolio nav settled within each horizon after a
  redemption notice given on the decision date.
`
}

func (c *ladderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Decision date (YYYY-MM-DD)")
	f.StringVar(&c.horizons, "h", "", "comma separated horizons in days (default 30,90,180,365)")
	f.BoolVar(&c.json, "json", false, "print the ladder as JSON")
}

func (c *ladderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDecision(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if _, err := parseHorizons(c.horizons); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing horizons: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	var b strings.Builder
	if err := c.run(&b, p, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error computing ladder: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		fmt.Print(b.String())
	} else {
		printMarkdown(b.String())
	}
	return subcommands.ExitSuccess
}

// parseHorizons parses a comma separated list of days.
func parseHorizons(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return rqdliq.DefaultHorizons, nil
	}
	var hs []int
	for _, field := range strings.Split(s, ",") {
		h, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid horizon %q: %w", field, err)
		}
		hs = append(hs, h)
	}
	return hs, nil
}

func (c *ladderCmd) run(w io.Writer, p *rqdliq.Portfolio, on date.Date) error {
	hs, err := parseHorizons(c.horizons)
	if err != nil {
		return err
	}
	rungs, err := p.Ladder(on, hs)
	if err != nil {
		return err
	}
	if c.json {
		return rqdliq.EncodeJSON(w, rungs)
	}
	_, err = io.WriteString(w, renderer.LadderMarkdown(on, rungs, cfg.Currency))
	return err
}
