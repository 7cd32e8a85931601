// Package cmd implements the rqd command line application, projecting the
// redemptions of a portfolio of funds.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/yy2792/rqdliq"
	"github.com/yy2792/rqdliq/date"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fundsCmd{}, "portfolio")

	c.Register(&projectCmd{}, "projections")
	c.Register(&liquidityCmd{}, "projections")
	c.Register(&curveCmd{}, "projections")
	c.Register(&ladderCmd{}, "projections")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var cfg = LoadConfig()

var portfolioFile = flag.String("portfolio-file", cfg.PortfolioFile, "Path to the portfolio snapshot (JSON)")
var logLevel = flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

// newLogger returns the console logger of the application.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil || *logLevel == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// DecodePortfolio reads the portfolio snapshot of the application.
func DecodePortfolio() (*rqdliq.Portfolio, error) {
	log := newLogger()
	f, err := os.Open(*portfolioFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := rqdliq.SnapshotOptions{FundsPath: cfg.FundsPath, TranchesPath: cfg.TranchesPath}
	p, err := rqdliq.DecodeSnapshot(f, opts, rqdliq.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", *portfolioFile, err)
	}
	log.Debug().Str("file", *portfolioFile).Int("funds", len(p.FundNames())).Msg("portfolio loaded")
	return p, nil
}

// parseDecision parses the decision date flag, today when empty.
func parseDecision(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Of(s)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text if the renderer fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
