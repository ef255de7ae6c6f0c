// Package cmd implements the ffc command line tool to compute the fund allocations.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/foundersfund/fund"
	"github.com/foundersfund/fund/config"
	"github.com/google/subcommands"
)

// Commands lists every subcommand, in help order.
var Commands = []subcommands.Command{
	&recomputeCmd{},
	&validateCmd{},
	&whatifCmd{},
	&impactCmd{},
	&snapshotCmd{},
	&trendCmd{},
	&fmtCmd{},
	&initCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var scenarioFile = flag.String("scenario", "scenario.yaml", "Path to the scenario file (YAML or JSON)")

// Verbose logs the intermediate steps of computations to stderr.
var Verbose = flag.Bool("v", false, "log the profit derivation and other details to stderr")

var raw = flag.Bool("raw", false, "print markdown as is, without terminal rendering")

// stdout is where commands print their result.
var stdout io.Writer = os.Stdout

// loadScenario loads the scenario file and the state it describes.
func loadScenario() (*config.Scenario, fund.State, error) {
	sc, err := config.LoadFromFile(*scenarioFile)
	if err != nil {
		return nil, fund.State{}, err
	}
	s, err := sc.State()
	if err != nil {
		return nil, fund.State{}, err
	}
	return sc, s, nil
}

// recompute runs the engine on s and validates the result.
func recompute(s fund.State) (fund.Outputs, fund.Issues, error) {
	o, err := fund.Recompute(s)
	if err != nil {
		return fund.Outputs{}, nil, err
	}
	if *Verbose {
		logProfit(o.Profit)
	}
	return o, fund.Validate(s, o), nil
}

func logProfit(p fund.ProfitDerivation) {
	log.Printf("profit: wallet %s - baseline %s - contributions %s = %s", p.Wallet, p.Baseline, p.Contributions, p.Raw)
	log.Printf("profit: total %s, unrealized %s, realized %s (clamped: %t)", p.Total, p.Unrealized, p.Realized, p.Clamped)
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// printJSON writes v as indented JSON.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseMoney parses a decimal amount flag, an empty value returns nil.
func parseMoney(name, value string) (*fund.Money, error) {
	if value == "" {
		return nil, nil
	}
	var m fund.Money
	if err := m.UnmarshalText([]byte(value)); err != nil {
		return nil, fmt.Errorf("invalid -%s %q: %w", name, value, err)
	}
	return &m, nil
}

// parseRatio parses a decimal ratio flag, an empty value returns nil.
func parseRatio(name, value string) (*fund.Ratio, error) {
	if value == "" {
		return nil, nil
	}
	var r fund.Ratio
	if err := r.UnmarshalText([]byte(value)); err != nil {
		return nil, fmt.Errorf("invalid -%s %q: %w", name, value, err)
	}
	return &r, nil
}
