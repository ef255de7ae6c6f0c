package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foundersfund/fund/config"
	"github.com/foundersfund/fund/journal"
	"github.com/foundersfund/fund/renderer"
	"github.com/google/subcommands"
)

type trendCmd struct {
	json bool
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "list the recorded snapshots" }
func (*trendCmd) Usage() string {
	return `ffc trend [-json]

  Lists one row per snapshot recorded in the journal of the scenario, oldest
  first.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the trend rows as JSON")
}

func (c *trendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sc, err := config.LoadFromFile(*scenarioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	j, err := journal.Open(sc.Journal.Type, sc.JournalDSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		return subcommands.ExitFailure
	}
	defer j.Close()

	rows, err := j.Trend(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		return printJSON(rows)
	}
	printMarkdown(renderer.TrendMarkdown(rows))
	return subcommands.ExitSuccess
}
