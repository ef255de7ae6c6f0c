package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/foundersfund/fund/renderer"
	"github.com/google/subcommands"
)

type validateCmd struct {
	json bool
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check the allocations reconcile and the ledger follows the rules" }
func (*validateCmd) Usage() string {
	return `ffc validate [-json]

  Recomputes the scenario and reports every reconciliation error, business
  rule warning and information. Exits with a failure status when any error
  is found.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the issues as JSON")
}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, s, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	_, issues, err := recompute(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if status := printJSON(issues.Sorted()); status != subcommands.ExitSuccess {
			return status
		}
	} else {
		printMarkdown(renderer.IssuesMarkdown(issues))
	}
	if issues.HasErrors() {
		log.Printf("%d validation errors", len(issues.Errors()))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
