package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foundersfund/fund"
	"github.com/foundersfund/fund/config"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	ledgerFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ffc fmt [-l <ledger file>]

  Validates and formats the ledger file. This command reads all legs, checks
  them, sorts them by date, and writes them back in a canonical JSONL format.
  By default, it formats the ledger of the scenario file in-place.

Usage Examples:
$ ffc fmt -l ledger.jsonl

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to format. Defaults to the scenario ledger.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := c.ledgerFile
	if path == "" {
		sc, err := config.LoadFromFile(*scenarioFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
			return subcommands.ExitFailure
		}
		path = sc.LedgerPath()
	}
	if path == "" {
		fmt.Fprintf(os.Stderr, "Warning: no ledger file to format.\n")
		return subcommands.ExitSuccess
	}

	if err := formatLedger(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Ledger file '%s' has been formatted.\n", path)
	return subcommands.ExitSuccess
}

// formatLedger rewrites the ledger file at path sorted and canonically encoded.
// The file is left untouched if any leg is invalid.
func formatLedger(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading ledger file %q: %w", path, err)
	}
	legs, err := fund.DecodeLegs(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("error decoding ledger %q: %w", path, err)
	}
	var b bytes.Buffer
	if err := fund.EncodeLegs(&b, fund.SortLegs(legs)...); err != nil {
		return err
	}
	return os.WriteFile(path, b.Bytes(), 0644)
}
