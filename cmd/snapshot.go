package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foundersfund/fund"
	"github.com/foundersfund/fund/journal"
	"github.com/foundersfund/fund/metrics"
	"github.com/foundersfund/fund/renderer"
	"github.com/google/subcommands"
)

type snapshotCmd struct {
	carry bool
	force bool
	json  bool
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record the window computation into the journal" }
func (*snapshotCmd) Usage() string {
	return `ffc snapshot [-carry] [-f] [-json]

  Computes and validates the scenario, then records the snapshot into the
  journal configured in the scenario file. With -carry, the management fee and
  moonbag legs are appended to the ledger file, for the next window.

  A scenario with validation errors is not recorded, unless -f is set.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.carry, "carry", false, "append the carry-forward legs to the ledger file")
	f.BoolVar(&c.force, "f", false, "record even if validation reports errors")
	f.BoolVar(&c.json, "json", false, "print the saved snapshot as JSON")
}

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sc, s, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.carry && sc.LedgerPath() == "" {
		fmt.Fprintf(os.Stderr, "Error: -carry requires a ledger file in the scenario\n")
		return subcommands.ExitUsageError
	}
	o, issues, err := recompute(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if issues.HasErrors() && !c.force {
		printMarkdown(renderer.IssuesMarkdown(issues))
		fmt.Fprintf(os.Stderr, "Error: %d validation errors, snapshot not recorded\n", len(issues.Errors()))
		return subcommands.ExitFailure
	}
	saved := fund.SaveSnapshot(s, o, issues)

	j, err := journal.Open(sc.Journal.Type, sc.JournalDSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		return subcommands.ExitFailure
	}
	defer j.Close()
	if err := j.Record(ctx, saved.Snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if path := sc.MetricsPath(); path != "" {
		if err := metrics.WriteTextfile(path, s, o, issues); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing metrics file: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.carry {
		if err := appendLegs(sc.LedgerPath(), saved.AuditLegs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Appended %d carry-forward legs to %s\n", len(saved.AuditLegs), sc.LedgerPath())
	}

	if c.json {
		return printJSON(saved)
	}
	fmt.Fprintf(stdout, "Recorded snapshot %s for window %s\n", saved.Snapshot.ID, s.Window.Name())
	return subcommands.ExitSuccess
}

// appendLegs appends legs to the ledger file at path.
func appendLegs(path string, legs []fund.Leg) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q: %w", path, err)
	}
	if err := fund.EncodeLegs(f, legs...); err != nil {
		f.Close()
		return fmt.Errorf("error writing ledger file %q: %w", path, err)
	}
	return f.Close()
}
