package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/foundersfund/fund"
	"github.com/foundersfund/fund/config"
	"github.com/google/subcommands"
)

type initCmd struct {
	force bool
	empty bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "write a starter scenario file" }
func (*initCmd) Usage() string {
	return `ffc init [-f] [-empty]

  Writes the scenario file with the reference dataset: the founders seed and
  the first contributions of Laura and Damon. With -empty, the scenario covers
  the current quarter and has no contribution.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "overwrite an existing scenario file")
	f.BoolVar(&c.empty, "empty", false, "write a scenario without any contribution")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := *scenarioFile
	if _, err := os.Stat(path); err == nil && !c.force {
		fmt.Fprintf(os.Stderr, "Error: %s already exists, use -f to overwrite it\n", path)
		return subcommands.ExitFailure
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	sc := config.Default()
	if !c.empty {
		sc = config.FromState(fund.SeedState())
	}
	if err := sc.SaveToFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Scenario written to %s\n", path)
	return subcommands.ExitSuccess
}
