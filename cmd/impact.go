package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foundersfund/fund"
	"github.com/foundersfund/fund/renderer"
	"github.com/google/subcommands"
)

type impactCmd struct {
	id     string
	name   string
	amount string
	date   string
	owner  string
	legTyp string
	json   bool
}

func (*impactCmd) Name() string     { return "impact" }
func (*impactCmd) Synopsis() string { return "preview the dilution caused by a new contribution" }
func (*impactCmd) Usage() string {
	return `ffc impact -name <investor> -amount <amount> [-d <date>] [-owner investor|founders] [-type <leg type>]

  Recomputes the scenario with an extra leg and shows the change of share and
  realized net of every participant. The ledger is not modified.

Usage Examples:
# Damon adds 5000 USD on August 15th.
$ ffc impact -name Damon -amount 5000 -d 2025-08-15

`
}

func (c *impactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "leg id, a temporary one by default")
	f.StringVar(&c.name, "name", "", "investor name")
	f.StringVar(&c.amount, "amount", "", "net amount of the contribution")
	f.StringVar(&c.date, "d", fund.Today().String(), "date of the contribution. See the user manual for supported date formats.")
	f.StringVar(&c.owner, "owner", string(fund.Investor), "owner of the leg: investor or founders")
	f.StringVar(&c.legTyp, "type", string(fund.LegInvestorContribution), "leg type")
	f.BoolVar(&c.json, "json", false, "print the impact as JSON")
}

// leg builds the new leg from the flags.
func (c *impactCmd) leg() (fund.Leg, error) {
	amount, err := parseMoney("amount", c.amount)
	if err != nil {
		return fund.Leg{}, err
	}
	if amount == nil {
		return fund.Leg{}, fmt.Errorf("-amount is required")
	}
	on, err := fund.ParseDate(c.date)
	if err != nil {
		return fund.Leg{}, fmt.Errorf("invalid -d: %w", err)
	}
	typ, err := fund.ParseLegType(c.legTyp)
	if err != nil {
		return fund.Leg{}, fmt.Errorf("invalid -type: %w", err)
	}
	owner := fund.Owner(c.owner)
	name := c.name
	if owner == fund.Founders {
		name = fund.FoundersName
	}
	l := fund.Leg{ID: c.id, Owner: owner, Name: name, Type: typ, Amount: *amount, On: on, EarnsDollarDays: true}
	if err := l.Check(); err != nil {
		return fund.Leg{}, err
	}
	return l, nil
}

func (c *impactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	leg, err := c.leg()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	_, s, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	impact, err := fund.AddContributionImpact(s, leg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		return printJSON(impact)
	}
	printMarkdown(renderer.ImpactMarkdown(impact))
	return subcommands.ExitSuccess
}
