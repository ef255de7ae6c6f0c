package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/foundersfund/fund"
	"github.com/foundersfund/fund/renderer"
	"github.com/google/subcommands"
)

type whatifCmd struct {
	wallet     string
	unrealized string
	mgmtFee    string
	entryFee   string
	moonbagPct string
	wallets    string
	json       bool
}

func (*whatifCmd) Name() string     { return "whatif" }
func (*whatifCmd) Synopsis() string { return "compare the scenario with other wallet sizes or fee rates" }
func (*whatifCmd) Usage() string {
	return `ffc whatif [-wallet <amount>] [-unrealized <amount>] [-mgmt-fee <rate>] [-entry-fee <rate>] [-moonbag-pct <rate>] [-wallets <a,b,...>]

  Recomputes the scenario with some values replaced, and compares the realized
  net profit of every participant with the scenario as recorded.

  -wallets computes one alternative per wallet size, the other flags apply to
  all of them.

Usage Examples:
# What if the management fee was 15%?
$ ffc whatif -mgmt-fee 0.15

`
}

func (c *whatifCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.wallet, "wallet", "", "wallet size at the window end")
	f.StringVar(&c.unrealized, "unrealized", "", "unrealized profit at the window end")
	f.StringVar(&c.mgmtFee, "mgmt-fee", "", "management fee rate, 0.2 for 20%")
	f.StringVar(&c.entryFee, "entry-fee", "", "entry fee rate, 0.1 for 10%")
	f.StringVar(&c.moonbagPct, "moonbag-pct", "", "founders part of the moonbag, 0.75 for 75%")
	f.StringVar(&c.wallets, "wallets", "", "comma separated wallet sizes to sweep")
	f.BoolVar(&c.json, "json", false, "print the alternative outputs as JSON")
}

// overrides builds the alternative scenarios from the flags.
func (c *whatifCmd) overrides(base fund.State) ([]fund.Overrides, []string, error) {
	var o fund.Overrides
	var err error
	if o.WalletSizeEndOfWindow, err = parseMoney("wallet", c.wallet); err != nil {
		return nil, nil, err
	}
	if o.UnrealizedPnlEndOfWindow, err = parseMoney("unrealized", c.unrealized); err != nil {
		return nil, nil, err
	}

	policy := base.Policy
	changed := false
	for _, r := range []struct {
		name, value string
		dst         *fund.Ratio
	}{
		{"mgmt-fee", c.mgmtFee, &policy.MgmtFeeRate},
		{"entry-fee", c.entryFee, &policy.EntryFeeRate},
		{"moonbag-pct", c.moonbagPct, &policy.FoundersMoonbagPct},
	} {
		v, err := parseRatio(r.name, r.value)
		if err != nil {
			return nil, nil, err
		}
		if v != nil {
			*r.dst, changed = *v, true
		}
	}
	if changed {
		o.Policy = &policy
	}

	if c.wallets == "" {
		return []fund.Overrides{o}, []string{"what if"}, nil
	}
	var scenarios []fund.Overrides
	var labels []string
	for _, w := range strings.Split(c.wallets, ",") {
		w = strings.TrimSpace(w)
		wallet, err := parseMoney("wallets", w)
		if err != nil {
			return nil, nil, err
		}
		alt := o
		alt.WalletSizeEndOfWindow = wallet
		scenarios = append(scenarios, alt)
		labels = append(labels, wallet.String())
	}
	return scenarios, labels, nil
}

func (c *whatifCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, base, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	scenarios, labels, err := c.overrides(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	before, _, err := recompute(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	outputs, err := fund.Sweep(base, scenarios)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		return printJSON(outputs)
	}

	results := []renderer.Scenario{{Label: "recorded", Outputs: before}}
	for i, o := range outputs {
		results = append(results, renderer.Scenario{Label: labels[i], Outputs: o})
	}
	printMarkdown(renderer.ScenariosMarkdown(results))
	return subcommands.ExitSuccess
}
