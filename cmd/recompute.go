package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/foundersfund/fund/metrics"
	"github.com/foundersfund/fund/renderer"
	"github.com/google/subcommands"
)

type recomputeCmd struct {
	json  bool
	query string
}

func (*recomputeCmd) Name() string     { return "recompute" }
func (*recomputeCmd) Synopsis() string { return "compute the allocations of the scenario window" }
func (*recomputeCmd) Usage() string {
	return `ffc recompute [-json] [-q <jsonpath>]

  Computes the profit, the dollar-days, the shares, the management fees, the
  moonbag and the end capital of every participant.

Usage Examples:
# Laura's realized net profit.
$ ffc recompute -q '$.realizedNet.investors.Laura'

`
}

func (c *recomputeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the outputs as JSON")
	f.StringVar(&c.query, "q", "", "print the result of a JSONPath query on the outputs")
}

func (c *recomputeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sc, s, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	o, issues, err := recompute(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if path := sc.MetricsPath(); path != "" {
		if err := metrics.WriteTextfile(path, s, o, issues); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing metrics file: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	switch {
	case c.query != "":
		v, err := query(c.query, o)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		return printJSON(v)
	case c.json:
		return printJSON(o)
	default:
		printMarkdown(renderer.OutputsMarkdown(s, o) + "\n" + renderer.IssuesMarkdown(issues))
		return subcommands.ExitSuccess
	}
}

// query evaluates a JSONPath expression on the JSON form of v.
func query(path string, v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var obj any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	res, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", path, err)
	}
	return res, nil
}
