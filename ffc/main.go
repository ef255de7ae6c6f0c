// Command ffc computes the founders and investors allocations of a fund.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/foundersfund/fund"
	"github.com/foundersfund/fund/cmd"
	"github.com/foundersfund/fund/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("ffc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion, enabled with
// COMP_INSTALL=1 ffc.
func completion() *complete.Command {
	legTypes := predict.Set{}
	for _, t := range fund.LegTypes {
		legTypes = append(legTypes, string(t))
	}
	topics := docs.Topics()

	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["impact"].Flags = map[string]complete.Predictor{
		"name":   predict.Something,
		"amount": predict.Something,
		"d":      predict.Something,
		"owner":  predict.Set{string(fund.Investor), string(fund.Founders)},
		"type":   legTypes,
		"json":   predict.Nothing,
	}
	sub["fmt"].Flags = map[string]complete.Predictor{"l": predict.Files("*.jsonl")}
	sub["topic"].Args = predict.Set(append(topics, "*"))

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"scenario": predict.Files("*.yaml"),
			"v":        predict.Nothing,
			"raw":      predict.Nothing,
		},
	}
}
