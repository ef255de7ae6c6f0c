package renderer

import (
	"bytes"

	"github.com/foundersfund/fund"
	md "github.com/nao1215/markdown"
)

// Scenario is a labeled what-if result.
type Scenario struct {
	Label   string
	Outputs fund.Outputs
}

// ScenariosMarkdown compares the realized net of every participant across
// scenarios, one column per scenario.
func ScenariosMarkdown(scenarios []Scenario) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("What If")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Participant"},
		Rows:      [][]string{},
	}
	var names [][]string
	for _, s := range scenarios {
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, s.Label)
		names = append(names, s.Outputs.Participants())
	}
	row := func(label string, value func(fund.Outputs) string) {
		r := []string{label}
		for _, s := range scenarios {
			r = append(r, value(s.Outputs))
		}
		table.Rows = append(table.Rows, r)
	}
	row(md.Bold("Realized Profit"), func(o fund.Outputs) string { return md.Bold(o.RealizedProfit.String()) })
	for _, name := range fund.Participants(names...) {
		row(name, func(o fund.Outputs) string { return o.RealizedNet.Of(name).String() })
	}
	row("Mgmt Carry", func(o fund.Outputs) string { return o.ManagementFees.FoundersCarryTotal.String() })
	doc.Table(table)
	return doc.String()
}
