// Package renderer formats fund computations as markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/foundersfund/fund"
	md "github.com/nao1215/markdown"
)

// OutputsMarkdown renders a computation: the profit derivation, the
// allocation of every participant and the legs carried to the next window.
func OutputsMarkdown(s fund.State, o fund.Outputs) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Window %s", s.Window.Name()))
	doc.PlainText(fmt.Sprintf("From %s to %s, %d days.", s.Window.Start, s.Window.End, s.Window.Days()))

	p := o.Profit
	summary := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Realized Profit"), md.Bold(o.RealizedProfit.String())},
		Rows: [][]string{
			{"Wallet Size", p.Wallet.String()},
			{"Investor Seed Baseline", p.Baseline.String()},
			{"Contributions", p.Contributions.String()},
			{"Profit Total", o.ProfitTotal.String()},
			{"Unrealized PnL", p.Unrealized.String()},
		},
	}
	doc.Table(summary)
	if p.Clamped {
		doc.PlainText(md.Bold("A negative profit was floored at zero."))
	}

	doc.H2("Allocation")
	doc.Table(allocationTable(o))

	doc.H2("Carry Forward")
	legs := o.CarryLegs()
	if len(legs) == 0 {
		doc.PlainText("Nothing is carried to the next window.")
	} else {
		doc.Table(legsTable(legs))
	}
	return doc.String()
}

// allocationTable lists founders then investors, with a total row.
func allocationTable(o fund.Outputs) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Participant", "Dollar-Days", "Share", "Gross", "Mgmt Fee", "Net", "Moonbag", "End Capital"},
		Rows:   [][]string{},
	}
	for _, name := range o.Participants() {
		fee := "-"
		if name != fund.FoundersName {
			fee = o.ManagementFees.Investors[name].Neg().SignedString()
		}
		table.Rows = append(table.Rows, []string{
			name,
			o.DollarDays.Of(name).String(),
			o.Shares.Of(name).String(),
			o.RealizedGross.Of(name).String(),
			fee,
			o.RealizedNet.Of(name).String(),
			o.Moonbag.Of(name).String(),
			o.EndCapital.Of(name).String(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(o.DollarDays.Total.String()),
		md.Bold(o.Shares.Sum().String()),
		md.Bold(o.RealizedGross.Total().String()),
		md.Bold(o.ManagementFees.Sum().Neg().SignedString()),
		md.Bold(o.RealizedNet.Total().String()),
		md.Bold(o.Moonbag.Total().String()),
		md.Bold(o.EndCapital.Total().String()),
	})
	return table
}

func legsTable(legs []fund.Leg) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "ID", "Name", "Type", "Amount"},
		Rows:      [][]string{},
	}
	for _, l := range legs {
		table.Rows = append(table.Rows, []string{l.On.String(), l.ID, l.Name, string(l.Type), l.Amount.String()})
	}
	return table
}
