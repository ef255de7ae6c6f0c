package renderer

import (
	"bytes"

	"github.com/foundersfund/fund"
	md "github.com/nao1215/markdown"
)

// TrendMarkdown renders one row per recorded window, oldest first.
func TrendMarkdown(rows []fund.TrendRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trend")
	if len(rows) == 0 {
		doc.PlainText("No snapshot recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Recorded", "Window", "Wallet", "Realized", "Unrealized", "Founders Share", "Mgmt Carry"},
		Rows:   [][]string{},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Timestamp.Format("2006-01-02 15:04"),
			r.Window.Name(),
			r.WalletSizeEnd.String(),
			r.Realized.String(),
			r.Unrealized.String(),
			r.Shares.Founders.String(),
			r.ManagementFees.FoundersCarryTotal.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
