package renderer

import (
	"bytes"
	"fmt"

	"github.com/foundersfund/fund"
	md "github.com/nao1215/markdown"
)

// ImpactMarkdown renders the dilution caused by a new leg.
func ImpactMarkdown(i fund.Impact) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Impact of %s", i.Leg.ID))
	doc.PlainText(fmt.Sprintf("%s adds %s on %s.", i.Leg.Participant(), i.Leg.Amount, i.Leg.On))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Participant", "Share Before", "Share After", "Net Before", "Net After", "Net Change"},
		Rows:   [][]string{},
	}
	for _, d := range i.Deltas {
		p := d.Participant
		table.Rows = append(table.Rows, []string{
			p,
			i.Before.Shares.Of(p).String(),
			i.After.Shares.Of(p).String(),
			i.Before.RealizedNet.Of(p).String(),
			i.After.RealizedNet.Of(p).String(),
			d.RealizedNet.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}
