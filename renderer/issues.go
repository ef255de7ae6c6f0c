package renderer

import (
	"bytes"
	"fmt"

	"github.com/foundersfund/fund"
	md "github.com/nao1215/markdown"
)

// IssuesMarkdown renders validation issues, errors first.
func IssuesMarkdown(issues fund.Issues) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Validation")
	if len(issues) == 0 {
		doc.PlainText("No issues.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d errors, %d warnings, %d infos.", len(issues.Errors()), len(issues.Warnings()), len(issues.Infos())))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Severity", "Code", "Field", "Message", "Expected", "Actual"},
		Rows:      [][]string{},
	}
	for _, i := range issues.Sorted() {
		sev := i.Severity.String()
		if i.Severity == fund.SeverityError {
			sev = md.Bold(sev)
		}
		table.Rows = append(table.Rows, []string{sev, i.Code, i.Field, i.Message, i.Expected, i.Actual})
	}
	doc.Table(table)
	return doc.String()
}
