package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/foundersfund/fund"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parsed is a rendered report read back as markdown.
type parsed struct {
	headings   []string
	paragraphs []string
	// tables are lists of rows, the header row first.
	tables [][][]string
}

// parse reads src with a GFM table aware parser, so that tests check the
// document structure rather than its exact spacing.
func parse(t *testing.T, src string) parsed {
	t.Helper()
	source := []byte(src)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var p parsed
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			p.headings = append(p.headings, plain(n, source))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			p.paragraphs = append(p.paragraphs, plain(n, source))
			return ast.WalkSkipChildren, nil
		case *east.Table:
			var rows [][]string
			for row := n.FirstChild(); row != nil; row = row.NextSibling() {
				var cells []string
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					cells = append(cells, plain(cell, source))
				}
				rows = append(rows, cells)
			}
			p.tables = append(p.tables, rows)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk markdown: %v", err)
	}
	return p
}

// plain returns the text of a node without its markup.
func plain(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
			if c.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// row returns the first row of table starting with label.
func row(t *testing.T, table [][]string, label string) []string {
	t.Helper()
	for _, r := range table {
		if len(r) > 0 && r[0] == label {
			return r
		}
	}
	t.Fatalf("no row %q in %v", label, table)
	return nil
}

// lauraScenario is the founders seed and Laura's contribution, both on the
// first day of the window.
func lauraScenario() fund.State {
	d := func(m time.Month, day int) fund.Date { return fund.NewDate(2025, m, day) }
	return fund.State{
		Window:                   fund.NewWindow(d(time.July, 10), d(time.December, 31)),
		WalletSizeEndOfWindow:    fund.M(50000),
		UnrealizedPnlEndOfWindow: fund.M(15000),
		Contributions: []fund.Leg{
			fund.NewFoundersSeed("founders_seed", d(time.July, 10), fund.M(5000)),
			fund.NewInvestorContribution("laura_1", "Laura", d(time.July, 10), fund.M(4500)),
		},
		Policy: fund.DefaultPolicy(),
	}
}

func mustRecompute(t *testing.T, s fund.State) fund.Outputs {
	t.Helper()
	o, err := fund.Recompute(s)
	if err != nil {
		t.Fatalf("Recompute() unexpected error: %v", err)
	}
	return o
}
