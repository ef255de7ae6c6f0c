package docs

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/foundersfund/fund"
	"github.com/foundersfund/fund/config"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation index is in sync with the files.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded by the ffc topic <topic_name> command.
	// 2. Every .md file in the docs directory (excluding readme.md itself) is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Topic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	for _, topic := range Topics() {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestPages(t *testing.T) {
	all, err := Pages("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, heading := range []string{"# Allocation", "# Ledger", "# Scenario", "# Validation"} {
		if strings.Count(all, heading+"\n") != 1 {
			t.Errorf("Pages(*) must hold %q once", heading)
		}
	}

	again, err := Pages("ledger", "*")
	if err != nil {
		t.Fatal(err)
	}
	if again[:len("# Ledger")] != "# Ledger" || strings.Count(again, "# Ledger\n") != 1 {
		t.Errorf("Pages(ledger, *) must start with the ledger page and print it once")
	}

	if _, err := Pages("allocation", "missing"); !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("Pages(missing) error = %v, want ErrUnknownTopic", err)
	}
	if slices.Contains(Topics(), Index) {
		t.Errorf("Topics() = %v, must not list the index", Topics())
	}
}

// TestCodeBlocks checks the examples of the manual are accepted by ffc.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		for _, b := range parseBlocks(t, file) {
			switch b.Lang {
			case "jsonl":
				if _, err := fund.DecodeLegs(strings.NewReader(b.Content)); err != nil {
					t.Errorf("%s:%d: invalid ledger: %v", file, b.Line, err)
				}
			case "yaml":
				path := filepath.Join(t.TempDir(), "scenario.yaml")
				if err := os.WriteFile(path, []byte(b.Content), 0644); err != nil {
					t.Fatal(err)
				}
				if _, err := config.LoadFromFile(path); err != nil {
					t.Errorf("%s:%d: invalid scenario: %v", file, b.Line, err)
				}
			}
		}
	}
}

// Block is a fenced code block of a markdown file.
type Block struct {
	Lang    string
	Content string
	Line    int
}

// parseBlocks returns the fenced code blocks of a markdown file.
func parseBlocks(t *testing.T, file string) []Block {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, Block{
			Lang:    string(fcb.Info.Segment.Value(content)),
			Content: b.String(),
			Line:    bytes.Count(content[:fcb.Info.Segment.Start], []byte{'\n'}) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}
