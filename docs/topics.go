// Package docs holds the user manual, as markdown topics embedded in the binary.
package docs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var manual embed.FS

// Index is the topic listing every other topic.
const Index = "readme"

// ErrUnknownTopic is returned for a topic that has no page in the manual.
var ErrUnknownTopic = errors.New("docs: unknown topic")

// Topics returns the sorted names of the manual pages, the index excluded.
func Topics() []string {
	// *.md always matches the embedded files, Glob cannot fail here.
	files, _ := fs.Glob(manual, "*.md")
	var topics []string
	for _, f := range files {
		if name := strings.TrimSuffix(path.Base(f), ".md"); name != Index {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics
}

// Topic returns the markdown page of a topic.
func Topic(name string) (string, error) {
	content, err := manual.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrUnknownTopic, name)
	}
	return string(content), nil
}

// Pages returns the pages of the named topics one after the other. "*"
// stands for every topic, and a topic requested twice is printed once.
func Pages(names ...string) (string, error) {
	var expanded []string
	for _, name := range names {
		if name == "*" {
			expanded = append(expanded, Topics()...)
			continue
		}
		expanded = append(expanded, name)
	}

	var b strings.Builder
	seen := make(map[string]bool)
	for _, name := range expanded {
		if seen[name] {
			continue
		}
		seen[name] = true
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
