package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/foundersfund/fund/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the manual" }
func (*topicCmd) Usage() string {
	return `ffc topic [-l] [<topic>...]

Print the manual pages of the given topics, the index when none is given.
"*" prints every page.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "list the topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		fmt.Fprintln(stdout, strings.Join(docs.Topics(), "\n"))
		return subcommands.ExitSuccess
	}
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}
	page, err := docs.Pages(topics...)
	if err != nil {
		log.Printf("topic: %v (try ffc topic -l)", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(page)
	return subcommands.ExitSuccess
}
