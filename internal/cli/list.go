package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/diary"
)

type EntryListCmd struct {
	Tag    string `short:"t" help:"Show only entries carrying this tag."`
	Mood   string `short:"m" help:"Show only entries with this mood."`
	Pinned bool   `short:"p" help:"Show only pinned entries."`
	Limit  int    `short:"n" help:"Maximum number of entries to show." default:"0"`
}

func (c *EntryListCmd) Run(ctx *Context) error {
	entries := ctx.Journal.Filter(diary.FilterOptions{
		Tag:        c.Tag,
		Mood:       c.Mood,
		PinnedOnly: c.Pinned,
		Limit:      c.Limit,
	})

	if len(entries) == 0 {
		fmt.Println("No entries found")
		return nil
	}

	fmt.Println("Entries:")
	for _, entry := range entries {
		printEntryLine(entry)
	}

	return nil
}
