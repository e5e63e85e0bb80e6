package cli

import (
	"fmt"
	"time"
)

type EntryShowCmd struct {
	ID string `arg:"" help:"Entry ID or unique prefix."`
}

func (c *EntryShowCmd) Run(ctx *Context) error {
	entry, err := findEntry(ctx, c.ID)
	if err != nil {
		return err
	}

	title := entry.Title
	if title == "" {
		title = "(untitled)"
	}

	fmt.Printf("%s\n", title)
	fmt.Printf("  ID:    %s\n", entry.ID)
	fmt.Printf("  Date:  %s\n", entry.Date)
	if entry.Mood != "" {
		fmt.Printf("  Mood:  %s\n", entry.Mood)
	}
	if tags := formatTags(entry.Tags); tags != "" {
		fmt.Printf("  Tags:  %s\n", tags)
	}
	if entry.Pinned {
		fmt.Printf("  Pinned: yes\n")
	}
	if !entry.CreatedAt.IsZero() {
		fmt.Printf("  Created: %s\n", entry.CreatedAt.Local().Format(time.RFC822))
	}
	if !entry.UpdatedAt.IsZero() && !entry.UpdatedAt.Equal(entry.CreatedAt) {
		fmt.Printf("  Updated: %s\n", entry.UpdatedAt.Local().Format(time.RFC822))
	}

	if entry.Body != "" {
		fmt.Printf("\n%s\n", entry.Body)
	}

	return nil
}
