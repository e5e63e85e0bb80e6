package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/validation"
)

type EntryEditCmd struct {
	ID    string  `arg:"" help:"Entry ID or unique prefix."`
	Title *string `help:"New title."`
	Body  *string `short:"b" help:"New body text."`
	Mood  *string `short:"m" help:"New mood word. Pass an empty string to clear."`
	Tags  *string `short:"t" help:"Comma-separated tags, replacing the existing ones. Pass an empty string to clear."`
	Date  *string `short:"d" help:"New entry date (YYYY-MM-DD)."`
	Pin   *bool   `short:"p" help:"Set pinned status."`
}

func (c *EntryEditCmd) Run(ctx *Context) error {
	entry, err := findEntry(ctx, c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		entry.Title = *c.Title
	}
	if c.Body != nil {
		entry.Body = *c.Body
	}
	if c.Mood != nil {
		entry.Mood = *c.Mood
	}
	if c.Tags != nil {
		entry.Tags = parseTags(*c.Tags)
	}
	if c.Date != nil {
		if !validation.ValidDate(*c.Date) {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", *c.Date)
		}
		entry.Date = *c.Date
	}
	if c.Pin != nil {
		entry.Pinned = *c.Pin
	}

	if validation.EntryBlank(entry) {
		return fmt.Errorf("entry needs a title or a body")
	}

	if !ctx.Journal.Update(entry) {
		return fmt.Errorf("entry not found: %s", c.ID)
	}

	title := entry.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("Entry updated: %s\n", title)
	return nil
}

// parseTags splits a comma-separated tag list, dropping blanks.
func parseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
