package cli

import "fmt"

type EntryPinCmd struct {
	ID string `arg:"" help:"Entry ID or unique prefix."`
}

func (c *EntryPinCmd) Run(ctx *Context) error {
	entry, err := findEntry(ctx, c.ID)
	if err != nil {
		return err
	}

	ctx.Journal.TogglePin(entry.ID)

	updated, _ := ctx.Journal.Entry(entry.ID)
	title := updated.Title
	if title == "" {
		title = "(untitled)"
	}

	if updated.Pinned {
		fmt.Printf("Pinned entry: %s\n", title)
	} else {
		fmt.Printf("Unpinned entry: %s\n", title)
	}
	return nil
}
