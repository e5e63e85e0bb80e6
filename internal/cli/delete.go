package cli

import "fmt"

type EntryDeleteCmd struct {
	ID string `arg:"" help:"Entry ID or unique prefix."`
}

func (c *EntryDeleteCmd) Run(ctx *Context) error {
	entry, ok := ctx.Journal.Resolve(c.ID)
	if !ok {
		// Deleting an absent entry is not an error, there is nothing to do
		fmt.Printf("No entry matches %s; nothing deleted\n", c.ID)
		return nil
	}

	ctx.Journal.Delete(entry.ID)

	title := entry.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("Deleted entry: %s (ID: %s)\n", title, shortID(entry.ID))
	return nil
}
