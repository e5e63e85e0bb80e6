package cli

import "fmt"

type SearchCmd struct {
	Query string `arg:"" help:"Text to search titles, bodies and tags for."`
}

func (c *SearchCmd) Run(ctx *Context) error {
	matches := ctx.Journal.Search(c.Query)

	if len(matches) == 0 {
		fmt.Printf("No entries match %q\n", c.Query)
		return nil
	}

	fmt.Printf("Entries matching %q:\n", c.Query)
	for _, entry := range matches {
		printEntryLine(entry)
	}

	return nil
}
