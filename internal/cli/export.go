package cli

import (
	"fmt"
	"os"
)

type ExportCmd struct {
	Output string `short:"o" type:"path" help:"Write to this file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	data, err := ctx.Journal.ExportJSON()
	if err != nil {
		return fmt.Errorf("failed to export journal: %w", err)
	}

	if c.Output == "" {
		fmt.Println(data)
		return nil
	}

	if err := os.WriteFile(c.Output, []byte(data+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %d entries to %s\n", ctx.Journal.EntryCount(), c.Output)
	return nil
}
