package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Journal.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized journal at: %s\n", ctx.Journal.Path())
	return nil
}
