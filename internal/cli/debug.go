package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DataPath    *DebugDataPathCmd    `cmd:"" help:"Show journal file path."`
	DumpEntry   *DebugDumpEntryCmd   `cmd:"" help:"Dump a single entry as JSON."`
	DumpRewards *DebugDumpRewardsCmd `cmd:"" help:"Dump the rewards state as JSON."`
}

type DebugDataPathCmd struct{}

func (cmd *DebugDataPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.Journal.Path(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpEntryCmd struct {
	ID string `arg:"" help:"ID of the entry to dump."`
}

func (cmd *DebugDumpEntryCmd) Run(ctx *Context) error {
	entry, err := findEntry(ctx, cmd.ID)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpRewardsCmd struct{}

func (cmd *DebugDumpRewardsCmd) Run(ctx *Context) error {
	jsonBytes, err := json.MarshalIndent(ctx.Journal.Rewards(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rewards: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
