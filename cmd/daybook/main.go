package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/diary"
	"github.com/julianstephens/daybook/internal/lockfile"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Journal file path (.json or .db)." type:"path" default:"~/.config/daybook/daybook.json"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Init     cli.InitCmd        `cmd:"" help:"Initialize a new journal."`
	Tui      cli.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add      cli.EntryAddCmd    `cmd:"" help:"Add a journal entry."`
	List     cli.EntryListCmd   `cmd:"" help:"List journal entries."`
	Show     cli.EntryShowCmd   `cmd:"" help:"Show a single entry."`
	Edit     cli.EntryEditCmd   `cmd:"" help:"Edit an existing entry."`
	Delete   cli.EntryDeleteCmd `cmd:"" help:"Delete an entry."`
	Pin      cli.EntryPinCmd    `cmd:"" help:"Pin or unpin an entry."`
	Search   cli.SearchCmd      `cmd:"" help:"Search entries by text."`
	Profile  cli.ProfileCmd     `cmd:"" help:"View or update your profile."`
	Rewards  cli.RewardsCmd     `cmd:"" help:"Show points, streak and badges."`
	Missions cli.MissionsCmd    `cmd:"" help:"View and claim daily missions."`
	Export   cli.ExportCmd      `cmd:"" help:"Export entries as JSON."`
	Doctor   cli.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
	Debug    cli.DebugCmd       `cmd:"" help:"Debug commands for troubleshooting."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage journal backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("daybook"),
		kong.Description("Personal journal with daily missions, streaks and badges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Verbose, DataDir: filepath.Dir(CLI.Data)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Pick the storage backend from the data file extension
	var provider storage.Provider
	if strings.HasSuffix(CLI.Data, ".db") {
		provider = storage.NewSQLiteStore(CLI.Data)
	} else {
		provider = storage.NewJSONStore(CLI.Data)
	}

	lock, err := lockfile.Acquire(CLI.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	journal := diary.New(provider)

	appCtx := &cli.Context{
		Journal:  journal,
		Provider: provider,
	}

	// Open the journal before running the command (init performs its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		journal.Open()
	}

	err = ctx.Run(appCtx)
	lock.Release()
	if closeErr := provider.Close(); closeErr != nil {
		logger.Warn("failed to close journal", "error", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
