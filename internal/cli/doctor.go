package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/daybook/internal/backup"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/lockfile"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	fileReadable := false

	// Check 1: Journal file readable
	if err := checkJournalReadable(ctx); err != nil {
		fmt.Printf("❌ Journal readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Journal readable: OK\n")
		fileReadable = true
	}

	// Check 2: Document validation (only if the file parses)
	if fileReadable {
		if err := checkDocument(ctx); err != nil {
			fmt.Printf("❌ Journal validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Journal validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Journal validation: SKIPPED (journal not readable)\n")
	}

	// Check 3: Version supported
	if fileReadable {
		if err := checkVersion(ctx); err != nil {
			fmt.Printf("❌ Journal version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Journal version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Journal version: SKIPPED (journal not readable)\n")
	}

	// Check 4: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: Lockfile sanity (warning only)
	if pid, held := lockfile.Holder(ctx.Journal.Path()); held {
		fmt.Printf("⚠ Lockfile: WARNING\n")
		fmt.Printf("   another daybook process (pid %d) is using this journal\n", pid)
	} else {
		fmt.Printf("✓ Lockfile: OK\n")
	}

	// Check 6: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

// checkJournalReadable inspects the raw journal file. A missing file is fine,
// the journal just has not been written yet.
func checkJournalReadable(ctx *Context) error {
	path := ctx.Journal.Path()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if strings.HasSuffix(path, ".db") {
		db, err := sql.Open("sqlite", path+"?mode=ro")
		if err != nil {
			return fmt.Errorf("failed to open journal database: %w", err)
		}
		defer db.Close()

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
			return fmt.Errorf("journal database appears to be corrupted: %w", err)
		}
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	var doc storage.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("journal does not parse: %w", err)
	}

	return nil
}

func checkDocument(ctx *Context) error {
	doc := ctx.Provider.Load()

	result := validation.New().ValidateDocument(doc)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	return nil
}

func checkVersion(ctx *Context) error {
	doc := ctx.Provider.Load()

	if doc.Version > constants.StorageVersion {
		return fmt.Errorf("journal version (%d) is newer than supported version (%d)", doc.Version, constants.StorageVersion)
	}

	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Journal.Path())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'daybook backup create'")
	}

	return nil
}

func checkClockTimezone() error {
	// Check if system time is reasonable
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	// Check if timezone is set
	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// This might be intentional, so just note it
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
