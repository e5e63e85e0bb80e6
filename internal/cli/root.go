package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/daybook/internal/backup"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/diary"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/validation"
)

type Context struct {
	Journal  *diary.Store
	Provider storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Journal.Path())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func getCurrentDate() string {
	return time.Now().Format(constants.DateFormat)
}

// resolveDate turns the user-facing date argument into a YYYY-MM-DD string.
// Empty input and the literal "today" both mean the current day.
func resolveDate(s string) (string, error) {
	if s == "" || s == "today" {
		return getCurrentDate(), nil
	}
	if !validation.ValidDate(s) {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", s)
	}
	return s, nil
}

// shortID returns the display form of an entry ID, enough to resolve it back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "#" + tag
	}
	return strings.Join(parts, " ")
}

// printEntryLine renders the one-line listing form of an entry.
func printEntryLine(e models.Entry) {
	status := ""
	if e.Pinned {
		status = "[pinned]"
	}

	title := e.Title
	if title == "" {
		title = "(untitled)"
	}

	fmt.Printf("  %s  %s  %-30s %s\n", shortID(e.ID), e.Date, title, status)

	details := ""
	if e.Mood != "" {
		details = "mood: " + e.Mood
	}
	if tags := formatTags(e.Tags); tags != "" {
		if details != "" {
			details += "  "
		}
		details += tags
	}
	if details != "" {
		fmt.Printf("            %s\n", details)
	}
}

// findEntry resolves a full ID or unique prefix, with a uniform error.
func findEntry(ctx *Context, id string) (models.Entry, error) {
	entry, ok := ctx.Journal.Resolve(id)
	if !ok {
		return models.Entry{}, fmt.Errorf("entry not found: %s", id)
	}
	return entry, nil
}
