package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/validation"
)

// NewEntryForm creates the form for writing or editing an entry
func NewEntryForm(fm *EntryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title),
			huh.NewText().
				Title("Body").
				Value(&fm.Body),
			huh.NewInput().
				Title("Mood").
				Description("One word, e.g. calm or stressed").
				Value(&fm.Mood),
			huh.NewInput().
				Title("Tags").
				Description("Comma-separated").
				Value(&fm.Tags),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Leave empty for today").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !validation.ValidDate(strings.TrimSpace(s)) {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Pinned").
				Value(&fm.Pinned),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewProfileForm creates the form for editing the journal owner's profile
func NewProfileForm(fm *ProfileFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Accent color").
				Description("#RGB, #RRGGBB or #AARRGGBB").
				Value(&fm.Accent).
				Validate(func(s string) error {
					if _, ok := validation.NormalizeHex(strings.TrimSpace(s)); !ok {
						return fmt.Errorf("invalid color, use #RGB, #RRGGBB or #AARRGGBB")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// splitTags parses a comma-separated tag list, dropping blanks.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
