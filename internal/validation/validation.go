package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateEntryID ConflictType = "duplicate_entry_id"
	ConflictInvalidEntryDate ConflictType = "invalid_entry_date"
	ConflictBlankEntry       ConflictType = "blank_entry"
	ConflictInvalidColor     ConflictType = "invalid_accent_color"
	ConflictBadRewards       ConflictType = "inconsistent_rewards"
)

// Conflict represents a problem found in the stored journal
type Conflict struct {
	Type        ConflictType
	Description string
	EntryID     string // ID of the entry involved (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks a journal document for internal consistency
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateDocument checks the whole journal document. None of the reported
// conflicts stop the journal from loading; they feed the doctor command.
func (v *Validator) ValidateDocument(doc storage.Document) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string]int)
	for _, e := range doc.Entries {
		seen[e.ID]++
	}
	for id, count := range seen {
		if count > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateEntryID,
				Description: fmt.Sprintf("entry ID %s appears %d times", id, count),
				EntryID:     id,
			})
		}
	}

	for _, e := range doc.Entries {
		if !ValidDate(e.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidEntryDate,
				Description: fmt.Sprintf("entry %s has unreadable date %q", e.ID, e.Date),
				EntryID:     e.ID,
			})
		}
		if EntryBlank(e) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictBlankEntry,
				Description: fmt.Sprintf("entry %s has neither title nor body", e.ID),
				EntryID:     e.ID,
			})
		}
	}

	if _, ok := NormalizeHex(doc.Profile.AccentColor); !ok {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidColor,
			Description: fmt.Sprintf("accent color %q is not a valid hex color and will render as black", doc.Profile.AccentColor),
		})
	}

	result.Conflicts = append(result.Conflicts, validateRewards(doc.Rewards)...)

	return result
}

func validateRewards(r models.Rewards) []Conflict {
	var conflicts []Conflict

	if r.Points < 0 {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictBadRewards,
			Description: fmt.Sprintf("points are negative (%d)", r.Points),
		})
	}
	if r.Streak < 0 {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictBadRewards,
			Description: fmt.Sprintf("streak is negative (%d)", r.Streak),
		})
	}
	if r.LastEntryDate == "" && r.Streak > 0 {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictBadRewards,
			Description: "streak is positive but no entry date is recorded",
		})
	}
	if r.LastEntryDate != "" && !ValidDate(r.LastEntryDate) {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictBadRewards,
			Description: fmt.Sprintf("last entry date %q is unreadable", r.LastEntryDate),
		})
	}

	badgeSeen := make(map[string]bool)
	for _, b := range r.Badges {
		if badgeSeen[b] {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictBadRewards,
				Description: fmt.Sprintf("badge %q recorded more than once", b),
			})
		}
		badgeSeen[b] = true
	}

	return conflicts
}

// EntryBlank reports whether an entry has neither title nor body. The edit
// surfaces refuse to create one; stored data may still contain them.
func EntryBlank(e models.Entry) bool {
	return strings.TrimSpace(e.Title) == "" && strings.TrimSpace(e.Body) == ""
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

// NormalizeHex parses a user color string in #RGB, #RRGGBB or #AARRGGBB form
// into the #RRGGBB form terminals understand. The alpha channel of eight
// digit colors is dropped. ok is false for anything else.
func NormalizeHex(s string) (string, bool) {
	if len(s) < 2 || s[0] != '#' {
		return "", false
	}

	hex := s[1:]
	for _, r := range hex {
		if !isHexDigit(r) {
			return "", false
		}
	}

	switch len(hex) {
	case 3:
		// #RGB doubles each digit
		out := []byte{'#', hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}
		return strings.ToUpper(string(out)), true
	case 6:
		return "#" + strings.ToUpper(hex), true
	case 8:
		return "#" + strings.ToUpper(hex[2:]), true
	}

	return "", false
}

// RenderColor resolves a stored accent color for rendering. Invalid colors
// silently come back as opaque black instead of failing.
func RenderColor(s string) string {
	if normalized, ok := NormalizeHex(s); ok {
		return normalized
	}
	return constants.FallbackColor
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
