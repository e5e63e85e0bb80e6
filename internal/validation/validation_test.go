package validation

import (
	"testing"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

func TestNormalizeHex(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"#7E57C2", "#7E57C2", true},
		{"#7e57c2", "#7E57C2", true},
		{"#FFF", "#FFFFFF", true},
		{"#abc", "#AABBCC", true},
		{"#FF7E57C2", "#7E57C2", true}, // alpha channel dropped
		{"#007e57c2", "#7E57C2", true},
		{"", "", false},
		{"#", "", false},
		{"7E57C2", "", false}, // missing hash
		{"#GG0011", "", false},
		{"#FFFF", "", false},
		{"#FFFFF", "", false},
		{"#FFFFFFF", "", false},
		{"purple", "", false},
	}

	for _, tc := range cases {
		out, ok := NormalizeHex(tc.in)
		if ok != tc.ok {
			t.Errorf("NormalizeHex(%q) ok = %v, expected %v", tc.in, ok, tc.ok)
			continue
		}
		if out != tc.out {
			t.Errorf("NormalizeHex(%q) = %q, expected %q", tc.in, out, tc.out)
		}
	}
}

func TestRenderColor(t *testing.T) {
	if got := RenderColor("#7e57c2"); got != "#7E57C2" {
		t.Errorf("Expected valid color to normalize, got %q", got)
	}
	if got := RenderColor("not a color"); got != "#000000" {
		t.Errorf("Expected invalid color to render black, got %q", got)
	}
	if got := RenderColor(""); got != "#000000" {
		t.Errorf("Expected empty color to render black, got %q", got)
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2026-03-10") {
		t.Error("Expected 2026-03-10 to be valid")
	}
	if ValidDate("2026-3-10") {
		t.Error("Expected 2026-3-10 to be rejected")
	}
	if ValidDate("10/03/2026") {
		t.Error("Expected 10/03/2026 to be rejected")
	}
	if ValidDate("") {
		t.Error("Expected empty date to be rejected")
	}
	if ValidDate("2026-02-30") {
		t.Error("Expected impossible date to be rejected")
	}
}

func TestEntryBlank(t *testing.T) {
	if !EntryBlank(models.Entry{}) {
		t.Error("Expected entry with no title and no body to be blank")
	}
	if !EntryBlank(models.Entry{Title: "   ", Body: "\n\t"}) {
		t.Error("Expected whitespace-only entry to be blank")
	}
	if EntryBlank(models.Entry{Title: "something"}) {
		t.Error("Expected titled entry not to be blank")
	}
	if EntryBlank(models.Entry{Body: "words"}) {
		t.Error("Expected entry with a body not to be blank")
	}
}

func TestValidateDocument_CleanJournal(t *testing.T) {
	doc := storage.DefaultDocument()
	doc.Entries = []models.Entry{
		{ID: "a", Date: "2026-03-10", Title: "fine"},
		{ID: "b", Date: "2026-03-09", Body: "also fine"},
	}
	doc.Rewards = models.Rewards{Points: 20, Streak: 2, LastEntryDate: "2026-03-10"}

	result := New().ValidateDocument(doc)
	if result.HasConflicts() {
		t.Errorf("Expected clean journal, got: %s", result.FormatReport())
	}
	if result.FormatReport() != "No problems detected." {
		t.Errorf("Unexpected report: %q", result.FormatReport())
	}
}

func TestValidateDocument_DuplicateEntryIDs(t *testing.T) {
	doc := storage.DefaultDocument()
	doc.Entries = []models.Entry{
		{ID: "dup", Date: "2026-03-10", Title: "one"},
		{ID: "dup", Date: "2026-03-09", Title: "two"},
	}

	result := New().ValidateDocument(doc)
	if !result.HasConflicts() {
		t.Fatal("Expected duplicate IDs to be flagged")
	}

	found := false
	for _, conflict := range result.Conflicts {
		if conflict.Type == ConflictDuplicateEntryID && conflict.EntryID == "dup" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected a duplicate-ID conflict, got: %s", result.FormatReport())
	}
}

func TestValidateDocument_FlagsEverythingAtOnce(t *testing.T) {
	doc := storage.DefaultDocument()
	doc.Profile.AccentColor = "mauve-ish"
	doc.Entries = []models.Entry{
		{ID: "a", Date: "last tuesday", Title: "bad date"},
		{ID: "b", Date: "2026-03-09", Title: "  ", Body: ""},
	}
	doc.Rewards = models.Rewards{
		Points: -5,
		Streak: 3,
		Badges: []string{"Centurion", "Centurion"},
	}

	result := New().ValidateDocument(doc)

	want := map[ConflictType]bool{
		ConflictInvalidEntryDate: false,
		ConflictBlankEntry:       false,
		ConflictInvalidColor:     false,
		ConflictBadRewards:       false,
	}
	for _, conflict := range result.Conflicts {
		want[conflict.Type] = true
	}
	for typ, seen := range want {
		if !seen {
			t.Errorf("Expected a %s conflict, got: %s", typ, result.FormatReport())
		}
	}
}
