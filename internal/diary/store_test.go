package diary

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

// setupSeededStore opens a fresh journal, which seeds the starter entries.
func setupSeededStore(t *testing.T) *Store {
	t.Helper()

	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "daybook.json"))
	store := New(provider)
	store.now = func() time.Time {
		return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	}
	store.Open()
	return store
}

// setupEmptyStore opens a fresh journal and removes the starter entries.
func setupEmptyStore(t *testing.T) *Store {
	t.Helper()

	store := setupSeededStore(t)
	for _, e := range store.Entries() {
		store.Delete(e.ID)
	}
	if store.EntryCount() != 0 {
		t.Fatalf("expected empty store after removing samples, got %d entries", store.EntryCount())
	}
	return store
}

func TestOpen_SeedsStarterEntries(t *testing.T) {
	// Setup
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "daybook.json"))
	store := New(provider)

	// Execute
	store.Open()

	// Assert
	if store.EntryCount() != 3 {
		t.Fatalf("Expected 3 starter entries, got %d", store.EntryCount())
	}
	for _, e := range store.Entries() {
		if e.ID == "" {
			t.Error("Starter entry has no ID")
		}
		if e.Date == "" {
			t.Error("Starter entry has no date")
		}
	}
	if store.Rewards().Points != 0 {
		t.Errorf("Starter entries must not award points, got %d", store.Rewards().Points)
	}

	// The seed is persisted: a second store on the same file sees it and
	// does not seed again
	second := New(provider)
	second.Open()
	if second.EntryCount() != 3 {
		t.Errorf("Expected reopened journal to hold 3 entries, got %d", second.EntryCount())
	}
}

func TestOpen_ReseedsWhenJournalEmptiesOut(t *testing.T) {
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "daybook.json"))
	store := New(provider)
	store.Open()

	for _, e := range store.Entries() {
		store.Delete(e.ID)
	}

	// Reopening an emptied journal brings the starter entries back
	reopened := New(provider)
	reopened.Open()
	if reopened.EntryCount() != 3 {
		t.Errorf("Expected reseeded journal to hold 3 entries, got %d", reopened.EntryCount())
	}
}

func TestAdd_PrependsNewestFirst(t *testing.T) {
	store := setupEmptyStore(t)

	first := store.Add(models.Entry{Title: "first"})
	second := store.Add(models.Entry{Title: "second"})

	entries := store.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Errorf("Expected newest entry first, got %q", entries[0].Title)
	}
	if entries[1].ID != first.ID {
		t.Errorf("Expected oldest entry last, got %q", entries[1].Title)
	}
}

func TestAdd_AssignsIdentityAndDefaults(t *testing.T) {
	store := setupEmptyStore(t)

	entry := store.Add(models.Entry{Title: "hello"})

	if entry.ID == "" {
		t.Error("Expected an assigned ID")
	}
	if entry.Date != "2026-03-10" {
		t.Errorf("Expected today's date by default, got %q", entry.Date)
	}
	if entry.CreatedAt.IsZero() || entry.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be assigned")
	}

	other := store.Add(models.Entry{Title: "world"})
	if other.ID == entry.ID {
		t.Error("Expected unique IDs per entry")
	}
}

func TestAdd_PersistsSynchronously(t *testing.T) {
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "daybook.json"))
	store := New(provider)
	store.Open()

	added := store.Add(models.Entry{Title: "persisted", Tags: []string{"check"}})

	// A second store over the same file must see the new entry at the head
	second := New(provider)
	second.Open()
	entries := second.Entries()
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries after add, got %d", len(entries))
	}
	if entries[0].ID != added.ID {
		t.Errorf("Expected new entry first after reload, got %q", entries[0].Title)
	}
}

func TestAdd_AppliesRewards(t *testing.T) {
	store := setupEmptyStore(t)

	store.Add(models.Entry{Title: "today"})

	r := store.Rewards()
	if r.Points != 10 {
		t.Errorf("Expected 10 points after one entry, got %d", r.Points)
	}
	if r.Streak != 1 {
		t.Errorf("Expected streak 1 after one entry, got %d", r.Streak)
	}
	if r.LastEntryDate != "2026-03-10" {
		t.Errorf("Expected last entry date to follow the entry, got %q", r.LastEntryDate)
	}
}

func TestAdd_BackdatedEntryKeepsItsDate(t *testing.T) {
	store := setupEmptyStore(t)

	entry := store.Add(models.Entry{Title: "catching up", Date: "2026-03-05"})

	if entry.Date != "2026-03-05" {
		t.Errorf("Expected explicit date to be kept, got %q", entry.Date)
	}
	if store.Rewards().LastEntryDate != "2026-03-05" {
		t.Errorf("Expected rewards to follow the entry date, got %q", store.Rewards().LastEntryDate)
	}
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	store := setupEmptyStore(t)

	store.Add(models.Entry{Title: "third"})
	target := store.Add(models.Entry{Title: "second"})
	store.Add(models.Entry{Title: "first"})

	target.Title = "second, revised"
	target.Body = "now with a body"
	target.Tags = []string{"revised"}
	if !store.Update(target) {
		t.Fatal("Expected update of existing entry to succeed")
	}

	entries := store.Entries()
	if entries[1].ID != target.ID {
		t.Errorf("Expected updated entry to keep its position, found %q at index 1", entries[1].Title)
	}
	if entries[1].Title != "second, revised" {
		t.Errorf("Expected title to be replaced, got %q", entries[1].Title)
	}
	if !entries[1].UpdatedAt.Equal(store.now()) {
		t.Error("Expected UpdatedAt to be bumped")
	}
	if !entries[1].CreatedAt.Equal(target.CreatedAt) {
		t.Error("Expected CreatedAt to be preserved")
	}
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	store := setupEmptyStore(t)
	store.Add(models.Entry{Title: "only"})

	ghost := models.Entry{ID: "no-such-id", Title: "ghost"}
	if store.Update(ghost) {
		t.Error("Expected update of unknown ID to report false")
	}

	entries := store.Entries()
	if len(entries) != 1 || entries[0].Title != "only" {
		t.Error("Expected list to be unchanged after unknown-ID update")
	}
}

func TestUpdate_DoesNotTouchRewards(t *testing.T) {
	store := setupEmptyStore(t)
	entry := store.Add(models.Entry{Title: "one"})
	before := store.Rewards()

	entry.Title = "one, edited"
	store.Update(entry)

	after := store.Rewards()
	if after.Points != before.Points || after.Streak != before.Streak {
		t.Errorf("Expected rewards unchanged by update, got %+v", after)
	}
}

func TestDelete_RemovesAndIsIdempotent(t *testing.T) {
	store := setupEmptyStore(t)
	keep := store.Add(models.Entry{Title: "keep"})
	goner := store.Add(models.Entry{Title: "goner"})

	if !store.Delete(goner.ID) {
		t.Fatal("Expected delete of existing entry to report true")
	}
	if store.EntryCount() != 1 {
		t.Fatalf("Expected 1 entry after delete, got %d", store.EntryCount())
	}

	// Deleting again is a no-op
	if store.Delete(goner.ID) {
		t.Error("Expected repeat delete to report false")
	}
	if store.EntryCount() != 1 {
		t.Errorf("Expected repeat delete to leave the list unchanged")
	}

	if _, ok := store.Entry(keep.ID); !ok {
		t.Error("Expected the other entry to survive")
	}
}

func TestDelete_KeepsEarnedRewards(t *testing.T) {
	store := setupEmptyStore(t)
	entry := store.Add(models.Entry{Title: "fleeting"})

	store.Delete(entry.ID)

	if store.Rewards().Points != 10 {
		t.Errorf("Expected points to survive deletion, got %d", store.Rewards().Points)
	}
}

func TestTogglePin(t *testing.T) {
	store := setupEmptyStore(t)
	entry := store.Add(models.Entry{Title: "pin me"})

	if !store.TogglePin(entry.ID) {
		t.Fatal("Expected toggle of existing entry to succeed")
	}
	got, _ := store.Entry(entry.ID)
	if !got.Pinned {
		t.Error("Expected entry to be pinned after first toggle")
	}

	store.TogglePin(entry.ID)
	got, _ = store.Entry(entry.ID)
	if got.Pinned {
		t.Error("Expected entry to be unpinned after second toggle")
	}

	if store.TogglePin("no-such-id") {
		t.Error("Expected toggle of unknown ID to report false")
	}
}

func TestSetProfile_Persists(t *testing.T) {
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "daybook.json"))
	store := New(provider)
	store.Open()

	store.SetProfile(models.Profile{Name: "Marta", AccentColor: "#FFAA00"})

	second := New(provider)
	second.Open()
	if second.Profile().Name != "Marta" {
		t.Errorf("Expected profile name to persist, got %q", second.Profile().Name)
	}
	if second.Profile().AccentColor != "#FFAA00" {
		t.Errorf("Expected accent color to persist, got %q", second.Profile().AccentColor)
	}
}

func TestClaimWriteToday(t *testing.T) {
	store := setupEmptyStore(t)

	if !store.ClaimWriteToday() {
		t.Fatal("Expected first claim of the day to succeed")
	}
	if store.Rewards().Points != 10 || store.Rewards().Streak != 1 {
		t.Errorf("Expected 10 points and streak 1, got %+v", store.Rewards())
	}
	if !store.WriteTodayDone() {
		t.Error("Expected mission to report done after the claim")
	}

	if store.ClaimWriteToday() {
		t.Error("Expected repeat claim to be refused")
	}

	// Writing an entry counts the same as a claim
	store.Add(models.Entry{Title: "still today"})
	if store.ClaimWriteToday() {
		t.Error("Expected claim after a same-day entry to be refused")
	}
	if store.Rewards().Points != 20 {
		t.Errorf("Expected 20 points (claim + entry), got %d", store.Rewards().Points)
	}
}

func TestClaimTagBonus(t *testing.T) {
	store := setupEmptyStore(t)

	store.Add(models.Entry{Title: "a", Tags: []string{"one"}})
	store.Add(models.Entry{Title: "b", Tags: []string{"two"}})
	store.Add(models.Entry{Title: "c"})

	if store.TagBonusReady() {
		t.Error("Expected mission not ready with two tagged entries")
	}
	if store.ClaimTagBonus() {
		t.Error("Expected claim with two tagged entries to be refused")
	}

	store.Add(models.Entry{Title: "d", Tags: []string{"three"}})
	if !store.TagBonusReady() {
		t.Error("Expected mission ready with three tagged entries")
	}

	pointsBefore := store.Rewards().Points
	if !store.ClaimTagBonus() {
		t.Fatal("Expected claim with three tagged entries to succeed")
	}
	if store.Rewards().Points != pointsBefore+20 {
		t.Errorf("Expected +20 points from the bonus, got %d", store.Rewards().Points-pointsBefore)
	}

	if store.ClaimTagBonus() {
		t.Error("Expected repeat claim to be refused")
	}
}

func TestClaimTagBonus_ClaimSurvivesReload(t *testing.T) {
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "daybook.json"))
	store := New(provider)
	store.now = func() time.Time {
		return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	}
	store.Open()

	store.Add(models.Entry{Title: "a", Tags: []string{"t"}})
	store.Add(models.Entry{Title: "b", Tags: []string{"t"}})
	store.Add(models.Entry{Title: "c", Tags: []string{"t"}})
	if !store.ClaimTagBonus() {
		t.Fatal("Expected claim to succeed")
	}

	second := New(provider)
	second.Open()
	if second.ClaimTagBonus() {
		t.Error("Expected claim to stay spent across a reload")
	}
	if !second.Rewards().TagBonusClaimed {
		t.Error("Expected the claim flag to persist")
	}
}

func TestSearch(t *testing.T) {
	store := setupEmptyStore(t)
	store.Add(models.Entry{Title: "Morning pages", Body: "coffee and quiet"})
	store.Add(models.Entry{Title: "Workout", Body: "5k run", Tags: []string{"health"}})
	store.Add(models.Entry{Title: "Reading", Body: "finished the novel"})

	if got := store.Search("COFFEE"); len(got) != 1 || got[0].Title != "Morning pages" {
		t.Errorf("Expected case-insensitive body match, got %d results", len(got))
	}
	if got := store.Search("health"); len(got) != 1 || got[0].Title != "Workout" {
		t.Errorf("Expected tag match, got %d results", len(got))
	}
	if got := store.Search(""); len(got) != 3 {
		t.Errorf("Expected empty query to match everything, got %d results", len(got))
	}
	if got := store.Search("nothing matches this"); len(got) != 0 {
		t.Errorf("Expected no results, got %d", len(got))
	}
}

func TestFilter(t *testing.T) {
	store := setupEmptyStore(t)
	store.Add(models.Entry{Title: "one", Mood: "calm", Tags: []string{"work"}})
	store.Add(models.Entry{Title: "two", Mood: "rough"})
	pinned := store.Add(models.Entry{Title: "three", Mood: "calm"})
	store.TogglePin(pinned.ID)

	if got := store.Filter(FilterOptions{Tag: "work"}); len(got) != 1 || got[0].Title != "one" {
		t.Errorf("Expected tag filter to find one entry, got %d", len(got))
	}
	if got := store.Filter(FilterOptions{Mood: "CALM"}); len(got) != 2 {
		t.Errorf("Expected case-insensitive mood filter to find two entries, got %d", len(got))
	}
	if got := store.Filter(FilterOptions{PinnedOnly: true}); len(got) != 1 || got[0].Title != "three" {
		t.Errorf("Expected pinned filter to find one entry, got %d", len(got))
	}
	if got := store.Filter(FilterOptions{Limit: 2}); len(got) != 2 {
		t.Errorf("Expected limit to cap results at 2, got %d", len(got))
	}
	if got := store.Filter(FilterOptions{}); len(got) != 3 {
		t.Errorf("Expected zero options to match everything, got %d", len(got))
	}
}

func TestResolve(t *testing.T) {
	store := setupEmptyStore(t)
	entry := store.Add(models.Entry{Title: "target"})

	if _, ok := store.Resolve(entry.ID); !ok {
		t.Error("Expected resolve by full ID to succeed")
	}
	if got, ok := store.Resolve(entry.ID[:8]); !ok || got.ID != entry.ID {
		t.Error("Expected resolve by unique prefix to succeed")
	}
	if _, ok := store.Resolve("zzzz"); ok {
		t.Error("Expected resolve of unknown prefix to fail")
	}
	if _, ok := store.Resolve(""); ok {
		t.Error("Expected resolve of empty string to fail")
	}
}

func TestExportJSON(t *testing.T) {
	store := setupEmptyStore(t)
	store.Add(models.Entry{Title: "exported", Tags: []string{"debug"}})

	out, err := store.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "exported" {
		t.Errorf("Expected exported entry in output, got %+v", entries)
	}
}

// failingProvider refuses every save so tests can watch the store degrade.
type failingProvider struct{}

func (p *failingProvider) Init(storage.Document) error { return errors.New("init refused") }
func (p *failingProvider) Load() storage.Document      { return storage.DefaultDocument() }
func (p *failingProvider) Save(storage.Document) error { return errors.New("disk on fire") }
func (p *failingProvider) Close() error                { return nil }
func (p *failingProvider) Path() string                { return "/dev/null/daybook.json" }

func TestMutationsSurviveSaveFailures(t *testing.T) {
	store := New(&failingProvider{})
	store.Open()

	// Seeding persists through the failing provider; the operation still
	// completes in memory
	if store.EntryCount() != 3 {
		t.Fatalf("Expected starter entries despite failing saves, got %d", store.EntryCount())
	}

	entry := store.Add(models.Entry{Title: "kept in memory"})
	if _, ok := store.Entry(entry.ID); !ok {
		t.Error("Expected entry to exist in memory despite failing save")
	}
	if store.Rewards().Points != 10 {
		t.Errorf("Expected rewards to advance despite failing save, got %d points", store.Rewards().Points)
	}

	if !store.Delete(entry.ID) {
		t.Error("Expected delete to work in memory despite failing save")
	}
}
