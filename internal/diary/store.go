package diary

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/rewards"
	"github.com/julianstephens/daybook/internal/storage"
)

// Store is the in-memory system of record for the journal: the ordered entry
// list (newest first), the user profile and the reward state. All reads are
// answered from memory. Every mutation pushes the full document through the
// storage provider synchronously; save failures are logged and the in-memory
// state stays authoritative until the next successful write.
type Store struct {
	provider storage.Provider
	engine   *rewards.Engine
	now      func() time.Time

	entries []models.Entry
	profile models.Profile
	rewards models.Rewards
}

func New(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		engine:   rewards.New(),
		now:      time.Now,
	}
}

// Init creates a fresh journal on disk. It fails when one already exists.
func (s *Store) Init() error {
	return s.provider.Init(storage.DefaultDocument())
}

// Open loads the journal from storage and seeds the starter entries when the
// entry list comes back empty. It never fails; unreadable storage simply
// yields a fresh journal.
func (s *Store) Open() {
	doc := s.provider.Load()
	s.entries = doc.Entries
	s.profile = doc.Profile
	s.rewards = doc.Rewards

	if len(s.entries) == 0 {
		s.seed()
	}
}

// Add stores a new entry at the head of the list, applies the reward
// transition for its date and persists. The entry's ID and timestamps are
// assigned here; the stored entry is returned.
func (s *Store) Add(entry models.Entry) models.Entry {
	now := s.now()
	entry.ID = uuid.New().String()
	if entry.Date == "" {
		entry.Date = now.Format(constants.DateFormat)
	}
	entry.CreatedAt = now
	entry.UpdatedAt = now

	s.entries = append([]models.Entry{entry}, s.entries...)
	s.rewards = s.engine.Apply(s.rewards, entry.Date, len(s.entries))
	s.persist()

	return entry
}

// Update replaces the entry with a matching ID in place; the list never
// changes shape. Updating an unknown ID is a no-op and returns false.
// Rewards are not touched: only new entries are qualifying events.
func (s *Store) Update(entry models.Entry) bool {
	for i := range s.entries {
		if s.entries[i].ID == entry.ID {
			entry.CreatedAt = s.entries[i].CreatedAt
			entry.UpdatedAt = s.now()
			s.entries[i] = entry
			s.persist()
			return true
		}
	}
	return false
}

// Delete removes every entry with the given ID. Deleting an absent ID is a
// no-op, so deletes are idempotent. Points and badges already earned stay.
func (s *Store) Delete(id string) bool {
	kept := make([]models.Entry, 0, len(s.entries))
	removed := false
	for _, e := range s.entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false
	}

	s.entries = kept
	s.persist()
	return true
}

// TogglePin flips the pinned flag by delegating to Update.
func (s *Store) TogglePin(id string) bool {
	for _, e := range s.entries {
		if e.ID == id {
			e.Pinned = !e.Pinned
			return s.Update(e)
		}
	}
	return false
}

// SetProfile replaces the user profile and persists.
func (s *Store) SetProfile(p models.Profile) {
	s.profile = p
	s.persist()
}

// ClaimWriteToday claims the daily writing mission: the usual reward
// transition for today without writing an entry. Returns false when today's
// mission is already satisfied, by an entry or an earlier claim.
func (s *Store) ClaimWriteToday() bool {
	today := s.now().Format(constants.DateFormat)
	next, claimed := s.engine.ClaimWriteToday(s.rewards, today, len(s.entries))
	if !claimed {
		return false
	}

	s.rewards = next
	s.persist()
	return true
}

// ClaimTagBonus claims the tagging mission. Returns false when fewer than
// three entries carry a tag or the bonus was claimed before.
func (s *Store) ClaimTagBonus() bool {
	next, claimed := s.engine.ClaimTagBonus(s.rewards, s.TaggedCount(), len(s.entries))
	if !claimed {
		return false
	}

	s.rewards = next
	s.persist()
	return true
}

// WriteTodayDone reports whether today's writing mission is satisfied.
func (s *Store) WriteTodayDone() bool {
	return s.engine.WriteTodayDone(s.rewards, s.now().Format(constants.DateFormat))
}

// TagBonusReady reports whether the tagging mission can be claimed right now.
func (s *Store) TagBonusReady() bool {
	return s.engine.TagBonusReady(s.rewards, s.TaggedCount())
}

// Entries returns a copy of all entries, newest first.
func (s *Store) Entries() []models.Entry {
	out := make([]models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the entry with the given ID.
func (s *Store) Entry(id string) (models.Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.Entry{}, false
}

// Resolve finds an entry by full ID or by a unique ID prefix.
func (s *Store) Resolve(prefix string) (models.Entry, bool) {
	if e, ok := s.Entry(prefix); ok {
		return e, true
	}
	if prefix == "" {
		return models.Entry{}, false
	}

	var match models.Entry
	count := 0
	for _, e := range s.entries {
		if strings.HasPrefix(e.ID, prefix) {
			match = e
			count++
		}
	}
	if count != 1 {
		return models.Entry{}, false
	}
	return match, true
}

// Search returns entries whose title, body or tags contain the query,
// newest first. Matching is case-insensitive.
func (s *Store) Search(query string) []models.Entry {
	var out []models.Entry
	for _, e := range s.entries {
		if e.Matches(query) {
			out = append(out, e)
		}
	}
	return out
}

// FilterOptions narrows the entry list. Zero values match everything.
type FilterOptions struct {
	Tag        string
	Mood       string
	PinnedOnly bool
	Limit      int
}

// Filter returns entries matching every set option, newest first.
func (s *Store) Filter(opts FilterOptions) []models.Entry {
	var out []models.Entry
	for _, e := range s.entries {
		if opts.Tag != "" && !e.HasTag(opts.Tag) {
			continue
		}
		if opts.Mood != "" && !strings.EqualFold(e.Mood, opts.Mood) {
			continue
		}
		if opts.PinnedOnly && !e.Pinned {
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out
}

// Profile returns the current user profile.
func (s *Store) Profile() models.Profile {
	return s.profile
}

// Rewards returns the current reward state.
func (s *Store) Rewards() models.Rewards {
	return s.rewards
}

// EntryCount returns the number of entries.
func (s *Store) EntryCount() int {
	return len(s.entries)
}

// TaggedCount returns the number of entries carrying at least one tag.
func (s *Store) TaggedCount() int {
	count := 0
	for _, e := range s.entries {
		if e.Tagged() {
			count++
		}
	}
	return count
}

// ExportJSON serializes every entry to indented JSON, newest first. This
// backs the debug export command.
func (s *Store) ExportJSON() (string, error) {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize entries: %w", err)
	}
	logger.Debug("exported entries", "count", len(s.entries), "bytes", len(data))
	return string(data), nil
}

// Path returns the data file path of the underlying provider.
func (s *Store) Path() string {
	return s.provider.Path()
}

// persist pushes the full document to storage. Failures are logged, never
// returned: the journal keeps running on its in-memory state and the next
// mutation retries the write.
func (s *Store) persist() {
	doc := storage.Document{
		Version: constants.StorageVersion,
		Profile: s.profile,
		Rewards: s.rewards,
		Entries: s.entries,
	}
	if err := s.provider.Save(doc); err != nil {
		logger.Error("failed to save journal", "path", s.provider.Path(), "error", err)
	}
}

// seed installs the starter entries a fresh journal opens with. Starter
// content awards no points and never extends a streak.
func (s *Store) seed() {
	now := s.now()
	today := now.Format(constants.DateFormat)

	samples := []models.Entry{
		{
			Title: "Welcome to daybook",
			Body:  "This is your journal. Entries are listed newest first and everything lives in a single local file. Delete these starter notes whenever you like.",
			Mood:  "excited",
			Tags:  []string{"welcome"},
		},
		{
			Title: "Streaks, points and badges",
			Body:  "Every entry is worth points, writing on consecutive days builds a streak, and a few badges are waiting along the way. Check the rewards view to see where you stand.",
			Tags:  []string{"welcome"},
		},
		{
			Title: "Your first entry",
			Body:  "A few honest lines beat a perfect essay. Press a in the journal view, or run: daybook add \"A line about today\"",
		},
	}

	for i := range samples {
		samples[i].ID = uuid.New().String()
		samples[i].Date = today
		samples[i].CreatedAt = now
		samples[i].UpdatedAt = now
	}

	s.entries = samples
	s.persist()

	logger.Info("seeded starter entries", "count", len(samples))
}
