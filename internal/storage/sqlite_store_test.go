package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/daybook/internal/models"
)

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	s := NewSQLiteStore(path)
	defer s.Close()

	doc := testDocument()
	require.NoError(t, s.Save(doc))

	got := s.Load()
	assert.Equal(t, doc.Profile, got.Profile)
	assert.Equal(t, doc.Rewards.Points, got.Rewards.Points)
	assert.Equal(t, doc.Rewards.Streak, got.Rewards.Streak)
	assert.Equal(t, doc.Rewards.LastEntryDate, got.Rewards.LastEntryDate)
	assert.Equal(t, doc.Rewards.Badges, got.Rewards.Badges)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "entry-2", got.Entries[0].ID, "stored order must survive the round trip")
	assert.Equal(t, "entry-1", got.Entries[1].ID)
	assert.Equal(t, []string{"work", "go"}, got.Entries[0].Tags)
	assert.True(t, got.Entries[0].Pinned)
	assert.Equal(t, doc.Entries[0].CreatedAt, got.Entries[0].CreatedAt)
}

func TestSQLiteStore_LoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	s := NewSQLiteStore(path)
	defer s.Close()

	got := s.Load()
	assert.Equal(t, DefaultDocument(), got)
}

func TestSQLiteStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	require.NoError(t, os.WriteFile(path, []byte("this is not a database"), 0600))

	s := NewSQLiteStore(path)
	defer s.Close()

	got := s.Load()
	assert.Equal(t, DefaultDocument(), got)
}

func TestSQLiteStore_SaveReplacesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	s := NewSQLiteStore(path)
	defer s.Close()

	require.NoError(t, s.Save(testDocument()))

	// A smaller document fully replaces the old one, including removed
	// entries
	smaller := DefaultDocument()
	smaller.Profile.Name = "Grace"
	smaller.Entries = []models.Entry{testDocument().Entries[1]}
	require.NoError(t, s.Save(smaller))

	got := s.Load()
	assert.Equal(t, "Grace", got.Profile.Name)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "entry-1", got.Entries[0].ID)
}

func TestSQLiteStore_EmptyDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	s := NewSQLiteStore(path)
	defer s.Close()

	require.NoError(t, s.Save(DefaultDocument()))

	got := s.Load()
	assert.Empty(t, got.Entries)
	assert.Equal(t, models.DefaultProfile(), got.Profile)
	assert.Zero(t, got.Rewards.Points)
	assert.False(t, got.Rewards.TagBonusClaimed)
}

func TestSQLiteStore_InitRefusesExistingJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	s := NewSQLiteStore(path)
	defer s.Close()

	require.NoError(t, s.Init(DefaultDocument()))

	err := s.Init(DefaultDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestSQLiteStore_TagBonusClaimedPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	s := NewSQLiteStore(path)
	defer s.Close()

	doc := DefaultDocument()
	doc.Rewards.TagBonusClaimed = true
	require.NoError(t, s.Save(doc))

	got := s.Load()
	assert.True(t, got.Rewards.TagBonusClaimed)
}
