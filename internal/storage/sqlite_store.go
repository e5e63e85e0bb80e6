package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init(doc Document) error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("journal already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.Save(doc)
}

// open lazily opens the database and bootstraps the schema. Safe to call
// repeatedly.
func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	// Create data directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

// createSchema creates the journal tables. The schema is fixed: a database
// that doesn't match it is treated as corrupt, not migrated.
func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		version INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		name TEXT NOT NULL,
		accent_color TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rewards (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		points INTEGER NOT NULL DEFAULT 0,
		streak INTEGER NOT NULL DEFAULT 0,
		last_entry_date TEXT NOT NULL DEFAULT '',
		badges TEXT NOT NULL DEFAULT '[]',
		tag_bonus_claimed INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		date TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		mood TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		pinned INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_entries_position ON entries(position);
	CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
	`

	_, err := db.Exec(schema)
	return err
}

func (s *SQLiteStore) Load() Document {
	// A journal that was never written is not an error
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return DefaultDocument()
	}

	if err := s.open(); err != nil {
		logger.Warn("failed to open journal database, starting empty", "path", s.path, "error", err)
		return DefaultDocument()
	}

	doc, err := s.load()
	if err != nil {
		logger.Warn("failed to read journal database, starting empty", "path", s.path, "error", err)
		return DefaultDocument()
	}

	return doc
}

func (s *SQLiteStore) load() (Document, error) {
	doc := DefaultDocument()

	err := s.db.QueryRow(`SELECT version FROM meta WHERE id = 1`).Scan(&doc.Version)
	if err != nil && err != sql.ErrNoRows {
		return Document{}, fmt.Errorf("failed to read version: %w", err)
	}

	err = s.db.QueryRow(`SELECT name, accent_color FROM profile WHERE id = 1`).
		Scan(&doc.Profile.Name, &doc.Profile.AccentColor)
	if err != nil && err != sql.ErrNoRows {
		return Document{}, fmt.Errorf("failed to read profile: %w", err)
	}

	var badgesJSON string
	err = s.db.QueryRow(`
		SELECT points, streak, last_entry_date, badges, tag_bonus_claimed
		FROM rewards WHERE id = 1`).
		Scan(&doc.Rewards.Points, &doc.Rewards.Streak, &doc.Rewards.LastEntryDate,
			&badgesJSON, &doc.Rewards.TagBonusClaimed)
	if err != nil && err != sql.ErrNoRows {
		return Document{}, fmt.Errorf("failed to read rewards: %w", err)
	}
	if badgesJSON != "" {
		if err := json.Unmarshal([]byte(badgesJSON), &doc.Rewards.Badges); err != nil {
			return Document{}, fmt.Errorf("failed to parse badges: %w", err)
		}
	}

	rows, err := s.db.Query(`
		SELECT id, date, title, body, mood, tags, pinned, created_at, updated_at
		FROM entries ORDER BY position`)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Entry
		var tagsJSON, createdAt, updatedAt string

		err := rows.Scan(&e.ID, &e.Date, &e.Title, &e.Body, &e.Mood,
			&tagsJSON, &e.Pinned, &createdAt, &updatedAt)
		if err != nil {
			return Document{}, fmt.Errorf("failed to scan entry: %w", err)
		}

		if tagsJSON != "" {
			if err := json.Unmarshal([]byte(tagsJSON), &e.Tags); err != nil {
				return Document{}, fmt.Errorf("failed to parse entry tags: %w", err)
			}
		}

		// Missing timestamps stay zero rather than failing the load
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
		if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			e.UpdatedAt = t
		}

		doc.Entries = append(doc.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return Document{}, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return doc, nil
}

// Save rewrites the whole document in one transaction. The data is
// document-sized (at most a few hundred entries), so full rewrites stay
// cheap and keep the aggregate consistent.
func (s *SQLiteStore) Save(doc Document) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO meta (id, version) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET version = excluded.version`,
		constants.StorageVersion); err != nil {
		return fmt.Errorf("failed to save version: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO profile (id, name, accent_color) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			accent_color = excluded.accent_color`,
		doc.Profile.Name, doc.Profile.AccentColor); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	badgesJSON, err := json.Marshal(doc.Rewards.Badges)
	if err != nil {
		return fmt.Errorf("failed to marshal badges: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO rewards (id, points, streak, last_entry_date, badges, tag_bonus_claimed)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			points = excluded.points,
			streak = excluded.streak,
			last_entry_date = excluded.last_entry_date,
			badges = excluded.badges,
			tag_bonus_claimed = excluded.tag_bonus_claimed`,
		doc.Rewards.Points, doc.Rewards.Streak, doc.Rewards.LastEntryDate,
		string(badgesJSON), doc.Rewards.TagBonusClaimed); err != nil {
		return fmt.Errorf("failed to save rewards: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO entries (id, position, date, title, body, mood, tags, pinned, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range doc.Entries {
		tagsJSON, err := json.Marshal(e.Tags)
		if err != nil {
			return fmt.Errorf("failed to marshal entry tags: %w", err)
		}

		if _, err := stmt.Exec(e.ID, i, e.Date, e.Title, e.Body, e.Mood,
			string(tagsJSON), e.Pinned,
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.UpdatedAt.UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}
