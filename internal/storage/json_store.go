package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
)

type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init(doc Document) error {
	// Create data directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("journal already initialized at %s", s.path)
	}

	return s.Save(doc)
}

func (s *JSONStore) Load() Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// A journal that was never written is not an error
		if !os.IsNotExist(err) {
			logger.Warn("failed to read journal, starting empty", "path", s.path, "error", err)
		}
		return DefaultDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("failed to parse journal, starting empty", "path", s.path, "error", err)
		return DefaultDocument()
	}

	if doc.Entries == nil {
		doc.Entries = []models.Entry{}
	}

	return doc
}

func (s *JSONStore) Save(doc Document) error {
	doc.Version = constants.StorageVersion

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize journal: %w", err)
	}

	// The journal may never have been initialized explicitly
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Write the full document to a temp file, then swap it into place so
	// the journal only ever contains complete documents.
	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write journal: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync journal: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close journal: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace journal: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
