package models

import (
	"strings"
	"time"
)

// Entry represents a single dated journal entry
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Mood      string    `json:"mood,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tagged reports whether the entry carries at least one tag.
func (e Entry) Tagged() bool {
	return len(e.Tags) > 0
}

// HasTag reports whether the entry carries the given tag (case-insensitive).
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Matches reports whether the query appears in the entry's title, body or
// tags. Matching is case-insensitive; an empty query matches everything.
func (e Entry) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Body), q) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
