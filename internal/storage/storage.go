package storage

import (
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

// Document is the single aggregate the journal persists: profile, reward
// state and the full entry list. Entry order is part of the data, newest
// first.
type Document struct {
	Version int            `json:"version"`
	Profile models.Profile `json:"profile"`
	Rewards models.Rewards `json:"rewards"`
	Entries []models.Entry `json:"entries"`
}

// DefaultDocument returns the document used whenever no stored data can be
// read: default profile, zero rewards, no entries.
func DefaultDocument() Document {
	return Document{
		Version: constants.StorageVersion,
		Profile: models.DefaultProfile(),
		Entries: []models.Entry{},
	}
}
