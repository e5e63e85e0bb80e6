package models

// Rewards represents the gamification counters attached to the journal
type Rewards struct {
	Points          int      `json:"points"`
	Streak          int      `json:"streak"`
	LastEntryDate   string   `json:"last_entry_date,omitempty"` // YYYY-MM-DD format, empty before the first entry
	Badges          []string `json:"badges,omitempty"`
	TagBonusClaimed bool     `json:"tag_bonus_claimed"`
}

// HasBadge reports whether the badge was already earned.
func (r Rewards) HasBadge(name string) bool {
	for _, b := range r.Badges {
		if b == name {
			return true
		}
	}
	return false
}
