package rewards

import (
	"time"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

const (
	// EntryPoints is awarded for every qualifying event (an entry or a
	// claimed daily mission).
	EntryPoints = 10

	// TagBonusPoints is awarded once for the tagging mission.
	TagBonusPoints = 20

	// TagBonusMinTagged is the number of tagged entries the tagging
	// mission requires.
	TagBonusMinTagged = 3

	// Badge names as they appear in saved data. Renaming one orphans
	// every badge already earned under the old name.
	BadgeCenturion  = "Centurion"
	BadgeWeekStreak = "7-Day Streak"
	BadgeCollector  = "30 Entries"

	CenturionPoints  = 100
	WeekStreakDays   = 7
	CollectorEntries = 30
)

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Apply advances the reward state for a qualifying event on eventDate
// (YYYY-MM-DD). entryCount is the total number of entries at evaluation
// time. The input state is not modified.
func (e *Engine) Apply(state models.Rewards, eventDate string, entryCount int) models.Rewards {
	state.Points += EntryPoints
	state.Streak = nextStreak(state, eventDate)
	state.LastEntryDate = eventDate
	return awardBadges(state, entryCount)
}

// ClaimWriteToday claims the daily writing mission. It takes effect at most
// once per calendar day: if the state already records a qualifying event for
// today the claim is a no-op. Returns the new state and whether the claim
// took effect.
func (e *Engine) ClaimWriteToday(state models.Rewards, today string, entryCount int) (models.Rewards, bool) {
	if state.LastEntryDate == today {
		return state, false
	}
	return e.Apply(state, today, entryCount), true
}

// ClaimTagBonus claims the tagging mission once at least TagBonusMinTagged
// entries carry a tag. The claim is recorded on the state and never repeats.
func (e *Engine) ClaimTagBonus(state models.Rewards, taggedCount, entryCount int) (models.Rewards, bool) {
	if state.TagBonusClaimed || taggedCount < TagBonusMinTagged {
		return state, false
	}
	state.Points += TagBonusPoints
	state.TagBonusClaimed = true
	return awardBadges(state, entryCount), true
}

// WriteTodayDone reports whether the daily writing mission is already
// satisfied for today.
func (e *Engine) WriteTodayDone(state models.Rewards, today string) bool {
	return state.LastEntryDate == today
}

// TagBonusReady reports whether the tagging mission can currently be claimed.
func (e *Engine) TagBonusReady(state models.Rewards, taggedCount int) bool {
	return !state.TagBonusClaimed && taggedCount >= TagBonusMinTagged
}

// nextStreak computes the consecutive-day run after an event on eventDate.
// Only an event exactly one day after the last one extends the run; a
// same-day event leaves it alone. Everything else, including events dated
// before the last one, restarts the run at 1.
func nextStreak(state models.Rewards, eventDate string) int {
	if state.LastEntryDate == "" {
		return 1
	}
	days, ok := daysBetween(state.LastEntryDate, eventDate)
	if !ok {
		return 1
	}
	switch days {
	case 0:
		return state.Streak
	case 1:
		return state.Streak + 1
	default:
		return 1
	}
}

// awardBadges appends every newly crossed badge. Badges are never removed,
// even when the inputs later fall back below a threshold.
func awardBadges(state models.Rewards, entryCount int) models.Rewards {
	if state.Points >= CenturionPoints && !state.HasBadge(BadgeCenturion) {
		state.Badges = append(state.Badges, BadgeCenturion)
	}
	if state.Streak >= WeekStreakDays && !state.HasBadge(BadgeWeekStreak) {
		state.Badges = append(state.Badges, BadgeWeekStreak)
	}
	if entryCount >= CollectorEntries && !state.HasBadge(BadgeCollector) {
		state.Badges = append(state.Badges, BadgeCollector)
	}
	return state
}

// daysBetween returns the calendar-day difference between two YYYY-MM-DD
// dates (positive when to is after from). ok is false when either date does
// not parse.
func daysBetween(from, to string) (int, bool) {
	a, err := time.Parse(constants.DateFormat, from)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse(constants.DateFormat, to)
	if err != nil {
		return 0, false
	}
	return int(b.Sub(a).Hours() / 24), true
}
