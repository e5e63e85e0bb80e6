package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/rewards"
)

type RewardsCmd struct{}

func (c *RewardsCmd) Run(ctx *Context) error {
	state := ctx.Journal.Rewards()

	fmt.Printf("Points: %d\n", state.Points)
	fmt.Printf("Streak: %d day(s)\n", state.Streak)
	if state.LastEntryDate != "" {
		fmt.Printf("Last entry: %s\n", state.LastEntryDate)
	}

	if len(state.Badges) == 0 {
		fmt.Println("Badges: none yet")
	} else {
		fmt.Println("Badges:")
		for _, badge := range state.Badges {
			fmt.Printf("  🏅 %s\n", badge)
		}
	}

	// Progress toward badges still outstanding
	var upcoming []string
	if !state.HasBadge(rewards.BadgeCenturion) {
		upcoming = append(upcoming, fmt.Sprintf("%s: %d/%d points", rewards.BadgeCenturion, state.Points, rewards.CenturionPoints))
	}
	if !state.HasBadge(rewards.BadgeWeekStreak) {
		upcoming = append(upcoming, fmt.Sprintf("%s: %d/%d days", rewards.BadgeWeekStreak, state.Streak, rewards.WeekStreakDays))
	}
	if !state.HasBadge(rewards.BadgeCollector) {
		upcoming = append(upcoming, fmt.Sprintf("%s: %d/%d entries", rewards.BadgeCollector, ctx.Journal.EntryCount(), rewards.CollectorEntries))
	}

	if len(upcoming) > 0 {
		fmt.Println("\nNext up:")
		for _, line := range upcoming {
			fmt.Printf("  %s\n", line)
		}
	}

	return nil
}
