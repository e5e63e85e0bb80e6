package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/rewards"
)

type MissionsCmd struct {
	Status *MissionsStatusCmd `cmd:"" default:"1" help:"Show today's missions."`
	Claim  *MissionsClaimCmd  `cmd:"" help:"Claim a completed mission."`
}

type MissionsStatusCmd struct{}

func (c *MissionsStatusCmd) Run(ctx *Context) error {
	fmt.Println("Today's missions:")

	if ctx.Journal.WriteTodayDone() {
		fmt.Printf("  ✓ Write today (+%d points) - done\n", rewards.EntryPoints)
	} else {
		fmt.Printf("  ○ Write today (+%d points) - write an entry or claim it\n", rewards.EntryPoints)
	}

	state := ctx.Journal.Rewards()
	tagged := ctx.Journal.TaggedCount()
	switch {
	case state.TagBonusClaimed:
		fmt.Printf("  ✓ Tag three entries (+%d points) - claimed\n", rewards.TagBonusPoints)
	case ctx.Journal.TagBonusReady():
		fmt.Printf("  ! Tag three entries (+%d points) - ready to claim\n", rewards.TagBonusPoints)
	default:
		fmt.Printf("  ○ Tag three entries (+%d points) - %d/%d tagged\n", rewards.TagBonusPoints, tagged, rewards.TagBonusMinTagged)
	}

	return nil
}

type MissionsClaimCmd struct {
	Mission string `arg:"" enum:"write-today,tag-3" help:"Mission to claim (write-today or tag-3)."`
}

func (c *MissionsClaimCmd) Run(ctx *Context) error {
	before := ctx.Journal.Rewards()

	switch c.Mission {
	case "write-today":
		if !ctx.Journal.ClaimWriteToday() {
			fmt.Println("Already done today. Come back tomorrow!")
			return nil
		}
	case "tag-3":
		if before.TagBonusClaimed {
			fmt.Println("The tag bonus has already been claimed.")
			return nil
		}
		if !ctx.Journal.ClaimTagBonus() {
			tagged := ctx.Journal.TaggedCount()
			fmt.Printf("Not yet: %d/%d entries tagged\n", tagged, rewards.TagBonusMinTagged)
			return nil
		}
	default:
		return fmt.Errorf("unknown mission: %s", c.Mission)
	}

	after := ctx.Journal.Rewards()
	fmt.Printf("Mission claimed! +%d points (%d total, streak %d)\n",
		after.Points-before.Points, after.Points, after.Streak)

	for _, badge := range after.Badges {
		if !before.HasBadge(badge) {
			fmt.Printf("  🏅 New badge: %s\n", badge)
		}
	}

	return nil
}
