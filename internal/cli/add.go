package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/models"
)

type EntryAddCmd struct {
	Title string   `arg:"" optional:"" help:"Entry title."`
	Body  string   `short:"b" help:"Entry body text."`
	Mood  string   `short:"m" help:"Mood word (e.g. calm, tired, excited)."`
	Tag   []string `short:"t" help:"Tag to attach. Repeatable."`
	Date  string   `short:"d" help:"Entry date (YYYY-MM-DD or 'today')." default:"today"`
	Pin   bool     `short:"p" help:"Pin the entry."`
}

func (c *EntryAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" && strings.TrimSpace(c.Body) == "" {
		return fmt.Errorf("entry needs a title or a body")
	}
	return nil
}

func (c *EntryAddCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	before := ctx.Journal.Rewards()

	entry := ctx.Journal.Add(models.Entry{
		Date:   date,
		Title:  c.Title,
		Body:   c.Body,
		Mood:   c.Mood,
		Tags:   c.Tag,
		Pinned: c.Pin,
	})

	after := ctx.Journal.Rewards()

	title := entry.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("Added entry: %s (ID: %s)\n", title, shortID(entry.ID))
	fmt.Printf("  +%d points (%d total, streak %d)\n", after.Points-before.Points, after.Points, after.Streak)

	for _, badge := range after.Badges {
		if !before.HasBadge(badge) {
			fmt.Printf("  🏅 New badge: %s\n", badge)
		}
	}

	if ctx.Journal.TagBonusReady() {
		fmt.Println("  Mission ready: tag three entries (claim with 'daybook missions claim tag-3')")
	}

	return nil
}
