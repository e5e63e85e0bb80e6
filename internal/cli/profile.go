package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/validation"
)

type ProfileCmd struct {
	Show *ProfileShowCmd `cmd:"" default:"1" help:"Show the current profile."`
	Set  *ProfileSetCmd  `cmd:"" help:"Update profile fields."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	profile := ctx.Journal.Profile()

	fmt.Printf("Name:   %s\n", profile.Name)
	if normalized, ok := validation.NormalizeHex(profile.AccentColor); ok {
		fmt.Printf("Accent: %s\n", normalized)
	} else {
		fmt.Printf("Accent: %s (unrecognized, renders as %s)\n", profile.AccentColor, validation.RenderColor(profile.AccentColor))
	}
	return nil
}

type ProfileSetCmd struct {
	Name   *string `short:"n" help:"New display name."`
	Accent *string `short:"a" help:"New accent color (#RGB, #RRGGBB or #AARRGGBB)."`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if c.Name == nil && c.Accent == nil {
		return fmt.Errorf("nothing to set: pass --name or --accent")
	}

	profile := ctx.Journal.Profile()

	if c.Name != nil {
		profile.Name = *c.Name
	}
	if c.Accent != nil {
		profile.AccentColor = *c.Accent
		if _, ok := validation.NormalizeHex(*c.Accent); !ok {
			fmt.Printf("Warning: %q is not a recognized color and will render as black\n", *c.Accent)
		}
	}

	ctx.Journal.SetProfile(profile)

	fmt.Printf("Profile updated: %s\n", profile.Name)
	return nil
}
