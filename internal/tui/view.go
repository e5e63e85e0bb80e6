package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/validation"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateJournal:
		content = m.viewJournal()
	case StateRewards:
		content = m.viewRewards()
	case StateProfile:
		content = m.viewProfile()
	case StateReadEntry:
		content = m.viewReadEntry()
	case StateEditEntry, StateEditProfile:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)

	return ui
}

// accentColor resolves the profile's accent for terminal rendering.
// Unrecognized colors come back as black rather than failing.
func (m Model) accentColor() lipgloss.Color {
	return lipgloss.Color(validation.RenderColor(m.journal.Profile().AccentColor))
}

func (m Model) viewTabs() string {
	accent := m.accentColor()
	var tabs []string
	tabTitles := []string{"Journal", "Rewards", "Profile"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Foreground(accent).Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewJournal() string {
	return docStyle.Render(m.entryList.View())
}

func (m Model) viewRewards() string {
	return docStyle.Render(m.rewardsPanel.View())
}

func (m Model) viewProfile() string {
	return docStyle.Render(m.profileCard.View())
}

func (m Model) viewReadEntry() string {
	if m.readingEntry == nil {
		return ""
	}
	e := *m.readingEntry

	title := e.Title
	if title == "" {
		title = "(untitled)"
	}
	if e.Pinned {
		title = "📌 " + title
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(m.accentColor()).Render(title)

	lines := []string{
		header,
		"",
		fmt.Sprintf("%s %s", detailLabelStyle.Render("Date:"), detailValueStyle.Render(e.Date)),
	}
	if e.Mood != "" {
		lines = append(lines, fmt.Sprintf("%s %s", detailLabelStyle.Render("Mood:"), detailValueStyle.Render(e.Mood)))
	}
	if len(e.Tags) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", detailLabelStyle.Render("Tags:"), detailValueStyle.Render("#"+strings.Join(e.Tags, " #"))))
	}
	if e.Body != "" {
		lines = append(lines, "", detailValueStyle.Render(e.Body))
	}
	lines = append(lines, "", inactiveTabStyle.Render("[e] edit  [p] pin/unpin  [esc] back"))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewConfirmDelete() string {
	title := m.entryToDeleteID
	if entry, ok := m.journal.Entry(m.entryToDeleteID); ok && entry.Title != "" {
		title = entry.Title
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete entry %q? Points it earned stay.", title)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
