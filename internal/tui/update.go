package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/tui/components/entrylist"
	"github.com/julianstephens/daybook/internal/tui/components/profilecard"
	"github.com/julianstephens/daybook/internal/tui/components/rewardspanel"
	"github.com/julianstephens/daybook/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Edit Entry State
	if m.state == StateEditEntry {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateJournal
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			entry := m.entryFromForm()
			if validation.EntryBlank(entry) {
				// Nothing worth saving
				m.state = StateJournal
				return m, tea.Batch(cmds...)
			}
			if m.editingEntryID == "" {
				m.journal.Add(entry)
			} else {
				m.journal.Update(entry)
			}
			m.refresh()
			m.state = StateJournal
		case huh.StateAborted:
			m.state = StateJournal
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Edit Profile State
	if m.state == StateEditProfile {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateProfile
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.journal.SetProfile(models.Profile{
				Name:        strings.TrimSpace(m.profileForm.Name),
				AccentColor: strings.TrimSpace(m.profileForm.Accent),
			})
			m.refresh()
			m.state = StateProfile
		case huh.StateAborted:
			m.state = StateProfile
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.journal.Delete(m.entryToDeleteID)
				m.refresh()
				m.state = StateJournal
				m.entryToDeleteID = ""
			case "n", "N", "esc", "q":
				m.state = StateJournal
				m.entryToDeleteID = ""
			}
		}
		return m, nil
	}

	// Handle Read Entry State
	if m.state == StateReadEntry {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc", "q", "enter":
				m.state = StateJournal
				m.readingEntry = nil
			case "e":
				if m.readingEntry != nil {
					entry := *m.readingEntry
					m.readingEntry = nil
					return m.openEntryForm(entry)
				}
			case "p":
				if m.readingEntry != nil {
					m.journal.TogglePin(m.readingEntry.ID)
					if updated, ok := m.journal.Entry(m.readingEntry.ID); ok {
						m.readingEntry = &updated
					}
					m.refresh()
				}
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Adjust height for tabs and help
		listHeight := msg.Height - 4

		h, v := docStyle.GetFrameSize()
		m.entryList.SetSize(msg.Width-h, listHeight-v)
		m.rewardsPanel.SetSize(msg.Width-h, listHeight-v)
		m.profileCard.SetSize(msg.Width-h, listHeight-v)

	case entrylist.AddEntryMsg:
		return m.openEntryForm(models.Entry{
			Date: time.Now().Format(constants.DateFormat),
		})

	case entrylist.EditEntryMsg:
		return m.openEntryForm(msg.Entry)

	case entrylist.DeleteEntryMsg:
		m.entryToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case entrylist.TogglePinMsg:
		m.journal.TogglePin(msg.ID)
		m.refresh()
		return m, nil

	case entrylist.OpenEntryMsg:
		entry := msg.Entry
		m.readingEntry = &entry
		m.state = StateReadEntry
		return m, nil

	case rewardspanel.ClaimWriteTodayMsg:
		m.journal.ClaimWriteToday()
		m.refreshRewards()
		return m, nil

	case rewardspanel.ClaimTagBonusMsg:
		m.journal.ClaimTagBonus()
		m.refreshRewards()
		return m, nil

	case profilecard.EditProfileMsg:
		profile := m.journal.Profile()
		m.profileForm = &ProfileFormModel{
			Name:   profile.Name,
			Accent: profile.AccentColor,
		}
		m.form = NewProfileForm(m.profileForm)
		m.state = StateEditProfile
		return m, m.form.Init()

	case tea.KeyMsg:
		// The filter input owns the keyboard while active
		if m.state == StateJournal && m.entryList.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab, m.keys.Right):
			m.state = (m.state + 1) % numMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab, m.keys.Left):
			m.state = (m.state - 1 + numMainTabs) % numMainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateJournal:
		m.entryList, cmd = m.entryList.Update(msg)
		cmds = append(cmds, cmd)
	case StateRewards:
		m.rewardsPanel, cmd = m.rewardsPanel.Update(msg)
		cmds = append(cmds, cmd)
	case StateProfile:
		m.profileCard, cmd = m.profileCard.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// openEntryForm switches into the entry form, prefilled from the given
// entry. A blank ID means the completed form adds instead of updating.
func (m Model) openEntryForm(entry models.Entry) (tea.Model, tea.Cmd) {
	m.editingEntryID = entry.ID
	m.entryForm = &EntryFormModel{
		Title:  entry.Title,
		Body:   entry.Body,
		Mood:   entry.Mood,
		Tags:   strings.Join(entry.Tags, ", "),
		Date:   entry.Date,
		Pinned: entry.Pinned,
	}
	m.form = NewEntryForm(m.entryForm)
	m.state = StateEditEntry
	return m, m.form.Init()
}
