package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/diary"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/tui/components/entrylist"
	"github.com/julianstephens/daybook/internal/tui/components/profilecard"
	"github.com/julianstephens/daybook/internal/tui/components/rewardspanel"
)

type SessionState int

const (
	StateJournal SessionState = iota
	StateRewards
	StateProfile
	StateReadEntry
	StateEditEntry
	StateEditProfile
	StateConfirmDelete
)

// numMainTabs counts the states reachable with tab/shift+tab.
const numMainTabs = 3

type EntryFormModel struct {
	Title  string
	Body   string
	Mood   string
	Tags   string
	Date   string
	Pinned bool
}

type ProfileFormModel struct {
	Name   string
	Accent string
}

type Model struct {
	journal         *diary.Store
	state           SessionState
	keys            KeyMap
	help            help.Model
	entryList       entrylist.Model
	rewardsPanel    rewardspanel.Model
	profileCard     profilecard.Model
	form            *huh.Form
	entryForm       *EntryFormModel
	profileForm     *ProfileFormModel
	editingEntryID  string
	entryToDeleteID string
	readingEntry    *models.Entry
	quitting        bool
	width           int
	height          int
}

func NewModel(journal *diary.Store) Model {
	m := Model{
		journal:      journal,
		state:        StateJournal,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		entryList:    entrylist.New(journal.Entries(), 0, 0),
		rewardsPanel: rewardspanel.New(0, 0),
		profileCard:  profilecard.New(journal.Profile(), journal.EntryCount(), 0, 0),
	}
	m.refreshRewards()
	return m
}

// refresh re-pulls everything from the journal after a mutation.
func (m *Model) refresh() {
	m.entryList.SetEntries(m.journal.Entries())
	m.profileCard.SetProfile(m.journal.Profile(), m.journal.EntryCount())
	m.refreshRewards()
}

func (m *Model) refreshRewards() {
	m.rewardsPanel.SetState(
		m.journal.Rewards(),
		m.journal.EntryCount(),
		m.journal.TaggedCount(),
		m.journal.WriteTodayDone(),
		m.journal.TagBonusReady(),
	)
}

// entryFromForm builds the entry an accepted form describes. The caller
// decides whether it is an add or an update.
func (m Model) entryFromForm() models.Entry {
	date := strings.TrimSpace(m.entryForm.Date)
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}
	return models.Entry{
		ID:     m.editingEntryID,
		Date:   date,
		Title:  strings.TrimSpace(m.entryForm.Title),
		Body:   m.entryForm.Body,
		Mood:   strings.TrimSpace(m.entryForm.Mood),
		Tags:   splitTags(m.entryForm.Tags),
		Pinned: m.entryForm.Pinned,
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateJournal:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Pin)
	case StateRewards:
		keys = append(keys, m.keys.ClaimWrite, m.keys.ClaimTag)
	case StateProfile:
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateJournal:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Pin}
	case StateRewards:
		actions = []key.Binding{m.keys.ClaimWrite, m.keys.ClaimTag}
	case StateProfile:
		actions = []key.Binding{m.keys.Edit}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
