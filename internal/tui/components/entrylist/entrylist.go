package entrylist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daybook/internal/models"
)

type AddEntryMsg struct{}

type DeleteEntryMsg struct {
	ID string
}

type EditEntryMsg struct {
	Entry models.Entry
}

type OpenEntryMsg struct {
	Entry models.Entry
}

type TogglePinMsg struct {
	ID string
}

type Item struct {
	Entry models.Entry
}

func (i Item) Title() string {
	title := i.Entry.Title
	if title == "" {
		title = "(untitled)"
	}
	if i.Entry.Pinned {
		return "📌 " + title
	}
	return title
}

func (i Item) Description() string {
	desc := i.Entry.Date
	if i.Entry.Mood != "" {
		desc += " | " + i.Entry.Mood
	}
	if len(i.Entry.Tags) > 0 {
		desc += " | #" + strings.Join(i.Entry.Tags, " #")
	}
	return desc
}

func (i Item) FilterValue() string {
	return i.Entry.Title + " " + i.Entry.Body + " " + strings.Join(i.Entry.Tags, " ")
}

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Pin    key.Binding
	Open   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin/unpin"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.Entry, width, height int) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	// Add custom keys to list additional short help
	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Pin}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Pin, keys.Open}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []models.Entry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
}

// Filtering reports whether the list is capturing keystrokes for its filter,
// so the main model can keep global bindings out of the way.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddEntryMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditEntryMsg(i) }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Entry.ID} }
			}
		case key.Matches(msg, m.keys.Pin):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return TogglePinMsg{ID: i.Entry.ID} }
			}
		case key.Matches(msg, m.keys.Open):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenEntryMsg(i) }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No entries yet.\n  Press 'a' to write one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
