package rewardspanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/rewards"
)

type ClaimWriteTodayMsg struct{}

type ClaimTagBonusMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	readyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			MarginTop(1)
)

type Model struct {
	viewport       viewport.Model
	state          models.Rewards
	entryCount     int
	taggedCount    int
	writeTodayDone bool
	tagBonusReady  bool
	width          int
	height         int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "w":
			return m, func() tea.Msg { return ClaimWriteTodayMsg{} }
		case "t":
			return m, func() tea.Msg { return ClaimTagBonusMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetState refreshes the panel from the journal's current counters.
func (m *Model) SetState(state models.Rewards, entryCount, taggedCount int, writeTodayDone, tagBonusReady bool) {
	m.state = state
	m.entryCount = entryCount
	m.taggedCount = taggedCount
	m.writeTodayDone = writeTodayDone
	m.tagBonusReady = tagBonusReady
	m.Render()
}

func (m *Model) Render() {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Rewards"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Points:"), valueStyle.Render(fmt.Sprintf("%d", m.state.Points))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Streak:"), valueStyle.Render(fmt.Sprintf("%d day(s)", m.state.Streak))))
	lastEntry := m.state.LastEntryDate
	if lastEntry == "" {
		lastEntry = "never"
	}
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Last entry:"), valueStyle.Render(lastEntry)))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Badges"))
	b.WriteString("\n")
	if len(m.state.Badges) == 0 {
		b.WriteString(pendingStyle.Render("None yet. Keep writing!"))
		b.WriteString("\n")
	} else {
		for _, badge := range m.state.Badges {
			b.WriteString(badgeStyle.Render("🏅 " + badge))
			b.WriteString("\n")
		}
	}
	for _, line := range m.progressLines() {
		b.WriteString(pendingStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Missions"))
	b.WriteString("\n")
	if m.writeTodayDone {
		b.WriteString(doneStyle.Render("✓ Write today") + pendingStyle.Render(" (claimed)"))
	} else {
		b.WriteString(fmt.Sprintf("○ Write today  %s", pendingStyle.Render(fmt.Sprintf("+%d points and streak credit", rewards.EntryPoints))))
	}
	b.WriteString("\n")
	switch {
	case m.state.TagBonusClaimed:
		b.WriteString(doneStyle.Render("✓ Tag 3 entries") + pendingStyle.Render(" (claimed)"))
	case m.tagBonusReady:
		b.WriteString(readyStyle.Render(fmt.Sprintf("! Tag 3 entries  ready to claim (+%d points)", rewards.TagBonusPoints)))
	default:
		b.WriteString(fmt.Sprintf("○ Tag 3 entries  %s", pendingStyle.Render(fmt.Sprintf("%d/%d entries tagged", m.taggedCount, rewards.TagBonusMinTagged))))
	}
	b.WriteString("\n")

	b.WriteString(hintStyle.Render("Press 'w' to claim the writing mission, 't' to claim the tag bonus"))

	m.viewport.SetContent(b.String())
}

func (m *Model) progressLines() []string {
	var lines []string
	if !m.state.HasBadge(rewards.BadgeCenturion) {
		lines = append(lines, fmt.Sprintf("   %s: %d/%d points", rewards.BadgeCenturion, m.state.Points, rewards.CenturionPoints))
	}
	if !m.state.HasBadge(rewards.BadgeWeekStreak) {
		lines = append(lines, fmt.Sprintf("   %s: %d/%d days", rewards.BadgeWeekStreak, m.state.Streak, rewards.WeekStreakDays))
	}
	if !m.state.HasBadge(rewards.BadgeCollector) {
		lines = append(lines, fmt.Sprintf("   %s: %d/%d entries", rewards.BadgeCollector, m.entryCount, rewards.CollectorEntries))
	}
	return lines
}
