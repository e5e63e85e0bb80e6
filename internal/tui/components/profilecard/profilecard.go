package profilecard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/validation"
)

type EditProfileMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	profile    models.Profile
	entryCount int
	width      int
	height     int
}

func New(profile models.Profile, entryCount, width, height int) Model {
	return Model{
		profile:    profile,
		entryCount: entryCount,
		width:      width,
		height:     height,
	}
}

func (m *Model) SetProfile(profile models.Profile, entryCount int) {
	m.profile = profile
	m.entryCount = entryCount
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			return m, func() tea.Msg { return EditProfileMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	rendered := validation.RenderColor(m.profile.AccentColor)
	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rendered)).
		Render("██████")

	accent := fmt.Sprintf("%s %s", valueStyle.Render(m.profile.AccentColor), swatch)
	if _, ok := validation.NormalizeHex(m.profile.AccentColor); !ok {
		accent += " " + noteStyle.Render("(unrecognized, renders as black)")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Profile"),
		fmt.Sprintf("%s %s", labelStyle.Render("Name:"), valueStyle.Render(m.profile.Name)),
		fmt.Sprintf("%s %s", labelStyle.Render("Accent color:"), accent),
		fmt.Sprintf("%s %s", labelStyle.Render("Entries:"), valueStyle.Render(fmt.Sprintf("%d", m.entryCount))),
		"",
		noteStyle.Render("Press 'e' to edit your profile"),
	)

	// Center the content
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(2, 4).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
