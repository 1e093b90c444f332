package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultPlayerName = "anonymous"

var (
	focusedColor = lipgloss.Color("205")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = blurredStyle

	submitButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(focusedColor).
				Padding(0, 1)
)

// SetupModel asks for the name the leaderboard will show.
type SetupModel struct {
	nameInput textinput.Model
	width     int
	height    int
}

func NewInitialSetupModel(suggestedName string, w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "Your maze runner name"
	ti.SetValue(suggestedName)
	ti.Focus()
	ti.CharLimit = 20
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput: ti,
		width:     w,
		height:    h,
	}
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				name = defaultPlayerName
			}
			return m, func() tea.Msg { return SetupSubmitMsg{Name: name} }
		case "esc":
			return m, func() tea.Msg { return BackToIntroMsg{} }
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(focusedStyle.Render("Who is entering the maze?")))
	b.WriteString("\n\n")
	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")
	b.WriteString(center(submitButtonStyle.Render("Start")))
	b.WriteString("\n\n")
	b.WriteString(center(helpStyle.Render("(enter to start, esc to go back, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
