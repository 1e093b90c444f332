package ui

import (
	"fmt"
	"strconv"

	"github.com/Mshel/sshmaze/internal/game"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const leaderboardSize = 20

// ScoreBoard is the read side of the high score store.
type ScoreBoard interface {
	GetFastestCompletions(limit, offset int) ([]game.Score, error)
}

type scoresLoadedMsg struct {
	scores []game.Score
	err    error
}

type LeaderboardModel struct {
	table        table.Model
	scoreBoard   ScoreBoard
	loaded       bool
	err          error
	ScreenWidth  int
	ScreenHeight int
}

var leaderboardColumns = []table.Column{
	{Title: "#", Width: 3},
	{Title: "Player", Width: 16},
	{Title: "Level", Width: 6},
	{Title: "Time", Width: 8},
	{Title: "Moves", Width: 6},
	{Title: "Size", Width: 7},
}

func NewLeaderboardModel(scoreBoard ScoreBoard, screenWidth int, screenHeight int) LeaderboardModel {
	t := table.New(
		table.WithColumns(leaderboardColumns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("236")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("4"))
	t.SetStyles(styles)

	return LeaderboardModel{
		table:        t,
		scoreBoard:   scoreBoard,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m LeaderboardModel) Init() tea.Cmd {
	scoreBoard := m.scoreBoard
	return func() tea.Msg {
		if scoreBoard == nil {
			return scoresLoadedMsg{}
		}
		scores, err := scoreBoard.GetFastestCompletions(leaderboardSize, 0)
		return scoresLoadedMsg{scores: scores, err: err}
	}
}

func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case scoresLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err != nil {
			log.Error("Failed to load leaderboard", "error", msg.err)
			return m, nil
		}
		m.table.SetRows(scoreRows(msg.scores))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return BackToIntroMsg{} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func scoreRows(scores []game.Score) []table.Row {
	rows := make([]table.Row, 0, len(scores))
	for i, score := range scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			score.PlayerName,
			strconv.Itoa(score.Level),
			fmt.Sprintf("%.1fs", score.Elapsed.Seconds()),
			strconv.Itoa(score.Moves),
			fmt.Sprintf("%dx%d", score.Cols, score.Rows),
		})
	}
	return rows
}

// View draws the leaderboard table.
func (m LeaderboardModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("👑 FASTEST ESCAPES 👑")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC or ENTER to return to the menu.")

	var body string
	switch {
	case m.scoreBoard == nil:
		body = "Leaderboard is not available."
	case !m.loaded:
		body = "Loading scores..."
	case m.err != nil:
		body = errorStyle.Render("Could not load scores: " + m.err.Error())
	case len(m.table.Rows()) == 0:
		body = "No mazes solved yet. Be the first!"
	default:
		body = m.table.View()
	}

	finalContent := lipgloss.JoinVertical(lipgloss.Center, title, body, instruction)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 2).Render(finalContent),
	)
}
