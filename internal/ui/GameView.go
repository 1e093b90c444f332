package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Mshel/sshmaze/internal/game"
	"github.com/Mshel/sshmaze/internal/maze"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// --- Internal Game States for GameViewModel ---

type GameState int

const (
	StatePlaying GameState = iota
	StateLevelComplete
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	voidStyle = lipgloss.NewStyle().Background(lipgloss.Color(strconv.Itoa(game.VoidColor)))

	wallCell   = lipgloss.NewStyle().Background(lipgloss.Color(strconv.Itoa(game.WallColor))).Render("  ")
	voidCell   = voidStyle.Render("  ")
	playerCell = voidStyle.Foreground(lipgloss.Color(strconv.Itoa(game.PlayerColor))).Bold(true).Render("● ")
	goalCell   = voidStyle.Foreground(lipgloss.Color(strconv.Itoa(game.GoalColor))).Bold(true).Render("◆ ")
	hintCell   = voidStyle.Foreground(lipgloss.Color(strconv.Itoa(game.HintColor))).Render("· ")

	congratsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")).
			Padding(1, 3).
			Border(lipgloss.ThickBorder()).
			Align(lipgloss.Center)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const statusPanelWidth = 30

// --- GameViewModel Definition ---

type GameViewModel struct {
	session      *game.Session
	keys         gameKeyMap
	help         help.Model
	showHint     bool
	gameState    GameState
	completion   game.Completion
	err          error
	ScreenWidth  int
	ScreenHeight int
}

func NewGameModel(session *game.Session, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		session:      session,
		keys:         gameKeys,
		help:         help.New(),
		gameState:    StatePlaying,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return tickTimer()
}

func tickTimer() tea.Cmd {
	return tea.Tick(game.TimerTickDuration, func(time.Time) tea.Msg {
		return game.TimerTickMsg{}
	})
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case game.TimerTickMsg:
		// Nothing to update, the tick only forces a redraw of the clock.
		return m, tickTimer()

	case game.LevelCompleteMsg:
		// A reset may have been handled while this message was in flight.
		if !m.session.Won() {
			return m, nil
		}
		m.gameState = StateLevelComplete
		m.completion = msg.Completion
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Menu) {
			return m, func() tea.Msg { return BackToIntroMsg{} }
		}
		if key.Matches(msg, m.keys.Reset) {
			m.gameState = StatePlaying
			m.err = m.session.Reset()
			return m, nil
		}

		if m.gameState == StateLevelComplete {
			if key.Matches(msg, m.keys.Next) && m.session.Won() {
				m.gameState = StatePlaying
				m.showHint = false
				m.err = m.session.NextLevel()
			}
			return m, nil
		}

		if key.Matches(msg, m.keys.Hint) {
			m.showHint = !m.showHint
			return m, nil
		}

		var dir game.Direction
		switch {
		case key.Matches(msg, m.keys.Up):
			dir = game.Up
		case key.Matches(msg, m.keys.Down):
			dir = game.Down
		case key.Matches(msg, m.keys.Left):
			dir = game.Left
		case key.Matches(msg, m.keys.Right):
			dir = game.Right
		default:
			return m, nil
		}

		outcome := m.session.Move(dir)
		if !outcome.Won {
			return m, nil
		}

		completion, _ := m.session.Completion()
		m.gameState = StateLevelComplete
		m.completion = completion
		log.Debug("Player reached the goal", "player", completion.PlayerName, "level", completion.Level)
		return m, func() tea.Msg { return game.LevelCompleteMsg{Completion: completion} }
	}

	return m, nil
}

func (m GameViewModel) View() string {
	mapContent := mapViewStyle.Render(m.renderMap())
	statusContent := statusPanelStyle.Width(statusPanelWidth).Render(m.renderStatusPanel())

	content := lipgloss.JoinHorizontal(lipgloss.Top, mapContent, statusContent)
	if m.gameState == StateLevelComplete {
		content = lipgloss.JoinVertical(lipgloss.Center, content, m.renderCongratulations())
	}

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}

func (m GameViewModel) renderMap() string {
	grid := m.session.Grid()
	player := m.session.Player()
	goal := m.session.Goal()

	hint := make(map[maze.Point]bool)
	if m.showHint {
		for _, p := range m.session.Hint() {
			hint[p] = true
		}
	}

	var sb strings.Builder
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			p := maze.Point{X: x, Y: y}
			switch {
			case p == player:
				sb.WriteString(playerCell)
			case p == goal:
				sb.WriteString(goalCell)
			case !grid.IsOpen(x, y):
				sb.WriteString(wallCell)
			case hint[p]:
				sb.WriteString(hintCell)
			default:
				sb.WriteString(voidCell)
			}
		}
		if y < grid.Rows()-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderStatusPanel draws the level, clock and controls.
func (m GameViewModel) renderStatusPanel() string {
	var statusContent strings.Builder

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Maze ---") + "\n")
	playerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(game.PlayerColor)))
	statusContent.WriteString(fmt.Sprintf("%s%s\n", playerStyle.Render("● "), m.session.PlayerName()))
	statusContent.WriteString(fmt.Sprintf("Level: %d\n", m.session.Level()))
	statusContent.WriteString(fmt.Sprintf("Time: %ds\n", m.session.ElapsedSeconds()))
	statusContent.WriteString(fmt.Sprintf("Moves: %d\n", m.session.Moves()))
	statusContent.WriteString(fmt.Sprintf("Distance: %d\n", m.session.DistanceToGoal()))

	if m.err != nil {
		statusContent.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
	helpView := m.help
	helpView.ShowAll = true
	statusContent.WriteString(helpView.View(m.keys))

	return statusContent.String()
}

func (m GameViewModel) renderCongratulations() string {
	message := fmt.Sprintf("Congratulations! You completed level %d in %d seconds!",
		m.completion.Level, m.completion.Seconds())
	instruction := lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("enter: level %d  r: restart  esc: menu", m.completion.Level+1))
	return congratsStyle.Render(lipgloss.JoinVertical(lipgloss.Center, message, instruction))
}
