package ui

import (
	"github.com/Mshel/sshmaze/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
	LeaderboardScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Play, 1 for Leaderboard
type SetupSubmitMsg struct {
	Name string
}

type BackToIntroMsg struct{}

// SessionFactory starts a new game for the named player.
type SessionFactory func(playerName string) (*game.Session, error)

type ControllerModel struct {
	CurrentScreen Screen

	IntroModel       tea.Model
	SetupModel       tea.Model
	GameModel        tea.Model
	LeaderboardModel tea.Model

	newSession    SessionFactory
	scoreBoard    ScoreBoard
	suggestedName string
	err           error

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(newSession SessionFactory, scoreBoard ScoreBoard, suggestedName string, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),

		newSession:    newSession,
		scoreBoard:    scoreBoard,
		suggestedName: suggestedName,
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	if m.err != nil {
		return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				errorStyle.Render("Could not start the game: "+m.err.Error()),
				lipgloss.NewStyle().Faint(true).Render("press any key to return to the menu")))
	}

	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	case LeaderboardScreen:
		return m.LeaderboardModel.View()
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// --- 1. Global Key Check (Check before the main switch) ---
	if msg, ok := msg.(tea.KeyMsg); ok {
		// q is a valid letter while typing a name
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.CurrentScreen != SetupScreen) {
			return m, tea.Quit
		}
		// Any other key dismisses a failed start.
		if m.err != nil {
			m.err = nil
			m.CurrentScreen = IntroScreen
			return m, m.IntroModel.Init()
		}
	}

	// --- 2. State Transition Message Handling ---
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		cmd = m.broadcast(msg)
		return m, cmd

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			m.SetupModel = NewInitialSetupModel(m.suggestedName, m.ScreenWidth, m.ScreenHeight)
			return m, m.SetupModel.Init()
		}
		m.CurrentScreen = LeaderboardScreen
		m.LeaderboardModel = NewLeaderboardModel(m.scoreBoard, m.ScreenWidth, m.ScreenHeight)
		return m, m.LeaderboardModel.Init()

	case SetupSubmitMsg:
		session, err := m.newSession(msg.Name)
		if err != nil {
			log.Error("Failed to start session", "player", msg.Name, "error", err)
			m.err = err
			return m, nil
		}

		m.CurrentScreen = GameScreen
		m.GameModel = NewGameModel(session, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()

	case BackToIntroMsg:
		m.CurrentScreen = IntroScreen
		m.GameModel = nil
		return m, m.IntroModel.Init()
	}

	// --- 3. Message Delegation (Pass to the active model for all other messages) ---
	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case SetupScreen:
		m.SetupModel, cmd = m.SetupModel.Update(msg)
	case GameScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
	case LeaderboardScreen:
		m.LeaderboardModel, cmd = m.LeaderboardModel.Update(msg)
	}

	return m, cmd
}

// broadcast forwards a resize to every screen that exists.
func (m *ControllerModel) broadcast(msg tea.WindowSizeMsg) tea.Cmd {
	var cmds []tea.Cmd
	for _, sub := range []*tea.Model{&m.IntroModel, &m.SetupModel, &m.GameModel, &m.LeaderboardModel} {
		if *sub == nil {
			continue
		}
		var cmd tea.Cmd
		*sub, cmd = (*sub).Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
