package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/Mshel/sshmaze/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreBoardStub struct {
	scores []game.Score
	err    error
}

func (s scoreBoardStub) GetFastestCompletions(limit, offset int) ([]game.Score, error) {
	return s.scores, s.err
}

func updateController(t *testing.T, m ControllerModel, msg tea.Msg) (ControllerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	cm, ok := next.(ControllerModel)
	require.True(t, ok)
	return cm, cmd
}

func TestController_IntroToGame(t *testing.T) {
	var requestedName string
	factory := func(name string) (*game.Session, error) {
		requestedName = name
		return newTestSession(t, name), nil
	}
	m := NewControllerModel(factory, nil, "sshuser", 120, 40)

	m, cmd := updateController(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = updateController(t, m, cmd())
	require.Equal(t, SetupScreen, m.CurrentScreen)

	m, _ = updateController(t, m, keyRunes("q"))
	assert.Equal(t, SetupScreen, m.CurrentScreen, "q is typed into the name field")
	assert.Equal(t, "sshuserq", m.SetupModel.(SetupModel).nameInput.Value())

	m, cmd = updateController(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	submit := cmd()
	assert.Equal(t, SetupSubmitMsg{Name: "sshuserq"}, submit)

	m, cmd = updateController(t, m, submit)
	assert.Equal(t, GameScreen, m.CurrentScreen)
	assert.Equal(t, "sshuserq", requestedName)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Level: 1")

	m, _ = updateController(t, m, BackToIntroMsg{})
	assert.Equal(t, IntroScreen, m.CurrentScreen)
	assert.Nil(t, m.GameModel)
}

func TestController_EmptyNameFallsBack(t *testing.T) {
	setup := NewInitialSetupModel("", 80, 24)
	_, cmd := setup.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SetupSubmitMsg{Name: defaultPlayerName}, cmd())
}

func TestController_QuitKeys(t *testing.T) {
	m := NewControllerModel(nil, nil, "", 80, 24)

	_, cmd := updateController(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = updateController(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestController_SessionFailureIsShown(t *testing.T) {
	factory := func(string) (*game.Session, error) { return nil, errors.New("no maze today") }
	m := NewControllerModel(factory, nil, "", 120, 40)

	m, _ = updateController(t, m, SetupSubmitMsg{Name: "x"})
	assert.Contains(t, m.View(), "no maze today")
}

func TestController_KeyAfterSessionFailureReturnsToIntro(t *testing.T) {
	failures := 0
	factory := func(name string) (*game.Session, error) {
		if failures == 0 {
			failures++
			return nil, errors.New("no maze today")
		}
		return newTestSession(t, name), nil
	}
	m := NewControllerModel(factory, nil, "sshuser", 120, 40)

	m, _ = updateController(t, m, IntroSubmitMsg(0))
	m, _ = updateController(t, m, SetupSubmitMsg{Name: "x"})
	require.Contains(t, m.View(), "no maze today")

	m, _ = updateController(t, m, keyRunes("q"))
	assert.Equal(t, IntroScreen, m.CurrentScreen, "q on the failed setup dismisses instead of typing")
	assert.NotContains(t, m.View(), "no maze today")

	m, _ = updateController(t, m, IntroSubmitMsg(0))
	m, _ = updateController(t, m, SetupSubmitMsg{Name: "x"})
	assert.Equal(t, GameScreen, m.CurrentScreen)
	assert.Contains(t, m.View(), "Level: 1")
}

func TestController_Leaderboard(t *testing.T) {
	board := scoreBoardStub{scores: []game.Score{
		{PlayerName: "speedy", Level: 3, Elapsed: 4200 * time.Millisecond, Moves: 51, Cols: 20, Rows: 20},
	}}
	m := NewControllerModel(nil, board, "", 120, 40)

	m, cmd := updateController(t, m, IntroSubmitMsg(1))
	require.Equal(t, LeaderboardScreen, m.CurrentScreen)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading scores...")

	m, _ = updateController(t, m, cmd())
	view := m.View()
	assert.Contains(t, view, "speedy")
	assert.Contains(t, view, "4.2s")
	assert.Contains(t, view, "20x20")

	_, cmd = updateController(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, BackToIntroMsg{}, cmd())
}

func TestLeaderboard_States(t *testing.T) {
	unavailable := NewLeaderboardModel(nil, 120, 40)
	assert.Contains(t, unavailable.View(), "not available")

	failing := NewLeaderboardModel(scoreBoardStub{err: errors.New("locked")}, 120, 40)
	next, _ := failing.Update(failing.Init()())
	assert.Contains(t, next.View(), "locked")

	empty := NewLeaderboardModel(scoreBoardStub{}, 120, 40)
	next, _ = empty.Update(empty.Init()())
	assert.Contains(t, next.View(), "No mazes solved yet")
}

func TestController_ResizeReachesScreens(t *testing.T) {
	m := NewControllerModel(nil, nil, "", 80, 24)
	m, _ = updateController(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})

	assert.Equal(t, 200, m.ScreenWidth)
	intro := m.IntroModel.(IntroModel)
	assert.Equal(t, 200, intro.width)
	assert.Equal(t, 60, intro.height)
}
