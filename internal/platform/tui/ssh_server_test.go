package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climber/internal/games/climber"
)

func sessionUpdate(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(SessionModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig())
	m.Init()

	m = sessionUpdate(t, m, runeKey("l"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start a game")
	}
	if !m.gameModel.canGoBack {
		t.Error("session games should allow going back")
	}
	if _, ok := m.game.(*climber.Game); !ok {
		t.Fatalf("game is %T", m.game)
	}

	m = sessionUpdate(t, m, TickMsg(time.Now()), runeKey("p"), TickMsg(time.Now()))
	if !m.gameModel.gameState.Paused {
		t.Fatal("game should be paused")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.gameModel != nil || m.game != nil {
		t.Fatal("esc while paused should return to the menu")
	}
	if m.quitting {
		t.Error("going back must not end the session")
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testConfig())

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == m.menu.View() {
		t.Error("view should show the scoreboard")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.scoreboard != nil || m.quitting {
		t.Error("esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig())

	next, cmd := m.Update(runeKey("q"))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("ended session should render nothing")
	}
}
