package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climber"
)

func sendKeys(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		if m, ok = next.(MenuModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	if len(m.items) < 2 {
		t.Fatalf("expected both climber modes, got %d items", len(m.items))
	}
	view := m.View()
	for _, title := range []string{"Sky Climber", "Sky Climber Classic", "Difficulty: < default >"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu view missing %q", title)
		}
	}
}

func TestMenuSelectWithDifficulty(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = sendKeys(t, m, runeKey("l"), runeKey("l"), tea.KeyMsg{Type: tea.KeyEnter})

	result := m.Result()
	if result.Quit || result.WantsScoreboard {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.GameID != climber.ID {
		t.Errorf("GameID = %q, expected %q", result.GameID, climber.ID)
	}
	if result.Difficulty != "normal" {
		t.Errorf("Difficulty = %q, expected normal", result.Difficulty)
	}

	game, err := result.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if _, ok := game.(*climber.Game); !ok {
		t.Errorf("CreateGame returned %T", game)
	}
}

func TestMenuDifficultyWraps(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = sendKeys(t, m, runeKey("h"))

	if got := m.Difficulty(); got != Difficulties[len(Difficulties)-1] {
		t.Errorf("Difficulty() = %q after wrapping left", got)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendKeys(t, NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = sendKeys(t, NewMenuModel(nil, core.DefaultConfig()), runeKey("q"))
	if !m.Result().Quit {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("●●", 4); got != " ●●" {
		t.Errorf("centerText should count runes, got %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}
