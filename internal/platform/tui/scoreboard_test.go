package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climber/internal/games/climber"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store := openStore(t)
	for i, score := range []int{1200, 3400, 560} {
		_, err := store.SaveRun(storage.Run{
			RunID:     "run-" + string(rune('a'+i)) + "-0000",
			GameID:    climber.ID,
			Score:     score,
			Kills:     i,
			Ticks:     100,
			Reason:    "fell",
			StartedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.games[m.gameCursor].ID != climber.ID {
		t.Fatalf("first mode = %q", m.games[m.gameCursor].ID)
	}

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 score rows, got %d", len(rows))
	}
	if rows[0][0] != "1st" || rows[0][1] != "3,400" {
		t.Errorf("top row = %v", rows[0])
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Sky Climber") {
		t.Error("view should name the high score table")
	}

	next, _ := m.Update(runeKey("v"))
	m = next.(ScoreboardModel)
	rows = m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 run rows, got %d", len(rows))
	}
	if rows[0][1] != "560" || rows[0][3] != "fell" {
		t.Errorf("latest run row = %v", rows[0])
	}
	if rows[0][4] != "run" {
		t.Errorf("run column = %q, expected the short id", rows[0][4])
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.table.Rows()) != 0 {
		t.Error("classic mode should have no runs")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() || cmd == nil {
		t.Error("esc should go back")
	}
}
