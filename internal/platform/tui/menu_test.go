package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuDefaultsToNormal(t *testing.T) {
	m := NewMenuModel(nil, "neonbounce", testRuntime())
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.Quit || res.WantsScoreboard || res.Preset != config.DifficultyNormal {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuResult
	}{
		{
			name: "easy",
			keys: []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}},
			want: MenuResult{Preset: config.DifficultyEasy},
		},
		{
			name: "hard",
			keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			want: MenuResult{Preset: config.DifficultyHard},
		},
		{
			name: "scores item",
			keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			want: MenuResult{WantsScoreboard: true},
		},
		{
			name: "quit item",
			keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			want: MenuResult{Quit: true},
		},
		{
			name: "tab opens scores",
			keys: []tea.KeyMsg{{Type: tea.KeyTab}},
			want: MenuResult{WantsScoreboard: true},
		},
		{
			name: "cursor stops at top",
			keys: []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeyEnter}},
			want: MenuResult{Preset: config.DifficultyEasy},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, "neonbounce", testRuntime())
			for _, k := range tt.keys {
				m = menuKey(t, m, k)
			}
			got := m.Result()
			got.Config = tt.want.Config
			if got != tt.want {
				t.Errorf("Result() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{GameID: "neonbounce", Score: 4200}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, "neonbounce", testRuntime())
	if !strings.Contains(m.View(), "High Score: 4200") {
		t.Errorf("menu should show the high score:\n%s", m.View())
	}
}

func TestScoreboardScopes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{GameID: "neonbounce", Player: "alice", Score: 300})
	store.SaveRun(storage.Run{GameID: "neonbounce", Player: "bob", Score: 500})

	sb := NewScoreboardModel(store, "neonbounce", "alice", 60, 120, 40)
	if len(sb.runs) != 2 {
		t.Fatalf("all-players scope should list 2 runs, got %d", len(sb.runs))
	}
	if sb.stats == nil || sb.stats.HighScore != 500 {
		t.Errorf("stats not loaded: %+v", sb.stats)
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb = next.(ScoreboardModel)
	if len(sb.runs) != 1 || sb.runs[0].Player != "alice" {
		t.Errorf("player scope should list only alice's run, got %+v", sb.runs)
	}
	if !strings.Contains(sb.View(), "Player alice") {
		t.Error("title should name the player scope")
	}

	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sb = next.(ScoreboardModel)
	if !sb.IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	var presets []string
	factory := func(preset string) (Game, error) {
		presets = append(presets, preset)
		return &scriptedGame{endAfter: 1}, nil
	}

	s := NewSessionModel(SessionOptions{Player: "alice", GameID: "scripted", NewGame: factory}, testRuntime())
	update := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	update(tea.KeyMsg{Type: tea.KeyDown})
	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.current != screenGame {
		t.Fatalf("expected game screen, got %v", s.current)
	}
	if len(presets) != 1 || presets[0] != "hard" {
		t.Errorf("factory called with %v, want [hard]", presets)
	}

	update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	update(TickMsg{})
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenMenu {
		t.Errorf("expected menu after leaving a finished game, got %v", s.current)
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.current != screenScores {
		t.Errorf("expected scoreboard, got %v", s.current)
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenMenu {
		t.Errorf("expected menu after scoreboard, got %v", s.current)
	}
}
