package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rust-overload/internal/core"
	_ "github.com/vovakirdan/rust-overload/internal/games/overload"
	"github.com/vovakirdan/rust-overload/internal/storage"
)

func menuStep(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return nm
}

func TestMenuItems(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	expected := []string{"Campaign", "Endless", "High Scores", "Quit"}
	if len(m.items) != len(expected) {
		t.Fatalf("menu has %d items, expected %d", len(m.items), len(expected))
	}
	for i, title := range expected {
		if m.items[i].Title != title {
			t.Errorf("items[%d] = %q, expected %q", i, m.items[i].Title, title)
		}
	}
}

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name       string
		downs      int
		mode       string
		scoreboard bool
		quit       bool
	}{
		{"campaign", 0, "campaign", false, false},
		{"endless", 1, "endless", false, false},
		{"high scores", 2, "", true, false},
		{"quit", 3, "", false, true},
		{"cursor stops at bottom", 10, "", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, core.DefaultConfig())
			for i := 0; i < tc.downs; i++ {
				m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
			}
			m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			r := m.Result()
			if r.ModeID != tc.mode || r.WantsScoreboard != tc.scoreboard || r.Quit != tc.quit {
				t.Errorf("Result() = %+v, expected mode %q scoreboard %v quit %v", r, tc.mode, tc.scoreboard, tc.quit)
			}
		})
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(core.RunSummary{Mode: "campaign", Score: 17, Outcome: "toxic"})

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if m.items[0].Best != 17 {
		t.Errorf("campaign best = %d, expected 17", m.items[0].Best)
	}
	if !strings.Contains(m.View(), "best 17") {
		t.Error("View() should show the best campaign score")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = menuStep(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	cfg := m.Config()
	if cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %dx%d, expected 100x30", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 3, "abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}
