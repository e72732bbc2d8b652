package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/falling/internal/config"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuSelectsModeAndDifficulty(t *testing.T) {
	m := NewMenuModel(80, 24)
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m = menuKey(t, m, down)  // Random
	m = menuKey(t, m, enter) // to difficulty list
	if m.Selected() != nil {
		t.Fatal("selection should not be final yet")
	}
	if !strings.Contains(m.View(), "fixed (no ramp)") {
		t.Error("difficulty list should label the fixed preset")
	}

	m = menuKey(t, m, down) // normal -> hard
	m = menuKey(t, m, enter)

	got := m.Selected()
	want := Selection{Mode: config.SpawnStochastic, Difficulty: config.DifficultyHard}
	if got == nil || *got != want {
		t.Errorf("selection = %+v, want %+v", got, want)
	}
}

func TestMenuBackFromDifficulty(t *testing.T) {
	m := NewMenuModel(80, 24)
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.inDifficulty {
		t.Error("esc should return to the mode list")
	}
	if !strings.Contains(m.View(), "Select spawn mode") {
		t.Error("mode list not shown")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(80, 24)
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	for i := 0; i < 5; i++ {
		m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(modeOptions)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(modeOptions)-1)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(80, 24)
	m = menuKey(t, m, runeKey('q'))
	if m.Selected() != nil {
		t.Error("quit should leave no selection")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("overlong text changed: %q", got)
	}
}
