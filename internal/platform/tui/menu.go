package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/falling/internal/config"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

type modeOption struct {
	mode  config.SpawnMode
	label string
}

var modeOptions = []modeOption{
	{config.SpawnWave, "Wave (scripted sweep)"},
	{config.SpawnStochastic, "Random (ramping difficulty)"},
}

var difficultyOptions = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// Selection holds the user's choices from the start menu.
type Selection struct {
	Mode       config.SpawnMode
	Difficulty config.DifficultyPreset
}

// MenuModel lets users choose a spawn mode, then a difficulty preset.
type MenuModel struct {
	cursor       int
	diffCursor   int
	inDifficulty bool
	width        int
	height       int
	selection    Selection
	choosing     bool
	quitting     bool
}

// NewMenuModel creates a new start menu.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		width:      width,
		height:     height,
		diffCursor: 1, // normal
		choosing:   true,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inDifficulty {
		return m.handleDifficultyKey(action)
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(modeOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Mode = modeOptions[m.cursor].mode
		m.inDifficulty = true
	case MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(difficultyOptions)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = difficultyOptions[m.diffCursor]
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.inDifficulty = false
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F A L L I N G"), m.width))
	b.WriteString("\n\n")

	if m.inDifficulty {
		b.WriteString(centerText("Select difficulty:", m.width))
		b.WriteString("\n\n")
		for i, d := range difficultyOptions {
			label := string(d)
			if config.IsFixedPreset(d) {
				label += " (no ramp)"
			}
			b.WriteString(centerText(cursorLine(i == m.diffCursor, label), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select spawn mode:", m.width))
		b.WriteString("\n\n")
		for i, opt := range modeOptions {
			b.WriteString(centerText(cursorLine(i == m.cursor, opt.label), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

func cursorLine(selected bool, label string) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	return fmt.Sprintf("%s%s", cursor, label)
}

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// Selected returns the selection, or nil if still choosing or quit.
func (m MenuModel) Selected() *Selection {
	if m.choosing || m.quitting {
		return nil
	}
	return &m.selection
}

// RunMenu runs the start menu and returns the selection, or nil if the user quit.
func RunMenu(width, height int) (*Selection, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
