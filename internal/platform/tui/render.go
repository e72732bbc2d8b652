package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/falling/internal/config"
	"github.com/vovakirdan/falling/internal/core"
	"github.com/vovakirdan/falling/internal/games/falling"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// Playfield palette
const (
	blockRune    = '█'
	playerColor  = core.ColorBlue
	fallerColor  = core.ColorRed
	borderColor  = core.ColorGray
	hudColor     = core.ColorYellow
	overlayColor = core.ColorBrightWhite
)

// hudRows is the number of rows above the playfield border.
const hudRows = 1

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawFrame renders a snapshot into s: HUD row, bordered playfield,
// fallers, player and any pause or game-over overlay.
func DrawFrame(s *core.Screen, snap falling.Snapshot) {
	s.Clear()
	if s.Width() < 3 || s.Height() < hudRows+3 {
		s.DrawText(0, 0, "terminal too small", hudColor)
		return
	}

	s.DrawText(1, 0, hudLine(snap), hudColor)

	frame := core.NewRect(0, hudRows, s.Width(), s.Height()-hudRows)
	s.DrawBox(frame, borderColor)
	inner := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)

	for _, f := range snap.Fallers {
		drawSquare(s, inner, snap.Field, f, fallerColor)
	}
	drawSquare(s, inner, snap.Field, snap.Player, playerColor)

	switch {
	case snap.State == falling.StateGameOver:
		drawOverlay(s, inner, []string{
			"GAME OVER",
			fmt.Sprintf("You survived %.2f seconds", snap.Elapsed),
			"Press R to restart",
		})
	case snap.Paused:
		drawOverlay(s, inner, []string{"PAUSED", "Press P to resume"})
	}
}

func hudLine(snap falling.Snapshot) string {
	line := fmt.Sprintf("Time %6.2fs  Mode %s  Fallers %d", snap.Elapsed, snap.Mode, len(snap.Fallers))
	if snap.Mode == config.SpawnStochastic {
		line += fmt.Sprintf("  Chance %.2f%%", snap.Chance)
	} else {
		line += fmt.Sprintf("  Wave left %d", snap.PatternRemaining)
	}
	return line
}

// drawSquare fills the cells covered by sq, scaled from field pixels to area cells.
func drawSquare(s *core.Screen, area core.Rect, field falling.Playfield, sq core.Square, c core.Color) {
	x0, x1, okX := cellSpan(sq.Pos.X, sq.Size, field.Width, area.W)
	y0, y1, okY := cellSpan(sq.Pos.Y, sq.Size, field.Height, area.H)
	if !okX || !okY {
		return
	}
	s.DrawRect(core.NewRect(area.X+x0, area.Y+y0, x1-x0+1, y1-y0+1), blockRune, c)
}

// cellSpan maps the pixel interval [lo, lo+size] onto cell indices in
// [0, cells). ok is false when the interval is entirely off the field.
// Every visible square covers at least one cell.
func cellSpan(lo, size, field float64, cells int) (first, last int, ok bool) {
	if cells <= 0 || lo+size <= 0 || lo >= field {
		return 0, 0, false
	}
	scale := float64(cells) / field
	first = int(math.Floor(lo * scale))
	last = int(math.Ceil((lo+size)*scale)) - 1
	if last < first {
		last = first
	}
	return core.Clamp(first, 0, cells-1), core.Clamp(last, 0, cells-1), true
}

// drawOverlay draws a centered box holding lines.
func drawOverlay(s *core.Screen, area core.Rect, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = area.X + (area.W-box.W)/2
	box.Y = area.Y + (area.H-box.H)/2

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, overlayColor)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		s.DrawText(x, box.Y+1+i, l, overlayColor)
	}
}
