package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/falling/internal/config"
	"github.com/vovakirdan/falling/internal/core"
	"github.com/vovakirdan/falling/internal/games/falling"
)

// Options configures a game Model.
type Options struct {
	Config  config.FallingConfig
	Runtime core.RuntimeConfig // Seed 0 picks a time-based seed
	Logger  *log.Logger        // nil discards logs
}

// Model is the Bubble Tea model that hosts one falling session.
type Model struct {
	session  *falling.Session
	cfg      config.FallingConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	hold     *holdTracker
	logger   *log.Logger
	now      func() time.Time
	runID    string
	lastTick time.Time // Zero after start, reset and pause
	width    int
	height   int
	gameOver bool // Game over already logged for this run
	quitting bool
}

// NewModel creates a game model and starts the first run.
func NewModel(opts Options) (Model, error) {
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := falling.NewSession(opts.Config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session: session,
		cfg:     opts.Config,
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    newHoldTracker(time.Duration(opts.Config.Input.ReleaseAfterMS) * time.Millisecond),
		logger:  logger,
		now:     time.Now,
		runID:   uuid.NewString(),
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}
	m.layout()

	m.logger.Info("run started", "run", m.runID, "mode", session.Mode(), "seed", seed)
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Timing.UPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	gameKey, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "run", m.runID, "state", m.session.State(), "elapsed", m.session.Elapsed())
		return m, tea.Quit
	}

	switch gameKey {
	case core.KeyLeft, core.KeyRight:
		m.send(m.hold.Press(gameKey, m.now()))

	case core.KeyReset:
		if m.session.State() != falling.StateGameOver {
			return m, nil
		}
		m.session.HandleButton(core.Pressed(core.KeyReset))
		m.hold.Clear()
		m.gameOver = false
		m.lastTick = time.Time{}
		m.runID = uuid.NewString()
		m.logger.Info("run started", "run", m.runID, "mode", m.session.Mode())

	case core.KeyPause:
		m.session.HandleButton(core.Pressed(core.KeyPause))
		m.lastTick = time.Time{}
		m.logger.Debug("pause toggled", "run", m.runID, "paused", m.session.Paused())
	}

	return m, nil
}

// handleTick releases stale keys and advances the session by one step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.send(m.hold.Expire(now))

	res := m.session.Tick(m.stepSeconds(now))
	if res.Hit {
		m.logger.Debug("player hit", "run", m.runID, "pruned", res.Pruned)
	}
	if res.State == falling.StateGameOver && !m.gameOver {
		m.gameOver = true
		m.logger.Info("game over", "run", m.runID, "elapsed", m.session.Elapsed())
	}

	return m, tickCmd(m.cfg.Timing.UPS)
}

// stepSeconds returns the dt for the tick arriving at now.
func (m *Model) stepSeconds(now time.Time) float64 {
	fixed := 1 / float64(m.cfg.Timing.UPS)
	prev := m.lastTick
	m.lastTick = now

	if m.cfg.Timing.FixedStep || prev.IsZero() {
		return fixed
	}
	dt := now.Sub(prev).Seconds()
	if limit := m.cfg.Timing.MaxStep; limit > 0 && dt > limit {
		dt = limit
	}
	return dt
}

func (m *Model) send(events []core.ButtonEvent) {
	for _, ev := range events {
		m.session.HandleButton(ev)
	}
}

// layout sizes the screen buffer to leave room for the help footer.
func (m *Model) layout() {
	m.help.Width = m.width
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.width, max(m.height-helpHeight, 0))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the hosted session.
func (m Model) Session() *falling.Session {
	return m.session
}

// RunID returns the id of the current run, as logged.
func (m Model) RunID() string {
	return m.runID
}

// Run starts the Bubble Tea program with a new game model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
