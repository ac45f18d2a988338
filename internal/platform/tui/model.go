package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkovalev/tui-invaders/internal/core"
	"github.com/pkovalev/tui-invaders/internal/storage"
)

// Game is the simulation contract the platform drives. The concrete
// implementation lives in internal/games/invaders; the platform only
// pushes input frames in and pulls render buffers out.
type Game interface {
	ID() string
	Title() string
	Reset(core.RuntimeConfig)
	SetHighScore(hi int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for running the game locally.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	runStart   time.Time
	quitting   bool
	runSaved   bool // Whether the run was persisted for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Seed the all-time high score from storage; the core never reads
	// the database itself.
	if m.store != nil {
		if hi, err := m.store.HighScore(); err == nil {
			m.game.SetHighScore(hi)
		}
	}

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRunOnExit()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The playfield geometry depends on the terminal size, so a resize
	// rebuilds the session. The high score survives the reset.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasIdle := m.gameState.Paused || m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A run begins when the state machine leaves the idle screens.
	if wasIdle && !m.gameState.Paused && !m.gameState.GameOver {
		m.runStart = time.Now()
		m.runSaved = false
	}

	// Persist the run on game over (once)
	if m.gameState.GameOver && !m.runSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.gameState.Score, m.gameState.Level, m.runDurationSecs())
		}
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRunOnExit persists an in-progress run when the player quits
// mid-game, so a good score is not lost to an impatient ctrl+c.
func (m *Model) saveRunOnExit() {
	if m.runSaved || m.store == nil {
		return
	}
	if m.gameState.GameOver || m.gameState.Score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save on the way out
	m.store.SaveRun(m.gameState.Score, m.gameState.Level, m.runDurationSecs())
	m.runSaved = true
}

// runDurationSecs returns the elapsed run time in whole seconds.
func (m *Model) runDurationSecs() int {
	if m.runStart.IsZero() {
		return 0
	}
	return int(time.Since(m.runStart).Seconds())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
