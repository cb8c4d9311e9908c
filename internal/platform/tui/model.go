package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-homebound/internal/core"
	"github.com/vovakirdan/tui-homebound/internal/registry"
	"github.com/vovakirdan/tui-homebound/internal/storage"
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the run has been recorded for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
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
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

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
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse forwards left-button presses to the game as cell clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.AddClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	// Note: This resets the game - could be improved to preserve state
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run on game over (once)
	if m.gameState.GameOver && !m.runSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.game.ID(), m.gameState.Score)
		}
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".homebound", "screenshots")
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
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Waypoints are set with the mouse
	)

	_, err := p.Run()
	return err
}
