package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/registry"
	"github.com/ledcade/ledcade/internal/storage"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// Model is the Bubble Tea model for running arcade games. The arena keeps
// the fixed panel dimensions from the runtime config; the terminal only
// presents it.
type Model struct {
	game        registry.Game
	frame       *core.Frame
	store       *storage.Store
	config      core.RuntimeConfig
	keys        GameKeyMap
	inputFrame  core.InputFrame
	gameState   core.GameState
	primaryHeld bool // Synthesize a release edge on the next tick
	quitting    bool
	scoreSaved  bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = game.DefaultTickRate()
	}

	return Model{
		game:       game,
		frame:      core.NewFrame(cfg.ArenaW, cfg.ArenaH),
		store:      store,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
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

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey folds keyboard input into the frame for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if quit := m.keys.applyKey(msg, &m.inputFrame); quit {
		m.saveFinalScore()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Terminals have no key-up events: a primary press is followed by a
	// synthetic release on the next tick so press-edge games can re-arm.
	if m.primaryHeld && !m.inputFrame.Has(core.ActionPrimary) {
		m.inputFrame.Set(core.ActionRelease)
	}
	m.primaryHeld = m.inputFrame.Has(core.ActionPrimary)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveFinalScore persists the session score when the player quits an
// endless game mid-run. Game-over scores are already saved per tick.
func (m *Model) saveFinalScore() {
	if m.store == nil || m.scoreSaved || m.gameState.GameOver {
		return
	}
	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save on the way out
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.frame.Clear()
	m.game.Render(m.frame)

	status := fmt.Sprintf("score %d", m.gameState.Score)
	if m.gameState.Lives > 0 {
		status += fmt.Sprintf("  lives %d", m.gameState.Lives)
	}
	line := titleStyle.Render(m.game.Title()) + "  " + statusStyle.Render(status)
	if m.gameState.Paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}

	return RenderFrame(m.frame) + "\n" + line + "\n" +
		statusStyle.Render(helpLine(m.keys))
}

// helpLine formats the short help from the key map.
func helpLine(keys GameKeyMap) string {
	var parts []string
	for _, b := range keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " · "
		}
		out += p
	}
	return out
}

// Run starts the Bubble Tea program with the given model. An invalid
// configuration is rejected here, before any terminal setup.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	if cfg.TickRate == 0 {
		cfg.TickRate = game.DefaultTickRate()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
