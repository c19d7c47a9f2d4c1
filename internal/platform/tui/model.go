// Package tui provides the Bubble Tea integration for the shooter. It runs
// the fixed-step simulation loop, maps keys to commands, renders the screen
// buffer, and hosts the recharge overlay and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geo-shooter/internal/core"
	"github.com/vovakirdan/geo-shooter/internal/recharge"
	"github.com/vovakirdan/geo-shooter/internal/shooter"
	"github.com/vovakirdan/geo-shooter/internal/storage"
)

// TickMsg triggers one simulation tick.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// rechargeResultMsg carries a settled order outcome into the update loop.
type rechargeResultMsg recharge.Result

// Model is the Bubble Tea model running a single shooter session.
type Model struct {
	game     *shooter.Game
	screen   *core.Screen
	store    *storage.Store
	client   *recharge.Client
	config   core.RuntimeConfig
	frame    core.CommandFrame
	status   core.Status
	keymap   *KeyMapper
	overlay  *rechargeOverlay
	results  chan recharge.Result
	quitting bool
}

// NewModel creates a model for the given game. The store may be nil; runs
// are then not persisted. The recharge client is wired to the game's credit
// sink and reports outcomes back through the update loop.
func NewModel(game *shooter.Game, store *storage.Store, apiURL string, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	results := make(chan recharge.Result, 4)
	client := recharge.NewClient(apiURL, store, game)
	client.OnResult = func(r recharge.Result) {
		results <- r
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		client:  client,
		config:  cfg,
		frame:   core.NewCommandFrame(),
		keymap:  NewKeyMapper(),
		results: results,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), m.waitForResult())
}

// waitForResult blocks on the recharge result channel.
func (m Model) waitForResult() tea.Cmd {
	return func() tea.Msg {
		return rechargeResultMsg(<-m.results)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World coordinates are fixed; only the projection changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case rechargeResultMsg:
		if m.overlay != nil {
			m.overlay.setResult(recharge.Result(msg))
		}
		return m, m.waitForResult()
	}

	if m.overlay != nil {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The overlay owns the keyboard while open.
	if m.overlay != nil {
		if m.overlay.wantsClose(msg) {
			m.overlay = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.handleKey(msg, m.client)
		return m, cmd
	}

	if m.keymap.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Recharge overlay opens from any non-action state.
	if msg.String() == "c" && (m.status.InMenu || m.status.Paused || m.status.GameOver) {
		m.overlay = newRechargeOverlay()
		return m, nil
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame)
	m.status = result.Status

	if result.Record != nil && m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(*result.Record)
	}

	m.frame = core.NewCommandFrame()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame, compositing the recharge overlay on top
// when it is open.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.overlay != nil {
		return m.overlay.composite(view, m.screen.Width(), m.screen.Height())
	}
	return view
}

// Run starts the Bubble Tea program for local play.
func Run(game *shooter.Game, store *storage.Store, apiURL string, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, apiURL, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
