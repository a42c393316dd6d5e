package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rust-overload/internal/core"
	"github.com/vovakirdan/rust-overload/internal/platform/spectate"
	"github.com/vovakirdan/rust-overload/internal/registry"
	"github.com/vovakirdan/rust-overload/internal/storage"
)

// maxUnpublished bounds the events buffered between spectator frames.
const maxUnpublished = 32

// agingSeq hands out aging timer generations. It is shared by all models so
// a timer left over from a finished game never fires into the next one.
var agingSeq atomic.Int64

// ModelOptions holds the optional collaborators of a game model.
type ModelOptions struct {
	Store      *storage.Store
	Logger     *log.Logger
	Publisher  spectate.Publisher
	Session    string // Spectator session name
	QuitOnBack bool   // Leave the program on Back instead of reporting it
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	publisher  spectate.Publisher
	session    string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	agingGen   int64
	fixedSeed  bool
	quitOnBack bool

	unpublished []core.Event

	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
	savedID    int64
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	session := opts.Session
	if session == "" {
		session = "local"
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		publisher:  opts.Publisher,
		session:    session,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		agingGen:   agingSeq.Add(1),
		fixedSeed:  fixed,
		quitOnBack: opts.QuitOnBack,
	}
}

// Init starts the run, the frame loop and the aging timer.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(
		tickCmd(m.config.TickRate),
		agingCmd(m.game.AgingInterval(), m.agingGen),
	)
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

	case AgingMsg:
		return m.handleAging(msg)
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

	// Back to menu only from a paused or finished run
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events. The run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		return m.restart()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.record(result.Events)

	// One spectator frame per second of game time
	running := !result.State.Paused && !result.State.GameOver
	if running && m.game.Ticks()%uint64(m.config.TickRate) == 0 {
		m.publish()
	}
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.publish()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleAging runs an aging pass on the current run's timer.
func (m Model) handleAging(msg AgingMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.agingGen || m.backToMenu {
		return m, nil
	}
	if m.gameState.GameOver {
		return m, nil
	}

	// Paused runs skip the pass but keep the timer alive
	if !m.gameState.Paused {
		result := m.game.Age()
		m.gameState = result.State
		m.record(result.Events)
		m.publish()
		if m.gameState.GameOver && !m.runSaved {
			m.saveRun()
		}
	}

	return m, agingCmd(m.game.AgingInterval(), m.agingGen)
}

// restart begins a new run and invalidates the previous aging timer.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.savedID = 0
	m.unpublished = nil
	m.inputFrame.Clear()
	m.agingGen = agingSeq.Add(1)
	m.logger.Debug("run restarted", "session", m.session, "seed", m.config.Seed)

	return m, tea.Batch(
		tickCmd(m.config.TickRate),
		agingCmd(m.game.AgingInterval(), m.agingGen),
	)
}

// record logs events and buffers them for spectators.
func (m *Model) record(events []core.Event) {
	for _, ev := range events {
		m.logger.Debug("game event", "session", m.session, "kind", ev.Kind, "text", ev.Text)
	}
	if m.publisher == nil {
		return
	}
	m.unpublished = append(m.unpublished, events...)
	if len(m.unpublished) > maxUnpublished {
		m.unpublished = m.unpublished[len(m.unpublished)-maxUnpublished:]
	}
}

// publish sends a spectator frame if a publisher is configured.
func (m *Model) publish() {
	if m.publisher == nil {
		return
	}
	frame := spectate.Frame{
		Session:  m.session,
		Tick:     m.game.Ticks(),
		Snapshot: m.game.Observe(),
		Events:   m.unpublished,
	}
	if err := m.publisher.Publish(frame); err != nil {
		m.logger.Warn("cannot publish spectator frame", "session", m.session, "err", err)
		return
	}
	m.unpublished = nil
}

// saveRun stores the finished run once.
func (m *Model) saveRun() {
	m.runSaved = true
	summary := m.game.Summary()
	m.logger.Info("run finished",
		"session", m.session,
		"mode", summary.Mode,
		"outcome", summary.Outcome,
		"score", summary.Score,
		"repaired", summary.WeaponsRepaired,
	)
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(summary)
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
		return
	}
	m.savedID = id
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".rust-overload", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunSaved reports whether the finished run was recorded, and its ID.
func (m Model) RunSaved() (bool, int64) {
	return m.runSaved, m.savedID
}

// GameState returns the latest state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	opts.QuitOnBack = true
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
