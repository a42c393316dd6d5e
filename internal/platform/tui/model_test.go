package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rust-overload/internal/core"
	"github.com/vovakirdan/rust-overload/internal/platform/spectate"
	"github.com/vovakirdan/rust-overload/internal/storage"
)

// scriptedGame ends the run after a fixed number of steps.
type scriptedGame struct {
	ticks   uint64
	endAt   uint64
	agings  int
	resets  int
	paused  bool
	over    bool
	width   int
	lastIn  core.InputFrame
	summary core.RunSummary
}

func (g *scriptedGame) ID() string    { return "rust" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
	g.agings = 0
	g.over = false
	g.paused = false
}

func (g *scriptedGame) Resize(w, _ int) { g.width = w }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.lastIn = in
	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}
	if g.paused || g.over {
		return core.StepResult{State: g.State()}
	}
	g.ticks++
	var events []core.Event
	if g.endAt > 0 && g.ticks >= g.endAt {
		g.over = true
		events = append(events, core.Event{Kind: core.EventDeath, Text: "dead"})
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *scriptedGame) Age() core.StepResult {
	g.agings++
	return core.StepResult{
		State:  g.State(),
		Events: []core.Event{{Kind: core.EventAging, Text: "aging"}},
	}
}

func (g *scriptedGame) AgingInterval() time.Duration { return 15 * time.Second }
func (g *scriptedGame) Render(dst *core.Screen)      { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: int(g.ticks), GameOver: g.over, Paused: g.paused}
}
func (g *scriptedGame) Summary() core.RunSummary { return g.summary }
func (g *scriptedGame) Ticks() uint64            { return g.ticks }
func (g *scriptedGame) Observe() any             { return map[string]uint64{"ticks": g.ticks} }

type recordingPublisher struct {
	frames []spectate.Frame
}

func (p *recordingPublisher) Publish(f spectate.Frame) error {
	p.frames = append(p.frames, f)
	return nil
}

func newScriptedModel(t *testing.T, g *scriptedGame, opts ModelOptions) Model {
	t.Helper()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 7}, opts)
	m.Init()
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{
		endAt:   3,
		summary: core.RunSummary{Mode: "campaign", Score: 3, Outcome: "toxic", Seed: 7},
	}
	m := newScriptedModel(t, g, ModelOptions{Store: store})

	for i := 0; i < 6; i++ {
		m = step(t, m, TickMsg(time.Now()))
	}

	saved, id := m.RunSaved()
	if !saved || id == 0 {
		t.Errorf("RunSaved() = %v, %d; expected true with an ID", saved, id)
	}
	runs, err := store.TopRuns("campaign", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("stored runs = %d, expected exactly 1", len(runs))
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &scriptedGame{endAt: 1}
	m := newScriptedModel(t, g, ModelOptions{})

	m = step(t, m, TickMsg(time.Now()))
	if !m.GameState().GameOver {
		t.Fatal("run should be over after the first tick")
	}
	gen := m.agingGen

	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg(time.Now()))

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2 (init + restart)", g.resets)
	}
	if m.agingGen == gen {
		t.Error("restart should start a new aging generation")
	}
	if saved, _ := m.RunSaved(); saved {
		t.Error("restart should clear the saved flag")
	}
	if m.config.Seed != 7 {
		t.Errorf("fixed seed changed to %d", m.config.Seed)
	}
}

func TestModelAgingTimer(t *testing.T) {
	g := &scriptedGame{}
	m := newScriptedModel(t, g, ModelOptions{})

	next, cmd := m.Update(AgingMsg{Gen: m.agingGen})
	m = next.(Model)
	if g.agings != 1 {
		t.Errorf("agings = %d, expected 1", g.agings)
	}
	if cmd == nil {
		t.Error("aging should reschedule itself")
	}

	// Stale timers from a previous run are ignored
	_, cmd = m.Update(AgingMsg{Gen: m.agingGen + 5})
	if g.agings != 1 || cmd != nil {
		t.Errorf("stale aging ran: agings = %d, cmd = %v", g.agings, cmd)
	}
}

func TestModelAgingSkippedWhilePaused(t *testing.T) {
	g := &scriptedGame{}
	m := newScriptedModel(t, g, ModelOptions{})

	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg(time.Now()))
	if !m.GameState().Paused {
		t.Fatal("game should be paused")
	}

	_, cmd := m.Update(AgingMsg{Gen: m.agingGen})
	if g.agings != 0 {
		t.Errorf("agings = %d while paused, expected 0", g.agings)
	}
	if cmd == nil {
		t.Error("paused aging should keep the timer alive")
	}
}

func TestModelPublishesFrames(t *testing.T) {
	pub := &recordingPublisher{}
	g := &scriptedGame{}
	m := newScriptedModel(t, g, ModelOptions{Publisher: pub, Session: "alice"})

	for i := 0; i < 25; i++ {
		m = step(t, m, TickMsg(time.Now()))
	}
	if len(pub.frames) != 2 {
		t.Fatalf("frames after 25 ticks at 10 Hz = %d, expected 2", len(pub.frames))
	}
	if pub.frames[1].Tick != 20 || pub.frames[1].Session != "alice" {
		t.Errorf("second frame = %+v", pub.frames[1])
	}

	m = step(t, m, AgingMsg{Gen: m.agingGen})
	if len(pub.frames) != 3 {
		t.Fatalf("frames after aging = %d, expected 3", len(pub.frames))
	}
	last := pub.frames[2]
	if len(last.Events) != 1 || last.Events[0].Kind != core.EventAging {
		t.Errorf("aging frame events = %+v", last.Events)
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &scriptedGame{}
	m := newScriptedModel(t, g, ModelOptions{})

	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("Back during play should be ignored")
	}

	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("Back while paused should return to menu")
	}
}

func TestModelQuitAndResize(t *testing.T) {
	g := &scriptedGame{}
	m := newScriptedModel(t, g, ModelOptions{})

	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.width != 120 || m.screen.Width() != 120 {
		t.Errorf("resize not applied: game %d, screen %d", g.width, m.screen.Width())
	}
	if g.resets != 1 {
		t.Errorf("resize reset the run (%d resets)", g.resets)
	}

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
}
