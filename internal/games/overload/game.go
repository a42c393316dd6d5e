// Package overload implements Rust Overload: scavenge scrap in the wasteland,
// repair corroding weapons in the workshop, and avoid handling overused,
// toxic resources when the inventory overflows.
package overload

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rust-overload/internal/config"
	"github.com/vovakirdan/rust-overload/internal/core"
	"github.com/vovakirdan/rust-overload/internal/scrap"
)

// ID is the game identifier used for score storage.
const ID = "rust"

// maxRecentEvents is the length of the HUD event log.
const maxRecentEvents = 5

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeRunning Outcome = "running"
	OutcomeVictory Outcome = "victory"
	OutcomeToxic   Outcome = "toxic"
)

// Game is a single Rust Overload run.
type Game struct {
	cfg    config.GameConfig
	logger *log.Logger

	rng      *rand.Rand
	seed     int64
	tickRate int
	frame    time.Duration
	screenW  int
	screenH  int

	state       *scrap.State
	coordinator scrap.Coordinator
	difficulty  *config.DifficultyManager
	specs       []scrap.WeaponSpec

	scenes  [sceneCount]Scene
	current SceneID

	tick       uint64
	sinceAging int // Ticks since the last aging pass
	agings     int

	recent  []core.Event // Newest last
	pending []core.Event // Events not yet returned by Step or Age

	paused  bool
	over    bool
	outcome Outcome
}

// New creates a game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultGameConfig(),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.Mode() == ModeEndless {
		return "Rust Overload (Endless)"
	}
	return "Rust Overload"
}

// Mode returns campaign or endless, depending on the victory goal.
func (g *Game) Mode() Mode {
	if g.cfg.Endless() {
		return ModeEndless
	}
	return ModeCampaign
}

// Config returns the configuration of the run.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Reset initializes/restarts the run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.seed = rc.Seed
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.frame = rc.FrameDuration()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	rules := g.cfg.Rules()
	g.specs = g.cfg.WeaponSpecs()
	g.coordinator = scrap.NewCoordinator(rules.AgingInterval)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	inv := scrap.NewInventory(g.cfg.Inventory.Capacity, rules)
	weapons := make([]*scrap.Weapon, g.cfg.Workshop.Slots)
	for i := range weapons {
		kind := g.randomWeaponKind()
		if i < len(g.cfg.Workshop.Initial) {
			kind = g.cfg.Workshop.Initial[i]
		}
		weapons[i] = g.newWeapon(kind)
	}
	g.state = scrap.NewState(inv, weapons, g.cfg.Player.MaxHealth)

	g.tick = 0
	g.sinceAging = 0
	g.agings = 0
	g.recent = nil
	g.pending = nil
	g.paused = false
	g.over = false
	g.outcome = OutcomeRunning

	g.scenes = [sceneCount]Scene{
		SceneWorkshop:   newWorkshop(),
		SceneCollection: newCollection(),
	}
	g.current = SceneWorkshop
	g.scenes[g.current].OnEnter(g)

	g.notify(core.EventInfo, "Repair weapons in the workshop. Press C to scavenge.")
	g.logger.Info("run started", "mode", g.Mode(), "seed", g.seed, "capacity", inv.Capacity(), "health", g.state.Health)
}

// Resize adapts the layout to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{}
	}

	if input.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}
	if g.paused || g.over {
		return g.result()
	}

	g.tick++
	g.sinceAging++

	if !g.handleSceneKeys(input) {
		g.scenes[g.current].HandleInput(g, input)
	}
	g.scenes[g.current].Update(g, g.frame)

	g.checkEnd()
	return g.result()
}

// Age runs one aging pass: inventory counters halve, unrepaired weapons
// corrode one stage, and destroyed weapons are replaced afterwards.
func (g *Game) Age() core.StepResult {
	if g.state == nil {
		return core.StepResult{}
	}
	if g.paused || g.over {
		return g.result()
	}

	report := g.coordinator.Tick(g.state)
	g.sinceAging = 0
	g.agings++

	g.notify(core.EventAging, "Aging pass: scrap counters halved.")
	for _, i := range report.Oxidized {
		g.notify(core.EventOxidized, fmt.Sprintf("%s is oxidizing!", g.state.Weapons[i].Name()))
	}
	for _, i := range report.Destroyed {
		g.notify(core.EventDestroyed, fmt.Sprintf("%s crumbled to rust.", g.state.Weapons[i].Name()))
	}
	if report.HealthLoss > 0 {
		g.notify(core.EventDestroyed, fmt.Sprintf("Lost %d health to rot.", report.HealthLoss))
	}
	g.logger.Debug("aging pass", "oxidized", len(report.Oxidized), "destroyed", len(report.Destroyed), "health", g.state.Health)

	g.sweepDestroyed()
	g.checkEnd()
	return g.result()
}

// sweepDestroyed replaces destroyed weapons with fresh random ones.
func (g *Game) sweepDestroyed() {
	for i, w := range g.state.Weapons {
		if w == nil || w.Condition() == scrap.Destroyed {
			g.state.Weapons[i] = g.newWeapon(g.randomWeaponKind())
		}
	}
}

// repair tries to repair the weapon in the given workshop slot.
func (g *Game) repair(slot int) {
	if slot < 0 || slot >= len(g.state.Weapons) {
		return
	}
	w := g.state.Weapons[slot]
	if w == nil || w.Repaired() || w.Condition() == scrap.Destroyed {
		g.notify(core.EventInfo, "Nothing to repair here.")
		return
	}

	ok, err := w.Repair(g.state.Inventory)
	if err != nil {
		g.logger.Error("repair aborted", "weapon", w.Kind(), "slot", slot, "err", err)
		return
	}
	if !ok {
		g.notify(core.EventInfo, fmt.Sprintf("Not enough scrap for %s.", w.Name()))
		return
	}

	g.state.Reward(w.Points())
	g.notify(core.EventRepaired, fmt.Sprintf("Repaired %s! +%d", w.Name(), w.Points()))
	g.logger.Info("weapon repaired", "weapon", w.Kind(), "points", w.Points(), "score", g.state.Score)

	g.state.Weapons[slot] = g.newWeapon(g.randomWeaponKind())
}

// collect adds a caught resource to the inventory and applies toxic damage.
func (g *Game) collect(kind scrap.ResourceKind) {
	res := g.state.Inventory.Add(kind)
	if !res.Accepted {
		return
	}

	name := g.resourceName(kind)
	if res.Evicted == nil {
		g.notify(core.EventCollected, fmt.Sprintf("Picked up %s.", name))
		return
	}

	evicted := g.resourceName(res.Evicted.Kind)
	if res.ToxicDamage > 0 {
		g.state.Damage(res.ToxicDamage)
		g.notify(core.EventToxic, fmt.Sprintf("Toxic! Dropped %s (used %d). -%d health", evicted, res.Evicted.Counter, res.ToxicDamage))
		g.logger.Info("toxic eviction", "evicted", res.Evicted.Kind, "counter", res.Evicted.Counter, "health", g.state.Health)
		return
	}
	g.notify(core.EventCollected, fmt.Sprintf("Picked up %s, dropped %s.", name, evicted))
}

// checkEnd ends the run on death or victory.
func (g *Game) checkEnd() {
	if g.over {
		return
	}
	switch {
	case !g.state.Alive():
		g.over = true
		g.outcome = OutcomeToxic
		g.notify(core.EventDeath, "You died from toxic exposure!")
	case g.cfg.Player.WeaponsToWin > 0 && g.state.Repaired >= g.cfg.Player.WeaponsToWin:
		g.over = true
		g.outcome = OutcomeVictory
		g.notify(core.EventVictory, "Your faction is equipped. Victory!")
	default:
		return
	}
	g.logger.Info("run ended", "outcome", g.outcome, "score", g.state.Score, "repaired", g.state.Repaired)
}

// notify records an event for the HUD log and the next step result.
func (g *Game) notify(kind core.EventKind, text string) {
	ev := core.Event{Kind: kind, Text: text}
	g.pending = append(g.pending, ev)
	g.recent = append(g.recent, ev)
	if len(g.recent) > maxRecentEvents {
		g.recent = g.recent[len(g.recent)-maxRecentEvents:]
	}
}

func (g *Game) result() core.StepResult {
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// Events returns the most recent messages, oldest first.
func (g *Game) Events() []core.Event {
	out := make([]core.Event, len(g.recent))
	copy(out, g.recent)
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.state.Score,
		Health:    g.state.Health,
		MaxHealth: g.state.MaxHealth,
		Repaired:  g.state.Repaired,
		GameOver:  g.over,
		Won:       g.outcome == OutcomeVictory,
		Paused:    g.paused,
	}
}

// Summary describes the run for the score history.
func (g *Game) Summary() core.RunSummary {
	s := core.RunSummary{
		Mode:     string(g.Mode()),
		Outcome:  string(g.outcome),
		Seed:     g.seed,
		Duration: time.Duration(g.tick) * g.frame,
	}
	if g.state != nil {
		s.Score = g.state.Score
		s.WeaponsRepaired = g.state.Repaired
		s.HealthLeft = max(g.state.Health, 0)
	}
	return s
}

// NextAging returns the time until the next aging pass, estimated from frames
// elapsed since the last one.
func (g *Game) NextAging() time.Duration {
	left := g.coordinator.Interval() - time.Duration(g.sinceAging)*g.frame
	return max(left, 0)
}

func (g *Game) newWeapon(kind scrap.WeaponKind) *scrap.Weapon {
	spec, ok := g.cfg.WeaponSpec(kind)
	if !ok {
		spec = g.specs[0]
	}
	return scrap.NewWeapon(spec, g.coordinator.Interval())
}

func (g *Game) resourceName(kind scrap.ResourceKind) string {
	if r, ok := g.cfg.Resource(kind); ok {
		return r.Name
	}
	return string(kind)
}
