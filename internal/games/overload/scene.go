package overload

import (
	"time"

	"github.com/vovakirdan/rust-overload/internal/core"
)

// SceneID identifies one of the game's scenes.
type SceneID int

const (
	SceneWorkshop SceneID = iota
	SceneCollection
	sceneCount
)

// String returns the scene name.
func (id SceneID) String() string {
	switch id {
	case SceneWorkshop:
		return "workshop"
	case SceneCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Scene is one interactive view of the run. Scenes hold only their own
// transient state; everything that outlives a scene switch lives in Game.
type Scene interface {
	OnEnter(g *Game)
	OnExit(g *Game)
	HandleInput(g *Game, input core.InputFrame)
	Update(g *Game, dt time.Duration)
	Draw(g *Game, dst *core.Screen, area core.Rect)
}

// Scene returns the active scene ID.
func (g *Game) Scene() SceneID {
	return g.current
}

// SwitchScene makes id the active scene. Switching to the active scene is a no-op.
func (g *Game) SwitchScene(id SceneID) {
	if id < 0 || id >= sceneCount || id == g.current {
		return
	}
	g.scenes[g.current].OnExit(g)
	g.current = id
	g.scenes[g.current].OnEnter(g)
	g.logger.Debug("scene switched", "scene", id)
}

// handleSceneKeys applies scene switching actions. Returns true if the scene changed.
func (g *Game) handleSceneKeys(input core.InputFrame) bool {
	before := g.current
	switch {
	case input.Has(core.ActionGoCollection):
		g.SwitchScene(SceneCollection)
	case input.Has(core.ActionGoWorkshop):
		g.SwitchScene(SceneWorkshop)
	case input.Has(core.ActionSwitch):
		g.SwitchScene((g.current + 1) % sceneCount)
	}
	return g.current != before
}
