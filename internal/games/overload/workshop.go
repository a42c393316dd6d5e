package overload

import (
	"fmt"
	"time"

	"github.com/vovakirdan/rust-overload/internal/core"
	"github.com/vovakirdan/rust-overload/internal/scrap"
)

// workshop is the scene where weapons are repaired.
type workshop struct {
	selected int
}

func newWorkshop() *workshop {
	return &workshop{}
}

func (w *workshop) OnEnter(g *Game) {
	w.selected = core.Clamp(w.selected, 0, len(g.state.Weapons)-1)
}

func (w *workshop) OnExit(*Game) {}

func (w *workshop) HandleInput(g *Game, input core.InputFrame) {
	n := len(g.state.Weapons)
	if n == 0 {
		return
	}
	switch {
	case input.Has(core.ActionUp):
		w.selected = (w.selected - 1 + n) % n
	case input.Has(core.ActionDown):
		w.selected = (w.selected + 1) % n
	case input.Has(core.ActionConfirm):
		g.repair(w.selected)
	}
}

// Update does nothing: weapons corrode only during aging passes.
func (w *workshop) Update(*Game, time.Duration) {}

func (w *workshop) Draw(g *Game, dst *core.Screen, area core.Rect) {
	dst.DrawTitledBox(area, "Workbench", core.ColorRust)
	inner := area.Inset(1)

	y := inner.Y
	for i, wp := range g.state.Weapons {
		if y+3 > inner.Bottom() {
			break
		}
		w.drawWeapon(g, dst, inner.X, y, inner.W, wp, i == w.selected)
		y += 4
	}

	if y < inner.Bottom() {
		drawClipped(dst, inner.X, inner.Bottom()-1, inner.W, "↑/↓ select  Enter repair  C scavenge", core.ColorGray)
	}
}

func (w *workshop) drawWeapon(g *Game, dst *core.Screen, x, y, width int, wp *scrap.Weapon, selected bool) {
	if wp == nil {
		return
	}

	marker := "  "
	nameColor := core.ColorWhite
	if selected {
		marker = "> "
		nameColor = core.ColorBrightYellow
	}
	title := fmt.Sprintf("%s%s (%d pt)", marker, wp.Name(), wp.Points())
	drawClipped(dst, x, y, width, title, nameColor)

	status, color := conditionLabel(wp)
	drawClipped(dst, x+2, y+1, width-2, status, color)

	cx := x + 2
	for _, req := range wp.Spec().Requirements {
		have := g.state.Inventory.Count(req.Kind)
		c := core.ColorGreen
		if have < req.Amount {
			c = core.ColorRed
		}
		glyph := string(req.Kind)
		if r, ok := g.cfg.Resource(req.Kind); ok {
			glyph = r.Glyph
		}
		part := fmt.Sprintf("%s %d/%d  ", glyph, have, req.Amount)
		cx += drawClipped(dst, cx, y+2, x+width-cx, part, c)
	}
}

// conditionLabel describes a weapon's corrosion stage.
func conditionLabel(wp *scrap.Weapon) (string, core.Color) {
	switch {
	case wp.Repaired():
		return "repaired", core.ColorGreen
	case wp.Condition() == scrap.Normal:
		return "rusty: oxidizes next aging", core.ColorYellow
	case wp.Condition() == scrap.Oxidized:
		return "OXIDIZED: lost next aging", core.ColorOrange
	default:
		return "destroyed", core.ColorRed
	}
}
