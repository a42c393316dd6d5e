package overload

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/rust-overload/internal/core"
)

const (
	minScreenW     = 60
	minScreenH     = 20
	inventoryWidth = 30
	eventBoxHeight = maxRecentEvents + 2
)

// layout splits the screen into the HUD line, inventory panel, scene area and event log.
type layout struct {
	hud       core.Rect
	inventory core.Rect
	scene     core.Rect
	events    core.Rect
}

func (g *Game) layout() layout {
	w, h := g.screenW, g.screenH
	bodyH := max(h-2-eventBoxHeight, 0)
	body := core.NewRect(0, 2, w, bodyH)
	inv, scene := body.SplitH(min(inventoryWidth, w/3))
	return layout{
		hud:       core.NewRect(0, 0, w, 1),
		inventory: inv,
		scene:     scene,
		events:    core.NewRect(0, 2+bodyH, w, min(eventBoxHeight, h-2)),
	}
}

// fieldSize returns the inner size of the collection playfield.
func (g *Game) fieldSize() (int, int) {
	f := g.layout().scene.Inset(1)
	return f.W, f.H
}

func (g *Game) tooSmall() bool {
	return g.screenW < minScreenW || g.screenH < minScreenH
}

// drawClipped writes text at (x, y) truncated to width display columns.
// Wide characters occupy two cells. Returns the number of columns used.
func drawClipped(dst *core.Screen, x, y, width int, text string, c core.Color) int {
	if width <= 0 {
		return 0
	}
	text = runewidth.Truncate(text, width, "…")
	col := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		dst.SetColored(x+col, y, r, c)
		if rw == 2 {
			dst.SetColored(x+col+1, y, 0, c)
		}
		col += rw
	}
	return col
}

// drawGlyph draws a single resource glyph, which may be an emoji.
func drawGlyph(dst *core.Screen, x, y int, glyph string, c core.Color) {
	if glyph == "" {
		glyph = "?"
	}
	drawClipped(dst, x, y, runewidth.StringWidth(glyph), glyph, c)
}

// drawHUD draws the status line and separator.
func (g *Game) drawHUD(dst *core.Screen, area core.Rect) {
	s := g.state

	hearts := strings.Repeat("♥", max(s.Health, 0)) + strings.Repeat("♡", max(s.MaxHealth-max(s.Health, 0), 0))
	goal := fmt.Sprintf("%d", s.Repaired)
	if g.cfg.Player.WeaponsToWin > 0 {
		goal = fmt.Sprintf("%d/%d", s.Repaired, g.cfg.Player.WeaponsToWin)
	}

	x := area.X + 1
	x += drawClipped(dst, x, area.Y, area.W-x, g.Title()+"  ", core.ColorRust)
	x += drawClipped(dst, x, area.Y, area.W-x, hearts+"  ", core.ColorRed)
	status := fmt.Sprintf("Score %d  Weapons %s  Aging in %ds  [%s]",
		s.Score, goal, int(g.NextAging().Seconds()+0.999), g.current)
	drawClipped(dst, x, area.Y, area.W-x, status, core.ColorWhite)

	dst.DrawHLine(area.X, area.Y+1, area.W, '─', core.ColorGray)
}

// drawInventory draws the inventory panel with usage counters.
func (g *Game) drawInventory(dst *core.Screen, area core.Rect) {
	inv := g.state.Inventory
	rules := inv.Rules()
	dst.DrawTitledBox(area, fmt.Sprintf("Inventory %d/%d", inv.Len(), inv.Capacity()), core.ColorCyan)
	inner := area.Inset(1)

	items := inv.Items()
	for i := 0; i < inv.Capacity() && i < inner.H; i++ {
		y := inner.Y + i
		label := fmt.Sprintf("%d ", i+1)
		x := inner.X + drawClipped(dst, inner.X, y, inner.W, label, core.ColorGray)
		if i >= len(items) {
			drawClipped(dst, x, y, inner.Right()-x, "empty", core.ColorGray)
			continue
		}

		it := items[i]
		glyph, color := string(it.Kind), core.ColorDefault
		if r, ok := g.cfg.Resource(it.Kind); ok {
			glyph, color = r.Glyph, core.ColorByName(r.Color)
		}
		x += drawClipped(dst, x, y, inner.Right()-x, glyph+" ", color)
		x += drawClipped(dst, x, y, inner.Right()-x, fmt.Sprintf("%-8s", it.Kind), color)

		barColor := core.ColorGreen
		if it.Toxic(rules.ToxicThreshold) {
			barColor = core.ColorRed
		}
		barW := max(inner.Right()-x-5, 0)
		dst.DrawBar(x, y, barW, it.Counter, rules.CounterMax, barColor, core.ColorGray)
		x += barW
		tail := fmt.Sprintf("%4d", it.Counter)
		if it.Toxic(rules.ToxicThreshold) {
			tail = fmt.Sprintf("%3d!", it.Counter)
		}
		drawClipped(dst, x+1, y, inner.Right()-x-1, tail, barColor)
	}
}

// drawEvents draws the recent event log.
func (g *Game) drawEvents(dst *core.Screen, area core.Rect) {
	dst.DrawTitledBox(area, "Log", core.ColorGray)
	inner := area.Inset(1)
	for i, ev := range g.recent {
		if i >= inner.H {
			break
		}
		drawClipped(dst, inner.X, inner.Y+i, inner.W, ev.Text, eventColor(ev.Kind))
	}
}

func eventColor(k core.EventKind) core.Color {
	switch k {
	case core.EventToxic, core.EventDestroyed, core.EventDeath:
		return core.ColorRed
	case core.EventOxidized:
		return core.ColorOrange
	case core.EventRepaired, core.EventVictory:
		return core.ColorBrightGreen
	case core.EventAging:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

// drawOverlay draws a centered message box.
func drawOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	boxW := max(runewidth.StringWidth(line1), runewidth.StringWidth(line2)) + 6
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, c)
	drawClipped(dst, box.X+(boxW-runewidth.StringWidth(line1))/2, box.Y+1, boxW-2, line1, c)
	drawClipped(dst, box.X+(boxW-runewidth.StringWidth(line2))/2, box.Y+3, boxW-2, line2, core.ColorWhite)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}
	if g.tooSmall() {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorYellow)
		return
	}

	l := g.layout()
	g.drawHUD(dst, l.hud)
	g.drawInventory(dst, l.inventory)
	g.scenes[g.current].Draw(g, dst, l.scene)
	g.drawEvents(dst, l.events)

	switch {
	case g.outcome == OutcomeVictory:
		drawOverlay(dst, "Victory!", fmt.Sprintf("Score %d  R restart  B menu", g.state.Score), core.ColorBrightGreen)
	case g.over:
		drawOverlay(dst, "You died from toxic exposure", fmt.Sprintf("Score %d  R restart  B menu", g.state.Score), core.ColorRed)
	case g.paused:
		drawOverlay(dst, "Paused", "Press P to continue", core.ColorYellow)
	}
}
