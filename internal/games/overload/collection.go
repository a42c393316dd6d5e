package overload

import (
	"time"

	"github.com/vovakirdan/rust-overload/internal/core"
	"github.com/vovakirdan/rust-overload/internal/scrap"
)

// falling is a resource dropping through the wasteland.
type falling struct {
	kind scrap.ResourceKind
	x    int
	y    float64 // Row, fractional for smooth speed
}

// collection is the scene where the player catches falling resources.
// Positions are in field coordinates: the playfield's inner area, with the
// player on its last row.
type collection struct {
	items      []falling
	playerX    int
	spawnTimer time.Duration
}

func newCollection() *collection {
	return &collection{playerX: -1}
}

// OnEnter clears the field so every visit starts empty.
func (c *collection) OnEnter(g *Game) {
	c.items = c.items[:0]
	c.spawnTimer = 0
	w, _ := g.fieldSize()
	if c.playerX < 0 {
		c.playerX = (w - g.cfg.Collection.PlayerWidth) / 2
	}
	c.clampPlayer(g)
}

func (c *collection) OnExit(*Game) {
	c.spawnTimer = 0
}

func (c *collection) HandleInput(g *Game, input core.InputFrame) {
	step := g.cfg.Collection.PlayerStep
	if input.Has(core.ActionLeft) {
		c.playerX -= step
	}
	if input.Has(core.ActionRight) {
		c.playerX += step
	}
	c.clampPlayer(g)
}

func (c *collection) clampPlayer(g *Game) {
	w, _ := g.fieldSize()
	c.playerX = core.Clamp(c.playerX, 0, max(w-g.cfg.Collection.PlayerWidth, 0))
}

func (c *collection) Update(g *Game, dt time.Duration) {
	w, h := g.fieldSize()
	if w <= 0 || h <= 1 {
		return
	}
	score := g.state.Score

	c.spawnTimer += dt
	interval := time.Duration(g.difficulty.SpawnInterval(g.cfg.Collection.SpawnIntervalMS, score)) * time.Millisecond
	if c.spawnTimer >= interval {
		c.spawnTimer -= interval
		c.items = append(c.items, falling{
			kind: g.randomResourceKind(),
			x:    g.rng.Intn(w),
		})
	}

	speed := g.difficulty.Speed(g.cfg.Collection.FallSpeed, score)
	floor := h - 1
	player := core.NewRect(c.playerX, floor, g.cfg.Collection.PlayerWidth, 1)

	kept := c.items[:0]
	for _, it := range c.items {
		it.y += speed * dt.Seconds()
		row := int(it.y)
		switch {
		case row >= floor && player.Contains(it.x, floor):
			g.collect(it.kind)
		case row > floor:
			// Missed: fell past the floor.
		default:
			kept = append(kept, it)
		}
	}
	c.items = kept
}

func (c *collection) Draw(g *Game, dst *core.Screen, area core.Rect) {
	dst.DrawTitledBox(area, "Wasteland", core.ColorOrange)
	field := area.Inset(1)
	if field.W <= 0 || field.H <= 0 {
		return
	}

	for x := field.X; x < field.Right(); x++ {
		dst.SetColored(x, field.Bottom()-1, '_', core.ColorGray)
	}

	for _, it := range c.items {
		glyph, color := "?", core.ColorDefault
		if r, ok := g.cfg.Resource(it.kind); ok {
			glyph, color = r.Glyph, core.ColorByName(r.Color)
		}
		drawGlyph(dst, field.X+it.x, field.Y+int(it.y), glyph, color)
	}

	px := field.X + c.playerX
	py := field.Bottom() - 1
	for i := 0; i < g.cfg.Collection.PlayerWidth; i++ {
		dst.SetColored(px+i, py, '▀', core.ColorBrightGreen)
	}
	dst.SetColored(px+g.cfg.Collection.PlayerWidth/2, py-1, '@', core.ColorBrightGreen)
}

// Falling returns the number of resources currently in the air.
func (c *collection) Falling() int {
	return len(c.items)
}
