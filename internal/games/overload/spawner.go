package overload

import "github.com/vovakirdan/rust-overload/internal/scrap"

// randomWeaponKind picks a weapon kind uniformly from the catalog.
func (g *Game) randomWeaponKind() scrap.WeaponKind {
	return g.specs[g.rng.Intn(len(g.specs))].Kind
}

// randomResourceKind rolls a resource kind using the catalog spawn weights.
func (g *Game) randomResourceKind() scrap.ResourceKind {
	total := 0
	for _, r := range g.cfg.Resources {
		total += r.Weight
	}
	if total <= 0 {
		return g.cfg.Resources[0].Kind
	}

	roll := g.rng.Intn(total)
	for _, r := range g.cfg.Resources {
		if roll < r.Weight {
			return r.Kind
		}
		roll -= r.Weight
	}
	return g.cfg.Resources[len(g.cfg.Resources)-1].Kind
}
