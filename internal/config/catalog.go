package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/rust-overload/internal/scrap"
)

// ErrUnknownKind is returned when a resource or weapon name matches nothing in the catalog.
var ErrUnknownKind = errors.New("unknown kind")

// UnknownKindError carries the rejected name and the closest catalog entries.
type UnknownKindError struct {
	Catalog     string
	Name        string
	Suggestions []string
}

func (e *UnknownKindError) Error() string {
	msg := fmt.Sprintf("%s %q: %v", e.Catalog, e.Name, ErrUnknownKind)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }

const maxSuggestions = 3

// FindWeapon resolves a weapon by kind or display name.
// Exact matches win, then unique prefixes; anything else returns an *UnknownKindError.
func (c GameConfig) FindWeapon(name string) (WeaponConfig, error) {
	names := make([]catalogName, 0, len(c.Weapons)*2)
	for i, w := range c.Weapons {
		names = append(names,
			catalogName{index: i, value: string(w.Kind)},
			catalogName{index: i, value: w.Name},
		)
	}

	idx, suggestions := lookup(name, names)
	if idx < 0 {
		return WeaponConfig{}, &UnknownKindError{Catalog: "weapon", Name: name, Suggestions: suggestions}
	}
	return c.Weapons[idx], nil
}

// FindResource resolves a resource by kind or display name.
func (c GameConfig) FindResource(name string) (ResourceConfig, error) {
	names := make([]catalogName, 0, len(c.Resources)*2)
	for i, r := range c.Resources {
		names = append(names,
			catalogName{index: i, value: string(r.Kind)},
			catalogName{index: i, value: r.Name},
		)
	}

	idx, suggestions := lookup(name, names)
	if idx < 0 {
		return ResourceConfig{}, &UnknownKindError{Catalog: "resource", Name: name, Suggestions: suggestions}
	}
	return c.Resources[idx], nil
}

type catalogName struct {
	index int
	value string
}

type scored struct {
	index int
	value string
	score float64
}

// lookup returns the index of the entry matching token, or -1 and a list of near misses.
func lookup(token string, names []catalogName) (int, []string) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return -1, nil
	}

	prefix := -1
	prefixHits := 0
	results := make([]scored, 0, len(names))
	for _, n := range names {
		cand := strings.ToLower(n.value)
		switch {
		case token == cand:
			return n.index, nil
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			if prefix != n.index {
				prefixHits++
			}
			prefix = n.index
			results = append(results, scored{index: n.index, value: n.value, score: 0.9})
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			results = append(results, scored{index: n.index, value: n.value, score: 0.72 - 0.08*float64(dist)})
		}
	}
	if prefixHits == 1 {
		return prefix, nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].value < results[j].value
		}
		return results[i].score > results[j].score
	})

	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[int]bool)
	for _, r := range results {
		if seen[r.index] {
			continue
		}
		seen[r.index] = true
		suggestions = append(suggestions, r.value)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return -1, suggestions
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Recipe formats a weapon's requirements, e.g. "2x Rusty Nut, 1x Fragile Circuit".
func (c GameConfig) Recipe(spec scrap.WeaponSpec) string {
	parts := make([]string, 0, len(spec.Requirements))
	for _, req := range spec.Requirements {
		name := string(req.Kind)
		if r, ok := c.Resource(req.Kind); ok {
			name = r.Name
		}
		parts = append(parts, fmt.Sprintf("%dx %s", req.Amount, name))
	}
	return strings.Join(parts, ", ")
}
