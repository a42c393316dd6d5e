package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/rust-overload/internal/core"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "rust", core.ColorRust)
	s.DrawText(0, 1, "ok")

	lines := strings.Split(plain(RenderScreen(s)), "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "rust  " || lines[1] != "ok    " {
		t.Errorf("RenderScreen() lines = %q", lines)
	}
}

func TestRenderScreenSkipsContinuationCells(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.Set(0, 0, '界')
	s.Set(1, 0, 0)
	s.Set(2, 0, 'x')

	if got := plain(RenderScreen(s)); got != "界x " {
		t.Errorf("RenderScreen() = %q, expected %q", got, "界x ")
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorRust; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
