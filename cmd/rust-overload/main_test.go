package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rust-overload/internal/config"
	"github.com/vovakirdan/rust-overload/internal/core"
	"github.com/vovakirdan/rust-overload/internal/storage"
)

func TestPrintRecipes(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name     string
		weapon   string
		contains []string
		missing  []string
	}{
		{"all", "", []string{"Rusty Pistol", "Plasma Cannon", "1x Radioactive Core"}, nil},
		{"by kind", "rifle", []string{"Makeshift Rifle", "3 pt", "2x Rusty Nut, 2x Fragile Circuit, 1x Energy Cell"}, []string{"Rusty Pistol"}},
		{"by name", "Laser Cutter", []string{"3x Fragile Circuit, 2x Energy Cell"}, nil},
		{"prefix", "sho", []string{"Scrap Shotgun"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printRecipes(&buf, cfg, tc.weapon); err != nil {
				t.Fatalf("printRecipes(%q) error: %v", tc.weapon, err)
			}
			out := buf.String()
			for _, s := range tc.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tc.missing {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestPrintRecipesUnknown(t *testing.T) {
	cfg := config.DefaultGameConfig()

	err := printRecipes(&bytes.Buffer{}, cfg, "rilfe")
	if !errors.Is(err, config.ErrUnknownKind) {
		t.Fatalf("printRecipes(rilfe) error = %v, expected ErrUnknownKind", err)
	}
	if !strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error %q should carry suggestions", err)
	}

	err = printRecipes(&bytes.Buffer{}, cfg, "zzzzzzzzzz")
	if !errors.Is(err, config.ErrUnknownKind) || !strings.Contains(err.Error(), "rust-overload recipes") {
		t.Errorf("error = %v, expected a hint to list all weapons", err)
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printScores(&empty, store, "campaign", 10); err != nil {
		t.Fatalf("printScores() error: %v", err)
	}
	if !strings.Contains(empty.String(), "No runs recorded yet") {
		t.Errorf("empty output = %q", empty.String())
	}

	store.SaveRun(core.RunSummary{Mode: "campaign", Score: 30, WeaponsRepaired: 10, Outcome: "victory"})
	store.SaveRun(core.RunSummary{Mode: "campaign", Score: 4, WeaponsRepaired: 2, Outcome: "toxic"})

	var buf bytes.Buffer
	if err := printScores(&buf, store, "campaign", 10); err != nil {
		t.Fatalf("printScores() error: %v", err)
	}
	out := buf.String()
	for _, s := range []string{"victory", "toxic", "Runs: 2", "Victories: 1", "Best: 30", "Average: 17.0"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	defer func(level, file string) { flagLogLevel, flagLogFile = level, file }(flagLogLevel, flagLogFile)

	flagLogFile = ""
	flagLogLevel = "warn"
	logger, closeFn, err := newLogger("test", nil)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	defer closeFn()
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, expected warn", logger.GetLevel())
	}

	flagLogLevel = "loud"
	if _, _, err := newLogger("test", nil); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
}

func TestNewLoggerFile(t *testing.T) {
	defer func(level, file string) { flagLogLevel, flagLogFile = level, file }(flagLogLevel, flagLogFile)

	flagLogLevel = "info"
	flagLogFile = filepath.Join(t.TempDir(), "rust.log")
	logger, closeFn, err := newLogger("test", nil)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	logger.Info("hello", "k", 1)
	closeFn()
}

func TestLoadGameConfigPreset(t *testing.T) {
	defer func(cfgPath, diff string) { flagConfig, flagDifficulty = cfgPath, diff }(flagConfig, flagDifficulty)

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadGameConfig(); err == nil {
		t.Error("loadGameConfig() should fail for a missing --config file")
	}

	flagConfig = ""
	flagDifficulty = "nightmare"
	if _, err := loadGameConfig(); err == nil {
		t.Error("loadGameConfig() should reject an unknown preset")
	}
}
