package config

import (
	"errors"
	"testing"
)

func TestFindWeapon(t *testing.T) {
	cfg := DefaultGameConfig()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"kind", "rifle", "rifle"},
		{"display name", "Laser Cutter", "laser"},
		{"case insensitive", "PISTOL", "pistol"},
		{"unique prefix", "can", "cannon"},
		{"name prefix", "plasma", "cannon"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := cfg.FindWeapon(tc.input)
			if err != nil {
				t.Fatalf("FindWeapon(%q) error: %v", tc.input, err)
			}
			if string(w.Kind) != tc.expected {
				t.Errorf("FindWeapon(%q) = %s, expected %s", tc.input, w.Kind, tc.expected)
			}
		})
	}
}

func TestFindWeaponSuggestions(t *testing.T) {
	cfg := DefaultGameConfig()

	_, err := cfg.FindWeapon("shotgnu")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("FindWeapon() error = %v, expected ErrUnknownKind", err)
	}

	var uk *UnknownKindError
	if !errors.As(err, &uk) {
		t.Fatalf("error %T is not *UnknownKindError", err)
	}
	if len(uk.Suggestions) == 0 || uk.Suggestions[0] != "shotgun" {
		t.Errorf("Suggestions = %v, expected shotgun first", uk.Suggestions)
	}
}

func TestFindWeaponNoMatch(t *testing.T) {
	_, err := DefaultGameConfig().FindWeapon("trebuchet")
	var uk *UnknownKindError
	if !errors.As(err, &uk) {
		t.Fatalf("FindWeapon() error = %v, expected *UnknownKindError", err)
	}
	if len(uk.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, expected none", uk.Suggestions)
	}
}

func TestFindResource(t *testing.T) {
	cfg := DefaultGameConfig()

	r, err := cfg.FindResource("core")
	if err != nil || r.Name != "Radioactive Core" {
		t.Errorf("FindResource(core) = %+v, %v", r, err)
	}

	_, err = cfg.FindResource("")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("FindResource(\"\") error = %v, expected ErrUnknownKind", err)
	}
}
