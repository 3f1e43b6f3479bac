package imgblender

import (
	"errors"
	"testing"
)

// TestModeNames tests that every mode round-trips through its canonical
// name.
func TestModeNames(t *testing.T) {
	for _, mode := range AllModes() {
		name := mode.String()
		if name == "" {
			t.Errorf("Mode(%d).String() is empty", int(mode))
			continue
		}
		got, err := ModeFromName(name)
		if err != nil {
			t.Errorf("ModeFromName(%q): %v", name, err)
			continue
		}
		if got != mode {
			t.Errorf("ModeFromName(%q) = %v, want %v", name, got, mode)
		}
	}
}

func TestModeFromNameUnknown(t *testing.T) {
	_, err := ModeFromName("soft_mix")
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ModeFromName error = %v, want ErrUnknownMode", err)
	}
}

func TestModeStringOutOfRange(t *testing.T) {
	if got := Mode(99).String(); got != "Mode(99)" {
		t.Errorf("Mode(99).String() = %q, want %q", got, "Mode(99)")
	}
}

// TestAllModes tests that the catalog is complete and stable.
func TestAllModes(t *testing.T) {
	modes := AllModes()
	if len(modes) != 18 {
		t.Fatalf("AllModes() has %d modes, want 18", len(modes))
	}
	seen := map[string]bool{}
	for _, m := range modes {
		if seen[m.String()] {
			t.Errorf("duplicate mode name %q", m.String())
		}
		seen[m.String()] = true
	}
}

// TestCanOvershoot tests that exactly the pure replacement/min/max/product
// modes are exempt from clipping.
func TestCanOvershoot(t *testing.T) {
	exempt := map[Mode]bool{
		ModeReplace:  true,
		ModeDarker:   true,
		ModeLighter:  true,
		ModeMultiply: true,
	}
	for _, mode := range AllModes() {
		want := !exempt[mode]
		if got := CanOvershoot(mode); got != want {
			t.Errorf("CanOvershoot(%v) = %v, want %v", mode, got, want)
		}
	}
}
