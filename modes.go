package imgblender

import (
	"fmt"

	"github.com/pji/imgblender/internal/blend"
)

// Mode identifies a blending operation. The catalog is closed and finite;
// AllModes enumerates it.
type Mode int

const (
	// ModeReplace takes the blending value as-is. Combined with WithFade it
	// doubles as an opacity filter.
	ModeReplace Mode = iota

	// Darker/burn modes.
	ModeDarker
	ModeMultiply
	ModeColorBurn
	ModeLinearBurn

	// Lighter/dodge modes.
	ModeLighter
	ModeScreen
	ModeColorDodge
	ModeLinearDodge

	// Inversion modes.
	ModeDifference
	ModeExclusion

	// Contrast modes.
	ModeHardLight
	ModeHardMix
	ModeLinearLight
	ModeOverlay
	ModePinLight
	ModeSoftLight
	ModeVividLight

	modeCount
)

// modeNames holds the canonical name for each mode. The names match the
// traditional ones used by photo editing tools.
var modeNames = [...]string{
	ModeReplace:     "replace",
	ModeDarker:      "darker",
	ModeMultiply:    "multiply",
	ModeColorBurn:   "color_burn",
	ModeLinearBurn:  "linear_burn",
	ModeLighter:     "lighter",
	ModeScreen:      "screen",
	ModeColorDodge:  "color_dodge",
	ModeLinearDodge: "linear_dodge",
	ModeDifference:  "difference",
	ModeExclusion:   "exclusion",
	ModeHardLight:   "hard_light",
	ModeHardMix:     "hard_mix",
	ModeLinearLight: "linear_light",
	ModeOverlay:     "overlay",
	ModePinLight:    "pin_light",
	ModeSoftLight:   "soft_light",
	ModeVividLight:  "vivid_light",
}

// String returns the canonical name of the mode.
func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ModeFromName returns the mode with the given canonical name, as reported
// by [Mode.String]. It returns ErrUnknownMode for any other name.
func ModeFromName(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// AllModes returns every mode in the catalog, in enumeration order.
// This is useful for iteration and testing.
func AllModes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// CanOvershoot reports whether the mode's raw formula can produce values
// outside [0, 1]. Blend clips the final result for exactly these modes.
func CanOvershoot(m Mode) bool {
	return blend.NeedsClip(m.toInternal())
}

// toInternal converts the public mode to the internal kernel catalog's
// enumeration. The internal package orders modes differently, so this
// function provides the translation. Out-of-range modes map to
// blend.Count, for which the kernel registry returns nil.
func (m Mode) toInternal() blend.Mode {
	switch m {
	case ModeReplace:
		return blend.Replace
	case ModeDarker:
		return blend.Darker
	case ModeMultiply:
		return blend.Multiply
	case ModeColorBurn:
		return blend.ColorBurn
	case ModeLinearBurn:
		return blend.LinearBurn
	case ModeLighter:
		return blend.Lighter
	case ModeScreen:
		return blend.Screen
	case ModeColorDodge:
		return blend.ColorDodge
	case ModeLinearDodge:
		return blend.LinearDodge
	case ModeDifference:
		return blend.Difference
	case ModeExclusion:
		return blend.Exclusion
	case ModeHardLight:
		return blend.HardLight
	case ModeHardMix:
		return blend.HardMix
	case ModeLinearLight:
		return blend.LinearLight
	case ModeOverlay:
		return blend.Overlay
	case ModePinLight:
		return blend.PinLight
	case ModeSoftLight:
		return blend.SoftLight
	case ModeVividLight:
		return blend.VividLight
	default:
		return blend.Count
	}
}
