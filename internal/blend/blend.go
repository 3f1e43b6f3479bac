// Package blend implements the blend mode formula catalog.
//
// Each mode is a pure scalar kernel over a pair of values in [0, 1]: the
// base value a (bottom layer) and the blending value b (top layer). Kernels
// have no state and no cross-element dependencies, so callers map them
// elementwise over whole arrays, in parallel if they like.
//
// Formulas with a division carry an explicit guard so no kernel can divide
// by zero; modes whose formula can leave [0, 1] are reported by NeedsClip
// and clamped by the caller.
//
// References:
//   - http://www.simplefilter.de/en/basics/mixmods.html
//   - Formulas for Photoshop blending modes,
//     http://www.deepskycolors.com/archive/2010/04/21/
package blend

import "math"

// Mode identifies a blend formula. The catalog is closed: the zero value is
// Replace and Count marks the end of the valid range.
type Mode uint8

const (
	Replace Mode = iota // Result: b

	// Darker/burn modes
	Darker     // min(a, b)
	Multiply   // a * b
	ColorBurn  // 1 - (1-a)/b, 0 where b = 0
	LinearBurn // a + b - 1

	// Lighter/dodge modes
	Lighter     // max(a, b)
	Screen      // 1 - (1-a)*(1-b)
	ColorDodge  // a / (1-b), 1 where b = 1
	LinearDodge // a + b

	// Inversion modes
	Difference // |a - b|
	Exclusion  // a + b - 2ab

	// Contrast modes
	HardLight   // 2ab where a < 0.5, else 1 - 2(1-a)(1-b)
	HardMix     // 0 where a <= 1-b, else 1
	LinearLight // b + 2a - 1
	Overlay     // 2ab where a < 0.5, else 1 - 2(1-a)(1-b)
	PinLight    // 2a-1 where b < 2a-1, 2a where b > 2a, else b
	SoftLight   // (2a-1)(b-b²)+b where a < 0.5, else (2a-1)(√b-b)+b
	VividLight  // 1-(1-b)/2a where 0 < a <= 0.5, b/2(1-a) where 0.5 < a < 1, else 0

	// Count is the number of modes in the catalog.
	Count
)

// Func is the signature of a blend kernel. Both inputs are assumed to be
// in [0, 1]; the result may overshoot for modes where NeedsClip is true.
type Func func(a, b float64) float64

// GetFunc returns the kernel for the given mode, or nil for a value
// outside the catalog.
func GetFunc(mode Mode) Func {
	switch mode {
	case Replace:
		return replace
	case Darker:
		return darker
	case Multiply:
		return multiply
	case ColorBurn:
		return colorBurn
	case LinearBurn:
		return linearBurn
	case Lighter:
		return lighter
	case Screen:
		return screen
	case ColorDodge:
		return colorDodge
	case LinearDodge:
		return linearDodge
	case Difference:
		return difference
	case Exclusion:
		return exclusion
	case HardLight:
		return hardLight
	case HardMix:
		return hardMix
	case LinearLight:
		return linearLight
	case Overlay:
		return overlay
	case PinLight:
		return pinLight
	case SoftLight:
		return softLight
	case VividLight:
		return vividLight
	default:
		return nil
	}
}

// NeedsClip reports whether the mode's raw formula can produce values
// outside [0, 1]. Replace, Darker, Lighter and Multiply map in-range inputs
// to in-range outputs; everything else is clamped after the fact.
func NeedsClip(mode Mode) bool {
	switch mode {
	case Replace, Darker, Lighter, Multiply:
		return false
	default:
		return true
	}
}

// replace ignores the base value.
// Formula: b
func replace(_, b float64) float64 { return b }

// darker keeps whichever value is darkest.
// Formula: min(a, b)
func darker(a, b float64) float64 { return math.Min(a, b) }

// lighter keeps whichever value is lightest.
// Formula: max(a, b)
func lighter(a, b float64) float64 { return math.Max(a, b) }

// multiply darkens; useful for shadows.
// Formula: a * b
func multiply(a, b float64) float64 { return a * b }

// screen is the inverse of multiply and brightens.
// Formula: 1 - (1-a) * (1-b)
func screen(a, b float64) float64 { return 1 - (1-a)*(1-b) }

// colorBurn is darker than multiply with higher contrast.
// Formula: 1 - (1-a)/b, guarded to 0 where b = 0
func colorBurn(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return 1 - (1-a)/b
}

// linearBurn is darker than multiply with more contrast in the shadows.
// Formula: a + b - 1
func linearBurn(a, b float64) float64 { return a + b - 1 }

// colorDodge is brighter than screen with less contrast.
// Formula: a / (1-b), guarded to 1 where b = 1
func colorDodge(a, b float64) float64 {
	if b == 1 {
		return 1
	}
	return a / (1 - b)
}

// linearDodge is brighter than screen with stronger results.
// Formula: a + b
func linearDodge(a, b float64) float64 { return a + b }

// difference is useful for aligning images and building patterns.
// Formula: |a - b|
func difference(a, b float64) float64 { return math.Abs(a - b) }

// exclusion is like difference but tends to gray rather than black.
// Formula: a + b - 2ab
func exclusion(a, b float64) float64 { return a + b - 2*a*b }

// hardLight is like a harsh light shining on the base image.
// Formula: 2ab where a < 0.5, else 1 - 2(1-a)(1-b)
func hardLight(a, b float64) float64 {
	if a < 0.5 {
		return 2 * a * b
	}
	return 1 - 2*(1-a)*(1-b)
}

// hardMix posterizes to full black or full white.
// Formula: 1 where a > 1-b, else 0. The tie a = 1-b goes to 0.
func hardMix(a, b float64) float64 {
	if a > 1-b {
		return 1
	}
	return 0
}

// linearLight combines linear dodge and linear burn.
// Formula: b + 2a - 1
func linearLight(a, b float64) float64 { return b + 2*a - 1 }

// overlay combines multiply and screen, branching on the base value.
// Formula: 2ab where a < 0.5, else 1 - 2(1-a)(1-b)
func overlay(a, b float64) float64 {
	if a < 0.5 {
		return 2 * a * b
	}
	return 1 - 2*(1-a)*(1-b)
}

// pinLight combines darker and lighter.
// Formula: 2a-1 where b < 2a-1, 2a where b > 2a, else b
func pinLight(a, b float64) float64 {
	switch {
	case b < 2*a-1:
		return 2*a - 1
	case b > 2*a:
		return 2 * a
	default:
		return b
	}
}

// softLight is like overlay but biased toward the blending value.
// Formula: (2a-1)(b-b²)+b where a < 0.5, else (2a-1)(√b-b)+b
func softLight(a, b float64) float64 {
	if a < 0.5 {
		return (2*a-1)*(b-b*b) + b
	}
	return (2*a-1)*(math.Sqrt(b)-b) + b
}

// vividLight is good for color grading when faded.
// Formula: 1-(1-b)/2a where 0 < a <= 0.5, b/2(1-a) where 0.5 < a < 1.
// Guarded to 0 where a is exactly 0 or 1 to avoid dividing by zero.
func vividLight(a, b float64) float64 {
	switch {
	case a > 0 && a <= 0.5:
		return 1 - (1-b)/(2*a)
	case a > 0.5 && a < 1:
		return b / (2 * (1 - a))
	default:
		return 0
	}
}
