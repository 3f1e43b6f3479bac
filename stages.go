package imgblender

import (
	"fmt"

	"github.com/pji/imgblender/internal/parallel"
)

// Clip clamps every value of a into [0, 1] in place and returns a.
//
// Modes whose formula divides, or adds and subtracts without bound, can
// overshoot the image scale; Clip restores it. Clipping an already-clipped
// array is a no-op.
func Clip(a *Array) *Array {
	a.apply1(clamp01)
	return a
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MatchSize pads the smaller of two arrays so both cover the same extents.
//
// The target extent of each axis is the larger of the two input extents.
// A smaller array is centered inside a zero-filled array of the target
// shape, offset by (target-original)/2 per axis; this is padding, never
// resampling. Arrays already at the target shape are returned unchanged.
//
// When the axis counts differ in the one way Colorize can repair — one
// extra trailing axis of extent three — only the shared leading axes are
// matched and the extra channel axis is left alone. Any other axis-count
// mismatch returns ErrShapeMismatch.
func MatchSize(a, b *Array) (*Array, *Array, error) {
	common := a.NDim()
	if a.NDim() != b.NDim() {
		if !promotable(a, b) {
			return nil, nil, fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, shapeString(a.shape), shapeString(b.shape))
		}
		common = min(a.NDim(), b.NDim())
	}

	target := make([]int, common)
	for i := range target {
		target[i] = max(a.shape[i], b.shape[i])
	}
	return padTo(a, target), padTo(b, target), nil
}

// padTo centers a inside a zero-filled array whose leading axes have the
// given extents. Trailing axes beyond len(target) keep their extents and
// are not offset. Returns a unchanged when no axis needs padding.
func padTo(a *Array, target []int) *Array {
	grown := false
	full := a.Shape()
	for i, ext := range target {
		if ext > full[i] {
			full[i] = ext
			grown = true
		}
	}
	if !grown {
		return a
	}

	out := Zeros(full...)
	off := make([]int, len(full))
	for i := range target {
		off[i] = (full[i] - a.shape[i]) / 2
	}
	copyRegion(out, a, off)
	Logger().Debug("padded array", "from", shapeString(a.shape), "to", shapeString(full))
	return out
}

// Colorize replicates single-channel image data across three color
// channels when exactly one of the two arrays carries a trailing channel
// axis of extent three. In every other case both arrays pass through
// unchanged.
func Colorize(a, b *Array) (*Array, *Array) {
	if !promotable(a, b) {
		return a, b
	}
	if a.NDim() < b.NDim() {
		return promote(a), b
	}
	return a, promote(b)
}

// promotable reports whether the pair differs by exactly one axis with the
// longer array ending in a channel axis of extent three.
func promotable(a, b *Array) bool {
	long, short := a, b
	if b.NDim() > a.NDim() {
		long, short = b, a
	}
	return long.NDim()-short.NDim() == 1 && long.shape[long.NDim()-1] == 3
}

// promote adds a trailing axis of extent three to a, each channel a copy
// of the original value.
func promote(a *Array) *Array {
	out := Zeros(append(a.Shape(), 3)...)
	src, dst := a.data, out.data
	parallel.For(len(src), parallelGrain, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v := src[i]
			dst[3*i] = v
			dst[3*i+1] = v
			dst[3*i+2] = v
		}
	})
	Logger().Debug("promoted array to three channels", "from", shapeString(a.shape), "to", shapeString(out.shape))
	return out
}

// fade interpolates between the base array and the blended result by a
// scalar weight in [0, 1]: zero keeps the base, one keeps the result.
// At full weight the result is returned unchanged.
func fade(base, ab *Array, f float64) *Array {
	if f == 1 {
		return ab
	}
	return apply2(base, ab, func(x, y float64) float64 {
		return x + (y-x)*f
	})
}

// applyMask interpolates between the base array and the blended result
// with a per-pixel weight array: zero keeps the base value, one the
// blended value. A nil mask returns the result unchanged. The mask shape
// must match the (reconciled) image shape; no correction is attempted.
func applyMask(base, ab, m *Array) (*Array, error) {
	if m == nil {
		return ab, nil
	}
	if !m.SameShape(ab) {
		return nil, fmt.Errorf("%w: mask %s, image %s", ErrMaskShape, shapeString(m.shape), shapeString(ab.shape))
	}
	out := Zeros(ab.shape...)
	bd, abd, md, od := base.data, ab.data, m.data, out.data
	parallel.For(len(od), parallelGrain, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			od[i] = bd[i]*(1-md[i]) + abd[i]*md[i]
		}
	})
	return out, nil
}
