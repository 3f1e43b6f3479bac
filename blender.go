package imgblender

import (
	"errors"
	"fmt"

	"github.com/pji/imgblender/internal/blend"
)

// Blending errors.
var (
	// ErrShapeMismatch is returned when the base and blend arrays have
	// axis counts that channel promotion cannot reconcile.
	ErrShapeMismatch = errors.New("imgblender: incompatible array shapes")

	// ErrMaskShape is returned when a mask's shape does not match the
	// reconciled image shape.
	ErrMaskShape = errors.New("imgblender: mask shape does not match image shape")

	// ErrUnknownMode is returned for a mode outside the catalog.
	ErrUnknownMode = errors.New("imgblender: unknown blend mode")

	// ErrNilArray is returned when the base or blend array is nil.
	ErrNilArray = errors.New("imgblender: nil array")
)

// Option configures a Blend call.
type Option func(*config)

// config holds the per-call configuration.
type config struct {
	fade     float64
	mask     *Array
	colorize bool
}

// defaultConfig returns the default blend configuration: full effect,
// no mask, channel promotion enabled.
func defaultConfig() config {
	return config{fade: 1, colorize: true}
}

// WithFade sets how much the blend affects the final output, as a weight
// between zero (no effect, the base array is returned) and one (full
// effect, the default). Values are not range-checked; weights outside
// [0, 1] extrapolate.
func WithFade(f float64) Option {
	return func(c *config) {
		c.fade = f
	}
}

// WithMask sets a per-pixel weight array controlling how much the blend
// affects each value: zero leaves the base value untouched, one applies
// the full blended value. The mask must match the shape of the reconciled
// image data or Blend returns ErrMaskShape.
func WithMask(m *Array) Option {
	return func(c *config) {
		c.mask = m
	}
}

// WithoutColorize disables channel promotion, so a single-channel array
// paired with a three-channel array is an error instead of being
// replicated across channels.
func WithoutColorize() Option {
	return func(c *config) {
		c.colorize = false
	}
}

// Blend combines two arrays of image data with the given mode.
//
// base is the existing values, like the bottom layer in a photo editing
// tool; blnd is the values to blend in, like the top layer. Both are
// assumed to be in [0, 1]. The result has the reconciled shape of the two
// inputs and is freshly allocated; the inputs are never modified.
//
// The inputs pass through the fixed pipeline described in the package
// documentation: size matching, channel promotion, the mode's formula,
// fade, mask, and clipping. The fade and mask stages mix against the
// reconciled base array rather than the array the caller passed, so the
// arithmetic is always shape-consistent even when the inputs needed
// padding or promotion.
//
// Errors: ErrNilArray for a nil input, ErrUnknownMode for a mode outside
// the catalog, ErrShapeMismatch when the axis counts differ in a way
// channel promotion cannot reconcile, and ErrMaskShape when a supplied
// mask does not match the reconciled shape.
func Blend(mode Mode, base, blnd *Array, opts ...Option) (*Array, error) {
	if base == nil || blnd == nil {
		return nil, ErrNilArray
	}
	fn := blend.GetFunc(mode.toInternal())
	if fn == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a, b, err := MatchSize(base, blnd)
	if err != nil {
		return nil, err
	}
	if cfg.colorize {
		a, b = Colorize(a, b)
	}
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: %s vs %s after reconciliation", ErrShapeMismatch, shapeString(a.shape), shapeString(b.shape))
	}

	Logger().Debug("blend",
		"mode", mode.String(),
		"shape", shapeString(a.shape),
		"fade", cfg.fade,
		"masked", cfg.mask != nil)

	ab := apply2(a, b, fn)
	ab = fade(a, ab, cfg.fade)
	ab, err = applyMask(a, ab, cfg.mask)
	if err != nil {
		return nil, err
	}
	if CanOvershoot(mode) {
		Clip(ab)
	}
	return ab, nil
}
