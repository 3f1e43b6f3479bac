// Package imgblender blends two sets of image data together.
//
// # Overview
//
// imgblender implements the Photoshop-style blend mode catalog (darker,
// multiply, screen, overlay, soft light, and so on) as pure elementwise
// operations over floating-point image data normalized to the range [0, 1].
// Image data is held in an N-dimensional Array; a trailing axis of extent
// three is treated as color channels.
//
// # Quick Start
//
//	import "github.com/pji/imgblender"
//
//	a := imgblender.Zeros(720, 1280, 3) // base layer
//	b := imgblender.Zeros(720, 1280, 3) // blending layer
//	// ... fill a and b with values in [0, 1] ...
//
//	ab, err := imgblender.Blend(imgblender.ModeMultiply, a, b)
//
// # Pipeline
//
// Every blend runs through the same fixed pipeline around the mode's
// elementwise formula:
//
//  1. Size matching: the smaller array is centered in a zero-filled array of
//     the larger shape (padding, never resampling).
//  2. Channel promotion: a single-channel array paired with a three-channel
//     array is replicated across three channels (disable with
//     [WithoutColorize]).
//  3. The blend formula itself.
//  4. Fade: scalar interpolation between the base and the blended result
//     ([WithFade]).
//  5. Mask: per-pixel interpolation between the base and the blended result
//     ([WithMask]).
//  6. Clipping back to [0, 1], for modes whose formula can overshoot.
//
// The fade and mask stages mix against the size-matched, channel-promoted
// base array, so their arithmetic always agrees in shape with the blended
// result. A mask must match that reconciled shape.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Array, Mode, Blend, pipeline stages
//   - Internal: blend (scalar kernels), parallel (chunked elementwise
//     execution), imageio (file codec boundary)
//   - cmd/blendimg: blend image files or generate per-mode demo images
//
// # Logging
//
// imgblender produces no log output by default. Call [SetLogger] to enable
// structured logging of reconciliation and blend activity.
package imgblender
