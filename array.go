package imgblender

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pji/imgblender/internal/parallel"
)

// parallelGrain is the minimum number of elements processed per chunk when
// elementwise work is spread across the worker pool. Arrays smaller than
// this run on the calling goroutine.
const parallelGrain = 1 << 15

// Array is an N-dimensional container of float64 image data.
//
// Values are by convention normalized to [0, 1]; the type does not enforce
// the range, the blend formulas assume it. The number of axes is
// unconstrained. A trailing axis of extent three, when present, is treated
// as color channels.
//
// Data is stored in a flat row-major backing slice, innermost axis varying
// fastest.
type Array struct {
	shape  []int
	stride []int
	data   []float64
}

// NewArray creates an array with the given shape backed by data.
// The data slice is used directly, not copied; its length must equal the
// product of the shape extents, and every extent must be positive.
func NewArray(shape []int, data []float64) (*Array, error) {
	n := 1
	for _, ext := range shape {
		if ext <= 0 {
			return nil, fmt.Errorf("imgblender: invalid shape %s: extents must be positive", shapeString(shape))
		}
		n *= ext
	}
	if len(data) != n {
		return nil, fmt.Errorf("imgblender: shape %s needs %d values, got %d", shapeString(shape), n, len(data))
	}
	return &Array{
		shape:  slices.Clone(shape),
		stride: strides(shape),
		data:   data,
	}, nil
}

// Zeros creates a zero-filled array with the given shape.
// It panics if any extent is not positive.
func Zeros(shape ...int) *Array {
	n := 1
	for _, ext := range shape {
		if ext <= 0 {
			panic(fmt.Sprintf("imgblender: invalid shape %s: extents must be positive", shapeString(shape)))
		}
		n *= ext
	}
	return &Array{
		shape:  slices.Clone(shape),
		stride: strides(shape),
		data:   make([]float64, n),
	}
}

// Full creates an array with the given shape filled with v.
// It panics if any extent is not positive.
func Full(v float64, shape ...int) *Array {
	a := Zeros(shape...)
	for i := range a.data {
		a.data[i] = v
	}
	return a
}

// strides returns the row-major stride for each axis of shape.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}
	return s
}

// NDim returns the number of axes.
func (a *Array) NDim() int { return len(a.shape) }

// Shape returns a copy of the axis extents.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.data) }

// Data returns the flat row-major backing slice. Mutating it mutates the
// array.
func (a *Array) Data() []float64 { return a.data }

// At returns the element at the given multi-axis index.
// It panics if the index has the wrong number of axes or is out of range.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.offset(idx)]
}

// Set stores v at the given multi-axis index.
// It panics if the index has the wrong number of axes or is out of range.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.offset(idx)] = v
}

// offset converts a multi-axis index to a flat offset.
func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("imgblender: index has %d axes, array has %d", len(idx), len(a.shape)))
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			panic(fmt.Sprintf("imgblender: index %d out of range for axis %d (extent %d)", i, k, a.shape[k]))
		}
		off += i * a.stride[k]
	}
	return off
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	return &Array{
		shape:  slices.Clone(a.shape),
		stride: slices.Clone(a.stride),
		data:   slices.Clone(a.data),
	}
}

// SameShape reports whether a and b have identical shapes.
func (a *Array) SameShape(b *Array) bool {
	return slices.Equal(a.shape, b.shape)
}

// String returns a short description of the array, for logging.
func (a *Array) String() string {
	return "Array" + shapeString(a.shape)
}

// shapeString formats a shape as "(1, 3, 3)".
func shapeString(shape []int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, ext := range shape {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", ext)
	}
	sb.WriteByte(')')
	return sb.String()
}

// apply2 maps f over two equal-shape arrays and returns a new array of the
// same shape. Large arrays are processed in parallel chunks; the result is
// identical either way since f has no cross-element dependencies.
func apply2(a, b *Array, f func(x, y float64) float64) *Array {
	out := Zeros(a.shape...)
	ad, bd, od := a.data, b.data, out.data
	parallel.For(len(od), parallelGrain, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			od[i] = f(ad[i], bd[i])
		}
	})
	return out
}

// apply1 maps f over the array in place.
func (a *Array) apply1(f func(float64) float64) {
	d := a.data
	parallel.For(len(d), parallelGrain, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] = f(d[i])
		}
	})
}

// copyRegion copies all of src into dst at the given per-axis offset.
// dst and src must have the same number of axes and src must fit within
// dst at the offset.
func copyRegion(dst, src *Array, off []int) {
	if src.NDim() == 0 {
		dst.data[0] = src.data[0]
		return
	}
	var walk func(axis, dstOff, srcOff int)
	walk = func(axis, dstOff, srcOff int) {
		if axis == len(src.shape)-1 {
			copy(dst.data[dstOff:dstOff+src.shape[axis]], src.data[srcOff:srcOff+src.shape[axis]])
			return
		}
		for i := 0; i < src.shape[axis]; i++ {
			walk(axis+1, dstOff+i*dst.stride[axis], srcOff+i*src.stride[axis])
		}
	}
	walk(0, dotProduct(off, dst.stride), 0)
}

// dotProduct returns the sum of elementwise products of two equal-length
// integer slices.
func dotProduct(a, b []int) int {
	n := 0
	for i := range a {
		n += a[i] * b[i]
	}
	return n
}
