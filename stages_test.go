package imgblender

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestClip tests that values outside [0, 1] move to the nearer boundary.
func TestClip(t *testing.T) {
	a := mustArray(t, []int{1, 5}, []float64{-0.5, 0, 0.5, 1, 1.5})
	want := []float64{0, 0, 0.5, 1, 1}

	got := Clip(a)
	if diff := cmp.Diff(want, got.Data()); diff != "" {
		t.Errorf("Clip mismatch (-want +got):\n%s", diff)
	}
}

// TestClipIdempotent tests that clipping an already-clipped array changes
// nothing.
func TestClipIdempotent(t *testing.T) {
	a := mustArray(t, []int{4}, []float64{0, 0.25, 0.75, 1})
	want := a.Clone()

	Clip(a)
	if diff := cmp.Diff(want.Data(), a.Data()); diff != "" {
		t.Errorf("Clip changed in-range data (-want +got):\n%s", diff)
	}
}

// TestMatchSizePads tests that the smaller array is centered in a
// zero-filled array of the larger shape.
func TestMatchSizePads(t *testing.T) {
	row := []float64{0, 0, 0.5, 1, 1}
	a := mustArray(t, []int{1, 5, 5}, repeatRows(row, 5))
	b := Zeros(1, 7, 7)

	wantRow := []float64{0, 0, 0, 0.5, 1, 1, 0}
	want := make([]float64, 0, 49)
	want = append(want, make([]float64, 7)...) // padded top row
	for i := 0; i < 5; i++ {
		want = append(want, wantRow...)
	}
	want = append(want, make([]float64, 7)...) // padded bottom row

	a2, b2, err := MatchSize(a, b)
	if err != nil {
		t.Fatalf("MatchSize: %v", err)
	}
	if diff := cmp.Diff([]int{1, 7, 7}, a2.Shape()); diff != "" {
		t.Fatalf("padded shape mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, a2.Data()); diff != "" {
		t.Errorf("padded data mismatch (-want +got):\n%s", diff)
	}
	if b2 != b {
		t.Error("array already at the target shape was reallocated")
	}
}

// TestMatchSizeNoOp tests that two equal-shape arrays pass through
// untouched.
func TestMatchSizeNoOp(t *testing.T) {
	a := Full(0.25, 2, 3)
	b := Full(0.75, 2, 3)

	a2, b2, err := MatchSize(a, b)
	if err != nil {
		t.Fatalf("MatchSize: %v", err)
	}
	if a2 != a || b2 != b {
		t.Error("equal-shape arrays were reallocated")
	}
}

// TestMatchSizeMixedAxes tests the gray/color pairing: only the shared
// leading axes are matched and the channel axis is left alone.
func TestMatchSizeMixedAxes(t *testing.T) {
	a := Full(1, 2, 2)
	b := Zeros(4, 4, 3)

	a2, b2, err := MatchSize(a, b)
	if err != nil {
		t.Fatalf("MatchSize: %v", err)
	}
	if diff := cmp.Diff([]int{4, 4}, a2.Shape()); diff != "" {
		t.Errorf("gray shape mismatch (-want +got):\n%s", diff)
	}
	if b2 != b {
		t.Error("color array already at the target shape was reallocated")
	}
	// Centered: ones at rows 1-2, cols 1-2.
	if a2.At(0, 0) != 0 || a2.At(1, 1) != 1 || a2.At(2, 2) != 1 || a2.At(3, 3) != 0 {
		t.Errorf("gray array not centered: %v", a2.Data())
	}
}

// TestMatchSizeAxisCountError tests that unreconcilable axis counts fail.
func TestMatchSizeAxisCountError(t *testing.T) {
	tests := []struct {
		name string
		a, b *Array
	}{
		{"two extra axes", Zeros(2, 2), Zeros(1, 2, 2, 3)},
		{"extra axis not channels", Zeros(2, 2), Zeros(2, 2, 4)},
		{"extra leading axis", Zeros(3, 2, 2), Zeros(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := MatchSize(tt.a, tt.b); !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("MatchSize error = %v, want ErrShapeMismatch", err)
			}
		})
	}
}

// TestColorize tests grayscale-to-RGB promotion in both argument
// positions and the pass-through cases.
func TestColorize(t *testing.T) {
	gray := mustArray(t, []int{2, 2}, []float64{1, 0.5, 0, 0.25})
	rgb := Zeros(2, 2, 3)
	wantPromoted := []float64{
		1, 1, 1, 0.5, 0.5, 0.5,
		0, 0, 0, 0.25, 0.25, 0.25,
	}

	t.Run("promotes base", func(t *testing.T) {
		a2, b2 := Colorize(gray, rgb)
		if diff := cmp.Diff([]int{2, 2, 3}, a2.Shape()); diff != "" {
			t.Fatalf("shape mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(wantPromoted, a2.Data()); diff != "" {
			t.Errorf("promoted data mismatch (-want +got):\n%s", diff)
		}
		if b2 != rgb {
			t.Error("three-channel array was reallocated")
		}
	})

	t.Run("promotes blend", func(t *testing.T) {
		a2, b2 := Colorize(rgb, gray)
		if a2 != rgb {
			t.Error("three-channel array was reallocated")
		}
		if diff := cmp.Diff(wantPromoted, b2.Data()); diff != "" {
			t.Errorf("promoted data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("both grayscale pass through", func(t *testing.T) {
		other := Zeros(2, 2)
		a2, b2 := Colorize(gray, other)
		if a2 != gray || b2 != other {
			t.Error("matching grayscale arrays were changed")
		}
	})

	t.Run("both color pass through", func(t *testing.T) {
		other := Zeros(2, 2, 3)
		a2, b2 := Colorize(rgb, other)
		if a2 != rgb || b2 != other {
			t.Error("matching color arrays were changed")
		}
	})
}

// TestFade tests the scalar interpolation stage.
func TestFade(t *testing.T) {
	base := Zeros(1, 5, 5)
	result := Full(1, 1, 5, 5)

	t.Run("half strength", func(t *testing.T) {
		got := fade(base, result, 0.5)
		for _, v := range got.Data() {
			if v != 0.5 {
				t.Fatalf("fade 0.5 produced %v, want 0.5", v)
			}
		}
	})

	t.Run("full strength is a no-op", func(t *testing.T) {
		if got := fade(base, result, 1); got != result {
			t.Error("fade at 1 did not return the result unchanged")
		}
	})

	t.Run("zero strength keeps base", func(t *testing.T) {
		got := fade(base, result, 0)
		if diff := cmp.Diff(base.Data(), got.Data()); diff != "" {
			t.Errorf("fade 0 mismatch (-want +got):\n%s", diff)
		}
	})
}

// TestApplyMask tests the per-pixel interpolation stage against a
// graduated mask.
func TestApplyMask(t *testing.T) {
	base := Full(1, 1, 5, 5)
	result := Zeros(1, 5, 5)
	mask := mustArray(t, []int{1, 5, 5}, repeatCols([]float64{1, 0.75, 0.5, 0.25, 0}, 5))

	got, err := applyMask(base, result, mask)
	if err != nil {
		t.Fatalf("applyMask: %v", err)
	}
	want := repeatCols([]float64{0, 0.25, 0.5, 0.75, 1}, 5)
	if diff := cmp.Diff(want, got.Data()); diff != "" {
		t.Errorf("masked data mismatch (-want +got):\n%s", diff)
	}

	t.Run("nil mask is a no-op", func(t *testing.T) {
		got, err := applyMask(base, result, nil)
		if err != nil {
			t.Fatalf("applyMask: %v", err)
		}
		if got != result {
			t.Error("nil mask did not return the result unchanged")
		}
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := applyMask(base, result, Zeros(5, 5))
		if !errors.Is(err, ErrMaskShape) {
			t.Errorf("applyMask error = %v, want ErrMaskShape", err)
		}
	})
}

// repeatRows repeats a row n times, building flat (n, len(row)) data.
func repeatRows(row []float64, n int) []float64 {
	out := make([]float64, 0, n*len(row))
	for i := 0; i < n; i++ {
		out = append(out, row...)
	}
	return out
}

// repeatCols builds flat (len(col), n) data where every value in row i is
// col[i].
func repeatCols(col []float64, n int) []float64 {
	out := make([]float64, 0, n*len(col))
	for _, v := range col {
		for i := 0; i < n; i++ {
			out = append(out, v)
		}
	}
	return out
}
