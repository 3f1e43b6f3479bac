// Package imageio is the codec boundary between image files and arrays.
//
// It decodes an image file into an imgblender.Array with values scaled to
// [0, 1] — shape (height, width) for grayscale sources, (height, width, 3)
// for color — and encodes such an array back into a file. The blending
// core never touches files; everything format-related lives here.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/pji/imgblender"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file extension names no
	// known codec.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrBadShape is returned when an array cannot be interpreted as
	// image data: anything other than (h, w) or (h, w, 3).
	ErrBadShape = errors.New("imageio: array shape is not encodable as an image")
)

// jpegQuality is used for all JPEG encoding.
const jpegQuality = 95

// Load reads the image file at path into an array.
func Load(path string) (*imgblender.Array, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode reads image data from r, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF.
func Decode(r io.Reader) (*imgblender.Array, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return FromImage(img), nil
}

// Save writes the array to the file at path, choosing the codec from the
// file extension. The array must have shape (h, w) or (h, w, 3); values
// are clipped to [0, 1] before quantization.
func Save(path string, a *imgblender.Array) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, format, a); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes the array to w in the named format ("png", "jpg", "jpeg",
// "gif", "bmp", "tif" or "tiff").
func Encode(w io.Writer, format string, a *imgblender.Array) error {
	img, err := ToImage(a)
	if err != nil {
		return err
	}

	switch format {
	case "png":
		err = png.Encode(w, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		err = gif.Encode(w, img, nil)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tif", "tiff":
		err = tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// FromImage converts a decoded image to an array. Grayscale images become
// shape (h, w); everything else becomes (h, w, 3), dropping alpha.
func FromImage(img image.Image) *imgblender.Array {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		a := imgblender.Zeros(h, w)
		d := a.Data()
		for y := 0; y < h; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
			for x, v := range row {
				d[y*w+x] = float64(v) / 255
			}
		}
		return a
	}

	a := imgblender.Zeros(h, w, 3)
	d := a.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			d[i] = float64(r) / 0xffff
			d[i+1] = float64(g) / 0xffff
			d[i+2] = float64(b) / 0xffff
		}
	}
	return a
}

// ToImage converts an array to an encodable image. Shape (h, w) becomes
// grayscale, (h, w, 3) becomes RGB; any other shape is ErrBadShape.
// Values outside [0, 1] are clamped.
func ToImage(a *imgblender.Array) (image.Image, error) {
	shape := a.Shape()
	switch {
	case len(shape) == 2:
		h, w := shape[0], shape[1]
		img := image.NewGray(image.Rect(0, 0, w, h))
		d := a.Data()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetGray(x, y, color.Gray{Y: quantize(d[y*w+x])})
			}
		}
		return img, nil

	case len(shape) == 3 && shape[2] == 3:
		h, w := shape[0], shape[1]
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		d := a.Data()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := (y*w + x) * 3
				img.SetNRGBA(x, y, color.NRGBA{
					R: quantize(d[i]),
					G: quantize(d[i+1]),
					B: quantize(d[i+2]),
					A: 0xff,
				})
			}
		}
		return img, nil

	default:
		return nil, fmt.Errorf("%w: got %v", ErrBadShape, shape)
	}
}

// quantize maps a [0, 1] value to an 8-bit channel, clamping overshoot.
func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
