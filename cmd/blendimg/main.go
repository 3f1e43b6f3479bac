// Command blendimg blends two image files with a blend mode, or generates
// a demonstration image for every mode in the catalog.
//
// Blend two files:
//
//	blendimg -base bottom.png -blend top.png -mode multiply -out out.png
//
// Generate demo images:
//
//	blendimg -demo -out images -width 1280 -height 720
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pji/imgblender"
	"github.com/pji/imgblender/internal/imageio"
)

func main() {
	var (
		basePath  = flag.String("base", "", "base image file (bottom layer)")
		blendPath = flag.String("blend", "", "blending image file (top layer)")
		maskPath  = flag.String("mask", "", "optional mask image file")
		modeName  = flag.String("mode", "multiply", "blend mode name")
		fadeAmt   = flag.Float64("fade", 1, "blend effect strength, 0 to 1")
		output    = flag.String("out", "", "output file, or output directory with -demo")
		demo      = flag.Bool("demo", false, "generate one demo image per blend mode")
		width     = flag.Int("width", 1280, "demo image width")
		height    = flag.Int("height", 720, "demo image height")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		imgblender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *demo {
		dir := *output
		if dir == "" {
			dir = "images"
		}
		if err := runDemo(dir, *width, *height); err != nil {
			log.Fatalf("Failed to generate demo images: %v", err)
		}
		return
	}

	if *basePath == "" || *blendPath == "" {
		log.Fatal("Both -base and -blend are required (or use -demo)")
	}
	out := *output
	if out == "" {
		out = "blend.png"
	}
	if err := runBlend(*modeName, *basePath, *blendPath, *maskPath, *fadeAmt, out); err != nil {
		log.Fatalf("Failed to blend: %v", err)
	}
}

// runBlend blends two image files and writes the result.
func runBlend(modeName, basePath, blendPath, maskPath string, fade float64, out string) error {
	mode, err := imgblender.ModeFromName(modeName)
	if err != nil {
		return err
	}

	a, err := imageio.Load(basePath)
	if err != nil {
		return err
	}
	b, err := imageio.Load(blendPath)
	if err != nil {
		return err
	}

	opts := []imgblender.Option{imgblender.WithFade(fade)}
	if maskPath != "" {
		m, err := imageio.Load(maskPath)
		if err != nil {
			return err
		}
		opts = append(opts, imgblender.WithMask(m))
	}

	ab, err := imgblender.Blend(mode, a, b, opts...)
	if err != nil {
		return err
	}
	if err := imageio.Save(out, ab); err != nil {
		return err
	}

	log.Printf("Saved %s blend to %s", mode, out)
	return nil
}

// runDemo writes the two source layers and one blended image per mode
// into dir. The base layer is a horizontal grayscale gradient and the
// blending layer is a vertical hue sweep, so the demo also exercises
// channel promotion.
func runDemo(dir string, width, height int) error {
	if width < 2 || height < 2 {
		log.Fatal("Demo images must be at least 2x2")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	a := grayGradient(height, width)
	b := hueSweep(height, width)

	log.Print("Making base images.")
	if err := imageio.Save(filepath.Join(dir, "base.png"), a); err != nil {
		return err
	}
	if err := imageio.Save(filepath.Join(dir, "blend.png"), b); err != nil {
		return err
	}

	for _, mode := range imgblender.AllModes() {
		name := mode.String() + ".png"
		log.Printf("Making %s...", name)
		ab, err := imgblender.Blend(mode, a, b)
		if err != nil {
			return err
		}
		if err := imageio.Save(filepath.Join(dir, name), ab); err != nil {
			return err
		}
	}

	log.Printf("Demo images saved to %s", dir)
	return nil
}

// grayGradient returns a single-channel array sweeping 0 to 1 left to
// right, repeated down every row.
func grayGradient(height, width int) *imgblender.Array {
	a := imgblender.Zeros(height, width)
	d := a.Data()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d[y*width+x] = float64(x) / float64(width-1)
		}
	}
	return a
}

// hueSweep returns a three-channel array whose hue turns through the
// color wheel top to bottom.
func hueSweep(height, width int) *imgblender.Array {
	b := imgblender.Zeros(height, width, 3)
	d := b.Data()
	for y := 0; y < height; y++ {
		hue := 360 * float64(y) / float64(height)
		c := colorful.Hsv(hue, 0.65, 0.9)
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			d[i] = c.R
			d[i+1] = c.G
			d[i+2] = c.B
		}
	}
	return b
}
