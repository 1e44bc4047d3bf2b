// Command cfdemo applies a color filter to an image.
//
// Input may be PNG, JPEG, GIF, BMP, TIFF or WebP; output is always PNG.
// Without -in a gradient test card is filtered instead.
//
//	cfdemo -in photo.png -out sepia.png -filter matrix -preset sepia
//	cfdemo -filter blend -color "#80FF0000" -mode multiply
//	cfdemo -filter lighting -mul "#FF8080FF" -add "#00200000"
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/colorfilter"
	"github.com/gogpu/colorfilter/software"
)

var errUnknownFilter = errors.New("cfdemo: unknown filter")

type config struct {
	in, out  string
	filter   string
	color    string
	mode     string
	mul, add string
	preset   string
	width    int
	height   int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "input image (default: generated test card)")
	flag.StringVar(&cfg.out, "out", "filtered.png", "output PNG file")
	flag.StringVar(&cfg.filter, "filter", "matrix", "filter kind: blend, lighting or matrix")
	flag.StringVar(&cfg.color, "color", "#80FF0000", "blend color")
	flag.StringVar(&cfg.mode, "mode", "srcover", "blend mode")
	flag.StringVar(&cfg.mul, "mul", "#FFFFFFFF", "lighting multiply color")
	flag.StringVar(&cfg.add, "add", "#00000000", "lighting add color")
	flag.StringVar(&cfg.preset, "preset", "sepia", "matrix preset: identity, sepia, grayscale or invert")
	flag.IntVar(&cfg.width, "width", 256, "test card width")
	flag.IntVar(&cfg.height, "height", 256, "test card height")
	verbose := flag.Bool("v", false, "log filter activity to stderr")
	flag.Parse()

	if *verbose {
		colorfilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("cfdemo: %v", err)
	}
	log.Printf("Filtered image saved to %s\n", cfg.out)
}

func run(cfg config) (err error) {
	img, err := loadImage(cfg)
	if err != nil {
		return err
	}

	reg := colorfilter.NewRegistry(software.New())
	defer func() {
		if cerr := reg.Close(); err == nil {
			err = cerr
		}
	}()

	h, err := newFilter(reg, cfg)
	if err != nil {
		return err
	}
	eff, err := reg.Instance(h)
	if err != nil {
		return err
	}
	sw, ok := eff.(software.Effect)
	if !ok {
		return fmt.Errorf("%s filter has no CPU effect", cfg.filter)
	}
	sw.Apply(img, img.Bounds())

	if err := reg.Release(h); err != nil {
		return err
	}
	return savePNG(cfg.out, img)
}

func newFilter(reg *colorfilter.Registry, cfg config) (colorfilter.Handle, error) {
	switch cfg.filter {
	case "blend":
		c, err := colorfilter.ParseColor(cfg.color)
		if err != nil {
			return 0, err
		}
		mode, err := colorfilter.ParseBlendMode(cfg.mode)
		if err != nil {
			return 0, err
		}
		return reg.NewBlend(c, mode)

	case "lighting":
		mul, err := colorfilter.ParseColor(cfg.mul)
		if err != nil {
			return 0, err
		}
		add, err := colorfilter.ParseColor(cfg.add)
		if err != nil {
			return 0, err
		}
		return reg.NewLighting(mul, add)

	case "matrix":
		m, err := preset(cfg.preset)
		if err != nil {
			return 0, err
		}
		return reg.NewColorMatrix(m[:])
	}
	return 0, fmt.Errorf("%w: %q", errUnknownFilter, cfg.filter)
}

func preset(name string) (colorfilter.ColorMatrix, error) {
	switch name {
	case "identity":
		return colorfilter.IdentityColorMatrix(), nil
	case "sepia":
		return colorfilter.SepiaColorMatrix(), nil
	case "grayscale":
		return colorfilter.SaturationColorMatrix(0), nil
	case "invert":
		return colorfilter.InvertColorMatrix(), nil
	}
	return colorfilter.ColorMatrix{}, fmt.Errorf("unknown preset %q", name)
}

func loadImage(cfg config) (*image.RGBA, error) {
	if cfg.in == "" {
		return testCard(cfg.width, cfg.height), nil
	}
	f, err := os.Open(cfg.in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.in, err)
	}
	return software.ToRGBA(src), nil
}

// testCard draws a hue sweep left to right fading to transparent at the bottom.
func testCard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		a := uint8(255 - y*255/max(h-1, 1))
		for x := 0; x < w; x++ {
			t := x * 255 / max(w-1, 1)
			c := colorfilter.ARGB(a, uint8(255-t), uint8(t), uint8(t/2))
			img.SetRGBA(x, y, c.Premultiplied())
		}
	}
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
