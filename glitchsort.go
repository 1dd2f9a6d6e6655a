// Package glitchsort produces pixel-sorting glitch art.
//
// The image is walked along a family of paths (lines, diagonals, circles,
// spirals, rays or a Hilbert curve). Every path is cut into spans by a
// selector, and the colors inside each span are sorted by hue, brightness
// or saturation. Each pixel belongs to at most one path, so paths are
// processed in parallel and sorting writes straight into the image.
//
// Usage as a library:
//
//	img, _ := glitchsort.LoadImage("photo.jpg")
//	opts := glitchsort.DefaultOptions()
//	opts.Mode = "diagonally"
//	opts.Angle = 30
//	result, _ := glitchsort.Sort(img, opts)
//	glitchsort.SaveImage("glitched.png", result)
//
// Or use the file-based convenience:
//
//	err := glitchsort.SortFile("photo.jpg", "glitched.png", glitchsort.DefaultOptions())
package glitchsort

import (
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"

	"github.com/maax3v3/glitchsort/internal/color"
	"github.com/maax3v3/glitchsort/internal/glitch"
	"github.com/maax3v3/glitchsort/internal/imaging"
	"github.com/maax3v3/glitchsort/internal/paths"
	"github.com/maax3v3/glitchsort/internal/selection"
	"github.com/maax3v3/glitchsort/internal/sorting"
)

// Selector names accepted by Options.Selector.
const (
	SelectorFull      = "full"      // every path is one span
	SelectorFixed     = "fixed"     // spans of exactly Length pixels
	SelectorRandom    = "random"    // spans of random length below Length
	SelectorThreshold = "threshold" // runs of pixels with ThresholdMetric in [Min, Max]
)

// Options configures a sort. Enumerated settings are given by name, as
// accepted on the command line.
type Options struct {
	// Mode is the path family: all-horizontally, all-vertically,
	// horizontal-lines, vertical-lines, diagonally, circles, spiral,
	// square-spiral, rect-spiral, rays or hilbert.
	// Default: "horizontal-lines".
	Mode string `toml:"mode"`

	// Angle is the tilt in degrees for the diagonally mode.
	Angle float64 `toml:"angle"`

	// Reverse walks every path backwards, which flips the sort direction.
	Reverse bool `toml:"reverse"`

	// Selector cuts paths into spans: full, fixed, random or threshold.
	// Default: "full".
	Selector string `toml:"selector"`

	// Length is the span length for the fixed selector and the exclusive
	// upper bound for the random selector.
	// Default: 64.
	Length int `toml:"length"`

	// ThresholdMetric, Min and Max configure the threshold selector.
	// Bounds are inclusive. Hue ranges over [0,360), brightness and
	// saturation over [0,255].
	ThresholdMetric string `toml:"threshold_metric"`
	Min             int    `toml:"min"`
	Max             int    `toml:"max"`

	// Metric is what spans are sorted by: hue, brightness, saturation or
	// debug. Default: "hue".
	Metric string `toml:"metric"`

	// Algorithm is mapsort, shellsort, glitchsort or debug-color.
	// Default: "mapsort".
	Algorithm string `toml:"algorithm"`

	// Seed makes random selection and debug colors reproducible. 0 seeds
	// from the runtime.
	Seed int64 `toml:"seed"`

	// Workers bounds parallelism. 0 means GOMAXPROCS.
	Workers int `toml:"workers"`

	// MaskSelected and MaskUnselected are the paints used by Mask.
	// Default: white and black.
	MaskSelected   Color `toml:"mask_selected"`
	MaskUnselected Color `toml:"mask_unselected"`
}

// Color represents an RGBA color with 8-bit components. It marshals to and
// from hex text, so it can be used directly in presets and flags.
type Color struct {
	R, G, B, A uint8
}

// MarshalText formats the color as #rrggbb.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.internal().String()), nil
}

// UnmarshalText parses a hex color such as "#000" or "#FF00FF".
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) internal() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Mode:            paths.HorizontalLines.String(),
		Selector:        SelectorFull,
		Length:          64,
		ThresholdMetric: color.MetricBrightness.String(),
		Min:             64,
		Max:             192,
		Metric:          color.MetricHue.String(),
		Algorithm:       sorting.Mapsort.String(),
		MaskSelected:    Color{255, 255, 255, 255},
		MaskUnselected:  Color{0, 0, 0, 255},
	}
}

// ParseHexColor parses a hex color string like "#000", "#FF00FF".
func ParseHexColor(hex string) (Color, error) {
	c, err := color.ParseHex(hex)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// Modes lists the accepted Options.Mode names.
func Modes() []string {
	var out []string
	for _, m := range paths.Modes() {
		out = append(out, m.String())
	}
	return out
}

// Validate reports the first invalid setting in opts.
func (opts Options) Validate() error {
	_, err := opts.params()
	return err
}

func (opts Options) params() (glitch.Params, error) {
	mode, err := paths.ParseMode(opts.Mode)
	if err != nil {
		return glitch.Params{}, err
	}
	metric, err := color.ParseMetric(opts.Metric)
	if err != nil {
		return glitch.Params{}, err
	}
	alg, err := sorting.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return glitch.Params{}, err
	}
	policy, err := opts.policy()
	if err != nil {
		return glitch.Params{}, err
	}

	p := glitch.Params{
		Mode:      mode,
		Angle:     opts.Angle,
		Reverse:   opts.Reverse,
		Policy:    policy,
		Metric:    metric,
		Algorithm: alg,
		Workers:   opts.Workers,
	}
	if err := p.Validate(); err != nil {
		return glitch.Params{}, err
	}
	return p, nil
}

func (opts Options) policy() (selection.Policy, error) {
	kind, err := selection.ParseKind(opts.Selector)
	if err != nil {
		return selection.Policy{}, err
	}
	switch kind {
	case selection.KindFixed:
		return selection.Fixed(opts.Length), nil
	case selection.KindRandom:
		return selection.Random(opts.Length), nil
	case selection.KindThreshold:
		m, err := color.ParseMetric(opts.ThresholdMetric)
		if err != nil {
			return selection.Policy{}, fmt.Errorf("threshold metric: %w", err)
		}
		hi := m.Buckets() - 1
		if opts.Min < 0 || opts.Max > hi {
			return selection.Policy{}, fmt.Errorf("threshold bounds [%d, %d] outside %s range [0, %d]", opts.Min, opts.Max, m, hi)
		}
		return selection.Threshold(m, opts.Min, opts.Max), nil
	default:
		return selection.Full(), nil
	}
}

func (opts Options) rng() *rand.Rand {
	if opts.Seed == 0 {
		return nil
	}
	s := uint64(opts.Seed)
	return rand.New(rand.NewPCG(s, s))
}

// LoadImage reads an image from disk. Supports PNG, JPEG, WEBP, BMP and TIFF.
func LoadImage(path string) (image.Image, error) {
	return imaging.Load(path)
}

// SaveImage writes an image to disk, encoded by the path's extension
// (PNG, JPEG, BMP or TIFF).
func SaveImage(path string, img image.Image) error {
	return imaging.Save(path, img)
}

// SetLogger installs a logger for per-stage debug records. nil silences
// logging, which is the default.
func SetLogger(l *slog.Logger) {
	glitch.SetLogger(l)
}

// Sort returns a glitched copy of img. The input is not modified.
func Sort(img image.Image, opts Options) (*image.RGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}
	p, err := opts.params()
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	out := imaging.ToRGBA(img)
	glitch.Sort(out, p, opts.rng())
	return out, nil
}

// SortRGBA glitches img in place. Sub-images are supported; pixels outside
// img's bounds are left alone.
func SortRGBA(img *image.RGBA, opts Options) error {
	if img == nil {
		return fmt.Errorf("input image is nil")
	}
	p, err := opts.params()
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	glitch.Sort(img, p, opts.rng())
	return nil
}

// Mask returns a copy of img painted with what the selector would pick:
// MaskSelected for selected pixels (or every other span for the fixed and
// random selectors) and MaskUnselected for the rest. The boolean is false
// when the selector has no mask (full); the copy is then unpainted.
func Mask(img image.Image, opts Options) (*image.RGBA, bool, error) {
	if img == nil {
		return nil, false, fmt.Errorf("input image is nil")
	}
	p, err := opts.params()
	if err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}
	out := imaging.ToRGBA(img)
	mc := glitch.MaskColors{
		Selected:   opts.MaskSelected.internal(),
		Unselected: opts.MaskUnselected.internal(),
	}
	_, ok := glitch.Mask(out, p, mc, opts.rng())
	return out, ok, nil
}

// SortFile is a convenience that loads an image from inPath, sorts it,
// and saves the result to outPath.
func SortFile(inPath, outPath string, opts Options) error {
	img, err := LoadImage(inPath)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	result, err := Sort(img, opts)
	if err != nil {
		return fmt.Errorf("sorting: %w", err)
	}

	if err := SaveImage(outPath, result); err != nil {
		return fmt.Errorf("saving output: %w", err)
	}

	return nil
}
