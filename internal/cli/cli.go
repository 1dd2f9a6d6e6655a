package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/maax3v3/glitchsort"
)

// Config holds the parsed CLI arguments.
type Config struct {
	InPath  string
	OutPath string
	Preset  string
	Mask    bool
	Verbose bool
	Options glitchsort.Options
}

var outputExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// Parse parses CLI arguments (without the program name) and returns a
// validated Config. Usage and flag errors are written to stderr.
//
// Settings come from the defaults, then the --preset TOML file, then any
// flag given explicitly on the command line.
func Parse(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("glitchsort", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := glitchsort.DefaultOptions()
	var cfg Config
	var set glitchsort.Options

	fs.StringVar(&cfg.InPath, "in", "", "Path to input image (required, supports PNG, JPEG, WEBP, BMP, TIFF)")
	fs.StringVar(&cfg.OutPath, "out", "", "Path to generated output image (required, PNG, JPEG, BMP or TIFF)")
	fs.StringVar(&cfg.Preset, "preset", "", "TOML file with default settings; explicit flags win")
	fs.BoolVar(&cfg.Mask, "mask", false, "Paint the selection mask instead of sorting")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log per-stage debug records to stderr")

	fs.StringVar(&set.Mode, "mode", def.Mode, "Path mode: "+strings.Join(glitchsort.Modes(), ", "))
	fs.Float64Var(&set.Angle, "angle", def.Angle, "Angle in degrees for the diagonally mode")
	fs.BoolVar(&set.Reverse, "reverse", def.Reverse, "Walk every path backwards")
	fs.StringVar(&set.Selector, "selector", def.Selector, "Span selector: full, fixed, random, threshold")
	fs.IntVar(&set.Length, "length", def.Length, "Span length (fixed) or exclusive max length (random)")
	fs.StringVar(&set.ThresholdMetric, "threshold-metric", def.ThresholdMetric, "Metric gating the threshold selector")
	fs.IntVar(&set.Min, "min", def.Min, "Inclusive lower bound for the threshold selector")
	fs.IntVar(&set.Max, "max", def.Max, "Inclusive upper bound for the threshold selector")
	fs.StringVar(&set.Metric, "metric", def.Metric, "Sort metric: hue, brightness, saturation, debug")
	fs.StringVar(&set.Algorithm, "algorithm", def.Algorithm, "Sort algorithm: mapsort, shellsort, glitchsort, debug-color")
	fs.Int64Var(&set.Seed, "seed", def.Seed, "Random seed (0 = seed from the runtime)")
	fs.IntVar(&set.Workers, "workers", def.Workers, "Worker goroutines (0 = GOMAXPROCS)")
	fs.TextVar(&set.MaskSelected, "mask-selected", def.MaskSelected, "Hex color of selected pixels in --mask output")
	fs.TextVar(&set.MaskUnselected, "mask-unselected", def.MaskUnselected, "Hex color of unselected pixels in --mask output")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: glitchsort [options]\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExample:\n  glitchsort --in=photo.jpg --out=glitched.png --mode=diagonally --angle=30 --selector=threshold --min=60 --max=200\n")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Options = def
	if cfg.Preset != "" {
		if err := loadPreset(cfg.Preset, &cfg.Options); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		override(&cfg.Options, set, f.Name)
	})

	if cfg.InPath == "" {
		return Config{}, fmt.Errorf("--in is required")
	}
	if cfg.OutPath == "" {
		return Config{}, fmt.Errorf("--out is required")
	}
	if ext := strings.ToLower(filepath.Ext(cfg.OutPath)); !outputExts[ext] {
		return Config{}, fmt.Errorf("--out must be a .png, .jpg, .jpeg, .bmp, .tif or .tiff file, got %q", ext)
	}
	if err := cfg.Options.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadPreset decodes a TOML preset over opts. Unknown keys are rejected.
func loadPreset(path string, opts *glitchsort.Options) error {
	md, err := toml.DecodeFile(path, opts)
	if err != nil {
		return fmt.Errorf("reading preset: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("preset %s: unknown keys: %s", filepath.Base(path), strings.Join(keys, ", "))
	}
	return nil
}

// override copies the setting behind flag name from set into opts.
func override(opts *glitchsort.Options, set glitchsort.Options, name string) {
	switch name {
	case "mode":
		opts.Mode = set.Mode
	case "angle":
		opts.Angle = set.Angle
	case "reverse":
		opts.Reverse = set.Reverse
	case "selector":
		opts.Selector = set.Selector
	case "length":
		opts.Length = set.Length
	case "threshold-metric":
		opts.ThresholdMetric = set.ThresholdMetric
	case "min":
		opts.Min = set.Min
	case "max":
		opts.Max = set.Max
	case "metric":
		opts.Metric = set.Metric
	case "algorithm":
		opts.Algorithm = set.Algorithm
	case "seed":
		opts.Seed = set.Seed
	case "workers":
		opts.Workers = set.Workers
	case "mask-selected":
		opts.MaskSelected = set.MaskSelected
	case "mask-unselected":
		opts.MaskUnselected = set.MaskUnselected
	}
}

// IsHelp reports whether err asks for usage only.
func IsHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
