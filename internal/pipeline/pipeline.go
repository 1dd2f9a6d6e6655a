package pipeline

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/maax3v3/glitchsort"
	"github.com/maax3v3/glitchsort/internal/cli"
)

// Run executes the full glitchsort pipeline with the given configuration,
// printing one progress line per stage to w.
func Run(cfg cli.Config, w io.Writer) error {
	o := cfg.Options

	// Step 1: Load input image
	fmt.Fprintf(w, "Loading image: %s\n", cfg.InPath)
	img, err := glitchsort.LoadImage(cfg.InPath)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}
	fmt.Fprintf(w, "Image loaded: %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())

	// Step 2: Sort, or paint the selection mask
	start := time.Now()
	var result *image.RGBA
	if cfg.Mask {
		fmt.Fprintf(w, "Masking (mode=%s, selector=%s)...\n", o.Mode, o.Selector)
		res, ok, err := glitchsort.Mask(img, o)
		if err != nil {
			return fmt.Errorf("masking: %w", err)
		}
		if !ok {
			fmt.Fprintf(w, "Selector %q selects everything, nothing to mask\n", o.Selector)
		}
		result = res
	} else {
		fmt.Fprintf(w, "Sorting (mode=%s, selector=%s, metric=%s, algorithm=%s)...\n",
			o.Mode, o.Selector, o.Metric, o.Algorithm)
		res, err := glitchsort.Sort(img, o)
		if err != nil {
			return fmt.Errorf("sorting: %w", err)
		}
		result = res
	}
	fmt.Fprintf(w, "Processed in %s\n", time.Since(start).Round(time.Millisecond))

	// Step 3: Save output
	fmt.Fprintf(w, "Saving output: %s\n", cfg.OutPath)
	if err := glitchsort.SaveImage(cfg.OutPath, result); err != nil {
		return fmt.Errorf("saving output: %w", err)
	}

	fmt.Fprintln(w, "Done!")
	return nil
}
