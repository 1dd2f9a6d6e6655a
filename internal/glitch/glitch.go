// Package glitch wires path generation, pixel picking, span selection and
// span sorting into the two operations callers use: Sort and Mask.
package glitch

import (
	"fmt"
	"image"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/maax3v3/glitchsort/internal/color"
	"github.com/maax3v3/glitchsort/internal/grid"
	"github.com/maax3v3/glitchsort/internal/paths"
	"github.com/maax3v3/glitchsort/internal/selection"
	"github.com/maax3v3/glitchsort/internal/sorting"
)

// Params configures one Sort or Mask call.
type Params struct {
	Mode    paths.Mode
	Angle   float64 // degrees, used by paths.Diagonally
	Reverse bool

	Policy    selection.Policy
	Metric    color.Metric
	Algorithm sorting.Algorithm

	// Workers bounds the goroutines used for path generation and for
	// processing views. 0 means GOMAXPROCS.
	Workers int
}

// Validate checks that every enum is known and the policy is well formed.
func (p Params) Validate() error {
	if p.Mode < 0 || int(p.Mode) >= len(paths.Modes()) {
		return fmt.Errorf("unknown path mode %d", int(p.Mode))
	}
	if p.Metric < color.MetricHue || p.Metric > color.MetricDebug {
		return fmt.Errorf("unknown metric %d", int(p.Metric))
	}
	if p.Algorithm < sorting.Mapsort || p.Algorithm > sorting.DebugColor {
		return fmt.Errorf("unknown algorithm %d", int(p.Algorithm))
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", p.Workers)
	}
	return p.Policy.Validate()
}

func (p Params) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (p Params) pathOptions() paths.Options {
	return paths.Options{Angle: p.Angle, Reverse: p.Reverse, Workers: p.Workers}
}

// Stats summarises a Sort or Mask call.
type Stats struct {
	Paths  int // strands generated
	Pixels int // cells bound to a view
	Spans  int // spans selected
}

// Sort glitches img in place: it generates the strands of p.Mode, binds
// them to the image's pixels, cuts every view into spans and sorts each
// span. Views are disjoint, so they are processed concurrently.
//
// Every view draws from its own generator, seeded from rng in view order
// before any work starts; a seeded rng therefore gives the same image
// whatever the scheduling. A nil rng seeds from the global source.
func Sort(img *image.RGBA, p Params, rng *rand.Rand) Stats {
	start := time.Now()
	b := img.Bounds()

	strands := paths.Generate(p.Mode, b.Dx(), b.Dy(), p.pathOptions())
	arena := grid.NewArena(img)
	views := grid.Pick(arena, strands)

	spans := forEachView(views, seeds(len(views), rng), p.workers(), func(v grid.View, r *rand.Rand) int {
		ss := selection.Select(v, p.Policy, r)
		for _, s := range ss {
			sorting.Sort(s, p.Algorithm, p.Metric, r)
		}
		return len(ss)
	})

	st := Stats{Paths: len(strands), Pixels: arena.Taken(), Spans: spans}
	Logger().Debug("glitch: sorted",
		"mode", p.Mode,
		"selector", p.Policy,
		"algorithm", p.Algorithm,
		"metric", p.Metric,
		"paths", st.Paths,
		"pixels", st.Pixels,
		"spans", st.Spans,
		"elapsed", time.Since(start),
	)
	return st
}

// MaskColors are the paints used by Mask.
type MaskColors struct {
	Selected   color.RGBA
	Unselected color.RGBA
}

// DefaultMaskColors paints selected pixels white and the rest black.
func DefaultMaskColors() MaskColors {
	return MaskColors{
		Selected:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Unselected: color.RGBA{A: 255},
	}
}

// Mask previews what p.Policy would select, without sorting. It reports
// false and leaves img untouched when the policy has no visible mask
// (selection.KindFull).
//
// Threshold policies paint every pixel by the predicate. Fixed and Random
// policies cut the strands of p.Mode into spans and paint consecutive spans
// alternately, so span boundaries show; pixels no strand reaches keep their
// color.
func Mask(img *image.RGBA, p Params, mc MaskColors, rng *rand.Rand) (Stats, bool) {
	if !p.Policy.HasMask() {
		return Stats{}, false
	}
	start := time.Now()
	b := img.Bounds()

	opts := p.pathOptions()
	mode := p.Mode
	if p.Policy.Kind == selection.KindThreshold {
		// The predicate is per pixel, so the traversal does not matter.
		mode = paths.HorizontalLines
	}
	strands := paths.Generate(mode, b.Dx(), b.Dy(), opts)
	arena := grid.NewArena(img)
	views := grid.Pick(arena, strands)

	var paint func(v grid.View, r *rand.Rand) int
	if p.Policy.Kind == selection.KindThreshold {
		paint = func(v grid.View, _ *rand.Rand) int {
			n := 0
			for _, px := range v {
				if p.Policy.Selects(px.Color()) {
					px.Set(mc.Selected)
					n++
				} else {
					px.Set(mc.Unselected)
				}
			}
			return n
		}
	} else {
		paint = func(v grid.View, r *rand.Rand) int {
			ss := selection.Select(v, p.Policy, r)
			on := true
			for _, s := range ss {
				if len(s) == 0 {
					continue
				}
				c := mc.Unselected
				if on {
					c = mc.Selected
				}
				for _, px := range s {
					px.Set(c)
				}
				on = !on
			}
			return len(ss)
		}
	}

	n := forEachView(views, seeds(len(views), rng), p.workers(), paint)
	st := Stats{Paths: len(strands), Pixels: arena.Taken(), Spans: n}
	Logger().Debug("glitch: masked",
		"selector", p.Policy,
		"paths", st.Paths,
		"pixels", st.Pixels,
		"selected", st.Spans,
		"elapsed", time.Since(start),
	)
	return st, true
}

// seeds draws one seed per view, in view order.
func seeds(n int, rng *rand.Rand) []uint64 {
	next := rand.Uint64
	if rng != nil {
		next = rng.Uint64
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = next()
	}
	return out
}

// forEachView runs fn over views on up to workers goroutines and returns
// the sum of its results. View i gets a generator seeded with seeds[i].
func forEachView(views []grid.View, seeds []uint64, workers int, fn func(grid.View, *rand.Rand) int) int {
	counts := make([]int, len(views))
	run := func(i int) {
		counts[i] = fn(views[i], rand.New(rand.NewPCG(seeds[i], uint64(i))))
	}

	if workers > len(views) {
		workers = len(views)
	}
	if workers <= 1 {
		for i := range views {
			run(i)
		}
	} else {
		work := make(chan int, len(views))
		for i := range views {
			work <- i
		}
		close(work)

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range work {
					run(i)
				}
			}()
		}
		wg.Wait()
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
