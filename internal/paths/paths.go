// Package paths generates traversal orders over a pixel grid.
//
// A traversal is a list of strands; each strand is an ordered list of
// row-major cell indices. Generation depends only on the grid size, never
// on pixel data. Strands may overlap each other; binding them to pixels
// exclusively is the job of grid.Pick.
package paths

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/maax3v3/glitchsort/internal/grid"
)

// Mode selects a traversal algorithm.
type Mode int

const (
	AllHorizontally Mode = iota // one strand, row-major
	AllVertically               // one strand, column-major
	HorizontalLines             // one strand per row
	VerticalLines               // one strand per column
	Diagonally                  // parallel lines tilted by Options.Angle
	Circles                     // two half-circle arcs per radius
	Spiral                      // one strand of growing circles
	SquareSpiral                // one strand, square walk from the centre
	RectSpiral                  // one strand, rectangular walk matching the aspect
	Rays                        // one strand per perimeter cell, from the centre
	Hilbert                     // one strand, generalized Hilbert curve
)

var modeNames = [...]string{
	AllHorizontally: "all-horizontally",
	AllVertically:   "all-vertically",
	HorizontalLines: "horizontal-lines",
	VerticalLines:   "vertical-lines",
	Diagonally:      "diagonally",
	Circles:         "circles",
	Spiral:          "spiral",
	SquareSpiral:    "square-spiral",
	RectSpiral:      "rect-spiral",
	Rays:            "rays",
	Hilbert:         "hilbert",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Modes lists every traversal mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modeNames))
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// ParseMode resolves a mode by name, case-insensitively. Underscores and
// spaces are accepted in place of dashes.
func ParseMode(name string) (Mode, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for m, n := range modeNames {
		if n == norm {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown path mode %q (supported: %s)", name, strings.Join(modeNames[:], ", "))
}

// Options tune a traversal.
type Options struct {
	// Angle is the tilt in degrees for Diagonally, counter-clockwise on
	// screen. 0 runs left to right, 90 bottom to top.
	Angle float64

	// Reverse flips the walking direction of every strand. The order of
	// the strands themselves is unchanged.
	Reverse bool

	// Workers bounds the goroutines used by Circles, Spiral and Rays.
	// 0 means GOMAXPROCS.
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Generate returns the strands of mode over a w×h grid. Every index in the
// result is in [0, w*h), no strand holds the same index twice in a row and
// no strand is empty. A grid with a zero dimension yields nil.
func Generate(mode Mode, w, h int, opts Options) [][]int {
	g := grid.Grid{Width: w, Height: h}
	if g.Len() == 0 {
		return nil
	}

	var raw [][]int
	switch mode {
	case AllHorizontally:
		raw = allHorizontally(g)
	case AllVertically:
		raw = allVertically(g)
	case HorizontalLines:
		raw = horizontalLines(g)
	case VerticalLines:
		raw = verticalLines(g)
	case Diagonally:
		raw = diagonal(g, opts.Angle)
	case Circles:
		raw = circles(g, opts.workers())
	case Spiral:
		raw = spiral(g, opts.workers())
	case SquareSpiral:
		raw = rectWalk(g, false)
	case RectSpiral:
		raw = rectWalk(g, true)
	case Rays:
		raw = rays(g, opts.workers())
	case Hilbert:
		raw = hilbert(g)
	default:
		panic(fmt.Sprintf("paths: unknown mode %d", int(mode)))
	}
	return finalize(g, raw, opts.Reverse)
}

// finalize drops out-of-range indices and adjacent duplicates, removes
// empty strands and applies the reverse post-processing.
func finalize(g grid.Grid, raw [][]int, reverse bool) [][]int {
	out := raw[:0]
	for _, s := range raw {
		s = compact(g, s)
		if len(s) == 0 {
			continue
		}
		if reverse {
			Reverse(s)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// compact filters s in place.
func compact(g grid.Grid, s []int) []int {
	out := s[:0]
	for _, idx := range s {
		if !g.Contains(idx) {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == idx {
			continue
		}
		out = append(out, idx)
	}
	return out
}

// Reverse reverses a strand in place.
func Reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// strand accumulates in-bounds cells of one traversal strand.
type strand struct {
	g   grid.Grid
	idx []int
}

func newStrand(g grid.Grid, capacity int) *strand {
	return &strand{g: g, idx: make([]int, 0, capacity)}
}

// add appends (x, y) if it lies inside the grid. Coordinates are checked
// before flattening, otherwise an overreaching x would wrap into the
// neighbouring row.
func (s *strand) add(x, y int) {
	if s.g.In(x, y) {
		s.idx = append(s.idx, s.g.Index(x, y))
	}
}
