// Package sorting reorders the colors of a span in place.
package sorting

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/maax3v3/glitchsort/internal/color"
	"github.com/maax3v3/glitchsort/internal/grid"
)

// Algorithm selects how a span is reordered.
type Algorithm int

const (
	Mapsort    Algorithm = iota // stable counting sort over the metric's range
	Shellsort                   // gap-shrinking exchange sort on pinned keys
	Glitchsort                  // Shellsort with keys decoupled from colors
	DebugColor                  // paint the span one random light color
)

var algorithmNames = [...]string{
	Mapsort:    "mapsort",
	Shellsort:  "shellsort",
	Glitchsort: "glitchsort",
	DebugColor: "debug-color",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm resolves an algorithm by name, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.ReplaceAll(norm, "_", "-")
	for a, n := range algorithmNames {
		if n == norm {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q (supported: %s)", name, strings.Join(algorithmNames[:], ", "))
}

// Sort reorders span by metric m using alg. Every algorithm except
// DebugColor permutes the span's existing colors. rng is only used by
// DebugColor; nil falls back to the auto-seeded global source.
func Sort(span grid.View, alg Algorithm, m color.Metric, rng *rand.Rand) {
	switch alg {
	case Mapsort:
		mapsort(span, m)
	case Shellsort:
		shellsort(span, m, false)
	case Glitchsort:
		shellsort(span, m, true)
	case DebugColor:
		debugColor(span, rng)
	default:
		panic(fmt.Sprintf("sorting: unknown algorithm %d", int(alg)))
	}
}

// mapsort is a counting sort: colors are distributed into one bucket per
// metric value, keeping their relative order, and written back bucket by
// bucket.
func mapsort(span grid.View, m color.Metric) {
	if len(span) < 2 {
		return
	}

	keys := make([]int, len(span))
	colors := make([]color.RGBA, len(span))
	starts := make([]int, m.Buckets()+1)
	for i, p := range span {
		c := p.Color()
		k := m.Value(c)
		keys[i], colors[i] = k, c
		starts[k+1]++
	}
	for k := 1; k < len(starts); k++ {
		starts[k] += starts[k-1]
	}

	for i, c := range colors {
		k := keys[i]
		span[starts[k]].Set(c)
		starts[k]++
	}
}

// shrink is the gap divisor between passes.
const shrink = 1.247330950103979

type keyed struct {
	key int
	px  grid.Pixel
}

// shellsort sorts ascending by a key computed once per pixel before the
// first pass. Keys are never recomputed after colors move.
//
// With glitch unset, handles stay in place and a swap exchanges keys and
// colors together, which is an ordinary exchange sort. With glitch set, a
// swap exchanges the colors behind the two handles and also moves the
// handles along with their keys, so later swaps act on cells whose colors
// no longer match the key they are compared by. The result is still a
// permutation of the span's colors but not an ordering of them.
func shellsort(span grid.View, m color.Metric, glitch bool) {
	n := len(span)
	if n < 2 {
		return
	}

	ks := make([]keyed, n)
	for i, p := range span {
		ks[i] = keyed{key: m.Value(p.Color()), px: p}
	}

	gap := n
	for swapped := true; gap > 1 || swapped; {
		gap = int(float64(gap) / shrink)
		if gap < 1 {
			gap = 1
		}
		swapped = false
		for i := 0; i+gap < n; i++ {
			j := i + gap
			if ks[j].key >= ks[i].key {
				continue
			}
			ks[i].px.Swap(ks[j].px)
			if glitch {
				ks[i], ks[j] = ks[j], ks[i]
			} else {
				ks[i].key, ks[j].key = ks[j].key, ks[i].key
			}
			swapped = true
		}
	}
}

// debugColor paints every pixel of a non-empty span with one color whose
// channels are drawn from [130, 255]. Alpha is left alone.
func debugColor(span grid.View, rng *rand.Rand) {
	if len(span) == 0 {
		return
	}
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	c := color.RGBA{
		R: uint8(130 + intN(126)),
		G: uint8(130 + intN(126)),
		B: uint8(130 + intN(126)),
		A: 255,
	}
	for _, p := range span {
		p.SetRGB(c)
	}
}
