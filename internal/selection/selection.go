// Package selection cuts pixel views into spans, the contiguous runs that
// get sorted.
package selection

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/maax3v3/glitchsort/internal/color"
	"github.com/maax3v3/glitchsort/internal/grid"
)

// Kind is the variant of a selection policy.
type Kind int

const (
	KindFull      Kind = iota // the whole view is one span
	KindFixed                 // runs of exactly Length pixels
	KindRandom                // runs of random length in [0, Length)
	KindThreshold             // runs of pixels whose metric lies in [Min, Max]
)

var kindNames = [...]string{
	KindFull:      "full",
	KindFixed:     "fixed",
	KindRandom:    "random",
	KindThreshold: "threshold",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a policy kind by name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == norm {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown selector %q (supported: %s)", name, strings.Join(kindNames[:], ", "))
}

// Policy decides how a view is cut into spans.
type Policy struct {
	Kind Kind

	// Length is the run length for KindFixed and the exclusive upper
	// bound of run lengths for KindRandom.
	Length int

	// Metric, Min and Max gate pixels for KindThreshold. Both bounds are
	// inclusive.
	Metric   color.Metric
	Min, Max int
}

// Full selects every view as a single span.
func Full() Policy { return Policy{Kind: KindFull} }

// Fixed selects consecutive runs of n pixels.
func Fixed(n int) Policy { return Policy{Kind: KindFixed, Length: n} }

// Random selects consecutive runs whose lengths are drawn from [0, bound).
func Random(bound int) Policy { return Policy{Kind: KindRandom, Length: bound} }

// Threshold selects maximal runs of pixels with lo <= m(pixel) <= hi.
func Threshold(m color.Metric, lo, hi int) Policy {
	return Policy{Kind: KindThreshold, Metric: m, Min: lo, Max: hi}
}

// Validate checks the policy's parameters.
func (p Policy) Validate() error {
	switch p.Kind {
	case KindFull:
		return nil
	case KindFixed:
		if p.Length < 1 {
			return fmt.Errorf("fixed selector: length must be >= 1, got %d", p.Length)
		}
	case KindRandom:
		// A bound of 1 would only ever draw empty runs and never finish.
		if p.Length < 2 {
			return fmt.Errorf("random selector: max length must be >= 2, got %d", p.Length)
		}
	case KindThreshold:
		if p.Metric < color.MetricHue || p.Metric > color.MetricDebug {
			return fmt.Errorf("threshold selector: unknown metric %d", int(p.Metric))
		}
		if p.Min > p.Max {
			return fmt.Errorf("threshold selector: min %d is greater than max %d", p.Min, p.Max)
		}
	default:
		return fmt.Errorf("unknown selector kind %d", int(p.Kind))
	}
	return nil
}

// HasMask reports whether the policy selects anything less than every
// pixel as one span, i.e. whether a mask preview shows anything.
func (p Policy) HasMask() bool {
	return p.Kind != KindFull
}

// Selects reports whether a pixel of color c can be part of a span. Only
// KindThreshold rejects pixels.
func (p Policy) Selects(c color.RGBA) bool {
	if p.Kind != KindThreshold {
		return true
	}
	v := p.Metric.Value(c)
	return v >= p.Min && v <= p.Max
}

func (p Policy) String() string {
	switch p.Kind {
	case KindFixed, KindRandom:
		return fmt.Sprintf("%s(%d)", p.Kind, p.Length)
	case KindThreshold:
		return fmt.Sprintf("%s(%s, %d, %d)", p.Kind, p.Metric, p.Min, p.Max)
	}
	return p.Kind.String()
}

// Select cuts v into spans. Spans are sub-slices of v and keep its order;
// concatenated they reproduce v, except that KindThreshold leaves rejected
// pixels out. rng is only used by KindRandom; nil falls back to the
// auto-seeded global source.
//
// Select panics if p is invalid.
func Select(v grid.View, p Policy, rng *rand.Rand) []grid.View {
	if err := p.Validate(); err != nil {
		panic("selection: " + err.Error())
	}

	switch p.Kind {
	case KindFull:
		return []grid.View{v}
	case KindFixed:
		return fixed(v, p.Length)
	case KindRandom:
		return random(v, p.Length, rng)
	default:
		return threshold(v, p)
	}
}

func fixed(v grid.View, n int) []grid.View {
	spans := make([]grid.View, 0, (len(v)+n-1)/n)
	for start := 0; start < len(v); start += n {
		end := min(start+n, len(v))
		spans = append(spans, v[start:end:end])
	}
	return spans
}

func random(v grid.View, bound int, rng *rand.Rand) []grid.View {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	var spans []grid.View
	for start := 0; start < len(v); {
		end := min(start+intN(bound), len(v))
		spans = append(spans, v[start:end:end])
		start = end
	}
	return spans
}

func threshold(v grid.View, p Policy) []grid.View {
	var spans []grid.View
	start := -1
	for i, px := range v {
		if p.Selects(px.Color()) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			spans = append(spans, v[start:i:i])
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, v[start:])
	}
	return spans
}
