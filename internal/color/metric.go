package color

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Metric selects the scalar a pixel is measured by when sorting or
// thresholding.
type Metric int

const (
	MetricHue        Metric = iota // hue in [0,360)
	MetricBrightness               // luma in [0,255]
	MetricSaturation               // HSV saturation scaled to [0,255]
	MetricDebug                    // constant 0
)

var metricNames = [...]string{
	MetricHue:        "hue",
	MetricBrightness: "brightness",
	MetricSaturation: "saturation",
	MetricDebug:      "debug",
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric resolves a metric by its name, case-insensitively.
func ParseMetric(name string) (Metric, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range metricNames {
		if n == name {
			return Metric(m), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q (supported: %s)", name, strings.Join(metricNames[:], ", "))
}

// Value measures c. The result always lies in [0, m.Buckets()).
func (m Metric) Value(c RGBA) int {
	switch m {
	case MetricHue:
		return Hue(c)
	case MetricBrightness:
		return Brightness(c)
	case MetricSaturation:
		return Saturation(c)
	case MetricDebug:
		return 0
	}
	panic(fmt.Sprintf("color: unknown metric %d", int(m)))
}

// Buckets returns the number of distinct values the metric can produce.
func (m Metric) Buckets() int {
	switch m {
	case MetricHue:
		return 360
	case MetricBrightness, MetricSaturation:
		return 256
	case MetricDebug:
		return 1
	}
	panic(fmt.Sprintf("color: unknown metric %d", int(m)))
}

// Hue returns the HSV hue of c in whole degrees. Grays, including black
// and white, have hue 0.
func Hue(c RGBA) int {
	if c.R == c.G && c.G == c.B {
		return 0
	}
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, _, _ := cf.Hsv()
	hue := int(h)
	if hue >= 360 {
		hue -= 360
	}
	return hue
}

// Brightness returns the Rec. 709 luma of c, truncated.
func Brightness(c RGBA) int {
	// Integer weights keep grays exact: 2126+7152+722 == 10000.
	return (2126*int(c.R) + 7152*int(c.G) + 722*int(c.B)) / 10000
}

// Saturation returns 255*(max-min)/max, or 0 for black.
func Saturation(c RGBA) int {
	hi, lo := maxMin(c)
	if hi == 0 {
		return 0
	}
	return 255 * int(hi-lo) / int(hi)
}
