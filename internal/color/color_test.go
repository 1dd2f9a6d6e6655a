package color

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGBA
		wantErr bool
	}{
		{name: "6-digit black with hash", input: "#000000", want: RGBA{0, 0, 0, 255}},
		{name: "6-digit white with hash", input: "#FFFFFF", want: RGBA{255, 255, 255, 255}},
		{name: "6-digit lowercase", input: "#ff00ff", want: RGBA{255, 0, 255, 255}},
		{name: "6-digit without hash", input: "AB12CD", want: RGBA{0xAB, 0x12, 0xCD, 255}},
		{name: "3-digit color", input: "#F0A", want: RGBA{0xFF, 0x00, 0xAA, 255}},
		{name: "3-digit without hash", input: "abc", want: RGBA{0xAA, 0xBB, 0xCC, 255}},
		{name: "invalid length 4", input: "#FFFF", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "non-hex characters", input: "#ZZZZZZ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStdColorRoundTrip(t *testing.T) {
	original := RGBA{42, 128, 200, 255}
	assert.Equal(t, original, FromStdColor(original.ToStdColor()))
	assert.Equal(t, RGBA{255, 255, 255, 255}, FromStdColor(color.White))
	assert.Equal(t, "#2a80c8", original.String())
}

func TestHue(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want int
	}{
		{"black", RGBA{0, 0, 0, 255}, 0},
		{"white", RGBA{255, 255, 255, 255}, 0},
		{"mid gray", RGBA{128, 128, 128, 255}, 0},
		{"red", RGBA{255, 0, 0, 255}, 0},
		{"orange", RGBA{255, 128, 0, 255}, 30},
		{"yellow", RGBA{255, 255, 0, 255}, 60},
		{"green", RGBA{0, 255, 0, 255}, 120},
		{"blue", RGBA{0, 0, 255, 255}, 240},
		{"violet", RGBA{128, 0, 255, 255}, 270},
		{"magenta", RGBA{255, 0, 255, 255}, 300},
		{"red leaning blue", RGBA{255, 0, 1, 255}, 359},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hue(tt.c))
		})
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want int
	}{
		{"black", RGBA{0, 0, 0, 255}, 0},
		{"white", RGBA{255, 255, 255, 255}, 255},
		{"gray stays exact", RGBA{130, 130, 130, 255}, 130},
		{"red", RGBA{255, 0, 0, 255}, 54},
		{"green", RGBA{0, 255, 0, 255}, 182},
		{"blue", RGBA{0, 0, 255, 255}, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Brightness(tt.c))
		})
	}
}

func TestSaturation(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want int
	}{
		{"black", RGBA{0, 0, 0, 255}, 0},
		{"gray", RGBA{90, 90, 90, 255}, 0},
		{"pure red", RGBA{255, 0, 0, 255}, 255},
		{"half saturated", RGBA{200, 100, 100, 255}, 127},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Saturation(tt.c))
		})
	}
}

func TestMetricRanges(t *testing.T) {
	// Sweep a coarse cube of the RGB space.
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGBA{uint8(r), uint8(g), uint8(b), 255}
				for _, m := range []Metric{MetricHue, MetricBrightness, MetricSaturation, MetricDebug} {
					v := m.Value(c)
					require.GreaterOrEqual(t, v, 0, "%s of %s", m, c)
					require.Less(t, v, m.Buckets(), "%s of %s", m, c)
				}
			}
		}
	}
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric(" Brightness ")
	require.NoError(t, err)
	assert.Equal(t, MetricBrightness, m)
	assert.Equal(t, "brightness", m.String())

	_, err = ParseMetric("lightness")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lightness")
}
