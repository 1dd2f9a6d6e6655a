package paths

import (
	"image"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maax3v3/glitchsort/internal/grid"
)

var testSizes = [][2]int{
	{1, 1}, {1, 6}, {6, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 3}, {3, 5},
	{7, 2}, {8, 4}, {9, 4}, {10, 10}, {13, 7}, {16, 9},
}

// exactCover lists the modes whose strands partition the grid.
var exactCover = map[Mode]bool{
	AllHorizontally: true,
	AllVertically:   true,
	HorizontalLines: true,
	VerticalLines:   true,
	Diagonally:      true,
	SquareSpiral:    true,
	RectSpiral:      true,
	Hilbert:         true,
}

func flatten(strands [][]int) []int {
	var out []int
	for _, s := range strands {
		out = append(out, s...)
	}
	return out
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestGenerateInvariants(t *testing.T) {
	for _, mode := range Modes() {
		for _, size := range testSizes {
			w, h := size[0], size[1]
			strands := Generate(mode, w, h, Options{Angle: 30})
			if exactCover[mode] {
				require.NotEmpty(t, strands, "%s %dx%d", mode, w, h)
			}

			for _, s := range strands {
				require.NotEmpty(t, s, "%s %dx%d: empty strand", mode, w, h)
				for i, idx := range s {
					require.True(t, idx >= 0 && idx < w*h, "%s %dx%d: index %d out of range", mode, w, h, idx)
					if i > 0 {
						require.NotEqual(t, s[i-1], idx, "%s %dx%d: adjacent duplicate", mode, w, h)
					}
				}
			}
		}
	}
}

func TestGenerateExactCover(t *testing.T) {
	for mode := range exactCover {
		for _, size := range testSizes {
			w, h := size[0], size[1]
			all := flatten(Generate(mode, w, h, Options{Angle: 30}))
			sort.Ints(all)
			require.Equal(t, seq(w*h), all, "%s %dx%d", mode, w, h)
		}
	}
}

func TestPickedViewsAreExclusive(t *testing.T) {
	for _, mode := range Modes() {
		for _, size := range testSizes {
			w, h := size[0], size[1]
			a := grid.NewArena(image.NewRGBA(image.Rect(0, 0, w, h)))
			views := grid.Pick(a, Generate(mode, w, h, Options{Angle: 100}))

			seen := make(map[int]bool)
			for _, v := range views {
				for _, idx := range v.Indices() {
					require.False(t, seen[idx], "%s %dx%d: index %d in two views", mode, w, h, idx)
					seen[idx] = true
				}
			}
			if exactCover[mode] {
				assert.Len(t, seen, w*h, "%s %dx%d", mode, w, h)
			}
		}
	}
}

func TestGenerateDegenerate(t *testing.T) {
	for _, mode := range Modes() {
		assert.Nil(t, Generate(mode, 0, 5, Options{}), mode.String())
		assert.Nil(t, Generate(mode, 5, 0, Options{}), mode.String())
		assert.Nil(t, Generate(mode, 0, 0, Options{}), mode.String())
	}
}

func TestReverse(t *testing.T) {
	for _, mode := range Modes() {
		fwd := Generate(mode, 9, 4, Options{Angle: 20})
		rev := Generate(mode, 9, 4, Options{Angle: 20, Reverse: true})
		require.Len(t, rev, len(fwd), mode.String())
		for i := range rev {
			Reverse(rev[i])
			assert.Equal(t, fwd[i], rev[i], "%s strand %d", mode, i)
		}
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5}}, Generate(AllHorizontally, 3, 2, Options{}))
	assert.Equal(t, [][]int{{0, 3, 1, 4, 2, 5}}, Generate(AllVertically, 3, 2, Options{}))
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, Generate(HorizontalLines, 3, 2, Options{}))
	assert.Equal(t, [][]int{{0, 3}, {1, 4}, {2, 5}}, Generate(VerticalLines, 3, 2, Options{}))
	assert.Equal(t, [][]int{{2, 1, 0}, {5, 4, 3}}, Generate(HorizontalLines, 3, 2, Options{Reverse: true}))
}

func TestDiagonal(t *testing.T) {
	tests := []struct {
		angle float64
		want  [][]int
	}{
		{0, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}},
		{180, [][]int{{2, 1, 0}, {5, 4, 3}, {8, 7, 6}}},
		{90, [][]int{{6, 3, 0}, {7, 4, 1}, {8, 5, 2}}},
		{-270, [][]int{{6, 3, 0}, {7, 4, 1}, {8, 5, 2}}},
		{45, [][]int{{0}, {3, 1}, {6, 4, 2}, {7, 5}, {8}}},
		{135, [][]int{{2}, {5, 1}, {8, 4, 0}, {7, 3}, {6}}},
		{360, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Generate(Diagonally, 3, 3, Options{Angle: tt.angle}), "angle %v", tt.angle)
	}
}

func TestDiagonalCoversAtAnyAngle(t *testing.T) {
	for _, angle := range []float64{0, 10, 44.9, 45, 46, 60, 89, 91, 120, 134, 135, 136, 170, 200, 225, 250, 300, 359, -30, -100, -200} {
		for _, size := range testSizes {
			w, h := size[0], size[1]
			all := flatten(Generate(Diagonally, w, h, Options{Angle: angle}))
			sort.Ints(all)
			require.Equal(t, seq(w*h), all, "angle %v %dx%d", angle, w, h)
		}
	}
}

func TestFlipsDirection(t *testing.T) {
	assert.False(t, flipsDirection(0))
	assert.False(t, flipsDirection(45))
	assert.True(t, flipsDirection(46))
	assert.True(t, flipsDirection(180))
	assert.False(t, flipsDirection(225))
	assert.True(t, flipsDirection(-136))
	assert.False(t, flipsDirection(-135))
	assert.True(t, flipsDirection(-314))
	assert.False(t, flipsDirection(-315))
}

func TestHilbertCanonical(t *testing.T) {
	tests := []struct {
		w, h int
		want []int
	}{
		{4, 4, []int{0, 1, 5, 4, 8, 12, 13, 9, 10, 14, 15, 11, 7, 6, 2, 3}},
		{8, 4, []int{
			0, 1, 9, 8, 16, 24, 25, 17, 18, 26, 27, 19, 11, 10, 2, 3,
			4, 5, 13, 12, 20, 28, 29, 21, 22, 30, 31, 23, 15, 14, 6, 7,
		}},
		{3, 5, []int{0, 1, 2, 5, 4, 3, 6, 7, 8, 11, 14, 13, 10, 9, 12}},
		{5, 3, []int{0, 5, 10, 11, 6, 1, 2, 7, 12, 13, 14, 9, 8, 3, 4}},
		{2, 2, []int{0, 2, 3, 1}},
		{1, 4, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		got := Generate(Hilbert, tt.w, tt.h, Options{})
		require.Len(t, got, 1)
		assert.Equal(t, tt.want, got[0], "%dx%d", tt.w, tt.h)
	}
}

func TestHilbertLargeIsContinuous(t *testing.T) {
	const w, h = 37, 23
	s := Generate(Hilbert, w, h, Options{})[0]
	require.Len(t, s, w*h)
	for i := 1; i < len(s); i++ {
		x0, y0 := s[i-1]%w, s[i-1]/w
		x1, y1 := s[i]%w, s[i]/w
		// Odd sizes allow a single diagonal step, never a jump.
		assert.LessOrEqual(t, abs(x1-x0), 1, "step %d", i)
		assert.LessOrEqual(t, abs(y1-y0), 1, "step %d", i)
	}
}

func TestSquareSpiral(t *testing.T) {
	assert.Equal(t, [][]int{{4, 5, 8, 7, 6, 3, 0, 1, 2}}, Generate(SquareSpiral, 3, 3, Options{}))
	assert.Equal(t, [][]int{{5, 6, 7, 4, 0, 1, 2, 3}}, Generate(RectSpiral, 4, 2, Options{}))
}

func TestRays(t *testing.T) {
	got := Generate(Rays, 3, 3, Options{Workers: 4})
	want := [][]int{{4, 8}, {4, 2}, {4, 6}, {4, 1}, {4, 5}, {4, 7}, {4, 3}, {4, 0}}
	assert.Equal(t, want, got)
}

func TestSpreadOrder(t *testing.T) {
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7, 0}, spreadOrder(8))
	assert.Empty(t, spreadOrder(0))

	got := spreadOrder(101)
	sort.Ints(got)
	assert.Equal(t, seq(101), got)
}

func TestPerimeter(t *testing.T) {
	assert.Len(t, perimeter(grid.Grid{Width: 5, Height: 4}), 14)
	assert.Len(t, perimeter(grid.Grid{Width: 1, Height: 3}), 3)
	assert.Len(t, perimeter(grid.Grid{Width: 3, Height: 1}), 3)
	assert.Len(t, perimeter(grid.Grid{Width: 1, Height: 1}), 1)
}

func TestCircles(t *testing.T) {
	strands := Generate(Circles, 5, 5, Options{})
	require.NotEmpty(t, strands)

	// Radius 1: the right arc starts at the top and ends at the bottom.
	right := strands[0]
	assert.Equal(t, 7, right[0])
	assert.Equal(t, 17, right[len(right)-1])
	assert.Contains(t, right, 13)

	left := strands[1]
	assert.Equal(t, 7, left[0])
	assert.Contains(t, left, 11)
}

func TestSpiralStartsAtTop(t *testing.T) {
	strands := Generate(Spiral, 5, 5, Options{})
	require.Len(t, strands, 1)
	assert.Equal(t, 7, strands[0][0])
}

func TestParallelStrandsAreDeterministic(t *testing.T) {
	for _, mode := range []Mode{Circles, Spiral, Rays} {
		serial := Generate(mode, 31, 17, Options{Workers: 1})
		parallel := Generate(mode, 31, 17, Options{Workers: 8})
		assert.Equal(t, serial, parallel, mode.String())
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMode("Rect_Spiral")
	require.NoError(t, err)
	assert.Equal(t, RectSpiral, got)

	_, err = ParseMode("zigzag")
	require.Error(t, err)
}
