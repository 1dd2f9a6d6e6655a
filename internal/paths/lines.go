package paths

import (
	"math"

	"github.com/maax3v3/glitchsort/internal/grid"
)

func allHorizontally(g grid.Grid) [][]int {
	s := make([]int, g.Len())
	for i := range s {
		s[i] = i
	}
	return [][]int{s}
}

func allVertically(g grid.Grid) [][]int {
	s := make([]int, 0, g.Len())
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			s = append(s, g.Index(x, y))
		}
	}
	return [][]int{s}
}

func horizontalLines(g grid.Grid) [][]int {
	out := make([][]int, g.Height)
	for y := range out {
		row := make([]int, g.Width)
		for x := range row {
			row[x] = g.Index(x, y)
		}
		out[y] = row
	}
	return out
}

func verticalLines(g grid.Grid) [][]int {
	out := make([][]int, g.Width)
	for x := range out {
		col := make([]int, g.Height)
		for y := range col {
			col[y] = g.Index(x, y)
		}
		out[x] = col
	}
	return out
}

// diagonal cuts the grid into parallel lines tilted by angle degrees.
//
// Shallow lines (|slope| <= 1) take exactly one cell per column and steep
// lines one cell per row, so the family partitions the grid without gaps.
// The anchor range is widened by the overhead a line needs to cross the
// whole grid, which generates the lines that enter through the top or left
// edge.
func diagonal(g grid.Grid, angle float64) [][]int {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	sin, cos := math.Sincos(a * math.Pi / 180)

	var out [][]int
	if a > 45 && a < 135 {
		// Screen y grows downward, so walking down moves x by -cot(a).
		k := -cos / sin
		over := int(math.Ceil(math.Abs(k) * float64(g.Height-1)))
		for x0 := -over; x0 < g.Width+over; x0++ {
			s := newStrand(g, g.Height)
			for y := 0; y < g.Height; y++ {
				s.add(x0+int(math.Round(float64(y)*k)), y)
			}
			if len(s.idx) > 0 {
				out = append(out, s.idx)
			}
		}
	} else {
		k := -sin / cos
		over := int(math.Ceil(math.Abs(k) * float64(g.Width-1)))
		for y0 := -over; y0 < g.Height+over; y0++ {
			s := newStrand(g, g.Width)
			for x := 0; x < g.Width; x++ {
				s.add(x, y0+int(math.Round(float64(x)*k)))
			}
			if len(s.idx) > 0 {
				out = append(out, s.idx)
			}
		}
	}

	if flipsDirection(angle) {
		for _, s := range out {
			Reverse(s)
		}
	}
	return out
}

// flipsDirection reports whether angle lies in (45°, 225°) modulo 360,
// where the natural walking direction of a line points against the angle.
func flipsDirection(angle float64) bool {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a > 45 && a < 225
}
