package paths

import (
	"math"
	"sync"

	"github.com/maax3v3/glitchsort/internal/grid"
)

// maxRadius is the largest radius Circles and Spiral draw for g.
func maxRadius(g grid.Grid) int {
	diag := math.Sqrt(float64(g.Width*g.Width + g.Height*g.Height))
	return int(math.Ceil(diag)) / 2
}

// polar samples the point at radius r and angle theta around the grid
// centre, rounded to the nearest cell.
func (s *strand) polar(r int, theta float64) {
	cx, cy := s.g.Width/2, s.g.Height/2
	sin, cos := math.Sincos(theta)
	s.add(cx+int(math.Round(float64(r)*cos)), cy+int(math.Round(float64(r)*sin)))
}

// circles emits, for every radius, the right half-circle and then the left
// half-circle, both running from the top to the bottom of the circle.
func circles(g grid.Grid, workers int) [][]int {
	n := maxRadius(g)
	return fanOut(2*n, workers, func(i int) []int {
		r := i/2 + 1
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		steps := 8 * r
		s := newStrand(g, steps+1)
		for k := 0; k <= steps; k++ {
			s.polar(r, -math.Pi/2+dir*math.Pi*float64(k)/float64(steps))
		}
		return s.idx
	})
}

// spiral concatenates full turns of growing radius into a single strand.
func spiral(g grid.Grid, workers int) [][]int {
	turns := fanOut(maxRadius(g), workers, func(i int) []int {
		r := i + 1
		steps := 16 * r
		s := newStrand(g, steps)
		for k := 0; k < steps; k++ {
			s.polar(r, -math.Pi/2+2*math.Pi*float64(k)/float64(steps))
		}
		return s.idx
	})

	total := 0
	for _, t := range turns {
		total += len(t)
	}
	out := make([]int, 0, total)
	for _, t := range turns {
		out = append(out, t...)
	}
	return [][]int{out}
}

// rays walks from the centre to every perimeter cell. Rays are emitted in
// spread order so that consecutive rays land far apart on the perimeter.
func rays(g grid.Grid, workers int) [][]int {
	targets := perimeter(g)
	order := spreadOrder(len(targets))
	cx, cy := g.Width/2, g.Height/2

	return fanOut(len(order), workers, func(i int) []int {
		t := targets[order[i]]
		dx, dy := t.X-cx, t.Y-cy
		steps := max(abs(dx), abs(dy))
		if steps == 0 {
			return []int{g.Index(cx, cy)}
		}
		s := newStrand(g, steps+1)
		for k := 0; ; k++ {
			x := cx + int(math.Round(float64(k*dx)/float64(steps)))
			y := cy + int(math.Round(float64(k*dy)/float64(steps)))
			if !g.In(x, y) {
				break
			}
			s.add(x, y)
		}
		return s.idx
	})
}

type cell struct{ X, Y int }

// perimeter lists the border cells clockwise, starting at the top-left
// corner.
func perimeter(g grid.Grid) []cell {
	w, h := g.Width, g.Height
	out := make([]cell, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		out = append(out, cell{x, 0})
	}
	for y := 1; y < h; y++ {
		out = append(out, cell{w - 1, y})
	}
	if h > 1 {
		for x := w - 2; x >= 0; x-- {
			out = append(out, cell{x, h - 1})
		}
	}
	if w > 1 {
		for y := h - 2; y >= 1; y-- {
			out = append(out, cell{0, y})
		}
	}
	return out
}

// spreadOrder returns a permutation of [0, n) that visits midpoints of
// ever smaller intervals breadth-first: 4, 2, 6, 1, 3, 5, 7, 0 for n = 8.
func spreadOrder(n int) []int {
	type span struct{ lo, hi int }
	out := make([]int, 0, n)
	queue := []span{{0, n}}
	for len(queue) > 0 {
		sp := queue[0]
		queue = queue[1:]
		if sp.lo >= sp.hi {
			continue
		}
		mid := (sp.lo + sp.hi) / 2
		out = append(out, mid)
		queue = append(queue, span{sp.lo, mid}, span{mid + 1, sp.hi})
	}
	return out
}

// fanOut computes n independent strands on up to workers goroutines.
// Strand i always lands at index i, whichever worker finishes first.
func fanOut(n, workers int, strandAt func(i int) []int) [][]int {
	out := make([][]int, n)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := range out {
			out[i] = strandAt(i)
		}
		return out
	}

	work := make(chan int, n)
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				out[i] = strandAt(i)
			}
		}()
	}
	wg.Wait()
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
