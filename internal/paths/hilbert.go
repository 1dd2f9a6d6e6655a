package paths

import "github.com/maax3v3/glitchsort/internal/grid"

// hilbert returns the generalized Hilbert ("gilbert") curve over g, which
// fills arbitrary rectangles, not only powers of two. The curve starts at
// the top-left corner and runs along the longer side.
func hilbert(g grid.Grid) [][]int {
	s := newStrand(g, g.Len())
	if g.Width >= g.Height {
		s.gilbert(0, 0, g.Width, 0, 0, g.Height)
	} else {
		s.gilbert(0, 0, 0, g.Height, g.Width, 0)
	}
	return [][]int{s.idx}
}

// gilbert fills the rectangle at (x, y) spanned by the major axis (ax, ay)
// and the minor axis (bx, by). Exactly one component of each axis is
// non-zero.
func (s *strand) gilbert(x, y, ax, ay, bx, by int) {
	w := abs(ax + ay)
	h := abs(bx + by)
	dax, day := sign(ax), sign(ay)
	dbx, dby := sign(bx), sign(by)

	if h == 1 {
		for i := 0; i < w; i++ {
			s.add(x, y)
			x, y = x+dax, y+day
		}
		return
	}
	if w == 1 {
		for i := 0; i < h; i++ {
			s.add(x, y)
			x, y = x+dbx, y+dby
		}
		return
	}

	// Halving must round toward negative infinity: the axes of mirrored
	// sub-rectangles are negative.
	ax2, ay2 := floorHalf(ax), floorHalf(ay)
	bx2, by2 := floorHalf(bx), floorHalf(by)
	w2 := abs(ax2 + ay2)
	h2 := abs(bx2 + by2)

	if 2*w > 3*h {
		// Long rectangle: two halves along the major axis. Even halves
		// keep the sub-curves' endpoints on the right corners.
		if w2%2 != 0 && w > 2 {
			ax2, ay2 = ax2+dax, ay2+day
		}
		s.gilbert(x, y, ax2, ay2, bx, by)
		s.gilbert(x+ax2, y+ay2, ax-ax2, ay-ay2, bx, by)
		return
	}

	if h2%2 != 0 && h > 2 {
		bx2, by2 = bx2+dbx, by2+dby
	}
	// Up into the first corner, across the long middle, down the mirrored
	// corner.
	s.gilbert(x, y, bx2, by2, ax2, ay2)
	s.gilbert(x+bx2, y+by2, ax, ay, bx-bx2, by-by2)
	s.gilbert(x+(ax-dax)+(bx2-dbx), y+(ay-day)+(by2-dby), -bx2, -by2, -(ax - ax2), -(ay - ay2))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func floorHalf(v int) int {
	if v < 0 {
		return -((-v + 1) / 2)
	}
	return v / 2
}
