package paths

import "github.com/maax3v3/glitchsort/internal/grid"

// rectWalk walks outward from the centre in legs of right, down, left, up,
// growing the leg length by one every two turns. With stretch set the
// longer axis gets max(1, |w-h|) extra cells on each of its legs and the
// walk starts half of that back along it, so rings follow the aspect ratio
// of the grid. The walk is a simple path: every cell is visited at most once.
func rectWalk(g grid.Grid, stretch bool) [][]int {
	var ex, ey int
	if stretch {
		d := max(1, abs(g.Width-g.Height))
		if g.Width >= g.Height {
			ex = d
		} else {
			ey = d
		}
	}

	dirs := [4]cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	if ey > 0 {
		// Tall grids start downward so the stretched leg comes first.
		dirs = [4]cell{{0, 1}, {-1, 0}, {0, -1}, {1, 0}}
	}

	x, y := g.Width/2-ex/2, g.Height/2-ey/2
	s := newStrand(g, g.Len())
	s.add(x, y)

	d := 0
	for n := 1; n+ex <= g.Width+1 || n+ey <= g.Height+1; n++ {
		for turn := 0; turn < 2; turn++ {
			step := dirs[d]
			leg := n + ey
			if step.X != 0 {
				leg = n + ex
			}
			for i := 0; i < leg; i++ {
				x += step.X
				y += step.Y
				s.add(x, y)
			}
			d = (d + 1) % 4
		}
	}
	return [][]int{s.idx}
}
