package grid

import "github.com/maax3v3/glitchsort/internal/color"

// View is the ownership-bound form of a path: handles in path order.
type View []Pixel

// Indices returns the cell index of every handle, in order.
func (v View) Indices() []int {
	out := make([]int, len(v))
	for i, p := range v {
		out[i] = p.idx
	}
	return out
}

// Colors snapshots the current color of every handle, in order.
func (v View) Colors() []color.RGBA {
	out := make([]color.RGBA, len(v))
	for i, p := range v {
		out[i] = p.Color()
	}
	return out
}

// Pick binds paths to the arena's cells. It returns one View per path, in
// path order. Earlier paths win overlapping cells; indices that are out of
// range or already taken are dropped without error.
func Pick(a *Arena, paths [][]int) []View {
	views := make([]View, len(paths))
	for i, path := range paths {
		v := make(View, 0, len(path))
		for _, idx := range path {
			if p, ok := a.Take(idx); ok {
				v = append(v, p)
			}
		}
		views[i] = v
	}
	return views
}
