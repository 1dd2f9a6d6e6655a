// Package grid binds geometry-only index paths to the pixels of an image.
//
// Cells are addressed by their row-major index y*Width + x. An Arena hands
// out at most one Pixel handle per cell; a handle reads and writes the
// image's pixel memory directly, so once every handle is released the image
// already holds the result.
package grid

// Grid is the immutable size of a pixel raster.
type Grid struct {
	Width, Height int
}

// Len returns the number of cells, or 0 for a degenerate grid.
func (g Grid) Len() int {
	if g.Width <= 0 || g.Height <= 0 {
		return 0
	}
	return g.Width * g.Height
}

// Index flattens (x, y). It does not bounds-check.
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Point is the inverse of Index.
func (g Grid) Point(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// In reports whether (x, y) lies inside the grid.
func (g Grid) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether idx addresses a cell of the grid.
func (g Grid) Contains(idx int) bool {
	return idx >= 0 && idx < g.Len()
}
