package grid

import (
	"image"

	"github.com/maax3v3/glitchsort/internal/color"
)

// Pixel is an exclusive handle to one cell of an Arena's image.
// The zero Pixel is invalid.
type Pixel struct {
	idx int
	pix []uint8 // the cell's 4 bytes inside image.RGBA.Pix
}

// Index returns the row-major index of the cell.
func (p Pixel) Index() int {
	return p.idx
}

// Color reads the cell's current color.
func (p Pixel) Color() color.RGBA {
	return color.RGBA{R: p.pix[0], G: p.pix[1], B: p.pix[2], A: p.pix[3]}
}

// Set overwrites the cell's color.
func (p Pixel) Set(c color.RGBA) {
	p.pix[0] = c.R
	p.pix[1] = c.G
	p.pix[2] = c.B
	p.pix[3] = c.A
}

// SetRGB overwrites the color channels and leaves alpha alone.
func (p Pixel) SetRGB(c color.RGBA) {
	p.pix[0] = c.R
	p.pix[1] = c.G
	p.pix[2] = c.B
}

// Swap exchanges the colors of two cells.
func (p Pixel) Swap(q Pixel) {
	c := p.Color()
	p.Set(q.Color())
	q.Set(c)
}

// Arena owns the cells of one image for the duration of a picking pass.
// Take is the only way to obtain a Pixel, and each cell can be taken once.
type Arena struct {
	Grid
	img     *image.RGBA
	claimed []bool // row-major: index = y*Width + x
	taken   int
}

// NewArena wraps img without copying its pixels.
func NewArena(img *image.RGBA) *Arena {
	b := img.Bounds()
	g := Grid{Width: b.Dx(), Height: b.Dy()}
	return &Arena{
		Grid:    g,
		img:     img,
		claimed: make([]bool, g.Len()),
	}
}

// Take moves the handle for idx out of the arena. It reports false if idx
// is out of range or was already taken.
func (a *Arena) Take(idx int) (Pixel, bool) {
	if !a.Contains(idx) || a.claimed[idx] {
		return Pixel{}, false
	}
	a.claimed[idx] = true
	a.taken++

	x, y := a.Point(idx)
	b := a.img.Bounds()
	off := a.img.PixOffset(b.Min.X+x, b.Min.Y+y)
	return Pixel{idx: idx, pix: a.img.Pix[off : off+4 : off+4]}, true
}

// Claimed reports whether idx has been taken.
func (a *Arena) Claimed(idx int) bool {
	return a.Contains(idx) && a.claimed[idx]
}

// Taken returns how many cells have been handed out.
func (a *Arena) Taken() int {
	return a.taken
}
