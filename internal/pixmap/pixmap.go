package pixmap

import (
	"fmt"
	"image"
	"image/color"
)

// Pixel is a single 8-bit-per-channel RGB value.
//
// Pixels carry no identity beyond their channel values; they are compared
// only through ColorDiff.
type Pixel struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
}

// Invert replaces each channel with its complement (255 - value).
func (p Pixel) Invert() Pixel {
	return Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B}
}

// ColorDiff returns the sum of squared per-channel differences between two
// pixels.
//
// Per-channel differences are computed in int32 (they span -255..255) and
// the squared sum in uint32. The maximum possible result is 3*255*255 =
// 195075, which fits a uint32 with room to spare; the widths are part of the
// contract, not an implementation convenience.
func ColorDiff(a, b Pixel) uint32 {
	dr := int32(a.R) - int32(b.R)
	dg := int32(a.G) - int32(b.G)
	db := int32(a.B) - int32(b.B)
	return uint32(dr*dr + dg*dg + db*db)
}

// Grid is a mutable rows x cols pixel buffer backed by a single flat
// row-major slice.
//
// The flat layout keeps the (row, col) -> index mapping in one place and the
// memory contiguous. A Grid owns no I/O; decoding and encoding live in the
// ppm package, and the carve and transform packages borrow the buffer
// through this type.
//
// Grid is not safe for concurrent mutation; callers own it exclusively for
// the duration of an edit.
type Grid struct {
	rows, cols int
	pix        []Pixel
}

// New allocates a zero-filled (black) grid of the given dimensions.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("pixmap: invalid dimensions %dx%d", rows, cols)
	}
	return &Grid{
		rows: rows,
		cols: cols,
		pix:  make([]Pixel, rows*cols),
	}, nil
}

// FromPixels builds a grid from a row-major pixel slice. The slice is used
// directly, not copied.
func FromPixels(rows, cols int, pix []Pixel) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("pixmap: invalid dimensions %dx%d", rows, cols)
	}
	if len(pix) != rows*cols {
		return nil, fmt.Errorf("pixmap: got %d pixels, want %d for %dx%d", len(pix), rows*cols, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, pix: pix}, nil
}

// Rows returns the number of pixel rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of pixel columns.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("pixmap: index (%d,%d) out of %dx%d", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// At returns the pixel at (row, col). Panics if the coordinates are outside
// the grid, mirroring slice indexing semantics.
func (g *Grid) At(row, col int) Pixel {
	return g.pix[g.index(row, col)]
}

// Set stores a pixel at (row, col).
func (g *Grid) Set(row, col int, p Pixel) {
	g.pix[g.index(row, col)] = p
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	pix := make([]Pixel, len(g.pix))
	copy(pix, g.pix)
	return &Grid{rows: g.rows, cols: g.cols, pix: pix}
}

// ToNRGBA converts the grid to a standard library image with full opacity.
// This is the bridge to image.Image consumers such as PNG encoding and the
// resampling and histogram libraries.
func (g *Grid) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.cols, g.rows))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := g.pix[row*g.cols+col]
			img.SetNRGBA(col, row, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// FromImage converts any image.Image into a grid, discarding alpha.
// 16-bit sources are reduced to 8 bits per channel.
func FromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	g, err := New(bounds.Dy(), bounds.Dx())
	if err != nil {
		return nil, err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, gc, b, _ := img.At(x, y).RGBA()
			g.Set(y-bounds.Min.Y, x-bounds.Min.X, Pixel{
				R: uint8(r >> 8),
				G: uint8(gc >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return g, nil
}
