// Package transform provides the whole-image operations surrounding the
// carve core: crop, transpose, rotation, mirroring, channel inversion, and
// flood fill. Each is a single pass over the grid with no algorithmic
// state; they consume and produce the same pixmap.Grid abstraction the
// carver mutates.
package transform

import (
	"fmt"

	"github.com/edd255/simp/internal/pixmap"
)

// Crop returns the sub-grid spanning columns [x1, x2) and rows [y1, y2).
//
// Bounds follow the usual half-open convention: (x1, y1) inclusive,
// (x2, y2) exclusive. Returns an error if the region is empty or falls
// outside the grid.
func Crop(g *pixmap.Grid, x1, x2, y1, y2 int) (*pixmap.Grid, error) {
	if x1 < 0 || y1 < 0 || x2 > g.Cols() || y2 > g.Rows() {
		return nil, fmt.Errorf("transform: crop region (%d,%d)-(%d,%d) outside %dx%d image",
			x1, y1, x2, y2, g.Cols(), g.Rows())
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("transform: invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	out, err := pixmap.New(y2-y1, x2-x1)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	for row := y1; row < y2; row++ {
		for col := x1; col < x2; col++ {
			out.Set(row-y1, col-x1, g.At(row, col))
		}
	}
	return out, nil
}

// Transpose returns the grid mirrored across its main diagonal: output
// (row, col) is input (col, row), swapping dimensions.
func Transpose(g *pixmap.Grid) *pixmap.Grid {
	out, _ := pixmap.New(g.Cols(), g.Rows())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			out.Set(col, row, g.At(row, col))
		}
	}
	return out
}

// Rotate90 returns the grid rotated a quarter turn clockwise.
func Rotate90(g *pixmap.Grid) *pixmap.Grid {
	out, _ := pixmap.New(g.Cols(), g.Rows())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			out.Set(col, g.Rows()-1-row, g.At(row, col))
		}
	}
	return out
}

// Rotate180 returns the grid rotated a half turn.
func Rotate180(g *pixmap.Grid) *pixmap.Grid {
	out, _ := pixmap.New(g.Rows(), g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			out.Set(g.Rows()-1-row, g.Cols()-1-col, g.At(row, col))
		}
	}
	return out
}

// Rotate270 returns the grid rotated a quarter turn counterclockwise.
func Rotate270(g *pixmap.Grid) *pixmap.Grid {
	out, _ := pixmap.New(g.Cols(), g.Rows())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			out.Set(g.Cols()-1-col, row, g.At(row, col))
		}
	}
	return out
}

// Rotate returns the grid rotated clockwise by the given multiple of 90
// degrees (90, 180, or 270).
func Rotate(g *pixmap.Grid, degrees int) (*pixmap.Grid, error) {
	switch degrees {
	case 90:
		return Rotate90(g), nil
	case 180:
		return Rotate180(g), nil
	case 270:
		return Rotate270(g), nil
	default:
		return nil, fmt.Errorf("transform: unsupported rotation %d, want 90, 180 or 270", degrees)
	}
}

// Mirror returns the grid flipped horizontally: output (row, col) is input
// (row, cols-1-col).
func Mirror(g *pixmap.Grid) *pixmap.Grid {
	out, _ := pixmap.New(g.Rows(), g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			out.Set(row, g.Cols()-1-col, g.At(row, col))
		}
	}
	return out
}

// Invert returns the grid with every channel of every pixel complemented.
func Invert(g *pixmap.Grid) *pixmap.Grid {
	out, _ := pixmap.New(g.Rows(), g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			out.Set(row, col, g.At(row, col).Invert())
		}
	}
	return out
}

// FloodFill repaints, in place, the 4-connected region of pixels matching
// the exact color at (x, y) with the fill color. x indexes columns, y rows.
//
// The fill walks an explicit stack rather than recursing, so region size is
// bounded by heap, not call depth. Filling a region with its own color is a
// no-op. Returns an error if the seed lies outside the grid.
func FloodFill(g *pixmap.Grid, x, y int, fill pixmap.Pixel) error {
	if x < 0 || x >= g.Cols() || y < 0 || y >= g.Rows() {
		return fmt.Errorf("transform: fill seed (%d,%d) outside %dx%d image", x, y, g.Cols(), g.Rows())
	}
	target := g.At(y, x)
	if target == fill {
		return nil
	}

	type point struct{ row, col int }
	stack := []point{{row: y, col: x}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if g.At(p.row, p.col) != target {
			continue
		}
		g.Set(p.row, p.col, fill)
		if p.col+1 < g.Cols() {
			stack = append(stack, point{p.row, p.col + 1})
		}
		if p.col > 0 {
			stack = append(stack, point{p.row, p.col - 1})
		}
		if p.row+1 < g.Rows() {
			stack = append(stack, point{p.row + 1, p.col})
		}
		if p.row > 0 {
			stack = append(stack, point{p.row - 1, p.col})
		}
	}
	return nil
}
