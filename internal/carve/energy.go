package carve

import (
	"fmt"

	"github.com/edd255/simp/internal/pixmap"
)

// Orientation selects the seam direction. The two directions run the same
// algorithm over transposed coordinates, so every function in this package
// works in scan-order terms: a "step" advances along the scan axis (rows for
// vertical seams, columns for horizontal ones) and a "position" indexes
// across it.
type Orientation int

const (
	// Vertical removes a column path, scanning rows top to bottom.
	Vertical Orientation = iota

	// Horizontal removes a row path, scanning columns left to right.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// steps returns the length of the scan axis.
func (o Orientation) steps(g *pixmap.Grid) int {
	if o == Vertical {
		return g.Rows()
	}
	return g.Cols()
}

// span returns the length of the axis the border shrinks along.
func (o Orientation) span(g *pixmap.Grid) int {
	if o == Vertical {
		return g.Cols()
	}
	return g.Rows()
}

func (o Orientation) pixel(g *pixmap.Grid, step, pos int) pixmap.Pixel {
	if o == Vertical {
		return g.At(step, pos)
	}
	return g.At(pos, step)
}

func (o Orientation) setPixel(g *pixmap.Grid, step, pos int, p pixmap.Pixel) {
	if o == Vertical {
		g.Set(step, pos, p)
	} else {
		g.Set(pos, step, p)
	}
}

// Energy is a grid of cumulative energy values in scan-order coordinates:
// steps x span, where only positions in [0, border) are meaningful. It is
// transient, recomputed from scratch for every seam removal.
type Energy struct {
	steps, span int
	cells       []uint32
}

// At returns the cumulative energy at the given step and position.
func (e *Energy) At(step, pos int) uint32 {
	return e.cells[step*e.span+pos]
}

func (e *Energy) set(step, pos int, v uint32) {
	e.cells[step*e.span+pos] = v
}

func (e *Energy) add(step, pos int, v uint32) {
	e.cells[step*e.span+pos] += v
}

// Steps returns the length of the scan axis the energy was computed over.
func (e *Energy) Steps() int { return e.steps }

// ComputeEnergy derives the cumulative energy of every cell in the active
// region of g, in two passes.
//
// The first pass assigns each cell its local energy: the color difference to
// its previous-position neighbor plus the difference to its previous-step
// neighbor. The origin cell has local energy 0; cells on the first scan line
// have only the position term, cells at position 0 only the step term.
//
// The second pass scans forward along the scan axis and adds to each cell
// the minimum cumulative energy among its up-to-three predecessors on the
// previous scan line (position-1, position, position+1, clipped to
// [0, border)). The last scan line then holds the minimum total energy of
// any full-length connected path ending at each position.
//
// border is the active width of the computation; positions at or beyond it
// are ignored. Returns ErrInvalidBorder if border is zero or exceeds the
// grid's span for this orientation.
func ComputeEnergy(g *pixmap.Grid, border int, o Orientation) (*Energy, error) {
	steps := o.steps(g)
	span := o.span(g)
	if border < 1 || border > span {
		return nil, fmt.Errorf("carve: border %d outside [1, %d]: %w", border, span, ErrInvalidBorder)
	}

	e := &Energy{steps: steps, span: span, cells: make([]uint32, steps*span)}

	// Local energy. The origin stays 0.
	for pos := 1; pos < border; pos++ {
		cur := o.pixel(g, 0, pos)
		e.set(0, pos, pixmap.ColorDiff(cur, o.pixel(g, 0, pos-1)))
	}
	for step := 1; step < steps; step++ {
		cur := o.pixel(g, step, 0)
		e.set(step, 0, pixmap.ColorDiff(cur, o.pixel(g, step-1, 0)))
	}
	for step := 1; step < steps; step++ {
		for pos := 1; pos < border; pos++ {
			cur := o.pixel(g, step, pos)
			e.set(step, pos,
				pixmap.ColorDiff(cur, o.pixel(g, step, pos-1))+
					pixmap.ColorDiff(cur, o.pixel(g, step-1, pos)))
		}
	}

	// Cumulative energy: each cell absorbs the cheapest of its
	// predecessors on the previous scan line.
	for step := 1; step < steps; step++ {
		for pos := 0; pos < border; pos++ {
			straight := e.At(step-1, pos)
			switch {
			case border == 1:
				e.add(step, pos, straight)
			case pos == 0:
				e.add(step, pos, min32(straight, e.At(step-1, pos+1)))
			case pos == border-1:
				e.add(step, pos, min32(straight, e.At(step-1, pos-1)))
			default:
				e.add(step, pos, min32(min32(straight, e.At(step-1, pos-1)), e.At(step-1, pos+1)))
			}
		}
	}

	return e, nil
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
