package carve

import (
	"fmt"

	"github.com/edd255/simp/internal/pixmap"
)

// Carve removes n minimum-energy seams from g in place and returns the
// resulting active width (Vertical) or height (Horizontal).
//
// Each iteration is independent: the energy grid is recomputed from scratch
// over the current active border, the cheapest endpoint on the last scan
// line is located, the seam is traced backward, and every scan line shifts
// its cells beyond the seam one position inward to close the gap. The border
// then shrinks by one and the next iteration starts.
//
// The grid keeps its allocated dimensions; after a successful call only the
// first span-n positions of each scan line are meaningful and the caller is
// expected to crop before serializing. Cost is O(n * steps * span) in the
// worst case.
//
// Returns ErrInsufficientDimension, without touching the grid, if n is
// negative or leaves no room along the seam axis (n >= span).
func Carve(g *pixmap.Grid, n int, o Orientation) (int, error) {
	span := o.span(g)
	if n < 0 || n >= span {
		return span, fmt.Errorf("carve: cannot remove %d %s seams from span %d: %w", n, o, span, ErrInsufficientDimension)
	}

	border := span
	for i := 0; i < n; i++ {
		energy, err := ComputeEnergy(g, border, o)
		if err != nil {
			return border, err
		}
		start, err := MinEnergyEndpoint(energy, border)
		if err != nil {
			return border, err
		}
		seam, err := TraceSeam(energy, border, start)
		if err != nil {
			return border, err
		}
		removeSeam(g, border, seam, o)
		border--
	}
	return border, nil
}

// removeSeam closes the gap left by seam: on every scan line, cells beyond
// the seam position shift one step toward it. Cells at or beyond the border
// are already dead and stay untouched.
func removeSeam(g *pixmap.Grid, border int, seam Seam, o Orientation) {
	steps := o.steps(g)
	for step := 0; step < steps; step++ {
		for pos := seam[step]; pos < border-1; pos++ {
			o.setPixel(g, step, pos, o.pixel(g, step, pos+1))
		}
	}
}
