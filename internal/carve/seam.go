package carve

import "fmt"

// A Seam is one position per scan line, giving the cell removed from that
// line. Adjacent entries differ by at most one because the backtrack only
// ever steps left, straight, or right.
type Seam []int

// MinEnergyEndpoint returns the position on the last scan line with the
// smallest cumulative energy, considering positions in [0, border).
//
// The scan is a stable argmin: a position replaces the current best only
// when its energy is strictly lower, so ties resolve to the lowest
// position. Re-running on an unchanged Energy always yields the same
// answer.
func MinEnergyEndpoint(e *Energy, border int) (int, error) {
	if border < 1 || border > e.span {
		return 0, fmt.Errorf("carve: border %d outside [1, %d]: %w", border, e.span, ErrInvalidBorder)
	}
	last := e.steps - 1
	best := 0
	for pos := 1; pos < border; pos++ {
		if e.At(last, best) > e.At(last, pos) {
			best = pos
		}
	}
	return best, nil
}

// TraceSeam walks a seam backward from start on the last scan line to the
// first, choosing among the up-to-three predecessors of each cell.
//
// Ties prefer the straight predecessor, then the left one. Writing the
// predecessor energies as L (position-1), A (straight), and R (position+1),
// the interior decision is exactly:
//
//   - A == L: take A if A <= R, else R
//   - A <= R: take A if A <= L, else L
//   - A > R:  take L if L < A && L <= R; else A if A < L && A <= R; else R
//
// At position 0 only A and R exist (take A if A <= R), at border-1 only A
// and L (take A if A <= L). This table decides which of several equal-cost
// seams is produced and must not be reordered; carved output is
// deterministic because of it.
//
// A single-line grid yields the one-entry seam [start]. Returns
// ErrEmptySeam if the energy has no scan lines at all, ErrInvalidBorder if
// border or start fall outside the active region.
func TraceSeam(e *Energy, border, start int) (Seam, error) {
	if border < 1 || border > e.span {
		return nil, fmt.Errorf("carve: border %d outside [1, %d]: %w", border, e.span, ErrInvalidBorder)
	}
	if start < 0 || start >= border {
		return nil, fmt.Errorf("carve: start %d outside [0, %d): %w", start, border, ErrInvalidBorder)
	}
	if e.steps == 0 {
		return nil, fmt.Errorf("carve: %w", ErrEmptySeam)
	}

	seam := make(Seam, e.steps)
	seam[e.steps-1] = start
	for step := e.steps - 1; step >= 1; step-- {
		pos := seam[step]
		straight := e.At(step-1, pos)
		switch {
		case border == 1:
			seam[step-1] = pos
		case pos == 0:
			if straight <= e.At(step-1, pos+1) {
				seam[step-1] = pos
			} else {
				seam[step-1] = pos + 1
			}
		case pos == border-1:
			if straight <= e.At(step-1, pos-1) {
				seam[step-1] = pos
			} else {
				seam[step-1] = pos - 1
			}
		default:
			left := e.At(step-1, pos-1)
			right := e.At(step-1, pos+1)
			switch {
			case straight == left:
				if straight <= right {
					seam[step-1] = pos
				} else {
					seam[step-1] = pos + 1
				}
			case straight <= right:
				if straight <= left {
					seam[step-1] = pos
				} else {
					seam[step-1] = pos - 1
				}
			default:
				if left < straight && left <= right {
					seam[step-1] = pos - 1
				} else if straight < left && straight <= right {
					seam[step-1] = pos
				} else {
					seam[step-1] = pos + 1
				}
			}
		}
	}
	return seam, nil
}
