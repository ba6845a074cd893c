// Package carve implements content-aware image shrinking by repeated seam
// removal.
//
// A seam is a connected path of one cell per scan line — one pixel per row
// for vertical seams, one per column for horizontal ones — whose cells are
// collectively the cheapest to remove. Cheapness is measured by energy, a
// dispensability score derived from color differences between neighboring
// pixels: pixels that blend into their surroundings carry little energy and
// go first.
//
// # Pipeline
//
// One removal runs three stages over the grid's active region:
//
//  1. ComputeEnergy derives per-cell local energy and folds it into
//     cumulative path energy with a forward dynamic-programming sweep
//     (branching factor 3, unit position steps per scan line).
//  2. MinEnergyEndpoint picks the cheapest terminal cell on the last scan
//     line; TraceSeam backtracks the path from it.
//  3. Carve shifts every scan line inward across the seam, shrinking the
//     active border by one.
//
// The active border separates live positions from ones already carved away;
// the pixel buffer itself is never reallocated. Energy grids are transient
// and rebuilt from scratch each iteration.
//
// # Determinism
//
// All arithmetic is integer (uint32 energy, int32 channel differences), and
// every tie — both in the endpoint argmin and in the backtrack — resolves
// by a fixed preference order. Two runs over the same input produce
// identical output.
//
// The package is purely in-memory and single-threaded; it performs no I/O
// and is driven by the ppm and transform collaborators through the CLI.
package carve
