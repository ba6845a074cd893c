// Package pixmap defines the in-memory pixel model shared by every other
// package: an 8-bit RGB Pixel, the squared-channel-difference distance
// metric, and Grid, a mutable two-dimensional pixel buffer.
//
// # Coordinate System
//
// Grid coordinates are 0-based (row, col) with the origin at the top-left:
// rows increase downward, columns increase rightward. The buffer is a single
// flat row-major slice; all bounds checking happens in one index helper.
//
// # Ownership
//
// A Grid is exclusively owned by its caller. The carve and transform
// packages mutate it in place through a borrowed reference; nothing in this
// module shares a grid across goroutines.
package pixmap
