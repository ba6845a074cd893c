package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edd255/simp/internal/pixmap"
)

// MagicP3 identifies the plain-text (ASCII) portable pixmap format.
const MagicP3 = "P3"

// Image is a decoded portable pixmap: the header fields plus the pixel grid.
//
// Magic is the format tag ("P3" for ASCII pixmaps) and MaxVal the maximum
// value a single channel may take, 255 for the 8-bit images this tool works
// with.
type Image struct {
	Magic  string
	MaxVal uint8
	Pixels *pixmap.Grid
}

// Decode reads a plain-text PPM image from r.
//
// The header is the magic tag, the width and height, and the maximum channel
// value, in that order; the body is whitespace-separated decimal RGB
// triples, row by row. Comment lines and trailing comments introduced by '#'
// are skipped, as the format allows.
//
// # Errors
//
//   - the magic tag is not "P3"
//   - the header is truncated or a field is not a valid number
//   - the maximum channel value is zero or exceeds 255
//   - the body holds fewer values than width*height*3, or a value is not a
//     valid channel number
func Decode(r io.Reader) (*Image, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(scanTokens)

	magic, err := nextToken(sc)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading magic tag: %w", err)
	}
	if magic != MagicP3 {
		return nil, fmt.Errorf("ppm: unsupported magic tag %q, want %q", magic, MagicP3)
	}

	width, err := headerInt(sc, "width")
	if err != nil {
		return nil, err
	}
	height, err := headerInt(sc, "height")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	maxVal, err := headerInt(sc, "max channel value")
	if err != nil {
		return nil, err
	}
	if maxVal <= 0 || maxVal > 255 {
		return nil, fmt.Errorf("ppm: max channel value %d outside 1-255", maxVal)
	}

	pix := make([]pixmap.Pixel, 0, width*height)
	for i := 0; i < width*height; i++ {
		r, err := channel(sc, maxVal)
		if err != nil {
			return nil, fmt.Errorf("ppm: pixel %d red: %w", i, err)
		}
		g, err := channel(sc, maxVal)
		if err != nil {
			return nil, fmt.Errorf("ppm: pixel %d green: %w", i, err)
		}
		b, err := channel(sc, maxVal)
		if err != nil {
			return nil, fmt.Errorf("ppm: pixel %d blue: %w", i, err)
		}
		pix = append(pix, pixmap.Pixel{R: r, G: g, B: b})
	}

	grid, err := pixmap.FromPixels(height, width, pix)
	if err != nil {
		return nil, fmt.Errorf("ppm: %w", err)
	}
	return &Image{Magic: magic, MaxVal: uint8(maxVal), Pixels: grid}, nil
}

// Encode writes img to w in plain-text PPM form: the three header lines
// followed by one image row per text line, channels padded to three digits
// the way the original files are laid out.
func Encode(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	grid := img.Pixels
	fmt.Fprintln(bw, img.Magic)
	fmt.Fprintf(bw, "%d %d\n", grid.Cols(), grid.Rows())
	fmt.Fprintln(bw, img.MaxVal)
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			p := grid.At(row, col)
			fmt.Fprintf(bw, "%3d %3d %3d ", p.R, p.G, p.B)
		}
		fmt.Fprintln(bw)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: writing image: %w", err)
	}
	return nil
}

// Load decodes the PPM file at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ppm: opening %s: %w", path, err)
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ppm: decoding %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img to the file at path, creating or truncating it.
func Save(path string, img *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: creating %s: %w", path, err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ppm: closing %s: %w", path, err)
	}
	return nil
}

// scanTokens is a bufio.SplitFunc yielding whitespace-separated tokens with
// '#' comments removed through the end of their line.
func scanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		c := data[start]
		switch {
		case c == '#':
			// Skip to end of line.
			for start < len(data) && data[start] != '\n' {
				start++
			}
			if start == len(data) && !atEOF {
				return 0, nil, nil
			}
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			start++
		default:
			end := start
			for end < len(data) && !isSpaceOrHash(data[end]) {
				end++
			}
			if end == len(data) && !atEOF {
				return start, nil, nil
			}
			return end, data[start:end], nil
		}
	}
	if atEOF {
		return len(data), nil, nil
	}
	return start, nil, nil
}

func isSpaceOrHash(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '#'
}

func nextToken(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(sc.Text()), nil
}

func headerInt(sc *bufio.Scanner, field string) (int, error) {
	tok, err := nextToken(sc)
	if err != nil {
		return 0, fmt.Errorf("ppm: reading %s: %w", field, err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("ppm: parsing %s %q: %w", field, tok, err)
	}
	return n, nil
}

func channel(sc *bufio.Scanner, maxVal int) (uint8, error) {
	tok, err := nextToken(sc)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("parsing channel %q: %w", tok, err)
	}
	if n < 0 || n > maxVal {
		return 0, fmt.Errorf("channel value %d outside 0-%d", n, maxVal)
	}
	return uint8(n), nil
}
