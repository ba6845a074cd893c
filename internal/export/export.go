// Package export serializes a pixel grid to binary raster formats for use
// outside the PPM toolchain.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"

	"github.com/edd255/simp/internal/pixmap"
)

// PNG encodes g as a PNG stream, optionally rescaled.
//
// A scale of 1.0 (or 0) writes the grid at its native size; any other
// positive factor resamples with a Lanczos filter before encoding.
func PNG(w io.Writer, g *pixmap.Grid, scale float64) error {
	if scale < 0 {
		return fmt.Errorf("export: negative scale %v", scale)
	}

	var img image.Image = g.ToNRGBA()
	if scale != 0 && scale != 1.0 {
		width := int(float64(g.Cols()) * scale)
		height := int(float64(g.Rows()) * scale)
		if width < 1 || height < 1 {
			return fmt.Errorf("export: scale %v collapses %dx%d image", scale, g.Cols(), g.Rows())
		}
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encoding png: %w", err)
	}
	return nil
}

// SavePNG writes g as a PNG file at path. See PNG for the scale semantics.
func SavePNG(path string, g *pixmap.Grid, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	if err := PNG(f, g, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: closing %s: %w", path, err)
	}
	return nil
}
