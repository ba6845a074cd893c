// Package stats summarizes an image: dimensions, mean brightness, channel
// means, and the HSL reading of the average color.
package stats

import (
	"fmt"
	"io"

	"github.com/anthonynsimon/bild/histogram"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/edd255/simp/internal/ppm"
)

// Summary holds the computed statistics of one image.
type Summary struct {
	Magic  string `json:"magic"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Brightness is the mean over all pixels of (R+G+B)/3, in integer
	// arithmetic.
	Brightness uint64 `json:"brightness"`

	// MeanR, MeanG and MeanB are per-channel means taken from the
	// channel histograms.
	MeanR float64 `json:"mean_r"`
	MeanG float64 `json:"mean_g"`
	MeanB float64 `json:"mean_b"`

	// Hue (0-360), Saturation and Lightness (0-1) of the mean color.
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// Summarize computes the summary of img.
func Summarize(img *ppm.Image) *Summary {
	grid := img.Pixels
	size := uint64(grid.Rows()) * uint64(grid.Cols())

	var brightness uint64
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			p := grid.At(row, col)
			brightness += (uint64(p.R) + uint64(p.G) + uint64(p.B)) / 3
		}
	}
	brightness /= size

	hist := histogram.NewRGBAHistogram(grid.ToNRGBA())
	meanR := binMean(hist.R.Bins)
	meanG := binMean(hist.G.Bins)
	meanB := binMean(hist.B.Bins)

	mean := colorful.Color{R: meanR / 255, G: meanG / 255, B: meanB / 255}
	h, s, l := mean.Hsl()

	return &Summary{
		Magic:      img.Magic,
		Width:      grid.Cols(),
		Height:     grid.Rows(),
		Brightness: brightness,
		MeanR:      meanR,
		MeanG:      meanG,
		MeanB:      meanB,
		Hue:        h,
		Saturation: s,
		Lightness:  l,
	}
}

// Print writes the summary in the aligned key/value layout of the original
// statistics output.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "Type:       %s\n", s.Magic)
	fmt.Fprintf(w, "Height:     %d\n", s.Height)
	fmt.Fprintf(w, "Width:      %d\n", s.Width)
	fmt.Fprintf(w, "Brightness: %d\n", s.Brightness)
	fmt.Fprintf(w, "Mean RGB:   %.1f %.1f %.1f\n", s.MeanR, s.MeanG, s.MeanB)
	fmt.Fprintf(w, "Mean HSL:   %.0f° %.2f %.2f\n", s.Hue, s.Saturation, s.Lightness)
}

// binMean returns the mean channel value of a 256-bin histogram.
func binMean(bins []int) float64 {
	var total, weighted uint64
	for value, count := range bins {
		total += uint64(count)
		weighted += uint64(value) * uint64(count)
	}
	if total == 0 {
		return 0
	}
	return float64(weighted) / float64(total)
}
