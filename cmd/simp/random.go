package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/edd255/simp/internal/pixmap"
	"github.com/edd255/simp/internal/ppm"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a uniformly random test image",
	RunE:  runRandom,
}

func init() {
	randomCmd.Flags().StringP("output", "o", "", "Output PPM file")
	randomCmd.Flags().Int("width", 1000, "Image width in pixels")
	randomCmd.Flags().Int("height", 1000, "Image height in pixels")
	randomCmd.Flags().Int64("seed", 0, "Random seed (0 uses a random one)")
	randomCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	seed, _ := cmd.Flags().GetInt64("seed")

	rng := rand.New(rand.NewSource(seed))
	if seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	pix := make([]pixmap.Pixel, 0, width*height)
	for i := 0; i < width*height; i++ {
		pix = append(pix, pixmap.Pixel{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		})
	}
	grid, err := pixmap.FromPixels(height, width, pix)
	if err != nil {
		return err
	}
	return ppm.Save(outputPath, &ppm.Image{Magic: ppm.MagicP3, MaxVal: 255, Pixels: grid})
}
