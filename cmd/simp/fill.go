package main

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/edd255/simp/internal/pixmap"
	"github.com/edd255/simp/internal/ppm"
	"github.com/edd255/simp/internal/transform"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Flood-fill the region around a point with a color",
	RunE:  runFill,
}

func init() {
	fillCmd.Flags().StringP("input", "i", "", "Input PPM file")
	fillCmd.Flags().StringP("output", "o", "", "Output PPM file")
	fillCmd.Flags().IntP("x", "x", 0, "Seed column (0-based)")
	fillCmd.Flags().IntP("y", "y", 0, "Seed row (0-based)")
	fillCmd.Flags().StringP("color", "c", "", "Fill color as #RRGGBB")
	fillCmd.MarkFlagRequired("input")
	fillCmd.MarkFlagRequired("output")
	fillCmd.MarkFlagRequired("color")
	rootCmd.AddCommand(fillCmd)
}

func runFill(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	hex, _ := cmd.Flags().GetString("color")

	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("parsing fill color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()

	img, err := ppm.Load(inputPath)
	if err != nil {
		return err
	}
	if err := transform.FloodFill(img.Pixels, x, y, pixmap.Pixel{R: r, G: g, B: b}); err != nil {
		return err
	}
	return ppm.Save(outputPath, img)
}
