package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edd255/simp/internal/pixmap"
	"github.com/edd255/simp/internal/ppm"
	"github.com/edd255/simp/internal/transform"
)

// The one-pass geometric and channel transforms share the same shape: load,
// map the grid, save.

var transposeCmd = &cobra.Command{
	Use:   "transpose",
	Short: "Mirror an image across its main diagonal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGridOp(cmd, func(g *pixmap.Grid) *pixmap.Grid {
			return transform.Transpose(g)
		})
	},
}

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate an image clockwise by 90, 180 or 270 degrees",
	RunE: func(cmd *cobra.Command, args []string) error {
		degrees, _ := cmd.Flags().GetInt("degrees")
		if degrees != 90 && degrees != 180 && degrees != 270 {
			return fmt.Errorf("unsupported rotation %d, want 90, 180 or 270", degrees)
		}
		return runGridOp(cmd, func(g *pixmap.Grid) *pixmap.Grid {
			rotated, _ := transform.Rotate(g, degrees)
			return rotated
		})
	},
}

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Flip an image horizontally",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGridOp(cmd, func(g *pixmap.Grid) *pixmap.Grid {
			return transform.Mirror(g)
		})
	},
}

var invertCmd = &cobra.Command{
	Use:   "invert",
	Short: "Complement every color channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGridOp(cmd, func(g *pixmap.Grid) *pixmap.Grid {
			return transform.Invert(g)
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{transposeCmd, rotateCmd, mirrorCmd, invertCmd} {
		cmd.Flags().StringP("input", "i", "", "Input PPM file")
		cmd.Flags().StringP("output", "o", "", "Output PPM file")
		cmd.MarkFlagRequired("input")
		cmd.MarkFlagRequired("output")
		rootCmd.AddCommand(cmd)
	}
	rotateCmd.Flags().Int("degrees", 180, "Clockwise rotation (90, 180 or 270)")
}

func runGridOp(cmd *cobra.Command, op func(*pixmap.Grid) *pixmap.Grid) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	img, err := ppm.Load(inputPath)
	if err != nil {
		return err
	}
	img.Pixels = op(img.Pixels)
	return ppm.Save(outputPath, img)
}
