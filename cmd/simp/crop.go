package main

import (
	"github.com/spf13/cobra"

	"github.com/edd255/simp/internal/ppm"
	"github.com/edd255/simp/internal/transform"
)

var cropCmd = &cobra.Command{
	Use:   "crop",
	Short: "Cut a rectangular region out of an image",
	RunE:  runCrop,
}

func init() {
	cropCmd.Flags().StringP("input", "i", "", "Input PPM file")
	cropCmd.Flags().StringP("output", "o", "", "Output PPM file")
	cropCmd.Flags().Int("x1", 0, "Left column (inclusive)")
	cropCmd.Flags().Int("x2", 0, "Right column (exclusive)")
	cropCmd.Flags().Int("y1", 0, "Top row (inclusive)")
	cropCmd.Flags().Int("y2", 0, "Bottom row (exclusive)")
	cropCmd.MarkFlagRequired("input")
	cropCmd.MarkFlagRequired("output")
	cropCmd.MarkFlagRequired("x2")
	cropCmd.MarkFlagRequired("y2")
	rootCmd.AddCommand(cropCmd)
}

func runCrop(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	x1, _ := cmd.Flags().GetInt("x1")
	x2, _ := cmd.Flags().GetInt("x2")
	y1, _ := cmd.Flags().GetInt("y1")
	y2, _ := cmd.Flags().GetInt("y2")

	img, err := ppm.Load(inputPath)
	if err != nil {
		return err
	}
	cropped, err := transform.Crop(img.Pixels, x1, x2, y1, y2)
	if err != nil {
		return err
	}
	img.Pixels = cropped
	return ppm.Save(outputPath, img)
}
