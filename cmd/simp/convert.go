package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edd255/simp/internal/export"
	"github.com/edd255/simp/internal/ppm"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Export a PPM image as PNG, optionally rescaled",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input PPM file")
	convertCmd.Flags().StringP("output", "o", "", "Output PNG file")
	convertCmd.Flags().Float64("scale", 1.0, "Scale factor (e.g. 2.0 to double size)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	scale, _ := cmd.Flags().GetFloat64("scale")

	img, err := ppm.Load(inputPath)
	if err != nil {
		return err
	}
	if err := export.SavePNG(outputPath, img.Pixels, scale); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", outputPath)
	return nil
}
