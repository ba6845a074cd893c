package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edd255/simp/internal/carve"
	"github.com/edd255/simp/internal/ppm"
	"github.com/edd255/simp/internal/transform"
)

var carveCmd = &cobra.Command{
	Use:   "carve",
	Short: "Shrink an image by removing minimum-energy seams",
	RunE:  runCarve,
}

func init() {
	carveCmd.Flags().StringP("input", "i", "", "Input PPM file")
	carveCmd.Flags().StringP("output", "o", "", "Output PPM file")
	carveCmd.Flags().IntP("seams", "n", 1, "Number of seams to remove")
	carveCmd.Flags().StringP("direction", "d", "vertical", "Seam direction (vertical or horizontal)")
	carveCmd.MarkFlagRequired("input")
	carveCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(carveCmd)
}

func runCarve(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	seams, _ := cmd.Flags().GetInt("seams")
	direction, _ := cmd.Flags().GetString("direction")

	orientation, err := parseDirection(direction)
	if err != nil {
		return err
	}

	img, err := ppm.Load(inputPath)
	if err != nil {
		return err
	}

	if _, err := carve.Carve(img.Pixels, seams, orientation); err != nil {
		return err
	}

	// The grid keeps its allocated size; truncate to the live region.
	var cropped = img.Pixels
	if orientation == carve.Vertical {
		cropped, err = transform.Crop(img.Pixels, 0, img.Pixels.Cols()-seams, 0, img.Pixels.Rows())
	} else {
		cropped, err = transform.Crop(img.Pixels, 0, img.Pixels.Cols(), 0, img.Pixels.Rows()-seams)
	}
	if err != nil {
		return err
	}
	img.Pixels = cropped

	if err := ppm.Save(outputPath, img); err != nil {
		return err
	}
	fmt.Printf("Removed %d %s seams → %dx%d\n", seams, orientation, cropped.Cols(), cropped.Rows())
	return nil
}

func parseDirection(s string) (carve.Orientation, error) {
	switch s {
	case "vertical", "v":
		return carve.Vertical, nil
	case "horizontal", "h":
		return carve.Horizontal, nil
	default:
		return 0, fmt.Errorf("unknown direction %q, want vertical or horizontal", s)
	}
}
