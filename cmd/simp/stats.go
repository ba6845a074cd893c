package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edd255/simp/internal/ppm"
	"github.com/edd255/simp/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dimensions, brightness and color statistics of an image",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringP("input", "i", "", "Input PPM file")
	statsCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")

	img, err := ppm.Load(inputPath)
	if err != nil {
		return err
	}
	stats.Summarize(img).Print(os.Stdout)
	return nil
}
