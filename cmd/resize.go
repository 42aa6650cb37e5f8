package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/collagekit/collage/internal/collage"
	"github.com/collagekit/collage/pkg/imgio"
)

var resizeCmd = &cobra.Command{
	Use:   "resize IMAGE",
	Short: "Square-crop resize a single image",
	Long: `resize scales one image to fill a square of the given size and crops
the overflow around the center. The image is never stretched or letterboxed.

Examples:
  # Crop-resize to a 256x256 avatar
  collage resize --size 256 -o avatar.png portrait.jpg

  # Write to stdout
  collage resize --size 150 photo.jpg > thumb.png`,
	Args: cobra.ExactArgs(1),
	RunE: runResize,
}

func init() {
	rootCmd.AddCommand(resizeCmd)

	resizeCmd.Flags().Int("size", 0, "target width and height in pixels (required)")
	resizeCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	viper.BindPFlag("resize.size", resizeCmd.Flags().Lookup("size"))
	viper.BindPFlag("resize.output", resizeCmd.Flags().Lookup("output"))
}

func runResize(cmd *cobra.Command, args []string) error {
	size := viper.GetInt("resize.size")
	if size <= 0 {
		return fmt.Errorf("size must be positive (use --size)")
	}

	output := viper.GetString("resize.output")
	if output == "" {
		if stat, _ := os.Stdout.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
			return fmt.Errorf("didn't specify output file and standard output is a terminal")
		}
	}

	in := imgio.FromFile(args[0]).WithID(filepath.Base(args[0]))

	buf, err := collage.New().Resize(cmd.Context(), in, size)
	if err != nil {
		return err
	}

	return writeOutput(output, buf)
}
