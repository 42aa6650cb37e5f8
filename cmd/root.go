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

const version = "1.0.0"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "collage [flags] IMAGE...",
	Short: "Arrange images into a single square grid image",
	Long: `collage composes a set of images into one square grid image.

Every image is resized to a uniform tile with a cover-fit crop (scaled to
fill, overflow cropped around the center) and pasted onto a background
canvas, row by row. The grid side is the smallest square that holds all
images; trailing cells stay bare background. Output is always PNG.

Examples:
  # Compose four photos onto a 1024x1024 canvas
  collage -o wall.png photo1.jpg photo2.jpg photo3.jpg photo4.jpg

  # White background with 10px gaps between and around tiles
  collage --size 800 --padding 10 --background white -o grid.png *.png

  # Square-crop a single image to 256x256
  collage resize --size 256 -o avatar.png portrait.jpg

  # Start HTTP server
  collage serve --port 8080`,
	// If no subcommand is specified and we have args, compose a grid
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runCompose(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.collage.yaml)")

	// Composition flags
	rootCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().IntP("size", "s", 1024, "canvas width and height in pixels")
	rootCmd.Flags().Int("padding", 0, "pixels between and around tiles")
	rootCmd.Flags().StringP("background", "b", "transparent", "canvas background color (name or hex, e.g. '#1e1e2e')")

	// Bind flags to viper for root command
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("size", rootCmd.Flags().Lookup("size"))
	viper.BindPFlag("padding", rootCmd.Flags().Lookup("padding"))
	viper.BindPFlag("background", rootCmd.Flags().Lookup("background"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".collage" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".collage")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runCompose(cmd *cobra.Command, args []string) error {
	size := viper.GetInt("size")
	if size <= 0 {
		return fmt.Errorf("canvas size must be positive (use --size)")
	}

	padding := viper.GetInt("padding")
	if padding < 0 {
		return fmt.Errorf("padding must not be negative")
	}

	output := viper.GetString("output")
	if output == "" {
		if stat, _ := os.Stdout.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
			return fmt.Errorf("didn't specify output file and standard output is a terminal")
		}
	}

	inputs := make([]imgio.Input, 0, len(args))
	for _, path := range args {
		inputs = append(inputs, imgio.FromFile(path).WithID(filepath.Base(path)))
	}

	result, err := collage.New().Compose(cmd.Context(), inputs, collage.Options{
		Output:     size,
		Background: viper.GetString("background"),
		Padding:    padding,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Composed %d images into a %dx%d grid\n",
		result.Count, result.GridSize, result.GridSize)

	return writeOutput(output, result.Buffer)
}

// writeOutput writes the encoded image to a file, or to stdout when no path
// is given.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
