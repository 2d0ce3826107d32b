package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altunenes/scrambler"
)

var (
	// Used for flags.
	noiseStrength int
	noiseModeName string
)

func init() {
	addTransformOptions(noiseCmd)
	addRegionOption(noiseCmd)
	noiseCmd.Flags().IntVarP(&noiseStrength, "strength", "n", 50, "Noise strength control (1-150), applied as strength/100 per-pixel probability, capped at 1.")
	noiseCmd.Flags().StringVarP(&noiseModeName, "mode", "m", "color", "Noise mode: 'color' replaces pixels with random colors, 'swap' copies colors from random pixels.")

	rootCmd.AddCommand(noiseCmd)
}

func parseNoiseMode(name string) (scrambler.NoiseMode, error) {
	switch name {
	case "color":
		return scrambler.NoiseRandomColor, nil
	case "swap":
		return scrambler.NoisePixelSwap, nil
	default:
		return 0, fmt.Errorf("mode must be 'color' or 'swap', got %q", name)
	}
}

var noiseCmd = &cobra.Command{
	Use:   "noise [input] [output]",
	Short: "Replace random pixels with noise",
	Long:  "Replace each pixel, with the given probability, either with a random color or with the color of another randomly chosen pixel.\n[input] is the image to degrade; [output] gets the result (format from extension: .png, .jpg).",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := transformArgs(cmd, args); err != nil {
			return err
		}
		if err := scrambler.ControlValue(noiseStrength).Validate(); err != nil {
			return newExitCodeError(fmt.Errorf("strength must be between %d and %d, got %d: %w",
				scrambler.ControlMin, scrambler.ControlMax, noiseStrength, err), ExitCodeInvalidArguments)
		}
		if _, err := parseNoiseMode(noiseModeName); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}
		if _, err := parseRegion(regionSpec); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		mode, _ := parseNoiseMode(noiseModeName)
		region, _ := parseRegion(regionSpec)

		ni := scrambler.NewNoiseInjector(scrambler.ControlValue(noiseStrength).Ratio(), mode)
		ni.Region = region
		ni.Rand = randSource()
		runTransform(cmd, args, ni.Apply)
	},
}
