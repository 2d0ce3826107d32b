package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altunenes/scrambler"
)

var (
	// Used for flags.
	fourierIntensity float64
	fourierPadding   string
)

func init() {
	addTransformOptions(fourierCmd)
	fourierCmd.Flags().Float64VarP(&fourierIntensity, "intensity", "i", 1.0, "Phase scrambling intensity in [0,1]: 0 leaves phases alone, 1 fully randomizes them.")
	fourierCmd.Flags().StringVarP(&fourierPadding, "padding", "p", "zero", "FFT padding mode: zero, reflect, or wrap.")

	rootCmd.AddCommand(fourierCmd)
}

func parsePadding(name string) (scrambler.PaddingMode, error) {
	switch name {
	case "zero":
		return scrambler.PaddingZero, nil
	case "reflect":
		return scrambler.PaddingReflect, nil
	case "wrap":
		return scrambler.PaddingWrap, nil
	default:
		return 0, fmt.Errorf("padding must be 'zero', 'reflect' or 'wrap', got %q", name)
	}
}

var fourierCmd = &cobra.Command{
	Use:   "fourier [input] [output]",
	Short: "Scramble the image's phase spectrum",
	Long:  "Randomize the phase of the image's frequency coefficients while preserving their magnitude, keeping the power spectrum intact.\n[input] is the image to scramble; [output] gets the result (format from extension: .png, .jpg).",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := transformArgs(cmd, args); err != nil {
			return err
		}
		if fourierIntensity < 0 || fourierIntensity > 1 {
			return newExitCodeError(fmt.Errorf("intensity must be in [0,1], got %v", fourierIntensity), ExitCodeInvalidArguments)
		}
		if _, err := parsePadding(fourierPadding); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		padding, _ := parsePadding(fourierPadding)

		fs := scrambler.NewFourierScrambler(fourierIntensity)
		fs.Padding = padding
		fs.Rand = randSource()
		runTransform(cmd, args, fs.Apply)
	},
}
