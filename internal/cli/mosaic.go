package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altunenes/scrambler"
)

var (
	// Used for flags.
	mosaicCellSize int
)

func init() {
	addTransformOptions(mosaicCmd)
	mosaicCmd.Flags().IntVarP(&mosaicCellSize, "cell-size", "c", 10, "Side length of each mosaic block in pixels (1-150).")

	rootCmd.AddCommand(mosaicCmd)
}

var mosaicCmd = &cobra.Command{
	Use:   "mosaic [input] [output]",
	Short: "Flatten the image into uniform square blocks",
	Long:  "Partition the image into square blocks and fill each block with its top-left pixel's color.\n[input] is the image to mosaic; [output] gets the result (format from extension: .png, .jpg).",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := transformArgs(cmd, args); err != nil {
			return err
		}
		if err := scrambler.ControlValue(mosaicCellSize).Validate(); err != nil {
			return newExitCodeError(fmt.Errorf("cell-size must be between %d and %d, got %d: %w",
				scrambler.ControlMin, scrambler.ControlMax, mosaicCellSize, err), ExitCodeInvalidArguments)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		mb := scrambler.NewMosaicBlocker(scrambler.ControlValue(mosaicCellSize).CellSize())
		runTransform(cmd, args, mb.Apply)
	},
}
