package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altunenes/scrambler"
)

var (
	// Used for flags.
	tileCells int
)

func init() {
	addTransformOptions(tilesCmd)
	addRegionOption(tilesCmd)
	tilesCmd.Flags().IntVarP(&tileCells, "cells", "c", 10, "Tile-count control (1-150): the image is divided into roughly cells x cells tiles. Larger values mean more, smaller tiles.")

	rootCmd.AddCommand(tilesCmd)
}

var tilesCmd = &cobra.Command{
	Use:   "tiles [input] [output]",
	Short: "Shuffle the image as a grid of tiles",
	Long:  "Partition the image into a grid of tiles and relocate every tile to a random grid slot.\n[input] is the image to scramble; [output] gets the result (format from extension: .png, .jpg).",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := transformArgs(cmd, args); err != nil {
			return err
		}
		if err := scrambler.ControlValue(tileCells).Validate(); err != nil {
			return newExitCodeError(fmt.Errorf("cells must be between %d and %d, got %d: %w",
				scrambler.ControlMin, scrambler.ControlMax, tileCells, err), ExitCodeInvalidArguments)
		}
		if _, err := parseRegion(regionSpec); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		region, _ := parseRegion(regionSpec)
		ts := scrambler.NewTileScrambler(scrambler.ControlValue(tileCells).TileCells())
		ts.Region = region
		ts.Rand = randSource()
		runTransform(cmd, args, ts.Apply)
	},
}
