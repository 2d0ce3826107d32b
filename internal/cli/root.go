// Package cli implements the scrambler command line interface. It is
// the thin collaborator around the engine: decode the input image, run
// one transform, re-encode the result.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/altunenes/scrambler"
)

var (
	// Used for flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scrambler",
	Short: "Obfuscate images with randomized pixel transforms",
	Long: `scrambler applies randomized, spatially-parameterized transforms to an
image: tile shuffling, mosaic blocking, noise injection, and Fourier
phase scrambling. Transforms can be restricted to a circular region.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			scrambler.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute executes the root command.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr.")
}
