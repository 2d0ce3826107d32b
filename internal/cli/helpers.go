package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/altunenes/scrambler"
	"github.com/altunenes/scrambler/internal/imageio"
)

// Exit codes returned by the scrambler binary.
const (
	ExitCodeInvalidArguments = 1
	ExitCodeInvalidInput     = 2
	ExitCodeInvalidOutput    = 3
	ExitCodeTransformError   = 4
)

var (
	// Used for flags shared between transform commands.
	seed        int64
	regionSpec  string
	jpegQuality int
	maxDim      int
)

// addTransformOptions registers the flags every transform command
// shares.
func addTransformOptions(command *cobra.Command) {
	command.Flags().Int64VarP(&seed, "seed", "s", -1, "Random seed for reproducible output. Negative means a fresh random seed.")
	command.Flags().IntVarP(&jpegQuality, "jpeg-quality", "", 95, "Quality to use when the output is JPEG.")
	command.Flags().IntVarP(&maxDim, "max-dim", "", 0, "Downscale the input so neither dimension exceeds this. 0 disables.")
}

// addRegionOption registers the --region flag on commands supporting
// region-constrained variants.
func addRegionOption(command *cobra.Command) {
	command.Flags().StringVarP(&regionSpec, "region", "r", "", "Restrict the transform to a circle, as 'centerX,centerY,radius' in pixel coordinates. Empty means the whole image.")
}

// transformArgs validates the [input] [output] positional arguments.
func transformArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return newExitCodeError(err, ExitCodeInvalidArguments)
	}

	stat, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("could not open input file %s: %w", args[0], newExitCodeError(err, ExitCodeInvalidInput))
	}
	if stat.IsDir() {
		return newExitCodeError(fmt.Errorf("input %s is a directory", args[0]), ExitCodeInvalidInput)
	}

	return nil
}

// parseRegion parses the --region flag value. An empty value selects
// the whole image.
func parseRegion(spec string) (scrambler.Region, error) {
	if spec == "" {
		return scrambler.WholeImage(), nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return scrambler.Region{}, fmt.Errorf("region must be 'centerX,centerY,radius', got %q", spec)
	}

	vals := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return scrambler.Region{}, fmt.Errorf("invalid region component %q: %w", part, err)
		}
		vals[i] = v
	}
	if vals[2] < 0 {
		return scrambler.Region{}, fmt.Errorf("region radius must not be negative, got %v", vals[2])
	}

	return scrambler.Circle(vals[0], vals[1], vals[2]), nil
}

// randSource builds the transform's random source from the --seed flag.
func randSource() *rand.Rand {
	if seed < 0 {
		return nil
	}
	return scrambler.NewSeededRand(uint64(seed))
}

// runTransform loads args[0], applies the transform, and saves the
// result to args[1]. It factors out the decode/apply/encode shape every
// transform command shares.
func runTransform(cmd *cobra.Command, args []string, apply func(*scrambler.Pixmap) error) {
	pm, err := imageio.LoadImage(args[0])
	if err != nil {
		handleError(cmd, fmt.Errorf("could not load image %s: %w", args[0], err), ExitCodeInvalidInput)
		return
	}
	pm = imageio.FitWithin(pm, maxDim)

	if err := apply(pm); err != nil {
		handleError(cmd, fmt.Errorf("transform failed: %w", err), ExitCodeTransformError)
		return
	}

	if err := imageio.SaveImage(args[1], pm, jpegQuality); err != nil {
		handleError(cmd, fmt.Errorf("could not save image %s: %w", args[1], err), ExitCodeInvalidOutput)
		return
	}

	cmd.Printf("Wrote %s (%dx%d)\n", args[1], pm.Width(), pm.Height())
}

// ExitCodeError carries the process exit code alongside the original
// error.
type ExitCodeError struct {
	originalError error
	exitCode      int
}

func (e *ExitCodeError) Error() string {
	return e.originalError.Error()
}

// ExitCode returns the process exit code for the error.
func (e *ExitCodeError) ExitCode() int {
	return e.exitCode
}

func newExitCodeError(err error, code int) *ExitCodeError {
	return &ExitCodeError{
		originalError: err,
		exitCode:      code,
	}
}

func handleError(cmd *cobra.Command, err error, defaultCode int) {
	cmd.PrintErrln(err)

	errorCode := defaultCode

	exitCodeError := &ExitCodeError{}
	if errors.As(err, &exitCodeError) {
		errorCode = exitCodeError.ExitCode()
	}

	os.Exit(errorCode)
}
