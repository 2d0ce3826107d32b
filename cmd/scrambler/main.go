// Command scrambler applies randomized obfuscation transforms to images.
package main

import (
	"errors"
	"os"

	"github.com/altunenes/scrambler/internal/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		exitCodeError := &cli.ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		}
		os.Exit(cli.ExitCodeInvalidArguments)
	}
}
