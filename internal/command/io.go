package command

import (
	"io"
	"os"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

// readInput reads the whole input file, or the command's stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("Input path is required (use - for stdin)")
	}

	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(path)
}

// writeOutput writes data to the output file, or the command's stdout for "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		return errors.New("Output path is required (use - for stdout)")
	}

	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
