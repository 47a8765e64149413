package command

import (
	"bytes"

	"github.com/nuclio/errors"
	"github.com/pierrec/xxHash/xxHash32"
	"github.com/spf13/cobra"
	lzss "github.com/woozymasta/lzss-generic"
)

type compressCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	inputPath      string
	outputPath     string
	verify         bool
}

func newCompressCommandeer(rootCommandeer *RootCommandeer) *compressCommandeer {
	commandeer := &compressCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress a file into a raw LZSS payload",
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(cmd); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			return commandeer.compress(cmd)
		},
	}

	cmd.Flags().StringVarP(&commandeer.inputPath, "input", "i", "-", "Input file (- for stdin)")
	cmd.Flags().StringVarP(&commandeer.outputPath, "output", "o", "-", "Output file (- for stdout)")
	cmd.Flags().BoolVarP(&commandeer.verify, "verify", "", false, "Decompress the result and compare digests")

	commandeer.cmd = cmd

	return commandeer
}

func (c *compressCommandeer) compress(cmd *cobra.Command) error {
	params := c.rootCommandeer.params
	loggerInstance := c.rootCommandeer.loggerInstance

	plain, err := readInput(cmd, c.inputPath)
	if err != nil {
		return errors.Wrap(err, "Failed to read input")
	}

	compressed, err := lzss.Compress(plain, params)
	if err != nil {
		return errors.Wrap(err, "Failed to compress")
	}

	digest := xxHash32.Checksum(plain, 0)

	if c.verify {
		roundTrip, err := lzss.Decompress(compressed, len(plain), params)
		if err != nil {
			return errors.Wrap(err, "Failed to decompress for verification")
		}

		if roundTripDigest := xxHash32.Checksum(roundTrip, 0); roundTripDigest != digest || !bytes.Equal(roundTrip, plain) {
			return errors.Errorf("Verification failed: digest 0x%08x, want 0x%08x", roundTripDigest, digest)
		}

		loggerInstance.DebugWith("Verified round trip", "xxh32", digest)
	}

	if err := writeOutput(cmd, c.outputPath, compressed); err != nil {
		return errors.Wrap(err, "Failed to write output")
	}

	loggerInstance.InfoWith("Compressed",
		"params", params.String(),
		"size", len(plain),
		"compressedSize", len(compressed),
		"ratio", ratio(len(compressed), len(plain)),
		"xxh32", digest)

	return nil
}

func ratio(compressed, plain int) float64 {
	if plain == 0 {
		return 0
	}

	return float64(compressed) / float64(plain)
}
