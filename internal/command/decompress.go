package command

import (
	"github.com/nuclio/errors"
	"github.com/pierrec/xxHash/xxHash32"
	"github.com/spf13/cobra"
	lzss "github.com/woozymasta/lzss-generic"
)

type decompressCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	inputPath      string
	outputPath     string
	size           int
}

func newDecompressCommandeer(rootCommandeer *RootCommandeer) *decompressCommandeer {
	commandeer := &decompressCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress a raw LZSS payload of known output size",
		RunE: func(cmd *cobra.Command, args []string) error {
			if commandeer.size < 0 {
				return errors.New("Decompressed size is required (--size)")
			}

			// initialize root
			if err := rootCommandeer.initialize(cmd); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			return commandeer.decompress(cmd)
		},
	}

	cmd.Flags().StringVarP(&commandeer.inputPath, "input", "i", "-", "Input file (- for stdin)")
	cmd.Flags().StringVarP(&commandeer.outputPath, "output", "o", "-", "Output file (- for stdout)")
	cmd.Flags().IntVarP(&commandeer.size, "size", "s", -1, "Decompressed size in bytes")

	commandeer.cmd = cmd

	return commandeer
}

func (d *decompressCommandeer) decompress(cmd *cobra.Command) error {
	params := d.rootCommandeer.params

	compressed, err := readInput(cmd, d.inputPath)
	if err != nil {
		return errors.Wrap(err, "Failed to read input")
	}

	win := lzss.AllocWindow(params)
	plain := make([]byte, d.size)
	consumed, err := lzss.DecompressInto(compressed, plain, win, params)
	if err != nil {
		return errors.Wrap(err, "Failed to decompress")
	}

	if err := writeOutput(cmd, d.outputPath, plain); err != nil {
		return errors.Wrap(err, "Failed to write output")
	}

	d.rootCommandeer.loggerInstance.InfoWith("Decompressed",
		"params", params.String(),
		"compressedSize", len(compressed),
		"consumed", consumed,
		"size", len(plain),
		"xxh32", xxHash32.Checksum(plain, 0))

	return nil
}
