package command

import (
	"fmt"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
	lzss "github.com/woozymasta/lzss-generic"
)

type inspectCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	inputPath      string
	size           int
}

func newInspectCommandeer(rootCommandeer *RootCommandeer) *inspectCommandeer {
	commandeer := &inspectCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the tokens of a raw LZSS payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			if commandeer.size < 0 {
				return errors.New("Decompressed size is required (--size)")
			}

			// initialize root
			if err := rootCommandeer.initialize(cmd); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			return commandeer.inspect(cmd)
		},
	}

	cmd.Flags().StringVarP(&commandeer.inputPath, "input", "i", "-", "Input file (- for stdin)")
	cmd.Flags().IntVarP(&commandeer.size, "size", "s", -1, "Decompressed size in bytes")

	commandeer.cmd = cmd

	return commandeer
}

func (i *inspectCommandeer) inspect(cmd *cobra.Command) error {
	params := i.rootCommandeer.params

	compressed, err := readInput(cmd, i.inputPath)
	if err != nil {
		return errors.Wrap(err, "Failed to read input")
	}

	tokens, err := lzss.ParseTokens(compressed, i.size, params)
	if err != nil {
		return errors.Wrap(err, "Failed to parse tokens")
	}

	out := cmd.OutOrStdout()
	position := 0
	matches := 0
	for _, token := range tokens {
		fmt.Fprintf(out, "%8d %s\n", position, token)
		if token.Kind == lzss.Match {
			position += token.Length
			matches++
		} else {
			position++
		}
	}

	i.rootCommandeer.loggerInstance.DebugWith("Inspected",
		"tokens", len(tokens),
		"matches", matches,
		"literals", len(tokens)-matches)

	return nil
}
