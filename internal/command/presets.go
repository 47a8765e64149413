package command

import (
	"fmt"

	"github.com/spf13/cobra"
	lzss "github.com/woozymasta/lzss-generic"
)

type presetsCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newPresetsCommandeer(rootCommandeer *RootCommandeer) *presetsCommandeer {
	commandeer := &presetsCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the named parameter sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range lzss.PresetNames() {
				params, err := lzss.LookupPreset(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%-8s %s\n", name, params)
			}

			return nil
		},
	}

	commandeer.cmd = cmd

	return commandeer
}
