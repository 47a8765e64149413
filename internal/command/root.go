package command

import (
	"os"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
	"github.com/spf13/cobra"
	lzss "github.com/woozymasta/lzss-generic"
)

type RootCommandeer struct {
	loggerInstance logger.Logger
	cmd            *cobra.Command
	verbose        bool
	params         *lzss.Params
	paramOptions   paramOptions
}

func NewRootCommandeer() *RootCommandeer {
	commandeer := &RootCommandeer{}

	cmd := &cobra.Command{
		Use:           "lzss [command]",
		Short:         "Parameterized LZSS compressor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultPreset := os.Getenv("LZSS_PRESET")
	if defaultPreset == "" {
		defaultPreset = "ptr2"
	}

	cmd.PersistentFlags().BoolVarP(&commandeer.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVarP(&commandeer.paramOptions.preset, "preset", "", defaultPreset, "Named parameter set (see \"lzss presets\")")
	cmd.PersistentFlags().StringVarP(&commandeer.paramOptions.paramsFile, "params-file", "f", "", "YAML file with ei / ej / p / rless / fill")
	cmd.PersistentFlags().IntVarP(&commandeer.paramOptions.ei, "ei", "", 0, "Offset field width in bits (window = 2^ei)")
	cmd.PersistentFlags().IntVarP(&commandeer.paramOptions.ej, "ej", "", 0, "Length field width in bits")
	cmd.PersistentFlags().IntVarP(&commandeer.paramOptions.p, "p", "", 0, "Minimum match length")
	cmd.PersistentFlags().BoolVarP(&commandeer.paramOptions.rless, "rless", "", false, "Length field excludes the minimum match")
	cmd.PersistentFlags().UintVarP(&commandeer.paramOptions.fill, "fill", "", 0, "Initial window byte")

	cmd.AddCommand(
		newCompressCommandeer(commandeer).cmd,
		newDecompressCommandeer(commandeer).cmd,
		newInspectCommandeer(commandeer).cmd,
		newPresetsCommandeer(commandeer).cmd,
	)

	commandeer.cmd = cmd

	return commandeer
}

// Execute uses os.Args to execute the command
func (rc *RootCommandeer) Execute() error {
	return rc.cmd.Execute()
}

// GetCmd returns the underlying cobra command
func (rc *RootCommandeer) GetCmd() *cobra.Command {
	return rc.cmd
}

func (rc *RootCommandeer) initialize(cmd *cobra.Command) error {
	var err error

	if rc.loggerInstance == nil {
		rc.loggerInstance, err = rc.createLogger()
		if err != nil {
			return errors.Wrap(err, "Failed to create logger")
		}
	}

	rc.params, err = resolveParams(cmd, &rc.paramOptions)
	if err != nil {
		return errors.Wrap(err, "Failed to resolve parameters")
	}

	rc.loggerInstance.DebugWith("Resolved parameters",
		"ei", rc.params.EI,
		"ej", rc.params.EJ,
		"p", rc.params.P,
		"rless", rc.params.Rless,
		"fill", rc.params.Fill)

	return nil
}

func (rc *RootCommandeer) createLogger() (logger.Logger, error) {
	var loggerLevel nucliozap.Level

	if rc.verbose {
		loggerLevel = nucliozap.DebugLevel
	} else {
		loggerLevel = nucliozap.InfoLevel
	}

	loggerInstance, err := nucliozap.NewNuclioZapCmd("lzss",
		loggerLevel,
		nucliozap.NewRedactor(os.Stderr))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create logger")
	}

	return loggerInstance, nil
}
