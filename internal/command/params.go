package command

import (
	"os"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
	lzss "github.com/woozymasta/lzss-generic"
	"gopkg.in/yaml.v3"
)

// paramOptions holds the raw parameter flags; only flags the user set override the preset.
type paramOptions struct {
	preset     string
	paramsFile string
	ei         int
	ej         int
	p          int
	rless      bool
	fill       uint
}

// paramsFileContents is the YAML params file; absent keys keep the preset value.
type paramsFileContents struct {
	EI    *int  `yaml:"ei"`
	EJ    *int  `yaml:"ej"`
	P     *int  `yaml:"p"`
	Rless *bool `yaml:"rless"`
	Fill  *int  `yaml:"fill"`
}

// resolveParams layers preset, params file and explicit flags, then validates the result.
func resolveParams(cmd *cobra.Command, options *paramOptions) (*lzss.Params, error) {
	params, err := lzss.LookupPreset(options.preset)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to look up preset")
	}

	if options.paramsFile != "" {
		if err := applyParamsFile(params, options.paramsFile); err != nil {
			return nil, errors.Wrapf(err, "Failed to apply params file %s", options.paramsFile)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("ei") {
		params.EI = options.ei
	}
	if flags.Changed("ej") {
		params.EJ = options.ej
	}
	if flags.Changed("p") {
		params.P = options.p
	}
	if flags.Changed("rless") {
		params.Rless = options.rless
	}
	if flags.Changed("fill") {
		if options.fill > 0xFF {
			return nil, errors.New("Fill must be a single byte (0..255)")
		}
		params.Fill = byte(options.fill)
	}

	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid parameters")
	}

	return params, nil
}

func applyParamsFile(params *lzss.Params, path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "Failed to read params file")
	}

	var fileParams paramsFileContents
	if err := yaml.Unmarshal(contents, &fileParams); err != nil {
		return errors.Wrap(err, "Failed to parse params file")
	}

	if fileParams.EI != nil {
		params.EI = *fileParams.EI
	}
	if fileParams.EJ != nil {
		params.EJ = *fileParams.EJ
	}
	if fileParams.P != nil {
		params.P = *fileParams.P
	}
	if fileParams.Rless != nil {
		params.Rless = *fileParams.Rless
	}
	if fileParams.Fill != nil {
		if *fileParams.Fill < 0 || *fileParams.Fill > 0xFF {
			return errors.New("Fill must be a single byte (0..255)")
		}
		params.Fill = byte(*fileParams.Fill)
	}

	return nil
}
