package lzss

import (
	"fmt"
	"sort"
)

// Params is the parameter set shared by the producer and the consumer of a
// compressed stream. Nothing in the stream records it.
type Params struct {
	// EI is the offset field width in bits; the window holds 2^EI bytes.
	EI int
	// EJ is the length field width in bits.
	EJ int
	// P is the minimum match length; shorter runs are sent as literals.
	P int
	// Rless stores match lengths as length-P, extending the longest match to P+2^EJ-1.
	Rless bool
	// Fill is the byte the window holds before any data is produced.
	Fill byte
}

// NewParams returns a validated parameter set with the default window fill.
func NewParams(ei, ej, p int, rless bool) (*Params, error) {
	params := &Params{EI: ei, EJ: ej, P: p, Rless: rless, Fill: DefaultFill}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

// DefaultParams returns EI=12, EJ=4, P=2 with reduced lengths, as used by
// PaRappa the Rapper 2 INT archives.
func DefaultParams() *Params {
	return &Params{EI: 12, EJ: 4, P: 2, Rless: true, Fill: DefaultFill}
}

// Validate reports whether the parameter set can describe a stream.
func (p *Params) Validate() error {
	if p.EI < 1 || p.EI > MaxIndexBits {
		return fmt.Errorf("%w: EI=%d, want 1..%d", ErrInvalidParams, p.EI, MaxIndexBits)
	}
	if p.EJ < 1 || p.EJ > MaxIndexBits {
		return fmt.Errorf("%w: EJ=%d, want 1..%d", ErrInvalidParams, p.EJ, MaxIndexBits)
	}
	if p.P < 1 {
		return fmt.Errorf("%w: P=%d, want >= 1", ErrInvalidParams, p.P)
	}
	// Without rless the length field stores the length itself, so P must fit.
	if !p.Rless && p.P > (1<<p.EJ)-1 {
		return fmt.Errorf("%w: P=%d does not fit a %d-bit length field", ErrInvalidParams, p.P, p.EJ)
	}

	return nil
}

// WindowSize returns 2^EI.
func (p *Params) WindowSize() int {
	return 1 << p.EI
}

// MinMatch returns the shortest length encoded as a back-reference.
func (p *Params) MinMatch() int {
	return p.P
}

// MaxMatch returns the longest length a single back-reference can carry.
func (p *Params) MaxMatch() int {
	if p.Rless {
		return p.P + (1 << p.EJ) - 1
	}

	return (1 << p.EJ) - 1
}

func (p *Params) String() string {
	return fmt.Sprintf("EI=%d EJ=%d P=%d rless=%t fill=0x%02x", p.EI, p.EJ, p.P, p.Rless, p.Fill)
}

// Presets are named parameter sets.
var Presets = map[string]Params{
	"ptr2":  {EI: 12, EJ: 4, P: 2, Rless: true, Fill: DefaultFill}, // PaRappa the Rapper 2 INT archives
	"lzss8": {EI: 12, EJ: 4, P: 3, Rless: true, Fill: DefaultFill}, // 4 KiB window, 3..18 byte matches
	"small": {EI: 10, EJ: 4, P: 2, Rless: true, Fill: DefaultFill},
	"wide":  {EI: 13, EJ: 5, P: 3, Rless: true, Fill: DefaultFill},
	"raw":   {EI: 12, EJ: 4, P: 2, Rless: false, Fill: DefaultFill},
}

// LookupPreset returns a copy of the named preset.
func LookupPreset(name string) (*Params, error) {
	preset, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return &preset, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
