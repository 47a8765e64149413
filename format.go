package lzss

// Stream format constants.
//
// Tokens are packed LSB-first: bit 0 of every byte is filled first, and
// multi-bit fields are written least significant bit first. Every token
// starts with one flag bit.
const (
	LiteralFlag  = 1    // Flag bit value of a literal token; a match uses 0.
	LiteralBits  = 8    // Payload width of a literal token.
	DefaultFill  = 0x20 // Window fill byte before any data is produced.
	MaxIndexBits = 24   // Upper bound for EI and EJ.
)

// CompressBound returns the largest possible compressed size for n input
// bytes under p (nil means DefaultParams). Usually that is every byte framed
// as a 9-bit literal, n+ceil(n/8). Parameter sets whose shortest match costs
// more than P literals raise the bound accordingly.
func CompressBound(n int, p *Params) int {
	if n <= 0 {
		return 0
	}
	if p == nil {
		p = DefaultParams()
	}

	// Bits per P input bytes in the worst case.
	perP := max((1+LiteralBits)*p.P, 1+p.EI+p.EJ)
	bits := (n*perP + p.P - 1) / p.P

	return (bits + 7) / 8
}
