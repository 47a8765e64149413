/*
Package lzss implements a parameterized LZSS codec for in-memory buffers.

One implementation covers a family of LZSS variants. Four values select the
variant, and both sides of a stream must agree on them out of band:

	EI     offset field width; the sliding window holds 2^EI bytes
	EJ     length field width
	P      minimum match length; shorter runs are sent as literals
	rless  length field stores length-P (lengths P..P+2^EJ-1) instead of length (P..2^EJ-1)

Params.Fill selects the byte the window is filled with before any data is
produced (0x20 by default).

Format: a flag bit precedes every token; 1 = literal (8 bits), 0 = match
(EI bits of offset-1, then EJ bits of length). Bits are packed LSB-first and
the stream is zero-padded to a whole byte. Matches are found greedily: the
longest run wins, ties go to the smallest offset.

Use Compress(src, params) and Decompress(src, outLen, params) for the
allocating API; nil params means DefaultParams() (EI=12, EJ=4, P=2, rless).
Use CompressInto and DecompressInto to supply the destination and the window
yourself, e.g. to reuse memory across calls.
Use CompressedSize to learn the exact output size without writing anything.
Use DecompressFromReader to decode one block of known size from a stream.
Use ParseTokens to list the tokens of a stream.

# Examples

Round-trip with default parameters:

	enc, err := lzss.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzss.Decompress(enc, len(data), nil)
	if err != nil {
		return err
	}
	// dec equals data

Choose a parameter set:

	params, err := lzss.NewParams(10, 4, 2, true)
	if err != nil {
		return err
	}
	enc, err := lzss.Compress(data, params)

Reuse a window and a destination buffer:

	win := lzss.AllocWindow(params)
	dst := make([]byte, lzss.CompressBound(len(data), params))
	n, err := lzss.CompressInto(data, dst, win, params)
	if err != nil {
		return err
	}
	out := make([]byte, len(data))
	_, err = lzss.DecompressInto(dst[:n], out, win, params)

Decompress a block from a stream and continue after it:

	out, consumed, err := lzss.DecompressFromReader(r, expectedLen, params)
	if err != nil {
		return err
	}
	_ = consumed
*/
package lzss
