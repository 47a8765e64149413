package lzss

import (
	"errors"
	"io"
)

// bitWriter packs tokens LSB-first into dst. With counting set it only
// tracks the size of the stream and never touches dst.
type bitWriter struct {
	dst      []byte
	counting bool
	pos      int    // Bytes emitted so far.
	acc      uint64 // Pending bits, next bit to emit at bit 0.
	n        uint   // Number of pending bits.
}

// writeBits appends the low n bits of v, least significant first.
func (w *bitWriter) writeBits(v uint32, n uint) error {
	w.acc |= uint64(v&(1<<n-1)) << w.n
	w.n += n
	for w.n >= 8 {
		if err := w.emit(byte(w.acc)); err != nil {
			return err
		}
		w.acc >>= 8
		w.n -= 8
	}

	return nil
}

// emit stores one finished byte.
func (w *bitWriter) emit(b byte) error {
	if !w.counting {
		if w.pos >= len(w.dst) {
			return ErrDstTooSmall
		}
		w.dst[w.pos] = b
	}
	w.pos++

	return nil
}

// flush pads the last partial byte with zero bits.
func (w *bitWriter) flush() error {
	if w.n == 0 {
		return nil
	}

	if err := w.emit(byte(w.acc)); err != nil {
		return err
	}
	w.acc = 0
	w.n = 0

	return nil
}

// writeToken frames one token: flag bit, then a literal byte or the offset/length fields.
func (w *bitWriter) writeToken(t Token, p *Params) error {
	if t.Kind == Literal {
		if err := w.writeBits(LiteralFlag, 1); err != nil {
			return err
		}

		return w.writeBits(uint32(t.Literal), LiteralBits)
	}

	if err := w.writeBits(LiteralFlag^1, 1); err != nil {
		return err
	}
	if err := w.writeBits(uint32(t.Offset-1), uint(p.EI)); err != nil { // #nosec G115 -- offset in 1..2^EI
		return err
	}

	length := t.Length
	if p.Rless {
		length -= p.P
	}

	return w.writeBits(uint32(length), uint(p.EJ)) // #nosec G115 -- length bounded by MaxMatch
}

// bitReader unpacks LSB-first tokens. It pulls a source byte only when the
// next field needs it, so it never reads past the byte holding the last bit used.
type bitReader struct {
	r        io.ByteReader
	consumed int64  // Source bytes read.
	acc      uint64 // Buffered bits, next bit at bit 0.
	n        uint   // Number of buffered bits.
}

// readBits returns the next n bits.
func (r *bitReader) readBits(n uint) (uint32, error) {
	for r.n < n {
		b, err := r.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrUnexpectedEOF
			}

			return 0, err
		}

		r.consumed++
		r.acc |= uint64(b) << r.n
		r.n += 8
	}

	v := uint32(r.acc & (1<<n - 1)) // #nosec G115 -- n <= MaxIndexBits
	r.acc >>= n
	r.n -= n

	return v, nil
}

// readToken reads one framed token. Match offsets always come out in
// 1..2^EI; lengths below P are rejected here.
func (r *bitReader) readToken(p *Params) (Token, error) {
	flag, err := r.readBits(1)
	if err != nil {
		return Token{}, err
	}

	if flag == LiteralFlag {
		b, err := r.readBits(LiteralBits)
		if err != nil {
			return Token{}, err
		}

		return Token{Kind: Literal, Literal: byte(b)}, nil
	}

	off, err := r.readBits(uint(p.EI))
	if err != nil {
		return Token{}, err
	}
	length, err := r.readBits(uint(p.EJ))
	if err != nil {
		return Token{}, err
	}

	t := Token{Kind: Match, Offset: int(off) + 1, Length: int(length)}
	if p.Rless {
		t.Length += p.P
	}
	if t.Length < p.P {
		return t, ErrInvalidLength
	}

	return t, nil
}

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte
	pos  int
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}
