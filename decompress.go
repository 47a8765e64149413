package lzss

import (
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses src into a new buffer of length outLen.
// Params nil means DefaultParams(). Bytes after the last token are ignored.
func Decompress(src []byte, outLen int, p *Params) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}
	if p == nil {
		p = DefaultParams()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	win := acquireWindow(p)
	defer releaseWindow(win)

	out := make([]byte, outLen)
	if _, err := DecompressInto(src, out, win, p); err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressInto fills all of dst from src using win as the dictionary and
// returns the number of source bytes consumed. A token that would run past
// len(dst) is cut short. It fails with ErrUnexpectedEOF when src ends
// before dst is full and never reads beyond src.
func DecompressInto(src, dst []byte, win *Window, p *Params) (int, error) {
	if p == nil {
		p = DefaultParams()
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if win == nil {
		return 0, ErrNilWindow
	}

	reader := &sliceByteReader{data: src}
	if err := decompress(&bitReader{r: reader}, dst, win, p, nil); err != nil {
		return reader.pos, err
	}

	return reader.pos, nil
}

// DecompressFromReader decodes one block of outLen bytes from r and returns
// the number of bytes consumed. It stops at the byte holding the last bit it
// needs, so r is left positioned for whatever follows the block.
func DecompressFromReader(r io.Reader, outLen int, p *Params) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}
	if outLen < 0 {
		return nil, 0, ErrNegativeOutLen
	}
	if p == nil {
		p = DefaultParams()
	}
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = &singleByteReader{r: r}
	}

	win := acquireWindow(p)
	defer releaseWindow(win)

	br := &bitReader{r: byteReader}
	out := make([]byte, outLen)
	if err := decompress(br, out, win, p, nil); err != nil {
		return nil, br.consumed, err
	}

	return out, br.consumed, nil
}

// ParseTokens decodes the tokens that reconstruct outLen bytes of src. The
// last token keeps its framed length even when the output cuts it short.
// On ErrInvalidLength the offending match is the last returned token.
func ParseTokens(src []byte, outLen int, p *Params) ([]Token, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}
	if p == nil {
		p = DefaultParams()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	win := acquireWindow(p)
	defer releaseWindow(win)

	var tokens []Token
	collect := func(t Token) {
		tokens = append(tokens, t)
	}

	br := &bitReader{r: &sliceByteReader{data: src}}
	if err := decompress(br, make([]byte, outLen), win, p, collect); err != nil {
		return tokens, err
	}

	return tokens, nil
}

// decompress replays tokens from r into dst and the window until dst is full.
// onToken, if set, sees every token before it is applied.
func decompress(r *bitReader, dst []byte, win *Window, p *Params, onToken func(Token)) error {
	if err := win.Reset(p); err != nil {
		return err
	}

	pos := 0
	for pos < len(dst) {
		t, err := r.readToken(p)
		if err != nil {
			// The malformed match is still reported to inspection callers.
			if onToken != nil && errors.Is(err, ErrInvalidLength) {
				onToken(t)
			}

			return fmt.Errorf("%w: output position %d", err, pos)
		}
		if onToken != nil {
			onToken(t)
		}

		if t.Kind == Literal {
			dst[pos] = t.Literal
			win.put(t.Literal)
			pos++
			continue
		}

		// Byte by byte: with Offset < Length the copy reads what it just wrote.
		n := min(t.Length, len(dst)-pos)
		for i := 0; i < n; i++ {
			b, err := win.ReadBack(t.Offset)
			if err != nil {
				return fmt.Errorf("%w: output position %d", err, pos)
			}

			dst[pos] = b
			win.put(b)
			pos++
		}
	}

	return nil
}

// singleByteReader reads one byte per call so no bytes past the block are taken from r.
type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

// ReadByte reads exactly one byte from the underlying reader.
func (s *singleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}

		return 0, err
	}

	return s.buf[0], nil
}
