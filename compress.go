package lzss

import "fmt"

// Compress compresses src into a new buffer. Params nil means DefaultParams().
// Empty input yields an empty result.
func Compress(src []byte, p *Params) ([]byte, error) {
	if p == nil {
		p = DefaultParams()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	win := acquireWindow(p)
	defer releaseWindow(win)

	dst := make([]byte, CompressBound(len(src), p))
	n, err := CompressInto(src, dst, win, p)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// CompressInto compresses src into dst using win as the dictionary and
// returns the number of bytes written. If the stream does not fit it
// returns ErrDstTooSmall and the contents of dst are unspecified;
// CompressBound(len(src), p) bytes are always enough.
func CompressInto(src, dst []byte, win *Window, p *Params) (int, error) {
	if p == nil {
		p = DefaultParams()
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if win == nil {
		return 0, ErrNilWindow
	}

	w := &bitWriter{dst: dst}
	if err := compress(src, win, p, w); err != nil {
		return 0, err
	}

	return w.pos, nil
}

// CompressedSize returns the exact size CompressInto would produce for src,
// without writing any output.
func CompressedSize(src []byte, p *Params) (int, error) {
	if p == nil {
		p = DefaultParams()
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	win := acquireWindow(p)
	defer releaseWindow(win)

	w := &bitWriter{counting: true}
	if err := compress(src, win, p, w); err != nil {
		return 0, err
	}

	return w.pos, nil
}

// compress runs the greedy encoder: one token per step, every consumed byte fed to the window.
func compress(src []byte, win *Window, p *Params, w *bitWriter) error {
	if err := win.Reset(p); err != nil {
		return err
	}

	pos := 0
	for pos < len(src) {
		t := Token{Kind: Literal, Literal: src[pos]}
		step := 1
		if offset, length := findMatch(win, src, pos, p); length > 0 {
			t = Token{Kind: Match, Offset: offset, Length: length}
			step = length
		}

		if err := w.writeToken(t, p); err != nil {
			return fmt.Errorf("%w: input position %d, capacity %d", err, pos, len(w.dst))
		}

		for _, b := range src[pos : pos+step] {
			win.put(b)
		}
		pos += step
	}

	if err := w.flush(); err != nil {
		return fmt.Errorf("%w: final byte, capacity %d", err, len(w.dst))
	}

	return nil
}
