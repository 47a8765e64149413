package lzss

import "fmt"

// Window is the ring buffer of recently produced bytes. Offsets are counted
// backwards from the write cursor, so ReadBack(1) is the byte written last.
// A Window serves one codec call at a time.
type Window struct {
	buf    []byte // Caller memory; only buf[:size] is used.
	size   int    // Active ring size, 2^EI of the current call.
	mask   int    // size-1.
	cursor int    // Next write position.
}

// NewWindow wraps caller-owned memory so it can be reused across calls.
// buf must hold at least 2^EI bytes for the parameter set it is used with.
func NewWindow(buf []byte) *Window {
	return &Window{buf: buf}
}

// AllocWindow allocates a window sized for p.
func AllocWindow(p *Params) *Window {
	if p == nil {
		p = DefaultParams()
	}

	return NewWindow(make([]byte, p.WindowSize()))
}

// Reset sizes the window to 2^EI, fills it with p.Fill and rewinds the cursor.
// Codec calls reset the window themselves; call Reset before using
// WriteByte and ReadBack directly.
func (w *Window) Reset(p *Params) error {
	if p == nil {
		p = DefaultParams()
	}

	size := p.WindowSize()
	if len(w.buf) < size {
		return fmt.Errorf("%w: have %d, need %d", ErrWindowTooSmall, len(w.buf), size)
	}

	w.size = size
	w.mask = size - 1
	w.cursor = 0
	ring := w.buf[:size]
	for i := range ring {
		ring[i] = p.Fill
	}

	return nil
}

// Size returns the active ring size.
func (w *Window) Size() int {
	return w.size
}

// Cursor returns the next write position inside the ring.
func (w *Window) Cursor() int {
	return w.cursor
}

// WriteByte stores b at the cursor and advances it, wrapping at the ring size.
func (w *Window) WriteByte(b byte) error {
	if w.size == 0 {
		return ErrWindowTooSmall
	}

	w.put(b)

	return nil
}

// put is WriteByte for callers that already called Reset.
func (w *Window) put(b byte) {
	w.buf[w.cursor] = b
	w.cursor = (w.cursor + 1) & w.mask
}

// back is ReadBack for offsets the caller has already bounded to 1..size.
func (w *Window) back(offset int) byte {
	return w.buf[(w.cursor-offset)&w.mask]
}

// ReadBack returns the byte offset positions behind the cursor; offset must be in 1..Size().
func (w *Window) ReadBack(offset int) (byte, error) {
	if offset < 1 || offset > w.size {
		return 0, fmt.Errorf("%w: offset=%d window=%d", ErrInvalidOffset, offset, w.size)
	}

	return w.back(offset), nil
}
