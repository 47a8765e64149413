package lzss

import "sync"

// windowPool recycles window memory for the allocating Compress/Decompress helpers.
var windowPool = sync.Pool{
	New: func() any {
		return &Window{}
	},
}

// acquireWindow returns a pooled window with room for 2^EI bytes.
func acquireWindow(p *Params) *Window {
	w := windowPool.Get().(*Window)
	if size := p.WindowSize(); cap(w.buf) < size {
		w.buf = make([]byte, size)
	} else {
		w.buf = w.buf[:size]
	}

	return w
}

// releaseWindow returns the window to the pool.
func releaseWindow(w *Window) {
	if w == nil {
		return
	}

	w.size, w.mask, w.cursor = 0, 0, 0
	windowPool.Put(w)
}
