package lzss

// findMatch returns the longest earlier occurrence of src[pos:] that a
// single back-reference can carry. The window must hold everything before
// pos. Offsets are tried from 1 upwards and only a strictly longer run
// replaces the current best, so ties go to the smallest offset. length is
// 0 when no run of at least P bytes exists.
//
// A run may overlap the position being encoded: bytes at distance < offset
// come from src itself, exactly as the decoder will have written them.
func findMatch(w *Window, src []byte, pos int, p *Params) (offset, length int) {
	remaining := len(src) - pos
	if remaining < p.P {
		return 0, 0
	}

	maxLen := min(p.MaxMatch(), remaining)
	maxOff := min(w.size, pos)
	next := src[pos:]

	for off := 1; off <= maxOff; off++ {
		if w.back(off) != next[0] {
			continue
		}

		n := 1
		for n < maxLen {
			var c byte
			if n < off {
				c = w.back(off - n)
			} else {
				c = next[n-off]
			}
			if c != next[n] {
				break
			}
			n++
		}

		if n > length {
			offset, length = off, n
			if length == maxLen {
				break
			}
		}
	}

	if length < p.P {
		return 0, 0
	}

	return offset, length
}
