// Package boundary locates the end of meaningful data in a zero-initialized
// output buffer that a compressor filled without reporting how many bytes
// it wrote.
package boundary

// PaddingThreshold is the shortest run of zeros followed by more data that
// is still treated as padding. Shorter interior runs are part of the
// compressed stream.
const PaddingThreshold = 10

// Find returns the number of meaningful bytes at the front of buf. found is
// false when buf is empty or its last byte is nonzero, meaning the whole
// buffer is in use.
//
// The zero run that reaches the end of buf is always padding. Before that
// run, Find narrows [lo, hi) towards the start of the padding: a run of at
// least PaddingThreshold zeros pulls hi down to the start of the run, a
// shorter run pushes lo past it.
func Find(buf []byte) (int, bool) {
	n := len(buf)
	if n == 0 || buf[n-1] != 0 {
		return 0, false
	}

	hi := n - 1
	for hi > 0 && buf[hi-1] == 0 {
		hi--
	}

	lo := 0
	for lo < hi {
		mid := lo + (hi-lo)/2
		if buf[mid] != 0 {
			lo = mid + 1
			continue
		}

		start := mid
		for start > lo && buf[start-1] == 0 {
			start--
		}
		end, long := runEnd(buf, mid, start+PaddingThreshold)
		if long {
			hi = start
			continue
		}
		// Incidental zeros inside the compressed stream.
		lo = end
	}
	return hi, true
}

// runEnd scans the zero run containing i forward. It returns the index of
// the first nonzero byte after the run, and true as soon as the run reaches
// limit.
func runEnd(buf []byte, i, limit int) (int, bool) {
	for i < len(buf) && buf[i] == 0 {
		i++
		if i >= limit {
			return i, true
		}
	}
	return i, false
}

// Trim returns a right-sized copy of buf holding only its meaningful bytes.
// A buffer without a detectable boundary is copied whole.
func Trim(buf []byte) []byte {
	n, found := Find(buf)
	if !found {
		n = len(buf)
	}
	out := make([]byte, n)
	copy(out, buf[:n])
	return out
}
