package alsw

// StripASCIIWhitespace removes SPACE, TAB, LF, FF, and CR bytes from buf in
// place and returns the shortened slice sharing buf's backing array — the
// first step of the WHATWG forgiving-base64 decode algorithm.
func StripASCIIWhitespace(buf []byte) []byte {
	n := 0
	for _, b := range buf {
		if isASCIIWhitespace(b) {
			continue
		}
		buf[n] = b
		n++
	}
	return buf[:n]
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}
