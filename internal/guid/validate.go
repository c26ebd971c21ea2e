package guid

// TextSize is the length of the canonical 8-4-4-4-12 text form.
const TextSize = 36

// IsCanonicalFormat reports whether text is exactly the 36-character
// hyphenated hexadecimal form, e.g. 01234567-89ab-cdef-0123-456789abcdef.
// Either hex case is accepted.
func IsCanonicalFormat(text string) bool {
	if len(text) != TextSize {
		return false
	}

	for i := 0; i < TextSize; i++ {
		switch i {
		case 8, 13, 18, 23:
			if text[i] != '-' {
				return false
			}
		default:
			if !isHexDigit(text[i]) {
				return false
			}
		}
	}

	return true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
