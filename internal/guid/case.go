package guid

// FoldCase converts the hex letters a-f/A-F in text to lowercase when lower
// is true and to uppercase otherwise. All other characters, including letters
// outside the hex range, are left as they are.
func FoldCase(text string, lower bool) string {
	b := []byte(text)
	for i, c := range b {
		switch {
		case lower && 'A' <= c && c <= 'F':
			b[i] = c + ('a' - 'A')
		case !lower && 'a' <= c && c <= 'f':
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
