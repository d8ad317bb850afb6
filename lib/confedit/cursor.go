package confedit

// peek returns the byte at pos, or 0 when pos is outside the document.
func peek(doc string, pos int) byte {
	if pos < 0 || pos >= len(doc) {
		return 0
	}
	return doc[pos]
}

// sliceEquals reports whether the document contains pattern starting at
// pos. A slice that would overrun the document end is a mismatch, not an
// error.
func sliceEquals(doc string, pos int, pattern string) bool {
	if pos < 0 || pos+len(pattern) > len(doc) {
		return false
	}
	return doc[pos:pos+len(pattern)] == pattern
}
