package confedit

// skipComment advances past a comment body beginning at pos, which must sit
// just after the comment opener. terminator is "\n" for # and // comments
// and "*/" for block comments.
//
// In continuation mode the returned position is just past the terminator,
// ready for the caller to resume matching there. In inspection mode it is
// the terminator's own position, for callers whose scan loop re-examines
// the terminating character before stepping over it; this is what lets a
// "*/" immediately followed by a bracket still count the bracket.
//
// A comment that runs to the end of the document yields len(doc).
func skipComment(doc string, pos int, terminator string, continuation bool) int {
	for pos < len(doc) {
		if sliceEquals(doc, pos, terminator) {
			if continuation {
				return pos + len(terminator)
			}
			return pos
		}
		pos++
	}
	return len(doc)
}
