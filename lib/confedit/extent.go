package confedit

// FindValueEnd scans forward from a position just past the matched key
// token and returns the byte position of the bracket that closes the key's
// array value: the first ']' at which the counts of '[' and ']' seen
// outside comments are equal and non-zero. Brackets inside comments do not
// count. Returns len(doc) when the document ends before the brackets
// balance.
func FindValueEnd(doc string, from int) int {
	end := len(doc)
	open, closed := 0, 0
	for pos := from; pos < end; pos++ {
		switch {
		case peek(doc, pos) == '#':
			pos = skipComment(doc, pos+1, "\n", false)
		case sliceEquals(doc, pos, "//"):
			pos = skipComment(doc, pos+2, "\n", false)
		case sliceEquals(doc, pos, "/*"):
			// Inspection mode leaves pos on the '*' of the closing "*/";
			// the loop increment steps onto '/', so a bracket right after
			// the terminator is still seen on the next iteration.
			pos = skipComment(doc, pos+2, "*/", false)
		case peek(doc, pos) == '[':
			open++
		case peek(doc, pos) == ']':
			closed++
			if open > 0 && open == closed {
				return pos
			}
		}
	}
	return end
}
