package confedit

// The two accepted spellings of the target key.
const (
	bareKey   = "Peers:"
	quotedKey = `"Peers":`
)

// FindKey scans the document left to right for the Peers key outside
// comments and returns its byte position together with the matched key
// token. Not found is (len(doc), "").
//
// Key-like text inside a comment is skipped; key-like text inside another
// field's quoted string value is not (see the package documentation).
func FindKey(doc string) (int, string) {
	end := len(doc)
	pos := 0
	for pos < end {
		switch {
		case peek(doc, pos) == '#':
			pos = skipComment(doc, pos+1, "\n", true)
			continue
		case sliceEquals(doc, pos, "//"):
			pos = skipComment(doc, pos+2, "\n", true)
			continue
		case sliceEquals(doc, pos, "/*"):
			pos = skipComment(doc, pos+2, "*/", true)
			continue
		case sliceEquals(doc, pos, bareKey):
			return pos, bareKey
		case sliceEquals(doc, pos, quotedKey):
			return pos, quotedKey
		}
		pos++
	}
	return end, ""
}
