package confedit

import (
	"github.com/samber/oops"

	"github.com/yggdrasil-community/peers-updater/lib/util/logger"
)

var log = logger.GetLogger()

var (
	// ErrKeyNotFound means the document contains no Peers key outside
	// comments.
	ErrKeyNotFound = oops.Errorf("no Peers key found outside comments")
	// ErrValueUnbalanced means the document ended before the brackets of
	// the Peers value balanced.
	ErrValueUnbalanced = oops.Errorf("brackets of the Peers value never balance")
)

// Patch splices replacement over the document span [start, end]. end is
// the position of the value's closing bracket and is consumed by the
// splice, since the replacement carries its own closing bracket. The
// document is never mutated on failure.
func Patch(doc string, start, end int, replacement string) (string, error) {
	if start >= end {
		if start >= len(doc) {
			return "", ErrKeyNotFound
		}
		return "", ErrValueUnbalanced
	}
	return doc[:start] + replacement + doc[end+1:], nil
}

// UpdateDocument locates the Peers array in the document and returns the
// full new document text with the array replaced by the rendered
// selection. On ErrKeyNotFound or ErrValueUnbalanced nothing is produced
// and the original file must be left untouched by the caller.
func UpdateDocument(doc string, candidates []Candidate, pol Policy) (string, error) {
	start, key := FindKey(doc)
	if start >= len(doc) {
		return "", ErrKeyNotFound
	}
	end := FindValueEnd(doc, start+len(key))
	if end >= len(doc) {
		return "", ErrValueUnbalanced
	}
	log.Debugf("located Peers value span [%d, %d]", start, end)
	return Patch(doc, start, end, BuildReplacement(key, candidates, pol))
}
