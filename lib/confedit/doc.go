// Package confedit performs targeted, in-place edits of the Peers array in
// an Yggdrasil configuration file without parsing the document.
//
// The Yggdrasil configuration is a JSON superset that allows #, // and
// /* ... */ comments and unquoted keys. Round-tripping it through an HJSON
// parser would reformat the whole file and discard the user's layout, so
// this package instead locates the array value of the Peers key lexically
// and splices a freshly rendered array over it. Every byte outside the
// located span is preserved exactly.
//
// Positions are byte offsets into the document; the document length is the
// shared "not found" sentinel of the scanning functions. Comment skipping
// keeps key-like text inside comments from being mistaken for the real key.
// A key-like literal inside another field's quoted string value is not
// distinguished; guarding against it would require the string-literal state
// machine of a full parser, which this package deliberately is not.
package confedit
