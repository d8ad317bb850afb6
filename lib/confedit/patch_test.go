package confedit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = "foo: 1\nPeers:\n  [\n    old\n  ]\nbar: 2\n"

func TestUpdateDocumentReplacesOnlyTheValue(t *testing.T) {
	got, err := UpdateDocument(sampleDoc, rankedCandidates[:2], Policy{MaxPeers: 1})
	require.NoError(t, err)
	assert.Equal(t, "foo: 1\nPeers:\n  [\n    #EU/FR\n    addr1\n  ]\nbar: 2\n", got)
}

func TestUpdateDocumentExclusion(t *testing.T) {
	got, err := UpdateDocument(sampleDoc, rankedCandidates[:2], Policy{MaxPeers: 5, Ignore: "addr1"})
	require.NoError(t, err)
	assert.NotContains(t, got, "addr1")
	assert.Contains(t, got, "#AS/JP\n    addr2")
}

func TestUpdateDocumentKeyOnlyInComment(t *testing.T) {
	doc := "/* Peers: [dead] */\nfoo: 1\n"
	_, err := UpdateDocument(doc, rankedCandidates, Policy{MaxPeers: 1})
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestUpdateDocumentZeroCapWithExtra(t *testing.T) {
	got, err := UpdateDocument(sampleDoc, rankedCandidates[:2], Policy{MaxPeers: 0, Extra: "addr9"})
	require.NoError(t, err)
	assert.NotContains(t, got, "addr1")
	assert.Contains(t, got, "#extra\n    addr9")
}

// The decoy comment from the locator scenario, end to end.
func TestUpdateDocumentDecoyComment(t *testing.T) {
	doc := "# Peers: [x]\nPeers:\n  [\n    1\n  ]"
	got, err := UpdateDocument(doc, rankedCandidates[:1], Policy{MaxPeers: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "# Peers: [x]\n"), "comment must survive untouched")
	assert.Equal(t, "# Peers: [x]\nPeers:\n  [\n    #EU/FR\n    addr1\n  ]", got)
}

func TestUpdateDocumentUnbalanced(t *testing.T) {
	doc := "Peers:\n  [\n    a\n"
	_, err := UpdateDocument(doc, rankedCandidates, Policy{MaxPeers: 1})
	assert.True(t, errors.Is(err, ErrValueUnbalanced))
}

func TestUpdateDocumentMissingKey(t *testing.T) {
	_, err := UpdateDocument("foo: 1\nbar: 2\n", rankedCandidates, Policy{MaxPeers: 1})
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

// Every byte outside the located span survives the splice.
func TestUpdateDocumentPreservesSurroundings(t *testing.T) {
	prefix := "// header comment\nfoo: \"Peers-like string\"\n"
	suffix := "\n/* trailing\n   block */\nListen: []\n"
	doc := prefix + "Peers:\n  [\n    old\n  ]" + suffix
	got, err := UpdateDocument(doc, rankedCandidates[:1], Policy{MaxPeers: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, prefix))
	assert.True(t, strings.HasSuffix(got, suffix))
}

func TestPatchRejectsEmptySpan(t *testing.T) {
	_, err := Patch("doc", 2, 2, "x")
	assert.Error(t, err)
	_, err = Patch("doc", 3, 1, "x")
	assert.Error(t, err)
}

func TestPatchSplicesInclusiveEnd(t *testing.T) {
	got, err := Patch("aXXb", 1, 2, "Y")
	require.NoError(t, err)
	assert.Equal(t, "aYb", got)
}
