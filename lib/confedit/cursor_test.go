package confedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeekInBounds(t *testing.T) {
	assert.Equal(t, byte('a'), peek("abc", 0))
	assert.Equal(t, byte('c'), peek("abc", 2))
}

func TestPeekOutOfBounds(t *testing.T) {
	assert.Equal(t, byte(0), peek("abc", 3))
	assert.Equal(t, byte(0), peek("abc", -1))
	assert.Equal(t, byte(0), peek("", 0))
}

func TestSliceEquals(t *testing.T) {
	assert.True(t, sliceEquals("Peers: []", 0, "Peers:"))
	assert.True(t, sliceEquals("Peers: []", 7, "[]"))
	assert.False(t, sliceEquals("Peers: []", 1, "Peers:"))
}

// An overrun is a mismatch, never a panic.
func TestSliceEqualsOverrun(t *testing.T) {
	assert.False(t, sliceEquals("Peer", 0, "Peers:"))
	assert.False(t, sliceEquals("abc", 2, "cd"))
	assert.False(t, sliceEquals("abc", -1, "ab"))
}
