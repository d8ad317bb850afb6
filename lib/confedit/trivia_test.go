package confedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipCommentContinuation(t *testing.T) {
	doc := "# decoy\nPeers:"
	// position 1 is just past the '#' opener
	got := skipComment(doc, 1, "\n", true)
	assert.Equal(t, 8, got)
	assert.Equal(t, byte('P'), doc[got])
}

func TestSkipCommentInspection(t *testing.T) {
	doc := "# decoy\n["
	got := skipComment(doc, 1, "\n", false)
	assert.Equal(t, byte('\n'), doc[got])
}

func TestSkipBlockComment(t *testing.T) {
	doc := "/* hidden ] */ ]"
	// continuation: just past the terminator
	assert.Equal(t, 14, skipComment(doc, 2, "*/", true))
	// inspection: at the terminator
	assert.Equal(t, 12, skipComment(doc, 2, "*/", false))
}

func TestSkipCommentUnterminated(t *testing.T) {
	doc := "# runs to the end"
	assert.Equal(t, len(doc), skipComment(doc, 1, "\n", true))
	assert.Equal(t, len(doc), skipComment(doc, 1, "\n", false))
}
