// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderComment writes a comment followed by "item" inside one indented line.
func renderComment(t *testing.T, c CommentFormatter, text string, doc bool) string {
	t.Helper()
	e, err := NewEmitter(IndentSpaces(4), "\n", 1)
	require.NoError(t, err)
	e.Line(func() {
		c.Write(e, text, doc)
		e.Raw("item")
	})
	return e.Finish()
}

func TestCommentFormatter_LineDoc(t *testing.T) {
	got := renderComment(t, CommentFormatter{}, "first\n   second", true)
	assert.Equal(t, "    /// first\n    /// second\n    item", got)
}

func TestCommentFormatter_LinePlain(t *testing.T) {
	got := renderComment(t, CommentFormatter{}, "note", false)
	assert.Equal(t, "    // note\n    item", got)
}

func TestCommentFormatter_BlockDoc(t *testing.T) {
	got := renderComment(t, CommentFormatter{Block: true}, "first\nsecond", true)
	assert.Equal(t, "    /**\n     * first\n     * second\n     */\n    item", got)
}

func TestCommentFormatter_BlockPlain(t *testing.T) {
	got := renderComment(t, CommentFormatter{Block: true}, "note", false)
	assert.Equal(t, "    /*\n     note\n     */\n    item", got)
}

func TestCommentFormatter_BlankTextOmitted(t *testing.T) {
	for _, block := range []bool{false, true} {
		got := renderComment(t, CommentFormatter{Block: block}, " \n\t\n ", true)
		assert.Equal(t, "    item", got)
	}
}

func TestCommentFormatter_TrimsSurroundingBlankLines(t *testing.T) {
	got := renderComment(t, CommentFormatter{}, "\n\n  only\n\n", true)
	assert.Equal(t, "    /// only\n    item", got)
}

func TestCommentFormatter_EmptyInteriorLine(t *testing.T) {
	got := renderComment(t, CommentFormatter{}, "a\n\nb", true)
	assert.Equal(t, "    /// a\n    ///\n    /// b\n    item", got)
}
