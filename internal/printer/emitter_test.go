// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmitter_RejectsUnsetIndent(t *testing.T) {
	_, err := NewEmitter(Indent{}, "\n", 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewEmitter_RejectsNegativeWidth(t *testing.T) {
	_, err := NewEmitter(IndentSpaces(-1), "\n", 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewEmitter_RejectsEmptyNewline(t *testing.T) {
	_, err := NewEmitter(IndentSpaces(2), "", 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewEmitter_RejectsNegativeDepth(t *testing.T) {
	_, err := NewEmitter(IndentSpaces(2), "\n", -1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEmitter_LineAndScoped(t *testing.T) {
	e, err := NewEmitter(IndentSpaces(2), "\n", 0)
	require.NoError(t, err)

	e.Line(func() { e.Raw("a {") })
	e.Scoped(func() {
		e.Line(func() { e.Raw("b") })
		e.Scoped(func() {
			e.Line(func() { e.Raw("c") })
		})
	})
	e.Line(func() { e.Raw("}") })

	assert.Equal(t, "a {\n  b\n    c\n}", e.Finish())
}

func TestEmitter_LiteralIndent(t *testing.T) {
	e, err := NewEmitter(IndentLiteral("\t"), "\r\n", 1)
	require.NoError(t, err)

	e.Line(func() { e.Raw("x") })
	e.Scoped(func() { e.Line(func() { e.Raw("y") }) })

	assert.Equal(t, "\tx\r\n\t\ty", e.Finish())
}

func TestEmitter_ScopedRestoresDepthOnPanic(t *testing.T) {
	e, err := NewEmitter(IndentSpaces(4), "\n", 0)
	require.NoError(t, err)

	assert.Panics(t, func() {
		e.Scoped(func() { panic("boom") })
	})
	assert.Equal(t, 0, e.Depth())
}

func TestEmitter_FinishTrimsAndResets(t *testing.T) {
	e, err := NewEmitter(IndentSpaces(4), "\n", 0)
	require.NoError(t, err)

	e.Raw("text")
	e.Newline()
	e.Newline()
	e.Raw("   ")
	assert.Equal(t, "text", e.Finish())

	e.Raw("again")
	assert.Equal(t, "again", e.Finish())
	assert.Equal(t, "", e.Finish())
}
