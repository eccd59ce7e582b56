// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package printer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidConfig is returned when a printer, emitter or item order is
// constructed from an unusable configuration.
var ErrInvalidConfig = errors.New("invalid printer config")

// Indent is the indentation unit written once per nesting level. Build one
// with IndentSpaces or IndentLiteral; the zero value is rejected.
type Indent struct {
	spaces  int
	literal string
	kind    indentKind
}

type indentKind int

const (
	indentUnset indentKind = iota
	indentSpaces
	indentLiteral
)

// IndentSpaces returns an indentation unit of n spaces.
func IndentSpaces(n int) Indent {
	return Indent{spaces: n, kind: indentSpaces}
}

// IndentLiteral returns an indentation unit that writes s verbatim, e.g. "\t".
func IndentLiteral(s string) Indent {
	return Indent{literal: s, kind: indentLiteral}
}

// Unit returns the text written for one level of indentation.
func (i Indent) Unit() (string, error) {
	switch i.kind {
	case indentSpaces:
		if i.spaces < 0 {
			return "", fmt.Errorf("%w: negative indent width %d", ErrInvalidConfig, i.spaces)
		}
		return strings.Repeat(" ", i.spaces), nil
	case indentLiteral:
		return i.literal, nil
	default:
		return "", fmt.Errorf("%w: indentation unit not set", ErrInvalidConfig)
	}
}

func (i Indent) String() string {
	switch i.kind {
	case indentSpaces:
		return fmt.Sprintf("%d spaces", i.spaces)
	case indentLiteral:
		return fmt.Sprintf("%q", i.literal)
	default:
		return "unset"
	}
}

// Emitter accumulates indented, newline-terminated text. It is not safe for
// concurrent use.
type Emitter struct {
	buf     strings.Builder
	depth   int
	unit    string
	newline string
}

// NewEmitter returns an Emitter starting at the given depth.
func NewEmitter(indent Indent, newline string, depth int) (*Emitter, error) {
	unit, err := indent.Unit()
	if err != nil {
		return nil, err
	}
	if newline == "" {
		return nil, fmt.Errorf("%w: empty line terminator", ErrInvalidConfig)
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: negative indent depth %d", ErrInvalidConfig, depth)
	}
	return &Emitter{depth: depth, unit: unit, newline: newline}, nil
}

// Raw appends s verbatim.
func (e *Emitter) Raw(s string) {
	e.buf.WriteString(s)
}

// Indent appends the indentation for the current depth.
func (e *Emitter) Indent() {
	for i := 0; i < e.depth; i++ {
		e.buf.WriteString(e.unit)
	}
}

// Newline appends the line terminator.
func (e *Emitter) Newline() {
	e.buf.WriteString(e.newline)
}

// Line writes one indented line whose content is produced by f.
func (e *Emitter) Line(f func()) {
	e.Indent()
	f()
	e.Newline()
}

// Scoped runs f one level deeper. The depth is restored even if f panics.
func (e *Emitter) Scoped(f func()) {
	e.depth++
	defer func() { e.depth-- }()
	f()
}

// Depth returns the current nesting depth.
func (e *Emitter) Depth() int {
	return e.depth
}

// Finish returns the accumulated text without trailing whitespace and
// clears the buffer so the Emitter can be reused.
func (e *Emitter) Finish() string {
	out := strings.TrimRightFunc(e.buf.String(), unicode.IsSpace)
	e.buf.Reset()
	return out
}
