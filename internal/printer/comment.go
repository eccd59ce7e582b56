// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package printer

import "strings"

// CommentFormatter renders free-text descriptions as Solidity comments.
//
// It expects to be called with the cursor already indented, i.e. from inside
// Emitter.Line, and leaves the cursor indented on a fresh line so the
// commented item follows at the same column.
type CommentFormatter struct {
	Block bool // Use /* */ blocks instead of // lines
}

// Write emits text as a comment. Documentation comments use /// or /**; plain
// comments use // or /*. Nothing is written when text is blank.
func (c CommentFormatter) Write(e *Emitter, text string, doc bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimLeftFunc(strings.TrimSuffix(lines[i], "\r"), isSpace)
	}
	if c.Block {
		c.block(e, lines, doc)
		return
	}
	c.line(e, lines, doc)
}

func (c CommentFormatter) block(e *Emitter, lines []string, doc bool) {
	open, prefix := "/*", " "
	if doc {
		open, prefix = "/**", " * "
	}
	e.Raw(open)
	e.Newline()
	for _, l := range lines {
		e.Indent()
		writePrefixed(e, prefix, l)
		e.Newline()
	}
	e.Indent()
	e.Raw(" */")
	e.Newline()
	e.Indent()
}

func (c CommentFormatter) line(e *Emitter, lines []string, doc bool) {
	prefix := "// "
	if doc {
		prefix = "/// "
	}
	for _, l := range lines {
		writePrefixed(e, prefix, l)
		e.Newline()
		e.Indent()
	}
}

// writePrefixed writes prefix+line, dropping the prefix's trailing space when
// line is empty.
func writePrefixed(e *Emitter, prefix, line string) {
	if line == "" {
		e.Raw(strings.TrimRight(prefix, " "))
		return
	}
	e.Raw(prefix)
	e.Raw(line)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\v' || r == '\f'
}
