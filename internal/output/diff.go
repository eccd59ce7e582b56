// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const diffContextLines = 2

// DiffKind tells whether a diff line is shared, removed or added.
type DiffKind int

const (
	DiffEqual DiffKind = iota
	DiffDelete
	DiffInsert
)

// DiffLine is one line of a line-level diff, without its terminator.
type DiffLine struct {
	Kind DiffKind
	Text string
}

var (
	deleteColor = color.New(color.FgRed)
	insertColor = color.New(color.FgGreen)
	hunkColor   = color.New(color.FgCyan)
)

// LineDiff computes a line-level diff from old to new.
func LineDiff(old, new string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		kind := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = DiffDelete
		case diffmatchpatch.DiffInsert:
			kind = DiffInsert
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			out = append(out, DiffLine{Kind: kind, Text: strings.TrimRight(l, "\r\n")})
		}
	}
	return out
}

// FormatDiff renders changed lines prefixed with - and +, with a little
// unchanged context around each change. Skipped stretches show as "...".
func FormatDiff(diff []DiffLine, colorize bool) string {
	show := make([]bool, len(diff))
	for i, l := range diff {
		if l.Kind == DiffEqual {
			continue
		}
		for j := max(0, i-diffContextLines); j <= min(len(diff)-1, i+diffContextLines); j++ {
			show[j] = true
		}
	}

	paint := func(c *color.Color, s string) string {
		if !colorize {
			return s
		}
		return c.Sprint(s)
	}

	var buf strings.Builder
	skipped := false
	for i, l := range diff {
		if !show[i] {
			skipped = true
			continue
		}
		if skipped && buf.Len() > 0 {
			buf.WriteString(paint(hunkColor, "...") + "\n")
		}
		skipped = false
		switch l.Kind {
		case DiffDelete:
			buf.WriteString(paint(deleteColor, "-"+l.Text) + "\n")
		case DiffInsert:
			buf.WriteString(paint(insertColor, "+"+l.Text) + "\n")
		default:
			buf.WriteString(" " + l.Text + "\n")
		}
	}
	return buf.String()
}
