// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package output writes generated interface files and compares them with
// what is already on disk.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrOutOfDate is returned by Check when the file on disk differs from the
// generated text.
var ErrOutOfDate = errors.New("generated file is out of date")

// Content returns the bytes written for generated text: the text followed by
// exactly one line terminator.
func Content(text, newline string) []byte {
	return []byte(text + newline)
}

// WriteFile writes data to path atomically: it writes a temp file in the
// same directory, then renames it over path. A failed write leaves the
// previous file untouched.
//
// The original file's permissions are preserved. If the file does not exist
// yet, permissions default to 0644.
func WriteFile(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".cheatgen-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}

// Write sends data to w, or to path when w is nil.
func Write(w io.Writer, path string, data []byte) error {
	if w == nil {
		return WriteFile(path, data)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Check compares data with the file at path. It returns an error wrapping
// ErrOutOfDate, with a line diff in its message, when they differ or the
// file does not exist.
func Check(path string, data []byte) error {
	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", ErrOutOfDate, path)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if string(existing) == string(data) {
		return nil
	}
	return &OutOfDateError{Path: path, Diff: LineDiff(string(existing), string(data))}
}

// OutOfDateError carries the diff between the file on disk and the
// generated text.
type OutOfDateError struct {
	Path string
	Diff []DiffLine
}

func (e *OutOfDateError) Error() string {
	return fmt.Sprintf("%s: %s\n%s", ErrOutOfDate, e.Path, FormatDiff(e.Diff, false))
}

// Unwrap makes errors.Is(err, ErrOutOfDate) hold.
func (e *OutOfDateError) Unwrap() error {
	return ErrOutOfDate
}
