// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cheatgen defines the public interface for cheatgen, which renders
// a cheatcode catalog as a Solidity interface file.
package cheatgen

import (
	"github.com/go-kit/log"

	"github.com/petar-djukic/cheatgen/internal/catalog"
	"github.com/petar-djukic/cheatgen/internal/output"
	"github.com/petar-djukic/cheatgen/internal/printer"
	"github.com/petar-djukic/cheatgen/pkg/types"
)

// Error types for the cheatgen API.
var (
	ErrInvalidConfig    = printer.ErrInvalidConfig
	ErrParse            = catalog.ErrParse
	ErrSelectorMismatch = catalog.ErrSelectorMismatch
	ErrOutOfDate        = output.ErrOutOfDate
)

// Config configures a Generator. The zero value generates forge-std's
// Vm.sol layout with a single interface named "Vm".
type Config struct {
	Name            string         // Interface name (default "Vm")
	Inherits        string         // Inheritance list for Name, without "is"
	SplitSafety     bool           // Emit safe cheatcodes in SafeName and unsafe ones in Name, which inherits SafeName
	SafeName        string         // Name of the safe interface (default "VmSafe")
	ExcludeStatuses []types.Status // Drop cheatcodes with these statuses
	VerifySelectors bool           // Check selectors against signatures before printing
	NoPrelude       bool           // Omit the SPDX and pragma lines
	License         string         // SPDX license identifier (default "MIT OR Apache-2.0")
	Pragma          string         // Explicit version requirement (empty = derived)
	ABIEncoderV2    bool           // Emit "pragma experimental ABIEncoderV2;"
	BlockComments   bool           // Use /* */ comments
	IndentDepth     int            // Initial nesting depth
	IndentWidth     int            // Spaces per level (default 4); exclusive with IndentString
	IndentString    string         // Literal indentation unit, e.g. "\t"
	Newline         string         // Line terminator (default "\n")
	Order           []string       // Category order, e.g. {"struct", "enum"} (default error,event,enum,struct,function)
	Logger          log.Logger     // Structured logger (default: discard)
}

// Generator renders catalogs into interface source.
type Generator interface {
	// Generate renders c. The returned text has no trailing newline; use
	// Content to get the bytes written to disk.
	Generate(c *types.Catalog) (string, error)

	// Content returns text as it is written to a file.
	Content(text string) []byte
}

// LoadCatalog reads a JSON, YAML or TOML catalog document, choosing the
// format from the file extension.
func LoadCatalog(path string) (*types.Catalog, error) {
	return catalog.Load(path)
}
