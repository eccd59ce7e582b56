// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package printer renders a cheatcode catalog as Solidity interface source.
//
// Output is deterministic: categories follow the configured ItemOrder and
// items within a category follow catalog order. Declarations are trusted
// verbatim; nothing is parsed or validated.
package printer

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/cheatgen/pkg/types"
)

const (
	// PragmaCustomErrors is the version requirement used when the catalog
	// declares custom errors, which need Solidity 0.8.4.
	PragmaCustomErrors = ">=0.8.4 <0.9.0"
	// PragmaDefault is the version requirement used otherwise.
	PragmaDefault = ">=0.6.0 <0.9.0"

	defaultLicense = "MIT OR Apache-2.0"
	defaultIndent  = 4
)

// Config configures a Printer. Start from DefaultConfig.
type Config struct {
	Prelude       bool      // Emit the SPDX and pragma lines
	License       string    // SPDX license identifier
	Pragma        string    // Explicit version requirement (empty = derived from the catalog)
	ABIEncoderV2  bool      // Emit "pragma experimental ABIEncoderV2;"
	BlockComments bool      // Use /* */ comments instead of // lines
	IndentDepth   int       // Initial nesting depth
	Indent        Indent    // Indentation unit
	Newline       string    // Line terminator
	Order         ItemOrder // Category order
}

// DefaultConfig returns the configuration used to generate forge-std's Vm.sol.
func DefaultConfig() Config {
	return Config{
		Prelude: true,
		License: defaultLicense,
		Indent:  IndentSpaces(defaultIndent),
		Newline: "\n",
		Order:   DefaultItemOrder(),
	}
}

// Contract is one interface to print.
type Contract struct {
	Name     string         // Interface name (may be empty)
	Inherits string         // Inheritance list without "is" (may be empty)
	Catalog  *types.Catalog // Items to declare
}

// Printer renders catalogs. Its configuration is fixed at construction; the
// only mutable state is the emitter. A Printer must not be used from more
// than one goroutine at a time.
type Printer struct {
	cfg     Config
	e       *Emitter
	comment CommentFormatter
}

// New validates cfg and returns a Printer.
func New(cfg Config) (*Printer, error) {
	e, err := NewEmitter(cfg.Indent, cfg.Newline, cfg.IndentDepth)
	if err != nil {
		return nil, err
	}
	return &Printer{
		cfg:     cfg,
		e:       e,
		comment: CommentFormatter{Block: cfg.BlockComments},
	}, nil
}

// Config returns the printer's configuration.
func (p *Printer) Config() Config {
	return p.cfg
}

// PrintContract renders c as a single interface named name, inheriting from
// inherits when non-empty.
func (p *Printer) PrintContract(c *types.Catalog, name, inherits string) string {
	return p.PrintContracts(Contract{Name: name, Inherits: inherits, Catalog: c})
}

// PrintContracts renders several interfaces into one document. The prelude
// is written once; its derived pragma accounts for every catalog.
func (p *Printer) PrintContracts(contracts ...Contract) string {
	if p.cfg.Prelude {
		hasErrors := false
		for _, c := range contracts {
			if len(c.Catalog.Errors) > 0 {
				hasErrors = true
			}
		}
		p.prelude(hasErrors)
	}
	for i, c := range contracts {
		if i > 0 {
			p.e.Newline()
		}
		p.contract(c)
	}
	return p.e.Finish()
}

// Pragma returns the version requirement for a catalog with or without
// custom errors.
func (p *Printer) Pragma(hasErrors bool) string {
	switch {
	case p.cfg.Pragma != "":
		return p.cfg.Pragma
	case hasErrors:
		return PragmaCustomErrors
	default:
		return PragmaDefault
	}
}

func (p *Printer) prelude(hasErrors bool) {
	p.e.Line(func() {
		p.e.Raw("// SPDX-License-Identifier: ")
		p.e.Raw(p.cfg.License)
	})
	p.e.Line(func() {
		p.e.Raw("pragma solidity ")
		p.e.Raw(p.Pragma(hasErrors))
		p.e.Raw(";")
	})
	if p.cfg.ABIEncoderV2 {
		p.e.Line(func() { p.e.Raw("pragma experimental ABIEncoderV2;") })
	}
	p.e.Newline()
}

func (p *Printer) contract(c Contract) {
	p.e.Line(func() {
		p.e.Raw("interface")
		if name := strings.TrimSpace(c.Name); name != "" {
			p.e.Raw(" ")
			p.e.Raw(name)
		}
		if inherits := strings.TrimSpace(c.Inherits); inherits != "" {
			p.e.Raw(" is ")
			p.e.Raw(inherits)
		}
		p.e.Raw(" {")
	})
	p.e.Scoped(func() {
		for _, kind := range p.cfg.Order.Kinds() {
			p.items(c.Catalog, kind)
		}
	})
	p.e.Line(func() { p.e.Raw("}") })
}

func (p *Printer) items(c *types.Catalog, kind ItemKind) {
	switch kind {
	case ItemError:
		for _, it := range c.Errors {
			p.declaration(it.Description, it.Declaration)
		}
	case ItemEvent:
		for _, it := range c.Events {
			p.declaration(it.Description, it.Declaration)
		}
	case ItemEnum:
		for i := range c.Enums {
			p.enum(&c.Enums[i])
		}
	case ItemStruct:
		for i := range c.Structs {
			p.structure(&c.Structs[i])
		}
	case ItemFunction:
		for _, it := range c.Cheatcodes {
			p.declaration(it.Func.Description, it.Func.Declaration)
		}
	default:
		panic(fmt.Sprintf("printer: unknown item kind %d", int(kind)))
	}
}

func (p *Printer) declaration(doc, decl string) {
	p.e.Line(func() {
		p.comment.Write(p.e, doc, true)
		p.e.Raw(decl)
	})
}

func (p *Printer) enum(en *types.Enum) {
	p.e.Line(func() {
		p.comment.Write(p.e, en.Description, true)
		p.e.Raw("enum ")
		p.e.Raw(en.Name)
		p.e.Raw(" {")
	})
	p.e.Scoped(func() {
		last := len(en.Variants) - 1
		for i, v := range en.Variants {
			p.e.Line(func() {
				p.comment.Write(p.e, v.Description, false)
				p.e.Raw(v.Name)
				if i < last {
					p.e.Raw(",")
				}
			})
		}
	})
	p.e.Line(func() { p.e.Raw("}") })
}

func (p *Printer) structure(st *types.Struct) {
	p.e.Line(func() {
		p.comment.Write(p.e, st.Description, true)
		p.e.Raw("struct ")
		p.e.Raw(st.Name)
		p.e.Raw(" {")
	})
	p.e.Scoped(func() {
		for _, f := range st.Fields {
			p.e.Line(func() {
				p.comment.Write(p.e, f.Description, false)
				p.e.Raw(f.Ty)
				p.e.Raw(" ")
				p.e.Raw(f.Name)
				p.e.Raw(";")
			})
		}
	})
	p.e.Line(func() { p.e.Raw("}") })
}
