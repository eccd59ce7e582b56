// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cheatgen

import (
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/petar-djukic/cheatgen/internal/catalog"
	"github.com/petar-djukic/cheatgen/internal/output"
	"github.com/petar-djukic/cheatgen/internal/printer"
	"github.com/petar-djukic/cheatgen/pkg/types"
)

const (
	defaultName        = "Vm"
	defaultSafeName    = "VmSafe"
	defaultLicense     = "MIT OR Apache-2.0"
	defaultIndentWidth = 4
	defaultNewline     = "\n"
)

// New validates the config, builds the printer and returns a ready-to-use
// Generator.
func New(cfg Config) (Generator, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if cfg.SplitSafety && strings.TrimSpace(cfg.SafeName) == strings.TrimSpace(cfg.Name) {
		return nil, fmt.Errorf("%w: SafeName and Name are both %q", ErrInvalidConfig, cfg.Name)
	}

	order, err := printer.ParseItemOrder(strings.Join(cfg.Order, ","))
	if err != nil {
		return nil, err
	}

	indent := printer.IndentSpaces(cfg.IndentWidth)
	if cfg.IndentString != "" {
		indent = printer.IndentLiteral(cfg.IndentString)
	}

	p, err := printer.New(printer.Config{
		Prelude:       !cfg.NoPrelude,
		License:       cfg.License,
		Pragma:        cfg.Pragma,
		ABIEncoderV2:  cfg.ABIEncoderV2,
		BlockComments: cfg.BlockComments,
		IndentDepth:   cfg.IndentDepth,
		Indent:        indent,
		Newline:       cfg.Newline,
		Order:         order,
	})
	if err != nil {
		return nil, err
	}

	return &generator{cfg: cfg, printer: p, logger: cfg.Logger}, nil
}

// generator adapts internal/printer.Printer to the public Generator interface.
type generator struct {
	cfg     Config
	printer *printer.Printer
	logger  log.Logger
}

func (g *generator) Generate(c *types.Catalog) (string, error) {
	if g.cfg.VerifySelectors {
		if err := catalog.VerifySelectors(c); err != nil {
			return "", err
		}
		level.Debug(g.logger).Log("msg", "selectors verified", "cheatcodes", len(c.Cheatcodes))
	}

	var keep []catalog.Predicate
	if len(g.cfg.ExcludeStatuses) > 0 {
		keep = append(keep, catalog.WithoutStatus(g.cfg.ExcludeStatuses...))
	}

	if !g.cfg.SplitSafety {
		selected := catalog.Select(c, keep...)
		level.Debug(g.logger).Log(
			"msg", "printing interface",
			"name", g.cfg.Name,
			"items", selected.Len(),
			"dropped", len(c.Cheatcodes)-len(selected.Cheatcodes),
		)
		return g.printer.PrintContract(selected, g.cfg.Name, g.cfg.Inherits), nil
	}

	safe, unsafe := catalog.SplitSafety(c, keep...)
	inherits := g.cfg.SafeName
	if g.cfg.Inherits != "" {
		inherits += ", " + g.cfg.Inherits
	}
	level.Debug(g.logger).Log(
		"msg", "printing split interfaces",
		"safe", g.cfg.SafeName,
		"safe_cheatcodes", len(safe.Cheatcodes),
		"unsafe", g.cfg.Name,
		"unsafe_cheatcodes", len(unsafe.Cheatcodes),
	)
	return g.printer.PrintContracts(
		printer.Contract{Name: g.cfg.SafeName, Catalog: safe},
		printer.Contract{Name: g.cfg.Name, Inherits: inherits, Catalog: unsafe},
	), nil
}

func (g *generator) Content(text string) []byte {
	return output.Content(text, g.cfg.Newline)
}

// validateConfig rejects settings that cannot produce an interface.
func validateConfig(cfg Config) error {
	if cfg.IndentWidth < 0 {
		return fmt.Errorf("%w: IndentWidth must not be negative", ErrInvalidConfig)
	}
	if cfg.IndentWidth != 0 && cfg.IndentString != "" {
		return fmt.Errorf("%w: IndentWidth and IndentString are mutually exclusive", ErrInvalidConfig)
	}
	if cfg.IndentDepth < 0 {
		return fmt.Errorf("%w: IndentDepth must not be negative", ErrInvalidConfig)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = defaultName
	}
	if cfg.SafeName == "" {
		cfg.SafeName = defaultSafeName
	}
	if cfg.License == "" {
		cfg.License = defaultLicense
	}
	if cfg.IndentWidth == 0 && cfg.IndentString == "" {
		cfg.IndentWidth = defaultIndentWidth
	}
	if cfg.Newline == "" {
		cfg.Newline = defaultNewline
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNopLogger()
	}
}
