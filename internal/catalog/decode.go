// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package catalog loads cheatcode catalogs from JSON, YAML or TOML documents
// and provides selector verification and filtering over the loaded catalog.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/cheatgen/pkg/types"
)

// ErrParse is returned when a catalog document is malformed or incomplete.
var ErrParse = errors.New("invalid catalog document")

// Format is a catalog document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks a format from the file extension. Anything that is
// not .yaml, .yml or .toml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the catalog at path.
func Load(path string) (*types.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a catalog document in the given format. Every key is
// required and enumerator values must be known; all problems found are
// reported together, wrapped in ErrParse.
func Decode(r io.Reader, format Format) (*types.Catalog, error) {
	var doc wireCatalog
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: unsupported format %d", ErrParse, int(format))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, format, err)
	}

	v := &validator{}
	c := v.catalog(&doc)
	if v.errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, v.errs)
	}
	return c, nil
}

type wireCatalog struct {
	Errors     *[]wireDecl      `json:"errors" yaml:"errors" toml:"errors"`
	Events     *[]wireDecl      `json:"events" yaml:"events" toml:"events"`
	Enums      *[]wireEnum      `json:"enums" yaml:"enums" toml:"enums"`
	Structs    *[]wireStruct    `json:"structs" yaml:"structs" toml:"structs"`
	Cheatcodes *[]wireCheatcode `json:"cheatcodes" yaml:"cheatcodes" toml:"cheatcodes"`
}

type wireDecl struct {
	Name        *string `json:"name" yaml:"name" toml:"name"`
	Description *string `json:"description" yaml:"description" toml:"description"`
	Declaration *string `json:"declaration" yaml:"declaration" toml:"declaration"`
}

type wireEnum struct {
	Name        *string        `json:"name" yaml:"name" toml:"name"`
	Description *string        `json:"description" yaml:"description" toml:"description"`
	Variants    *[]wireVariant `json:"variants" yaml:"variants" toml:"variants"`
}

type wireVariant struct {
	Name        *string `json:"name" yaml:"name" toml:"name"`
	Description *string `json:"description" yaml:"description" toml:"description"`
}

type wireStruct struct {
	Name        *string      `json:"name" yaml:"name" toml:"name"`
	Description *string      `json:"description" yaml:"description" toml:"description"`
	Fields      *[]wireField `json:"fields" yaml:"fields" toml:"fields"`
}

type wireField struct {
	Name        *string `json:"name" yaml:"name" toml:"name"`
	Ty          *string `json:"ty" yaml:"ty" toml:"ty"`
	Description *string `json:"description" yaml:"description" toml:"description"`
}

type wireCheatcode struct {
	Func   *wireFunction `json:"func" yaml:"func" toml:"func"`
	Group  *string       `json:"group" yaml:"group" toml:"group"`
	Status *string       `json:"status" yaml:"status" toml:"status"`
	Safety *string       `json:"safety" yaml:"safety" toml:"safety"`
}

type wireFunction struct {
	ID            *string `json:"id" yaml:"id" toml:"id"`
	Description   *string `json:"description" yaml:"description" toml:"description"`
	Declaration   *string `json:"declaration" yaml:"declaration" toml:"declaration"`
	Visibility    *string `json:"visibility" yaml:"visibility" toml:"visibility"`
	Mutability    *string `json:"mutability" yaml:"mutability" toml:"mutability"`
	Signature     *string `json:"signature" yaml:"signature" toml:"signature"`
	Selector      *string `json:"selector" yaml:"selector" toml:"selector"`
	SelectorBytes *[]int  `json:"selectorBytes" yaml:"selectorBytes" toml:"selectorBytes"`
}

// validator converts wire records, collecting every problem it finds.
type validator struct {
	errs *multierror.Error
}

func (v *validator) fail(path string, err error) {
	v.errs = multierror.Append(v.errs, fmt.Errorf("%s: %w", path, err))
}

func (v *validator) str(path string, s *string) string {
	if s == nil {
		v.fail(path, errMissing)
		return ""
	}
	return *s
}

func (v *validator) text(path string, s *string, dst interface{ UnmarshalText([]byte) error }) {
	if s == nil {
		v.fail(path, errMissing)
		return
	}
	if err := dst.UnmarshalText([]byte(*s)); err != nil {
		v.fail(path, err)
	}
}

var errMissing = errors.New("missing key")

func (v *validator) catalog(doc *wireCatalog) *types.Catalog {
	c := &types.Catalog{}

	if doc.Errors == nil {
		v.fail("errors", errMissing)
	} else {
		for i, w := range *doc.Errors {
			p := fmt.Sprintf("errors[%d]", i)
			c.Errors = append(c.Errors, types.Error{
				Name:        v.str(p+".name", w.Name),
				Description: v.str(p+".description", w.Description),
				Declaration: v.str(p+".declaration", w.Declaration),
			})
		}
	}

	if doc.Events == nil {
		v.fail("events", errMissing)
	} else {
		for i, w := range *doc.Events {
			p := fmt.Sprintf("events[%d]", i)
			c.Events = append(c.Events, types.Event{
				Name:        v.str(p+".name", w.Name),
				Description: v.str(p+".description", w.Description),
				Declaration: v.str(p+".declaration", w.Declaration),
			})
		}
	}

	if doc.Enums == nil {
		v.fail("enums", errMissing)
	} else {
		for i := range *doc.Enums {
			c.Enums = append(c.Enums, v.enum(fmt.Sprintf("enums[%d]", i), &(*doc.Enums)[i]))
		}
	}

	if doc.Structs == nil {
		v.fail("structs", errMissing)
	} else {
		for i := range *doc.Structs {
			c.Structs = append(c.Structs, v.structure(fmt.Sprintf("structs[%d]", i), &(*doc.Structs)[i]))
		}
	}

	if doc.Cheatcodes == nil {
		v.fail("cheatcodes", errMissing)
	} else {
		for i := range *doc.Cheatcodes {
			c.Cheatcodes = append(c.Cheatcodes, v.cheatcode(fmt.Sprintf("cheatcodes[%d]", i), &(*doc.Cheatcodes)[i]))
		}
	}

	return c
}

func (v *validator) enum(p string, w *wireEnum) types.Enum {
	en := types.Enum{
		Name:        v.str(p+".name", w.Name),
		Description: v.str(p+".description", w.Description),
	}
	if w.Variants == nil {
		v.fail(p+".variants", errMissing)
		return en
	}
	for i, wv := range *w.Variants {
		vp := fmt.Sprintf("%s.variants[%d]", p, i)
		en.Variants = append(en.Variants, types.EnumVariant{
			Name:        v.str(vp+".name", wv.Name),
			Description: v.str(vp+".description", wv.Description),
		})
	}
	return en
}

func (v *validator) structure(p string, w *wireStruct) types.Struct {
	st := types.Struct{
		Name:        v.str(p+".name", w.Name),
		Description: v.str(p+".description", w.Description),
	}
	if w.Fields == nil {
		v.fail(p+".fields", errMissing)
		return st
	}
	for i, wf := range *w.Fields {
		fp := fmt.Sprintf("%s.fields[%d]", p, i)
		st.Fields = append(st.Fields, types.StructField{
			Name:        v.str(fp+".name", wf.Name),
			Ty:          v.str(fp+".ty", wf.Ty),
			Description: v.str(fp+".description", wf.Description),
		})
	}
	return st
}

func (v *validator) cheatcode(p string, w *wireCheatcode) types.Cheatcode {
	var cc types.Cheatcode
	if w.Func == nil {
		v.fail(p+".func", errMissing)
	} else {
		cc.Func = v.function(p+".func", w.Func)
	}
	v.text(p+".group", w.Group, &cc.Group)
	v.text(p+".status", w.Status, &cc.Status)
	v.text(p+".safety", w.Safety, &cc.Safety)
	return cc
}

func (v *validator) function(p string, w *wireFunction) types.Function {
	fn := types.Function{
		ID:          v.str(p+".id", w.ID),
		Description: v.str(p+".description", w.Description),
		Declaration: v.str(p+".declaration", w.Declaration),
		Signature:   v.str(p+".signature", w.Signature),
		Selector:    v.str(p+".selector", w.Selector),
	}
	v.text(p+".visibility", w.Visibility, &fn.Visibility)
	v.text(p+".mutability", w.Mutability, &fn.Mutability)

	if w.SelectorBytes == nil {
		v.fail(p+".selectorBytes", errMissing)
		return fn
	}
	fn.SelectorBytes = make([]byte, 0, len(*w.SelectorBytes))
	for i, b := range *w.SelectorBytes {
		if b < 0 || b > 0xff {
			v.fail(fmt.Sprintf("%s.selectorBytes[%d]", p, i), fmt.Errorf("value %d out of byte range", b))
			continue
		}
		fn.SelectorBytes = append(fn.SelectorBytes, byte(b))
	}
	return fn
}
