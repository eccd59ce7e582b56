// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/crypto/sha3"

	"github.com/petar-djukic/cheatgen/pkg/types"
)

// ErrSelectorMismatch is returned when a function's selector fields disagree
// with each other or with its signature.
var ErrSelectorMismatch = errors.New("selector mismatch")

// Selector computes the 4-byte function selector of a canonical signature:
// the first four bytes of its Keccak-256 hash.
func Selector(signature string) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(signature))
	return h.Sum(nil)[:4]
}

// SelectorHex formats a selector as a 0x-prefixed lowercase hex string.
func SelectorHex(sel []byte) string {
	return "0x" + hex.EncodeToString(sel)
}

// VerifyFunction checks that fn.Selector decodes to fn.SelectorBytes and that
// both match the selector computed from fn.Signature.
func VerifyFunction(fn *types.Function) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(fn.Selector), "0x"))
	if err != nil {
		return fmt.Errorf("%w: %s: selector %q is not hex: %v", ErrSelectorMismatch, fn.ID, fn.Selector, err)
	}
	if !bytes.Equal(raw, fn.SelectorBytes) {
		return fmt.Errorf("%w: %s: selector %s does not match selector bytes %s",
			ErrSelectorMismatch, fn.ID, fn.Selector, SelectorHex(fn.SelectorBytes))
	}
	if want := Selector(fn.Signature); !bytes.Equal(want, fn.SelectorBytes) {
		return fmt.Errorf("%w: %s: signature %q hashes to %s, catalog has %s",
			ErrSelectorMismatch, fn.ID, fn.Signature, SelectorHex(want), fn.Selector)
	}
	return nil
}

// VerifySelectors runs VerifyFunction over every cheatcode and reports all
// mismatches together.
func VerifySelectors(c *types.Catalog) error {
	var errs *multierror.Error
	for i := range c.Cheatcodes {
		if err := VerifyFunction(&c.Cheatcodes[i].Func); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}
