// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"slices"

	"github.com/petar-djukic/cheatgen/pkg/types"
)

// Predicate reports whether a cheatcode should be kept.
type Predicate func(*types.Cheatcode) bool

// WithoutStatus drops cheatcodes whose status is one of statuses.
func WithoutStatus(statuses ...types.Status) Predicate {
	return func(cc *types.Cheatcode) bool {
		return !slices.Contains(statuses, cc.Status)
	}
}

// WithSafety keeps cheatcodes of the given safety.
func WithSafety(s types.Safety) Predicate {
	return func(cc *types.Cheatcode) bool {
		return cc.Safety == s
	}
}

// Select returns a catalog holding every type definition of c and the
// cheatcodes that satisfy all predicates, in their original order. c is not
// modified.
func Select(c *types.Catalog, keep ...Predicate) *types.Catalog {
	out := &types.Catalog{
		Errors:  slices.Clone(c.Errors),
		Events:  slices.Clone(c.Events),
		Enums:   slices.Clone(c.Enums),
		Structs: slices.Clone(c.Structs),
	}
	out.Cheatcodes = selectCheatcodes(c.Cheatcodes, keep)
	return out
}

// SplitSafety partitions c the way forge-std lays out Vm.sol: the safe
// catalog carries every type definition plus the safe cheatcodes, the unsafe
// catalog carries only the unsafe cheatcodes.
func SplitSafety(c *types.Catalog, keep ...Predicate) (safe, unsafe *types.Catalog) {
	safe = Select(c, append(slices.Clone(keep), WithSafety(types.Safe))...)
	unsafe = &types.Catalog{
		Cheatcodes: selectCheatcodes(c.Cheatcodes, append(slices.Clone(keep), WithSafety(types.Unsafe))),
	}
	return safe, unsafe
}

func selectCheatcodes(in []types.Cheatcode, keep []Predicate) []types.Cheatcode {
	var out []types.Cheatcode
next:
	for i := range in {
		for _, p := range keep {
			if !p(&in[i]) {
				continue next
			}
		}
		out = append(out, in[i])
	}
	return out
}
