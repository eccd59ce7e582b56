// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/cheatgen/pkg/types"
)

func filterCatalog() *types.Catalog {
	cc := func(id string, status types.Status, safety types.Safety) types.Cheatcode {
		return types.Cheatcode{Func: types.Function{ID: id}, Status: status, Safety: safety}
	}
	return &types.Catalog{
		Errors: []types.Error{{Name: "E"}},
		Enums:  []types.Enum{{Name: "M"}},
		Cheatcodes: []types.Cheatcode{
			cc("a", types.Stable, types.Safe),
			cc("b", types.Removed, types.Unsafe),
			cc("c", types.Deprecated, types.Unsafe),
			cc("d", types.Experimental, types.Safe),
			cc("e", types.Stable, types.Unsafe),
		},
	}
}

func ids(c *types.Catalog) []string {
	var out []string
	for _, cc := range c.Cheatcodes {
		out = append(out, cc.Func.ID)
	}
	return out
}

func TestSelect_NoPredicatesCopiesAll(t *testing.T) {
	c := filterCatalog()
	out := Select(c)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(out))
	assert.Equal(t, c.Errors, out.Errors)
	assert.Equal(t, c.Enums, out.Enums)
}

func TestSelect_WithoutStatusPreservesOrder(t *testing.T) {
	out := Select(filterCatalog(), WithoutStatus(types.Removed, types.Deprecated))
	assert.Equal(t, []string{"a", "d", "e"}, ids(out))
}

func TestSelect_DoesNotModifyInput(t *testing.T) {
	c := filterCatalog()
	out := Select(c, WithSafety(types.Safe))
	out.Errors[0].Name = "changed"
	assert.Equal(t, "E", c.Errors[0].Name)
	assert.Len(t, c.Cheatcodes, 5)
}

func TestSplitSafety(t *testing.T) {
	safe, unsafe := SplitSafety(filterCatalog(), WithoutStatus(types.Removed))

	assert.Equal(t, []string{"a", "d"}, ids(safe))
	assert.Len(t, safe.Errors, 1)
	assert.Len(t, safe.Enums, 1)

	assert.Equal(t, []string{"c", "e"}, ids(unsafe))
	assert.Empty(t, unsafe.Errors)
	assert.Empty(t, unsafe.Enums)
}
