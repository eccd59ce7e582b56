// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemOrder_ZeroValueIsDefault(t *testing.T) {
	var o ItemOrder
	assert.Equal(t, []ItemKind{ItemError, ItemEvent, ItemEnum, ItemStruct, ItemFunction}, o.Kinds())
	assert.Equal(t, "error,event,enum,struct,function", o.String())
}

func TestNewItemOrder_Permutation(t *testing.T) {
	o, err := NewItemOrder(ItemFunction, ItemStruct, ItemEnum, ItemEvent, ItemError)
	require.NoError(t, err)
	assert.Equal(t, []ItemKind{ItemFunction, ItemStruct, ItemEnum, ItemEvent, ItemError}, o.Kinds())
}

func TestNewItemOrder_Subset(t *testing.T) {
	o, err := NewItemOrder(ItemStruct, ItemFunction)
	require.NoError(t, err)
	assert.Equal(t, []ItemKind{ItemStruct, ItemFunction}, o.Kinds())
}

func TestNewItemOrder_RejectsDuplicate(t *testing.T) {
	_, err := NewItemOrder(ItemError, ItemEvent, ItemError)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "duplicate item kind error")
}

func TestNewItemOrder_RejectsTooMany(t *testing.T) {
	_, err := NewItemOrder(ItemError, ItemEvent, ItemEnum, ItemStruct, ItemFunction, ItemError)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewItemOrder_RejectsUnknownKind(t *testing.T) {
	_, err := NewItemOrder(ItemKind(7))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewItemOrder_DoesNotAliasInput(t *testing.T) {
	kinds := []ItemKind{ItemEnum, ItemStruct}
	o, err := NewItemOrder(kinds...)
	require.NoError(t, err)
	kinds[0] = ItemFunction
	assert.Equal(t, []ItemKind{ItemEnum, ItemStruct}, o.Kinds())
}

func TestParseItemOrder(t *testing.T) {
	o, err := ParseItemOrder("structs, enum ,Function")
	require.NoError(t, err)
	assert.Equal(t, []ItemKind{ItemStruct, ItemEnum, ItemFunction}, o.Kinds())

	o, err = ParseItemOrder("")
	require.NoError(t, err)
	assert.Equal(t, DefaultItemOrder().Kinds(), o.Kinds())

	_, err = ParseItemOrder("error,widget")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ParseItemOrder("event,event")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
