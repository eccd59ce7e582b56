// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the cheatcode catalog shared across cheatgen
// packages. Values are built once by the decoder and treated as read-only.
package types

// Function is a callable function definition. Declaration and Signature are
// Solidity source fragments and are used verbatim.
type Function struct {
	ID            string     // Unique identifier, usually the function name plus a disambiguator
	Description   string     // Free-text documentation
	Declaration   string     // Full declaration, e.g. "function warp(uint256 newTimestamp) external;"
	Visibility    Visibility // external, public, internal or private
	Mutability    Mutability // pure, view or none
	Signature     string     // Canonical signature, e.g. "warp(uint256)"
	Selector      string     // Hex selector, e.g. "0xe5d6bf02"
	SelectorBytes []byte     // Raw selector bytes
}

// Cheatcode is a function plus its grouping metadata.
type Cheatcode struct {
	Func   Function
	Group  Group
	Status Status
	Safety Safety
}

// Error is a custom error definition.
type Error struct {
	Name        string
	Description string
	Declaration string
}

// Event is an event definition.
type Event struct {
	Name        string
	Description string
	Declaration string
}

// EnumVariant is a single member of an Enum.
type EnumVariant struct {
	Name        string
	Description string
}

// Enum is an enum type definition. Variant order is significant.
type Enum struct {
	Name        string
	Description string
	Variants    []EnumVariant
}

// StructField is a single member of a Struct.
type StructField struct {
	Name        string
	Ty          string // Solidity type name
	Description string
}

// Struct is a struct type definition. Field order is significant.
type Struct struct {
	Name        string
	Description string
	Fields      []StructField
}

// Catalog holds every definition in declaration order. Emission order within
// a category is slice order.
type Catalog struct {
	Errors     []Error
	Events     []Event
	Enums      []Enum
	Structs    []Struct
	Cheatcodes []Cheatcode
}

// Len returns the total number of top-level items.
func (c *Catalog) Len() int {
	return len(c.Errors) + len(c.Events) + len(c.Enums) + len(c.Structs) + len(c.Cheatcodes)
}
