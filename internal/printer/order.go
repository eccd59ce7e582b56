// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package printer

import (
	"fmt"
	"strings"
)

// ItemKind identifies one of the catalog's item categories.
type ItemKind int

const (
	ItemError ItemKind = iota
	ItemEvent
	ItemEnum
	ItemStruct
	ItemFunction

	numItemKinds = 5
)

func (k ItemKind) String() string {
	switch k {
	case ItemError:
		return "error"
	case ItemEvent:
		return "event"
	case ItemEnum:
		return "enum"
	case ItemStruct:
		return "struct"
	case ItemFunction:
		return "function"
	default:
		return "unknown"
	}
}

// ParseItemKind parses the String form of an ItemKind. The plural forms used
// by the catalog document ("errors", "cheatcodes", ...) are accepted too.
func ParseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "errors":
		return ItemError, nil
	case "event", "events":
		return ItemEvent, nil
	case "enum", "enums":
		return ItemEnum, nil
	case "struct", "structs":
		return ItemStruct, nil
	case "function", "functions", "cheatcode", "cheatcodes":
		return ItemFunction, nil
	default:
		return 0, fmt.Errorf("%w: unknown item kind %q", ErrInvalidConfig, s)
	}
}

var defaultOrder = []ItemKind{ItemError, ItemEvent, ItemEnum, ItemStruct, ItemFunction}

// ItemOrder is the order in which item categories are emitted. The zero value
// is the default order: errors, events, enums, structs, functions.
type ItemOrder struct {
	kinds []ItemKind
}

// DefaultItemOrder returns the default category order.
func DefaultItemOrder() ItemOrder {
	return ItemOrder{}
}

// NewItemOrder builds an ItemOrder from kinds. It fails when kinds names more
// than five categories, repeats one, or holds a value outside the closed set.
// Categories left out are not emitted; an empty list yields the default.
func NewItemOrder(kinds ...ItemKind) (ItemOrder, error) {
	if len(kinds) > numItemKinds {
		return ItemOrder{}, fmt.Errorf("%w: item order has %d entries, at most %d allowed", ErrInvalidConfig, len(kinds), numItemKinds)
	}
	var seen [numItemKinds]bool
	for _, k := range kinds {
		if k < 0 || k >= numItemKinds {
			return ItemOrder{}, fmt.Errorf("%w: unknown item kind %d", ErrInvalidConfig, int(k))
		}
		if seen[k] {
			return ItemOrder{}, fmt.Errorf("%w: duplicate item kind %s", ErrInvalidConfig, k)
		}
		seen[k] = true
	}
	return ItemOrder{kinds: append([]ItemKind(nil), kinds...)}, nil
}

// ParseItemOrder parses a comma separated list such as "struct,enum,function".
func ParseItemOrder(s string) (ItemOrder, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultItemOrder(), nil
	}
	parts := strings.Split(s, ",")
	kinds := make([]ItemKind, 0, len(parts))
	for _, p := range parts {
		k, err := ParseItemKind(p)
		if err != nil {
			return ItemOrder{}, err
		}
		kinds = append(kinds, k)
	}
	return NewItemOrder(kinds...)
}

// Kinds returns the categories in emission order.
func (o ItemOrder) Kinds() []ItemKind {
	if len(o.kinds) == 0 {
		return append([]ItemKind(nil), defaultOrder...)
	}
	return append([]ItemKind(nil), o.kinds...)
}

func (o ItemOrder) String() string {
	kinds := o.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}
