// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Visibility is the Solidity visibility of a function declaration.
type Visibility int

const (
	External Visibility = iota
	Public
	Internal
	Private
)

var visibilityNames = []string{"external", "public", "internal", "private"}

func (v Visibility) String() string { return enumString(visibilityNames, int(v)) }

// MarshalText implements encoding.TextMarshaler.
func (v Visibility) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visibility) UnmarshalText(b []byte) error {
	i, err := enumParse("visibility", visibilityNames, string(b))
	*v = Visibility(i)
	return err
}

// Mutability is the state mutability of a function. MutabilityNone is
// spelled as the empty string on the wire.
type Mutability int

const (
	Pure Mutability = iota
	View
	MutabilityNone
)

var mutabilityNames = []string{"pure", "view", ""}

func (m Mutability) String() string { return enumString(mutabilityNames, int(m)) }

// MarshalText implements encoding.TextMarshaler.
func (m Mutability) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mutability) UnmarshalText(b []byte) error {
	i, err := enumParse("mutability", mutabilityNames, string(b))
	*m = Mutability(i)
	return err
}

// Group is the documentation category a cheatcode belongs to.
type Group int

const (
	GroupEVM Group = iota
	GroupTesting
	GroupScripting
	GroupFilesystem
	GroupEnvironment
	GroupString
	GroupJSON
	GroupUtilities
)

var groupNames = []string{
	"evm", "testing", "scripting", "filesystem",
	"environment", "string", "json", "utilities",
}

func (g Group) String() string { return enumString(groupNames, int(g)) }

// MarshalText implements encoding.TextMarshaler.
func (g Group) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Group) UnmarshalText(b []byte) error {
	i, err := enumParse("group", groupNames, string(b))
	*g = Group(i)
	return err
}

// Status is the lifecycle status of a cheatcode.
type Status int

const (
	Stable Status = iota
	Experimental
	Deprecated
	Removed
)

var statusNames = []string{"stable", "experimental", "deprecated", "removed"}

func (s Status) String() string { return enumString(statusNames, int(s)) }

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	i, err := enumParse("status", statusNames, string(b))
	*s = Status(i)
	return err
}

// Safety classifies whether a cheatcode can alter chain state in a way that
// is unsafe outside of tests.
type Safety int

const (
	Unsafe Safety = iota
	Safe
)

var safetyNames = []string{"unsafe", "safe"}

func (s Safety) String() string { return enumString(safetyNames, int(s)) }

// IsSafe reports whether s is Safe.
func (s Safety) IsSafe() bool { return s == Safe }

// MarshalText implements encoding.TextMarshaler.
func (s Safety) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Safety) UnmarshalText(b []byte) error {
	i, err := enumParse("safety", safetyNames, string(b))
	*s = Safety(i)
	return err
}

func enumString(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

// enumParse looks s up in names. On failure it returns index 0 and an
// *UnknownValueError.
func enumParse(kind string, names []string, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, &UnknownValueError{Kind: kind, Value: s}
}

// UnknownValueError reports a text value that names no enumerator.
type UnknownValueError struct {
	Kind  string // Enumeration name, e.g. "group"
	Value string // Offending text
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}
